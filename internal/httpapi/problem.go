package httpapi

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/rs/zerolog"

	"github.com/alexanderramin/hive/internal/contract"
)

// ProblemDetail is an RFC 7807 error body.
type ProblemDetail struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail,omitempty"`
	Instance string `json:"instance,omitempty"`
}

func problemResponse(c *fiber.Ctx, status int, errType, title, detail string) error {
	return c.Status(status).JSON(ProblemDetail{
		Type:     errType,
		Title:    title,
		Status:   status,
		Detail:   detail,
		Instance: c.Path(),
	})
}

var problemFor = map[contract.ErrorCode]struct {
	status int
	title  string
}{
	contract.ErrInvalidInput: {fiber.StatusBadRequest, "Bad Request"},
	contract.ErrNotFound:     {fiber.StatusNotFound, "Not Found"},
	contract.ErrUnauthorized: {fiber.StatusUnauthorized, "Unauthorized"},
	contract.ErrConflict:     {fiber.StatusConflict, "Conflict"},
}

// errorHandler renders contract errors with their own status and message.
// Anything else is logged and reported as a generic 500.
func errorHandler(logger zerolog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var ce *contract.Error
		if errors.As(err, &ce) {
			if p, ok := problemFor[ce.Code]; ok {
				return problemResponse(c, p.status, string(ce.Code), p.title, ce.Message)
			}
		}

		var fe *fiber.Error
		if errors.As(err, &fe) && fe.Code < fiber.StatusInternalServerError {
			return problemResponse(c, fe.Code, "http_error", utils.StatusMessage(fe.Code), fe.Message)
		}

		logger.Error().
			Err(err).
			Str("path", c.Path()).
			Str("method", c.Method()).
			Str("request_id", requestID(c)).
			Msg("unhandled error")

		return problemResponse(c, fiber.StatusInternalServerError,
			string(contract.ErrInternal), "Internal Server Error", "An internal error occurred")
	}
}
