package httpapi

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/alexanderramin/hive/internal/contract"
	"github.com/alexanderramin/hive/internal/identity"
)

var publicPaths = map[string]bool{
	"/api/auth/sign-up": true,
	"/api/auth/sign-in": true,
}

// requireSession resolves the session token from the cookie or a bearer
// header. The user id used by every handler comes from here.
func (s *Server) requireSession(c *fiber.Ctx) error {
	if publicPaths[c.Path()] || c.Method() == fiber.MethodOptions {
		return c.Next()
	}

	token := bearerToken(c)
	if token == "" {
		token = c.Cookies(identity.CookieName)
	}
	if token == "" {
		return problemResponse(c, fiber.StatusUnauthorized,
			"missing_auth", "Unauthorized", "A session is required")
	}

	sess, err := s.ids.SessionFromToken(c.UserContext(), token)
	if err != nil {
		if contract.CodeOf(err) == contract.ErrUnauthorized {
			s.logger.Warn().
				Str("path", c.Path()).
				Str("method", c.Method()).
				Str("request_id", requestID(c)).
				Msg("rejected session token")
			return problemResponse(c, fiber.StatusUnauthorized,
				"invalid_session", "Unauthorized", "Session is invalid or expired")
		}
		return err
	}
	c.Locals(localSession, sess)
	return c.Next()
}

func bearerToken(c *fiber.Ctx) string {
	h := c.Get(fiber.HeaderAuthorization)
	if !strings.HasPrefix(h, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
}

func session(c *fiber.Ctx) *identity.Session {
	sess, _ := c.Locals(localSession).(*identity.Session)
	return sess
}

func userID(c *fiber.Ctx) string {
	if sess := session(c); sess != nil {
		return sess.User.ID
	}
	return ""
}

func (s *Server) setSessionCookie(c *fiber.Ctx, sess *identity.Session) {
	c.Cookie(&fiber.Cookie{
		Name:     identity.CookieName,
		Value:    sess.Token,
		Path:     "/",
		Expires:  sess.ExpiresAt,
		HTTPOnly: true,
		Secure:   s.cfg.SecureCookies,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func (s *Server) respondWithSession(c *fiber.Ctx, status int, sess *identity.Session) error {
	s.setSessionCookie(c, sess)
	return c.Status(status).JSON(authJSON{
		User:      toUserJSON(sess.User),
		Token:     sess.Token,
		ExpiresAt: sess.ExpiresAt,
	})
}

func (s *Server) signUp(c *fiber.Ctx) error {
	var in identity.SignUpInput
	if err := parseBody(c, &in); err != nil {
		return err
	}
	sess, err := s.ids.SignUp(c.UserContext(), in)
	if err != nil {
		return err
	}
	return s.respondWithSession(c, fiber.StatusCreated, sess)
}

func (s *Server) signIn(c *fiber.Ctx) error {
	var in struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := parseBody(c, &in); err != nil {
		return err
	}
	sess, err := s.ids.SignIn(c.UserContext(), in.Email, in.Password)
	if err != nil {
		return err
	}
	return s.respondWithSession(c, fiber.StatusOK, sess)
}

func (s *Server) signOut(c *fiber.Ctx) error {
	if err := s.ids.SignOut(c.UserContext(), session(c).Token); err != nil {
		return err
	}
	c.ClearCookie(identity.CookieName)
	return c.JSON(successJSON{Success: true})
}

func (s *Server) currentSession(c *fiber.Ctx) error {
	sess := session(c)
	return c.JSON(authJSON{User: toUserJSON(sess.User), ExpiresAt: sess.ExpiresAt})
}

func (s *Server) changePassword(c *fiber.Ctx) error {
	var in struct {
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
	}
	if err := parseBody(c, &in); err != nil {
		return err
	}
	sess, err := s.ids.ChangePassword(c.UserContext(), userID(c), in.CurrentPassword, in.NewPassword)
	if err != nil {
		return err
	}
	return s.respondWithSession(c, fiber.StatusOK, sess)
}

func (s *Server) deleteAccount(c *fiber.Ctx) error {
	var in struct {
		Password string `json:"password"`
	}
	if err := parseBody(c, &in); err != nil {
		return err
	}
	if err := s.ids.DeleteAccount(c.UserContext(), userID(c), in.Password); err != nil {
		return err
	}
	c.ClearCookie(identity.CookieName)
	return c.JSON(successJSON{Success: true})
}

func parseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return contract.Invalid("invalid request body: %v", err)
	}
	return nil
}
