// Package httpapi serves the hive JSON API over fiber.
package httpapi

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"

	"github.com/alexanderramin/hive/internal/identity"
	"github.com/alexanderramin/hive/internal/metrics"
	"github.com/alexanderramin/hive/internal/requestid"
	"github.com/alexanderramin/hive/internal/service"
)

type Config struct {
	ListenAddr    string
	CORSOrigins   []string
	RateLimit     RateLimitConfig
	SecureCookies bool
}

// Services are the use cases behind the API.
type Services struct {
	Tasks    service.TaskService
	Projects service.ProjectService
	Sessions service.SessionService
	Plan     service.PlanService
	Stats    service.StatsService
	Settings service.SettingsService
}

// ReadyFunc reports whether backing stores can serve traffic.
type ReadyFunc func(ctx context.Context) error

type Server struct {
	app     *fiber.App
	cfg     Config
	svc     Services
	ids     identity.Provider
	metrics *metrics.Metrics
	ready   ReadyFunc
	now     func() time.Time
	logger  zerolog.Logger
}

func NewServer(
	cfg Config,
	svc Services,
	ids identity.Provider,
	m *metrics.Metrics,
	ready ReadyFunc,
	logger zerolog.Logger,
) *Server {
	logger = logger.With().Str("component", "http").Logger()
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler(logger),
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
		ReadTimeout:           15 * time.Second,
		WriteTimeout:          15 * time.Second,
	})

	s := &Server{
		app:     app,
		cfg:     cfg,
		svc:     svc,
		ids:     ids,
		metrics: m,
		ready:   ready,
		now:     time.Now,
		logger:  logger,
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

func (s *Server) setupMiddleware() {
	s.app.Use(func(c *fiber.Ctx) error {
		id := requestid.Resolve(c.Get(requestid.Header))
		c.Set(requestid.Header, id)
		c.Locals(localRequestID, id)
		reqLogger := s.logger.With().Str("request_id", id).Logger()
		c.SetUserContext(reqLogger.WithContext(requestid.With(c.UserContext(), id)))
		return c.Next()
	})

	s.app.Use(s.observe)
	s.app.Use(recover.New(recover.Config{EnableStackTrace: true}))

	if len(s.cfg.CORSOrigins) > 0 {
		origins := strings.Join(s.cfg.CORSOrigins, ",")
		s.app.Use(cors.New(cors.Config{
			AllowOrigins: origins,
			AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Request-ID",
			AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
			// Cookies cannot be shared with a wildcard origin.
			AllowCredentials: !strings.Contains(origins, "*"),
		}))
	}

	if s.cfg.RateLimit.RPS > 0 {
		s.app.Use(newRateLimiter(s.cfg.RateLimit, time.Now).middleware())
	}

	s.app.Use("/api", s.requireSession)
}

// observe renders errors in place so the audit line and metrics see the
// final status.
func (s *Server) observe(c *fiber.Ctx) error {
	started := time.Now()
	if err := c.Next(); err != nil {
		if herr := s.app.Config().ErrorHandler(c, err); herr != nil {
			_ = c.SendStatus(fiber.StatusInternalServerError)
		}
	}
	status := c.Response().StatusCode()
	elapsed := time.Since(started)

	if s.metrics != nil {
		s.metrics.ObserveHTTP(c.Route().Path, c.Method(), status, elapsed)
	}
	if !isProbe(c.Path()) {
		s.logger.Info().
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("elapsed", elapsed).
			Str("ip", c.IP()).
			Str("request_id", requestID(c)).
			Msg("api request")
	}
	return nil
}

func (s *Server) setupRoutes() {
	s.app.Get("/healthz", s.liveness)
	s.app.Get("/readyz", s.readiness)
	if s.metrics != nil {
		s.app.Get("/metrics", adaptor.HTTPHandler(s.metrics.Handler()))
	}

	api := s.app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/sign-up", s.signUp)
	auth.Post("/sign-in", s.signIn)
	auth.Post("/sign-out", s.signOut)
	auth.Get("/session", s.currentSession)
	auth.Post("/change-password", s.changePassword)
	auth.Delete("/account", s.deleteAccount)

	api.Get("/projects", s.listProjects)
	api.Post("/projects", s.createProject)
	api.Put("/projects", s.updateProject)
	api.Delete("/projects", s.deleteProject)

	api.Get("/tasks", s.listTasks)
	api.Post("/tasks", s.createTask)
	api.Put("/tasks", s.updateTask)
	api.Delete("/tasks", s.deleteTask)

	api.Post("/plan", s.plan)
	api.Post("/pomodoro", s.completeSession)
	api.Get("/sessions", s.listSessions)
	api.Get("/stats/daily", s.dailyStats)

	api.Get("/user/settings", s.getSettings)
	api.Put("/user/settings", s.updateSettings)
}

// Listen blocks until the server stops.
func (s *Server) Listen() error {
	addr := s.cfg.ListenAddr
	if addr == "" {
		addr = ":8080"
	}
	s.logger.Info().Str("addr", addr).Msg("http server starting")
	return s.app.Listen(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info().Msg("http server shutting down")
	return s.app.ShutdownWithContext(ctx)
}

// App exposes the fiber app for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) liveness(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (s *Server) readiness(c *fiber.Ctx) error {
	if s.ready != nil {
		if err := s.ready(c.UserContext()); err != nil {
			s.logger.Warn().Err(err).Msg("readiness check failed")
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "down"})
		}
	}
	return c.JSON(fiber.Map{"status": "ok"})
}

func isProbe(path string) bool {
	return path == "/healthz" || path == "/readyz" || path == "/metrics"
}

const (
	localRequestID = "request_id"
	localSession   = "session"
)

func requestID(c *fiber.Ctx) string {
	id, _ := c.Locals(localRequestID).(string)
	return id
}
