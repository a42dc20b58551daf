// Package server serves the manifest dashboard over HTTP.
//
// Every request carries its own filter criteria in the query string, so the
// server holds no per-user state. The dataset is shared read-only across
// handlers.
package server

import (
	"context"
	"embed"
	"html/template"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/wexinc/manifest/internal/explore"
	"github.com/wexinc/manifest/internal/logging"
	"github.com/wexinc/manifest/internal/passenger"
	"github.com/wexinc/manifest/internal/render"
)

// AppName is reported in the Server header.
const AppName = "manifest"

// DefaultReadTimeout bounds how long a client may take to send a request.
const DefaultReadTimeout = 10 * time.Second

//go:embed templates/*.html
var templateFS embed.FS

// Options configures a Server.
type Options struct {
	// Defaults are the criteria used for parameters a request leaves out.
	// Nil selects every observed value and the full age range.
	Defaults *explore.Criteria

	HistogramBins int
	ChartWidth    int
	ChartHeight   int
	ReadTimeout   time.Duration

	// Logger receives access and error logs. Nil means the global logger.
	Logger *logging.Logger
}

// Server is the HTTP dashboard.
type Server struct {
	app      *fiber.App
	explorer *explore.Explorer
	renderer *render.Renderer
	defaults explore.Criteria
	page     *template.Template
	logger   *logging.Logger
}

// New builds a Server over ds with all routes registered.
func New(ds *passenger.Dataset, opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = logging.Global()
	}
	if opts.ReadTimeout <= 0 {
		opts.ReadTimeout = DefaultReadTimeout
	}
	logger := opts.Logger.With("component", "server")

	explorer := explore.NewExplorer(ds, explore.Options{
		HistogramBins: opts.HistogramBins,
		Logger:        logger,
	})

	defaults := explorer.Defaults()
	if opts.Defaults != nil {
		defaults = *opts.Defaults
	}

	renderer := render.New(opts.ChartWidth, opts.ChartHeight)
	renderer.Logger = logger

	s := &Server{
		explorer: explorer,
		renderer: renderer,
		defaults: defaults,
		page:     template.Must(template.New("dashboard.html").Funcs(templateFuncs).ParseFS(templateFS, "templates/dashboard.html")),
		logger:   logger,
	}

	s.app = fiber.New(fiber.Config{
		AppName:               AppName,
		ReadTimeout:           opts.ReadTimeout,
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler(logger),
	})

	s.app.Use(requestID())
	s.app.Use(recover.New())
	s.app.Use(accessLog(logger))
	s.app.Use(metrics())

	s.routes()
	return s
}

func (s *Server) routes() {
	s.app.Get("/", s.handleDashboard)
	s.app.Get("/healthz", s.handleHealth)
	s.app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := s.app.Group("/api")
	api.Get("/options", s.handleOptions)
	api.Get("/summary", s.handleSummary)
	api.Get("/passengers", s.handlePassengers)

	s.app.Get("/charts/:file", s.handleChart)
}

// App exposes the fiber app, mainly for app.Test in tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen serves on addr until Shutdown is called.
func (s *Server) Listen(addr string) error {
	s.logger.Info("starting server", "addr", addr, "passengers", s.explorer.Dataset().Len())
	return s.app.Listen(addr)
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down server")
	return s.app.ShutdownWithContext(ctx)
}

// errorHandler renders handler errors as JSON.
func errorHandler(logger *logging.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Internal Server Error"

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
			message = e.Message
		}

		if code >= fiber.StatusInternalServerError {
			logger.WithContext(c.UserContext()).Error("request error",
				"status", code,
				"error", err.Error(),
				"path", c.Path(),
				"method", c.Method(),
			)
		}

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    code,
				"message": message,
			},
		})
	}
}
