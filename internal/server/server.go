package server

import (
	"context"
	"log"

	"notes-be/internal/bootstrap"
	"notes-be/internal/config"
	"notes-be/internal/pkg/serverutils"
	"notes-be/internal/websocket"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	app := fiber.New(fiber.Config{
		BodyLimit:             1 * 1024 * 1024, // 1MB
		ErrorHandler:          serverutils.ErrorHandler(container.Logger),
		DisableStartupMessage: cfg.IsProduction(),
	})

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.App.CorsAllowedOrigins,
		AllowHeaders:  "Origin, Content-Type, Accept",
		AllowMethods:  "GET, POST, PUT, DELETE, OPTIONS",
		ExposeHeaders: "Content-Length, Content-Type",
	}))

	if cfg.Tracing.Enabled {
		// OpenTelemetry tracing middleware (traces all HTTP requests)
		app.Use(otelfiber.Middleware())
	}

	app.Use(serverutils.RequestLogger(container.Logger))

	// Static frontend build, falls through to the routes when a file is missing
	if cfg.App.StaticDir != "" {
		app.Static("/", cfg.App.StaticDir)
	}

	// Routes
	registerRoutes(app, container)

	// Must stay last: answers everything no route matched
	app.Use(serverutils.UnknownEndpoint)

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
	}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	log.Printf("✅ Server is running on http://localhost:%s", s.cfg.App.Port)
	return s.app.Listen(":" + s.cfg.App.Port)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

func registerRoutes(app *fiber.App, c *bootstrap.Container) {
	c.HomeController.RegisterRoutes(app)

	api := app.Group("/api")
	c.NoteController.RegisterRoutes(api)

	websocket.RegisterRoutes(app, c.WebSocketHub)
}
