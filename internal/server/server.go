package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/goccy/go-json"

	"github.com/redhat-appstudio/incident-dashboard/apis/common"
	"github.com/redhat-appstudio/incident-dashboard/internal/config"
	"github.com/redhat-appstudio/incident-dashboard/internal/handlers"
	"github.com/redhat-appstudio/incident-dashboard/internal/version"
	"github.com/redhat-appstudio/incident-dashboard/pkg/github"
	"github.com/redhat-appstudio/incident-dashboard/pkg/incidents"
	"github.com/redhat-appstudio/incident-dashboard/pkg/logger"
	"github.com/redhat-appstudio/incident-dashboard/pkg/monitors/dataset"
	"github.com/redhat-appstudio/incident-dashboard/pkg/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// Server represents the HTTP server instance with all its components.
type Server struct {
	// app is the Fiber HTTP application instance
	app *fiber.App

	// cfg contains the server configuration
	cfg *config.Config

	// store holds the incident snapshot shared by all handlers
	store *incidents.Store

	// source is the dataset source; closed on shutdown when it holds connections
	source storage.Source

	// datasetMonitor loads the incident source and reloads it when configured
	datasetMonitor *dataset.Monitor
}

// New creates and initializes a new Server instance with the provided configuration.
// The incident dataset is loaded before New returns. A missing or unreadable
// dataset does not stop the server; the dashboard reports it instead.
func New(cfg *config.Config) *Server {
	// Initialize logger first
	if err := logger.InitFromConfig(cfg); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	store := incidents.NewStore(nil)

	source, err := storage.NewSource(storage.Config{
		Kind: cfg.Dataset.Source,
		Path: cfg.Dataset.CSVPath,
		Redis: storage.RedisConfig{
			Address:   cfg.Dataset.Redis.Address,
			Password:  cfg.Dataset.Redis.Password,
			Database:  cfg.Dataset.Redis.Database,
			KeyPrefix: cfg.Dataset.Redis.KeyPrefix,
		},
	})
	if err != nil {
		logger.Fatalf("Failed to initialize incident source: %v", err)
	}
	logger.Infof("Incident source: %s (%s)", source.Describe(), cfg.Dataset.Source)

	datasetMonitor := dataset.NewMonitor(source, store, cfg.Dataset.ReloadInterval)
	datasetMonitor.LoadOnce(context.Background())

	var githubClient github.Client
	if cfg.GitHub.Enabled {
		githubClient = github.NewClient(&github.Config{
			Token:   cfg.GitHub.Token,
			BaseURL: cfg.GitHub.BaseURL,
			Timeout: cfg.GitHub.Timeout,
		})
		if cfg.GitHub.Token == "" {
			logger.Warnf("GitHub lookup enabled without GITHUB_TOKEN - requests are rate limited")
		}
		logger.Infof("GitHub commit lookup: enabled")
	} else {
		logger.Infof("GitHub commit lookup: disabled")
	}

	app := newApp()

	handlers.SetupRoutes(app, handlers.Dependencies{
		Store:  store,
		Source: source.Describe(),
		GitHub: githubClient,
	})

	return &Server{
		app:            app,
		cfg:            cfg,
		store:          store,
		source:         source,
		datasetMonitor: datasetMonitor,
	}
}

// newApp creates the Fiber app with the JSON codec, error handler and
// middleware shared by every route.
func newApp() *fiber.App {
	// Create Fiber app with faster JSON encoder
	app := fiber.New(fiber.Config{
		AppName:     version.AppName + " " + version.GetVersion(),
		JSONEncoder: json.Marshal,
		JSONDecoder: json.Unmarshal,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(common.ErrorResponse{
				Error:   true,
				Message: err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))
	app.Use(logger.RequestLogger())

	return app
}

// Start starts the dataset reloads (if enabled) and the HTTP server.
// Returns an error if the server fails to start.
func (s *Server) Start() error {
	if s.cfg.Dataset.ReloadInterval > 0 {
		logger.Infof("Starting dataset reload thread (interval: %s)...", s.cfg.Dataset.ReloadInterval)
		go s.datasetMonitor.Start()
	}

	return s.app.Listen(":" + s.cfg.Port)
}

// Shutdown stops dataset reloads and the HTTP server, then releases the
// dataset source.
func (s *Server) Shutdown() error {
	s.datasetMonitor.Stop()
	err := s.app.Shutdown()

	if closer, ok := s.source.(io.Closer); ok {
		if closeErr := closer.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("failed to close dataset source: %w", closeErr))
		}
	}

	return err
}
