package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/redhat-appstudio/incident-dashboard/internal/config"
	"github.com/redhat-appstudio/incident-dashboard/internal/server"
	"github.com/redhat-appstudio/incident-dashboard/pkg/logger"

	"github.com/joho/godotenv"
)

// main is the entry point for the incident dashboard.
// It performs the following operations:
//  1. Parses command-line flags
//  2. Loads environment variables from .env file if present
//  3. Loads configuration from YAML with environment and flag overrides
//  4. Loads the incident dataset and builds the HTTP server
//  5. Begins listening for HTTP requests until SIGINT or SIGTERM
func main() {
	flags, err := parseFlags(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	if flags.Help {
		flags.showHelp()
		return
	}

	if flags.Version {
		flags.showVersion()
		return
	}

	if err := flags.validate(); err != nil {
		log.Fatalf("Invalid flags: %v", err)
	}

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := config.LoadCached(flags)

	srv := server.New(cfg)
	defer logger.Sync()

	logger.Infof("Starting on port %s", cfg.Port)
	logger.Infof("Environment: %s", cfg.Environment)
	logger.Infof("Log level: %s", cfg.LogLevel)

	if cfg.Dataset.ReloadInterval > 0 {
		logger.Infof("Dataset reload: enabled (interval: %s)", cfg.Dataset.ReloadInterval)
	} else {
		logger.Infof("Dataset reload: disabled")
	}

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit

		logger.Infof("Shutting down...")
		if err := srv.Shutdown(); err != nil {
			logger.Errorf("Shutdown failed: %v", err)
		}
	}()

	if err := srv.Start(); err != nil {
		logger.Fatalf("Server failed to start: %v", err)
	}
}
