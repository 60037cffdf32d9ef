package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ymgch/epg-comb/app/api"
	"github.com/ymgch/epg-comb/app/cfg"
	"github.com/ymgch/epg-comb/app/config"
	"github.com/ymgch/epg-comb/app/database"
	"github.com/ymgch/epg-comb/app/ingest"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	// Load configuration from environment variables and command-line flags
	appConfig, err := cfg.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if appConfig == nil {
		// Help was shown, exit gracefully
		return
	}

	logLevel := slog.LevelInfo
	if appConfig.Debug {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))

	log.Printf("Starting EPG Comb server (version %s)...", appConfig.Version)

	// Database connection
	log.Printf("Opening database at %s...", appConfig.DBPath)
	db, err := database.NewConnection(appConfig.DBPath)
	if err != nil {
		log.Fatal("Failed to open database:", err)
	}
	defer db.Close()

	version, dirty, err := database.RunMigrations(db)
	if err != nil {
		log.Fatal("Failed to run migrations:", err)
	}
	log.Printf("Database ready (schema version %d, dirty=%v)", version, dirty)

	// Load area configurations
	log.Printf("Loading area configurations from %s...", appConfig.ConfigDir)
	loader := config.NewLoader(appConfig.ConfigDir)
	configs, err := loader.LoadAll()
	if err != nil {
		log.Fatal("Failed to load configurations:", err)
	}
	log.Printf("Loaded %d area configurations", len(configs))

	// Initialize repositories and core components
	programRepo := database.NewProgramRepository(db)
	stationRepo := database.NewStationRepository(db)
	ingestor := ingest.NewIngestor(programRepo, stationRepo)

	// Initialize HTTP server
	log.Println("Initializing HTTP server...")
	apiHandler := api.NewHandler(programRepo, stationRepo, ingestor, configs)
	server := api.NewServer(apiHandler, appConfig.APIAccessKey)

	// Create HTTP server with timeouts
	httpServer := &http.Server{
		Addr:         ":" + appConfig.Port,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start HTTP server in a goroutine
	serverErrChan := make(chan error, 1)
	go func() {
		log.Printf("Starting HTTP server on port %s", appConfig.Port)
		log.Printf("API endpoints available:")
		log.Printf("  Stations:      http://localhost:%s/stations", appConfig.Port)
		log.Printf("  Timeline:      http://localhost:%s/stations/<id>/programs?date=yyyyMMdd", appConfig.Port)
		log.Printf("  On air:        http://localhost:%s/stations/<id>/now", appConfig.Port)
		log.Printf("  Health check:  http://localhost:%s/health", appConfig.Port)
		log.Printf("  Statistics:    http://localhost:%s/stats", appConfig.Port)

		if appConfig.APIAccessKey != "" {
			log.Printf("  Ingest:        http://localhost:%s/api/ingest?area=<id> (POST, requires API key)", appConfig.Port)
			log.Printf("  Delete:        http://localhost:%s/api/stations/<id>/programs?date=yyyyMMdd (DELETE, requires API key)", appConfig.Port)
		} else {
			log.Printf("  Ingestion endpoints: DISABLED (API_ACCESS_KEY not set)")
		}

		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// Wait for interrupt signal or server error
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	log.Println("EPG Comb server started successfully!")
	log.Println("Press Ctrl+C to shutdown gracefully...")

	select {
	case sig := <-sigChan:
		log.Printf("Received signal: %v", sig)
	case err := <-serverErrChan:
		log.Printf("Server error: %v", err)
	}

	// Graceful shutdown
	log.Println("Shutting down server gracefully...")

	// Create shutdown context with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown HTTP server
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	} else {
		log.Println("HTTP server stopped")
	}

	log.Println("EPG Comb server shutdown complete")
}
