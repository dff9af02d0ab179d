package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"notes-be/internal/bootstrap"
	"notes-be/internal/config"
	"notes-be/internal/server"
	"notes-be/internal/tracer"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer(cfg.Tracing)

	// 3. Bootstrap Dependencies (Container)
	container, err := bootstrap.Build(ctx, cfg)
	if err != nil {
		log.Fatalf("Unable to initialize note store: %v", err)
	}

	// 4. Start Background Services
	log.Println("Background: Starting Consumer Service...")
	if err := container.Start(ctx); err != nil {
		log.Printf("Background Consumer Error: %v", err)
	}

	// 5. Initialize Server
	srv := server.New(cfg, container)

	// 6. Run Server
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Run()
	}()

	select {
	case <-ctx.Done():
		log.Println("Shutting down...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			log.Printf("Server stopped: %v", err)
		}
	}

	// 7. Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
	if err := container.Close(shutdownCtx); err != nil {
		log.Printf("Failed to release resources: %v", err)
	}
	if err := shutdownTracer(shutdownCtx); err != nil {
		log.Printf("Tracer shutdown error: %v", err)
	}
}
