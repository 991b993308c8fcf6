package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/weatherstation/client/internal/config"
	"github.com/weatherstation/client/internal/delivery/http"
	"github.com/weatherstation/client/internal/service"
)

func main() {
	// Configuration (.env is optional)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	// Dependency Injection: Services
	weatherSvc := service.NewWeatherService(cfg.OpenWeatherAPIKey, cfg.OpenWeatherBaseURL, cfg.RequestTimeout)

	// Fiber App
	app := http.NewApp(weatherSvc)

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on :%s (%s)", cfg.Port, cfg.Env)
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited gracefully")
}
