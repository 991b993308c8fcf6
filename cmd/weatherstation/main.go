package main

import (
	"context"
	"log"
	"os"

	"github.com/fatih/color"

	"github.com/weatherstation/client/internal/config"
	"github.com/weatherstation/client/internal/delivery/cli"
	"github.com/weatherstation/client/internal/service"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("weatherstation: ")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}
	if cfg.NoColor {
		color.NoColor = true
	}

	weatherSvc := service.NewWeatherService(cfg.OpenWeatherAPIKey, cfg.OpenWeatherBaseURL, cfg.RequestTimeout)

	session := cli.NewSession(weatherSvc, os.Stdin, color.Output, color.Error)
	if err := session.Run(context.Background()); err != nil {
		log.Fatalf("%v", err)
	}
}
