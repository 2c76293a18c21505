// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"github.com/ps-vitor/homefolio/internal/api/handlers"
	"github.com/ps-vitor/homefolio/internal/charts"
	"github.com/ps-vitor/homefolio/internal/config"
	"github.com/ps-vitor/homefolio/internal/services"
	"github.com/ps-vitor/homefolio/pkg/logger"
)

func main() {
	configDir := flag.String("config", "configs", "directory holding app.yaml and scraping.yaml")
	flag.Parse()

	log := logger.New("api")

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Err(err, "loading config")
		os.Exit(1)
	}
	log.SetDebug(cfg.App.Debug)

	// Setup dependencies
	fetcher, err := services.NewFetcher(cfg.Scraping)
	if err != nil {
		log.Err(err, "building fetcher")
		os.Exit(1)
	}
	listingSvc := services.NewListingService(fetcher, log.With("service", "listing"))
	renderer := charts.NewRenderer(cfg.Charts.Options())

	api := handlers.NewAPIHandler(
		handlers.NewListingHandler(listingSvc),
		handlers.NewChartsHandler(renderer),
	)

	r := mux.NewRouter()
	api.RegisterRoutes(r)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("server running on ", srv.Addr, " (engine ", cfg.Scraping.Engine, ")")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Err(err, "serve")
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT)
	<-stop
	log.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Err(err, "shutdown")
	}
}
