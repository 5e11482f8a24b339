package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"

	"github.com/clemensw/pagemap/config"
	"github.com/clemensw/pagemap/pkg/otel"
	"github.com/clemensw/pagemap/server/api"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func main() {
	configFlag := flag.String("config", "config.yaml", "configuration file")

	flag.Parse()

	ctx := context.Background()

	if otel.EnableTelemetry {
		if err := otel.Setup(ctx, "pagemap", "1.0.0"); err != nil {
			slog.Error("unable to initialize telemetry", "error", err)
			os.Exit(1)
		}
	}

	cfg, err := config.Parse(*configFlag)

	if err != nil {
		slog.Error("unable to parse configuration", "error", err)
		os.Exit(1)
	}

	handler, err := api.New(cfg)

	if err != nil {
		slog.Error("unable to create handler", "error", err)
		os.Exit(1)
	}

	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	handler.Attach(r)

	slog.Info("starting server", "address", cfg.Address)

	if err := http.ListenAndServe(cfg.Address, r); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
