package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/cosmic-community/luxe-fashion-boutique-clone/api/routes"
	"github.com/cosmic-community/luxe-fashion-boutique-clone/internal/auth"
	cartsvc "github.com/cosmic-community/luxe-fashion-boutique-clone/internal/cart"
	"github.com/cosmic-community/luxe-fashion-boutique-clone/internal/catalog"
	"github.com/cosmic-community/luxe-fashion-boutique-clone/internal/contact"
	"github.com/cosmic-community/luxe-fashion-boutique-clone/pkg/config"
	"github.com/cosmic-community/luxe-fashion-boutique-clone/pkg/logger"
	"github.com/cosmic-community/luxe-fashion-boutique-clone/pkg/metrics"
	"github.com/cosmic-community/luxe-fashion-boutique-clone/pkg/redis"
	"github.com/cosmic-community/luxe-fashion-boutique-clone/pkg/sendgrid"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	redisClient, err := redis.New(context.Background(), cfg.Redis)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	cms, err := catalog.NewClient(cfg.Cosmic)
	if err != nil {
		logg.Error(context.Background(), "failed to create cosmic client", err)
		os.Exit(1)
	}

	var mailer *sendgrid.Client
	if cfg.Sendgrid.APIKey != "" {
		mailer, err = sendgrid.New(cfg.Sendgrid)
		if err != nil {
			logg.Error(context.Background(), "failed to create sendgrid client", err)
			os.Exit(1)
		}
	} else {
		logg.Warn(context.Background(), "sendgrid api key not set, contact form disabled")
	}

	authService := auth.NewService(cms, cfg.JWT, cfg.Password, logg)
	cartService := cartsvc.NewService(cartsvc.NewRedisStore(redisClient, cfg.Cart), cms, logg)
	contactService := contact.NewService(mailer, cfg.Contact, logg)

	promRegistry := prometheus.NewRegistry()
	promRegistry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	httpMetrics := metrics.NewHTTPMetrics(promRegistry)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, redisClient, cms, authService, cartService, contactService, httpMetrics, promRegistry),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
