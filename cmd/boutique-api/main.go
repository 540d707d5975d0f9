package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lmdupont/boutique-api/docs"
	"github.com/lmdupont/boutique-api/internal/config"
	"github.com/lmdupont/boutique-api/internal/database"
	"github.com/lmdupont/boutique-api/internal/httpx"
	"github.com/lmdupont/boutique-api/internal/order"
	"github.com/lmdupont/boutique-api/internal/product"
	"github.com/lmdupont/boutique-api/internal/review"
)

// @title        Boutique API
// @version      1.0
// @description  API de gestion de produits, commandes et avis.
// @host         localhost:3000
// @BasePath     /
func main() {
	cfg := config.Load()
	log := httpx.NewLogger(cfg.LogLevel)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := database.NewPool(ctx, cfg.PostgresDSN)
	if err != nil {
		log.Error("database connection failed", slog.String("err", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	if err := database.Bootstrap(ctx, pool, log); err != nil {
		log.Error("schema bootstrap failed", slog.String("err", err.Error()))
		os.Exit(1)
	}

	products := product.NewPGRepo(pool)
	orders := order.NewPGRepo(pool)
	reviews := review.NewPGRepo(pool)

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: newRouter(log, products, orders, reviews),
	}

	go func() {
		log.Info("http server listening", slog.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http server failed", slog.String("err", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown failed", slog.String("err", err.Error()))
	}
}
