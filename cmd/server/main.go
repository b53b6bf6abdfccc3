package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	httpadapter "audithook/internal/adapters/http"
	"audithook/internal/api"
	"audithook/internal/banner"
	"audithook/internal/config"
	"audithook/internal/ports"
	auditsvc "audithook/internal/services/audits"
	"audithook/internal/services/evaluator"
	netsvc "audithook/internal/services/network"
	ressvc "audithook/internal/services/resources"
	"audithook/internal/workers/reportwriter"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	banner.Print(cfg.Network, cfg.Store.Driver)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, closer, err := openStore(ctx, cfg.Store)
	if err != nil {
		log.Fatalf("store: %v", err)
	}
	defer func() {
		if err := closer.Close(); err != nil {
			log.Printf("store close: %v", err)
		}
	}()

	// Optional background report writers
	var writer *reportwriter.Writer
	var reports ports.AuditStore = store
	if cfg.Store.Workers > 0 {
		writer = reportwriter.Run(ctx, store, cfg.Store.Workers, cfg.Store.Queue)
		reports = writer
		log.Printf("report writers started: %d (queue %d)", cfg.Store.Workers, cfg.Store.Queue)
	}

	validator, err := api.NewValidator()
	if err != nil {
		log.Fatalf("openapi: %v", err)
	}

	audits := auditsvc.New(evaluator.New(), reports, auditsvc.WithUserID(cfg.DemoUserID))
	network := netsvc.New(netsvc.Config{
		Network:         cfg.Network,
		ExplorerBaseURL: cfg.ExplorerBaseURL,
		ContractsPath:   cfg.ContractsPath,
		ReadTimeout:     cfg.FileReadTimeout,
	})
	srv := httpadapter.New(audits, ressvc.New(), network, validator).WithMaxBodyBytes(cfg.MaxBodyBytes)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(httpadapter.Recoverer)
	r.Use(httpadapter.Timeout(cfg.RequestTimeout))
	r.Mount("/", srv.Routes())

	hs := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() { errCh <- hs.ListenAndServe() }()
	log.Printf("listening on %s (%s, base-%s)", cfg.ListenAddr, cfg.Env, cfg.Network)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		log.Printf("shutting down on %s", sig)
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Printf("server error: %v", err)
		}
	}

	shutdownCtx, stop := context.WithTimeout(context.Background(), 10*time.Second)
	defer stop()
	if err := hs.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
	if writer != nil {
		if err := writer.Close(); err != nil {
			log.Printf("report writer close: %v", err)
		}
	}
	cancel()
}
