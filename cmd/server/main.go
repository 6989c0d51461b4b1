package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dbenedek/docnav/internal/api"
	"github.com/dbenedek/docnav/internal/check"
	"github.com/dbenedek/docnav/internal/config"
	"github.com/dbenedek/docnav/internal/sitenav"
	"github.com/dbenedek/docnav/internal/watch"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	loader := watch.Loader{
		ContentRoot: cfg.ContentRoot,
		NavFile:     cfg.NavFile,
		Ignore:      cfg.Ignore,
		Fallback:    sitenav.Tree,
	}

	snap, err := loader.Build()
	if err != nil {
		log.Error("failed to load navigation", "error", err)
		os.Exit(1)
	}
	check.Report(log, snap.Issues)
	if cfg.Strict && check.Errors(snap.Issues) > 0 {
		log.Error("navigation checks failed", "errors", check.Errors(snap.Issues))
		os.Exit(1)
	}
	log.Info("navigation loaded",
		"entries", len(snap.Tree),
		"documents", snap.Index.Len(),
		"issues", len(snap.Issues),
	)

	store := watch.NewStore(snap)

	var wg sync.WaitGroup
	if cfg.Watch {
		watcher, err := watch.NewWatcher(loader, store, cfg.ReloadDebounce, log)
		if err != nil {
			log.Error("failed to start watcher", "error", err)
			os.Exit(1)
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			watcher.Run(ctx)
		}()
	}

	srv := api.NewServer(store, loader, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		cancel()
		wg.Wait()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	log.Info("starting docnav", "port", cfg.Port, "content_root", cfg.ContentRoot)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
