package cmd

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"sportapp/internal/components"
	"sportapp/internal/config"
)

// Run starts the binary named serviceName and blocks until SIGINT or SIGTERM.
func Run(serviceName string) error {
	cfg, err := config.Load()
	if err != nil {
		components.SetupLogger("local").Error("load config failed", "err", err)
		return err
	}
	logger := components.SetupLogger(cfg.Env).With("service", serviceName)

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	comps, err := components.InitComponents(ctx, serviceName, cfg, logger)
	if err != nil {
		logger.Error("could not init components", "err", err)
		return err
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := comps.HttpServer.Run(ctx); err != nil {
			logger.Error("http server failed", "err", err)
			stop()
		}
		logger.Info("http server stopped")
	}()

	if comps.Poller != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			comps.Poller.Run(ctx)
		}()
	}
	if comps.Forwarder != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			comps.Forwarder.Run(ctx)
		}()
	}

	quitChan := make(chan os.Signal, 1)
	signal.Notify(quitChan, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-quitChan:
		logger.Info("captured signal, initiating shutdown", "signal", sig.String())
	case <-ctx.Done():
		logger.Warn("server exited, initiating shutdown")
	}
	stop()

	wg.Wait()

	logger.Info("shutting down the services...")
	comps.ShutdownAll()
	logger.Info("gracefully shut down")

	return nil
}
