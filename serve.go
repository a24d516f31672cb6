package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pharmanav/ndcfinder/config"
	"github.com/pharmanav/ndcfinder/data"
	"github.com/pharmanav/ndcfinder/logging"
	"github.com/pharmanav/ndcfinder/resolver"
	"github.com/pharmanav/ndcfinder/scheduler"
	"github.com/pharmanav/ndcfinder/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the NDC lookup HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

func runServe() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logging.InitLogger(cfg.LogDir, cfg.LogLevel)

	client := resolver.NewClient(cfg, false)
	res := resolver.New(client, client)

	statusContainer := data.NewStatusContainer()

	monitor := scheduler.NewUpstreamMonitor(client, statusContainer,
		time.Duration(cfg.MonitorIntervalMin)*time.Minute)
	if err := monitor.Start(); err != nil {
		return err
	}
	defer monitor.Stop()

	srv := server.NewServer(cfg, res, statusContainer)

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	return srv.Shutdown(ctx)
}
