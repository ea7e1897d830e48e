package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/chzyer/readline"

	"roster/local-app/src/pkg/cli"
	"roster/local-app/src/pkg/config"
	"roster/local-app/src/pkg/data"
	"roster/local-app/src/pkg/log"
	"roster/local-app/src/pkg/session"
	"roster/local-app/src/pkg/storage"
)

// bootstrap initializes and runs the roster application.
// It loads configuration, initializes components (logger, storage, roster manager,
// session, readline, CLI), runs the CLI, and handles graceful shutdown.
func bootstrap() error {
	ctx := context.Background()

	// Set up channel to receive interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	// Load configuration
	if err := config.ConfigLoad(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	cfg := config.ConfigGet()

	logger, err := log.NewLogger(cfg, log.ParseLevel(cfg.LogLevel))
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		if err := logger.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to close logger: %v\n", err)
		}
	}()

	logger.Info(ctx, "Application started", log.Fields{"storeType": cfg.StoreType, "preserveCase": cfg.PreserveCase})

	store, err := storage.NewStorage(cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize storage", log.Fields{"error": err})
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error(ctx, "Failed to close storage", log.Fields{"error": err})
		}
	}()

	sess := session.NewSession(data.NewRosterManager(store, logger), logger)

	rl, err := readline.NewEx(cli.ReaderConfig(cfg, readline.DefaultIsTerminal()))
	if err != nil {
		logger.Error(ctx, "Failed to initialize readline", log.Fields{"error": err})
		return fmt.Errorf("failed to initialize readline: %w", err)
	}
	defer rl.Close()

	cliInstance := cli.NewCLI(sess, rl, rl.Stdout(), cfg, logger)

	// SIGINT is normally consumed by readline as ErrInterrupt; this covers SIGTERM
	// and interrupts delivered while the terminal is not in raw mode.
	go func() {
		sig := <-sigChan
		logger.Info(ctx, "Received signal. Shutting down...", log.Fields{"signal": sig.String()})
		cliInstance.Stop()
	}()

	if err := cliInstance.Run(ctx); err != nil {
		logger.Error(ctx, "CLI error", log.Fields{"error": err})
		return fmt.Errorf("CLI error: %w", err)
	}

	logger.Info(ctx, "Application shutting down", nil)
	return nil
}
