package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/iudanet/kassasync/internal/terminal/api"
	"github.com/iudanet/kassasync/internal/terminal/auth"
	"github.com/iudanet/kassasync/internal/terminal/cli"
	"github.com/iudanet/kassasync/internal/terminal/conflict"
	"github.com/iudanet/kassasync/internal/terminal/config"
	"github.com/iudanet/kassasync/internal/terminal/data"
	"github.com/iudanet/kassasync/internal/terminal/iocli"
	"github.com/iudanet/kassasync/internal/terminal/netmon"
	"github.com/iudanet/kassasync/internal/terminal/scheduler"
	"github.com/iudanet/kassasync/internal/terminal/storage/boltdb"
	"github.com/iudanet/kassasync/internal/terminal/syncer"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Глобальные флаги. Значения из конфига можно переопределить.
	showVersion := flag.Bool("version", false, "Show version information")
	configPath := flag.String("config", "", "Path to TOML config file")
	serverURL := flag.String("server", "", "Server URL (overrides config)")
	dbPath := flag.String("db", "", "Path to local database (overrides config)")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *serverURL != "" {
		cfg.ServerURL = *serverURL
	}
	if *dbPath != "" {
		cfg.DBPath = *dbPath
	}

	logger := newLogger(cfg.LogLevel)

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage(iocli.NewStdio())
		os.Exit(1)
	}
	command := args[0]

	// Контекст завершается по Ctrl+C, чтобы watch останавливался штатно
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	boltStorage, err := boltdb.New(ctx, cfg.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	apiClient := api.NewClient(cfg.ServerURL)

	authService := auth.NewService(apiClient, boltStorage, logger)
	dataService := data.NewService(boltStorage, boltStorage)
	conflictService := conflict.NewService(boltStorage, boltStorage, logger)

	coordinator := syncer.NewCoordinator(
		apiClient,
		boltStorage,
		boltStorage,
		boltStorage,
		boltStorage,
		authService,
		syncer.Config{
			PageLimit:   cfg.PageLimit,
			MaxAttempts: cfg.MaxAttempts,
			BackoffCap:  cfg.BackoffCap(),
			RemoteWins:  cfg.RemoteWins(),
		},
		logger,
	)

	monitor := netmon.New(apiClient, cfg.ProbeInterval(), logger)
	sched := scheduler.New(coordinator, monitor, cfg.SyncInterval(), logger)

	terminal := cli.New(
		authService,
		dataService,
		conflictService,
		coordinator,
		boltStorage,
		boltStorage,
		monitor,
		sched,
		iocli.NewStdio(),
	)

	if err := terminal.Run(ctx, command, args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)
	return logger
}

func printVersion() {
	fmt.Printf("KassaSync Terminal\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
