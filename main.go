// dungeoncrawl plays the dungeon in the local terminal.
//
//	go run . [-config dungeoncrawl.yaml] [-log dungeoncrawl.log]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"dungeoncrawl/internal/config"
	"dungeoncrawl/internal/game"
	"dungeoncrawl/internal/observability"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	logPath := flag.String("log", "dungeoncrawl.log", "log file; the terminal belongs to the game")
	flag.Parse()

	if err := run(*configPath, *logPath); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, logPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if logPath != "" {
		cfg.Logging.Output = []string{logPath}
	}
	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	g, err := game.New(game.Options{Config: cfg, Logger: logger})
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = g.Run(ctx, screen)
	screen.Fini()
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	if err := g.SaveRunLog(); err != nil {
		logger.Warn("saving run log", zap.Error(err))
	}
	l := g.RunLog()
	fmt.Printf("Run %s: %d turns, %d kills.\n", l.RunID, l.Turns, l.Kills)
	return nil
}
