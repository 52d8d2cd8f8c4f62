package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dmpolo/organiserd/internal/assistant"
	"github.com/dmpolo/organiserd/internal/mirror"
	"github.com/dmpolo/organiserd/internal/scheduler"
	"github.com/dmpolo/organiserd/internal/store"
	"github.com/dmpolo/organiserd/internal/storage"
	"github.com/dmpolo/organiserd/internal/update"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "organiserd failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := update.RuntimeConfigFromEnv()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	blobs, err := storage.OpenSQLite(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer blobs.Close()

	surface, err := mirror.NewFileSurface(cfg.MirrorPath)
	if err != nil {
		return fmt.Errorf("open mirror: %w", err)
	}

	tasks := store.New(blobs, surface, logger)
	syncer := mirror.NewSyncer(tasks, surface, logger)

	refresh := scheduler.NewEngine(16)
	refresh.Start()
	defer refresh.Stop()

	services := update.Services{
		Tasks:   tasks,
		Sync:    syncer,
		Refresh: refresh,
		Now:     time.Now,
	}
	if cfg.OpenAIAPIKey != "" {
		proposer, err := assistant.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL)
		if err != nil {
			return fmt.Errorf("configure assistant: %w", err)
		}
		services.Proposer = proposer
	}

	if cfg.SyncOnStart {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if _, err := syncer.SyncFromMirror(ctx); err != nil {
			logger.Warn("startup sync failed", "error", err)
		}
		cancel()
	}

	program := tea.NewProgram(update.NewModel(services))
	if _, err := program.Run(); err != nil {
		return err
	}
	return nil
}
