package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	_ "github.com/mattn/go-sqlite3"

	"dashd/internal/model"
	"dashd/internal/refresh"
	"dashd/internal/state"
	"dashd/internal/storage"
	"dashd/internal/update"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "dashd failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := update.RuntimeConfigFromEnv(update.DefaultRuntimeConfig())

	db, err := sql.Open("sqlite3", cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	if err := storage.MigrateUp(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	repo, err := storage.NewSQLiteRepository(db)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	saved, err := repo.LoadSettings(ctx)
	cancel()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	name := saved.UserName
	if cfg.UserName != "" {
		name = cfg.UserName
	}

	store := state.NewStore(state.Snapshot{
		Name:       name,
		EmojiStyle: saved.EmojiStyle,
		Settings: model.Settings{
			ShowProgressBar: saved.ShowProgressBar,
			EnableGlow:      saved.EnableGlow,
		},
	})

	engine := refresh.NewEngine(cfg.RefreshBuffer)
	engine.Start()
	defer engine.Stop()

	var notifier update.DesktopNotifier = update.NoopDesktopNotifier{}
	if cfg.DesktopNotifications {
		notifier = update.ExecDesktopNotifier{}
	}
	prober := update.DialProber{Addr: cfg.ProbeAddr, Timeout: 2 * time.Second}

	m := update.NewModelWithConfig(store, repo, engine, notifier, prober, cfg)
	program := tea.NewProgram(m)
	if _, err := program.Run(); err != nil {
		return err
	}
	return nil
}
