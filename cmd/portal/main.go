package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/example/workforce-portal/internal/application"
	"github.com/example/workforce-portal/internal/config"
	"github.com/example/workforce-portal/internal/persistence"
	"github.com/example/workforce-portal/internal/persistence/sqlite"
	"github.com/example/workforce-portal/internal/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	level := new(slog.LevelVar)
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	level.Set(cfg.SlogLevel())

	storage, err := sqlite.Open(cfg.SQLiteDSN)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer func() {
		if cerr := storage.Close(); cerr != nil {
			logger.Error("failed to close storage", "error", cerr)
		}
	}()

	if err := storage.Migrate(ctx); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	store := persistence.NewDocumentStore(storage, persistence.SlotNames{
		Data:                cfg.DataSlot,
		SessionMarker:       cfg.SessionSlot,
		PendingVerification: cfg.VerificationSlot,
	}, logger)

	if err := store.Load(ctx); err != nil {
		return fmt.Errorf("load document: %w", err)
	}

	accountID := func() string { return "acc_" + uuid.NewString() }
	now := time.Now

	employeeService := application.NewEmployeeService(store, logger)
	directoryService := application.NewDirectoryService(store)
	requestService := application.NewRequestService(store, now, logger)

	renderer := ui.NewConsoleRenderer(os.Stdout, employeeService, directoryService, requestService)
	navigator := application.NewNavigator(renderer, logger)
	sessionService := application.NewSessionService(store, store, navigator, accountID, logger)
	renderer.BindSession(sessionService)

	if _, err := sessionService.Restore(ctx); err != nil && !errors.Is(err, application.ErrNotFound) {
		return fmt.Errorf("restore session: %w", err)
	}

	if err := navigator.Show(application.SectionHome, false); err != nil {
		return err
	}

	notices := ui.NewNoticeBoard(cfg.NoticeTTL, now)
	prompter := ui.NewPrompter(os.Stdin, os.Stdout)
	app := ui.NewApp(sessionService, employeeService, requestService, navigator, renderer, notices, prompter, logger, os.Stdout)

	if err := app.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
