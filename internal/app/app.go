package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"mysched/internal/config"
	"mysched/internal/domain"
	apphttp "mysched/internal/http"
	"mysched/internal/http/handlers"
	"mysched/internal/scheduler"
	"mysched/internal/service"
	"mysched/internal/sheets"
)

type App struct {
	cfg       config.Config
	logger    *slog.Logger
	roster    *service.RosterService
	httpSrv   *http.Server
	scheduler *scheduler.Scheduler
}

func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := newLogger(cfg.App.Environment)

	var client sheets.Client
	if cfg.Sheets.SpreadsheetID == "" {
		logger.Warn("SHEET_ID is not set; serving without a data source")
		client = sheets.NewNoopClient(logger)
	} else {
		client, err = sheets.NewClient(cfg.Sheets.SpreadsheetID, cfg.Sheets.CellRange, logger)
		if err != nil {
			return nil, fmt.Errorf("build sheets client: %w", err)
		}
	}

	rosterSvc := service.NewRosterService(client, map[domain.WeekKey]string{
		domain.WeekPast:    cfg.Sheets.PastTab,
		domain.WeekCurrent: cfg.Sheets.CurrentTab,
		domain.WeekNext:    cfg.Sheets.NextTab,
	}, logger)
	promotionsSvc := service.NewPromotionsService(client, cfg.Sheets.PromosTab, logger)

	// Initial load mirrors a page load: a failure is visible, not fatal, and
	// the user retries through the refresh endpoint.
	if err := rosterSvc.Refresh(ctx); err != nil {
		logger.Error("initial roster load failed", slog.String("error", err.Error()))
	}

	router := apphttp.NewRouter(apphttp.RouterDependencies{
		Logger:            logger,
		HealthHandler:     handlers.NewHealthHandler(),
		ScheduleHandler:   handlers.NewScheduleHandler(rosterSvc),
		PromotionsHandler: handlers.NewPromotionsHandler(promotionsSvc),
		StaticDir:         cfg.Static.Dir,
	})

	httpSrv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	var sched *scheduler.Scheduler
	if cfg.Scheduler.Enabled {
		sched = scheduler.New(rosterSvc, cfg.Scheduler.PollInterval, logger)
	}

	return &App{
		cfg:       cfg,
		logger:    logger,
		roster:    rosterSvc,
		httpSrv:   httpSrv,
		scheduler: sched,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if a.scheduler != nil {
		go a.scheduler.Run(ctx)
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("http server starting", slog.String("addr", a.httpSrv.Addr))
		if err := a.httpSrv.ListenAndServe(); err != nil {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		return a.shutdown(context.Background())
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return a.shutdown(context.Background())
		}
		_ = a.shutdown(context.Background())
		return err
	}
}

func (a *App) shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := a.httpSrv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	return nil
}
