package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/sit-project/sit-api/internal/api"
	"github.com/sit-project/sit-api/internal/config"
	"github.com/sit-project/sit-api/internal/db"
	"github.com/sit-project/sit-api/internal/jobs"
	"github.com/sit-project/sit-api/internal/logger"
	"github.com/sit-project/sit-api/internal/pkg/mailer"
	"github.com/sit-project/sit-api/internal/pkg/notify"
	"github.com/sit-project/sit-api/internal/pkg/openweather"
	"github.com/sit-project/sit-api/internal/pkg/storage"
	"github.com/sit-project/sit-api/internal/repository"
	"github.com/sit-project/sit-api/internal/repository/dao"
	"github.com/sit-project/sit-api/internal/service"
)

const shutdownTimeout = 15 * time.Second

func Start() error {
	conf, err := config.Load("./cmd/app/config.yml")
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}

	dbURL := os.Getenv("DATABASE_URL")
	var gormDB *gorm.DB
	if dbURL != "" {
		gormDB, err = db.OpenPostgresWithURL(dbURL)
	} else {
		gormDB, err = db.Open(conf.Database)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize database -> %w", err)
	}

	if err = dao.InitTables(gormDB); err != nil {
		return fmt.Errorf("failed to migrate tables -> %w", err)
	}

	files, err := storage.NewLocal(conf.Storage)
	if err != nil {
		return fmt.Errorf("failed to initialize storage -> %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	hub := notify.NewHub(conf.API.AllowedCORSDomains)
	go hub.Run(ctx)

	deps := api.Deps{
		DB:     gormDB,
		Files:  files,
		Mailer: newMailer(conf.Mail),
		Hub:    hub,
	}
	if conf.Weather.APIKey != "" {
		deps.Forecast = openweather.NewClient(conf.Weather, nil)
	} else {
		zap.L().Warn("weather.api_key is empty, forecast sync disabled")
	}

	s, err := api.NewServer(conf, deps)
	if err != nil {
		return fmt.Errorf("failed to initialize server -> %w", err)
	}
	go s.LoginLimiter.Cleanup(ctx, 10*time.Minute)

	scheduler, err := newScheduler(conf, gormDB, s)
	if err != nil {
		return fmt.Errorf("failed to initialize jobs -> %w", err)
	}
	scheduler.Start()

	addr := ":" + s.Config.API.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		zap.L().Info(fmt.Sprintf("starting server at %v", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err = <-serveErr:
		if err != nil {
			return fmt.Errorf("failed to start the server -> %w", err)
		}
	case <-ctx.Done():
		zap.L().Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	scheduler.Stop(shutdownCtx)
	if err = srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down the server -> %w", err)
	}

	return nil
}

func newMailer(conf *config.MailConfig) service.Mailer {
	if conf.ResendAPIKey == "" {
		zap.L().Warn("mail.resend_api_key is empty, reset emails are only logged")
		return mailer.Log{}
	}

	return mailer.NewResend(conf)
}

func newScheduler(conf *config.AppConfig, gormDB *gorm.DB, s *api.Server) (*jobs.Scheduler, error) {
	cleanup := service.NewCleanupService(
		repository.NewTokenRepository(dao.NewTokenDAO(gormDB)),
		repository.NewNotificationRepository(dao.NewNotificationDAO(gormDB)),
		conf.Jobs.BatchSize,
		conf.Jobs.NotificationRetention,
	)

	if conf.Weather.APIKey == "" {
		return jobs.NewScheduler(conf, cleanup, nil)
	}

	return jobs.NewScheduler(conf, cleanup, s.Weather)
}
