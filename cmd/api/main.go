package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"
	"github.com/spf13/pflag"

	"eventplanner/config"
	_ "eventplanner/docs"
	"eventplanner/internal/adapters/catalog"
	"eventplanner/internal/adapters/email"
	"eventplanner/internal/adapters/ical"
	httpDelivery "eventplanner/internal/delivery/http"
	"eventplanner/internal/delivery/http/controllers"
	"eventplanner/internal/delivery/http/middleware"
	"eventplanner/internal/domain"
	"eventplanner/internal/repository/memory"
	"eventplanner/internal/repository/postgres"
	"eventplanner/internal/services"
)

// @title Event Planner API
// @version 1.0
// @description Multi-resource availability and booking selection for event planning.
// @BasePath /
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var port, catalogPath, envFile string
	flagSet := pflag.NewFlagSet("api", pflag.ContinueOnError)
	flagSet.StringVar(&port, "port", "", "HTTP port (overrides PORT)")
	flagSet.StringVar(&catalogPath, "catalog", "", "provider catalog YAML file (overrides CATALOG_PATH)")
	flagSet.StringVar(&envFile, "env-file", "", "dotenv file to load instead of .env")
	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	var envFiles []string
	if envFile != "" {
		envFiles = append(envFiles, envFile)
	}
	cfg, err := config.Load(envFiles...)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if port != "" {
		cfg.Port = port
	}
	if catalogPath != "" {
		cfg.CatalogPath = catalogPath
	}

	logger := config.NewLogger()
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var (
		source       domain.CatalogSource
		providerRepo domain.ProviderRepository
		draftRepo    domain.DraftRepository
	)
	store := catalog.NewStore(nil)
	if cfg.DBUrl != "" {
		db, err := sql.Open("postgres", cfg.DBUrl)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer db.Close()
		if err := db.PingContext(ctx); err != nil {
			return fmt.Errorf("ping database: %w", err)
		}
		if err := postgres.Migrate(ctx, db); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		providerRepo = postgres.NewProviderRepository(db)
		draftRepo = postgres.NewDraftRepository(db)
		source = catalog.NewRepositorySource(providerRepo)
		logger.Info("using postgres catalog and drafts")
	} else {
		if strings.HasPrefix(cfg.CatalogPath, "http://") || strings.HasPrefix(cfg.CatalogPath, "https://") {
			source = catalog.NewHTTPSource(cfg.CatalogPath, &http.Client{Timeout: cfg.PlannerTimeout}, cfg.CatalogHorizonDays)
		} else {
			source = catalog.NewFileSource(cfg.CatalogPath, cfg.CatalogHorizonDays)
		}
		providerRepo = catalog.NewStoreRepository(store)
		draftRepo = memory.NewDraftRepository()
		logger.Info("using catalog document and in-memory drafts", "catalog", cfg.CatalogPath)
	}

	refresher := catalog.NewRefresher(source, store, logger, cfg.PlannerTimeout)
	if err := refresher.Refresh(ctx); err != nil {
		return fmt.Errorf("initial catalog load: %w", err)
	}

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: email.SESConfig{
			Region:             cfg.Email.AWSRegion,
			AccessKeyID:        cfg.Email.AWSAccessKeyID,
			SecretAccessKey:    cfg.Email.AWSSecretAccessKey,
			InsecureSkipVerify: cfg.Email.SESInsecureSkipVerify,
		},
	}, logger)
	if err != nil {
		return fmt.Errorf("create mailer: %w", err)
	}
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer(), logger)

	planner := services.NewPlannerService(
		store,
		draftRepo,
		emailService,
		ical.NewExporter(),
		logger,
		cfg.PlannerTimeout,
		cfg.SessionTTL,
		cfg.MaxEventSpanDays,
	)

	scheduler := cron.New()
	if _, err := refresher.Schedule(scheduler, cfg.CatalogRefreshSpec); err != nil {
		return fmt.Errorf("schedule catalog refresh: %w", err)
	}
	if _, err := scheduler.AddFunc("@every 1m", func() {
		planner.PurgeExpired(context.Background(), time.Now())
	}); err != nil {
		return fmt.Errorf("schedule session purge: %w", err)
	}
	scheduler.Start()
	defer func() { <-scheduler.Stop().Done() }()

	router := httpDelivery.NewRouter(
		controllers.NewPlannerController(logger, planner),
		controllers.NewCatalogController(logger, providerRepo),
	)
	var handler http.Handler = router
	handler = middleware.LoggingMiddleware(logger, handler)
	handler = middleware.RequestID(handler)
	handler = middleware.CORS(cfg.CORSAllowedOrigins, handler)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", srv.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
	case <-ctx.Done():
	}

	logger.Info("server is shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("server stopped gracefully")
	return nil
}
