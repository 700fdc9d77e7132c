package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tracking/cmd"
	http_adapter "tracking/internal/adapters/in/http"
	"tracking/internal/adapters/out/kafka"
	"tracking/internal/adapters/out/postgres"
	"tracking/internal/adapters/out/redis"
	"tracking/internal/core/ports"
	"tracking/internal/pkg/logger"

	_ "github.com/lib/pq"
	"go.uber.org/zap"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gorm_logger "gorm.io/gorm/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs, err := cmd.LoadConfig(".")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(configs.Environment, configs.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := run(configs, log); err != nil {
		log.Fatal("application stopped", zap.Error(err))
	}
}

func run(configs cmd.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB, closeDB, err := openDatabase(configs.Database)
	if err != nil {
		return err
	}
	defer closeDB()

	if err := postgres.Migrate(gormDB); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	app, err := cmd.NewCompositionRoot(configs, gormDB, log)
	if err != nil {
		return err
	}
	log.Info("registries hosted",
		zap.Stringer("courier", app.CourierAddress()),
		zap.Stringer("container", app.ContainerAddress()),
	)

	routerOpts := http_adapter.RouterOptions{
		Logger:         log,
		LogLevel:       configs.LogLevel,
		IdempotencyTTL: configs.Redis.IdempotencyTTL,
	}
	if configs.Redis.URL != "" {
		store, err := redis.NewIdempotencyStore(configs.Redis.URL)
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()

		if err := store.Ping(ctx); err != nil {
			return err
		}
		routerOpts.IdempotencyStore = store
	}

	var publisher ports.EventPublisher
	if len(configs.Kafka.Brokers) > 0 {
		kafkaPublisher := kafka.NewEventPublisher(configs.Kafka.Brokers, configs.Kafka.Topic, log)
		defer func() { _ = kafkaPublisher.Close() }()
		publisher = kafkaPublisher
	} else {
		log.Warn("KAFKA_BROKERS is empty, audit events stay in the outbox")
	}

	jobManager, err := app.CreateJobManager(publisher)
	if err != nil {
		return err
	}
	if err := jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	e, err := http_adapter.NewRouter(http_adapter.NewServer(app.CreateUseCases()), routerOpts)
	if err != nil {
		return err
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("http server listening", zap.Int("port", configs.HTTPPort))
		serverErr <- e.Start(fmt.Sprintf("0.0.0.0:%d", configs.HTTPPort))
	}()

	select {
	case err := <-serverErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

func openDatabase(cfg cmd.DatabaseConfig) (*gorm.DB, func(), error) {
	sqlDB, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, nil, err
	}

	gormDB, err := gorm.Open(gorm_postgres.New(gorm_postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: gorm_logger.Default.LogMode(gorm_logger.Warn),
	})
	if err != nil {
		_ = sqlDB.Close()
		return nil, nil, err
	}

	return gormDB, func() { _ = sqlDB.Close() }, nil
}
