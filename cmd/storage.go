package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"time"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"github.com/m04kA/SMC-BillboardCalendar/internal/config"
	allocationRepo "github.com/m04kA/SMC-BillboardCalendar/internal/infra/storage/allocation"
	calendarRepo "github.com/m04kA/SMC-BillboardCalendar/internal/infra/storage/calendar"
	"github.com/m04kA/SMC-BillboardCalendar/internal/infra/storage/memory"
	"github.com/m04kA/SMC-BillboardCalendar/internal/infra/storage/schema"
	"github.com/m04kA/SMC-BillboardCalendar/internal/service/availability"
	"github.com/m04kA/SMC-BillboardCalendar/internal/service/calendar"
	"github.com/m04kA/SMC-BillboardCalendar/pkg/dbmetrics"
	"github.com/m04kA/SMC-BillboardCalendar/pkg/logger"
	"github.com/m04kA/SMC-BillboardCalendar/pkg/metrics"
	"github.com/m04kA/SMC-BillboardCalendar/pkg/psqlbuilder"
)

// stores хранилища, выбранные по storage.driver
type stores struct {
	periods     calendar.PeriodRepository
	allocations availability.AllocationRepository
	close       func()
}

// openStores подключается к выбранному хранилищу.
// metricsCollector может быть nil (метрики выключены).
func openStores(ctx context.Context, cfg *config.Config, metricsCollector *metrics.Metrics, log *logger.Logger) (*stores, error) {
	switch cfg.Storage.Driver {
	case config.DriverMemory:
		log.Info("Using in-memory storage")
		return &stores{
			periods:     memory.NewCalendarStore(),
			allocations: memory.NewAllocationStore(),
			close:       func() {},
		}, nil

	case config.DriverSQLite:
		db, err := sql.Open("sqlite3", cfg.Storage.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite %s: %w", cfg.Storage.SQLitePath, err)
		}
		// SQLite не поддерживает параллельную запись
		db.SetMaxOpenConns(1)
		log.Info("Using sqlite storage at %s", cfg.Storage.SQLitePath)
		return newSQLStores(ctx, db, psqlbuilder.DialectSQLite, true, metricsCollector, log)

	case config.DriverPostgres:
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.PingContext(ctx); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("ping postgres: %w", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)
		return newSQLStores(ctx, db, psqlbuilder.DialectPostgres, cfg.Storage.AutoMigrate, metricsCollector, log)

	default:
		return nil, fmt.Errorf("%w: unknown storage driver %q", config.ErrInvalidConfig, cfg.Storage.Driver)
	}
}

func newSQLStores(
	ctx context.Context,
	db *sql.DB,
	dialect psqlbuilder.Dialect,
	migrate bool,
	metricsCollector *metrics.Metrics,
	log *logger.Logger,
) (*stores, error) {
	var (
		executor dbmetrics.DBExecutor = db
		stopCh                        = make(chan struct{})
	)
	if metricsCollector != nil {
		executor = dbmetrics.WrapWithDefault(db, metricsCollector, stopCh)
		log.Info("Database metrics collection started")
	}

	if migrate {
		if err := schema.Apply(ctx, executor, dialect); err != nil {
			close(stopCh)
			_ = db.Close()
			return nil, err
		}
		log.Info("Database schema applied (%s)", dialect)
	}

	return &stores{
		periods:     calendarRepo.NewRepository(executor, dialect),
		allocations: allocationRepo.NewRepository(executor, dialect),
		close: func() {
			close(stopCh)
			if err := db.Close(); err != nil {
				log.Error("Failed to close database: %v", err)
			}
		},
	}, nil
}

// seedYears генерирует недостающие годы календаря по возрастанию
func seedYears(ctx context.Context, svc *calendar.Service, years []int, log *logger.Logger) error {
	sorted := append([]int(nil), years...)
	sort.Ints(sorted)

	for _, year := range sorted {
		periods, err := svc.GenerateYear(ctx, year, false)
		if errors.Is(err, calendar.ErrYearAlreadyGenerated) {
			log.Info("Calendar year %d already exists", year)
			continue
		}
		if err != nil {
			return fmt.Errorf("seed calendar year %d: %w", year, err)
		}
		log.Info("Calendar year %d generated: %d periods", year, len(periods))
	}
	return nil
}
