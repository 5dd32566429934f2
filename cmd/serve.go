package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	checkAlignmentHandler "github.com/m04kA/SMC-BillboardCalendar/internal/api/handlers/check_alignment"
	checkAvailabilityHandler "github.com/m04kA/SMC-BillboardCalendar/internal/api/handlers/check_availability"
	getPeriodHandler "github.com/m04kA/SMC-BillboardCalendar/internal/api/handlers/get_period"
	getPeriodByDateHandler "github.com/m04kA/SMC-BillboardCalendar/internal/api/handlers/get_period_by_date"
	listPeriodsHandler "github.com/m04kA/SMC-BillboardCalendar/internal/api/handlers/list_periods"
	resolvePeriodsHandler "github.com/m04kA/SMC-BillboardCalendar/internal/api/handlers/resolve_periods"
	"github.com/m04kA/SMC-BillboardCalendar/internal/api/middleware"
	"github.com/m04kA/SMC-BillboardCalendar/internal/config"
	availabilityService "github.com/m04kA/SMC-BillboardCalendar/internal/service/availability"
	calendarService "github.com/m04kA/SMC-BillboardCalendar/internal/service/calendar"
	checkAvailabilityUC "github.com/m04kA/SMC-BillboardCalendar/internal/usecase/check_availability"
	"github.com/m04kA/SMC-BillboardCalendar/pkg/logger"
	"github.com/m04kA/SMC-BillboardCalendar/pkg/metrics"
)

func newServeCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Запускает HTTP сервер",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServer(cmd.Context(), opts.ConfigPath)
		},
	}
}

func runServer(ctx context.Context, configPath string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer log.Close()

	log.Info("Starting billboard-calendar...")
	log.Info("Configuration loaded from %s", configPath)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к хранилищу
	st, err := openStores(ctx, cfg, metricsCollector, log)
	if err != nil {
		return err
	}
	defer st.close()

	// Инициализируем сервисы
	calendarSvc := calendarService.NewService(st.periods, metricsCollector, log.With("module", "calendar"))
	availabilitySvc := availabilityService.NewService(st.allocations, calendarSvc, metricsCollector, log.With("module", "availability"))

	if err := seedYears(ctx, calendarSvc, cfg.Calendar.SeedYears, log); err != nil {
		return err
	}

	// Инициализируем use cases
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(calendarSvc, availabilitySvc, log)

	// Инициализируем handlers
	httpLog := log.With("module", "http")
	checkAlignment := checkAlignmentHandler.NewHandler(calendarSvc, httpLog)
	listPeriods := listPeriodsHandler.NewHandler(calendarSvc, httpLog)
	getPeriod := getPeriodHandler.NewHandler(calendarSvc, httpLog)
	getPeriodByDate := getPeriodByDateHandler.NewHandler(calendarSvc, httpLog)
	resolvePeriods := resolvePeriodsHandler.NewHandler(calendarSvc, httpLog)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, httpLog)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.Recover(httpLog))

	// Добавляем metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Календарь ---
	api.HandleFunc("/calendar/alignment", checkAlignment.Handle).Methods(http.MethodGet)
	api.HandleFunc("/calendar/periods", listPeriods.Handle).Methods(http.MethodGet)
	api.HandleFunc("/calendar/periods.ics", listPeriods.HandleICS).Methods(http.MethodGet)
	api.HandleFunc("/calendar/periods/containing", getPeriodByDate.Handle).Methods(http.MethodGet)
	api.HandleFunc("/calendar/periods/resolve", resolvePeriods.Handle).Methods(http.MethodPost)
	api.HandleFunc("/calendar/periods/{periodId}", getPeriod.Handle).Methods(http.MethodGet)

	// --- Конструкции ---
	api.HandleFunc("/assets/{assetId}/availability", checkAvailability.Handle).Methods(http.MethodPost)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	serverErr := make(chan error, 1)
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
		close(serverErr)
	}()

	// Ожидаем сигнал завершения или падение сервера
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case <-quit:
	case err, ok := <-serverErr:
		if ok {
			return fmt.Errorf("server failed to start: %w", err)
		}
	}

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
