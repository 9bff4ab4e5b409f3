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
	"github.com/robfig/cron/v3"

	getBookingLinkHandler "github.com/labdelines/booking-calendar/internal/api/handlers/get_booking_link"
	getRoomHandler "github.com/labdelines/booking-calendar/internal/api/handlers/get_room"
	getRoomCalendarHandler "github.com/labdelines/booking-calendar/internal/api/handlers/get_room_calendar"
	listRoomsHandler "github.com/labdelines/booking-calendar/internal/api/handlers/list_rooms"
	"github.com/labdelines/booking-calendar/internal/api/middleware"
	"github.com/labdelines/booking-calendar/internal/config"
	"github.com/labdelines/booking-calendar/internal/domain"
	"github.com/labdelines/booking-calendar/internal/infra/source"
	bookingsService "github.com/labdelines/booking-calendar/internal/service/bookings"
	roomsService "github.com/labdelines/booking-calendar/internal/service/rooms"
	getRoomCalendarUC "github.com/labdelines/booking-calendar/internal/usecase/get_room_calendar"
	"github.com/labdelines/booking-calendar/pkg/logger"
	"github.com/labdelines/booking-calendar/pkg/metrics"
)

// noopSourceMetrics заглушка метрик источника при выключенных метриках
type noopSourceMetrics struct{}

func (noopSourceMetrics) IncSourceFetch(result string) {}

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting booking-calendar...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем клиент внешнего источника бронирований
	sourceClient := source.NewClient(
		cfg.Source.URL,
		time.Duration(cfg.Source.Timeout)*time.Second,
		log,
	)
	log.Info("Source client initialized (url=%s, timeout=%ds)", cfg.Source.URL, cfg.Source.Timeout)

	// Инициализируем сервисы
	var sourceMetrics bookingsService.Metrics = noopSourceMetrics{}
	if cfg.Metrics.Enabled {
		sourceMetrics = metricsCollector
	}
	bookingSvc := bookingsService.NewService(sourceClient, sourceMetrics, log)
	roomResolver := roomsService.NewResolver(cfg.Rooms, cfg.RoomAliases, log)

	// Первичная загрузка данных. Ошибка не фатальна: до первого успешного
	// обновления сервис отдает встроенный sample-набор
	refreshTimeout := time.Duration(cfg.Source.Timeout+5) * time.Second
	func() {
		ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
		defer cancel()
		if err := bookingSvc.Refresh(ctx); err != nil {
			log.Warn("Initial refresh failed, serving sample data: %v", err)
		}
	}()

	// Фоновое обновление по cron-расписанию
	scheduler := cron.New()
	if _, err := scheduler.AddFunc(cfg.Source.RefreshCron, func() {
		ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
		defer cancel()
		if err := bookingSvc.Refresh(ctx); err != nil {
			log.Warn("Scheduled refresh failed: %v", err)
		}
	}); err != nil {
		log.Fatal("Invalid refresh schedule %q: %v", cfg.Source.RefreshCron, err)
	}
	scheduler.Start()
	log.Info("Background refresh scheduled (%s)", cfg.Source.RefreshCron)

	// Словарь статусов
	statusRules := domain.NewStatusRules(
		cfg.Statuses.Hidden,
		cfg.Statuses.Warning,
		cfg.Statuses.Labels,
		cfg.Statuses.FallbackLabel,
	)

	// Инициализируем use cases
	getRoomCalendarUseCase := getRoomCalendarUC.NewUseCase(
		bookingSvc,
		roomResolver,
		statusRules,
		log,
	)

	// Инициализируем handlers
	getRoomCalendar := getRoomCalendarHandler.NewHandler(getRoomCalendarUseCase, log)
	getRoom := getRoomHandler.NewHandler(roomResolver, log)
	listRooms := listRoomsHandler.NewHandler(roomResolver, log)
	getBookingLink := getBookingLinkHandler.NewHandler(cfg.Company, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	r.Use(middleware.RequestIDMiddleware(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Список комнат
	api.HandleFunc("/rooms", listRooms.Handle).Methods(http.MethodGet)

	// Конфигурация комнаты
	api.HandleFunc("/rooms/{roomId}", getRoom.Handle).Methods(http.MethodGet)

	// Календарь доступности комнаты на месяц
	api.HandleFunc("/rooms/{roomId}/calendar", getRoomCalendar.Handle).Methods(http.MethodGet)

	// Контакт для бронирования
	api.HandleFunc("/booking-link", getBookingLink.Handle).Methods(http.MethodGet)

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
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем планировщик и дожидаемся текущего обновления
	<-scheduler.Stop().Done()
	log.Info("Background refresh stopped")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
