package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	adminSearchHandler "github.com/rainbowtours/RTG-BookingService/internal/api/handlers/admin_search_bookings"
	cancelBookingHandler "github.com/rainbowtours/RTG-BookingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/rainbowtours/RTG-BookingService/internal/api/handlers/create_booking"
	exportBookingsHandler "github.com/rainbowtours/RTG-BookingService/internal/api/handlers/export_bookings"
	getBookingHandler "github.com/rainbowtours/RTG-BookingService/internal/api/handlers/get_booking"
	getCityHandler "github.com/rainbowtours/RTG-BookingService/internal/api/handlers/get_city"
	getGuideBookingsHandler "github.com/rainbowtours/RTG-BookingService/internal/api/handlers/get_guide_bookings"
	getSafeStartHandler "github.com/rainbowtours/RTG-BookingService/internal/api/handlers/get_safe_booking_start"
	getTravelerBookingsHandler "github.com/rainbowtours/RTG-BookingService/internal/api/handlers/get_traveler_bookings"
	resolveCityHandler "github.com/rainbowtours/RTG-BookingService/internal/api/handlers/resolve_city"
	updateStatusHandler "github.com/rainbowtours/RTG-BookingService/internal/api/handlers/update_booking_status"
	"github.com/rainbowtours/RTG-BookingService/internal/api/middleware"
	"github.com/rainbowtours/RTG-BookingService/internal/config"
	bookingRepo "github.com/rainbowtours/RTG-BookingService/internal/infra/storage/booking"
	geoRepo "github.com/rainbowtours/RTG-BookingService/internal/infra/storage/geo"
	guideServiceClient "github.com/rainbowtours/RTG-BookingService/internal/integrations/guideservice"
	paymentServiceClient "github.com/rainbowtours/RTG-BookingService/internal/integrations/paymentservice"
	bookingsService "github.com/rainbowtours/RTG-BookingService/internal/service/bookings"
	createBookingUC "github.com/rainbowtours/RTG-BookingService/internal/usecase/create_booking"
	exportBookingsUC "github.com/rainbowtours/RTG-BookingService/internal/usecase/export_bookings"
	resolveCityUC "github.com/rainbowtours/RTG-BookingService/internal/usecase/resolve_city"
	"github.com/rainbowtours/RTG-BookingService/pkg/dbmetrics"
	"github.com/rainbowtours/RTG-BookingService/pkg/logger"
	"github.com/rainbowtours/RTG-BookingService/pkg/metrics"
	"github.com/rainbowtours/RTG-BookingService/pkg/simpletxmanager"
	"github.com/rainbowtours/RTG-BookingService/pkg/txmanager"
)

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

	log.Info("Starting RTG-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем интеграционных клиентов
	guideClient := guideServiceClient.NewClient(
		cfg.GuideService.URL,
		time.Duration(cfg.GuideService.Timeout)*time.Second,
		log,
	)
	paymentClient := paymentServiceClient.NewClient(
		cfg.PaymentService.URL,
		time.Duration(cfg.PaymentService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (GuideService=%s timeout=%ds, PaymentService=%s timeout=%ds)",
		cfg.GuideService.URL, cfg.GuideService.Timeout, cfg.PaymentService.URL, cfg.PaymentService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		geoRepository     *geoRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		geoRepository = geoRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		geoRepository = geoRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		paymentClient,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		guideClient,
		txMgr,
		log,
	)
	resolveCityUseCase := resolveCityUC.NewUseCase(geoRepository, log)
	exportBookingsUseCase := exportBookingsUC.NewUseCase(bookingRepository, log)

	clock := &createBookingUC.RealTimeProvider{}

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	updateStatus := updateStatusHandler.NewHandler(bookingSvc, log)
	getTravelerBookings := getTravelerBookingsHandler.NewHandler(bookingSvc, log)
	getGuideBookings := getGuideBookingsHandler.NewHandler(bookingSvc, log)
	getSafeStart := getSafeStartHandler.NewHandler(guideClient, clock, log)
	resolveCity := resolveCityHandler.NewHandler(resolveCityUseCase, log)
	getCity := getCityHandler.NewHandler(geoRepository, log)
	adminSearch := adminSearchHandler.NewHandler(bookingSvc, log)
	exportBookings := exportBookingsHandler.NewHandler(exportBookingsUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Самое раннее допустимое время начала тура у гида
	api.HandleFunc("/guides/{guideId}/safe-booking-start",
		getSafeStart.Handle).Methods(http.MethodGet)

	// Публичная карточка города по slug
	api.HandleFunc("/cities/{slug}", getCity.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Смена статуса бронирования
	protected.HandleFunc("/bookings/{bookingId}/status", updateStatus.Handle).Methods(http.MethodPatch)

	// История бронирований путешественника
	protected.HandleFunc("/travelers/{travelerId}/bookings", getTravelerBookings.Handle).Methods(http.MethodGet)

	// Расписание гида
	protected.HandleFunc("/guides/{guideId}/bookings", getGuideBookings.Handle).Methods(http.MethodGet)

	// --- География ---
	// Резолв города при онбординге гида
	protected.HandleFunc("/cities/resolve", resolveCity.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют X-User-Role: admin)
	// ============================================================

	admin := protected.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminOnly)

	// Поиск бронирований по имени участника
	admin.HandleFunc("/bookings/search", adminSearch.Handle).Methods(http.MethodGet)

	// CSV выгрузка бронирований
	admin.HandleFunc("/bookings/export", exportBookings.Handle).Methods(http.MethodGet)

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

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
