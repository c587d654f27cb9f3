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
	"github.com/redis/go-redis/v9"

	cancelBookingHandler "github.com/turnosya/booking-service/internal/api/handlers/cancel_booking"
	confirmBookingHandler "github.com/turnosya/booking-service/internal/api/handlers/confirm_booking"
	createBookingHandler "github.com/turnosya/booking-service/internal/api/handlers/create_booking"
	editScheduleHandler "github.com/turnosya/booking-service/internal/api/handlers/edit_schedule"
	getAvailableSlotsHandler "github.com/turnosya/booking-service/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/turnosya/booking-service/internal/api/handlers/get_booking"
	getProfessionalBookingsHandler "github.com/turnosya/booking-service/internal/api/handlers/get_professional_bookings"
	getScheduleHandler "github.com/turnosya/booking-service/internal/api/handlers/get_schedule"
	getTenantConfigHandler "github.com/turnosya/booking-service/internal/api/handlers/get_tenant_config"
	updateScheduleHandler "github.com/turnosya/booking-service/internal/api/handlers/update_schedule"
	updateTenantConfigHandler "github.com/turnosya/booking-service/internal/api/handlers/update_tenant_config"
	"github.com/turnosya/booking-service/internal/api/middleware"
	"github.com/turnosya/booking-service/internal/config"
	"github.com/turnosya/booking-service/internal/infra/cache"
	bookingRepo "github.com/turnosya/booking-service/internal/infra/storage/booking"
	scheduleRepo "github.com/turnosya/booking-service/internal/infra/storage/schedule"
	tenantConfigRepo "github.com/turnosya/booking-service/internal/infra/storage/tenantconfig"
	directoryClient "github.com/turnosya/booking-service/internal/integrations/directory"
	whatsappClient "github.com/turnosya/booking-service/internal/integrations/whatsapp"
	bookingsService "github.com/turnosya/booking-service/internal/service/bookings"
	scheduleService "github.com/turnosya/booking-service/internal/service/schedule"
	tenantConfigService "github.com/turnosya/booking-service/internal/service/tenantconfig"
	createBookingUC "github.com/turnosya/booking-service/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/turnosya/booking-service/internal/usecase/get_available_slots"
	"github.com/turnosya/booking-service/pkg/dbmetrics"
	"github.com/turnosya/booking-service/pkg/logger"
	"github.com/turnosya/booking-service/pkg/metrics"
	"github.com/turnosya/booking-service/pkg/simpletxmanager"
	"github.com/turnosya/booking-service/pkg/txmanager"
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

	log.Info("Starting booking-service...")
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

	// Подключаемся к Redis (кеш конфигураций и канал уведомлений)
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to ping redis: %v", err)
	}
	log.Info("Successfully connected to redis (addr=%s)", cfg.Redis.Addr)

	cacheTTL := time.Duration(cfg.Redis.CacheTTL) * time.Second
	tenantCache := cache.New(redisClient, cacheTTL)

	// Инициализируем интеграционных клиентов
	directory := directoryClient.NewClient(
		cfg.Directory.URL,
		cfg.Directory.APIKey,
		time.Duration(cfg.Directory.Timeout)*time.Second,
		log,
	)
	whatsapp := whatsappClient.NewClient(
		cfg.WhatsApp.URL,
		cfg.WhatsApp.APIKey,
		time.Duration(cfg.WhatsApp.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (Directory=%s timeout=%ds, WhatsApp=%s timeout=%ds)",
		cfg.Directory.URL, cfg.Directory.Timeout, cfg.WhatsApp.URL, cfg.WhatsApp.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository      *bookingRepo.Repository
		scheduleRepository     *scheduleRepo.Repository
		tenantConfigRepository *tenantConfigRepo.Repository
		txMgr                  createBookingUC.TxManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		tenantConfigRepository = tenantConfigRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		tenantConfigRepository = tenantConfigRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	timeProvider := &getAvailableSlotsUC.RealTimeProvider{}

	// Инициализируем сервисы
	tenantConfigSvc := tenantConfigService.NewService(tenantConfigRepository, tenantCache, log)
	scheduleSvc := scheduleService.NewService(scheduleRepository, tenantCache, log)
	bookingSvc := bookingsService.NewService(bookingRepository, timeProvider, log)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		scheduleRepository,
		tenantConfigSvc,
		directory,
		timeProvider,
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		scheduleRepository,
		tenantConfigSvc,
		directory,
		whatsapp,
		txMgr,
		timeProvider,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	confirmBooking := confirmBookingHandler.NewHandler(bookingSvc, log)
	getProfessionalBookings := getProfessionalBookingsHandler.NewHandler(bookingSvc, log)
	getSchedule := getScheduleHandler.NewHandler(scheduleSvc, log)
	updateSchedule := updateScheduleHandler.NewHandler(scheduleSvc, log)
	editSchedule := editScheduleHandler.NewHandler(scheduleSvc, log)
	getTenantConfig := getTenantConfigHandler.NewHandler(tenantConfigSvc, log)
	updateTenantConfig := updateTenantConfigHandler.NewHandler(tenantConfigSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без тенанта)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix: все маршруты мультитенантны и требуют X-Tenant-ID
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Tenant)

	// ============================================================
	// PUBLIC ROUTES (клиентское бронирование)
	// ============================================================

	// Доступные слоты профессионала на дату
	api.HandleFunc("/professionals/{professionalId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Создание записи
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение записи по ID
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена записи
	api.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPost)

	// Конфигурация тенанта (читается клиентским представлением)
	api.HandleFunc("/config", getTenantConfig.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (администрирование, требуют X-User-ID)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Подтверждение записи администратором
	protected.HandleFunc("/bookings/{bookingId}/confirm",
		confirmBooking.Handle).Methods(http.MethodPost)

	// Записи профессионала на день
	protected.HandleFunc("/professionals/{professionalId}/bookings",
		getProfessionalBookings.Handle).Methods(http.MethodGet)

	// Недельное расписание профессионала
	protected.HandleFunc("/professionals/{professionalId}/schedule",
		getSchedule.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/professionals/{professionalId}/schedule",
		updateSchedule.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/professionals/{professionalId}/schedule",
		editSchedule.Handle).Methods(http.MethodPatch)

	// Обновление конфигурации тенанта
	protected.HandleFunc("/config", updateTenantConfig.Handle).Methods(http.MethodPut)

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
