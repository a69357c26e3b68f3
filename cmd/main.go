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
	"github.com/robfig/cron/v3"
	"github.com/shopspring/decimal"

	createBookingHandler "github.com/boatsandjoy/BNJ-BookingService/internal/api/handlers/create_booking"
	createPromocodeHandler "github.com/boatsandjoy/BNJ-BookingService/internal/api/handlers/create_promocode"
	generateAvailabilityHandler "github.com/boatsandjoy/BNJ-BookingService/internal/api/handlers/generate_availability"
	getBookingHandler "github.com/boatsandjoy/BNJ-BookingService/internal/api/handlers/get_booking"
	getBookingByLocatorHandler "github.com/boatsandjoy/BNJ-BookingService/internal/api/handlers/get_booking_by_locator"
	getBookingBySessionHandler "github.com/boatsandjoy/BNJ-BookingService/internal/api/handlers/get_booking_by_session"
	getDayAvailabilityHandler "github.com/boatsandjoy/BNJ-BookingService/internal/api/handlers/get_day_availability"
	getMonthAvailabilityHandler "github.com/boatsandjoy/BNJ-BookingService/internal/api/handlers/get_month_availability"
	markBookingErrorHandler "github.com/boatsandjoy/BNJ-BookingService/internal/api/handlers/mark_booking_error"
	registerPaymentEventHandler "github.com/boatsandjoy/BNJ-BookingService/internal/api/handlers/register_payment_event"
	"github.com/boatsandjoy/BNJ-BookingService/internal/api/middleware"
	"github.com/boatsandjoy/BNJ-BookingService/internal/config"
	availabilityRepo "github.com/boatsandjoy/BNJ-BookingService/internal/infra/storage/availability"
	boatRepo "github.com/boatsandjoy/BNJ-BookingService/internal/infra/storage/boat"
	bookingRepo "github.com/boatsandjoy/BNJ-BookingService/internal/infra/storage/booking"
	promocodeRepo "github.com/boatsandjoy/BNJ-BookingService/internal/infra/storage/promocode"
	mailClient "github.com/boatsandjoy/BNJ-BookingService/internal/integrations/mailservice"
	stripeClient "github.com/boatsandjoy/BNJ-BookingService/internal/integrations/stripe"
	bookingsService "github.com/boatsandjoy/BNJ-BookingService/internal/service/bookings"
	createBookingUC "github.com/boatsandjoy/BNJ-BookingService/internal/usecase/create_booking"
	createPromocodeUC "github.com/boatsandjoy/BNJ-BookingService/internal/usecase/create_promocode"
	generateAvailabilityUC "github.com/boatsandjoy/BNJ-BookingService/internal/usecase/generate_availability"
	getDayAvailabilityUC "github.com/boatsandjoy/BNJ-BookingService/internal/usecase/get_day_availability"
	getMonthAvailabilityUC "github.com/boatsandjoy/BNJ-BookingService/internal/usecase/get_month_availability"
	registerPaymentUC "github.com/boatsandjoy/BNJ-BookingService/internal/usecase/register_payment"
	"github.com/boatsandjoy/BNJ-BookingService/pkg/dbmetrics"
	"github.com/boatsandjoy/BNJ-BookingService/pkg/logger"
	"github.com/boatsandjoy/BNJ-BookingService/pkg/metrics"
	"github.com/boatsandjoy/BNJ-BookingService/pkg/simpletxmanager"
	"github.com/boatsandjoy/BNJ-BookingService/pkg/txmanager"
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

	log.Info("Starting BNJ-BookingService...")
	log.Info("Configuration loaded from config.toml")

	residentDiscount, err := decimal.NewFromString(cfg.Booking.ResidentDiscount)
	if err != nil {
		log.Fatal("Invalid booking.resident_discount %q: %v", cfg.Booking.ResidentDiscount, err)
	}

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
	stripe := stripeClient.NewClient(
		cfg.Stripe.SecretKey,
		cfg.Stripe.RedirectURL,
		time.Duration(cfg.Stripe.Timeout)*time.Second,
		log,
	)
	mail := mailClient.NewClient(
		cfg.Mail.URL,
		cfg.Mail.From,
		time.Duration(cfg.Mail.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (Stripe timeout=%ds, Mail=%s timeout=%ds)",
		cfg.Stripe.Timeout, cfg.Mail.URL, cfg.Mail.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		boatRepository         *boatRepo.Repository
		availabilityRepository *availabilityRepo.Repository
		bookingRepository      *bookingRepo.Repository
		promocodeRepository    *promocodeRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		boatRepository = boatRepo.NewRepository(wrappedDB)
		availabilityRepository = availabilityRepo.NewRepository(wrappedDB)
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		promocodeRepository = promocodeRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		boatRepository = boatRepo.NewRepository(db)
		availabilityRepository = availabilityRepo.NewRepository(db)
		bookingRepository = bookingRepo.NewRepository(db)
		promocodeRepository = promocodeRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		availabilityRepository,
		boatRepository,
		stripe,
		mail,
		cfg.Mail.NotificationEmail,
		log,
	)

	// Инициализируем use cases
	getDayAvailabilityUseCase := getDayAvailabilityUC.NewUseCase(
		boatRepository,
		availabilityRepository,
		log,
	)
	getMonthAvailabilityUseCase := getMonthAvailabilityUC.NewUseCase(
		boatRepository,
		availabilityRepository,
		log,
	)
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		availabilityRepository,
		boatRepository,
		promocodeRepository,
		stripe,
		txMgr,
		residentDiscount,
		log,
	)
	registerPaymentUseCase := registerPaymentUC.NewUseCase(
		bookingRepository,
		availabilityRepository,
		promocodeRepository,
		stripe,
		mail,
		txMgr,
		cfg.Mail.NotificationEmail,
		log,
	)
	generateAvailabilityUseCase := generateAvailabilityUC.NewUseCase(
		boatRepository,
		availabilityRepository,
		txMgr,
		log,
	)
	createPromocodeUseCase := createPromocodeUC.NewUseCase(promocodeRepository, log)

	// Инициализируем handlers
	getDayAvailability := getDayAvailabilityHandler.NewHandler(getDayAvailabilityUseCase, log)
	getMonthAvailability := getMonthAvailabilityHandler.NewHandler(getMonthAvailabilityUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getBookingBySession := getBookingBySessionHandler.NewHandler(bookingSvc, log)
	getBookingByLocator := getBookingByLocatorHandler.NewHandler(bookingSvc, log)
	markBookingError := markBookingErrorHandler.NewHandler(bookingSvc, log)
	registerPaymentEvent := registerPaymentEventHandler.NewHandler(registerPaymentUseCase, log)
	generateAvailability := generateAvailabilityHandler.NewHandler(generateAvailabilityUseCase, log)
	createPromocode := createPromocodeHandler.NewHandler(createPromocodeUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
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
	// PUBLIC ROUTES
	// ============================================================

	// Доступность лодок на день и на месяц
	api.HandleFunc("/availability/day/{date}", getDayAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/availability/month/{year}/{month}", getMonthAvailability.Handle).Methods(http.MethodGet)

	// Бронирования
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId:[0-9]+}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/by-session/{sessionId}", getBookingBySession.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/by-locator/{locator}", getBookingByLocator.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/by-session/{sessionId}/error", markBookingError.Handle).Methods(http.MethodPatch)

	// Webhook платежного шлюза
	api.HandleFunc("/payments/events", registerPaymentEvent.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-Token header)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Admin.Token))

	admin.HandleFunc("/availability/{year:[0-9]+}", generateAvailability.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/availability/{year:[0-9]+}", generateAvailability.HandleDelete).Methods(http.MethodDelete)
	admin.HandleFunc("/promocodes", createPromocode.Handle).Methods(http.MethodPost)

	// Плановая предгенерация доступности на следующий год
	var scheduler *cron.Cron
	if cfg.Generation.Enabled {
		scheduler = cron.New()
		_, err := scheduler.AddFunc(cfg.Generation.CronSpec, func() {
			year := time.Now().Year() + 1
			log.Info("Scheduled generation: year=%d", year)
			_, err := generateAvailabilityUseCase.Execute(context.Background(),
				&generateAvailabilityUC.Request{Year: year})
			if err != nil {
				log.Warn("Scheduled generation for year=%d skipped: %v", year, err)
			}
		})
		if err != nil {
			log.Fatal("Invalid generation.cron_spec %q: %v", cfg.Generation.CronSpec, err)
		}
		scheduler.Start()
		log.Info("Availability generation scheduled: %s", cfg.Generation.CronSpec)
	}

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

	// Останавливаем планировщик генерации
	if scheduler != nil {
		scheduler.Stop()
		log.Info("Generation scheduler stopped")
	}

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
		log.Fatal("Server forced to shutdown: %v", err)
	}

	log.Info("Server exited gracefully")
}
