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

	barbersHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/barbers"
	cancelBookingHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/create_booking"
	finishBookingHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/finish_booking"
	getAvailableSlotsHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/get_booking"
	getSettingsHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/get_settings"
	haircutsHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/haircuts"
	listBookingsHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/list_bookings"
	loginHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/login"
	registerHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/register"
	shopsHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/shops"
	updateSettingsHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/update_settings"
	"github.com/m04kA/SMC-BarberService/internal/api/middleware"
	"github.com/m04kA/SMC-BarberService/internal/config"
	slotsCache "github.com/m04kA/SMC-BarberService/internal/infra/cache/slots"
	barberRepo "github.com/m04kA/SMC-BarberService/internal/infra/storage/barber"
	bookingRepo "github.com/m04kA/SMC-BarberService/internal/infra/storage/booking"
	haircutRepo "github.com/m04kA/SMC-BarberService/internal/infra/storage/haircut"
	settingsRepo "github.com/m04kA/SMC-BarberService/internal/infra/storage/settings"
	userRepo "github.com/m04kA/SMC-BarberService/internal/infra/storage/user"
	authService "github.com/m04kA/SMC-BarberService/internal/service/auth"
	barbersService "github.com/m04kA/SMC-BarberService/internal/service/barbers"
	bookingsService "github.com/m04kA/SMC-BarberService/internal/service/bookings"
	haircutsService "github.com/m04kA/SMC-BarberService/internal/service/haircuts"
	settingsService "github.com/m04kA/SMC-BarberService/internal/service/settings"
	shopsService "github.com/m04kA/SMC-BarberService/internal/service/shops"
	createBookingUC "github.com/m04kA/SMC-BarberService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-BarberService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-BarberService/pkg/dbmetrics"
	"github.com/m04kA/SMC-BarberService/pkg/logger"
	"github.com/m04kA/SMC-BarberService/pkg/metrics"
	"github.com/m04kA/SMC-BarberService/pkg/token"
	"github.com/m04kA/SMC-BarberService/pkg/txmanager"
)

func main() {
	configPath := "config.toml"
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		configPath = p
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
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

	log.Info("Starting SMC-BarberService...")
	log.Info("Configuration loaded from %s", configPath)

	location, err := cfg.Booking.Location()
	if err != nil {
		log.Fatal("Failed to load timezone %q: %v", cfg.Booking.Timezone, err)
	}

	// Метрики: при выключенных передаём nil, все методы *metrics.Metrics это допускают
	var metricsCollector *metrics.Metrics
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

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	stopMetricsCh := make(chan struct{})
	defer close(stopMetricsCh)

	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Кэш свободных слотов (опционально)
	var cache *slotsCache.Cache
	if cfg.Redis.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		err := rdb.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			// Без кэша сервис работает, просто считает слоты на каждый запрос
			log.Warn("Redis is unavailable at %s, slots cache disabled: %v", cfg.Redis.Addr, err)
		} else {
			cache = slotsCache.New(rdb, cfg.Redis.SlotsTTL())
			log.Info("Slots cache enabled (redis=%s, ttl=%s)", cfg.Redis.Addr, cfg.Redis.SlotsTTL())
		}
	}

	// Инициализируем репозитории
	barberRepository := barberRepo.NewRepository(wrappedDB)
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	haircutRepository := haircutRepo.NewRepository(wrappedDB)
	settingsRepository := settingsRepo.NewRepository(wrappedDB)
	userRepository := userRepo.NewRepository(wrappedDB)

	tokens := token.NewManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL(), cfg.Auth.Issuer)

	// Инициализируем сервисы
	settingsSvc := settingsService.NewService(
		settingsRepository,
		barberRepository,
		settingsService.Defaults{
			SlotStepMinutes:         cfg.Booking.DefaultSlotStepMinutes,
			BufferMinutes:           cfg.Booking.DefaultBufferMinutes,
			AdvanceBookingDays:      cfg.Booking.DefaultAdvanceBookingDays,
			MinBookingNoticeMinutes: cfg.Booking.DefaultMinBookingNoticeMins,
		},
		log,
	)
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		barberRepository,
		txMgr,
		cache,
		metricsCollector,
		location,
		log,
	)
	authSvc := authService.NewService(userRepository, tokens, cfg.Auth.BcryptCost, log)
	barberSvc := barbersService.NewService(barberRepository, cache, log)
	haircutSvc := haircutsService.NewService(haircutRepository, log)
	shopSvc := shopsService.NewService(userRepository, barberRepository, haircutRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		barberRepository,
		haircutRepository,
		bookingRepository,
		settingsSvc,
		txMgr,
		cache,
		metricsCollector,
		location,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		barberRepository,
		haircutRepository,
		bookingRepository,
		settingsSvc,
		cache,
		metricsCollector,
		location,
		log,
	)

	// Инициализируем handlers
	register := registerHandler.NewHandler(authSvc, log)
	login := loginHandler.NewHandler(authSvc, log)
	shops := shopsHandler.NewHandler(shopSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	finishBooking := finishBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	barbers := barbersHandler.NewHandler(barberSvc, log)
	haircuts := haircutsHandler.NewHandler(haircutSvc, log)
	getSettings := getSettingsHandler.NewHandler(settingsSvc, log)
	updateSettings := updateSettingsHandler.NewHandler(settingsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	api.HandleFunc("/auth/register", register.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)

	// Страница записи клиента
	api.HandleFunc("/shops/{slug}", shops.GetBySlug).Methods(http.MethodGet)
	api.HandleFunc("/shops/{shopId:[0-9]+}/catalog", shops.GetCatalog).Methods(http.MethodGet)
	api.HandleFunc("/shops/{shopId:[0-9]+}/barbers/{barberId:[0-9]+}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/shops/{shopId:[0-9]+}/bookings", createBooking.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (Authorization: Bearer <jwt>)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(tokens, log))

	// --- Барберы ---
	protected.HandleFunc("/barbers", barbers.List).Methods(http.MethodGet)
	protected.HandleFunc("/barbers", barbers.Create).Methods(http.MethodPost)
	protected.HandleFunc("/barbers/{barberId}", barbers.Get).Methods(http.MethodGet)
	protected.HandleFunc("/barbers/{barberId}", barbers.Update).Methods(http.MethodPut)
	protected.HandleFunc("/barbers/{barberId}", barbers.Disable).Methods(http.MethodDelete)

	// --- Стрижки ---
	protected.HandleFunc("/haircuts", haircuts.List).Methods(http.MethodGet)
	protected.HandleFunc("/haircuts", haircuts.Create).Methods(http.MethodPost)
	protected.HandleFunc("/haircuts/{haircutId}", haircuts.Get).Methods(http.MethodGet)
	protected.HandleFunc("/haircuts/{haircutId}", haircuts.Update).Methods(http.MethodPut)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings", createBooking.HandleStaff).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/finish", finishBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// --- Настройки слотов ---
	protected.HandleFunc("/settings", getSettings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/settings/all", getSettings.HandleList).Methods(http.MethodGet)
	protected.HandleFunc("/settings", updateSettings.Handle).Methods(http.MethodPut)

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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped")
}
