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

	cancelReservationHandler "github.com/adesombergh/yeety-book-test-sub000/internal/api/handlers/cancel_reservation"
	createReservationHandler "github.com/adesombergh/yeety-book-test-sub000/internal/api/handlers/create_reservation"
	getAvailableSlotsHandler "github.com/adesombergh/yeety-book-test-sub000/internal/api/handlers/get_available_slots"
	getRestaurantConfigHandler "github.com/adesombergh/yeety-book-test-sub000/internal/api/handlers/get_restaurant_config"
	getRestaurantReservationsHandler "github.com/adesombergh/yeety-book-test-sub000/internal/api/handlers/get_restaurant_reservations"
	updateReservationStatusHandler "github.com/adesombergh/yeety-book-test-sub000/internal/api/handlers/update_reservation_status"
	updateRestaurantConfigHandler "github.com/adesombergh/yeety-book-test-sub000/internal/api/handlers/update_restaurant_config"
	"github.com/adesombergh/yeety-book-test-sub000/internal/api/middleware"
	"github.com/adesombergh/yeety-book-test-sub000/internal/config"
	"github.com/adesombergh/yeety-book-test-sub000/internal/domain"
	reservationRepo "github.com/adesombergh/yeety-book-test-sub000/internal/infra/storage/reservation"
	restaurantRepo "github.com/adesombergh/yeety-book-test-sub000/internal/infra/storage/restaurant"
	"github.com/adesombergh/yeety-book-test-sub000/internal/integrations/notifier"
	reservationsService "github.com/adesombergh/yeety-book-test-sub000/internal/service/reservations"
	restaurantService "github.com/adesombergh/yeety-book-test-sub000/internal/service/restaurant"
	cancelReservationUC "github.com/adesombergh/yeety-book-test-sub000/internal/usecase/cancel_reservation"
	createReservationUC "github.com/adesombergh/yeety-book-test-sub000/internal/usecase/create_reservation"
	getAvailableSlotsUC "github.com/adesombergh/yeety-book-test-sub000/internal/usecase/get_available_slots"
	"github.com/adesombergh/yeety-book-test-sub000/pkg/dbmetrics"
	"github.com/adesombergh/yeety-book-test-sub000/pkg/logger"
	"github.com/adesombergh/yeety-book-test-sub000/pkg/metrics"
	"github.com/adesombergh/yeety-book-test-sub000/pkg/simpletxmanager"
	"github.com/adesombergh/yeety-book-test-sub000/pkg/txmanager"
)

// Notifier общий интерфейс публикации событий бронирований
type Notifier interface {
	ReservationCreated(res *domain.Reservation, cfg *domain.RestaurantConfig) error
	ReservationCancelled(res *domain.Reservation, cfg *domain.RestaurantConfig) error
}

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

	log.Info("Starting reservation service...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	// Счетчики бизнес-исходов бронирований (no-op при выключенных метриках)
	var outcomes interface{ IncReservationOutcome(outcome string) } = metrics.NoopRecorder{}

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		outcomes = metricsCollector
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

	// Инициализируем публикацию событий бронирований
	var events Notifier = notifier.Noop{}
	if cfg.Events.Enabled {
		publisher, err := notifier.New(cfg.Events.URL, cfg.Events.SubjectPrefix, log)
		if err != nil {
			log.Fatal("Failed to connect to NATS: %v", err)
		}
		defer publisher.Close()
		events = publisher
		log.Info("Event publishing enabled (url=%s, prefix=%s)", cfg.Events.URL, cfg.Events.SubjectPrefix)
	} else {
		log.Info("Event publishing disabled")
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		reservationRepository *reservationRepo.Repository
		restaurantRepository  *restaurantRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		// Инициализируем репозитории с обёрткой метрик
		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		restaurantRepository = restaurantRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		// Инициализируем репозитории без метрик
		reservationRepository = reservationRepo.NewRepository(db)
		restaurantRepository = restaurantRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	reservationsSvc := reservationsService.NewService(
		reservationRepository,
		restaurantRepository,
		events,
		outcomes,
		log,
	)
	restaurantSvc := restaurantService.NewService(restaurantRepository, log)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		reservationRepository,
		restaurantRepository,
		log,
	)
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		restaurantRepository,
		txMgr,
		events,
		outcomes,
		log,
	)
	cancelReservationUseCase := cancelReservationUC.NewUseCase(
		reservationRepository,
		restaurantRepository,
		txMgr,
		events,
		outcomes,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	cancelReservation := cancelReservationHandler.NewHandler(cancelReservationUseCase, log)
	getRestaurantReservations := getRestaurantReservationsHandler.NewHandler(reservationsSvc, log)
	updateReservationStatus := updateReservationStatusHandler.NewHandler(reservationsSvc, log)
	getRestaurantConfig := getRestaurantConfigHandler.NewHandler(restaurantSvc, log)
	updateRestaurantConfig := updateRestaurantConfigHandler.NewHandler(restaurantSvc, log)

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
	// PUBLIC ROUTES (публичная страница бронирования)
	// ============================================================

	// Доступные слоты ресторана на дату
	api.HandleFunc("/restaurants/{slug}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Создание бронирования
	api.HandleFunc("/restaurants/{slug}/reservations",
		createReservation.Handle).Methods(http.MethodPost)

	// Self-service отмена по cancel-токену из письма
	api.HandleFunc("/reservations/{token}/cancel",
		cancelReservation.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (кабинет владельца, требуют X-Owner-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ресторана ---
	// Список бронирований с фильтрацией
	protected.HandleFunc("/restaurants/{restaurantId}/reservations",
		getRestaurantReservations.Handle).Methods(http.MethodGet)

	// Изменение статуса бронирования
	protected.HandleFunc("/reservations/{reservationId}/status",
		updateReservationStatus.Handle).Methods(http.MethodPatch)

	// --- Настройки ресторана ---
	protected.HandleFunc("/restaurants/{restaurantId}/config",
		getRestaurantConfig.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/restaurants/{restaurantId}/config",
		updateRestaurantConfig.Handle).Methods(http.MethodPut)

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
