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

	checkRoomAvailabilityHandler "github.com/nvmanh/SpaDesk-BookingService/internal/api/handlers/check_room_availability"
	checkStaffAvailabilityHandler "github.com/nvmanh/SpaDesk-BookingService/internal/api/handlers/check_staff_availability"
	createBookingHandler "github.com/nvmanh/SpaDesk-BookingService/internal/api/handlers/create_booking"
	createEmployeeHandler "github.com/nvmanh/SpaDesk-BookingService/internal/api/handlers/create_employee"
	createServiceHandler "github.com/nvmanh/SpaDesk-BookingService/internal/api/handlers/create_service"
	findNextSlotHandler "github.com/nvmanh/SpaDesk-BookingService/internal/api/handlers/find_next_slot"
	generateBioHandler "github.com/nvmanh/SpaDesk-BookingService/internal/api/handlers/generate_bio"
	getBookingHandler "github.com/nvmanh/SpaDesk-BookingService/internal/api/handlers/get_booking"
	getBookingsHandler "github.com/nvmanh/SpaDesk-BookingService/internal/api/handlers/get_bookings"
	getEmployeeHandler "github.com/nvmanh/SpaDesk-BookingService/internal/api/handlers/get_employee"
	getEmployeesHandler "github.com/nvmanh/SpaDesk-BookingService/internal/api/handlers/get_employees"
	getRoomPlanHandler "github.com/nvmanh/SpaDesk-BookingService/internal/api/handlers/get_room_plan"
	getServiceHandler "github.com/nvmanh/SpaDesk-BookingService/internal/api/handlers/get_service"
	getServicesHandler "github.com/nvmanh/SpaDesk-BookingService/internal/api/handlers/get_services"
	getTimeSlotsHandler "github.com/nvmanh/SpaDesk-BookingService/internal/api/handlers/get_time_slots"
	performanceSummaryHandler "github.com/nvmanh/SpaDesk-BookingService/internal/api/handlers/performance_summary"
	revenueSummaryHandler "github.com/nvmanh/SpaDesk-BookingService/internal/api/handlers/revenue_summary"
	updateBookingHandler "github.com/nvmanh/SpaDesk-BookingService/internal/api/handlers/update_booking"
	updateBookingStatusHandler "github.com/nvmanh/SpaDesk-BookingService/internal/api/handlers/update_booking_status"
	updateEmployeeHandler "github.com/nvmanh/SpaDesk-BookingService/internal/api/handlers/update_employee"
	updateServiceHandler "github.com/nvmanh/SpaDesk-BookingService/internal/api/handlers/update_service"
	"github.com/nvmanh/SpaDesk-BookingService/internal/api/middleware"
	"github.com/nvmanh/SpaDesk-BookingService/internal/config"
	bookingRepo "github.com/nvmanh/SpaDesk-BookingService/internal/infra/storage/booking"
	employeeRepo "github.com/nvmanh/SpaDesk-BookingService/internal/infra/storage/employee"
	serviceRepo "github.com/nvmanh/SpaDesk-BookingService/internal/infra/storage/service"
	textgenClient "github.com/nvmanh/SpaDesk-BookingService/internal/integrations/textgen"
	bookingsService "github.com/nvmanh/SpaDesk-BookingService/internal/service/bookings"
	catalogService "github.com/nvmanh/SpaDesk-BookingService/internal/service/catalog"
	checkAvailabilityUC "github.com/nvmanh/SpaDesk-BookingService/internal/usecase/check_availability"
	createBookingUC "github.com/nvmanh/SpaDesk-BookingService/internal/usecase/create_booking"
	findNextSlotUC "github.com/nvmanh/SpaDesk-BookingService/internal/usecase/find_next_slot"
	getRoomPlanUC "github.com/nvmanh/SpaDesk-BookingService/internal/usecase/get_room_plan"
	revenueSummaryUC "github.com/nvmanh/SpaDesk-BookingService/internal/usecase/revenue_summary"
	updateBookingUC "github.com/nvmanh/SpaDesk-BookingService/internal/usecase/update_booking"
	"github.com/nvmanh/SpaDesk-BookingService/pkg/dbmetrics"
	"github.com/nvmanh/SpaDesk-BookingService/pkg/logger"
	"github.com/nvmanh/SpaDesk-BookingService/pkg/metrics"
	"github.com/nvmanh/SpaDesk-BookingService/pkg/simpletxmanager"
	"github.com/nvmanh/SpaDesk-BookingService/pkg/txmanager"
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

	log.Info("Starting SpaDesk-BookingService...")
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

	// Инициализируем клиент генерации текста
	textGen := textgenClient.NewClient(
		cfg.TextGen.URL,
		time.Duration(cfg.TextGen.Timeout)*time.Second,
		log,
	)
	log.Info("TextGen client initialized (url=%s, timeout=%ds)", cfg.TextGen.URL, cfg.TextGen.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository  *bookingRepo.Repository
		serviceRepository  *serviceRepo.Repository
		employeeRepository *employeeRepo.Repository
	)

	// Интерфейс transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		serviceRepository = serviceRepo.NewRepository(wrappedDB)
		employeeRepository = employeeRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		serviceRepository = serviceRepo.NewRepository(db)
		employeeRepository = employeeRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	catalogSvc := catalogService.NewService(
		serviceRepository,
		employeeRepository,
		bookingRepository,
		textGen,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		serviceRepository,
		employeeRepository,
		txMgr,
		log,
	)
	updateBookingUseCase := updateBookingUC.NewUseCase(
		bookingRepository,
		serviceRepository,
		employeeRepository,
		txMgr,
		log,
	)
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(bookingRepository, employeeRepository, log)
	getRoomPlanUseCase := getRoomPlanUC.NewUseCase(bookingRepository, log)
	findNextSlotUseCase := findNextSlotUC.NewUseCase(bookingRepository, log)
	revenueSummaryUseCase := revenueSummaryUC.NewUseCase(bookingRepository, log)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	updateBooking := updateBookingHandler.NewHandler(updateBookingUseCase, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getBookings := getBookingsHandler.NewHandler(bookingSvc, log)
	getTimeSlots := getTimeSlotsHandler.NewHandler(log)
	checkRoomAvailability := checkRoomAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	checkStaffAvailability := checkStaffAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	getRoomPlan := getRoomPlanHandler.NewHandler(getRoomPlanUseCase, log)
	findNextSlot := findNextSlotHandler.NewHandler(findNextSlotUseCase, log)
	revenueSummary := revenueSummaryHandler.NewHandler(revenueSummaryUseCase, log)
	createService := createServiceHandler.NewHandler(catalogSvc, log)
	updateService := updateServiceHandler.NewHandler(catalogSvc, log)
	getServices := getServicesHandler.NewHandler(catalogSvc, log)
	getService := getServiceHandler.NewHandler(catalogSvc, log)
	createEmployee := createEmployeeHandler.NewHandler(catalogSvc, log)
	updateEmployee := updateEmployeeHandler.NewHandler(catalogSvc, log)
	getEmployees := getEmployeesHandler.NewHandler(catalogSvc, log)
	getEmployee := getEmployeeHandler.NewHandler(catalogSvc, log)
	generateBio := generateBioHandler.NewHandler(catalogSvc, log)
	performanceSummary := performanceSummaryHandler.NewHandler(catalogSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
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

	// Каноническая сетка времени рабочего дня
	api.HandleFunc("/time-slots", getTimeSlots.Handle).Methods(http.MethodGet)

	// Проверка занятости комнат и мастеров
	api.HandleFunc("/availability/rooms", checkRoomAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/availability/staff/{staffId}", checkStaffAvailability.Handle).Methods(http.MethodGet)

	// Расписание: план комнат и поиск свободного слота
	api.HandleFunc("/schedule/room-plan", getRoomPlan.Handle).Methods(http.MethodGet)
	api.HandleFunc("/schedule/next-slot", findNextSlot.Handle).Methods(http.MethodGet)

	// Сводка выручки
	api.HandleFunc("/revenue/summary", revenueSummary.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings", getBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", updateBooking.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// --- Услуги ---
	protected.HandleFunc("/services", createService.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/services", getServices.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/services/{serviceId}", getService.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/services/{serviceId}", updateService.Handle).Methods(http.MethodPut)

	// --- Сотрудники ---
	protected.HandleFunc("/employees", createEmployee.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/employees", getEmployees.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/employees/{employeeId}", getEmployee.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/employees/{employeeId}", updateEmployee.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/employees/{employeeId}/bio", generateBio.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/employees/{employeeId}/performance-summary", performanceSummary.Handle).Methods(http.MethodGet)

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
