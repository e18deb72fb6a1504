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

	addTeeTimeHandler "github.com/m04kA/SMC-TeeTimeService/internal/api/handlers/add_tee_time"
	archiveGroupHandler "github.com/m04kA/SMC-TeeTimeService/internal/api/handlers/archive_group"
	createEventHandler "github.com/m04kA/SMC-TeeTimeService/internal/api/handlers/create_event"
	createGroupHandler "github.com/m04kA/SMC-TeeTimeService/internal/api/handlers/create_group"
	deleteEventHandler "github.com/m04kA/SMC-TeeTimeService/internal/api/handlers/delete_event"
	deleteSubscriberHandler "github.com/m04kA/SMC-TeeTimeService/internal/api/handlers/delete_subscriber"
	generateTeeTimesHandler "github.com/m04kA/SMC-TeeTimeService/internal/api/handlers/generate_tee_times"
	getEventHandler "github.com/m04kA/SMC-TeeTimeService/internal/api/handlers/get_event"
	getGroupHandler "github.com/m04kA/SMC-TeeTimeService/internal/api/handlers/get_group"
	getSettingsHandler "github.com/m04kA/SMC-TeeTimeService/internal/api/handlers/get_settings"
	hardDeleteGroupHandler "github.com/m04kA/SMC-TeeTimeService/internal/api/handlers/hard_delete_group"
	listEventsHandler "github.com/m04kA/SMC-TeeTimeService/internal/api/handlers/list_events"
	listGroupsHandler "github.com/m04kA/SMC-TeeTimeService/internal/api/handlers/list_groups"
	listSubscribersHandler "github.com/m04kA/SMC-TeeTimeService/internal/api/handlers/list_subscribers"
	movePlayerHandler "github.com/m04kA/SMC-TeeTimeService/internal/api/handlers/move_player"
	removePlayerHandler "github.com/m04kA/SMC-TeeTimeService/internal/api/handlers/remove_player"
	resolveAccessCodeHandler "github.com/m04kA/SMC-TeeTimeService/internal/api/handlers/resolve_access_code"
	runRemindersHandler "github.com/m04kA/SMC-TeeTimeService/internal/api/handlers/run_reminders"
	signupPlayerHandler "github.com/m04kA/SMC-TeeTimeService/internal/api/handlers/signup_player"
	subscribeHandler "github.com/m04kA/SMC-TeeTimeService/internal/api/handlers/subscribe"
	unsubscribeHandler "github.com/m04kA/SMC-TeeTimeService/internal/api/handlers/unsubscribe"
	updateEventHandler "github.com/m04kA/SMC-TeeTimeService/internal/api/handlers/update_event"
	updateGroupHandler "github.com/m04kA/SMC-TeeTimeService/internal/api/handlers/update_group"
	updateSettingsHandler "github.com/m04kA/SMC-TeeTimeService/internal/api/handlers/update_settings"
	"github.com/m04kA/SMC-TeeTimeService/internal/api/middleware"
	"github.com/m04kA/SMC-TeeTimeService/internal/config"
	eventRepo "github.com/m04kA/SMC-TeeTimeService/internal/infra/storage/event"
	groupRepo "github.com/m04kA/SMC-TeeTimeService/internal/infra/storage/group"
	settingsRepo "github.com/m04kA/SMC-TeeTimeService/internal/infra/storage/settings"
	subscriberRepo "github.com/m04kA/SMC-TeeTimeService/internal/infra/storage/subscriber"
	"github.com/m04kA/SMC-TeeTimeService/internal/integrations/mailer"
	"github.com/m04kA/SMC-TeeTimeService/internal/scheduler"
	eventsService "github.com/m04kA/SMC-TeeTimeService/internal/service/events"
	groupsService "github.com/m04kA/SMC-TeeTimeService/internal/service/groups"
	settingsService "github.com/m04kA/SMC-TeeTimeService/internal/service/settings"
	subscribersService "github.com/m04kA/SMC-TeeTimeService/internal/service/subscribers"
	generateTeeTimesUC "github.com/m04kA/SMC-TeeTimeService/internal/usecase/generate_tee_times"
	movePlayerUC "github.com/m04kA/SMC-TeeTimeService/internal/usecase/move_player"
	removePlayerUC "github.com/m04kA/SMC-TeeTimeService/internal/usecase/remove_player"
	runRemindersUC "github.com/m04kA/SMC-TeeTimeService/internal/usecase/run_reminders"
	signupPlayerUC "github.com/m04kA/SMC-TeeTimeService/internal/usecase/signup_player"
	"github.com/m04kA/SMC-TeeTimeService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TeeTimeService/pkg/logger"
	"github.com/m04kA/SMC-TeeTimeService/pkg/metrics"
	"github.com/m04kA/SMC-TeeTimeService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-TeeTimeService/pkg/txmanager"
)

// realTimeProvider провайдер текущего времени для сервисов
type realTimeProvider struct{}

func (p *realTimeProvider) Now() time.Time {
	return time.Now()
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

	log.Info("Starting SMC-TeeTimeService...")
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

	// Инициализируем почтовый клиент
	mailClient := mailer.NewClient(mailer.Config{
		Enabled:  cfg.Mail.Enabled,
		Host:     cfg.Mail.Host,
		Port:     cfg.Mail.Port,
		Username: cfg.Mail.Username,
		Password: cfg.Mail.Password,
		From:     cfg.Mail.From,
		SiteURL:  cfg.Mail.SiteURL,
	}, log)
	if mailClient.Enabled() {
		log.Info("SMTP mailer initialized (host=%s, port=%d)", cfg.Mail.Host, cfg.Mail.Port)
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		groupRepository      *groupRepo.Repository
		eventRepository      *eventRepo.Repository
		subscriberRepository *subscriberRepo.Repository
		settingsRepository   *settingsRepo.Repository
	)

	// Интерфейс для transaction manager (используется в сервисах и usecases)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
		DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		groupRepository = groupRepo.NewRepository(wrappedDB)
		eventRepository = eventRepo.NewRepository(wrappedDB)
		subscriberRepository = subscriberRepo.NewRepository(wrappedDB)
		settingsRepository = settingsRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		// Инициализируем репозитории без метрик
		groupRepository = groupRepo.NewRepository(db)
		eventRepository = eventRepo.NewRepository(db)
		subscriberRepository = subscriberRepo.NewRepository(db)
		settingsRepository = settingsRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	groupSvc := groupsService.NewService(
		groupRepository,
		eventRepository,
		subscriberRepository,
		txMgr,
		log,
	)
	eventSvc := eventsService.NewService(
		groupRepository,
		eventRepository,
		txMgr,
		&realTimeProvider{},
		log,
	)
	subscriberSvc := subscribersService.NewService(
		groupRepository,
		subscriberRepository,
		log,
	)
	settingsSvc := settingsService.NewService(settingsRepository, log)

	// Инициализируем use cases
	signupPlayerUseCase := signupPlayerUC.NewUseCase(groupRepository, eventRepository, txMgr, log)
	removePlayerUseCase := removePlayerUC.NewUseCase(groupRepository, eventRepository, log)
	movePlayerUseCase := movePlayerUC.NewUseCase(groupRepository, eventRepository, txMgr, log)
	generateTeeTimesUseCase := generateTeeTimesUC.NewUseCase(eventRepository, log)
	runRemindersUseCase := runRemindersUC.NewUseCase(
		settingsRepository,
		groupRepository,
		eventRepository,
		subscriberRepository,
		mailClient,
		cfg.Admin.Emails,
		log,
	)

	// Запускаем планировщик напоминаний
	reminderScheduler := scheduler.New(settingsRepository, runRemindersUseCase, log)
	if err := reminderScheduler.Start(); err != nil {
		log.Fatal("Failed to start reminder scheduler: %v", err)
	}
	log.Info("Reminder scheduler started")

	// Инициализируем handlers
	resolveAccessCode := resolveAccessCodeHandler.NewHandler(groupSvc, log)
	createGroup := createGroupHandler.NewHandler(groupSvc, log)
	listGroups := listGroupsHandler.NewHandler(groupSvc, log)
	getGroup := getGroupHandler.NewHandler(groupSvc, log)
	updateGroup := updateGroupHandler.NewHandler(groupSvc, log)
	archiveGroup := archiveGroupHandler.NewHandler(groupSvc, log)
	hardDeleteGroup := hardDeleteGroupHandler.NewHandler(groupSvc, log)
	listEvents := listEventsHandler.NewHandler(eventSvc, log)
	getEvent := getEventHandler.NewHandler(eventSvc, log)
	createEvent := createEventHandler.NewHandler(eventSvc, log)
	updateEvent := updateEventHandler.NewHandler(eventSvc, log)
	deleteEvent := deleteEventHandler.NewHandler(eventSvc, log)
	addTeeTime := addTeeTimeHandler.NewHandler(eventSvc, log)
	generateTeeTimes := generateTeeTimesHandler.NewHandler(generateTeeTimesUseCase, log)
	signupPlayer := signupPlayerHandler.NewHandler(signupPlayerUseCase, log)
	removePlayer := removePlayerHandler.NewHandler(removePlayerUseCase, log)
	movePlayer := movePlayerHandler.NewHandler(movePlayerUseCase, log)
	subscribe := subscribeHandler.NewHandler(subscriberSvc, log)
	listSubscribers := listSubscribersHandler.NewHandler(subscriberSvc, log)
	deleteSubscriber := deleteSubscriberHandler.NewHandler(subscriberSvc, log)
	unsubscribe := unsubscribeHandler.NewHandler(subscriberSvc, log)
	getSettings := getSettingsHandler.NewHandler(settingsSvc, log)
	updateSettings := updateSettingsHandler.NewHandler(settingsSvc, log)
	runReminders := runRemindersHandler.NewHandler(runRemindersUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Переход по ссылке отписки из письма (вне /api, отдает plain text)
	r.HandleFunc("/unsubscribe/{token}", unsubscribe.Handle).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api").Subrouter()

	adminAuth := middleware.AdminAuth(cfg.Admin.Code, log)

	// ============================================================
	// PUBLIC ROUTES (без кода администратора)
	// ============================================================

	// Обмен кода доступа на группу
	api.HandleFunc("/groups/resolve-access-code", resolveAccessCode.Handle).Methods(http.MethodPost)

	// Страница группы
	api.HandleFunc("/groups/{groupId}", getGroup.Handle).Methods(http.MethodGet)

	// Предстоящие события группы
	api.HandleFunc("/groups/{groupId}/events", listEvents.Handle).Methods(http.MethodGet)
	api.HandleFunc("/groups/{groupId}/events/{eventId}", getEvent.Handle).Methods(http.MethodGet)

	// Запись и удаление игрока
	api.HandleFunc("/groups/{groupId}/events/{eventId}/tee-times/{teeTimeId}/players",
		signupPlayer.Handle).Methods(http.MethodPost)
	api.HandleFunc("/groups/{groupId}/events/{eventId}/tee-times/{teeTimeId}/players/{playerId}",
		removePlayer.Handle).Methods(http.MethodDelete)

	// Подписка на напоминания о свободных слотах
	api.HandleFunc("/groups/{groupId}/subscribers", subscribe.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют код в X-Admin-Code или ?code=)
	// ============================================================

	admin := api.PathPrefix("").Subrouter()
	admin.Use(adminAuth)

	// --- Группы ---
	admin.HandleFunc("/groups", createGroup.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/groups", listGroups.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/groups/{groupId}", updateGroup.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/groups/{groupId}", archiveGroup.Handle).Methods(http.MethodDelete)
	admin.HandleFunc("/groups/{groupId}/hard", hardDeleteGroup.Handle).Methods(http.MethodDelete)

	// --- События и слоты ---
	admin.HandleFunc("/groups/{groupId}/events", createEvent.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/groups/{groupId}/events/{eventId}", updateEvent.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/groups/{groupId}/events/{eventId}", deleteEvent.Handle).Methods(http.MethodDelete)
	admin.HandleFunc("/groups/{groupId}/events/{eventId}/tee-times", addTeeTime.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/groups/{groupId}/events/{eventId}/tee-times/auto", generateTeeTimes.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/groups/{groupId}/events/{eventId}/move-player", movePlayer.Handle).Methods(http.MethodPost)

	// --- Подписчики ---
	admin.HandleFunc("/groups/{groupId}/subscribers", listSubscribers.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/groups/{groupId}/subscribers/{subscriberId}", deleteSubscriber.Handle).Methods(http.MethodDelete)

	// --- Настройки и ручной запуск рассылки ---
	admin.HandleFunc("/admin/settings", getSettings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/admin/settings", updateSettings.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/admin/reminders/empty-tee-times", runReminders.Handle).Methods(http.MethodPost)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Запускаем сервер в горутине
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

	// Останавливаем планировщик напоминаний
	reminderScheduler.Stop()

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
