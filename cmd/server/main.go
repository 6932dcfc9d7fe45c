package main

import (
	"context"
	"log"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	apiHandler "github.com/healthcare24/backend/api/handler"
	"github.com/healthcare24/backend/internal/config"
	"github.com/healthcare24/backend/internal/infrastructure/audit"
	"github.com/healthcare24/backend/internal/infrastructure/monitor"
	pgInfra "github.com/healthcare24/backend/internal/infrastructure/postgres"
	redisInfra "github.com/healthcare24/backend/internal/infrastructure/redis"
	"github.com/healthcare24/backend/internal/middleware"
	"github.com/healthcare24/backend/internal/router"
	"github.com/healthcare24/backend/internal/services"
	"github.com/healthcare24/backend/internal/services/lifecycle"
	"github.com/healthcare24/backend/pkg/httpcontext"
	"github.com/healthcare24/backend/pkg/logger"
	"github.com/healthcare24/backend/repository/postgres"
	redisRepo "github.com/healthcare24/backend/repository/redis"
	adminUC "github.com/healthcare24/backend/usecase/admin"
	authUC "github.com/healthcare24/backend/usecase/auth"
	entriesUC "github.com/healthcare24/backend/usecase/entries"
	patientsUC "github.com/healthcare24/backend/usecase/patients"
	profileUC "github.com/healthcare24/backend/usecase/profile"
	queriesUC "github.com/healthcare24/backend/usecase/queries"
	taskUC "github.com/healthcare24/backend/usecase/task"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
	})
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer zapLogger.Sync()

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	manager := lifecycle.New(cfg.Context.ShutdownTimeout, zapLogger)
	manager.Listen(cancel)

	if err := pgInfra.RunMigrations(cfg, zapLogger); err != nil {
		zapLogger.Fatal("migrations failed", zap.Error(err))
	}

	pool, err := pgInfra.NewPool(appCtx, cfg.Database, zapLogger)
	if err != nil {
		zapLogger.Fatal("postgres connection failed", zap.Error(err))
	}
	manager.Register("postgres", func(ctx context.Context) error {
		pool.Close()
		return nil
	})

	redisClient, err := redisInfra.NewClient(cfg.Redis)
	if err != nil {
		zapLogger.Fatal("redis connection failed", zap.Error(err))
	}
	manager.Register("redis", func(ctx context.Context) error {
		return redisClient.Close()
	})

	journal, err := audit.Open(cfg.Audit.Path, "audit")
	if err != nil {
		zapLogger.Fatal("failed to open audit journal", zap.Error(err))
	}
	manager.Register("audit_journal", func(ctx context.Context) error {
		return journal.Close()
	})

	mon := monitor.New(pool, redisClient, journal, 10*time.Second, zapLogger)
	mon.Start()
	manager.Register("monitor", func(ctx context.Context) error {
		mon.Stop()
		return nil
	})

	userRepo := postgres.NewUserRepository(pool)
	patientRepo := postgres.NewPatientRepository(pool)
	assignmentRepo := postgres.NewAssignmentRepository(pool)
	templateRepo := postgres.NewTaskTemplateRepository(pool)
	libraryRepo := postgres.NewLibraryRepository(pool)
	entryRepo := postgres.NewCompletionEntryRepository(pool)
	queryRepo := postgres.NewQueryRepository(pool)
	sessionRepo := redisRepo.NewSessionRepository(redisClient, cfg.JWT.SessionTTL)

	recorder := services.NewAuditRecorder(journal, zapLogger)

	sweeper := services.NewAuditSweeper(journal, zapLogger, services.SweeperConfig{
		Interval:  cfg.Audit.SweepInterval,
		Retention: time.Duration(cfg.Audit.RetentionDays) * 24 * time.Hour,
	})
	sweeper.Start()
	manager.Register("audit_sweeper", func(ctx context.Context) error {
		sweeper.Stop(ctx)
		return nil
	})

	authUseCase := authUC.New(userRepo, sessionRepo, authUC.Config{
		Secret:     cfg.JWT.Secret,
		Issuer:     cfg.AppName,
		SessionTTL: cfg.JWT.SessionTTL,
	}, zapLogger)
	profileUseCase := profileUC.New(userRepo, zapLogger)
	adminUseCase := adminUC.New(userRepo, patientRepo, assignmentRepo, libraryRepo, zapLogger)
	patientsUseCase := patientsUC.New(patientRepo, assignmentRepo, zapLogger)
	taskUseCase := taskUC.New(templateRepo, libraryRepo, patientRepo, assignmentRepo, recorder, zapLogger)
	entriesUseCase := entriesUC.New(entryRepo, templateRepo, patientRepo, assignmentRepo, userRepo, recorder, zapLogger)
	queriesUseCase := queriesUC.New(queryRepo, userRepo, recorder, zapLogger)

	ctxAdapter := httpcontext.NewAdapter(cfg.Context.RequestTimeout)

	handlers := router.Handlers{
		Auth:    apiHandler.NewAuthHandler(authUseCase, profileUseCase, ctxAdapter, zapLogger),
		Admin:   apiHandler.NewAdminHandler(adminUseCase, ctxAdapter, zapLogger),
		Patient: apiHandler.NewPatientHandler(patientsUseCase, ctxAdapter, zapLogger),
		Task:    apiHandler.NewTaskHandler(taskUseCase, entriesUseCase, ctxAdapter, zapLogger),
		Nurse:   apiHandler.NewNurseHandler(patientsUseCase, taskUseCase, entriesUseCase, ctxAdapter, zapLogger),
		Query:   apiHandler.NewQueryHandler(queriesUseCase, ctxAdapter, zapLogger),
		Health:  apiHandler.NewHealthHandler(mon, ctxAdapter, zapLogger),
	}

	authMiddleware := middleware.JWTAuth(cfg.JWT.Secret, zapLogger)
	r := router.New(handlers, authMiddleware)

	server := &fasthttp.Server{
		Handler:      r.Handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
		Name:         cfg.AppName,
	}

	go func() {
		zapLogger.Info("server started", zap.String("address", cfg.Address()))
		if err := server.ListenAndServe(cfg.Address()); err != nil {
			zapLogger.Fatal("server crashed", zap.Error(err))
		}
	}()

	manager.Register("http_server", func(ctx context.Context) error {
		return server.Shutdown()
	})

	<-appCtx.Done()

	if err := manager.Shutdown(context.Background()); err != nil {
		zapLogger.Error("graceful shutdown error", zap.Error(err))
	}
}
