package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"tutorboard/internal/ai"
	"tutorboard/internal/app"
	"tutorboard/internal/config"
	controller "tutorboard/internal/controller/http"
	"tutorboard/internal/notify"
	"tutorboard/internal/repository"
	"tutorboard/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	logger.Sugar().Infow("Starting tutorboard server",
		"environment", cfg.Environment,
		"addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.DBDSN)
	if err != nil {
		logger.Fatal("failed to create db pool", zap.Error(err))
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		logger.Fatal("failed to ping db", zap.Error(err))
	}

	migrator, err := app.NewMigrator(pool, cfg.MigrationsPath)
	if err != nil {
		logger.Fatal("failed to create migrator", zap.Error(err))
	}
	if err := migrator.Run(ctx); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}
	if err := migrator.Close(); err != nil {
		logger.Warn("failed to close migrator", zap.Error(err))
	}

	userRepo := repository.NewUserRepository(pool)
	studentRepo := repository.NewStudentRepository(pool)
	slotRepo := repository.NewSlotRepository(pool)
	assignmentRepo := repository.NewAssignmentRepository(pool)
	progressRepo := repository.NewProgressRepository(pool)
	chatRepo := repository.NewChatRepository(pool)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, logger)
	studentService := service.NewStudentService(studentRepo, logger)
	scheduleService := service.NewScheduleService(slotRepo, assignmentRepo, studentRepo, logger)
	progressService := service.NewProgressService(progressRepo, assignmentRepo, studentRepo, logger)
	chatService := service.NewChatService(chatRepo, studentRepo, ai.NewClient(cfg.GeminiAPIKey), logger)

	if cfg.TelegramEnabled() {
		notifier, err := notify.NewTelegramNotifier(cfg.TelegramToken, cfg.TelegramChatID, logger)
		if err != nil {
			logger.Fatal("failed to create telegram notifier", zap.Error(err))
		}
		watcher := app.NewBillingWatcher(studentService, notifier, logger)
		watcher.Start(ctx)
		defer watcher.Stop()
	} else {
		logger.Info("telegram notifications disabled")
	}

	fiberApp := controller.NewApp(controller.Handlers{
		Auth:     controller.NewAuthHandler(authService, logger),
		Student:  controller.NewStudentHandler(studentService, logger),
		Schedule: controller.NewScheduleHandler(scheduleService, logger),
		Progress: controller.NewProgressHandler(progressService, logger),
		Chat:     controller.NewChatHandler(chatService, logger),
	}, authService, logger)

	go func() {
		if err := fiberApp.Listen(cfg.HTTPAddr); err != nil {
			logger.Fatal("server stopped", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	if err := fiberApp.Shutdown(); err != nil {
		logger.Error("failed to shut down server", zap.Error(err))
	}
}
