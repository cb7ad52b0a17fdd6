package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/spf13/cobra"
	"github.com/vetlink/vetlink-api/internal/config"
	"github.com/vetlink/vetlink-api/internal/db"
	"github.com/vetlink/vetlink-api/internal/domain/fiber/handler"
	"github.com/vetlink/vetlink-api/internal/events"
	"github.com/vetlink/vetlink-api/internal/middleware"
	"github.com/vetlink/vetlink-api/internal/repository"
	"github.com/vetlink/vetlink-api/internal/resume"
	"github.com/vetlink/vetlink-api/internal/scheduler"
	"github.com/vetlink/vetlink-api/internal/service"
	"github.com/vetlink/vetlink-api/internal/session"
	"github.com/vetlink/vetlink-api/internal/usecase"
	"github.com/vetlink/vetlink-api/internal/util"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve(ctx context.Context) error {
	appConfig := config.LoadAppConfig()

	app := fiber.New(fiber.Config{
		AppName:   appConfig.Name,
		BodyLimit: int(config.LoadUploadConfig().MaxSize) + 1024*1024,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			message := "Internal Server Error"

			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
				message = e.Message
			}
			return util.ErrorResponse(c, util.ErrorResponseFormat{Code: code, Message: message}, err)
		},
	})
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: !appConfig.IsProduction(),
	}))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return appConfig.IsProduction()
		},
	}))
	app.Use(healthcheck.New())
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))
	app.Use(middleware.RateLimiter(appConfig.RateLimit, 1*time.Minute))

	database, err := db.Connect(config.LoadDBConfig(), appConfig, zlog)
	if err != nil {
		return err
	}
	if err := db.Migrate(database); err != nil {
		return err
	}

	rdb, err := db.NewRedisClient(ctx, config.LoadRedisConfig().URL)
	if err != nil {
		return err
	}
	defer rdb.Close()

	users := repository.NewUserRepository(database)
	profiles := repository.NewProfileRepository(database)
	jobs := repository.NewJobRepository(database)
	applications := repository.NewApplicationRepository(database)
	messages := repository.NewMessageRepository(database)
	sessions := session.NewRedisStore(rdb)
	publisher := events.NewRedisPublisher(rdb)

	embedder, writer := llmServices(ctx)
	upload := config.LoadUploadConfig()

	authUC := usecase.NewAuthUsecase(users, sessions, config.LoadAuthConfig(), zlog)
	profileUC := usecase.NewProfileUsecase(profiles)
	jobUC := usecase.NewJobUsecase(jobs, profiles, embedder, zlog)
	matchUC := usecase.NewMatchUsecase(jobs, profiles)
	applicationUC := usecase.NewApplicationUsecase(applications, jobs, profiles, publisher, zlog)
	messageUC := usecase.NewMessageUsecase(messages, users, jobs, publisher, zlog)
	resumeUC := usecase.NewResumeUsecase(resume.NewDocumentReader(zlog, upload.OCREnabled), profileUC, users, writer, zlog)

	auth := middleware.RequireAuth(authUC)
	api := app.Group("/api/v1")
	handler.NewAuthHandler(authUC).RegisterRoutes(api, auth)
	handler.NewProfileHandler(profileUC).RegisterRoutes(api, auth)
	handler.NewJobHandler(jobUC).RegisterRoutes(api, auth)
	handler.NewApplicationHandler(applicationUC).RegisterRoutes(api, auth)
	handler.NewMatchHandler(matchUC).RegisterRoutes(api, auth)
	handler.NewMessageHandler(messageUC).RegisterRoutes(api, auth)
	handler.NewResumeHandler(resumeUC, upload.MaxSize).RegisterRoutes(api, auth)

	sched := scheduler.New(jobUC, config.LoadSchedulerConfig().JobExpirySpec, zlog)
	if err := sched.Start(ctx); err != nil {
		return err
	}
	defer sched.Stop()

	// Monitor goroutine count
	go func() {
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				zlog.Debug("runtime", zap.Int("goroutines", runtime.NumGoroutine()))
			}
		}
	}()

	errCh := make(chan error, 1)
	go func() {
		zlog.Info("server running", zap.String("port", appConfig.Port), zap.String("env", appConfig.Env))
		errCh <- app.Listen(appConfig.Port)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	zlog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return app.ShutdownWithContext(shutdownCtx)
}

// llmServices picks the embedding and resume writing backends. Either may
// be nil, in which case the matching endpoints answer 503.
func llmServices(ctx context.Context) (usecase.Embedder, usecase.ResumeWriter) {
	switch provider := config.LoadLLMConfig().Provider; provider {
	case config.LLMProviderGemini:
		gemini, err := service.NewGeminiService(ctx, zlog)
		if err != nil {
			zlog.Warn("gemini disabled", zap.Error(err))
			return nil, nil
		}
		return gemini, service.NewResumeWriter(gemini, zlog)
	case config.LLMProviderOpenRouter:
		openRouter, err := service.NewOpenRouterService()
		if err != nil {
			zlog.Warn("openrouter disabled", zap.Error(err))
			return nil, nil
		}
		// OpenRouter has no embedding endpoint, so semantic search stays off.
		return nil, service.NewResumeWriter(openRouter, zlog)
	case config.LLMProviderNone:
		return nil, nil
	default:
		zlog.Warn("unknown LLM provider, AI features disabled", zap.String("provider", provider))
		return nil, nil
	}
}
