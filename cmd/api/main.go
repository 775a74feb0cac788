package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/crimsng/crims-api/internal/application/auth"
	"github.com/crimsng/crims-api/internal/application/usecase"
	infrapdf "github.com/crimsng/crims-api/internal/infrastructure/pdf"
	"github.com/crimsng/crims-api/internal/infrastructure/postgres"
	httpRouter "github.com/crimsng/crims-api/internal/interfaces/http"
	"github.com/crimsng/crims-api/pkg/config"
	"github.com/crimsng/crims-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	criminalRepo := postgres.NewCriminalRepository(pool)
	suspectRepo := postgres.NewSuspectRepository(pool)
	complainantRepo := postgres.NewComplainantRepository(pool)
	statsRepo := postgres.NewStatsRepository(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, cfg.Auth.AdminSecret)
	rosterGen := infrapdf.NewMarotoRosterGenerator()
	criminalUC := usecase.NewCriminalUseCase(criminalRepo, rosterGen)
	suspectUC := usecase.NewSuspectUseCase(suspectRepo)
	complainantUC := usecase.NewComplainantUseCase(complainantRepo)
	statsUC := usecase.NewStatsUseCase(statsRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    cfg.HTTP.BodyLimitMB * 1024 * 1024,
		ReadTimeout:  time.Second * 30,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.HTTP.CORSOrigins,
		AllowHeaders: strings.Join([]string{fiber.HeaderOrigin, fiber.HeaderContentType, fiber.HeaderAuthorization}, ","),
	}))
	app.Use(fiberlogger.New())
	app.Use(httpRouter.MetricsMiddleware())

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "CRIMS API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", httpRouter.MetricsHandler())

	loginLimiter := httpRouter.NewLoginLimiter(
		cfg.Rate.LoginMax,
		time.Duration(cfg.Rate.LoginWindowMinutes)*time.Minute,
		nil, // in-process storage; inject a shared fiber.Storage when clustered
	)

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		CriminalUC:    criminalUC,
		SuspectUC:     suspectUC,
		ComplainantUC: complainantUC,
		StatsUC:       statsUC,
		Users:         userRepo,
		JWTSecret:     cfg.JWT.Secret,
		LoginLimiter:  loginLimiter,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("http server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
