package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	"wardrobeapi/controllers"
	"wardrobeapi/dbhelper"
	"wardrobeapi/services"
	"wardrobeapi/wardrobe"
)

func main() {
	_ = godotenv.Load()

	env := services.GetEnv("ENV", "local")
	zerolog.TimeFieldFormat = time.RFC3339
	if env == "local" {
		zlog.Logger = zlog.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              os.Getenv("SENTRY_DSN"),
		Environment:      env,
		Release:          "wardrobeapi@1.0.0",
		TracesSampleRate: 1.0,
	})
	if err != nil {
		zlog.Fatal().Err(err).Msg("sentry.Init")
	}
	defer sentry.Flush(2 * time.Second)
	defer sentry.Recover()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := dbhelper.SetupDB()
	if err != nil {
		zlog.Fatal().Err(err).Msg("failed to open store")
	}
	adapter := wardrobe.NewAdapter(dbhelper.NewGormKV(db), services.GetEnvBool("SEED_WARDROBE", true))
	repo, profiles, err := wardrobe.Open(adapter)
	if err != nil {
		zlog.Fatal().Err(err).Msg("failed to load wardrobe")
	}
	zlog.Info().Int("items", repo.Len()).Msg("[Wardrobe] loaded")

	gemini, err := services.NewGeminiStylist(ctx, services.GeminiConfigFromEnv())
	if err != nil {
		zlog.Fatal().Err(err).Msg("failed to create genai client")
	}
	stylist := &services.Stylist{
		Analyzer:     gemini,
		Recommender:  gemini,
		Composer:     gemini,
		Connectivity: services.NewDialChecker(),
	}

	awsService := &services.AWSService{}
	if err := awsService.InitPresignClient(ctx); err != nil {
		zlog.Fatal().Err(err).Msg("failed to init presign client")
	}
	urlCache, err := services.NewURLCacheService(awsService, services.GetEnv("R2_BUCKET_NAME", ""))
	if err != nil {
		zlog.Fatal().Err(err).Msg("failed to initialize URL cache service")
	}
	host := services.NewImageHostFromEnv(awsService, urlCache)

	e := controllers.SetupServer(repo, profiles, stylist, host)
	e.Debug = env == "local"
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(sentryecho.New(sentryecho.Options{Repanic: true}))

	go func() {
		if err := e.Start(":" + services.GetEnv("PORT", "8083")); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		zlog.Error().Err(err).Msg("shutdown")
	}
}
