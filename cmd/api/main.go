// @title        Agrinova API
// @version      1.0
// @description  Session-based authentication and farm advisory endpoints for the Agrinova dashboard.
// @BasePath     /
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/suraj-kumar23/Agrinova-Main/internal/api"
	"github.com/suraj-kumar23/Agrinova-Main/internal/api/handler"
	"github.com/suraj-kumar23/Agrinova-Main/internal/api/metrics"
	"github.com/suraj-kumar23/Agrinova-Main/internal/core/domain"
	"github.com/suraj-kumar23/Agrinova-Main/internal/core/service"
	mongodb "github.com/suraj-kumar23/Agrinova-Main/internal/infrastructure/db/mongo"
	redisdb "github.com/suraj-kumar23/Agrinova-Main/internal/infrastructure/db/redis"
	"github.com/suraj-kumar23/Agrinova-Main/internal/infrastructure/tracing"
	"github.com/suraj-kumar23/Agrinova-Main/internal/infrastructure/upstream"
	"github.com/suraj-kumar23/Agrinova-Main/internal/pkg/config"
	"github.com/suraj-kumar23/Agrinova-Main/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		boot := logger.Init(logger.Options{Service: "agrinova-api"})
		boot.Fatal().Err(err).Msg("invalid configuration")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: cfg.Tracing.ServiceName,
	})

	shutdownTracing, err := tracing.Init(ctx, tracing.Config{
		Endpoint:    cfg.Tracing.Endpoint,
		ServiceName: cfg.Tracing.ServiceName,
		Environment: cfg.Env,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("tracing init failed")
	}

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
		Timeout:  cfg.Mongo.ConnectTimeout,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	log.Info().Str("database", cfg.Mongo.Database).Msg("mongo connected")

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("mongo index setup failed")
	}

	authOpts := []service.Option{}
	rdb := connectRedis(ctx, cfg.Redis)
	if rdb != nil {
		authOpts = append(authOpts, service.WithLoginThrottle(
			redisdb.NewLoginThrottle(rdb, cfg.Login.MaxAttempts, cfg.Login.Lockout),
		))
	}

	authService := service.NewAuthService(
		mongodb.NewUserRepository(db),
		mongodb.NewSessionRepository(db),
		cfg.Session.TTL,
		log.With().Str("component", "auth").Logger(),
		authOpts...,
	)

	advisoryService := newAdvisoryService(cfg.Upstream)

	router := api.NewRouter(api.Deps{
		Log:      log,
		Auth:     authService,
		Advisory: advisoryService,
		Cookies:  service.NewCookieSigner(cfg.Session.Secret),
		SessionCookie: handler.SessionCookie{
			Name:   cfg.Session.CookieName,
			Secure: cfg.Session.CookieSecure,
			TTL:    authService.SessionTTL(),
		},
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		Checks: []handler.DependencyCheck{
			handler.MongoCheck(db),
			handler.RedisCheck(rdb),
		},
	})

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           otelhttp.NewHandler(router, "http.server"),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("tracing shutdown")
	}
	if err := mongodb.Disconnect(shutdownCtx, mongoClient); err != nil {
		log.Error().Err(err).Msg("mongo disconnect")
	}
	if rdb != nil {
		if err := rdb.Close(); err != nil {
			log.Error().Err(err).Msg("redis close")
		}
	}
	log.Info().Msg("stopped")
}

// connectRedis returns nil when Redis is not configured or unreachable;
// login throttling is then disabled.
func connectRedis(ctx context.Context, cfg config.RedisConfig) *redis.Client {
	log := logger.Get()
	if cfg.Addr == "" {
		log.Info().Msg("redis not configured, login throttling disabled")
		return nil
	}
	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB})
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, login throttling disabled")
		return nil
	}
	return rdb
}

func newAdvisoryService(cfg config.UpstreamConfig) *service.AdvisoryService {
	log := logger.Get()
	upLog := log.With().Str("component", "upstream").Logger()
	client := upstream.NewClient(upstream.Options{
		Timeout:     cfg.Timeout,
		MaxInFlight: cfg.MaxInFlight,
		Observer:    metrics.ObserveUpstream,
		Logger:      upLog,
	})

	gemini := upstream.NewGemini(client, cfg.GeminiBaseURL, cfg.GeminiAPIKey, cfg.GeminiModel)
	for name, key := range map[string]string{
		"GEMINI_API_KEY":      cfg.GeminiAPIKey,
		"OPENWEATHER_API_KEY": cfg.OpenWeatherAPIKey,
		"ELEVENLABS_API_KEY":  cfg.ElevenLabsAPIKey,
	} {
		if key == "" {
			upLog.Warn().Str("var", name).Msg("api key not set, feature will be unavailable")
		}
	}

	return service.NewAdvisoryService(service.AdvisoryDeps{
		Crops:     upstream.NewCropAdvisor(client, cfg.CropURL),
		Yield:     upstream.NewYieldPredictor(client, cfg.YieldURL),
		Disease:   upstream.NewDiseaseClassifier(client, cfg.DiseaseURL),
		Text:      gemini,
		Treatment: gemini.ForFeature(domain.FeatureTreatment),
		Weather:   upstream.NewOpenWeather(client, cfg.OpenWeatherBaseURL, cfg.OpenWeatherAPIKey),
		Geo:       upstream.NewReverseGeocoder(client, cfg.GeocodeBaseURL),
		Speech:    upstream.NewElevenLabs(client, cfg.ElevenLabsBaseURL, cfg.ElevenLabsAPIKey),
	}, log.With().Str("component", "advisory").Logger())
}
