package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=5000"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Session  SessionConfig
	CORS     CORSConfig
	Mongo    MongoConfig
	Redis    RedisConfig
	Login    LoginConfig
	Upstream UpstreamConfig
	Tracing  TracingConfig
}

type SessionConfig struct {
	Secret       string        `env:"SESSION_SECRET, required"`
	TTL          time.Duration `env:"SESSION_TTL, default=1h"`
	CookieName   string        `env:"SESSION_COOKIE_NAME, default=agrinova.sid"`
	CookieSecure bool          `env:"SESSION_COOKIE_SECURE, default=false"`
}

type CORSConfig struct {
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS, default=http://localhost:5173,http://localhost:3000"`
}

type MongoConfig struct {
	URI            string        `env:"MONGO_URI, required"`
	Database       string        `env:"MONGO_DB, default=agri"`
	ConnectTimeout time.Duration `env:"MONGO_CONNECT_TIMEOUT, default=5s"`
}

// RedisConfig is optional; an empty Addr disables login throttling.
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB, default=0"`
}

type LoginConfig struct {
	MaxAttempts int           `env:"LOGIN_MAX_ATTEMPTS, default=5"`
	Lockout     time.Duration `env:"LOGIN_LOCKOUT, default=15m"`
}

type UpstreamConfig struct {
	Timeout     time.Duration `env:"UPSTREAM_TIMEOUT, default=20s"`
	MaxInFlight int64         `env:"UPSTREAM_MAX_INFLIGHT, default=32"`

	CropURL    string `env:"CROP_API_URL, default=https://crop-recommendation-gc3x.onrender.com"`
	YieldURL   string `env:"YIELD_API_URL, default=https://rudra2003-price-prediction-crops.hf.space/predict"`
	DiseaseURL string `env:"DISEASE_API_URL, default=https://render-begins-musharraf.onrender.com/predict"`

	GeminiAPIKey  string `env:"GEMINI_API_KEY"`
	GeminiModel   string `env:"GEMINI_MODEL, default=gemini-1.5-flash"`
	GeminiBaseURL string `env:"GEMINI_BASE_URL, default=https://generativelanguage.googleapis.com/v1beta"`

	OpenWeatherAPIKey  string `env:"OPENWEATHER_API_KEY"`
	OpenWeatherBaseURL string `env:"OPENWEATHER_BASE_URL, default=https://api.openweathermap.org/data/2.5"`
	GeocodeBaseURL     string `env:"GEOCODE_BASE_URL, default=https://api.bigdatacloud.net/data/reverse-geocode-client"`

	ElevenLabsAPIKey  string `env:"ELEVENLABS_API_KEY"`
	ElevenLabsBaseURL string `env:"ELEVENLABS_BASE_URL, default=https://api.elevenlabs.io/v1"`
}

type TracingConfig struct {
	Endpoint    string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName string `env:"OTEL_SERVICE_NAME, default=agrinova-api"`
}

// IsDevelopment reports whether human-friendly logs should be used.
func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.Env, "development")
}

// Load reads an optional .env file and then the process environment.
// Variables already set in the environment win over the file.
func Load(ctx context.Context) (*Config, error) {
	_ = godotenv.Load()
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if len(cfg.Session.Secret) < 16 {
		return nil, fmt.Errorf("config: SESSION_SECRET must be at least 16 characters")
	}
	return &cfg, nil
}
