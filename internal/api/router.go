package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/suraj-kumar23/Agrinova-Main/docs"
	"github.com/suraj-kumar23/Agrinova-Main/internal/api/handler"
	"github.com/suraj-kumar23/Agrinova-Main/internal/api/middleware"
	"github.com/suraj-kumar23/Agrinova-Main/internal/core/ports"
)

// Deps are the collaborators the HTTP layer is built from.
type Deps struct {
	Log            zerolog.Logger
	Auth           ports.AuthService
	Advisory       ports.AdvisoryService
	Cookies        handler.CookieCodec
	SessionCookie  handler.SessionCookie
	AllowedOrigins []string
	Checks         []handler.DependencyCheck

	// Registerer and Gatherer back the HTTP metrics and /metrics.
	// They default to the Prometheus default registry.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	if d.Registerer == nil {
		d.Registerer = prometheus.DefaultRegisterer
	}
	if d.Gatherer == nil {
		d.Gatherer = prometheus.DefaultGatherer
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "agrinova",
		Registerer: d.Registerer,
	}))
	e.Use(requestLogger(d.Log))
	e.Use(middleware.OriginGate(d.AllowedOrigins...))
	e.Use(middleware.CORS(d.AllowedOrigins...))

	// --- Health probes and tooling (no session required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(d.Checks...)

	e.GET("/", healthHandler.Root)
	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: d.Gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Auth routes ---
	authHandler := handler.NewAuthHandler(d.Auth, d.Cookies, d.SessionCookie, d.Log)
	requireSession := middleware.Session(d.SessionCookie.Name, d.Cookies, d.Auth)

	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.GET("/current", authHandler.Current, requireSession)
	auth.GET("/user", authHandler.Current, requireSession)
	auth.GET("/logout", authHandler.Logout)

	// --- Dashboard routes ---
	advisoryHandler := handler.NewAdvisoryHandler(d.Advisory)

	advisory := e.Group("/api/advisory", requireSession)
	advisory.POST("/crops", advisoryHandler.RecommendCrops)
	advisory.POST("/fertilizer", advisoryHandler.FertilizerAdvice)
	advisory.POST("/yield", advisoryHandler.PredictYield)
	advisory.POST("/disease", advisoryHandler.DiagnoseDisease, echomiddleware.BodyLimit("11M"))
	advisory.POST("/chat", advisoryHandler.Ask)
	advisory.GET("/weather", advisoryHandler.Weather)
	advisory.POST("/speech", advisoryHandler.Speak)

	return e
}

// requestLogger emits one zerolog line per request. Errors are rendered
// before logging so the recorded status is the one sent to the client.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		HandleError:  true,
		LogMethod:    true,
		LogURIPath:   true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogRemoteIP:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			log.Info().
				Str("method", v.Method).
				Str("path", v.URIPath).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Str("remote_ip", v.RemoteIP).
				Msg("request")
			return nil
		},
	})
}
