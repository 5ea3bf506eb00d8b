package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/suraj-kumar23/Agrinova-Main/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Msg string `json:"msg"`
}

const (
	msgServerError = "Server error"
	msgThrottled   = "Too many login attempts. Please try again later."
)

var featureLabels = map[string]string{
	domain.FeatureCrops:      "Crop recommendation",
	domain.FeatureFertilizer: "Fertilizer advice",
	domain.FeatureYield:      "Yield prediction",
	domain.FeatureDisease:    "Disease detection",
	domain.FeatureTreatment:  "Disease treatment",
	domain.FeatureChat:       "AI assistant",
	domain.FeatureWeather:    "Weather",
	domain.FeatureGeocode:    "Location lookup",
	domain.FeatureSpeech:     "Text to speech",
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps domain error kinds to their HTTP status codes.
//   - Logs every error, at warn for client errors and error for the rest.
//   - Renders a consistent JSON envelope: {"msg": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err)

		ev := log.Warn()
		if code >= http.StatusInternalServerError {
			ev = log.Error()
		}
		ev.Err(err).
			Str("method", c.Request().Method).
			Str("path", c.Request().URL.Path).
			Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
			Str("kind", errorKind(err)).
			Int("status", code).
			Msg("request failed")

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, errorResponse{Msg: msg})
	}
}

func resolveError(err error) (int, string) {
	// Echo's own errors (router 404/405, body limit) and handler-chosen messages.
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if m, ok := he.Message.(string); ok {
			return he.Code, m
		}
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	switch domain.KindOf(err) {
	case domain.KindNotFound:
		return http.StatusBadRequest, "User not found"
	case domain.KindInvalidCredentials:
		return http.StatusBadRequest, "Invalid credentials"
	case domain.KindNoActiveSession:
		return http.StatusUnauthorized, "No active session"
	case domain.KindValidation:
		return http.StatusBadRequest, validationMessage(err)
	case domain.KindConflict:
		return http.StatusConflict, "User already exists"
	case domain.KindThrottled:
		return http.StatusTooManyRequests, msgThrottled
	case domain.KindUpstream:
		return http.StatusBadGateway, upstreamMessage(err)
	default:
		return http.StatusInternalServerError, msgServerError
	}
}

func validationMessage(err error) string {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return ve.Message
	}
	if errors.Is(err, domain.ErrPasswordMismatch) {
		return "Passwords do not match"
	}
	return "Invalid request"
}

func upstreamMessage(err error) string {
	label := "This feature"
	var ue *domain.UpstreamError
	if errors.As(err, &ue) {
		if l, ok := featureLabels[ue.Feature]; ok {
			label = l
		}
	}
	return label + " is unavailable right now. Please try again."
}

func errorKind(err error) string {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return "http"
	}
	return domain.KindOf(err).String()
}
