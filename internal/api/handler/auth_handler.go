package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/suraj-kumar23/Agrinova-Main/internal/api/metrics"
	"github.com/suraj-kumar23/Agrinova-Main/internal/core/domain"
	"github.com/suraj-kumar23/Agrinova-Main/internal/core/ports"
)

// SessionCookie describes the cookie that carries the signed session id.
type SessionCookie struct {
	Name   string
	Secure bool
	TTL    time.Duration
}

// CookieCodec seals and opens session cookie values.
type CookieCodec interface {
	Sign(session *domain.Session) (string, error)
	Verify(value string) (string, error)
}

type AuthHandler struct {
	authService ports.AuthService
	codec       CookieCodec
	cookie      SessionCookie
	log         zerolog.Logger
}

func NewAuthHandler(authService ports.AuthService, codec CookieCodec, cookie SessionCookie, log zerolog.Logger) *AuthHandler {
	if cookie.TTL <= 0 {
		cookie.TTL = domain.DefaultSessionTTL
	}
	return &AuthHandler{authService: authService, codec: codec, cookie: cookie, log: log}
}

// Register creates a new farmer account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Signup details"
// @Success      201   {object}  registerResponse
// @Failure      400   {object}  messageResponse
// @Failure      409   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		metrics.RegistrationsTotal.WithLabelValues(domain.KindValidation.String()).Inc()
		return domain.NewValidationError("invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		metrics.RegistrationsTotal.WithLabelValues(domain.KindValidation.String()).Inc()
		return err
	}

	user, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		metrics.RegistrationsTotal.WithLabelValues(domain.KindOf(err).String()).Inc()
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusCreated, registerResponse{Msg: "User registered successfully", User: user})
}

// Login verifies credentials and starts a cookie-backed session.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  messageResponse
// @Failure      429   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		metrics.LoginsTotal.WithLabelValues(domain.KindValidation.String()).Inc()
		return domain.NewValidationError("invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		metrics.LoginsTotal.WithLabelValues(domain.KindValidation.String()).Inc()
		return err
	}

	session, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues(domain.KindOf(err).String()).Inc()
		return err
	}

	value, err := h.codec.Sign(session)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues(domain.KindInternal.String()).Inc()
		return err
	}

	c.SetCookie(h.sessionCookie(value, h.cookie.TTL))
	metrics.LoginsTotal.WithLabelValues("success").Inc()
	metrics.SessionsCreatedTotal.Inc()
	h.log.Info().Str("user_id", session.User.ID).Msg("session started")

	user := session.User
	return c.JSON(http.StatusOK, loginResponse{Msg: "Login successful", User: &user})
}

// Current returns the user behind the session cookie.
//
// @Summary      Current session user
// @Tags         auth
// @Produce      json
// @Success      200  {object}  domain.SessionUser
// @Failure      401  {object}  messageResponse
// @Router       /api/auth/current [get]
// @Router       /api/auth/user [get]
func (h *AuthHandler) Current(c echo.Context) error {
	user, err := ctxSessionUser(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Logout destroys the session, if any, and clears the cookie.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  messageResponse
// @Failure      500  {object}  messageResponse
// @Router       /api/auth/logout [get]
func (h *AuthHandler) Logout(c echo.Context) error {
	var sid string
	if cookie, err := c.Cookie(h.cookie.Name); err == nil {
		// A forged or stale cookie has nothing to destroy server-side.
		sid, _ = h.codec.Verify(cookie.Value)
	}

	if err := h.authService.Logout(c.Request().Context(), sid); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Logout failed").SetInternal(err)
	}

	c.SetCookie(h.sessionCookie("", -1))
	metrics.LogoutsTotal.Inc()
	return c.JSON(http.StatusOK, messageResponse{Msg: "Logged out successfully"})
}

// sessionCookie builds the session cookie. A negative ttl expires it.
func (h *AuthHandler) sessionCookie(value string, ttl time.Duration) *http.Cookie {
	cookie := &http.Cookie{
		Name:     h.cookie.Name,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	}
	if ttl < 0 {
		cookie.MaxAge = -1
		cookie.Expires = time.Unix(0, 0)
		return cookie
	}
	cookie.MaxAge = int(ttl / time.Second)
	return cookie
}
