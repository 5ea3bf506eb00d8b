package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/suraj-kumar23/Agrinova-Main/internal/api/middleware"
	"github.com/suraj-kumar23/Agrinova-Main/internal/core/domain"
	"github.com/suraj-kumar23/Agrinova-Main/internal/core/ports"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, in ports.RegisterInput) (*domain.User, error)
	loginFn    func(ctx context.Context, email, password string) (*domain.Session, error)
	currentFn  func(ctx context.Context, sessionID string) (*domain.SessionUser, error)
	logoutFn   func(ctx context.Context, sessionID string) error
}

func (s *stubAuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	return s.registerFn(ctx, in)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) CurrentUser(ctx context.Context, sessionID string) (*domain.SessionUser, error) {
	return s.currentFn(ctx, sessionID)
}

func (s *stubAuthService) Logout(ctx context.Context, sessionID string) error {
	return s.logoutFn(ctx, sessionID)
}

type stubCodec struct{}

func (stubCodec) Sign(s *domain.Session) (string, error) { return "signed:" + s.ID, nil }

func (stubCodec) Verify(value string) (string, error) {
	if !strings.HasPrefix(value, "signed:") {
		return "", domain.ErrNoActiveSession
	}
	return strings.TrimPrefix(value, "signed:"), nil
}

var testCookie = SessionCookie{Name: "agrinova.sid", TTL: time.Hour}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func jsonRequest(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req
}

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestAuthHandler_Register_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
			if in.Name != "Asha" || in.Email != "a@x.com" || in.ConfirmPassword != "secret1" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.User{ID: "u1", Name: in.Name, Email: in.Email, PasswordHash: "hash"}, nil
		},
	}
	h := NewAuthHandler(stub, stubCodec{}, testCookie, zerolog.Nop())

	req := jsonRequest(http.MethodPost, "/api/auth/register",
		`{"name":"Asha","email":"a@x.com","phone":"999","password":"secret1","confirmPassword":"secret1"}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "hash") {
		t.Fatalf("password hash leaked: %s", rec.Body.String())
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["msg"] != "User registered successfully" {
		t.Fatalf("unexpected msg: %v", resp["msg"])
	}
	if findCookie(rec, testCookie.Name) != nil {
		t.Fatalf("register must not start a session")
	}
}

func TestAuthHandler_Register_Rejections(t *testing.T) {
	tests := []struct {
		name string
		body string
		err  error
		want error
	}{
		{"invalid payload", "not-json", nil, domain.ErrValidation},
		{"missing email", `{"name":"A","password":"secret1","confirmPassword":"secret1"}`, nil, domain.ErrValidation},
		{"short password", `{"name":"A","email":"a@x.com","password":"123","confirmPassword":"123"}`, nil, domain.ErrValidation},
		{"user exists", `{"name":"A","email":"a@x.com","password":"secret1","confirmPassword":"secret1"}`, domain.ErrUserExists, domain.ErrUserExists},
		{"mismatch", `{"name":"A","email":"a@x.com","password":"secret1","confirmPassword":"secret2"}`, domain.ErrPasswordMismatch, domain.ErrPasswordMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEcho()
			stub := &stubAuthService{
				registerFn: func(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
					if tt.err == nil {
						t.Fatalf("should not be called")
					}
					return nil, tt.err
				},
			}
			h := NewAuthHandler(stub, stubCodec{}, testCookie, zerolog.Nop())

			rec := httptest.NewRecorder()
			c := e.NewContext(jsonRequest(http.MethodPost, "/api/auth/register", tt.body), rec)

			err := h.Register(c)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := newTestEcho()
	now := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*domain.Session, error) {
			if email != "a@x.com" || password != "right" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return domain.NewSession("sid-1", domain.SessionUser{ID: "u1", Name: "Asha", Email: "a@x.com"}, now, time.Hour), nil
		},
	}
	h := NewAuthHandler(stub, stubCodec{}, testCookie, zerolog.Nop())

	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/api/auth/login", `{"email":"a@x.com","password":"right"}`), rec)

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Msg  string             `json:"msg"`
		User domain.SessionUser `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Msg != "Login successful" || resp.User.Email != "a@x.com" || resp.User.ID != "u1" {
		t.Fatalf("unexpected payload: %+v", resp)
	}

	cookie := findCookie(rec, "agrinova.sid")
	if cookie == nil {
		t.Fatalf("expected session cookie")
	}
	if cookie.Value != "signed:sid-1" || !cookie.HttpOnly || cookie.Path != "/" || cookie.MaxAge != 3600 {
		t.Fatalf("unexpected cookie: %+v", cookie)
	}
	if cookie.SameSite != http.SameSiteLaxMode {
		t.Fatalf("expected SameSite=Lax, got %v", cookie.SameSite)
	}
}

func TestAuthHandler_Login_FailureSetsNoCookie(t *testing.T) {
	for _, want := range []error{domain.ErrUserNotFound, domain.ErrInvalidCredentials, domain.ErrTooManyAttempts} {
		t.Run(want.Error(), func(t *testing.T) {
			e := newTestEcho()
			stub := &stubAuthService{
				loginFn: func(ctx context.Context, email, password string) (*domain.Session, error) {
					return nil, want
				},
			}
			h := NewAuthHandler(stub, stubCodec{}, testCookie, zerolog.Nop())

			rec := httptest.NewRecorder()
			c := e.NewContext(jsonRequest(http.MethodPost, "/api/auth/login", `{"email":"a@x.com","password":"wrong"}`), rec)

			if err := h.Login(c); !errors.Is(err, want) {
				t.Fatalf("expected %v, got %v", want, err)
			}
			if findCookie(rec, "agrinova.sid") != nil {
				t.Fatalf("failed login must not set a cookie")
			}
		})
	}
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*domain.Session, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewAuthHandler(stub, stubCodec{}, testCookie, zerolog.Nop())

	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/api/auth/login", `{"email":"a@x.com"}`), rec)

	err := h.Login(c)
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if ve.Message != "password is required" {
		t.Fatalf("unexpected message %q", ve.Message)
	}
}

func TestAuthHandler_Current(t *testing.T) {
	e := newTestEcho()
	h := NewAuthHandler(&stubAuthService{}, stubCodec{}, testCookie, zerolog.Nop())

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/auth/current", nil), rec)

	if err := h.Current(c); !errors.Is(err, domain.ErrNoActiveSession) {
		t.Fatalf("expected ErrNoActiveSession, got %v", err)
	}

	c.Set(middleware.SessionUserKey, &domain.SessionUser{ID: "u1", Name: "Asha", Email: "a@x.com"})
	if err := h.Current(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != `{"id":"u1","name":"Asha","email":"a@x.com"}` {
		t.Fatalf("unexpected body: %s", got)
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	tests := []struct {
		name   string
		cookie string
		wantID string
	}{
		{"with session", "signed:sid-1", "sid-1"},
		{"without cookie", "", ""},
		{"forged cookie", "garbage", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEcho()
			stub := &stubAuthService{
				logoutFn: func(ctx context.Context, sessionID string) error {
					if sessionID != tt.wantID {
						t.Fatalf("expected sid %q, got %q", tt.wantID, sessionID)
					}
					return nil
				},
			}
			h := NewAuthHandler(stub, stubCodec{}, testCookie, zerolog.Nop())

			req := httptest.NewRequest(http.MethodGet, "/api/auth/logout", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "agrinova.sid", Value: tt.cookie})
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			if err := h.Logout(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", rec.Code)
			}
			cleared := findCookie(rec, "agrinova.sid")
			if cleared == nil || cleared.MaxAge >= 0 || cleared.Value != "" {
				t.Fatalf("expected cleared cookie, got %+v", cleared)
			}
		})
	}
}

func TestAuthHandler_Logout_StoreFailure(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		logoutFn: func(ctx context.Context, sessionID string) error {
			return errors.New("mongo down")
		},
	}
	h := NewAuthHandler(stub, stubCodec{}, testCookie, zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/api/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: "agrinova.sid", Value: "signed:sid-1"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Logout(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusInternalServerError || he.Message != "Logout failed" {
		t.Fatalf("expected 500 Logout failed, got %v", err)
	}
	if findCookie(rec, "agrinova.sid") != nil {
		t.Fatalf("cookie must be kept when logout fails")
	}
}
