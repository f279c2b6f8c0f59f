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

	"github.com/connectcapital/investor-crm/internal/auth"
	"github.com/connectcapital/investor-crm/internal/core/domain"
	"github.com/connectcapital/investor-crm/internal/core/ports"
	"github.com/connectcapital/investor-crm/internal/session"
)

type stubSessionService struct {
	loginFn   func(ctx context.Context, email, password string) (*domain.User, error)
	signupFn  func(ctx context.Context, input ports.SignupInput, password string) (*domain.User, error)
	loggedOut bool
}

func (s *stubSessionService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubSessionService) Signup(ctx context.Context, input ports.SignupInput, password string) (*domain.User, error) {
	return s.signupFn(ctx, input, password)
}

func (s *stubSessionService) Logout(context.Context) { s.loggedOut = true }

func (s *stubSessionService) CheckAuth(context.Context) domain.Session { return domain.Session{} }

func (s *stubSessionService) Session() domain.Session { return domain.Session{} }

func newAuthHandler(svc ports.SessionService) (*AuthHandler, *session.Provider, *auth.TokenManager) {
	provider := session.NewProvider(svc, zerolog.Nop())
	provider.Start(context.Background())
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	return NewAuthHandler(provider, tokens), provider, tokens
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func postJSON(e *echo.Echo, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Login_Success(t *testing.T) {
	founder := domain.NewFounder("1", "John Doe", "john@startup.com", time.Now().UTC(), domain.FounderProfile{
		CompanyName: "TechNova",
	})
	svc := &stubSessionService{
		loginFn: func(ctx context.Context, email, password string) (*domain.User, error) {
			if email != "john@startup.com" {
				t.Fatalf("unexpected email: %s", email)
			}
			return founder, nil
		},
	}
	h, provider, tokens := newAuthHandler(svc)

	e := newEcho()
	c, rec := postJSON(e, "/auth/login", `{"email":"john@startup.com","password":"whatever"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}

	tokenStr, _ := resp["token"].(string)
	if tokenStr == "" {
		t.Fatal("expected a token in the response")
	}
	claims, err := tokens.Parse(tokenStr)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if claims.UserID != "1" || claims.Role != domain.RoleFounder {
		t.Errorf("unexpected claims: %+v", claims)
	}

	user, ok := resp["user"].(map[string]any)
	if !ok || user["email"] != "john@startup.com" {
		t.Fatalf("unexpected user payload: %+v", resp["user"])
	}
	// The password hash must never serialise.
	if _, leaked := user["password_hash"]; leaked {
		t.Error("password hash leaked into response")
	}

	if snap := provider.Snapshot(); !snap.IsAuthenticated || snap.User == nil {
		t.Error("provider snapshot not updated by login")
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	svc := &stubSessionService{
		loginFn: func(ctx context.Context, email, password string) (*domain.User, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	h, _, _ := newAuthHandler(svc)

	e := newEcho()
	c, _ := postJSON(e, "/auth/login", `{"email":"ghost@startup.com","password":"pw"}`)

	err := h.Login(c)
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials to propagate, got %v", err)
	}
}

func TestAuthHandler_Login_InvalidPayload(t *testing.T) {
	svc := &stubSessionService{
		loginFn: func(ctx context.Context, email, password string) (*domain.User, error) {
			t.Fatal("should not be called")
			return nil, nil
		},
	}
	h, _, _ := newAuthHandler(svc)

	e := newEcho()
	c, _ := postJSON(e, "/auth/login", "{")

	err := h.Login(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestAuthHandler_Login_MissingEmailFailsValidation(t *testing.T) {
	svc := &stubSessionService{
		loginFn: func(ctx context.Context, email, password string) (*domain.User, error) {
			t.Fatal("should not be called")
			return nil, nil
		},
	}
	h, _, _ := newAuthHandler(svc)

	e := newEcho()
	c, _ := postJSON(e, "/auth/login", `{"password":"pw"}`)

	err := h.Login(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 HTTPError, got %v", err)
	}
}

func TestAuthHandler_Signup_Success(t *testing.T) {
	svc := &stubSessionService{
		signupFn: func(ctx context.Context, input ports.SignupInput, password string) (*domain.User, error) {
			if input.Role != domain.RoleFundraisingPro {
				t.Fatalf("unexpected role: %s", input.Role)
			}
			return domain.NewFundraisingPro("9", input.Name, input.Email, time.Now().UTC(), domain.FundraisingProProfile{
				Specialties: input.Specialties,
			}), nil
		},
	}
	h, _, _ := newAuthHandler(svc)

	e := newEcho()
	c, rec := postJSON(e, "/auth/signup",
		`{"email":"new@pro.com","password":"secret1","name":"New Pro","role":"fundraisingPro","specialties":["SaaS"]}`)

	if err := h.Signup(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestAuthHandler_Signup_UnknownRoleFailsValidation(t *testing.T) {
	svc := &stubSessionService{
		signupFn: func(ctx context.Context, input ports.SignupInput, password string) (*domain.User, error) {
			t.Fatal("should not be called")
			return nil, nil
		},
	}
	h, _, _ := newAuthHandler(svc)

	e := newEcho()
	c, _ := postJSON(e, "/auth/signup",
		`{"email":"x@y.com","password":"secret1","name":"X","role":"wizard"}`)

	err := h.Signup(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 HTTPError, got %v", err)
	}
}

func TestAuthHandler_LogoutClearsSnapshot(t *testing.T) {
	founder := domain.NewFounder("1", "John", "john@startup.com", time.Now().UTC(), domain.FounderProfile{})
	svc := &stubSessionService{
		loginFn: func(ctx context.Context, email, password string) (*domain.User, error) {
			return founder, nil
		},
	}
	h, provider, _ := newAuthHandler(svc)

	e := newEcho()
	c, _ := postJSON(e, "/auth/login", `{"email":"john@startup.com","password":"pw"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("login: %v", err)
	}

	c, rec := postJSON(e, "/auth/logout", "")
	if err := h.Logout(c); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if !svc.loggedOut {
		t.Error("service logout not invoked")
	}
	if snap := provider.Snapshot(); snap.IsAuthenticated || snap.User != nil {
		t.Error("snapshot not cleared")
	}
}

func TestAuthHandler_SessionReflectsSnapshot(t *testing.T) {
	svc := &stubSessionService{}
	h, _, _ := newAuthHandler(svc)

	e := newEcho()
	req := httptest.NewRequest(http.MethodGet, "/auth/session", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Session(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["is_authenticated"] != false {
		t.Errorf("expected anonymous session, got %v", resp)
	}
	if resp["is_loading"] != false {
		t.Errorf("expected hydration settled, got %v", resp)
	}
}
