package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/connectcapital/investor-crm/internal/core/domain"
	"github.com/connectcapital/investor-crm/internal/core/ports"
)

// stubSessionService lets each test script the underlying service.
type stubSessionService struct {
	loginFn     func(ctx context.Context, email, password string) (*domain.User, error)
	signupFn    func(ctx context.Context, input ports.SignupInput, password string) (*domain.User, error)
	checkResult domain.Session
	checkCalls  int
	logoutCalls int
}

func (s *stubSessionService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubSessionService) Signup(ctx context.Context, input ports.SignupInput, password string) (*domain.User, error) {
	return s.signupFn(ctx, input, password)
}

func (s *stubSessionService) Logout(context.Context) { s.logoutCalls++ }

func (s *stubSessionService) CheckAuth(context.Context) domain.Session {
	s.checkCalls++
	return s.checkResult
}

func (s *stubSessionService) Session() domain.Session { return s.checkResult }

func demoUser() *domain.User {
	return domain.NewFounder("u1", "John Doe", "john@startup.com",
		time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC),
		domain.FounderProfile{CompanyName: "TechNova"})
}

func TestProvider_StartsLoading(t *testing.T) {
	p := NewProvider(&stubSessionService{}, zerolog.Nop())

	snap := p.Snapshot()
	if !snap.IsLoading {
		t.Error("provider must start in the loading state")
	}
	if snap.IsAuthenticated || snap.User != nil {
		t.Errorf("provider must start anonymous, got %+v", snap)
	}
}

func TestProvider_StartReflectsPersistedSession(t *testing.T) {
	stub := &stubSessionService{
		checkResult: domain.Session{CurrentUser: demoUser(), IsAuthenticated: true},
	}
	p := NewProvider(stub, zerolog.Nop())

	p.Start(context.Background())

	snap := p.Snapshot()
	if snap.IsLoading {
		t.Error("loading must settle after Start")
	}
	if !snap.IsAuthenticated || snap.User == nil || snap.User.ID != "u1" {
		t.Errorf("persisted session not reflected: %+v", snap)
	}
}

func TestProvider_StartRunsOnce(t *testing.T) {
	stub := &stubSessionService{}
	p := NewProvider(stub, zerolog.Nop())

	p.Start(context.Background())
	p.Start(context.Background())
	p.Start(context.Background())

	if stub.checkCalls != 1 {
		t.Errorf("CheckAuth must run exactly once, ran %d times", stub.checkCalls)
	}
}

func TestProvider_LoginTogglesLoading(t *testing.T) {
	var loadingDuringCall bool
	p := NewProvider(nil, zerolog.Nop())
	stub := &stubSessionService{
		loginFn: func(context.Context, string, string) (*domain.User, error) {
			loadingDuringCall = p.Snapshot().IsLoading
			return demoUser(), nil
		},
	}
	p.svc = stub
	p.Start(context.Background())

	user, err := p.Login(context.Background(), "john@startup.com", "pw")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if user.ID != "u1" {
		t.Errorf("unexpected user: %+v", user)
	}
	if !loadingDuringCall {
		t.Error("loading must be true while the service call is in flight")
	}

	snap := p.Snapshot()
	if snap.IsLoading {
		t.Error("loading must reset after success")
	}
	if !snap.IsAuthenticated || snap.User == nil {
		t.Errorf("successful login not reflected: %+v", snap)
	}
}

func TestProvider_LoginFailureResetsLoadingAndRethrows(t *testing.T) {
	stub := &stubSessionService{
		loginFn: func(context.Context, string, string) (*domain.User, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	p := NewProvider(stub, zerolog.Nop())
	p.Start(context.Background())

	_, err := p.Login(context.Background(), "unknown@nowhere.com", "x")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("error must propagate unswallowed, got %v", err)
	}

	snap := p.Snapshot()
	if snap.IsLoading {
		t.Error("loading must reset on the failure path")
	}
	if snap.IsAuthenticated || snap.User != nil {
		t.Errorf("failed login must leave state anonymous: %+v", snap)
	}
}

func TestProvider_SignupFailureResetsLoading(t *testing.T) {
	stub := &stubSessionService{
		signupFn: func(context.Context, ports.SignupInput, string) (*domain.User, error) {
			return nil, domain.ErrMissingFields
		},
	}
	p := NewProvider(stub, zerolog.Nop())
	p.Start(context.Background())

	_, err := p.Signup(context.Background(), ports.SignupInput{}, "")
	if !errors.Is(err, domain.ErrMissingFields) {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
	if p.Snapshot().IsLoading {
		t.Error("loading must reset on the failure path")
	}
}

func TestProvider_LogoutClearsStateWithoutLoading(t *testing.T) {
	stub := &stubSessionService{
		checkResult: domain.Session{CurrentUser: demoUser(), IsAuthenticated: true},
	}
	p := NewProvider(stub, zerolog.Nop())
	p.Start(context.Background())

	p.Logout(context.Background())

	snap := p.Snapshot()
	if snap.IsAuthenticated || snap.User != nil {
		t.Errorf("logout must clear state immediately: %+v", snap)
	}
	if snap.IsLoading {
		t.Error("logout must not touch the loading flag")
	}
	if stub.logoutCalls != 1 {
		t.Errorf("expected one service logout, got %d", stub.logoutCalls)
	}
}

func TestProvider_SubscribersSeeChanges(t *testing.T) {
	stub := &stubSessionService{
		loginFn: func(context.Context, string, string) (*domain.User, error) {
			return demoUser(), nil
		},
	}
	p := NewProvider(stub, zerolog.Nop())
	sub := p.Subscribe()

	p.Start(context.Background())
	if _, err := p.Login(context.Background(), "john@startup.com", "pw"); err != nil {
		t.Fatal(err)
	}

	var last Snapshot
	var got int
	for {
		select {
		case snap := <-sub:
			last = snap
			got++
			continue
		default:
		}
		break
	}

	if got == 0 {
		t.Fatal("subscriber received no updates")
	}
	if !last.IsAuthenticated || last.User == nil {
		t.Errorf("final notification must show the logged-in state: %+v", last)
	}
}
