package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sns-consultancy/Travel-Planner-Backend/internal/crypto"
	"github.com/sns-consultancy/Travel-Planner-Backend/internal/model"
	"github.com/sns-consultancy/Travel-Planner-Backend/internal/repository/memory"
)

const testSecret = "test-secret"

type stubVerifier struct {
	identity FederatedIdentity
	err      error
}

func (v *stubVerifier) Verify(ctx context.Context, idToken string) (FederatedIdentity, error) {
	return v.identity, v.err
}

func newTestAuthService(verifier IdentityVerifier) *AuthService {
	return NewAuthService(memory.NewUserStore(), verifier, testSecret, time.Hour)
}

func registerRequest(name, password string) model.RegisterRequest {
	return model.RegisterRequest{
		FullName:        name,
		DOB:             "1990-01-01",
		Country:         "USA",
		Password:        password,
		ConfirmPassword: password,
	}
}

func TestRegisterSuccess(t *testing.T) {
	svc := newTestAuthService(nil)

	msg, err := svc.Register(context.Background(), registerRequest("alice", "pw1234"))
	if err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}
	if msg != "User alice registered successfully." {
		t.Errorf("Register() message = %q", msg)
	}
}

func TestRegisterPasswordMismatch(t *testing.T) {
	svc := newTestAuthService(nil)

	req := registerRequest("alice", "pw1234")
	req.ConfirmPassword = "different"

	_, err := svc.Register(context.Background(), req)
	if !errors.Is(err, ErrPasswordMismatch) {
		t.Errorf("Register() error = %v, want ErrPasswordMismatch", err)
	}
}

func TestRegisterDuplicate(t *testing.T) {
	svc := newTestAuthService(nil)
	ctx := context.Background()

	if _, err := svc.Register(ctx, registerRequest("alice", "pw1234")); err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}

	_, err := svc.Register(ctx, registerRequest("alice", "other-pw"))
	if !errors.Is(err, ErrUserExists) {
		t.Errorf("Register() error = %v, want ErrUserExists", err)
	}
}

func TestRegisterMissingFields(t *testing.T) {
	svc := newTestAuthService(nil)
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*model.RegisterRequest)
		wantErr error
	}{
		{"missing fullName", func(r *model.RegisterRequest) { r.FullName = "" }, ErrFullNameRequired},
		{"missing dob", func(r *model.RegisterRequest) { r.DOB = "" }, ErrDOBRequired},
		{"missing country", func(r *model.RegisterRequest) { r.Country = "" }, ErrCountryRequired},
		{"missing password", func(r *model.RegisterRequest) { r.Password = "" }, ErrPasswordRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := registerRequest("alice", "pw1234")
			tt.mutate(&req)
			_, err := svc.Register(ctx, req)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Register() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoginSuccess(t *testing.T) {
	svc := newTestAuthService(nil)
	ctx := context.Background()

	if _, err := svc.Register(ctx, registerRequest("alice", "pw1234")); err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}

	resp, err := svc.Login(ctx, "alice", "pw1234")
	if err != nil {
		t.Fatalf("Login() unexpected error: %v", err)
	}
	if resp.TokenType != "bearer" {
		t.Errorf("Login() token_type = %q, want %q", resp.TokenType, "bearer")
	}

	subject, err := crypto.ValidateToken(resp.AccessToken, testSecret)
	if err != nil {
		t.Fatalf("ValidateToken() unexpected error: %v", err)
	}
	if subject != "alice" {
		t.Errorf("token subject = %q, want %q", subject, "alice")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newTestAuthService(nil)
	ctx := context.Background()

	if _, err := svc.Register(ctx, registerRequest("alice", "pw1234")); err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}

	_, err := svc.Login(ctx, "alice", "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login() error = %v, want ErrInvalidCredentials", err)
	}

	// The failed attempt must not disturb the stored account.
	if _, err := svc.Login(ctx, "alice", "pw1234"); err != nil {
		t.Errorf("Login() after failed attempt: unexpected error %v", err)
	}
}

func TestLoginUnknownUser(t *testing.T) {
	svc := newTestAuthService(nil)

	_, err := svc.Login(context.Background(), "nobody", "pw1234")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login() error = %v, want ErrInvalidCredentials", err)
	}
}

func TestFederatedLoginProvisionsAccount(t *testing.T) {
	verifier := &stubVerifier{identity: FederatedIdentity{Subject: "fb|123", Name: "carol", Email: "carol@example.com"}}
	store := memory.NewUserStore()
	svc := NewAuthService(store, verifier, testSecret, time.Hour)
	ctx := context.Background()

	resp, err := svc.FederatedLogin(ctx, "some-id-token")
	if err != nil {
		t.Fatalf("FederatedLogin() unexpected error: %v", err)
	}

	subject, err := crypto.ValidateToken(resp.AccessToken, testSecret)
	if err != nil {
		t.Fatalf("ValidateToken() unexpected error: %v", err)
	}
	if subject != "carol" {
		t.Errorf("token subject = %q, want %q", subject, "carol")
	}

	user, err := store.GetByName(ctx, "carol")
	if err != nil {
		t.Fatalf("GetByName() unexpected error: %v", err)
	}
	if user.Account != model.AccountFederated {
		t.Errorf("provisioned account type = %q, want federated", user.Account)
	}

	// A second federated login reuses the account.
	if _, err := svc.FederatedLogin(ctx, "some-id-token"); err != nil {
		t.Errorf("FederatedLogin() second call: unexpected error %v", err)
	}
}

func TestFederatedAccountRefusesPasswordLogin(t *testing.T) {
	verifier := &stubVerifier{identity: FederatedIdentity{Subject: "fb|123", Name: "carol"}}
	svc := newTestAuthService(verifier)
	ctx := context.Background()

	if _, err := svc.FederatedLogin(ctx, "some-id-token"); err != nil {
		t.Fatalf("FederatedLogin() unexpected error: %v", err)
	}

	_, err := svc.Login(ctx, "carol", "any-password")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login() error = %v, want ErrInvalidCredentials", err)
	}
}

func TestFederatedLoginInvalidToken(t *testing.T) {
	verifier := &stubVerifier{err: errors.New("provider exploded: internal detail")}
	svc := newTestAuthService(verifier)

	_, err := svc.FederatedLogin(context.Background(), "bad-token")
	if !errors.Is(err, ErrInvalidIDToken) {
		t.Errorf("FederatedLogin() error = %v, want ErrInvalidIDToken", err)
	}
}

func TestFederatedLoginNoVerifier(t *testing.T) {
	svc := newTestAuthService(nil)

	_, err := svc.FederatedLogin(context.Background(), "some-token")
	if !errors.Is(err, ErrInvalidIDToken) {
		t.Errorf("FederatedLogin() error = %v, want ErrInvalidIDToken", err)
	}
}
