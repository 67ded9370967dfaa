package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sns-consultancy/Travel-Planner-Backend/internal/crypto"
	"github.com/sns-consultancy/Travel-Planner-Backend/internal/model"
	"github.com/sns-consultancy/Travel-Planner-Backend/internal/repository"
)

var (
	ErrFullNameRequired   = errors.New("fullName is required")
	ErrDOBRequired        = errors.New("dob is required")
	ErrCountryRequired    = errors.New("country is required")
	ErrPasswordRequired   = errors.New("password is required")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrInvalidIDToken     = errors.New("invalid id token")
)

// FederatedIdentity is the verified payload of an externally issued identity
// assertion.
type FederatedIdentity struct {
	Subject string
	Name    string
	Email   string
}

// IdentityVerifier verifies an externally issued ID token. Implementations
// must collapse every provider failure into a single error so internals do
// not leak to callers.
type IdentityVerifier interface {
	Verify(ctx context.Context, idToken string) (FederatedIdentity, error)
}

// AuthService handles registration, login and session-token issuance.
type AuthService struct {
	users    repository.UserRepository
	verifier IdentityVerifier
	secret   string
	ttl      time.Duration
}

// NewAuthService creates an AuthService. verifier may be nil when federated
// login is not configured.
func NewAuthService(users repository.UserRepository, verifier IdentityVerifier, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		users:    users,
		verifier: verifier,
		secret:   secret,
		ttl:      ttl,
	}
}

// Register creates a new local account. The password is hashed before the
// user record is stored; the plaintext never leaves this call.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (string, error) {
	switch {
	case req.FullName == "":
		return "", ErrFullNameRequired
	case req.DOB == "":
		return "", ErrDOBRequired
	case req.Country == "":
		return "", ErrCountryRequired
	case req.Password == "":
		return "", ErrPasswordRequired
	}
	if req.Password != req.ConfirmPassword {
		return "", ErrPasswordMismatch
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return "", err
	}

	user := &model.User{
		ID:            uuid.NewString(),
		FullName:      req.FullName,
		DOB:           req.DOB,
		Email:         req.Email,
		Mobile:        req.Mobile,
		Country:       req.Country,
		PhotoFilename: req.PhotoFilename,
		ConsentGmail:  req.ConsentGmail,
		ConsentPhone:  req.ConsentPhone,
		PasswordHash:  hash,
		Account:       model.AccountLocal,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUser) {
			return "", ErrUserExists
		}
		return "", err
	}

	return fmt.Sprintf("User %s registered successfully.", user.FullName), nil
}

// Login authenticates a local account and issues a session token. A missing
// user, a wrong password and a federated-only account all fail identically.
func (s *AuthService) Login(ctx context.Context, username, password string) (model.TokenResponse, error) {
	user, err := s.users.GetByName(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.TokenResponse{}, ErrInvalidCredentials
		}
		return model.TokenResponse{}, err
	}

	// Federated accounts hold an unusable hash, but refuse them outright
	// rather than relying on the hash never matching.
	if user.Account != model.AccountLocal {
		return model.TokenResponse{}, ErrInvalidCredentials
	}

	if !crypto.VerifyPassword(password, user.PasswordHash) {
		return model.TokenResponse{}, ErrInvalidCredentials
	}

	return s.issueToken(user.FullName)
}

// FederatedLogin exchanges an externally issued ID token for a session token,
// auto-provisioning a federated account on first sight of a subject.
func (s *AuthService) FederatedLogin(ctx context.Context, idToken string) (model.TokenResponse, error) {
	if s.verifier == nil || idToken == "" {
		return model.TokenResponse{}, ErrInvalidIDToken
	}

	identity, err := s.verifier.Verify(ctx, idToken)
	if err != nil {
		return model.TokenResponse{}, ErrInvalidIDToken
	}

	name := identity.Name
	if name == "" {
		name = identity.Subject
	}

	if _, err := s.users.GetByName(ctx, name); errors.Is(err, repository.ErrUserNotFound) {
		if err := s.provisionFederated(ctx, name, identity.Email); err != nil {
			return model.TokenResponse{}, err
		}
	} else if err != nil {
		return model.TokenResponse{}, err
	}

	return s.issueToken(name)
}

func (s *AuthService) provisionFederated(ctx context.Context, name, email string) error {
	unusable, err := crypto.UnusablePassword()
	if err != nil {
		return err
	}
	hash, err := crypto.HashPassword(unusable)
	if err != nil {
		return err
	}

	user := &model.User{
		ID:           uuid.NewString(),
		FullName:     name,
		Email:        email,
		PasswordHash: hash,
		Account:      model.AccountFederated,
		CreatedAt:    time.Now().UTC(),
	}

	err = s.users.Create(ctx, user)
	if errors.Is(err, repository.ErrDuplicateUser) {
		// Lost a provisioning race; the account exists now, which is all
		// this call needs.
		return nil
	}
	return err
}

func (s *AuthService) issueToken(subject string) (model.TokenResponse, error) {
	token, err := crypto.GenerateToken(subject, s.secret, s.ttl)
	if err != nil {
		return model.TokenResponse{}, err
	}
	return model.TokenResponse{AccessToken: token, TokenType: "bearer"}, nil
}
