package login

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/wandertours/travel-admin/pkg/twofa"
)

// LoginService orchestrates the two authentication flows. Each flow ends
// with an outstanding two-factor challenge; CompleteTwoFa finishes it.
type LoginService struct {
	repo           AdminRepository
	twoFaService   *twofa.TwoFaService
	passwordHasher PasswordHasher
}

// NewLoginService creates a new login service
func NewLoginService(repo AdminRepository, twoFaService *twofa.TwoFaService, passwordHasher PasswordHasher) *LoginService {
	return &LoginService{
		repo:           repo,
		twoFaService:   twoFaService,
		passwordHasher: passwordHasher,
	}
}

// LoginResult describes a flow that passed the credential check and is now
// waiting for passcode verification.
type LoginResult struct {
	Username      string `json:"username"`
	TwofaRequired bool   `json:"twofa_required"`
	TwofaMethod   string `json:"twofa_method"`
}

// RegisterParams represents parameters for admin self-registration
type RegisterParams struct {
	Username string
	Password string
	Email    string
}

// Login validates the submitted credentials and, on success, issues a
// two-factor challenge for the username. The caller is not granted access
// until CompleteTwoFa succeeds; a pending flow simply expires with its
// challenge if abandoned.
func (s *LoginService) Login(ctx context.Context, username, password string) (LoginResult, error) {
	admin, err := s.repo.GetAdminByUsername(ctx, username)
	if err != nil {
		// Uniform failure for unknown user and bad password
		slog.Warn("Login failed: admin not found", "username", username)
		return LoginResult{}, ErrInvalidCredentials
	}

	valid, err := s.passwordHasher.Verify(password, admin.PasswordHash)
	if err != nil {
		return LoginResult{}, fmt.Errorf("error checking password: %w", err)
	}
	if !valid {
		slog.Warn("Login failed: password mismatch", "username", username)
		return LoginResult{}, ErrInvalidCredentials
	}

	err = s.twoFaService.InitiateChallenge(ctx, username)
	if err != nil {
		return LoginResult{}, err
	}

	return LoginResult{
		Username:      admin.Username,
		TwofaRequired: true,
		TwofaMethod:   admin.TwofaMethod,
	}, nil
}

// Register creates a new admin record and issues a two-factor challenge
// for it. The record exists before the challenge is verified; it carries
// TwofaConfirmed=false until the first successful verification.
func (s *LoginService) Register(ctx context.Context, params RegisterParams) (Admin, error) {
	if params.Username == "" || params.Password == "" || params.Email == "" {
		return Admin{}, fmt.Errorf("username, password and email are required")
	}

	passwordHash, err := s.passwordHasher.Hash(params.Password)
	if err != nil {
		return Admin{}, fmt.Errorf("failed to hash password: %w", err)
	}

	admin, err := s.repo.CreateAdmin(ctx, CreateAdminParams{
		Username:     params.Username,
		Email:        params.Email,
		PasswordHash: passwordHash,
		TwofaMethod:  "email",
	})
	if err != nil {
		return Admin{}, err
	}

	slog.Info("Admin registered", "username", admin.Username)

	err = s.twoFaService.InitiateChallenge(ctx, admin.Username)
	if err != nil {
		// The record is already live; surface the delivery problem so the
		// caller can request a fresh code.
		return admin, err
	}

	return admin, nil
}

// ResendCode issues a fresh challenge for the username, overwriting any
// outstanding one.
func (s *LoginService) ResendCode(ctx context.Context, username string) error {
	return s.twoFaService.InitiateChallenge(ctx, username)
}

// CompleteTwoFa verifies the submitted passcode and, on success, records
// the principal as 2FA-confirmed. A nil return means the caller is granted
// access.
func (s *LoginService) CompleteTwoFa(ctx context.Context, username, passcode string) error {
	err := s.twoFaService.VerifyPasscode(ctx, username, passcode)
	if err != nil {
		return err
	}

	if err := s.repo.MarkTwofaConfirmed(ctx, username); err != nil {
		slog.Warn("Failed to mark 2FA confirmed", "username", username, "error", err)
	}

	return nil
}
