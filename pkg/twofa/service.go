package twofa

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/wandertours/travel-admin/pkg/notification"
)

// DefaultChallengeExpiry is how long an issued passcode stays valid.
const DefaultChallengeExpiry = 10 * time.Minute

// TwoFaService orchestrates the challenge lifecycle: issue (generate, hash,
// persist, notify) and verify (fetch, expiry check, constant-time compare,
// consume on success).
type TwoFaService struct {
	repo                ChallengeRepository
	notificationManager *notification.NotificationManager
	hasher              *CodeHasher
	challengeExpiry     time.Duration
	now                 func() time.Time
}

// TwoFaServiceOption defines configuration options
type TwoFaServiceOption func(*TwoFaService)

// WithChallengeExpiry sets the challenge expiration duration
func WithChallengeExpiry(expiry time.Duration) TwoFaServiceOption {
	return func(s *TwoFaService) {
		s.challengeExpiry = expiry
	}
}

// WithClock overrides the time source. Test seam.
func WithClock(now func() time.Time) TwoFaServiceOption {
	return func(s *TwoFaService) {
		s.now = now
	}
}

// NewTwoFaService creates a new two-factor service
func NewTwoFaService(repo ChallengeRepository, notificationManager *notification.NotificationManager, hasher *CodeHasher, opts ...TwoFaServiceOption) *TwoFaService {
	service := &TwoFaService{
		repo:                repo,
		notificationManager: notificationManager,
		hasher:              hasher,
		challengeExpiry:     DefaultChallengeExpiry,
		now:                 time.Now,
	}

	for _, opt := range opts {
		opt(service)
	}

	return service
}

// InitiateChallenge generates a fresh passcode, persists its digest with an
// expiry against the principal (overwriting any prior challenge), and then
// emails the plaintext passcode to the principal's contact address.
//
// Persist-then-notify is not transactional: if delivery fails after the
// digest was stored, ErrNotificationFailed is returned and the challenge
// stays valid, so the caller can re-issue or retry delivery.
func (s *TwoFaService) InitiateChallenge(ctx context.Context, username string) error {
	principal, err := s.repo.GetPrincipal(ctx, username)
	if err != nil {
		return err
	}

	passcode, err := GeneratePasscode()
	if err != nil {
		return err
	}

	challenge := Challenge{
		CodeHash:  s.hasher.Hash(passcode),
		ExpiresAt: s.now().UTC().Add(s.challengeExpiry),
	}

	err = s.repo.SetChallenge(ctx, username, challenge)
	if err != nil {
		slog.Error("Failed to persist two-factor challenge", "username", username, "error", err)
		return fmt.Errorf("failed to persist two-factor challenge: %w", err)
	}

	err = s.sendPasscodeEmail(ctx, principal.Email, passcode)
	if err != nil {
		slog.Error("Failed to send two-factor passcode", "username", username, "error", err)
		return fmt.Errorf("%w: %v", ErrNotificationFailed, err)
	}

	slog.Info("Two-factor challenge issued", "username", username, "expires_at", challenge.ExpiresAt)
	return nil
}

// VerifyPasscode checks an attempted passcode against the principal's
// current challenge. On success the challenge is cleared, enforcing
// single use. On mismatch the challenge is left in place so the caller may
// retry until it expires. An expired challenge is cleared and reported as
// ErrChallengeExpired regardless of passcode correctness.
func (s *TwoFaService) VerifyPasscode(ctx context.Context, username, passcode string) error {
	challenge, err := s.repo.GetChallenge(ctx, username)
	if err != nil {
		return err
	}

	if s.now().UTC().After(challenge.ExpiresAt) {
		if clearErr := s.repo.ClearChallenge(ctx, username); clearErr != nil {
			slog.Warn("Failed to clear expired challenge", "username", username, "error", clearErr)
		}
		return ErrChallengeExpired
	}

	attemptDigest := s.hasher.Hash(passcode)

	// Digests are fixed-size hex strings; ConstantTimeCompare handles the
	// length check without an early return on the first differing byte.
	if subtle.ConstantTimeCompare([]byte(attemptDigest), []byte(challenge.CodeHash)) != 1 {
		slog.Warn("Two-factor passcode mismatch", "username", username)
		return ErrInvalidPasscode
	}

	err = s.repo.ClearChallenge(ctx, username)
	if err != nil {
		return fmt.Errorf("failed to consume two-factor challenge: %w", err)
	}

	slog.Info("Two-factor passcode verified", "username", username)
	return nil
}

// HasActiveChallenge reports whether the principal currently has an
// unexpired challenge. UI layers poll this to drive the countdown; the
// expiry check in VerifyPasscode remains authoritative.
func (s *TwoFaService) HasActiveChallenge(ctx context.Context, username string) (bool, time.Time, error) {
	challenge, err := s.repo.GetChallenge(ctx, username)
	if err != nil {
		if errors.Is(err, ErrNoActiveChallenge) {
			return false, time.Time{}, nil
		}
		return false, time.Time{}, err
	}

	if s.now().UTC().After(challenge.ExpiresAt) {
		return false, time.Time{}, nil
	}
	return true, challenge.ExpiresAt, nil
}

func (s *TwoFaService) sendPasscodeEmail(ctx context.Context, email, passcode string) error {
	data := map[string]string{
		"TwofaPasscode": passcode,
		"ExpiryMinutes": fmt.Sprintf("%.0f", s.challengeExpiry.Minutes()),
	}
	return s.notificationManager.Send(notification.TwofaCodeNoticeEmail, notification.NotificationData{
		To:   email,
		Data: data,
	})
}
