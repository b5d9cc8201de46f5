package twofa

import "errors"

var (
	// ErrPrincipalNotFound is returned when no admin record matches the username
	ErrPrincipalNotFound = errors.New("principal not found")

	// ErrNoActiveChallenge is returned when verification is attempted without an outstanding challenge
	ErrNoActiveChallenge = errors.New("no active two-factor challenge")

	// ErrChallengeExpired is returned when the challenge's expiry has passed
	ErrChallengeExpired = errors.New("two-factor challenge has expired")

	// ErrInvalidPasscode is returned when the attempted passcode does not match the stored digest
	ErrInvalidPasscode = errors.New("invalid two-factor passcode")

	// ErrNotificationFailed is returned when the passcode was persisted but could not be delivered.
	// The challenge remains valid; the caller may re-issue or retry delivery.
	ErrNotificationFailed = errors.New("failed to deliver two-factor passcode")

	// ErrMissingHMACKey is returned when the passcode hashing secret is not configured
	ErrMissingHMACKey = errors.New("two-factor HMAC secret is not configured")
)
