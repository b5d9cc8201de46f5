// Package twofa implements the two-factor authentication core for the
// travel admin backend.
//
// A login or registration issues a challenge: a fresh 6-digit passcode is
// generated, its keyed HMAC-SHA256 digest is stored against the admin
// record together with an expiry timestamp, and the plaintext passcode is
// delivered out of band (email by default). Verification recomputes the
// digest of the attempted passcode and compares it in constant time; a
// successful verification consumes the challenge, so each passcode is
// usable at most once. A new challenge always overwrites any prior one for
// the same username.
//
// The package owns the challenge lifecycle end to end. Persistence is
// abstracted behind ChallengeRepository (PostgreSQL and in-memory
// implementations are provided) and delivery behind the notification
// manager.
package twofa
