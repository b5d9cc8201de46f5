// Package login is the authentication gate for the travel admin console.
//
// Two flows are supported: interactive login and admin self-registration.
// Both end by issuing a two-factor challenge through pkg/twofa; access is
// granted only after the passcode is verified. Passwords are stored as
// argon2id hashes and verified in constant time.
package login
