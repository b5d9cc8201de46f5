package twofa

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math/big"
)

// PasscodeLength is the number of decimal digits in a generated passcode.
const PasscodeLength = 6

var passcodeSpace = big.NewInt(1_000_000)

// GeneratePasscode returns a fresh passcode of exactly PasscodeLength ASCII
// digits, drawn uniformly from 000000-999999 using crypto/rand.
func GeneratePasscode() (string, error) {
	n, err := rand.Int(rand.Reader, passcodeSpace)
	if err != nil {
		return "", fmt.Errorf("failed to generate passcode: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// CodeHasher maps a passcode to its stored digest using HMAC-SHA256 with a
// process-wide secret key. The digest is one-way; the key never appears in
// the output.
type CodeHasher struct {
	key []byte
}

// NewCodeHasher creates a CodeHasher. It refuses an empty secret so a
// misconfigured deployment fails at startup instead of hashing with a
// predictable key.
func NewCodeHasher(secret string) (*CodeHasher, error) {
	if secret == "" {
		return nil, ErrMissingHMACKey
	}
	return &CodeHasher{key: []byte(secret)}, nil
}

// Hash returns the hex-encoded HMAC-SHA256 digest of the passcode.
func (h *CodeHasher) Hash(passcode string) string {
	mac := hmac.New(sha256.New, h.key)
	mac.Write([]byte(passcode))
	return hex.EncodeToString(mac.Sum(nil))
}
