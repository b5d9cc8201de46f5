package login

// PasswordHasher abstracts the password hashing scheme
type PasswordHasher interface {
	// Hash returns an encoded hash of the password, including salt and parameters
	Hash(password string) (string, error)
	// Verify reports whether the password matches the encoded hash
	Verify(password, encodedHash string) (bool, error)
}
