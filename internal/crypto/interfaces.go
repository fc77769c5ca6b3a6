package crypto

// PasswordHasher abstracts one-way password hashing so that the service
// layer never touches the concrete algorithm and tests can substitute a
// cheap implementation.
type PasswordHasher interface {
	// Hash derives a salted one-way hash from the plaintext password.
	// The result embeds its own salt and work factor.
	Hash(password string) (string, error)

	// Compare recomputes the hash of password and checks it against hash.
	// A mismatch is reported as an error; Compare never panics on bad input.
	Compare(hash string, password string) error
}
