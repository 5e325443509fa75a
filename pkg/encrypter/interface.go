package encrypter

// Encrypter provides password hashing and verification.
// Implementations are safe for concurrent use.
type Encrypter interface {
	HashPassword(password string) (string, error)
	CheckPasswordHash(password, hash string) bool
}

// New creates a new Encrypter.
func New() Encrypter {
	return &implEncrypter{}
}
