package jwt

const (
	// MinSecretKeyLen is the minimum length for the HS256 shared secret.
	MinSecretKeyLen = 32
)
