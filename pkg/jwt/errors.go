package jwt

import "errors"

var (
	// ErrTokenMalformed - token text cannot be parsed into three well-formed parts.
	ErrTokenMalformed = errors.New("jwt: token malformed")

	// ErrSignatureInvalid - signature does not match the shared key.
	ErrSignatureInvalid = errors.New("jwt: signature invalid")

	// ErrUnexpectedSigningMethod - header declares an algorithm other than HS256.
	ErrUnexpectedSigningMethod = errors.New("jwt: unexpected signing method")

	// ErrTokenExpired - signature valid but the token is past its expiry.
	ErrTokenExpired = errors.New("jwt: token expired")

	// ErrTokenInvalid - any other validation failure (issuer/audience mismatch, bad claims).
	ErrTokenInvalid = errors.New("jwt: token invalid")
)
