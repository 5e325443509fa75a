package jwt

import (
	"errors"
	"strings"
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newTestManager(t *testing.T, at time.Time) IManager {
	t.Helper()
	m, err := New(Config{
		SecretKey: testSecret,
		Issuer:    "coffeenote-auth",
		Audience:  "coffeenote-api",
		TTL:       24 * time.Hour,
		TimeFunc:  func() time.Time { return at },
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return m
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "valid config",
			cfg:  Config{SecretKey: testSecret, Issuer: "iss", Audience: "aud", TTL: time.Hour},
		},
		{
			name:    "secret too short",
			cfg:     Config{SecretKey: "short", Issuer: "iss", Audience: "aud", TTL: time.Hour},
			wantErr: true,
		},
		{
			name:    "missing issuer",
			cfg:     Config{SecretKey: testSecret, Audience: "aud", TTL: time.Hour},
			wantErr: true,
		},
		{
			name:    "missing audience",
			cfg:     Config{SecretKey: testSecret, Issuer: "iss", TTL: time.Hour},
			wantErr: true,
		},
		{
			name:    "zero ttl",
			cfg:     Config{SecretKey: testSecret, Issuer: "iss", Audience: "aud"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestManager_RoundTrip(t *testing.T) {
	issuedAt := time.Unix(1000, 0)
	m := newTestManager(t, issuedAt)

	tokenString, err := m.GenerateToken(7, "a@b.com", "Alice")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	verifier := newTestManager(t, time.Unix(2000, 0))
	claims, err := verifier.Verify(tokenString)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}

	if claims.Issuer != "coffeenote-auth" {
		t.Errorf("Issuer = %q, want %q", claims.Issuer, "coffeenote-auth")
	}
	if claims.Audience != "coffeenote-api" {
		t.Errorf("Audience = %q, want %q", claims.Audience, "coffeenote-api")
	}
	if claims.IssuedAt != 1000 {
		t.Errorf("IssuedAt = %d, want 1000", claims.IssuedAt)
	}
	if claims.ExpiresAt != 1000+86400 {
		t.Errorf("ExpiresAt = %d, want %d", claims.ExpiresAt, 1000+86400)
	}
	if claims.Subject != "a@b.com" {
		t.Errorf("Subject = %q, want %q", claims.Subject, "a@b.com")
	}
	if claims.UserID != 7 {
		t.Errorf("UserID = %d, want 7", claims.UserID)
	}
	if claims.Email != "a@b.com" {
		t.Errorf("Email = %q, want %q", claims.Email, "a@b.com")
	}
	if claims.Name != "Alice" {
		t.Errorf("Name = %q, want %q", claims.Name, "Alice")
	}
}

func TestManager_Verify_WrongKey(t *testing.T) {
	m := newTestManager(t, time.Unix(1000, 0))
	tokenString, err := m.GenerateToken(7, "a@b.com", "Alice")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	other, err := New(Config{
		SecretKey: "fedcba9876543210fedcba9876543210",
		Issuer:    "coffeenote-auth",
		Audience:  "coffeenote-api",
		TTL:       24 * time.Hour,
		TimeFunc:  func() time.Time { return time.Unix(2000, 0) },
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if _, err := other.Verify(tokenString); !errors.Is(err, ErrSignatureInvalid) {
		t.Errorf("Verify() error = %v, want ErrSignatureInvalid", err)
	}
}

func TestManager_Verify_TamperedSignature(t *testing.T) {
	m := newTestManager(t, time.Unix(1000, 0))
	tokenString, err := m.GenerateToken(7, "a@b.com", "Alice")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	// Flip the last character of the signature segment.
	tampered := tokenString[:len(tokenString)-1]
	if strings.HasSuffix(tokenString, "A") {
		tampered += "B"
	} else {
		tampered += "A"
	}

	verifier := newTestManager(t, time.Unix(2000, 0))
	if _, err := verifier.Verify(tampered); !errors.Is(err, ErrSignatureInvalid) {
		t.Errorf("Verify() error = %v, want ErrSignatureInvalid", err)
	}
}

func TestManager_Verify_ExpiryBoundary(t *testing.T) {
	issuedAt := time.Unix(1000, 0)
	m := newTestManager(t, issuedAt)
	tokenString, err := m.GenerateToken(7, "a@b.com", "Alice")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	expiresAt := issuedAt.Add(24 * time.Hour)

	tests := []struct {
		name    string
		at      time.Time
		wantErr error
	}{
		{name: "one second before expiry", at: expiresAt.Add(-time.Second)},
		{name: "at expiry", at: expiresAt, wantErr: ErrTokenExpired},
		{name: "one second after expiry", at: expiresAt.Add(time.Second), wantErr: ErrTokenExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verifier := newTestManager(t, tt.at)
			_, err := verifier.Verify(tokenString)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Verify() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestManager_Verify_AlgorithmPinned(t *testing.T) {
	now := time.Unix(1000, 0)
	claims := Claims{
		Issuer:    "coffeenote-auth",
		Audience:  "coffeenote-api",
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(24 * time.Hour).Unix(),
		Subject:   "a@b.com",
		UserID:    7,
		Email:     "a@b.com",
		Name:      "Alice",
	}

	hs384, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS384, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign HS384: %v", err)
	}
	none, err := jwtlib.NewWithClaims(jwtlib.SigningMethodNone, claims).SignedString(jwtlib.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none: %v", err)
	}

	verifier := newTestManager(t, time.Unix(2000, 0))

	tests := []struct {
		name        string
		tokenString string
	}{
		{name: "HS384 rejected", tokenString: hs384},
		{name: "none rejected", tokenString: none},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := verifier.Verify(tt.tokenString); !errors.Is(err, ErrUnexpectedSigningMethod) {
				t.Errorf("Verify() error = %v, want ErrUnexpectedSigningMethod", err)
			}
		})
	}
}

func TestManager_Verify_Malformed(t *testing.T) {
	verifier := newTestManager(t, time.Unix(2000, 0))

	tests := []struct {
		name        string
		tokenString string
	}{
		{name: "not a token", tokenString: "not-a-token"},
		{name: "two parts", tokenString: "aaaa.bbbb"},
		{name: "garbage segments", tokenString: "aa!.bb!.cc!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := verifier.Verify(tt.tokenString); !errors.Is(err, ErrTokenMalformed) {
				t.Errorf("Verify() error = %v, want ErrTokenMalformed", err)
			}
		})
	}
}

func TestManager_Verify_WrongIssuerOrAudience(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		audience string
	}{
		{name: "wrong issuer", issuer: "someone-else", audience: "coffeenote-api"},
		{name: "wrong audience", issuer: "coffeenote-auth", audience: "other-api"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, err := New(Config{
				SecretKey: testSecret,
				Issuer:    tt.issuer,
				Audience:  tt.audience,
				TTL:       24 * time.Hour,
				TimeFunc:  func() time.Time { return time.Unix(1000, 0) },
			})
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			tokenString, err := src.GenerateToken(7, "a@b.com", "Alice")
			if err != nil {
				t.Fatalf("GenerateToken() error = %v", err)
			}

			verifier := newTestManager(t, time.Unix(2000, 0))
			if _, err := verifier.Verify(tokenString); !errors.Is(err, ErrTokenInvalid) {
				t.Errorf("Verify() error = %v, want ErrTokenInvalid", err)
			}
		})
	}
}
