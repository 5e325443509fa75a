package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"auth-srv/internal/audit"
	"auth-srv/internal/auth"
	"auth-srv/internal/model"
	"auth-srv/internal/user"
	"auth-srv/pkg/encrypter"
	"auth-srv/pkg/log"
	"auth-srv/pkg/redis"

	goredis "github.com/redis/go-redis/v9"
)

type fakeRedis struct {
	store map[string]string
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{store: map[string]string{}}
}

func (f *fakeRedis) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	switch v := value.(type) {
	case []byte:
		f.store[key] = string(v)
	case string:
		f.store[key] = v
	default:
		f.store[key] = fmt.Sprint(v)
	}
	return nil
}

func (f *fakeRedis) Get(_ context.Context, key string) (string, error) {
	val, ok := f.store[key]
	if !ok {
		return "", redis.ErrNotFound
	}
	return val, nil
}

func (f *fakeRedis) Delete(_ context.Context, keys ...string) error {
	for _, key := range keys {
		delete(f.store, key)
	}
	return nil
}

func (f *fakeRedis) Exists(_ context.Context, key string) (bool, error) {
	_, ok := f.store[key]
	return ok, nil
}

func (f *fakeRedis) TTL(_ context.Context, _ string) (time.Duration, error) { return 0, nil }
func (f *fakeRedis) Close() error                                           { return nil }
func (f *fakeRedis) Ping(_ context.Context) error                           { return nil }
func (f *fakeRedis) GetClient() *goredis.Client                             { return nil }

type fakeUserUC struct {
	users map[string]model.User
}

func (f *fakeUserUC) Detail(_ context.Context, sc model.Scope) (user.DetailOutput, error) {
	for _, u := range f.users {
		if u.ID == sc.UserID {
			return user.DetailOutput{User: u}, nil
		}
	}
	return user.DetailOutput{}, user.ErrUserNotFound
}

func (f *fakeUserUC) GetByEmail(_ context.Context, email string) (model.User, error) {
	u, ok := f.users[email]
	if !ok {
		return model.User{}, user.ErrUserNotFound
	}
	return u, nil
}

type nopAudit struct{}

func (nopAudit) Record(_ context.Context, _ audit.RecordInput) {}
func (nopAudit) List(_ context.Context, _ model.Scope, _ audit.ListInput) (audit.ListOutput, error) {
	return audit.ListOutput{}, nil
}

func newTestUseCase(t *testing.T) (auth.UseCase, *fakeRedis) {
	t.Helper()

	enc := encrypter.New()
	hash, err := enc.HashPassword("s3cret-brew")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	userUC := &fakeUserUC{users: map[string]model.User{
		"alice@example.com": {
			ID:           42,
			Name:         "Alice",
			Email:        "alice@example.com",
			PasswordHash: hash,
		},
	}}

	r := newFakeRedis()
	uc := New(log.NewNopLogger(), userUC, r, enc, nopAudit{}, auth.Config{
		SessionTTL: 2 * time.Hour,
	})
	return uc, r
}

func TestLogin_Success(t *testing.T) {
	uc, r := newTestUseCase(t)
	ctx := context.Background()

	out, err := uc.Login(ctx, auth.LoginInput{Email: "alice@example.com", Password: "s3cret-brew"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if out.SessionID == "" {
		t.Fatal("SessionID must not be empty")
	}
	if out.ExpiresIn != 7200 {
		t.Errorf("ExpiresIn = %d, want 7200", out.ExpiresIn)
	}
	if out.User.ID != 42 {
		t.Errorf("User.ID = %d, want 42", out.User.ID)
	}
	if _, ok := r.store[sessionKey(out.SessionID)]; !ok {
		t.Error("session payload not stored")
	}

	sc, err := uc.CurrentScope(ctx, out.SessionID)
	if err != nil {
		t.Fatalf("CurrentScope: %v", err)
	}
	want := model.Scope{UserID: 42, Email: "alice@example.com", Name: "Alice"}
	if sc != want {
		t.Errorf("scope = %+v, want %+v", sc, want)
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	uc, _ := newTestUseCase(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		input auth.LoginInput
	}{
		{"wrong password", auth.LoginInput{Email: "alice@example.com", Password: "wrong"}},
		{"unknown email", auth.LoginInput{Email: "bob@example.com", Password: "s3cret-brew"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := uc.Login(ctx, tt.input); !errors.Is(err, auth.ErrInvalidCredentials) {
				t.Errorf("got %v, want ErrInvalidCredentials", err)
			}
		})
	}
}

func TestLogout(t *testing.T) {
	uc, _ := newTestUseCase(t)
	ctx := context.Background()

	out, err := uc.Login(ctx, auth.LoginInput{Email: "alice@example.com", Password: "s3cret-brew"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	if err := uc.Logout(ctx, out.SessionID); err != nil {
		t.Fatalf("Logout: %v", err)
	}

	if _, err := uc.CurrentScope(ctx, out.SessionID); !errors.Is(err, auth.ErrSessionNotFound) {
		t.Errorf("after logout: got %v, want ErrSessionNotFound", err)
	}

	// logging out twice is fine
	if err := uc.Logout(ctx, out.SessionID); err != nil {
		t.Errorf("second Logout: %v", err)
	}
}

func TestCurrentScope_Unknown(t *testing.T) {
	uc, _ := newTestUseCase(t)
	ctx := context.Background()

	for _, sessionID := range []string{"", "does-not-exist"} {
		if _, err := uc.CurrentScope(ctx, sessionID); !errors.Is(err, auth.ErrSessionNotFound) {
			t.Errorf("CurrentScope(%q) = %v, want ErrSessionNotFound", sessionID, err)
		}
	}
}

func TestCurrentScope_CorruptPayload(t *testing.T) {
	uc, r := newTestUseCase(t)
	ctx := context.Background()

	r.store[sessionKey("broken")] = "{not json"
	if _, err := uc.CurrentScope(ctx, "broken"); !errors.Is(err, auth.ErrSessionNotFound) {
		t.Errorf("got %v, want ErrSessionNotFound", err)
	}
}
