package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"auth-srv/internal/auth"
	"auth-srv/internal/middleware"
	"auth-srv/internal/model"
	"auth-srv/internal/token"
	"auth-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

type fakeTokenUC struct {
	verifyErr  error
	refreshErr error
}

func (f *fakeTokenUC) Issue(_ context.Context, sc model.Scope) (token.IssueOutput, error) {
	return token.IssueOutput{
		Token:     "signed-token",
		ExpiresIn: 86400,
		User:      sc,
	}, nil
}

func (f *fakeTokenUC) Verify(_ context.Context, input token.VerifyInput) (token.VerifyOutput, error) {
	if f.verifyErr != nil {
		return token.VerifyOutput{}, f.verifyErr
	}
	return token.VerifyOutput{
		Claims: token.TokenClaims{UserID: 42, Email: "alice@example.com"},
	}, nil
}

func (f *fakeTokenUC) Refresh(_ context.Context, input token.RefreshInput) (token.RefreshOutput, error) {
	if f.refreshErr != nil {
		return token.RefreshOutput{}, f.refreshErr
	}
	return token.RefreshOutput{
		Token:     "refreshed-token",
		ExpiresIn: 86400,
		User:      model.Scope{UserID: 42, Email: "alice@example.com", Name: "Alice"},
	}, nil
}

type fakeAuthUC struct{}

func (fakeAuthUC) Login(_ context.Context, _ auth.LoginInput) (auth.LoginOutput, error) {
	return auth.LoginOutput{}, nil
}

func (fakeAuthUC) Logout(_ context.Context, _ string) error { return nil }

func (fakeAuthUC) CurrentScope(_ context.Context, sessionID string) (model.Scope, error) {
	if sessionID != "good-session" {
		return model.Scope{}, auth.ErrSessionNotFound
	}
	return model.Scope{UserID: 42, Email: "alice@example.com", Name: "Alice"}, nil
}

func newTestRouter(uc *fakeTokenUC) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	l := log.NewNopLogger()
	mw := middleware.New(l, fakeAuthUC{}, "auth_session")
	New(l, uc, nil).RegisterRoutes(r.Group(""), mw)
	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path, body, authHeader string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response %q: %v", w.Body.String(), err)
	}
	return w, resp
}

func TestIssueEndpoint(t *testing.T) {
	r := newTestRouter(&fakeTokenUC{})

	w, _ := doRequest(t, r, http.MethodPost, "/api/jwt/token", "", "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("no session: status = %d, want 401", w.Code)
	}

	w, resp := doRequest(t, r, http.MethodPost, "/api/jwt/token", "", "Bearer good-session")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	data := resp["data"].(map[string]any)
	if data["token"] != "signed-token" || data["type"] != "Bearer" {
		t.Errorf("data = %v", data)
	}
	user := data["user"].(map[string]any)
	if user["email"] != "alice@example.com" {
		t.Errorf("user = %v", user)
	}
}

func TestVerifyEndpoint(t *testing.T) {
	tests := []struct {
		name       string
		uc         *fakeTokenUC
		body       string
		wantStatus int
	}{
		{"valid", &fakeTokenUC{}, `{"token":"x"}`, http.StatusOK},
		{"missing token", &fakeTokenUC{verifyErr: token.ErrTokenRequired}, `{}`, http.StatusBadRequest},
		{"expired", &fakeTokenUC{verifyErr: token.ErrTokenExpired}, `{"token":"x"}`, http.StatusUnauthorized},
		{"invalid", &fakeTokenUC{verifyErr: token.ErrTokenInvalid}, `{"token":"x"}`, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter(tt.uc)
			w, resp := doRequest(t, r, http.MethodPost, "/api/jwt/verify", tt.body, "")
			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if tt.wantStatus == http.StatusOK {
				data := resp["data"].(map[string]any)
				if data["valid"] != true {
					t.Errorf("data = %v", data)
				}
			}
		})
	}
}

func TestRefreshEndpoint(t *testing.T) {
	tests := []struct {
		name       string
		uc         *fakeTokenUC
		wantStatus int
	}{
		{"eligible", &fakeTokenUC{}, http.StatusOK},
		{"too early", &fakeTokenUC{refreshErr: token.ErrRefreshTooEarly}, http.StatusBadRequest},
		{"expired", &fakeTokenUC{refreshErr: token.ErrTokenExpired}, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter(tt.uc)
			w, resp := doRequest(t, r, http.MethodPost, "/api/jwt/refresh", `{"token":"x"}`, "")
			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if tt.wantStatus == http.StatusOK {
				data := resp["data"].(map[string]any)
				if data["token"] != "refreshed-token" {
					t.Errorf("data = %v", data)
				}
			}
		})
	}
}
