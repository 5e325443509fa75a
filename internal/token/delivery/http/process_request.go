package http

import (
	"strings"

	"auth-srv/internal/model"
	"auth-srv/internal/token"
	"auth-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processIssueRequest(c *gin.Context) (model.Scope, error) {
	sc, ok := scope.GetScopeFromContext(c.Request.Context())
	if !ok {
		return model.Scope{}, token.ErrUnauthenticated
	}
	return sc, nil
}

// processTokenRequest accepts the token from the JSON body, falling back
// to the Authorization header.
func (h *handler) processTokenRequest(c *gin.Context) tokenReq {
	var req tokenReq
	if err := c.ShouldBindJSON(&req); err == nil && req.Token != "" {
		return req
	}

	authHeader := c.GetHeader("Authorization")
	if after, found := strings.CutPrefix(authHeader, "Bearer "); found {
		req.Token = after
	}
	return req
}
