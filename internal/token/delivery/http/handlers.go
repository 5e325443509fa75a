package http

import (
	"auth-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary Issue a bearer token
// @Description Sign a new token for the authenticated session
// @Tags Token
// @Accept json
// @Produce json
// @Success 200 {object} issueResp
// @Failure 401 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/jwt/token [post]
func (h *handler) Issue(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processIssueRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "token.delivery.http.Issue: processIssueRequest failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	o, err := h.uc.Issue(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "token.delivery.http.Issue: usecase Issue failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newIssueResp(o))
}

// @Summary Verify a bearer token
// @Description Check signature and lifetime, returning the token payload
// @Tags Token
// @Accept json
// @Produce json
// @Param body body tokenReq true "Token to verify"
// @Success 200 {object} verifyResp
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Router /api/jwt/verify [post]
func (h *handler) Verify(c *gin.Context) {
	ctx := c.Request.Context()

	req := h.processTokenRequest(c)

	o, err := h.uc.Verify(ctx, req.toVerifyInput())
	if err != nil {
		h.l.Warnf(ctx, "token.delivery.http.Verify: usecase Verify failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newVerifyResp(o))
}

// @Summary Refresh a bearer token
// @Description Exchange a token close to expiry for a fresh one
// @Tags Token
// @Accept json
// @Produce json
// @Param body body tokenReq true "Token to refresh"
// @Success 200 {object} issueResp
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Router /api/jwt/refresh [post]
func (h *handler) Refresh(c *gin.Context) {
	ctx := c.Request.Context()

	req := h.processTokenRequest(c)

	o, err := h.uc.Refresh(ctx, req.toRefreshInput())
	if err != nil {
		h.l.Warnf(ctx, "token.delivery.http.Refresh: usecase Refresh failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newRefreshResp(o))
}
