package http

import (
	"auth-srv/pkg/response"
	"auth-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

// @Summary Log in
// @Description Check credentials and open a session
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body loginReq true "Credentials"
// @Success 200 {object} loginResp
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Router /api/login [post]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "auth.delivery.http.Login: bind failed: %v", err)
		response.Error(c, errWrongBody, h.discord)
		return
	}

	o, err := h.uc.Login(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "auth.delivery.http.Login: usecase Login failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	c.SetCookie(SessionCookieName, o.SessionID, int(o.ExpiresIn), "/", "", false, true)
	response.OK(c, h.newLoginResp(o))
}

// @Summary Log out
// @Description Close the current session
// @Tags Auth
// @Accept json
// @Produce json
// @Success 200 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Router /api/logout [post]
func (h *handler) Logout(c *gin.Context) {
	ctx := c.Request.Context()

	sessionID, _ := scope.GetSessionIDFromContext(ctx)
	if err := h.uc.Logout(ctx, sessionID); err != nil {
		h.l.Errorf(ctx, "auth.delivery.http.Logout: usecase Logout failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	c.SetCookie(SessionCookieName, "", -1, "/", "", false, true)
	response.OK(c, nil)
}
