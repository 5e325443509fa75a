package http

import (
	"auth-srv/pkg/response"
	"auth-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

// @Summary Current user detail
// @Description Return the full record of the authenticated user
// @Tags User
// @Accept json
// @Produce json
// @Success 200 {object} detailResp
// @Failure 401 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/user [get]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scope.GetScopeFromContext(ctx)
	if !ok {
		response.Unauthorized(c)
		return
	}

	o, err := h.uc.Detail(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "user.delivery.http.Detail: usecase Detail failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newDetailResp(o))
}
