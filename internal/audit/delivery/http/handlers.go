package http

import (
	"auth-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary List audit events
// @Description Paginate recorded authentication events, newest first
// @Tags Audit
// @Accept json
// @Produce json
// @Param action query string false "Filter by action"
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Records per page (default 20)"
// @Success 200 {object} listResp
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Router /api/audit-logs [get]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	input, sc, ok := h.processListRequest(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	o, err := h.uc.List(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "audit.delivery.http.List: usecase List failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newListResp(o))
}
