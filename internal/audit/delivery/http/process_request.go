package http

import (
	"auth-srv/internal/audit"
	"auth-srv/internal/model"
	"auth-srv/pkg/paginator"
	"auth-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processListRequest(c *gin.Context) (audit.ListInput, model.Scope, bool) {
	sc, ok := scope.GetScopeFromContext(c.Request.Context())
	if !ok {
		return audit.ListInput{}, model.Scope{}, false
	}

	var pagQuery paginator.PaginateQuery
	_ = c.ShouldBindQuery(&pagQuery)

	return audit.ListInput{
		Action:   c.Query("action"),
		PagQuery: pagQuery,
	}, sc, true
}
