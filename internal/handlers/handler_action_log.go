package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/fish_sales_app/internal/core/ports/services"
	"github.com/SscSPs/fish_sales_app/internal/dto"
	"github.com/gin-gonic/gin"
)

type actionLogHandler struct {
	actionLogService portssvc.ActionLogSvc
}

func registerActionLogRoutes(rg *gin.RouterGroup, actionLogService portssvc.ActionLogSvc) {
	h := &actionLogHandler{actionLogService: actionLogService}
	rg.GET("/action-logs", h.listActionLogs)
}

// listActionLogs godoc
// @Summary List audit entries
// @Description Edits and deletions of the company's sales, newest first, each with the sale as it was before.
// @Tags action-logs
// @Produce json
// @Param saleID query string false "Only entries about this sale"
// @Param actionType query string false "edit or delete"
// @Param limit query int false "Page size (max 100)"
// @Param nextToken query string false "Cursor from a previous page"
// @Success 200 {object} dto.ListActionLogsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /action-logs [get]
func (h *actionLogHandler) listActionLogs(c *gin.Context) {
	companyID, ok := companyFromContext(c)
	if !ok {
		return
	}
	var params dto.ListActionLogsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	resp, err := h.actionLogService.ListActionLogs(c.Request.Context(), companyID, params)
	if err != nil {
		respondError(c, err, "Failed to list action logs")
		return
	}
	c.JSON(http.StatusOK, resp)
}
