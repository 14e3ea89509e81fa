package handlers

import (
	"net/http"

	"github.com/SscSPs/fish_sales_app/internal/core/domain"
	portssvc "github.com/SscSPs/fish_sales_app/internal/core/ports/services"
	"github.com/SscSPs/fish_sales_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// reportingHandler serves the dashboard views over the ledger.
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	rg.GET("/summary", h.getSummary)
	dashboard := rg.Group("/dashboard")
	{
		dashboard.GET("/debts", h.getBoard(domain.BalanceDebt))
		dashboard.GET("/credits", h.getBoard(domain.BalanceCredit))
	}
	rg.GET("/client-analysis/:clientName", h.getClientAnalysis)
}

// getSummary godoc
// @Summary Ledger summary
// @Description Totals of quantity, delivered, amount, payment, balance, debt and credit, with a per-fish-type breakdown.
// @Tags reports
// @Produce json
// @Param fishType query string false "tilapia or pangasius"
// @Param client query string false "Client name"
// @Param startDate query string false "YYYY-MM-DD"
// @Param endDate query string false "YYYY-MM-DD"
// @Success 200 {object} domain.Summary
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /summary [get]
func (h *reportingHandler) getSummary(c *gin.Context) {
	companyID, ok := companyFromContext(c)
	if !ok {
		return
	}
	var params dto.SummaryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	filter, err := params.ToFilter()
	if err != nil {
		respondError(c, err, "Failed to build summary")
		return
	}

	summary, err := h.reportingService.GetSummary(c.Request.Context(), companyID, filter)
	if err != nil {
		respondError(c, err, "Failed to build summary")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// getBoard godoc
// @Summary Client boards
// @Description Clients ranked by total open debt (/dashboard/debts) or total credit held (/dashboard/credits).
// @Tags reports
// @Produce json
// @Success 200 {object} dto.BoardResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /dashboard/debts [get]
// @Router /dashboard/credits [get]
func (h *reportingHandler) getBoard(kind domain.BalanceKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		companyID, ok := companyFromContext(c)
		if !ok {
			return
		}
		clients, err := h.reportingService.GetBoard(c.Request.Context(), companyID, kind)
		if err != nil {
			respondError(c, err, "Failed to build client board")
			return
		}
		c.JSON(http.StatusOK, dto.BoardResponse{Kind: kind, Clients: clients})
	}
}

// getClientAnalysis godoc
// @Summary Client analysis
// @Description Totals of one client along with its open debts and credits.
// @Tags reports
// @Produce json
// @Param clientName path string true "Client name"
// @Success 200 {object} dto.ClientAnalysisResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /client-analysis/{clientName} [get]
func (h *reportingHandler) getClientAnalysis(c *gin.Context) {
	companyID, ok := companyFromContext(c)
	if !ok {
		return
	}
	analysis, err := h.reportingService.GetClientAnalysis(c.Request.Context(), companyID, c.Param("clientName"))
	if err != nil {
		respondError(c, err, "Failed to analyse client")
		return
	}
	c.JSON(http.StatusOK, dto.ToClientAnalysisResponse(analysis))
}
