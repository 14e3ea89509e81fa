package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/fish_sales_app/internal/core/ports/services"
	"github.com/SscSPs/fish_sales_app/internal/dto"
	"github.com/SscSPs/fish_sales_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// saleHandler handles HTTP requests related to sales.
type saleHandler struct {
	saleService portssvc.SaleSvcFacade
}

func newSaleHandler(ss portssvc.SaleSvcFacade) *saleHandler {
	return &saleHandler{saleService: ss}
}

// registerSaleRoutes registers the ledger routes.
func registerSaleRoutes(rg *gin.RouterGroup, saleService portssvc.SaleSvcFacade) {
	h := newSaleHandler(saleService)

	sales := rg.Group("/sales")
	{
		sales.POST("", h.createSale)
		sales.GET("", h.listSales)
		sales.GET("/:id", h.getSale)
		sales.PUT("/:id", h.editSale)
		sales.DELETE("/:id", h.deleteSale)
		sales.PATCH("/:id/deliver", h.deliver)
		sales.PATCH("/:id/pay", h.pay)
		sales.PATCH("/:id/settle", h.settle)
		sales.PATCH("/:id/refund", h.refund)
		sales.PATCH("/compensate-manual", h.compensate)
		sales.GET("/client-balances/:clientName", h.clientBalances)
		sales.GET("/client-credits/:clientName", h.clientCredits)
	}
}

// createSale godoc
// @Summary Record a sale
// @Description Creates a sale. Amount and balance are computed from quantity, unit price and payment.
// @Tags sales
// @Accept json
// @Produce json
// @Param sale body dto.SaleRequest true "Sale details"
// @Success 201 {object} dto.SaleResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /sales [post]
func (h *saleHandler) createSale(c *gin.Context) {
	companyID, ok := companyFromContext(c)
	if !ok {
		return
	}
	var req dto.SaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	sale, err := h.saleService.CreateSale(c.Request.Context(), companyID, req)
	if err != nil {
		respondError(c, err, "Failed to create sale")
		return
	}
	c.JSON(http.StatusCreated, dto.ToSaleResponse(sale))
}

// listSales godoc
// @Summary List sales
// @Description Lists the company's sales, newest first, with optional filters and keyset pagination.
// @Tags sales
// @Produce json
// @Param fishType query string false "tilapia or pangasius"
// @Param client query string false "Client name"
// @Param startDate query string false "YYYY-MM-DD"
// @Param endDate query string false "YYYY-MM-DD"
// @Param limit query int false "Page size (max 100)"
// @Param nextToken query string false "Cursor from a previous page"
// @Success 200 {object} dto.ListSalesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /sales [get]
func (h *saleHandler) listSales(c *gin.Context) {
	companyID, ok := companyFromContext(c)
	if !ok {
		return
	}
	var params dto.ListSalesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	resp, err := h.saleService.ListSales(c.Request.Context(), companyID, params)
	if err != nil {
		respondError(c, err, "Failed to list sales")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getSale godoc
// @Summary Get a sale
// @Tags sales
// @Produce json
// @Param id path string true "Sale ID"
// @Success 200 {object} dto.SaleResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /sales/{id} [get]
func (h *saleHandler) getSale(c *gin.Context) {
	companyID, ok := companyFromContext(c)
	if !ok {
		return
	}
	saleID, ok := saleIDFromPath(c)
	if !ok {
		return
	}
	sale, err := h.saleService.GetSale(c.Request.Context(), companyID, saleID)
	if err != nil {
		respondError(c, err, "Failed to retrieve sale")
		return
	}
	c.JSON(http.StatusOK, dto.ToSaleResponse(sale))
}

// deliver godoc
// @Summary Record a delivery
// @Description Adds delivered kilograms. Delivering more than what remains is rejected.
// @Tags sales
// @Accept json
// @Produce json
// @Param id path string true "Sale ID"
// @Param delivery body dto.DeliverRequest true "Delivered quantity"
// @Success 200 {object} dto.SaleResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /sales/{id}/deliver [patch]
func (h *saleHandler) deliver(c *gin.Context) {
	companyID, ok := companyFromContext(c)
	if !ok {
		return
	}
	saleID, ok := saleIDFromPath(c)
	if !ok {
		return
	}
	var req dto.DeliverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	sale, err := h.saleService.Deliver(c.Request.Context(), companyID, saleID, req)
	if err != nil {
		respondError(c, err, "Failed to record delivery")
		return
	}
	c.JSON(http.StatusOK, dto.ToSaleResponse(sale))
}

// pay godoc
// @Summary Record a payment
// @Description Adds a payment. Overpaying leaves the client with a credit.
// @Tags sales
// @Accept json
// @Produce json
// @Param id path string true "Sale ID"
// @Param payment body dto.AmountRequest true "Amount paid"
// @Success 200 {object} dto.SaleResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /sales/{id}/pay [patch]
func (h *saleHandler) pay(c *gin.Context) {
	companyID, ok := companyFromContext(c)
	if !ok {
		return
	}
	saleID, ok := saleIDFromPath(c)
	if !ok {
		return
	}
	var req dto.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	sale, err := h.saleService.Pay(c.Request.Context(), companyID, saleID, req)
	if err != nil {
		respondError(c, err, "Failed to record payment")
		return
	}
	c.JSON(http.StatusOK, dto.ToSaleResponse(sale))
}

// settle godoc
// @Summary Settle a sale
// @Description Pays off the remaining debt. Rejected when nothing is owed.
// @Tags sales
// @Produce json
// @Param id path string true "Sale ID"
// @Success 200 {object} dto.SaleResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /sales/{id}/settle [patch]
func (h *saleHandler) settle(c *gin.Context) {
	companyID, ok := companyFromContext(c)
	if !ok {
		return
	}
	saleID, ok := saleIDFromPath(c)
	if !ok {
		return
	}
	sale, err := h.saleService.Settle(c.Request.Context(), companyID, saleID)
	if err != nil {
		respondError(c, err, "Failed to settle sale")
		return
	}
	c.JSON(http.StatusOK, dto.ToSaleResponse(sale))
}

// refund godoc
// @Summary Refund part of a credit
// @Tags sales
// @Accept json
// @Produce json
// @Param id path string true "Sale ID"
// @Param refund body dto.AmountRequest true "Amount refunded"
// @Success 200 {object} dto.SaleResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /sales/{id}/refund [patch]
func (h *saleHandler) refund(c *gin.Context) {
	companyID, ok := companyFromContext(c)
	if !ok {
		return
	}
	saleID, ok := saleIDFromPath(c)
	if !ok {
		return
	}
	var req dto.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	sale, err := h.saleService.Refund(c.Request.Context(), companyID, saleID, req)
	if err != nil {
		respondError(c, err, "Failed to record refund")
		return
	}
	c.JSON(http.StatusOK, dto.ToSaleResponse(sale))
}

// compensate godoc
// @Summary Apply a credit to a debt
// @Description Moves amountToUse from a credit sale onto a debt sale of the same client, atomically.
// @Tags sales
// @Accept json
// @Produce json
// @Param compensation body dto.CompensateRequest true "Sales and amount"
// @Success 200 {object} dto.CompensationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /sales/compensate-manual [patch]
func (h *saleHandler) compensate(c *gin.Context) {
	companyID, ok := companyFromContext(c)
	if !ok {
		return
	}
	var req dto.CompensateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	debt, credit, err := h.saleService.Compensate(c.Request.Context(), companyID, req)
	if err != nil {
		respondError(c, err, "Failed to apply compensation")
		return
	}
	c.JSON(http.StatusOK, dto.CompensationResponse{
		Debt:   dto.ToSaleResponse(debt),
		Credit: dto.ToSaleResponse(credit),
	})
}

// editSale godoc
// @Summary Edit a sale
// @Description Replaces a sale's fields. The previous state is kept in the action log with the motif.
// @Tags sales
// @Accept json
// @Produce json
// @Param id path string true "Sale ID"
// @Param edit body dto.EditSaleRequest true "Replacement data and motif"
// @Success 200 {object} dto.SaleResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Stale version"
// @Security BearerAuth
// @Router /sales/{id} [put]
func (h *saleHandler) editSale(c *gin.Context) {
	companyID, ok := companyFromContext(c)
	if !ok {
		return
	}
	saleID, ok := saleIDFromPath(c)
	if !ok {
		return
	}
	var req dto.EditSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	sale, err := h.saleService.EditSale(c.Request.Context(), companyID, saleID, req)
	if err != nil {
		respondError(c, err, "Failed to edit sale")
		return
	}
	c.JSON(http.StatusOK, dto.ToSaleResponse(sale))
}

// deleteSale godoc
// @Summary Delete a sale
// @Description Removes a sale. The motif may be sent in the body or as a query parameter.
// @Tags sales
// @Accept json
// @Param id path string true "Sale ID"
// @Param motif query string false "Reason for the deletion"
// @Param body body dto.DeleteSaleRequest false "Reason for the deletion"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /sales/{id} [delete]
func (h *saleHandler) deleteSale(c *gin.Context) {
	companyID, ok := companyFromContext(c)
	if !ok {
		return
	}
	saleID, ok := saleIDFromPath(c)
	if !ok {
		return
	}
	var req dto.DeleteSaleRequest
	// ContentLength is -1 for chunked bodies
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			respondBindError(c, err)
			return
		}
	}
	if req.Motif == "" {
		req.Motif = c.Query("motif")
	}

	if err := h.saleService.DeleteSale(c.Request.Context(), companyID, saleID, req.Motif); err != nil {
		respondError(c, err, "Failed to delete sale")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Sale deleted", slog.String("sale_id", saleID))
	c.Status(http.StatusNoContent)
}

// clientBalances godoc
// @Summary Open debts of a client
// @Tags sales
// @Produce json
// @Param clientName path string true "Client name"
// @Success 200 {array} dto.SaleResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /sales/client-balances/{clientName} [get]
func (h *saleHandler) clientBalances(c *gin.Context) {
	companyID, ok := companyFromContext(c)
	if !ok {
		return
	}
	sales, err := h.saleService.ListClientBalances(c.Request.Context(), companyID, c.Param("clientName"))
	if err != nil {
		respondError(c, err, "Failed to list client balances")
		return
	}
	c.JSON(http.StatusOK, dto.ToSaleResponses(sales))
}

// clientCredits godoc
// @Summary Credits held by a client
// @Tags sales
// @Produce json
// @Param clientName path string true "Client name"
// @Success 200 {array} dto.SaleResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /sales/client-credits/{clientName} [get]
func (h *saleHandler) clientCredits(c *gin.Context) {
	companyID, ok := companyFromContext(c)
	if !ok {
		return
	}
	sales, err := h.saleService.ListClientCredits(c.Request.Context(), companyID, c.Param("clientName"))
	if err != nil {
		respondError(c, err, "Failed to list client credits")
		return
	}
	c.JSON(http.StatusOK, dto.ToSaleResponses(sales))
}
