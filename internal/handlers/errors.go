package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/SscSPs/fish_sales_app/internal/apperrors"
	"github.com/SscSPs/fish_sales_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError maps err to its HTTP status. Client errors echo the message,
// server errors only show fallback.
func respondError(c *gin.Context, err error, fallback string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	status := apperrors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(status, ErrorResponse{Error: fallback})
		return
	}
	logger.Warn("Request rejected", slog.Int("status", status), slog.String("error", err.Error()))
	c.JSON(status, ErrorResponse{Error: err.Error()})
}

func respondBindError(c *gin.Context, err error) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind request", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
}

// companyFromContext aborts with 401 when the auth middleware did not run.
func companyFromContext(c *gin.Context) (string, bool) {
	companyID, ok := middleware.GetCompanyIDFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Company ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return "", false
	}
	return companyID, true
}

type saleURI struct {
	ID string `uri:"id" binding:"required,uuid"`
}

// saleIDFromPath aborts with 404 when the :id segment is not a sale id.
func saleIDFromPath(c *gin.Context) (string, bool) {
	var uri saleURI
	if err := c.ShouldBindUri(&uri); err != nil {
		respondError(c, fmt.Errorf("%w: sale %s", apperrors.ErrNotFound, c.Param("id")), "Failed to resolve sale")
		return "", false
	}
	return uri.ID, true
}
