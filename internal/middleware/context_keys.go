package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// companyIDKey is the key used to store the authenticated company's ID in the request context.
const companyIDKey = contextKey("companyID")

// WithCompanyID returns a copy of ctx carrying the authenticated company.
func WithCompanyID(ctx context.Context, companyID string) context.Context {
	return context.WithValue(ctx, companyIDKey, companyID)
}

// GetCompanyIDFromContext retrieves the authenticated company ID from the Gin context.
// It returns the company ID and a boolean indicating if it was found.
func GetCompanyIDFromContext(c *gin.Context) (string, bool) {
	companyID, ok := c.Request.Context().Value(companyIDKey).(string)
	if !ok || companyID == "" {
		return "", false
	}
	return companyID, true
}
