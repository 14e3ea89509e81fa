package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/fish_sales_app/internal/core/ports/services"
	"github.com/SscSPs/fish_sales_app/internal/dto"
	"github.com/SscSPs/fish_sales_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
)

// AuthHandler handles authentication related requests.
type AuthHandler struct {
	authService portssvc.AuthSvcFacade
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(as portssvc.AuthSvcFacade) *AuthHandler {
	return &AuthHandler{authService: as}
}

// registerAuthRoutes sets up the public authentication routes.
// Login is rate limited per client IP when loginLimiter is set.
func registerAuthRoutes(rg *gin.RouterGroup, authService portssvc.AuthSvcFacade, loginLimiter *limiter.Limiter) {
	h := NewAuthHandler(authService)

	loginChain := []gin.HandlerFunc{}
	if loginLimiter != nil {
		loginChain = append(loginChain, middleware.RateLimit(loginLimiter))
	}
	loginChain = append(loginChain, h.Login)

	auth := rg.Group("/auth")
	{
		auth.POST("/login", loginChain...)
		auth.POST("/register", h.Register)
	}
}

// Login godoc
// @Summary Company login
// @Description Authenticates a company and returns a JWT token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}
	resp, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to log in")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Register godoc
// @Summary Register a company
// @Description Creates a company account and returns a JWT token for it.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterCompanyRequest true "Company Registration Info"
// @Success 201 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Company name already taken"
// @Failure 500 {object} ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}
	resp, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to register company")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Company registered", slog.String("company_id", resp.CompanyID))
	c.JSON(http.StatusCreated, resp)
}
