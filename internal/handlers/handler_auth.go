package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/blogweb/backend/internal/apperrors"
	portssvc "github.com/blogweb/backend/internal/core/ports/services"
	"github.com/blogweb/backend/internal/dto"
	"github.com/blogweb/backend/internal/middleware"
	"github.com/blogweb/backend/internal/platform/config"
	"github.com/blogweb/backend/internal/utils"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles registration and login.
type AuthHandler struct {
	userService portssvc.UserSvcFacade
	cfg         *config.Config
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(us portssvc.UserSvcFacade, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		userService: us,
		cfg:         cfg,
	}
}

// registerAuthRoutes sets up the routes for authentication.
func registerAuthRoutes(rg *gin.RouterGroup, cfg *config.Config, userService portssvc.UserSvcFacade) {
	h := NewAuthHandler(userService, cfg)

	auth := rg.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
	}
}

// Register godoc
// @Summary Register new user
// @Description Creates a new user account and returns the user with a session token.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterRequest true "Registration info"
// @Success 201 {object} dto.AuthResponse
// @Failure 400 {object} dto.ValidationErrors "Validation failures (all at once)"
// @Failure 500 {object} dto.InternalErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "Invalid request body"})
		return
	}

	// Validation runs on the normalized values, before any storage access.
	req.Normalize()
	if fieldErrs := dto.Validate(&req); fieldErrs != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationErrors{Errors: fieldErrs})
		return
	}

	user, err := h.userService.RegisterUser(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			// Deliberately does not say whether the username or the email
			// collided, to avoid account enumeration.
			logger.Warn("Duplicate registration attempt")
			c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "User or email already exists"})
			return
		}
		logger.Error("Failed to register user", slog.String("error", err.Error()))
		h.internalError(c, "Error registering user", err)
		return
	}

	token, err := utils.GenerateJWT(user.UserID, h.cfg.JWTSecret, h.cfg.JWTExpiryDuration, h.cfg.JWTIssuer)
	if err != nil {
		logger.Error("Failed to sign JWT token", slog.String("error", err.Error()))
		h.internalError(c, "Error registering user", err)
		return
	}

	logger.Info("User registered", slog.String("user_id", user.UserID))
	c.JSON(http.StatusCreated, dto.ToAuthResponse(user, token))
}

// Login godoc
// @Summary User login
// @Description Authenticates a user by email and password and returns a session token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} dto.ValidationErrors "Validation failures"
// @Failure 401 {object} dto.MessageResponse "Invalid credentials"
// @Failure 500 {object} dto.InternalErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "Invalid request body"})
		return
	}

	req.Normalize()
	if fieldErrs := dto.Validate(&req); fieldErrs != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationErrors{Errors: fieldErrs})
		return
	}

	user, err := h.userService.GetUserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Same body as a wrong password; the response never reveals
			// whether the account exists.
			c.JSON(http.StatusUnauthorized, dto.MessageResponse{Message: "Invalid credentials"})
			return
		}
		logger.Error("Failed to look up user for login", slog.String("error", err.Error()))
		h.internalError(c, "Error logging in", err)
		return
	}

	if !h.userService.VerifyPassword(user, req.Password) {
		c.JSON(http.StatusUnauthorized, dto.MessageResponse{Message: "Invalid credentials"})
		return
	}

	token, err := utils.GenerateJWT(user.UserID, h.cfg.JWTSecret, h.cfg.JWTExpiryDuration, h.cfg.JWTIssuer)
	if err != nil {
		logger.Error("Failed to sign JWT token", slog.String("error", err.Error()))
		h.internalError(c, "Error logging in", err)
		return
	}

	logger.Info("User logged in", slog.String("user_id", user.UserID))
	c.JSON(http.StatusOK, dto.ToAuthResponse(user, token))
}

func (h *AuthHandler) internalError(c *gin.Context, message string, err error) {
	respondInternal(c, h.cfg.IsProduction, message, err)
}
