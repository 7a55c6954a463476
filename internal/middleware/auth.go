package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/blogweb/backend/internal/apperrors"
	portssvc "github.com/blogweb/backend/internal/core/ports/services"
	"github.com/blogweb/backend/internal/dto"
	"github.com/blogweb/backend/internal/utils"
	"github.com/gin-gonic/gin"
)

// Messages returned by the gate. All three reject states answer 401, but the
// message tells them apart.
const (
	MsgNoToken      = "Not authorized, no token"
	MsgInvalidToken = "Not authorized, invalid token"
	MsgUserNotFound = "User not found"
)

// AuthMiddleware creates a Gin middleware that authenticates requests by
// bearer token and attaches the resolved user (password hash stripped) to the
// request context. Rejections never reach the downstream handler.
//
// The header is parsed the same way the original frontend contract expects:
// the value must start with "Bearer" and the token is whatever sits after the
// first single space. "Bearer  <token>" (two spaces) therefore yields an
// empty token and the "no token" reject, not a distinct error.
func AuthMiddleware(jwtSecret string, userService portssvc.UserReaderSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		token := bearerToken(authHeader)
		if token == "" {
			logger.Warn("Authorization header missing or malformed")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.MessageResponse{Message: MsgNoToken})
			return
		}

		claims, err := utils.ParseAndValidateJWT(token, jwtSecret)
		if err != nil {
			logger.Warn("Invalid token", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.MessageResponse{Message: MsgInvalidToken})
			return
		}

		user, err := userService.GetUserByID(c.Request.Context(), claims.Subject)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				logger.Warn("Token references missing user", slog.String("user_id", claims.Subject))
				c.AbortWithStatusJSON(http.StatusUnauthorized, dto.MessageResponse{Message: MsgUserNotFound})
				return
			}
			// Lookup failures share the invalid-token reject, matching the
			// single catch the original wraps verify+lookup in.
			logger.Error("User lookup failed during auth", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.MessageResponse{Message: MsgInvalidToken})
			return
		}

		safeUser := user.SafeView()
		ctx := context.WithValue(c.Request.Context(), userCtxKey, &safeUser)

		enrichedLogger := logger.With(slog.String("user_id", safeUser.UserID))
		ctx = context.WithValue(ctx, loggerCtxKey, enrichedLogger)

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// bearerToken extracts the token from an Authorization header value using a
// naive single-space split. Returns "" for anything that doesn't produce a
// non-empty second segment after a "Bearer" prefix.
func bearerToken(header string) string {
	if !strings.HasPrefix(header, "Bearer") {
		return ""
	}
	parts := strings.Split(header, " ")
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}
