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
	"github.com/gin-gonic/gin"
)

// CommentHandler handles the public comment feed.
type CommentHandler struct {
	commentService portssvc.CommentSvcFacade
	cfg            *config.Config
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(cs portssvc.CommentSvcFacade, cfg *config.Config) *CommentHandler {
	return &CommentHandler{
		commentService: cs,
		cfg:            cfg,
	}
}

// registerCommentRoutes sets up the comment routes. Listing is public;
// creation and deletion sit behind the auth gate.
func registerCommentRoutes(rg *gin.RouterGroup, cfg *config.Config, commentService portssvc.CommentSvcFacade, userService portssvc.UserSvcFacade) {
	h := NewCommentHandler(commentService, cfg)

	comments := rg.Group("/comments")
	comments.GET("", h.ListComments)

	protected := comments.Group("", middleware.AuthMiddleware(cfg.JWTSecret, userService))
	{
		protected.POST("", h.CreateComment)
		protected.DELETE("/:id", h.DeleteComment)
	}
}

// ListComments godoc
// @Summary List all comments
// @Description Returns every comment, newest first. No authentication required.
// @Tags comments
// @Produce json
// @Success 200 {array} dto.CommentResponse
// @Failure 500 {object} dto.InternalErrorResponse
// @Router /comments [get]
func (h *CommentHandler) ListComments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	comments, err := h.commentService.ListComments(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list comments", slog.String("error", err.Error()))
		respondInternal(c, h.cfg.IsProduction, "Error retrieving comments", err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCommentResponseList(comments))
}

// CreateComment godoc
// @Summary Create a comment
// @Description Creates a comment authored by the authenticated user.
// @Tags comments
// @Accept json
// @Produce json
// @Param comment body dto.CreateCommentRequest true "Comment content"
// @Success 201 {object} dto.CommentResponse
// @Failure 400 {object} dto.ValidationErrors "Validation failures"
// @Failure 401 {object} dto.MessageResponse
// @Failure 500 {object} dto.InternalErrorResponse
// @Security BearerAuth
// @Router /comments [post]
func (h *CommentHandler) CreateComment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	author, ok := middleware.GetUserFromContext(c)
	if !ok {
		// The gate should have rejected already; this is a routing mistake.
		logger.Error("Authenticated user missing from context")
		c.JSON(http.StatusUnauthorized, dto.MessageResponse{Message: middleware.MsgNoToken})
		return
	}

	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "Invalid request body"})
		return
	}

	req.Normalize()
	if fieldErrs := dto.Validate(&req); fieldErrs != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationErrors{Errors: fieldErrs})
		return
	}

	comment, err := h.commentService.CreateComment(c.Request.Context(), req, *author)
	if err != nil {
		logger.Error("Failed to create comment", slog.String("error", err.Error()))
		respondInternal(c, h.cfg.IsProduction, "Error creating comment", err)
		return
	}

	logger.Info("Comment created", slog.String("comment_id", comment.CommentID))
	c.JSON(http.StatusCreated, dto.ToCommentResponse(comment))
}

// DeleteComment godoc
// @Summary Delete a comment
// @Description Deletes a comment. Only the comment's author may delete it.
// @Tags comments
// @Produce json
// @Param id path string true "Comment ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 401 {object} dto.MessageResponse
// @Failure 403 {object} dto.MessageResponse "Not the comment's author"
// @Failure 404 {object} dto.MessageResponse "Comment not found"
// @Failure 500 {object} dto.InternalErrorResponse
// @Security BearerAuth
// @Router /comments/{id} [delete]
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	commentID := c.Param("id")

	requester, ok := middleware.GetUserFromContext(c)
	if !ok {
		logger.Error("Authenticated user missing from context")
		c.JSON(http.StatusUnauthorized, dto.MessageResponse{Message: middleware.MsgNoToken})
		return
	}

	err := h.commentService.DeleteComment(c.Request.Context(), commentID, requester.UserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, dto.MessageResponse{Message: "Comment not found"})
		case errors.Is(err, apperrors.ErrForbidden):
			logger.Warn("Forbidden comment deletion", slog.String("comment_id", commentID))
			c.JSON(http.StatusForbidden, dto.MessageResponse{Message: "Not authorized to delete this comment"})
		default:
			// Includes syntactically malformed comment ids.
			logger.Error("Failed to delete comment", slog.String("error", err.Error()))
			respondInternal(c, h.cfg.IsProduction, "Error deleting comment", err)
		}
		return
	}

	logger.Info("Comment deleted", slog.String("comment_id", commentID))
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Comment deleted"})
}
