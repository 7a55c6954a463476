package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/blogweb/backend/internal/apperrors"
	"github.com/blogweb/backend/internal/core/domain"
	"github.com/blogweb/backend/internal/dto"
	"github.com/blogweb/backend/internal/platform/config"
	"github.com/blogweb/backend/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/rs/xid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type CommentHandlerTestSuite struct {
	suite.Suite
	cfg        *config.Config
	userSvc    *MockUserSvc
	commentSvc *MockCommentSvc
	router     *gin.Engine
	author     *domain.User
	token      string
}

func (s *CommentHandlerTestSuite) SetupTest() {
	s.cfg = testConfig()
	s.userSvc = new(MockUserSvc)
	s.commentSvc = new(MockCommentSvc)
	s.router = newTestRouter(s.cfg, s.userSvc, s.commentSvc)

	s.author = &domain.User{UserID: "u1", Username: "alice", Email: "alice@example.com"}

	token, err := utils.GenerateJWT(s.author.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	s.Require().NoError(err)
	s.token = token
}

// allowAuth lets the gate resolve the suite's author for its token.
func (s *CommentHandlerTestSuite) allowAuth() {
	s.userSvc.On("GetUserByID", mock.Anything, s.author.UserID).Return(s.author, nil)
}

func TestCommentHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CommentHandlerTestSuite))
}

func (s *CommentHandlerTestSuite) TestListCommentsIsPublic() {
	now := time.Now().Truncate(time.Second)
	s.commentSvc.On("ListComments", mock.Anything).Return([]domain.Comment{
		{CommentID: "c2", Content: "newer", AuthorID: "u1", AuthorUsername: "alice", CreatedAt: now, UpdatedAt: now},
		{CommentID: "c1", Content: "older", AuthorID: "u2", AuthorUsername: "bob", CreatedAt: now, UpdatedAt: now},
	}, nil)

	// No Authorization header at all.
	w := doJSON(s.router, http.MethodGet, "/api/comments", nil, "")

	s.Require().Equal(http.StatusOK, w.Code)

	var resp []dto.CommentResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Require().Len(resp, 2)
	s.Equal("c2", resp[0].ID, "feed order is the service's order, newest first")
	s.Equal("c1", resp[1].ID)
	s.Equal("alice", resp[0].AuthorUsername)
	s.Equal("u1", resp[0].Author)
}

func (s *CommentHandlerTestSuite) TestListCommentsEmptyFeed() {
	s.commentSvc.On("ListComments", mock.Anything).Return([]domain.Comment{}, nil)

	w := doJSON(s.router, http.MethodGet, "/api/comments", nil, "")

	s.Require().Equal(http.StatusOK, w.Code)
	s.JSONEq(`[]`, w.Body.String(), "empty feed is an empty array, not null")
}

func (s *CommentHandlerTestSuite) TestCreateCommentRequiresAuth() {
	w := doJSON(s.router, http.MethodPost, "/api/comments", gin.H{"content": "hello"}, "")

	s.Equal(http.StatusUnauthorized, w.Code)
	s.JSONEq(`{"message":"Not authorized, no token"}`, w.Body.String())
	s.commentSvc.AssertNotCalled(s.T(), "CreateComment", mock.Anything, mock.Anything, mock.Anything)
}

func (s *CommentHandlerTestSuite) TestCreateCommentSuccess() {
	s.allowAuth()

	now := time.Now()
	s.commentSvc.CreateCommentFn = func(_ context.Context, req dto.CreateCommentRequest, author domain.User) (*domain.Comment, error) {
		s.Equal("hello world", req.Content)
		s.Equal(s.author.UserID, author.UserID)
		s.Equal(s.author.Username, author.Username)
		return &domain.Comment{
			CommentID:      xid.New().String(),
			Content:        req.Content,
			AuthorID:       author.UserID,
			AuthorUsername: author.Username,
			CreatedAt:      now,
			UpdatedAt:      now,
		}, nil
	}

	w := doJSON(s.router, http.MethodPost, "/api/comments", gin.H{"content": "  hello world  "}, s.token)

	s.Require().Equal(http.StatusCreated, w.Code)

	var resp dto.CommentResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("hello world", resp.Content)
	s.Equal("u1", resp.Author)
	s.Equal("alice", resp.AuthorUsername)
}

func (s *CommentHandlerTestSuite) TestCreateCommentValidation() {
	s.allowAuth()

	cases := map[string]string{
		"empty":           "",
		"whitespace only": "   \n\t  ",
	}
	for name, content := range cases {
		s.Run(name, func() {
			w := doJSON(s.router, http.MethodPost, "/api/comments", gin.H{"content": content}, s.token)

			s.Require().Equal(http.StatusBadRequest, w.Code)

			var resp dto.ValidationErrors
			s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
			s.Require().Len(resp.Errors, 1)
			s.Equal("content", resp.Errors[0].Field)
		})
	}
	s.commentSvc.AssertNotCalled(s.T(), "CreateComment", mock.Anything, mock.Anything, mock.Anything)
}

func (s *CommentHandlerTestSuite) TestDeleteCommentResponses() {
	s.allowAuth()
	commentID := xid.New().String()

	s.Run("not found", func() {
		s.commentSvc.DeleteCommentFn = func(_ context.Context, _ string, _ string) error {
			return apperrors.ErrNotFound
		}
		w := doJSON(s.router, http.MethodDelete, "/api/comments/"+commentID, nil, s.token)
		s.Equal(http.StatusNotFound, w.Code)
		s.JSONEq(`{"message":"Comment not found"}`, w.Body.String())
	})

	s.Run("forbidden", func() {
		s.commentSvc.DeleteCommentFn = func(_ context.Context, _ string, _ string) error {
			return apperrors.ErrForbidden
		}
		w := doJSON(s.router, http.MethodDelete, "/api/comments/"+commentID, nil, s.token)
		s.Equal(http.StatusForbidden, w.Code)
		s.JSONEq(`{"message":"Not authorized to delete this comment"}`, w.Body.String())
	})

	s.Run("malformed id reaches the generic handler", func() {
		s.commentSvc.DeleteCommentFn = func(_ context.Context, commentID string, _ string) error {
			s.Equal("not-an-id", commentID)
			return assert.AnError
		}
		w := doJSON(s.router, http.MethodDelete, "/api/comments/not-an-id", nil, s.token)
		s.Equal(http.StatusInternalServerError, w.Code)

		var resp dto.InternalErrorResponse
		s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
		s.Equal("Error deleting comment", resp.Message)
	})

	s.Run("owner success", func() {
		var gotRequester string
		s.commentSvc.DeleteCommentFn = func(_ context.Context, id string, requesterID string) error {
			s.Equal(commentID, id)
			gotRequester = requesterID
			return nil
		}
		w := doJSON(s.router, http.MethodDelete, "/api/comments/"+commentID, nil, s.token)
		s.Equal(http.StatusOK, w.Code)
		s.JSONEq(`{"message":"Comment deleted"}`, w.Body.String())
		s.Equal(s.author.UserID, gotRequester, "requester identity comes from the token, not the request")
	})
}

func (s *CommentHandlerTestSuite) TestDeleteCommentRequiresAuth() {
	w := doJSON(s.router, http.MethodDelete, "/api/comments/"+xid.New().String(), nil, "")

	s.Equal(http.StatusUnauthorized, w.Code)
	s.JSONEq(`{"message":"Not authorized, no token"}`, w.Body.String())
	s.commentSvc.AssertNotCalled(s.T(), "DeleteComment", mock.Anything, mock.Anything, mock.Anything)
}
