package dto_test

import (
	"strings"
	"testing"

	"github.com/blogweb/backend/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldsOf(errs []dto.FieldError) []string {
	fields := make([]string, len(errs))
	for i, e := range errs {
		fields[i] = e.Field
	}
	return fields
}

func TestValidateRegisterRequestAllViolationsAtOnce(t *testing.T) {
	req := dto.RegisterRequest{
		Username: "ab",
		Email:    "not-an-email",
		Password: "12345",
	}
	req.Normalize()

	errs := dto.Validate(&req)
	require.Len(t, errs, 3, "every violated rule must be reported, not just the first")
	assert.ElementsMatch(t, []string{"username", "email", "password"}, fieldsOf(errs))
	for _, e := range errs {
		assert.NotEmpty(t, e.Msg)
	}
}

func TestValidateRegisterRequestValid(t *testing.T) {
	req := dto.RegisterRequest{
		Username: "  alice  ",
		Email:    "  Alice@Example.COM ",
		Password: "password123",
	}
	req.Normalize()

	assert.Nil(t, dto.Validate(&req))
	assert.Equal(t, "alice", req.Username)
	assert.Equal(t, "alice@example.com", req.Email)
	assert.Equal(t, "password123", req.Password, "password must not be normalized")
}

func TestValidateRegisterRequestTrimBeforeLength(t *testing.T) {
	// "  ab  " trims to 2 chars and must fail the min=3 rule.
	req := dto.RegisterRequest{
		Username: "  ab  ",
		Email:    "alice@example.com",
		Password: "password123",
	}
	req.Normalize()

	errs := dto.Validate(&req)
	require.Len(t, errs, 1)
	assert.Equal(t, "username", errs[0].Field)
}

func TestValidateLoginRequest(t *testing.T) {
	req := dto.LoginRequest{Email: "nope", Password: ""}
	req.Normalize()

	errs := dto.Validate(&req)
	require.Len(t, errs, 2)
	assert.ElementsMatch(t, []string{"email", "password"}, fieldsOf(errs))
}

func TestValidateCreateCommentRequest(t *testing.T) {
	t.Run("whitespace only is rejected", func(t *testing.T) {
		req := dto.CreateCommentRequest{Content: "   \t  "}
		req.Normalize()

		errs := dto.Validate(&req)
		require.Len(t, errs, 1)
		assert.Equal(t, "content", errs[0].Field)
	})

	t.Run("too long is rejected", func(t *testing.T) {
		req := dto.CreateCommentRequest{Content: strings.Repeat("a", 1001)}
		req.Normalize()

		errs := dto.Validate(&req)
		require.Len(t, errs, 1)
		assert.Equal(t, "content", errs[0].Field)
	})

	t.Run("exactly 1000 chars is accepted", func(t *testing.T) {
		req := dto.CreateCommentRequest{Content: strings.Repeat("a", 1000)}
		req.Normalize()

		assert.Nil(t, dto.Validate(&req))
	})
}
