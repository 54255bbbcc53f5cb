package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eva-gallery/eva-nft/internal/domain"
)

func TestFromDomain(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected ErrorCode
	}{
		{"not found", fmt.Errorf("user u1: %w", domain.ErrNotFound), ErrCodeNotFound},
		{"constraint violation", fmt.Errorf("NFT x: %w", domain.ErrConstraintViolation), ErrCodeConflict},
		{"already claimed", domain.ErrAlreadyClaimed, ErrCodeConflict},
		{"external service", fmt.Errorf("%w: timeout", domain.ErrExternalService), ErrCodeServiceError},
		{"unknown", errors.New("connection refused"), ErrCodeDatabaseError},
		{"api error passes through", fmt.Errorf("wrapped: %w", NewValidationError("bad")), ErrCodeValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := FromDomain(tt.err, "Failed")
			assert.Equal(t, tt.expected, apiErr.Code)
		})
	}
}

func TestAPIErrorJSON(t *testing.T) {
	err := NewNotFoundError("NFT not found", "n1")
	assert.JSONEq(t, `{"code":"not_found","message":"NFT not found","details":"n1"}`, err.Error())
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, NewValidationError("x").HTTPStatus())
	assert.Equal(t, http.StatusBadRequest, NewBadRequestError("x").HTTPStatus())
	assert.Equal(t, http.StatusNotFound, NewNotFoundError("x").HTTPStatus())
	assert.Equal(t, http.StatusConflict, NewConflictError("x").HTTPStatus())
	assert.Equal(t, http.StatusBadGateway, NewServiceError("x").HTTPStatus())
	assert.Equal(t, http.StatusInternalServerError, NewDatabaseError("x").HTTPStatus())
	assert.Equal(t, http.StatusInternalServerError, NewInternalError("x").HTTPStatus())
}
