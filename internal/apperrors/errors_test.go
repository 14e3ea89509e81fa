package apperrors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/SscSPs/fish_sales_app/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", fmt.Errorf("%w: qty must be positive", apperrors.ErrValidation), http.StatusBadRequest},
		{"not found", fmt.Errorf("sale abc: %w", apperrors.ErrNotFound), http.StatusNotFound},
		{"conflict", apperrors.ErrConflict, http.StatusConflict},
		{"duplicate", apperrors.ErrDuplicate, http.StatusConflict},
		{"unauthorized", apperrors.NewUnauthorizedError("bad token"), http.StatusUnauthorized},
		{"app error code", apperrors.NewAppError(http.StatusBadGateway, "upstream", errors.New("boom")), http.StatusBadGateway},
		{"plain", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, apperrors.HTTPStatus(tt.err))
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := errors.New("connection reset")
	err := apperrors.NewAppError(http.StatusInternalServerError, "failed to begin transaction", inner)

	assert.ErrorIs(t, err, inner)
	assert.Equal(t, "failed to begin transaction: connection reset", err.Error())
}
