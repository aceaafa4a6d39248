package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{ErrOrderNotFound, http.StatusNotFound},
		{ErrPlanNotFound, http.StatusNotFound},
		{ErrInvalidCredentials, http.StatusUnauthorized},
		{ErrForbidden, http.StatusForbidden},
		{ErrCartEmpty, http.StatusBadRequest},
		{ErrEmailInUse, http.StatusBadRequest},
		{errors.New("database on fire"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := StatusCode(tt.err); got != tt.want {
			t.Errorf("StatusCode(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func TestStatusCode_WrappedError(t *testing.T) {
	wrapped := fmt.Errorf("%w for Whey Protein", ErrInsufficientStock)
	if got := StatusCode(wrapped); got != http.StatusBadRequest {
		t.Errorf("StatusCode(wrapped) = %d, want %d", got, http.StatusBadRequest)
	}
}
