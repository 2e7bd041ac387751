package teibun

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthError_Error(t *testing.T) {
	t.Parallel()
	err := &AuthError{
		Actor:       "sato@example.co.jp",
		Role:        RoleGeneral,
		Departments: []string{"法務", "営業"},
	}
	assert.Contains(t, err.Error(), "sato@example.co.jp")
	assert.Contains(t, err.Error(), "法務")
	assert.Contains(t, err.Error(), "teibun:")
}

func TestAuthError_Unwrap(t *testing.T) {
	t.Parallel()
	err := &AuthError{Actor: "x", Role: RoleGeneral}
	require.ErrorIs(t, err, ErrUnauthorized)

	outer := fmt.Errorf("sync: %w", err)
	var authErr *AuthError
	require.ErrorAs(t, outer, &authErr)
	assert.Equal(t, "x", authErr.Actor)
}

func TestSentinelErrors_Is(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		err    error
		target error
		want   bool
	}{
		{"unauthorized", ErrUnauthorized, ErrUnauthorized, true},
		{"invalid argument", ErrInvalidArgument, ErrInvalidArgument, true},
		{"master read only", ErrMasterReadOnly, ErrMasterReadOnly, true},
		{"snippet not found", ErrSnippetNotFound, ErrSnippetNotFound, true},
		{"wrapped unauthorized", fmt.Errorf("wrap: %w", ErrUnauthorized), ErrUnauthorized, true},
		{"wrong target", ErrUnauthorized, ErrInvalidArgument, false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, errors.Is(tt.err, tt.target))
		})
	}
}
