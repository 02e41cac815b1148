package grpc

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/lendstack/loan-servicing/internal/domain/model"
	"github.com/lendstack/loan-servicing/internal/domain/valueobject"
)

func TestToStatusError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want codes.Code
	}{
		{"invalid argument", fmt.Errorf("create loan: %w", model.ErrInvalidArgument), codes.InvalidArgument},
		{"not found", fmt.Errorf("find loan: %w", model.ErrNotFound), codes.NotFound},
		{"conflict", fmt.Errorf("apply rate change: %w", model.ErrConflict), codes.FailedPrecondition},
		{"forbidden", fmt.Errorf("reverse payment: %w", model.ErrForbidden), codes.PermissionDenied},
		{"status transition", fmt.Errorf("close loan: %w", valueobject.ErrInvalidStatusTransition), codes.FailedPrecondition},
		{"unclassified", fmt.Errorf("connection refused"), codes.Internal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, ok := status.FromError(toStatusError(tt.err))
			require.True(t, ok)
			assert.Equal(t, tt.want, st.Code())
			assert.Contains(t, st.Message(), tt.err.Error())
		})
	}
}
