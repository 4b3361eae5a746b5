package grpcserver

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/and161185/fitplan/internal/errs"
)

func TestToStatus(t *testing.T) {
	t.Parallel()

	require.NoError(t, toStatus("op", nil))

	cases := map[error]codes.Code{
		errs.ErrValidation:                       codes.InvalidArgument,
		fmt.Errorf("x: %w", errs.ErrInvalidPlan): codes.InvalidArgument,
		errs.ErrNotFound:                         codes.NotFound,
		errs.ErrUnauthorized:                     codes.Unauthenticated,
		errs.ErrForbidden:                        codes.PermissionDenied,
		errs.ErrRateLimited:                      codes.ResourceExhausted,
		errs.ErrAlreadyExists:                    codes.AlreadyExists,
		errs.ErrInsufficientFunds:                codes.FailedPrecondition,
		fmt.Errorf("d: %w", errs.ErrLocked):      codes.FailedPrecondition,
		errs.ErrGenerationFailed:                 codes.Unavailable,
		context.DeadlineExceeded:                 codes.DeadlineExceeded,
		context.Canceled:                         codes.Canceled,
		errors.New("pq: connection reset"):       codes.Internal,
	}
	for in, want := range cases {
		require.Equal(t, want, status.Code(toStatus("op", in)), "error %v", in)
	}

	// internal details stay on the server
	st, _ := status.FromError(toStatus("op", errors.New("password=hunter2")))
	require.NotContains(t, st.Message(), "hunter2")

	// statuses pass through untouched
	orig := status.Error(codes.Aborted, "x")
	require.Equal(t, orig, toStatus("op", orig))
}
