package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestClassify_Nil(t *testing.T) {
	require.NoError(t, Classify(nil))
}

func TestClassify_Causes(t *testing.T) {
	cases := []struct {
		cause Cause
		code  codes.Code
	}{
		{CauseInvalidUpload, codes.InvalidArgument},
		{CauseIdentityRequired, codes.InvalidArgument},
		{CauseEmailTaken, codes.InvalidArgument},
		{CauseExtractionFailed, codes.FailedPrecondition},
		{CauseNoTextExtracted, codes.FailedPrecondition},
		{CauseSummarizationUnavailable, codes.Unavailable},
		{CauseAccessDenied, codes.PermissionDenied},
		{CauseNotFound, codes.NotFound},
		{CauseInternal, codes.Internal},
	}
	for _, tc := range cases {
		t.Run(string(tc.cause), func(t *testing.T) {
			err := Classify(NewFault(tc.cause, "boom"))
			st, ok := status.FromError(err)
			require.True(t, ok)
			require.Equal(t, tc.code, st.Code())
		})
	}
}

func TestClassify_UnclassifiedIsInternal(t *testing.T) {
	err := Classify(errors.New("raw failure"))
	st, ok := status.FromError(err)
	require.True(t, ok)
	require.Equal(t, codes.Internal, st.Code())
	// raw error text must not leak to the caller
	require.Equal(t, "internal error", st.Message())
}

func TestClassify_WrappedFault(t *testing.T) {
	inner := WrapFault(CauseNotFound, "no such analysis", errors.New("sql: no rows"))
	err := Classify(fmt.Errorf("get analysis: %w", inner))
	st, ok := status.FromError(err)
	require.True(t, ok)
	require.Equal(t, codes.NotFound, st.Code())
	require.Equal(t, "no such analysis", st.Message())
}

func TestCauseOf(t *testing.T) {
	require.Equal(t, CauseEmailTaken, CauseOf(NewFault(CauseEmailTaken, "taken")))
	require.Equal(t, CauseInternal, CauseOf(errors.New("plain")))
	wrapped := fmt.Errorf("outer: %w", NewFault(CauseAccessDenied, "nope"))
	require.Equal(t, CauseAccessDenied, CauseOf(wrapped))
}

func TestFault_ErrorString(t *testing.T) {
	f := WrapFault(CauseExtractionFailed, "ocr failed", errors.New("exit 1"))
	require.Contains(t, f.Error(), "EXTRACTION_FAILED")
	require.Contains(t, f.Error(), "exit 1")
	require.ErrorIs(t, f, f.Err)
}
