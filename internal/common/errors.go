package common

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Cause is the closed set of failure causes raised by the core.
// Components raise causes, never transport categories; Classify is the
// single place that decides the externally observable severity.
type Cause string

const (
	CauseInvalidUpload            Cause = "INVALID_UPLOAD"
	CauseIdentityRequired         Cause = "IDENTITY_REQUIRED"
	CauseEmailTaken               Cause = "EMAIL_TAKEN"
	CauseExtractionFailed         Cause = "EXTRACTION_FAILED"
	CauseNoTextExtracted          Cause = "NO_TEXT_EXTRACTED"
	CauseSummarizationUnavailable Cause = "SUMMARIZATION_UNAVAILABLE"
	CauseAccessDenied             Cause = "ACCESS_DENIED"
	CauseNotFound                 Cause = "NOT_FOUND"
	CauseInternal                 Cause = "INTERNAL"
)

// Fault is a classified application error.
type Fault struct {
	Cause   Cause
	Message string
	Err     error
}

func (f *Fault) Error() string {
	if f.Err != nil {
		return fmt.Sprintf("%s: %s: %v", f.Cause, f.Message, f.Err)
	}
	return fmt.Sprintf("%s: %s", f.Cause, f.Message)
}

func (f *Fault) Unwrap() error {
	return f.Err
}

// NewFault creates a Fault without an underlying error.
func NewFault(cause Cause, message string) *Fault {
	return &Fault{Cause: cause, Message: message}
}

// WrapFault attaches a cause to an underlying error.
func WrapFault(cause Cause, message string, err error) *Fault {
	return &Fault{Cause: cause, Message: message, Err: err}
}

// CauseOf extracts the cause from err. Unclassified errors are internal.
func CauseOf(err error) Cause {
	var f *Fault
	if errors.As(err, &f) {
		return f.Cause
	}
	return CauseInternal
}

// Classify translates a failure cause into the externally visible gRPC
// status. Handlers call this exactly once at the request boundary; the
// switch is exhaustive over the taxonomy above.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	var f *Fault
	if !errors.As(err, &f) {
		return status.Error(codes.Internal, "internal error")
	}
	switch f.Cause {
	case CauseInvalidUpload, CauseIdentityRequired, CauseEmailTaken:
		return status.Error(codes.InvalidArgument, f.Message)
	case CauseExtractionFailed, CauseNoTextExtracted:
		// well-formed but unusable input; the caller should re-scan,
		// not re-submit the same bytes
		return status.Error(codes.FailedPrecondition, f.Message)
	case CauseSummarizationUnavailable:
		// transient external failure; the one category worth retrying
		return status.Error(codes.Unavailable, f.Message)
	case CauseAccessDenied:
		return status.Error(codes.PermissionDenied, f.Message)
	case CauseNotFound:
		return status.Error(codes.NotFound, f.Message)
	default:
		return status.Error(codes.Internal, "internal error")
	}
}
