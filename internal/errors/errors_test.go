package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestRetryable(t *testing.T) {
	testCases := []struct {
		name      string
		err       error
		retryable bool
	}{
		{"transient", Transient("timeout", nil), true},
		{"rate limited", RateLimited("429", nil), true},
		{"permanent", Permanent("bad html", nil), false},
		{"cancelled", Cancelled("ctx done", nil), false},
		{"plain error", stderrors.New("boom"), false},
		{"nil", nil, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Retryable(tc.err); got != tc.retryable {
				t.Errorf("Retryable(%v) = %v; expected %v", tc.err, got, tc.retryable)
			}
		})
	}
}

func TestRetryableSeesThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("page 3: %w", Transient("reset", nil))
	if !Retryable(wrapped) {
		t.Error("expected wrapped transient error to stay retryable")
	}
}

func TestSourceErrorMessage(t *testing.T) {
	err := Transient("fetching page", stderrors.New("connection reset"))
	msg := err.Error()
	if msg != "TRANSIENT: fetching page: connection reset" {
		t.Errorf("unexpected message: %q", msg)
	}

	bare := Permanent("empty body", nil)
	if bare.Error() != "PERMANENT: empty body" {
		t.Errorf("unexpected message: %q", bare.Error())
	}
}

func TestSourceErrorUnwrap(t *testing.T) {
	cause := stderrors.New("root cause")
	err := Transient("wrapper", cause)
	if !stderrors.Is(err, cause) {
		t.Error("expected errors.Is to reach the cause")
	}
}

func TestSourceErrorCarriesStack(t *testing.T) {
	if len(Transient("x", nil).Stack) == 0 {
		t.Error("expected a captured stack trace")
	}
}
