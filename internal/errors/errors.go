// Package errors defines the error taxonomy shared by the fetch layer.
// The Kind of an error decides whether a failed page fetch is retried.
package errors

import (
	stderrors "errors"
	"fmt"

	goerrors "github.com/go-errors/errors"
)

type Kind string

const (
	// KindTransient covers timeouts, transient 5xx and navigation
	// failures. Retried with backoff.
	KindTransient Kind = "TRANSIENT"
	// KindPermanent covers malformed content and non-rate-limit 4xx.
	// Never retried.
	KindPermanent Kind = "PERMANENT"
	// KindRateLimited marks 429-style rejections. Retried after backoff.
	KindRateLimited Kind = "RATE_LIMITED"
	// KindCancelled marks context cancellation/deadline of the run itself.
	KindCancelled Kind = "CANCELLED"
)

type SourceError struct {
	Kind    Kind
	Message string
	Err     error
	Stack   []byte
}

func (e *SourceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

func (e *SourceError) StackTrace() []byte {
	return e.Stack
}

func New(kind Kind, message string, err error) *SourceError {
	var stack []byte
	if err != nil {
		if stackErr, ok := err.(*goerrors.Error); ok {
			stack = stackErr.Stack()
		} else {
			stack = goerrors.Wrap(err, 2).Stack()
		}
	} else {
		stack = goerrors.New(message).Stack()
	}

	return &SourceError{
		Kind:    kind,
		Message: message,
		Err:     err,
		Stack:   stack,
	}
}

func Transient(message string, err error) *SourceError {
	return New(KindTransient, message, err)
}

func Permanent(message string, err error) *SourceError {
	return New(KindPermanent, message, err)
}

func RateLimited(message string, err error) *SourceError {
	return New(KindRateLimited, message, err)
}

func Cancelled(message string, err error) *SourceError {
	return New(KindCancelled, message, err)
}

// Retryable reports whether an error is worth another attempt. Unknown
// errors are treated as permanent so malformed-content failures surface
// immediately instead of burning the retry budget.
func Retryable(err error) bool {
	var se *SourceError
	if stderrors.As(err, &se) {
		return se.Kind == KindTransient || se.Kind == KindRateLimited
	}
	return false
}
