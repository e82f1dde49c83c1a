package ocr

import (
	"errors"
	"fmt"
)

// ErrorKind tags a provider failure for the processor's retry-vs-abort
// decision. The two kinds must never be collapsed: the pipeline's failure
// handling depends on the distinction.
type ErrorKind int

const (
	// KindRetryable covers transient failures: HTTP 429, HTTP >= 500,
	// transport errors, timeouts, and unparsable provider responses.
	KindRetryable ErrorKind = iota
	// KindPermanent covers failures a retry cannot fix: missing credentials,
	// HTTP 4xx other than 429, and provider-reported processing errors.
	KindPermanent
)

func (k ErrorKind) String() string {
	if k == KindPermanent {
		return "permanent"
	}
	return "retryable"
}

// Error is the tagged failure returned by the extraction client.
type Error struct {
	Kind ErrorKind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("ocr %s (%s): %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func retryable(op string, err error) error {
	return &Error{Kind: KindRetryable, Op: op, Err: err}
}

func permanent(op string, err error) error {
	return &Error{Kind: KindPermanent, Op: op, Err: err}
}

// IsRetryable reports whether err carries the retryable OCR tag.
func IsRetryable(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindRetryable
}

// IsPermanent reports whether err carries the permanent OCR tag.
func IsPermanent(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindPermanent
}
