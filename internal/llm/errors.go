package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrorKind classifies a provider failure.
type ErrorKind int

const (
	// KindUnavailable covers network failures and 5xx responses.
	KindUnavailable ErrorKind = iota
	// KindRateLimited is an HTTP 429 from the vendor.
	KindRateLimited
	// KindRejected is a 4xx other than 408 and 429: bad key, bad request.
	KindRejected
	// KindInvalidResponse means the output did not match the schema.
	KindInvalidResponse
	// KindTruncated means generation stopped at MaxTokens.
	KindTruncated
)

func (k ErrorKind) String() string {
	switch k {
	case KindUnavailable:
		return "unavailable"
	case KindRateLimited:
		return "rate limited"
	case KindRejected:
		return "rejected"
	case KindInvalidResponse:
		return "invalid response"
	case KindTruncated:
		return "truncated"
	default:
		return "unknown"
	}
}

// Error is the error type returned by every provider adapter.
type Error struct {
	Kind     ErrorKind
	Provider string

	// Status is the vendor's HTTP status, when there was one.
	Status int

	// RetryAfter is the vendor's requested backoff for rate limits.
	RetryAfter time.Duration

	// Content is the raw model output for invalid or truncated responses.
	Content json.RawMessage

	Err error
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Provider != "" {
		msg = e.Provider + ": " + msg
	}
	if e.Status != 0 {
		msg = fmt.Sprintf("%s (HTTP %d)", msg, e.Status)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

// classifyStatus maps a vendor HTTP status to an *Error.
func classifyStatus(provider string, status int, err error) *Error {
	e := &Error{Provider: provider, Status: status, Err: err}
	switch {
	case status == http.StatusTooManyRequests:
		e.Kind = KindRateLimited
	case status == http.StatusRequestTimeout, status >= 500, status == 0:
		e.Kind = KindUnavailable
	case status >= 400:
		e.Kind = KindRejected
	default:
		e.Kind = KindUnavailable
	}
	return e
}
