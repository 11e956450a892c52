package anagram

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"strings"
	"syscall"
)

// ErrorType represents the category of error that occurred
type ErrorType int

const (
	// ErrTypeNetwork indicates a network-level error with no response
	ErrTypeNetwork ErrorType = iota
	// ErrTypeTimeout indicates the request timed out or its context expired
	ErrTypeTimeout
	// ErrTypeConnectionRefused indicates nothing is listening at the endpoint
	ErrTypeConnectionRefused
	// ErrTypeDNS indicates the endpoint host could not be resolved
	ErrTypeDNS
	// ErrTypeHTTP indicates the server answered with a non-2xx status
	ErrTypeHTTP
	// ErrTypeParse indicates a success response that could not be decoded
	ErrTypeParse
)

// Alert text shown to the user for failed submissions
const (
	AlertPrefix     = "Error: "
	FallbackMessage = "Something went wrong."
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeNetwork:
		return "Network Error"
	case ErrTypeTimeout:
		return "Timeout"
	case ErrTypeConnectionRefused:
		return "Connection Refused"
	case ErrTypeDNS:
		return "DNS Error"
	case ErrTypeHTTP:
		return "Server Error"
	case ErrTypeParse:
		return "Decode Error"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// Error represents a failed call to the anagram service
type Error struct {
	Type       ErrorType // Category of error
	Message    string    // Internal description
	StatusCode int       // HTTP status code (HTTP errors only)
	Detail     string    // Server-supplied detail message, if any
	Err        error     // Underlying error (if any)
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Type.String())
	b.WriteString(": ")
	b.WriteString(e.Message)
	if e.Detail != "" {
		b.WriteString(" (detail: ")
		b.WriteString(e.Detail)
		b.WriteString(")")
	}
	if e.Err != nil {
		fmt.Fprintf(&b, " (caused by: %v)", e.Err)
	}
	return b.String()
}

// Unwrap returns the underlying error for error chain inspection
func (e *Error) Unwrap() error {
	return e.Err
}

// ClassifyNetworkError maps a transport error onto a specific error type
func ClassifyNetworkError(err error) *Error {
	if err == nil {
		return nil
	}

	if os.IsTimeout(err) || errors.Is(err, os.ErrDeadlineExceeded) {
		return &Error{Type: ErrTypeTimeout, Message: "request timed out", Err: err}
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return &Error{
			Type:    ErrTypeDNS,
			Message: fmt.Sprintf("DNS resolution failed for %s", dnsErr.Name),
			Err:     err,
		}
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) && errors.Is(opErr.Err, syscall.ECONNREFUSED) {
		return &Error{Type: ErrTypeConnectionRefused, Message: "connection refused", Err: err}
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil && urlErr.Err != err {
		return ClassifyNetworkError(urlErr.Err)
	}

	return &Error{Type: ErrTypeNetwork, Message: "network error occurred", Err: err}
}

// NewNetworkError creates a network-level error with automatic classification
func NewNetworkError(message string, err error) *Error {
	classified := ClassifyNetworkError(err)
	if classified == nil {
		return &Error{Type: ErrTypeNetwork, Message: message}
	}
	classified.Message = message
	return classified
}

// NewHTTPError creates an error for a non-2xx response
func NewHTTPError(statusCode int, detail string) *Error {
	return &Error{
		Type:       ErrTypeHTTP,
		Message:    fmt.Sprintf("unexpected status code: %d", statusCode),
		StatusCode: statusCode,
		Detail:     detail,
	}
}

// NewParseError creates an error for an undecodable success response
func NewParseError(message string, err error) *Error {
	return &Error{Type: ErrTypeParse, Message: message, Err: err}
}

func typeOf(err error) (ErrorType, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Type, true
	}
	return 0, false
}

// IsNetworkError reports whether err is a transport failure with no response
func IsNetworkError(err error) bool {
	t, ok := typeOf(err)
	return ok && (t == ErrTypeNetwork || t == ErrTypeTimeout ||
		t == ErrTypeConnectionRefused || t == ErrTypeDNS)
}

// IsHTTPError reports whether err is a non-2xx response
func IsHTTPError(err error) bool {
	t, ok := typeOf(err)
	return ok && t == ErrTypeHTTP
}

// IsParseError reports whether err is a decode failure
func IsParseError(err error) bool {
	t, ok := typeOf(err)
	return ok && t == ErrTypeParse
}

// DetailOf returns the server-supplied detail message carried by err, or "".
func DetailOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Detail
	}
	return ""
}

// AlertMessage returns the text shown to the user for a failed submission:
// the server's detail when present, otherwise the generic fallback.
func AlertMessage(err error) string {
	if detail := DetailOf(err); detail != "" {
		return AlertPrefix + detail
	}
	return AlertPrefix + FallbackMessage
}

// TroubleshootingHints returns short suggestions for the CLI error box
func TroubleshootingHints(err error) []string {
	t, ok := typeOf(err)
	if !ok {
		return nil
	}

	switch t {
	case ErrTypeConnectionRefused:
		return []string{
			"Check that the anagram service is running",
			"Verify the endpoint port (default is 8000)",
			"Use 'anagram-form discover' to find services on the network",
		}
	case ErrTypeDNS:
		return []string{
			"Check the endpoint hostname",
			"Try the IP address instead of the hostname",
		}
	case ErrTypeTimeout:
		return []string{
			"The service did not answer in time",
			"Increase --timeout or omit it to wait indefinitely",
		}
	case ErrTypeNetwork:
		return []string{
			"Check your network connection",
			"Verify the endpoint URL with 'anagram-form config show'",
		}
	case ErrTypeHTTP:
		var e *Error
		errors.As(err, &e)
		if e.StatusCode >= 500 {
			return []string{"The service failed to generate anagrams, try again later"}
		}
		return []string{"The service rejected the request, check the field values"}
	case ErrTypeParse:
		return []string{
			"The service answered with an unexpected body",
			"Verify the endpoint points at an anagram service",
		}
	}
	return nil
}
