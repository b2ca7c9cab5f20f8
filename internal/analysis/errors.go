package analysis

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"syscall"
)

// ErrorType represents the category of error that occurred
type ErrorType int

const (
	// ErrTypeNetwork indicates a network-level error that is not more specifically classified
	ErrTypeNetwork ErrorType = iota
	// ErrTypeTimeout indicates the request exceeded the client timeout
	ErrTypeTimeout
	// ErrTypeConnectionRefused indicates nothing is listening at the service address
	ErrTypeConnectionRefused
	// ErrTypeDNS indicates the service hostname could not be resolved
	ErrTypeDNS
	// ErrTypeHTTP indicates a non-2xx status code
	ErrTypeHTTP
	// ErrTypeParse indicates a response body that is not valid JSON
	ErrTypeParse
	// ErrTypeValidation indicates a JSON body that does not match the result schema
	ErrTypeValidation
	// ErrTypeCanceled indicates the caller canceled the request
	ErrTypeCanceled
	// ErrTypeUnknown indicates an unknown or unexpected error
	ErrTypeUnknown
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
		return "HTTP Error"
	case ErrTypeParse:
		return "Parse Error"
	case ErrTypeValidation:
		return "Validation Error"
	case ErrTypeCanceled:
		return "Canceled"
	case ErrTypeUnknown:
		return "Unknown Error"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// Error represents a failed exchange with the analysis service
type Error struct {
	Type       ErrorType // Category of error
	Message    string    // Human-readable error message
	StatusCode int       // HTTP status code (if applicable)
	Endpoint   string    // Request URL (for context)
	Err        error     // Underlying error (if any)
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error for error chain inspection
func (e *Error) Unwrap() error {
	return e.Err
}

// classifyTransportError maps an error returned by http.Client.Do to a typed Error.
func classifyTransportError(err error, endpoint string) *Error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.Canceled) {
		return &Error{Type: ErrTypeCanceled, Message: "request canceled", Endpoint: endpoint, Err: err}
	}

	if errors.Is(err, context.DeadlineExceeded) || os.IsTimeout(err) {
		return &Error{Type: ErrTypeTimeout, Message: "request timed out", Endpoint: endpoint, Err: err}
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return &Error{
			Type:     ErrTypeDNS,
			Message:  fmt.Sprintf("DNS resolution failed for %s", dnsErr.Name),
			Endpoint: endpoint,
			Err:      err,
		}
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) && errors.Is(opErr.Err, syscall.ECONNREFUSED) {
		return &Error{Type: ErrTypeConnectionRefused, Message: "service refused connection", Endpoint: endpoint, Err: err}
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != err {
		if inner := classifyTransportError(urlErr.Err, endpoint); inner.Type != ErrTypeNetwork {
			return inner
		}
	}

	return &Error{Type: ErrTypeNetwork, Message: "network error occurred", Endpoint: endpoint, Err: err}
}

// NewHTTPError creates an error for a non-2xx response
func NewHTTPError(statusCode int, endpoint string) *Error {
	return &Error{
		Type:       ErrTypeHTTP,
		Message:    fmt.Sprintf("unexpected status code: %d", statusCode),
		StatusCode: statusCode,
		Endpoint:   endpoint,
	}
}

// NewParseError creates a parsing error
func NewParseError(message string, err error) *Error {
	return &Error{Type: ErrTypeParse, Message: message, Err: err}
}

// NewValidationError creates a schema validation error
func NewValidationError(message string) *Error {
	return &Error{Type: ErrTypeValidation, Message: message}
}

func errorType(err error) (ErrorType, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Type, true
	}
	return ErrTypeUnknown, false
}

// IsNetworkError checks if an error is a transport failure (including timeout, connection refused and DNS)
func IsNetworkError(err error) bool {
	t, ok := errorType(err)
	return ok && (t == ErrTypeNetwork || t == ErrTypeTimeout || t == ErrTypeConnectionRefused || t == ErrTypeDNS)
}

// IsHTTPError checks if an error is a non-2xx response
func IsHTTPError(err error) bool {
	t, ok := errorType(err)
	return ok && t == ErrTypeHTTP
}

// IsParseError checks if an error is a parse error
func IsParseError(err error) bool {
	t, ok := errorType(err)
	return ok && t == ErrTypeParse
}

// IsValidationError checks if an error is a schema validation error
func IsValidationError(err error) bool {
	t, ok := errorType(err)
	return ok && t == ErrTypeValidation
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.StatusCode
	}
	return 0
}

// ShortMessage returns a concise, user-friendly error message
func ShortMessage(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return err.Error()
	}

	switch e.Type {
	case ErrTypeTimeout:
		return "Analysis service not responding (timeout)"
	case ErrTypeConnectionRefused:
		return "Analysis service refused connection - is it running?"
	case ErrTypeDNS:
		return "Cannot resolve analysis service hostname"
	case ErrTypeNetwork:
		return "Network error - check connection"
	case ErrTypeHTTP:
		return fmt.Sprintf("Analysis service error (HTTP %d)", e.StatusCode)
	case ErrTypeParse:
		return "Analysis service returned an unreadable response"
	case ErrTypeValidation:
		return "Analysis service returned an invalid result: " + e.Message
	case ErrTypeCanceled:
		return "Analysis canceled"
	default:
		return e.Message
	}
}

// TroubleshootingHints returns user-facing advice for an error
func TroubleshootingHints(err error) []string {
	var e *Error
	if !errors.As(err, &e) {
		return nil
	}

	switch e.Type {
	case ErrTypeTimeout:
		return []string{
			"Check that the analysis service is running",
			"Try increasing --timeout",
		}
	case ErrTypeConnectionRefused:
		return []string{
			"Start the analysis service or fix the port in --api-url",
			"Verify the base URL with 'pwcheck config show'",
		}
	case ErrTypeDNS:
		return []string{
			"Check the hostname in --api-url",
			"Use an IP address if DNS is unavailable",
		}
	case ErrTypeNetwork:
		return []string{"Check your network connection"}
	case ErrTypeHTTP:
		if e.StatusCode >= 500 {
			return []string{
				"The analysis service failed internally",
				"Check the service logs and try again",
			}
		}
		if e.StatusCode == 404 {
			return []string{"The base URL may point at the wrong service (expected /check_password)"}
		}
		return []string{"The service rejected the request"}
	case ErrTypeParse, ErrTypeValidation:
		return []string{
			"The base URL may point at a different service",
			"Check that the service version matches this client",
		}
	default:
		return nil
	}
}
