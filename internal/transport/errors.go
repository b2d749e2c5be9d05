package transport

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"strings"
	"syscall"
)

// ErrorType represents the category of transport failure
type ErrorType int

const (
	// ErrTypeNetwork indicates a network-level error (unreachable host, reset, etc.)
	ErrTypeNetwork ErrorType = iota
	// ErrTypeTimeout indicates a request timeout
	ErrTypeTimeout
	// ErrTypeConnectionRefused indicates the adapter refused the connection
	ErrTypeConnectionRefused
	// ErrTypeDNS indicates a DNS resolution failure
	ErrTypeDNS
	// ErrTypeHTTP indicates a non-200 status code
	ErrTypeHTTP
	// ErrTypeCanceled indicates the caller's context ended the request
	ErrTypeCanceled
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
	case ErrTypeCanceled:
		return "Canceled"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// Error is a failure to exchange a request with the adapter
type Error struct {
	Type       ErrorType // Category of error
	Message    string    // Human-readable error message
	Path       string    // Request path
	StatusCode int       // HTTP status code (if applicable)
	Err        error     // Underlying error (if any)
	Retryable  bool      // Whether the request may be retried
}

// Error implements the error interface
func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Type, e.Message)
	if e.Path != "" {
		msg += " (" + e.Path + ")"
	}
	if e.Err != nil {
		msg += fmt.Sprintf(": %v", e.Err)
	}
	return msg
}

// Unwrap returns the underlying error for error chain inspection
func (e *Error) Unwrap() error {
	return e.Err
}

// ClassifyNetworkError analyzes a request error and returns a typed Error
func ClassifyNetworkError(err error, path string) *Error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.Canceled) {
		return &Error{Type: ErrTypeCanceled, Message: "Request canceled", Path: path, Err: err}
	}

	if os.IsTimeout(err) || errors.Is(err, context.DeadlineExceeded) {
		return &Error{Type: ErrTypeTimeout, Message: "Request timed out", Path: path, Err: err, Retryable: true}
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return &Error{
			Type:    ErrTypeDNS,
			Message: fmt.Sprintf("DNS resolution failed for %s", dnsErr.Name),
			Path:    path,
			Err:     err,
		}
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		if errors.Is(opErr.Err, syscall.ECONNREFUSED) {
			return &Error{Type: ErrTypeConnectionRefused, Message: "Adapter refused connection", Path: path, Err: err, Retryable: true}
		}
		if errors.Is(opErr.Err, syscall.EHOSTUNREACH) {
			return &Error{Type: ErrTypeNetwork, Message: "Host unreachable", Path: path, Err: err, Retryable: true}
		}
		if errors.Is(opErr.Err, syscall.ENETUNREACH) {
			return &Error{Type: ErrTypeNetwork, Message: "Network unreachable", Path: path, Err: err, Retryable: true}
		}
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != err {
		return ClassifyNetworkError(urlErr.Err, path)
	}

	return &Error{Type: ErrTypeNetwork, Message: "Network error occurred", Path: path, Err: err, Retryable: true}
}

// NewHTTPError creates an error for a non-200 response
func NewHTTPError(path string, statusCode int) *Error {
	return &Error{
		Type:       ErrTypeHTTP,
		Message:    fmt.Sprintf("unexpected status code: %d", statusCode),
		Path:       path,
		StatusCode: statusCode,
		Retryable:  statusCode >= 500,
	}
}

// AsError extracts a transport Error from an error chain
func AsError(err error) (*Error, bool) {
	var tErr *Error
	if errors.As(err, &tErr) {
		return tErr, true
	}
	return nil, false
}

// IsNetworkError checks if an error is a network error (including timeout, connection refused, DNS)
func IsNetworkError(err error) bool {
	tErr, ok := AsError(err)
	if !ok {
		return false
	}
	return tErr.Type == ErrTypeNetwork ||
		tErr.Type == ErrTypeTimeout ||
		tErr.Type == ErrTypeConnectionRefused ||
		tErr.Type == ErrTypeDNS
}

// IsHTTPError checks if an error is an HTTP status error
func IsHTTPError(err error) bool {
	tErr, ok := AsError(err)
	return ok && tErr.Type == ErrTypeHTTP
}

// IsRetryable checks if an error should be retried
func IsRetryable(err error) bool {
	tErr, ok := AsError(err)
	return ok && tErr.Retryable
}

// TroubleshootingHint returns user-facing advice for an error
func TroubleshootingHint(err error) []string {
	tErr, ok := AsError(err)
	if !ok {
		return nil
	}

	switch tErr.Type {
	case ErrTypeTimeout:
		return []string{
			"The adapter did not respond in time.",
			"Check that the air conditioner's wireless adapter is powered",
			"Try a longer --timeout",
		}
	case ErrTypeConnectionRefused:
		return []string{
			"The adapter refused the connection.",
			"Verify the host and port (the adapter listens on port 80)",
			"Power-cycle the indoor unit to restart the adapter",
		}
	case ErrTypeDNS:
		return []string{
			"Could not resolve the adapter hostname.",
			"Use the IP address instead, or run 'daikinctl scan'",
		}
	case ErrTypeHTTP:
		if tErr.StatusCode == 403 {
			return []string{
				"The adapter rejected the request (HTTP 403).",
				"Newer adapters require registration and HTTPS, which is not supported",
			}
		}
		return []string{fmt.Sprintf("The adapter returned HTTP %d.", tErr.StatusCode)}
	case ErrTypeCanceled:
		return nil
	default:
		return []string{
			"Network communication failed.",
			"Check that you are on the same network as the air conditioner",
			"Run 'daikinctl scan' to find the adapter's current address",
		}
	}
}

// ShortErrorMessage returns a concise, user-friendly error message
func ShortErrorMessage(err error) string {
	tErr, ok := AsError(err)
	if !ok {
		return err.Error()
	}

	switch tErr.Type {
	case ErrTypeTimeout:
		return "Adapter not responding (timeout)"
	case ErrTypeConnectionRefused:
		return "Adapter refused connection"
	case ErrTypeDNS:
		return "Cannot resolve adapter hostname"
	case ErrTypeHTTP:
		return fmt.Sprintf("Adapter error (HTTP %d)", tErr.StatusCode)
	case ErrTypeCanceled:
		return "Request canceled"
	default:
		return strings.TrimSuffix(tErr.Message, ".")
	}
}
