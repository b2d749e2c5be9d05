package transport

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
	"syscall"
	"testing"
)

type timeoutError struct{}

func (e *timeoutError) Error() string   { return "i/o timeout" }
func (e *timeoutError) Timeout() bool   { return true }
func (e *timeoutError) Temporary() bool { return true }

func TestClassifyNetworkError(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		wantType      ErrorType
		wantRetryable bool
	}{
		{
			name: "timeout",
			err: &url.Error{Op: "Get", URL: "http://192.168.1.20", Err: &net.OpError{
				Op: "dial", Net: "tcp", Err: &timeoutError{},
			}},
			wantType:      ErrTypeTimeout,
			wantRetryable: true,
		},
		{
			name: "connection refused",
			err: &url.Error{Op: "Get", URL: "http://192.168.1.20", Err: &net.OpError{
				Op: "dial", Net: "tcp", Err: syscall.ECONNREFUSED,
			}},
			wantType:      ErrTypeConnectionRefused,
			wantRetryable: true,
		},
		{
			name:          "dns",
			err:           &url.Error{Op: "Get", URL: "http://aircon.invalid", Err: &net.DNSError{Name: "aircon.invalid", Err: "no such host"}},
			wantType:      ErrTypeDNS,
			wantRetryable: false,
		},
		{
			name: "host unreachable",
			err: &net.OpError{
				Op: "dial", Net: "tcp", Err: syscall.EHOSTUNREACH,
			},
			wantType:      ErrTypeNetwork,
			wantRetryable: true,
		},
		{
			name:          "context canceled",
			err:           &url.Error{Op: "Get", URL: "http://192.168.1.20", Err: context.Canceled},
			wantType:      ErrTypeCanceled,
			wantRetryable: false,
		},
		{
			name:          "deadline exceeded",
			err:           fmt.Errorf("wrapped: %w", context.DeadlineExceeded),
			wantType:      ErrTypeTimeout,
			wantRetryable: true,
		},
		{
			name:          "generic",
			err:           errors.New("connection reset"),
			wantType:      ErrTypeNetwork,
			wantRetryable: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyNetworkError(tt.err, "/common/basic_info")

			if got == nil {
				t.Fatal("ClassifyNetworkError() returned nil")
			}
			if got.Type != tt.wantType {
				t.Errorf("Type = %v, want %v", got.Type, tt.wantType)
			}
			if got.Retryable != tt.wantRetryable {
				t.Errorf("Retryable = %v, want %v", got.Retryable, tt.wantRetryable)
			}
			if got.Path != "/common/basic_info" {
				t.Errorf("Path = %q", got.Path)
			}
		})
	}
}

func TestClassifyNetworkError_Nil(t *testing.T) {
	if ClassifyNetworkError(nil, "") != nil {
		t.Error("ClassifyNetworkError(nil) should return nil")
	}
}

func TestNewHTTPError(t *testing.T) {
	if NewHTTPError("/", 404).Retryable {
		t.Error("404 should not be retryable")
	}
	if !NewHTTPError("/", 502).Retryable {
		t.Error("502 should be retryable")
	}
}

func TestError_Message(t *testing.T) {
	err := &Error{
		Type:    ErrTypeTimeout,
		Message: "Request timed out",
		Path:    "/aircon/get_sensor_info",
		Err:     errors.New("i/o timeout"),
	}

	want := "Timeout: Request timed out (/aircon/get_sensor_info): i/o timeout"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestAsError_Wrapped(t *testing.T) {
	inner := NewHTTPError("/", 500)
	wrapped := fmt.Errorf("status failed: %w", inner)

	got, ok := AsError(wrapped)
	if !ok || got != inner {
		t.Errorf("AsError() = (%v, %v), want inner error", got, ok)
	}

	if !IsRetryable(wrapped) {
		t.Error("IsRetryable() should see through wrapping")
	}
}

func TestTroubleshootingHint(t *testing.T) {
	if TroubleshootingHint(errors.New("plain")) != nil {
		t.Error("non-transport errors should have no hint")
	}

	hint := TroubleshootingHint(NewHTTPError("/", 403))
	if len(hint) == 0 || !strings.Contains(hint[0], "403") {
		t.Errorf("403 hint = %v", hint)
	}

	timeout := &Error{Type: ErrTypeTimeout}
	if len(TroubleshootingHint(timeout)) == 0 {
		t.Error("timeout should have a hint")
	}
}

func TestShortErrorMessage(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{&Error{Type: ErrTypeTimeout}, "Adapter not responding (timeout)"},
		{NewHTTPError("/", 503), "Adapter error (HTTP 503)"},
		{&Error{Type: ErrTypeNetwork, Message: "Host unreachable"}, "Host unreachable"},
		{errors.New("E1"), "E1"},
	}

	for _, tt := range tests {
		if got := ShortErrorMessage(tt.err); got != tt.want {
			t.Errorf("ShortErrorMessage(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}
