// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/packlink/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "not_linked_error",
			code:    errors.ErrNotLinked,
			message: "instance is not linked",
			wantStr: "[NOT_LINKED] instance is not linked",
		},
		{
			name:    "unknown_loader_error",
			code:    errors.ErrUnknownLoader,
			message: "no mod loader type found",
			wantStr: "[UNKNOWN_LOADER] no mod loader type found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Message != tt.message {
				t.Errorf("New() message = %q, want %q", err.Message, tt.message)
			}

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrAlreadyLinked, "folder %s already exists", "abc123")
	if err.Message != "folder abc123 already exists" {
		t.Errorf("Newf() message = %q", err.Message)
	}
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("permission denied")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrIO, "failed to write instance.cfg")

		if err.Code != errors.ErrIO {
			t.Errorf("Wrap() code = %v, want %v", err.Code, errors.ErrIO)
		}

		if err.Wrapped != baseErr {
			t.Error("Wrap() should preserve wrapped error")
		}

		wantStr := "[IO] failed to write instance.cfg: permission denied"
		if got := err.Error(); got != wantStr {
			t.Errorf("Error() = %q, want %q", got, wantStr)
		}
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		if err := errors.Wrap(nil, errors.ErrIO, "io"); err != nil {
			t.Error("Wrap(nil) should return nil")
		}
		if err := errors.Wrapf(nil, errors.ErrIO, "io %d", 1); err != nil {
			t.Error("Wrapf(nil) should return nil")
		}
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrInvalidHostRoot, "invalid host root").
		WithDetail("path", "/test/path").
		WithDetail("key", "InstanceDir")

	if err.Details["path"] != "/test/path" {
		t.Errorf("WithDetail() path = %v, want %v", err.Details["path"], "/test/path")
	}

	if got := errors.GetErrorDetails(err)["key"]; got != "InstanceDir" {
		t.Errorf("GetErrorDetails() key = %v, want InstanceDir", got)
	}

	if errors.GetErrorDetails(stderrors.New("plain")) != nil {
		t.Error("GetErrorDetails() should be nil for standard errors")
	}
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrNotLinked, "error 1")
	err2 := errors.New(errors.ErrNotLinked, "error 2")
	err3 := errors.New(errors.ErrAlreadyLinked, "error 3")

	t.Run("same_code_is_equal", func(t *testing.T) {
		if !err1.Is(err2) {
			t.Error("Is() should return true for same code")
		}
	})

	t.Run("different_code_not_equal", func(t *testing.T) {
		if err1.Is(err3) {
			t.Error("Is() should return false for different codes")
		}
	})

	t.Run("works_with_errors_Is", func(t *testing.T) {
		if !stderrors.Is(err1, err2) {
			t.Error("errors.Is() should work with PacklinkError")
		}
	})
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{
			name:     "matching_code",
			err:      errors.New(errors.ErrHostConfigNotFound, "missing"),
			code:     errors.ErrHostConfigNotFound,
			expected: true,
		},
		{
			name:     "different_code",
			err:      errors.New(errors.ErrHostConfigNotFound, "missing"),
			code:     errors.ErrInvalidHostRoot,
			expected: false,
		},
		{
			name:     "wrapped_error",
			err:      errors.Wrap(stderrors.New("base"), errors.ErrIO, "denied"),
			code:     errors.ErrIO,
			expected: true,
		},
		{
			name:     "non_packlink_error",
			err:      stderrors.New("standard error"),
			code:     errors.ErrIO,
			expected: false,
		},
		{
			name:     "nil_error",
			err:      nil,
			code:     errors.ErrIO,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.IsErrorCode(tt.err, tt.code); got != tt.expected {
				t.Errorf("IsErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected errors.ErrorCode
	}{
		{
			name:     "packlink_error",
			err:      errors.New(errors.ErrInstanceNotFound, "instance not found"),
			expected: errors.ErrInstanceNotFound,
		},
		{
			name:     "standard_error",
			err:      stderrors.New("standard error"),
			expected: errors.ErrUnknown,
		},
		{
			name:     "nil_error",
			err:      nil,
			expected: errors.ErrUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.GetErrorCode(tt.err); got != tt.expected {
				t.Errorf("GetErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestErrorChaining(t *testing.T) {
	rootCause := stderrors.New("root cause")
	ioErr := errors.Wrap(rootCause, errors.ErrIO, "cannot read file")
	configErr := errors.Wrap(ioErr, errors.ErrConfigLoad, "failed to load config")

	t.Run("top_level_has_correct_code", func(t *testing.T) {
		if !errors.IsErrorCode(configErr, errors.ErrConfigLoad) {
			t.Error("Top level should have ErrConfigLoad code")
		}
	})

	t.Run("can_find_middle_error", func(t *testing.T) {
		var plErr *errors.PacklinkError
		if stderrors.As(configErr.Unwrap(), &plErr) {
			if !errors.IsErrorCode(plErr, errors.ErrIO) {
				t.Error("Middle error should have ErrIO code")
			}
		}
	})

	t.Run("can_find_root_cause", func(t *testing.T) {
		if !stderrors.Is(configErr, rootCause) {
			t.Error("Should find root cause with errors.Is")
		}
	})
}
