package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestNewFormatsMessage(t *testing.T) {
	err := New(ErrCodeInvalidName, "invalid layout name: %s", "../etc")

	if err.Code != ErrCodeInvalidName {
		t.Errorf("Code = %s, want %s", err.Code, ErrCodeInvalidName)
	}
	want := "INVALID_NAME: invalid layout name: ../etc"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := Wrap(ErrCodeStorage, cause, "failed to write layout %s", "abc")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped error should match its cause via errors.Is")
	}
	want := "STORAGE_ERROR: failed to write layout abc: disk full"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestIsMatchesCode(t *testing.T) {
	err := New(ErrCodeLayoutNotFound, "layout %s not found", "abc")

	if !Is(err, ErrCodeLayoutNotFound) {
		t.Error("Is should match the error's own code")
	}
	if Is(err, ErrCodeStorage) {
		t.Error("Is should not match a different code")
	}
	if Is(fmt.Errorf("plain"), ErrCodeStorage) {
		t.Error("Is should not match a plain error")
	}

	// Code matching works through wrapping layers.
	wrapped := fmt.Errorf("outer: %w", err)
	if !Is(wrapped, ErrCodeLayoutNotFound) {
		t.Error("Is should unwrap to find the code")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeDecode, "bad json")); got != ErrCodeDecode {
		t.Errorf("GetCode = %s, want %s", got, ErrCodeDecode)
	}
	if got := GetCode(fmt.Errorf("plain")); got != "" {
		t.Errorf("GetCode of plain error = %s, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidConfig, "columns must be positive")
	if got := UserMessage(err); got != "columns must be positive" {
		t.Errorf("UserMessage = %q", got)
	}
	if got := UserMessage(fmt.Errorf("plain failure")); got != "plain failure" {
		t.Errorf("UserMessage of plain error = %q", got)
	}
}
