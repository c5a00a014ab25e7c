package helper_err

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"
)

func TestNewInvalidArgumentError(t *testing.T) {
	t.Parallel()
	err := NewInvalidArgumentError("bytes", "must not be nil", "pass an empty slice instead")

	if !IsInvalidArgument(err) {
		t.Fatal("expected InvalidArgument category")
	}
	if IsIOFailure(err) {
		t.Error("InvalidArgument must not be reported as IOFailure")
	}
	msg := err.Error()
	if !strings.Contains(msg, `"bytes"`) {
		t.Errorf("message should name the argument, got %q", msg)
	}
	if !strings.Contains(msg, "1. pass an empty slice instead") {
		t.Errorf("message should list remediation, got %q", msg)
	}
}

func TestNewIOFailureError(t *testing.T) {
	t.Parallel()
	err := NewIOFailureError("probe /tmp/x", fs.ErrPermission)

	if !IsIOFailure(err) {
		t.Fatal("expected IOFailure category")
	}
	if !errors.Is(err, fs.ErrPermission) {
		t.Error("cause should be reachable through errors.Is")
	}
}

func TestCategoryOf(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		err    error
		want   ErrorCategory
		wantOK bool
	}{
		{name: "nil", err: nil, wantOK: false},
		{name: "plain", err: errors.New("boom"), wantOK: false},
		{name: "invalid_argument", err: NewInvalidArgumentError("dir", "required"), want: CategoryInvalidArgument, wantOK: true},
		{name: "wrapped_io", err: fmt.Errorf("outer: %w", NewIOFailureError("stat", errors.New("eio"))), want: CategoryIOFailure, wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := CategoryOf(tt.err)
			if ok != tt.wantOK {
				t.Fatalf("CategoryOf() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("CategoryOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestErrorCategoryString(t *testing.T) {
	t.Parallel()
	if CategoryInvalidArgument.String() != "InvalidArgument" {
		t.Errorf("got %q", CategoryInvalidArgument.String())
	}
	if CategoryIOFailure.String() != "IOFailure" {
		t.Errorf("got %q", CategoryIOFailure.String())
	}
	if ErrorCategory(9).String() != "ErrorCategory(9)" {
		t.Errorf("got %q", ErrorCategory(9).String())
	}
}
