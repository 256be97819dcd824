package main

import (
	"errors"
	"fmt"
	"testing"

	"pgregory.net/rapid"
)

func TestServiceError_ErrorFormat(t *testing.T) {
	tests := []struct {
		name      string
		service   string
		operation string
		err       error
		want      string
	}{
		{
			name:      "render failure",
			service:   "Deck",
			operation: "Render",
			err:       fmt.Errorf("unknown font"),
			want:      "[Deck.Render] unknown font",
		},
		{
			name:      "empty service name",
			service:   "",
			operation: "Write",
			err:       fmt.Errorf("disk full"),
			want:      "[.Write] disk full",
		},
		{
			name:      "empty operation name",
			service:   "Export",
			operation: "",
			err:       fmt.Errorf("no slides"),
			want:      "[Export.] no slides",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			se := &ServiceError{Service: tt.service, Operation: tt.operation, Err: tt.err}
			if got := se.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWrapError_Nil(t *testing.T) {
	if err := WrapError("Deck", "Write", nil); err != nil {
		t.Errorf("WrapError(nil) = %v, want nil", err)
	}
}

func TestWrapError_UnwrapChain(t *testing.T) {
	sentinel := errors.New("sentinel")
	err := WrapError("Export", "PDF", WrapOperationError("write handout.pdf", sentinel))

	if !errors.Is(err, sentinel) {
		t.Fatalf("errors.Is failed through %v", err)
	}
	var se *ServiceError
	if !errors.As(err, &se) {
		t.Fatalf("errors.As failed for %v", err)
	}
	if se.Operation != "PDF" {
		t.Errorf("Operation = %q, want PDF", se.Operation)
	}
	if got := err.Error(); got != "[Export.PDF] failed to write handout.pdf: sentinel" {
		t.Errorf("Error() = %q", got)
	}
}

func TestWrapOperationErrorf(t *testing.T) {
	err := WrapOperationErrorf("read %s", errors.New("missing"), "slide_01.png")
	if err.Error() != "failed to read slide_01.png: missing" {
		t.Errorf("got %q", err.Error())
	}
	if WrapOperationErrorf("read %s", nil, "x") != nil {
		t.Error("nil error should stay nil")
	}
}

// Property: wrapping keeps the original error reachable.
func TestProperty_WrapErrorPreservesCause(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		service := rapid.StringMatching(`[A-Za-z]{0,12}`).Draw(rt, "service")
		op := rapid.StringMatching(`[A-Za-z]{0,12}`).Draw(rt, "op")
		msg := rapid.String().Draw(rt, "msg")

		cause := errors.New(msg)
		err := WrapError(service, op, cause)
		if !errors.Is(err, cause) {
			rt.Fatalf("cause lost")
		}
		if want := fmt.Sprintf("[%s.%s] %s", service, op, msg); err.Error() != want {
			rt.Fatalf("Error() = %q, want %q", err.Error(), want)
		}
	})
}
