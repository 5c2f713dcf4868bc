package requestctx

import (
	"context"
	"testing"
)

func TestCallerIDFromContextRoundTrip(t *testing.T) {
	ctx := WithCallerID(context.Background(), "caller-42")
	got := CallerIDFromContext(ctx)
	if got != "caller-42" {
		t.Fatalf("CallerIDFromContext = %q, want %q", got, "caller-42")
	}
}

func TestCallerIDFromContextEmpty(t *testing.T) {
	got := CallerIDFromContext(context.Background())
	if got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}

func TestCallerIDFromContextNil(t *testing.T) {
	got := CallerIDFromContext(nil)
	if got != "" {
		t.Fatalf("expected empty string for nil context, got %q", got)
	}
}

func TestWithCallerIDNilContext(t *testing.T) {
	ctx := WithCallerID(nil, "caller-99")
	if ctx == nil {
		t.Fatalf("expected non-nil context")
	}
	if got := CallerIDFromContext(ctx); got != "caller-99" {
		t.Fatalf("CallerIDFromContext = %q, want %q", got, "caller-99")
	}
}
