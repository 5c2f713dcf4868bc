package room

import (
	"errors"
	"strings"
	"testing"
)

func TestNormalizeName(t *testing.T) {
	got, err := NormalizeName("  Alice  ")
	if err != nil {
		t.Fatalf("normalize name: %v", err)
	}
	if got != "Alice" {
		t.Fatalf("expected trimmed name, got %q", got)
	}

	if _, err := NormalizeName("   "); !errors.Is(err, ErrEmptyName) {
		t.Fatalf("expected ErrEmptyName, got %v", err)
	}
	if _, err := NormalizeName(strings.Repeat("x", MaxNameLength+1)); !errors.Is(err, ErrNameTooLong) {
		t.Fatalf("expected ErrNameTooLong, got %v", err)
	}
}

func TestFirstFreeColor(t *testing.T) {
	got, err := FirstFreeColor(nil)
	if err != nil {
		t.Fatalf("first free color: %v", err)
	}
	if got != ColorRed {
		t.Fatalf("expected red for empty room, got %s", ColorLabel(got))
	}

	got, err = FirstFreeColor([]Color{ColorRed, ColorWhite})
	if err != nil {
		t.Fatalf("first free color: %v", err)
	}
	if got != ColorBlue {
		t.Fatalf("expected blue, got %s", ColorLabel(got))
	}

	_, err = FirstFreeColor([]Color{ColorRed, ColorBlue, ColorWhite, ColorOrange})
	if !errors.Is(err, ErrNoColorAvailable) {
		t.Fatalf("expected ErrNoColorAvailable, got %v", err)
	}
}

func TestColorLabelRoundTrip(t *testing.T) {
	for _, color := range []Color{ColorRed, ColorBlue, ColorWhite, ColorOrange} {
		if got := ColorFromLabel(ColorLabel(color)); got != color {
			t.Errorf("round trip for %s = %s", ColorLabel(color), ColorLabel(got))
		}
	}
	if got := ColorFromLabel("purple"); got != ColorUnspecified {
		t.Errorf("expected unspecified for unknown label, got %v", got)
	}
}
