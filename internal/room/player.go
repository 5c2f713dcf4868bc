package room

import (
	"strings"
	"time"

	apperrors "hexroom/internal/platform/errors"
)

// MaxNameLength bounds player display names.
const MaxNameLength = 32

var (
	// ErrEmptyName indicates a missing player name.
	ErrEmptyName = apperrors.New(apperrors.CodePlayerNameEmpty, "player name is required")
	// ErrNameTooLong indicates a player name over the length bound.
	ErrNameTooLong = apperrors.New(apperrors.CodePlayerNameTooLong, "player name is too long")
	// ErrNoColorAvailable indicates every seat color is taken.
	ErrNoColorAvailable = apperrors.New(apperrors.CodeNoColorAvailable, "no seat color available")
)

// Color identifies a seat color.
type Color int

const (
	// ColorUnspecified represents an invalid color value.
	ColorUnspecified Color = iota
	// ColorRed is the first seat color.
	ColorRed
	// ColorBlue is the second seat color.
	ColorBlue
	// ColorWhite is the third seat color.
	ColorWhite
	// ColorOrange is the fourth seat color.
	ColorOrange
)

// seatColors lists assignable colors in assignment order.
var seatColors = []Color{ColorRed, ColorBlue, ColorWhite, ColorOrange}

// Player is one seat in a room.
type Player struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Color          Color     `json:"color"`
	Order          int       `json:"order"`
	PublicScore    int       `json:"publicScore"`
	HasLargestArmy bool      `json:"hasLargestArmy"`
	HasLongestRoad bool      `json:"hasLongestRoad"`
	Connected      bool      `json:"connected"`
	JoinedAt       time.Time `json:"joinedAt"`
}

// NormalizeName trims and validates a player display name.
func NormalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyName
	}
	if len(name) > MaxNameLength {
		return "", ErrNameTooLong
	}
	return name, nil
}

// FirstFreeColor returns the first assignable color not already in use.
func FirstFreeColor(used []Color) (Color, error) {
	taken := make(map[Color]struct{}, len(used))
	for _, c := range used {
		taken[c] = struct{}{}
	}
	for _, c := range seatColors {
		if _, ok := taken[c]; !ok {
			return c, nil
		}
	}
	return ColorUnspecified, ErrNoColorAvailable
}

// ColorLabel returns a stable label for a seat color.
func ColorLabel(color Color) string {
	switch color {
	case ColorRed:
		return "RED"
	case ColorBlue:
		return "BLUE"
	case ColorWhite:
		return "WHITE"
	case ColorOrange:
		return "ORANGE"
	default:
		return "UNSPECIFIED"
	}
}

// ColorFromLabel converts a color label to a Color value.
func ColorFromLabel(label string) Color {
	switch strings.ToUpper(strings.TrimSpace(label)) {
	case "RED":
		return ColorRed
	case "BLUE":
		return ColorBlue
	case "WHITE":
		return ColorWhite
	case "ORANGE":
		return ColorOrange
	default:
		return ColorUnspecified
	}
}
