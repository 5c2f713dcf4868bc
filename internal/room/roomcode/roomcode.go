// Package roomcode allocates short human-readable room codes.
package roomcode

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	apperrors "hexroom/internal/platform/errors"
)

// Alphabet excludes visually ambiguous characters (I, O, 0, 1).
const Alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// Length is the fixed code length.
const Length = 4

// maxAttempts bounds the uniqueness retry loop.
const maxAttempts = 8

// ErrExhausted indicates no unused code was found within the attempt bound.
var ErrExhausted = apperrors.New(apperrors.CodeRoomCodeExhausted, "no unused room code available")

// Prober checks whether a candidate code is already claimed. The probe is
// non-transactional; the creating transaction re-checks the claim.
type Prober interface {
	CodeInUse(ctx context.Context, code string) (bool, error)
}

// Generate draws one random code, one crypto/rand draw per character.
func Generate() (string, error) {
	var b strings.Builder
	b.Grow(Length)
	for i := 0; i < Length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(Alphabet))))
		if err != nil {
			return "", fmt.Errorf("draw code character: %w", err)
		}
		b.WriteByte(Alphabet[n.Int64()])
	}
	return b.String(), nil
}

// Allocate returns a code not currently in use, retrying up to the attempt
// bound before failing with ErrExhausted.
func Allocate(ctx context.Context, probe Prober) (string, error) {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		code, err := Generate()
		if err != nil {
			return "", err
		}
		inUse, err := probe.CodeInUse(ctx, code)
		if err != nil {
			return "", fmt.Errorf("probe room code: %w", err)
		}
		if !inUse {
			return code, nil
		}
	}
	return "", ErrExhausted
}

// Normalize upper-cases a submitted code and reports whether it is
// well-formed.
func Normalize(code string) (string, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != Length {
		return "", false
	}
	for i := 0; i < len(code); i++ {
		if !strings.ContainsRune(Alphabet, rune(code[i])) {
			return "", false
		}
	}
	return code, true
}
