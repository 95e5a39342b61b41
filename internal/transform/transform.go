// Package transform implements the whole-content text transformations.
//
// All functions are pure: they never modify their input and always return a
// freshly allocated result.
package transform

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/apparentlymart/go-textseg/v15/textseg"
)

// Unit is the element that Reverse treats as indivisible.
type Unit string

const (
	// UnitRune reverses decoded UTF-8 code points. Bytes that are not valid
	// UTF-8 are kept as single-byte units.
	UnitRune Unit = "rune"
	// UnitByte reverses raw bytes.
	UnitByte Unit = "byte"
	// UnitGrapheme reverses extended grapheme clusters (UAX #29).
	UnitGrapheme Unit = "grapheme"
)

//nolint:gochecknoglobals // Package-level list for validation messages
var validUnits = []Unit{UnitRune, UnitByte, UnitGrapheme}

// ParseUnit converts a user-supplied name into a Unit.
func ParseUnit(name string) (Unit, error) {
	for _, u := range validUnits {
		if string(u) == name {
			return u, nil
		}
	}
	return "", fmt.Errorf("unknown reverse unit %q (supported: %s)", name, SupportedUnitsString())
}

// SupportedUnitsString returns the supported unit names separated by commas.
func SupportedUnitsString() string {
	names := make([]string, len(validUnits))
	for i, u := range validUnits {
		names[i] = string(u)
	}
	return strings.Join(names, ", ")
}

// Reverse returns data with the order of its units inverted.
func Reverse(data []byte, unit Unit) ([]byte, error) {
	switch unit {
	case UnitByte:
		return reverseBytes(data), nil
	case UnitRune, "":
		return reverseRunes(data), nil
	case UnitGrapheme:
		return reverseGraphemes(data)
	default:
		return nil, fmt.Errorf("unknown reverse unit %q", unit)
	}
}

func reverseBytes(data []byte) []byte {
	out := make([]byte, len(data))
	for i, b := range data {
		out[len(data)-1-i] = b
	}
	return out
}

func reverseRunes(data []byte) []byte {
	out := make([]byte, len(data))
	end := len(out)
	for i := 0; i < len(data); {
		_, size := utf8.DecodeRune(data[i:])
		end -= size
		copy(out[end:], data[i:i+size])
		i += size
	}
	return out
}

func reverseGraphemes(data []byte) ([]byte, error) {
	clusters, err := textseg.AllTokens(data, textseg.ScanGraphemeClusters)
	if err != nil {
		return nil, fmt.Errorf("failed to segment text: %w", err)
	}
	out := make([]byte, 0, len(data))
	for i := len(clusters) - 1; i >= 0; i-- {
		out = append(out, clusters[i]...)
	}
	return out, nil
}

// Copy returns an identical copy of data.
func Copy(data []byte) []byte {
	return bytes.Clone(data)
}

// DuplicatedSize reports the length of data repeated n times and whether it
// fits within limit. A limit <= 0 disables the check.
func DuplicatedSize(length, n int, limit int64) (int64, bool) {
	if length == 0 || n <= 0 {
		return 0, true
	}
	if int64(n) > (1<<62)/int64(length) {
		return 0, false
	}
	size := int64(length) * int64(n)
	if limit > 0 && size > limit {
		return size, false
	}
	return size, true
}

// Duplicate returns data repeated n times with no separator. Callers must
// check the result size with DuplicatedSize first.
func Duplicate(data []byte, n int) []byte {
	if n <= 0 || len(data) == 0 {
		return []byte{}
	}
	return bytes.Repeat(data, n)
}

// Replace substitutes every non-overlapping occurrence of needle, scanning
// left to right in a single pass. It returns the result and the number of
// replacements made. An empty needle returns data unchanged.
func Replace(data, needle, replacement []byte) ([]byte, int) {
	if len(needle) == 0 {
		return bytes.Clone(data), 0
	}
	count := bytes.Count(data, needle)
	if count == 0 {
		return bytes.Clone(data), 0
	}
	return bytes.ReplaceAll(data, needle, replacement), count
}
