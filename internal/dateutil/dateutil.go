// Package dateutil resolves the "last updated" value shown under a rendered
// bibliography. Values are either literal text or "auto" expressions that
// format the current date.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDateFormat indicates an invalid date format string.
var ErrInvalidDateFormat = errors.New("invalid date format")

// MaxFormatLength limits format string length.
const MaxFormatLength = 50

// DefaultFormat is used when "auto" is given without a format.
const DefaultFormat = "YYYY-MM-DD"

// tokens maps format tokens to Go layout components, longest first.
var tokens = []struct {
	token  string
	layout string
}{
	{"YYYY", "2006"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"M", "1"},
	{"D", "2"},
}

// Presets are named shortcuts usable as "auto:<preset>".
var Presets = map[string]string{
	"iso":   "YYYY-MM-DD",
	"long":  "MMMM D, YYYY",
	"month": "MMMM YYYY",
	"year":  "YYYY",
}

// Layout converts a token format (YYYY, YY, MMMM, MMM, MM, M, DD, D) into a
// Go time layout. Text inside brackets is copied literally; any other
// character outside a token is kept as is.
func Layout(format string) (string, error) {
	if format == "" {
		return "", fmt.Errorf("%w: format cannot be empty", ErrInvalidDateFormat)
	}
	if len(format) > MaxFormatLength {
		return "", fmt.Errorf("%w: format exceeds %d characters", ErrInvalidDateFormat, MaxFormatLength)
	}

	var b strings.Builder
	b.Grow(len(format) + 8)

	for i := 0; i < len(format); {
		if format[i] == '[' {
			end := strings.IndexByte(format[i+1:], ']')
			if end == -1 {
				return "", fmt.Errorf("%w: unclosed bracket at position %d", ErrInvalidDateFormat, i)
			}
			b.WriteString(format[i+1 : i+1+end])
			i += end + 2
			continue
		}

		matched := false
		for _, t := range tokens {
			if strings.HasPrefix(format[i:], t.token) {
				b.WriteString(t.layout)
				i += len(t.token)
				matched = true
				break
			}
		}
		if !matched {
			b.WriteByte(format[i])
			i++
		}
	}

	return b.String(), nil
}

// Resolve expands "auto" (today as YYYY-MM-DD), "auto:FORMAT" and
// "auto:<preset>" against now. Any other value is returned unchanged.
func Resolve(value string, now time.Time) (string, error) {
	lower := strings.ToLower(value)
	if !strings.HasPrefix(lower, "auto") {
		return value, nil
	}

	format := DefaultFormat
	switch {
	case lower == "auto":
	case strings.HasPrefix(lower, "auto:"):
		format = value[len("auto:"):]
		if preset, ok := Presets[strings.ToLower(format)]; ok {
			format = preset
		}
	default:
		return "", fmt.Errorf("%w: %q, use \"auto\" or \"auto:FORMAT\"", ErrInvalidDateFormat, value)
	}

	layout, err := Layout(format)
	if err != nil {
		return "", err
	}
	return now.Format(layout), nil
}
