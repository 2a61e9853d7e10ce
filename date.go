package bib2html

import (
	"fmt"
	"time"

	"github.com/alnah/go-bib2html/internal/dateutil"
)

// ResolveDate expands the "last updated" value exposed to templates:
//   - "auto" → t as YYYY-MM-DD
//   - "auto:FORMAT" → t in a token format (e.g. "auto:DD/MM/YYYY")
//   - "auto:preset" → t using a named preset (iso, long, month, year)
//   - any other value → returned unchanged
//
// The time parameter allows injecting a fixed time for testing.
func ResolveDate(value string, t time.Time) (string, error) {
	resolved, err := dateutil.Resolve(value, t)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	return resolved, nil
}
