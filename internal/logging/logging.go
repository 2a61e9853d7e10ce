// Package logging configures apex/log for the bib2html command.
package logging

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/apex/log"
)

// EnvLevel overrides the log level when set (debug, info, warn, error, fatal).
const EnvLevel = "BIB2HTML_LOG"

// Init installs a Handler writing to w and sets the level: error by
// default, debug when verbose, and the EnvLevel value (read through getenv)
// when present.
func Init(w io.Writer, verbose bool, getenv func(string) string) error {
	log.SetHandler(NewHandler(w))

	level := log.ErrorLevel
	if verbose {
		level = log.DebugLevel
	}

	if env := strings.TrimSpace(getenv(EnvLevel)); env != "" {
		parsed, err := log.ParseLevel(strings.ToLower(env))
		if err != nil {
			return fmt.Errorf("%s: %w", EnvLevel, err)
		}
		level = parsed
	}

	log.SetLevel(level)
	return nil
}

// Handler writes one line per entry: level initial, message, then fields
// as key=value pairs in key order.
type Handler struct {
	mu sync.Mutex
	w  io.Writer
}

// NewHandler creates a Handler writing to w.
func NewHandler(w io.Writer) *Handler {
	return &Handler{w: w}
}

// HandleLog implements log.Handler.
func (h *Handler) HandleLog(e *log.Entry) error {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	fmt.Fprintf(&b, "%.1s %s", strings.ToUpper(e.Level.String()), e.Message)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, e.Fields[k])
	}
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, b.String())
	return err
}

// Compile-time interface check.
var _ log.Handler = (*Handler)(nil)
