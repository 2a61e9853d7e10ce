package logging

// Notes:
// - Init mutates the global apex/log handler and level, so none of these
//   tests run in parallel.
// - The level variable is supplied through a map-backed getenv.

import (
	"bytes"
	"testing"

	"github.com/apex/log"
)

func envWith(level string) func(string) string {
	return func(key string) string {
		if key == EnvLevel {
			return level
		}
		return ""
	}
}

func TestHandler_HandleLog(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf)

	entry := &log.Entry{
		Level:   log.DebugLevel,
		Message: "parsed entries",
		Fields:  log.Fields{"file": "refs.bib", "count": 12},
	}
	if err := h.HandleLog(entry); err != nil {
		t.Fatalf("HandleLog() error = %v", err)
	}

	want := "D parsed entries count=12 file=refs.bib\n"
	if buf.String() != want {
		t.Errorf("HandleLog() wrote %q, want %q", buf.String(), want)
	}
}

func TestInit(t *testing.T) {
	tests := []struct {
		name    string
		verbose bool
		env     string
		want    log.Level
		wantErr bool
	}{
		{name: "default is error", want: log.ErrorLevel},
		{name: "verbose is debug", verbose: true, want: log.DebugLevel},
		{name: "env overrides verbose", verbose: true, env: "warn", want: log.WarnLevel},
		{name: "env is case-insensitive", env: "INFO", want: log.InfoLevel},
		{name: "invalid env", env: "loud", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := Init(&buf, tt.verbose, envWith(tt.env))
			if tt.wantErr {
				if err == nil {
					t.Fatal("Init() expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Init() error = %v", err)
			}

			logger, ok := log.Log.(*log.Logger)
			if !ok {
				t.Fatalf("log.Log is %T, want *log.Logger", log.Log)
			}
			if logger.Level != tt.want {
				t.Errorf("level = %v, want %v", logger.Level, tt.want)
			}
		})
	}
}

func TestInit_WritesThroughHandler(t *testing.T) {
	var buf bytes.Buffer
	if err := Init(&buf, true, envWith("")); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	log.WithField("records", 3).Debug("rendered")

	if got := buf.String(); got != "D rendered records=3\n" {
		t.Errorf("output = %q", got)
	}
}
