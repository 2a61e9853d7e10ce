package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alnah/go-bib2html/internal/config"
)

func mapGetenv(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

func TestApplyEnvConfig(t *testing.T) {
	t.Parallel()

	t.Run("fills empty values", func(t *testing.T) {
		t.Parallel()

		env := loadEnvConfig(mapGetenv(map[string]string{
			envOutput:      "pubs.html",
			envTemplate:    "compact.html",
			envTemplateDir: "site/templates",
			envDate:        "auto",
		}))
		cfg := config.DefaultConfig()
		applyEnvConfig(env, cfg)

		if cfg.Output != "pubs.html" || cfg.Template != "compact.html" || cfg.TemplateDir != "site/templates" || cfg.Date != "auto" {
			t.Errorf("config after env = %+v", cfg)
		}
	})

	t.Run("env wins over config file", func(t *testing.T) {
		t.Parallel()

		env := loadEnvConfig(mapGetenv(map[string]string{envTemplate: "compact.html", envDate: "auto"}))
		cfg := &config.Config{Template: "mine.html", Date: "2020", Output: "site.html"}
		applyEnvConfig(env, cfg)

		if cfg.Template != "compact.html" || cfg.Date != "auto" {
			t.Errorf("config after env = %+v, want env values", cfg)
		}
		if cfg.Output != "site.html" {
			t.Errorf("Output = %q, want config value kept when env is unset", cfg.Output)
		}
	})
}

func TestWarnUnknownEnvVars(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	warnUnknownEnvVars(&buf, []string{
		"HOME=/root",
		"BIB2HTML_TEMPLATE=compact.html",
		"BIB2HTML_LOG=debug",
		"BIB2HTML_TEMPLTE_DIR=typo",
	})

	out := buf.String()
	if !strings.Contains(out, "BIB2HTML_TEMPLTE_DIR") {
		t.Errorf("expected warning for typo, got %q", out)
	}
	if strings.Count(out, "warning:") != 1 {
		t.Errorf("expected exactly one warning, got %q", out)
	}
}
