package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/alnah/go-bib2html/internal/config"
	"github.com/alnah/go-bib2html/internal/logging"
)

// envPrefix is shared by every recognised environment variable.
const envPrefix = "BIB2HTML_"

// Recognised environment variables.
const (
	envConfigPath  = "BIB2HTML_CONFIG"
	envOutput      = "BIB2HTML_OUTPUT"
	envTemplate    = "BIB2HTML_TEMPLATE"
	envTemplateDir = "BIB2HTML_TEMPLATE_DIR"
	envDate        = "BIB2HTML_DATE"
)

// envVarHelp documents the variables in usage output, in display order.
var envVarHelp = []struct {
	name string
	desc string
}{
	{envConfigPath, "config file used when --config is not given"},
	{envOutput, "output file"},
	{envTemplate, "template file name"},
	{envTemplateDir, "template directory"},
	{envDate, "last updated text"},
	{logging.EnvLevel, "log level: debug, info, warn, error"},
}

// envConfig holds configuration from environment variables.
// Provides CI-friendly overrides without a config file.
type envConfig struct {
	ConfigPath  string
	Output      string
	Template    string
	TemplateDir string
	Date        string
}

// loadEnvConfig reads the BIB2HTML_* variables.
func loadEnvConfig(getenv func(string) string) *envConfig {
	return &envConfig{
		ConfigPath:  getenv(envConfigPath),
		Output:      getenv(envOutput),
		Template:    getenv(envTemplate),
		TemplateDir: getenv(envTemplateDir),
		Date:        getenv(envDate),
	}
}

// warnUnknownEnvVars reports BIB2HTML_* variables nobody reads, which are
// usually typos.
func warnUnknownEnvVars(w io.Writer, environ []string) {
	for _, kv := range environ {
		if !strings.HasPrefix(kv, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(kv, "=")
		if !isKnownEnvVar(name) {
			fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
		}
	}
}

func isKnownEnvVar(name string) bool {
	for _, v := range envVarHelp {
		if v.name == name {
			return true
		}
	}
	return false
}

// applyEnvConfig overrides config values with those set in the environment.
// Resulting precedence: CLI flags > env vars > config file > defaults
// (CLI flags are applied afterwards by mergeFlags).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Output != "" {
		cfg.Output = env.Output
	}
	if env.Template != "" {
		cfg.Template = env.Template
	}
	if env.TemplateDir != "" {
		cfg.TemplateDir = env.TemplateDir
	}
	if env.Date != "" {
		cfg.Date = env.Date
	}
}
