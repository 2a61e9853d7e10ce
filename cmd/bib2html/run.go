package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"

	"github.com/alnah/go-bib2html"
	"github.com/alnah/go-bib2html/internal/config"
	"github.com/alnah/go-bib2html/internal/fileutil"
	"github.com/alnah/go-bib2html/internal/logging"
)

// ErrUsage marks invalid command-line usage.
var ErrUsage = errors.New("invalid usage")

// defaultTemplateDir is used when it exists and no directory was given.
const defaultTemplateDir = "templates"

// run loads configuration, converts the bibliography and writes the result.
func run(ctx context.Context, flags *cliFlags, env *Environment) error {
	if err := logging.Init(env.Stderr, flags.verbose, env.Getenv); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	warnUnknownEnvVars(env.Stderr, env.Environ())

	envCfg := loadEnvConfig(env.Getenv)

	cfg, err := loadConfig(flags.config, envCfg)
	if err != nil {
		return err
	}
	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)
	applyDefaults(cfg)

	if cfg.Input == "" {
		return withHint(bib2html.ErrNoInput, nil)
	}
	if err := bib2html.ValidateSortField(cfg.Sort); err != nil {
		return err
	}

	updated, err := bib2html.ResolveDate(cfg.Date, env.Now())
	if err != nil {
		return fmt.Errorf("--date: %w", err)
	}

	conv, err := bib2html.NewConverter(
		bib2html.WithTemplateDir(cfg.TemplateDir),
		bib2html.WithLabels(cfg.Labels),
	)
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"input":       cfg.Input,
		"template":    cfg.Template,
		"templateDir": cfg.TemplateDir,
	}).Debug("starting conversion")

	result, err := conv.Convert(ctx, bib2html.Input{
		Path: cfg.Input,
		Arrangement: bib2html.Arrangement{
			Skip:      cfg.Skip,
			SortField: cfg.Sort,
			Reverse:   cfg.Reverse,
		},
		Template: cfg.Template,
		Updated:  updated,
	})
	if err != nil {
		return withHint(err, conv)
	}

	if err := writeOutput(cfg.Output, result.HTML, env); err != nil {
		return withHint(err, conv)
	}

	log.WithFields(log.Fields{
		"records": len(result.Records),
		"size":    humanize.Bytes(uint64(len(result.HTML))),
		"output":  outputName(cfg.Output),
	}).Debug("wrote output")

	return nil
}

// loadConfig loads the file named by --config, falling back to
// BIB2HTML_CONFIG. Without either, an empty config is returned.
func loadConfig(name string, envCfg *envConfig) (*config.Config, error) {
	if name == "" {
		name = envCfg.ConfigPath
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		return nil, withHint(fmt.Errorf("loading config: %w", err), nil)
	}
	log.WithField("config", name).Debug("config loaded")
	return cfg, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *cliFlags, cfg *config.Config) {
	if flags.file != "" {
		cfg.Input = flags.file
	}
	if flags.output != "" {
		cfg.Output = flags.output
	}
	if flags.sort != "" {
		cfg.Sort = flags.sort
	}
	if flags.reverse {
		cfg.Reverse = true
	}
	if len(flags.skip) > 0 {
		cfg.Skip = trimAll(flags.skip)
	}
	if flags.template != "" {
		cfg.Template = flags.template
	}
	if flags.templateDir != "" {
		cfg.TemplateDir = flags.templateDir
	}
	if flags.date != "" {
		cfg.Date = flags.date
	}
}

// applyDefaults fills what neither flags nor config provided.
func applyDefaults(cfg *config.Config) {
	if cfg.Sort == "" {
		cfg.Sort = bib2html.DefaultSortField
	}
	if cfg.Template == "" {
		cfg.Template = bib2html.DefaultTemplate
	}
	if cfg.TemplateDir == "" && fileutil.DirExists(defaultTemplateDir) {
		cfg.TemplateDir = defaultTemplateDir
	}
}

// writeOutput writes html to path, or to stdout when path is empty.
func writeOutput(path string, html []byte, env *Environment) error {
	if path == "" {
		if _, err := env.Stdout.Write(html); err != nil {
			return fmt.Errorf("%w: stdout: %v", bib2html.ErrWriteOutput, err)
		}
		return nil
	}

	if err := fileutil.WriteFileAtomic(path, html); err != nil {
		return fmt.Errorf("%w: %s: %v", bib2html.ErrWriteOutput, path, err)
	}
	return nil
}

func outputName(path string) string {
	if path == "" {
		return "stdout"
	}
	return path
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
