package main

import (
	"fmt"
	"io"
	"log/slog"

	"go.eggybyte.com/egg/propgen/configx"
	"go.eggybyte.com/egg/propgen/core/log"
	"go.eggybyte.com/egg/propgen/logx"
)

// SettingsPrefix is prepended to every settings variable name.
const SettingsPrefix = "PROPGEN_"

// Settings holds the environment-level CLI configuration.
//
// Parameters:
//   - LogLevel: Minimum log level (PROPGEN_LOG_LEVEL)
//   - LogFormat: logfmt or json (PROPGEN_LOG_FORMAT)
//   - ResourceDir: Default for --resource-dir (PROPGEN_RESOURCE_DIR)
//   - OutputDir: Default for --output-dir (PROPGEN_OUTPUT_DIR)
type Settings struct {
	LogLevel    string `env:"LOG_LEVEL" default:"info" validate:"omitempty,oneof=debug info warn error"`
	LogFormat   string `env:"LOG_FORMAT" default:"logfmt" validate:"omitempty,oneof=logfmt json"`
	ResourceDir string `env:"RESOURCE_DIR"`
	OutputDir   string `env:"OUTPUT_DIR"`
}

func loadSettings() (Settings, error) {
	var s Settings
	if err := configx.Load(SettingsPrefix, &s); err != nil {
		return Settings{}, fmt.Errorf("invalid %s settings: %w", SettingsPrefix, err)
	}
	return s, nil
}

// Logger builds the structured logger. Verbose mode forces debug level.
func (s Settings) Logger(w io.Writer, verbose bool) (log.Logger, error) {
	level, err := logx.ParseLevel(s.LogLevel)
	if err != nil {
		return nil, err
	}
	if verbose {
		level = slog.LevelDebug
	}
	return logx.New(
		logx.WithWriter(w),
		logx.WithLevel(level),
		logx.WithFormat(logx.Format(s.LogFormat)),
	), nil
}
