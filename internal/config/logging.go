// SPDX-License-Identifier: MPL-2.0

package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	charmlog "github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// ConfigureLogging installs the global slog logger.
//
// With a log file configured, diagnostics go to a rotating file via
// lumberjack at the configured level. Otherwise a styled console
// handler writes to stderr, quiet by default (warnings and up) and
// chatty under --verbose. The [CMD]/[ERROR] output contract is owned
// by the diag package and never routed through here.
func ConfigureLogging(cfg *Config, verbose bool) {
	if cfg.Log.File != "" {
		level := parseSlogLevel(cfg.Log.Level, slog.LevelInfo)
		if verbose {
			level = slog.LevelDebug
		}

		writer := &lumberjack.Logger{
			Filename:   cfg.Log.File,
			MaxSize:    cfg.Log.MaxSizeMB,
			MaxBackups: cfg.Log.MaxBackups,
			MaxAge:     cfg.Log.MaxAgeDays,
			Compress:   cfg.Log.Compress,
		}
		handler := slog.NewTextHandler(writer, &slog.HandlerOptions{
			AddSource: true,
			Level:     level,
		})
		slog.SetDefault(slog.New(handler))
		return
	}

	level := charmlog.WarnLevel
	if verbose {
		level = charmlog.DebugLevel
	}
	logger := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		Level:           level,
		ReportTimestamp: false,
	})
	slog.SetDefault(slog.New(logger))
}

// parseSlogLevel maps a level name to a slog.Level, accepting the
// conventional names plus numeric slog levels (e.g. -4 for debug).
func parseSlogLevel(level string, defaultLevel slog.Level) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}
