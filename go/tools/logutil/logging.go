// Copyright 2025 Supabase, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package logutil configures the structured logger of the command-line
// tools from flags, environment and config files.
package logutil

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Configuration keys, also used as flag names.
const (
	KeyLogLevel  = "log-level"
	KeyLogFormat = "log-format"
	KeyLogOutput = "log-output"
)

// Logger builds an *slog.Logger from the log-level, log-format and
// log-output settings held in a viper instance.
type Logger struct {
	v  *viper.Viper
	fs afero.Fs

	stdout io.Writer
	stderr io.Writer

	once   sync.Once
	mu     sync.Mutex
	logger *slog.Logger
	file   afero.File
}

// NewLogger creates a Logger reading its settings from v. Log files named by
// log-output are opened on fs.
func NewLogger(v *viper.Viper, fs afero.Fs) *Logger {
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "text")
	v.SetDefault(KeyLogOutput, "stderr")
	return &Logger{
		v:      v,
		fs:     fs,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// RegisterFlags registers logging-related command line flags and binds them
// to the viper instance.
func (lg *Logger) RegisterFlags(fs *pflag.FlagSet) {
	fs.String(KeyLogLevel, lg.v.GetString(KeyLogLevel), "Log level (debug, info, warn, error)")
	fs.String(KeyLogFormat, lg.v.GetString(KeyLogFormat), "Log format (json, text)")
	fs.String(KeyLogOutput, lg.v.GetString(KeyLogOutput), "Log output (stdout, stderr, or file path)")
	for _, key := range []string{KeyLogLevel, KeyLogFormat, KeyLogOutput} {
		_ = lg.v.BindPFlag(key, fs.Lookup(key))
	}
}

// SetOutputs replaces the writers used for the stdout and stderr outputs.
func (lg *Logger) SetOutputs(stdout, stderr io.Writer) {
	lg.stdout = stdout
	lg.stderr = stderr
}

// ParseLevel maps a level name to an slog.Level, defaulting to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Setup creates the logger from the current settings. It should be called
// after flags are parsed; later calls return the same logger.
func (lg *Logger) Setup() *slog.Logger {
	lg.once.Do(func() {
		levelStr := lg.v.GetString(KeyLogLevel)
		formatStr := lg.v.GetString(KeyLogFormat)
		outputStr := lg.v.GetString(KeyLogOutput)

		var openErr error
		var output io.Writer
		switch strings.ToLower(outputStr) {
		case "", "stderr":
			output = lg.stderr
		case "stdout":
			output = lg.stdout
		default:
			// Treat as file path
			file, err := lg.fs.OpenFile(outputStr, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				// Fallback to stderr if file creation fails
				openErr = err
				output = lg.stderr
			} else {
				lg.file = file
				output = file
			}
		}

		opts := &slog.HandlerOptions{Level: ParseLevel(levelStr)}
		var handler slog.Handler
		switch strings.ToLower(formatStr) {
		case "json":
			handler = slog.NewJSONHandler(output, opts)
		default:
			handler = slog.NewTextHandler(output, opts)
		}

		newLogger := slog.New(handler)
		lg.mu.Lock()
		lg.logger = newLogger
		lg.mu.Unlock()

		if openErr != nil {
			newLogger.Warn("failed to open log file, logging to stderr", "path", outputStr, "error", openErr)
		}
		newLogger.Debug("logging initialized",
			"level", levelStr,
			"format", formatStr,
			"output", outputStr,
		)
	})
	return lg.Get()
}

// Get returns the configured logger, or the default logger if Setup has not
// run yet.
func (lg *Logger) Get() *slog.Logger {
	lg.mu.Lock()
	defer lg.mu.Unlock()
	if lg.logger == nil {
		return slog.Default()
	}
	return lg.logger
}

// Close releases the log file, if one was opened.
func (lg *Logger) Close() error {
	lg.mu.Lock()
	defer lg.mu.Unlock()
	if lg.file == nil {
		return nil
	}
	err := lg.file.Close()
	lg.file = nil
	return err
}
