// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package applog

import (
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	// Keep the global logger private to prevent uninitialized access.
	logger *Logger
	raw    *zap.Logger

	// Noop logger as safe fallback when not initialized.
	noopLogger = &Logger{zap.NewNop().Sugar()}

	atomicLevel zap.AtomicLevel
)

// Logger wraps zap's SugaredLogger for convenience.
type Logger struct {
	*zap.SugaredLogger
}

// With adds structured fields to the logger and returns a new instance.
func (l *Logger) With(args ...interface{}) *Logger {
	if l == nil {
		return noopLogger
	}
	return &Logger{l.SugaredLogger.With(args...)}
}

// L returns the global logger or a no-op fallback if uninitialized.
func L() *Logger {
	if logger == nil {
		return noopLogger
	}
	return logger
}

// Options override what Init would otherwise read from the environment.
type Options struct {
	Mode  string // "dev" or "prod"; empty reads BVBERBER_ENV
	Level string // empty reads LOG_LEVEL
	Path  string // empty picks a file under the XDG state dir
}

// Init initializes the global logger.
//
// The mode comes from BVBERBER_ENV:
//
//   - BVBERBER_ENV=dev   → human-readable logs in ~/.local/state/<app>/app-debug.log
//   - BVBERBER_ENV=prod  → JSON logs in ~/.local/state/<app>/app.log
//
// The log level is controlled via LOG_LEVEL (debug, info, warn, error, etc).
// If unset, defaults to debug in dev mode and info in prod mode.
// Logs never go to the terminal, which belongs to the UI.
func Init(appName string, opts Options) {
	mode := opts.Mode
	if mode == "" {
		mode = detectMode()
	}
	logPath := opts.Path
	if logPath == "" {
		logPath = selectLogPath(appName, mode)
	}
	levelName := opts.Level
	if levelName == "" {
		levelName = os.Getenv("LOG_LEVEL")
	}

	atomicLevel = zap.NewAtomicLevelAt(parseLevel(levelName, mode))

	writer := zapcore.AddSync(&lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    20, // MB
		MaxBackups: 5,
		MaxAge:     14, // days
		Compress:   true,
	})

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	var encoder zapcore.Encoder
	if mode == "dev" {
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	} else {
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	}

	core := zapcore.NewCore(encoder, writer, atomicLevel)
	raw = zap.New(core, zap.AddCaller())
	logger = &Logger{raw.Sugar()}

	logger.Infof("logger initialized in %s mode. Writing to %s", mode, logPath)
}

// Sync flushes any buffered log entries.
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}

// InitTest creates a lightweight logger for tests that logs to stdout.
func InitTest() {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	cfg.OutputPaths = []string{"stdout"}
	raw, _ = cfg.Build(zap.AddCaller())
	logger = &Logger{raw.Sugar()}
}

// Use installs an existing zap logger, e.g. an observer core in tests.
func Use(l *zap.Logger) {
	raw = l
	logger = &Logger{l.Sugar()}
}

// SetLevel allows changing the log level at runtime.
func SetLevel(level zapcore.Level) {
	if atomicLevel != (zap.AtomicLevel{}) {
		atomicLevel.SetLevel(level)
	}
}

// detectMode determines dev or prod mode from BVBERBER_ENV.
func detectMode() string {
	switch strings.ToLower(os.Getenv("BVBERBER_ENV")) {
	case "dev", "development":
		return "dev"
	default:
		return "prod"
	}
}

// selectLogPath picks a standard file location for logs.
func selectLogPath(appName, mode string) string {
	fileName := "app.log"
	if mode == "dev" {
		fileName = "app-debug.log"
	}

	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		path := filepath.Join(xdg, appName)
		_ = os.MkdirAll(path, 0755)
		return filepath.Join(path, fileName)
	}

	if home, err := os.UserHomeDir(); err == nil {
		path := filepath.Join(home, ".local", "state", appName)
		_ = os.MkdirAll(path, 0755)
		return filepath.Join(path, fileName)
	}

	// Fallback for restrictive environments
	path := filepath.Join(os.TempDir(), appName)
	_ = os.MkdirAll(path, 0755)
	return filepath.Join(path, fileName)
}

func parseLevel(name, mode string) zapcore.Level {
	switch strings.ToLower(name) {
	case "debug":
		return zap.DebugLevel
	case "info":
		return zap.InfoLevel
	case "warn", "warning":
		return zap.WarnLevel
	case "error":
		return zap.ErrorLevel
	default:
		if mode == "dev" {
			return zap.DebugLevel
		}
		return zap.InfoLevel
	}
}
