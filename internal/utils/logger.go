package utils

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const invalidLogLevelFormat = "invalid log level %q: %w"

// consoleEncoderConfig produces message-only lines: no time, level, caller or stacktrace.
func consoleEncoderConfig() zapcore.EncoderConfig {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderConfig.TimeKey = ""
	encoderConfig.LevelKey = ""
	encoderConfig.NameKey = ""
	encoderConfig.CallerKey = ""
	encoderConfig.FunctionKey = ""
	encoderConfig.MessageKey = "message"
	encoderConfig.StacktraceKey = ""
	encoderConfig.LineEnding = zapcore.DefaultLineEnding
	return encoderConfig
}

// NewApplicationLogger constructs a zap logger configured for human-readable console output.
func NewApplicationLogger() (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.DisableCaller = true
	config.DisableStacktrace = true
	config.EncoderConfig = consoleEncoderConfig()
	return config.Build()
}

// NewConsoleLogger returns a logger with the application encoder writing to writer.
func NewConsoleLogger(writer io.Writer, level zapcore.Level) *zap.Logger {
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(consoleEncoderConfig()), zapcore.AddSync(writer), level)
	return zap.New(core)
}

// ParseLogLevel converts a level name to a zap level. An empty name means info.
func ParseLogLevel(levelName string) (zapcore.Level, error) {
	normalizedName := strings.ToLower(strings.TrimSpace(levelName))
	if normalizedName == "" {
		return zapcore.InfoLevel, nil
	}
	level, parseError := zapcore.ParseLevel(normalizedName)
	if parseError != nil {
		return zapcore.InfoLevel, fmt.Errorf(invalidLogLevelFormat, levelName, parseError)
	}
	return level, nil
}
