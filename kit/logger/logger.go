package logger

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Level = zapcore.Level

const (
	DebugLevel = zapcore.DebugLevel
	InfoLevel  = zapcore.InfoLevel
	WarnLevel  = zapcore.WarnLevel
	ErrorLevel = zapcore.ErrorLevel
)

type Logger struct {
	*zap.Logger
}

type loggerConfig struct {
	noStdout bool
}

type Option func(*loggerConfig)

func NoStdout(config *loggerConfig) {
	config.noStdout = true
}

func NewLogger(filePath string, level Level, options ...Option) (*Logger, error) {
	var config loggerConfig
	for _, option := range options {
		option(&config)
	}

	outputPaths := []string{filePath}
	if !config.noStdout {
		outputPaths = append(outputPaths, "stdout")
	}

	zapConfig := zap.NewProductionConfig()
	zapConfig.Level = zap.NewAtomicLevelAt(level)
	zapConfig.OutputPaths = outputPaths
	zapConfig.ErrorOutputPaths = outputPaths

	zapLogger, err := zapConfig.Build()
	if err != nil {
		return nil, errors.Wrap(err, "build logger failed")
	}

	return &Logger{Logger: zapLogger}, nil
}

func (l *Logger) With(fields ...Field) *Logger {
	return &Logger{Logger: l.Logger.With(fields...)}
}
