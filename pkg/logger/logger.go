package logger

import (
	"log"

	"go.uber.org/zap"
)

var globalLogger *zap.Logger

// Init builds the global logger. Development config only for local runs so
// deployed output stays machine-parseable.
func Init(env string) *zap.Logger {
	var (
		l   *zap.Logger
		err error
	)

	if env == "local" {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatalf("cannot initialize logger: %s", err)
	}

	globalLogger = l

	return l
}

func Logger() *zap.Logger {
	if globalLogger == nil {
		globalLogger = zap.NewNop()
	}
	return globalLogger
}

func Debug(msg string, fields ...zap.Field) {
	Logger().Debug(msg, fields...)
}

func Info(msg string, fields ...zap.Field) {
	Logger().Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	Logger().Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	Logger().Error(msg, fields...)
}
