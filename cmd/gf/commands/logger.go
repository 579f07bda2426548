package commands

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/baonguyenly/gfapi/pkg/gfapi"
)

// zapLogger adapts a zap.SugaredLogger to the gfapi.Logger interface.
type zapLogger struct {
	sugar *zap.SugaredLogger
}

func newZapLogger() (gfapi.Logger, error) {
	config := zap.NewDevelopmentConfig()

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}

	return &zapLogger{sugar: logger.Sugar()}, nil
}

func fieldsToArgs(fields map[string]interface{}) []interface{} {
	args := make([]interface{}, 0, len(fields)*2)
	for key, value := range fields {
		args = append(args, key, value)
	}

	return args
}

func (l *zapLogger) Debug(msg string, fields map[string]interface{}) {
	l.sugar.Debugw(msg, fieldsToArgs(fields)...)
}

func (l *zapLogger) Info(msg string, fields map[string]interface{}) {
	l.sugar.Infow(msg, fieldsToArgs(fields)...)
}

func (l *zapLogger) Warn(msg string, fields map[string]interface{}) {
	l.sugar.Warnw(msg, fieldsToArgs(fields)...)
}

func (l *zapLogger) Error(msg string, fields map[string]interface{}) {
	l.sugar.Errorw(msg, fieldsToArgs(fields)...)
}
