package logger

import (
	"go.uber.org/zap"
)

// Init builds the process-wide logger and installs it as the zap global, so
// handlers can log via zap.L(). Development mode gets console-friendly output.
func Init(environment string) (*zap.Logger, error) {
	var log *zap.Logger
	var err error

	if environment == "production" {
		log, err = zap.NewProduction()
	} else {
		log, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, err
	}

	zap.ReplaceGlobals(log)
	return log, nil
}
