package configs

import (
	"fmt"

	"go.uber.org/zap"
)

// InitLogger installs the global zap logger used across the app via zap.L().
// The returned func flushes buffered entries and should be deferred by main.
func InitLogger(env ENV) (func(), error) {
	var (
		logger *zap.Logger
		err    error
	)
	if env.IsProduction() {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	restore := zap.ReplaceGlobals(logger)
	return func() {
		_ = logger.Sync()
		restore()
	}, nil
}
