package logger

import (
	"fmt"

	"go.uber.org/zap"
)

// Init replaces the global zap logger. Production gets the JSON encoder,
// everything else the development console encoder.
func Init(environment string) error {
	var (
		l   *zap.Logger
		err error
	)

	switch environment {
	case "production":
		l, err = zap.NewProduction()
	case "test":
		l = zap.NewNop()
	default:
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		return fmt.Errorf("failed to build zap logger -> %w", err)
	}

	zap.ReplaceGlobals(l)

	return nil
}
