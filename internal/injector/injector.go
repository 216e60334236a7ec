//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package injector

import (
	"github.com/google/wire"

	"github.com/lumen-engine/lumen/internal/core/config"
	"github.com/lumen-engine/lumen/internal/core/engine"
	"github.com/lumen-engine/lumen/internal/core/observability/log"
)

func ProvideLogger() *log.Logger {
	wire.Build(log.Provide)
	return log.New(log.LevelInfo)
}

func InitializeEngine(cfg config.EngineConfig) (*engine.Engine, error) {
	wire.Build(log.Provide, provideEngine)
	return nil, nil
}
