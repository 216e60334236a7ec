package injector

import (
	"github.com/lumen-engine/lumen/internal/core/config"
	"github.com/lumen-engine/lumen/internal/core/engine"
	"github.com/lumen-engine/lumen/internal/core/observability/log"
)

// provideEngine adapts engine.New to a non-variadic provider signature.
func provideEngine(cfg config.EngineConfig, logger *log.Logger) (*engine.Engine, error) {
	return engine.New(cfg, logger)
}
