package app

import (
	"go.trai.ch/varcss/internal/core/domain"
	"go.trai.ch/varcss/internal/core/ports"
)

// Components holds what the CLI needs after the graph is resolved.
type Components struct {
	App    *App
	Logger ports.Logger
	Config *domain.Config
}
