package ports

import "go.trai.ch/varcss/internal/core/domain"

// ConfigLoader defines the interface for loading the project configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load finds the configuration starting at cwd and walking up.
	// A missing configuration yields the defaults.
	Load(cwd string) (*domain.Config, error)
}
