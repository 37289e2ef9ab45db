package ports

import "go.trai.ch/roam/internal/core/domain"

// ConfigLoader defines the interface for loading the service configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration file at path on top of the defaults.
	// A missing file is only an error when required is true.
	Load(path string, required bool) (domain.Config, error)
}
