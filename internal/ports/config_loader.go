package ports

import "github.com/rsuth/clisurf/internal/domain"

// ConfigLoader loads clisurf.yaml. An empty path selects the default location.
type ConfigLoader interface {
	Load(path string) (domain.Config, error)
}
