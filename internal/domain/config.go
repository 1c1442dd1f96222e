package domain

import "time"

// Config represents the clisurf configuration loaded from clisurf.yaml.
type Config struct {
	API      APIConfig
	Defaults DefaultsConfig
}

type APIConfig struct {
	BaseURL string
	// Zero leaves the transport default in place.
	Timeout time.Duration
}

type DefaultsConfig struct {
	Station string
	Units   Units
}

// DefaultConfig provides sane defaults if clisurf.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		API: APIConfig{
			BaseURL: "https://api.swellbar.app",
		},
		Defaults: DefaultsConfig{
			Station: "46225",
			Units:   UnitsImperial,
		},
	}
}
