package config

// YAMLConfig mirrors clisurf.yaml. Pointer-free strings: empty means "use default".
type YAMLConfig struct {
	Clisurf struct {
		API struct {
			BaseURL string `yaml:"base_url"`
			Timeout string `yaml:"timeout"`
		} `yaml:"api"`

		Defaults struct {
			Station string `yaml:"station"`
			Units   string `yaml:"units"`
		} `yaml:"defaults"`
	} `yaml:"clisurf"`
}

// settings is the merged view that gets validated before mapping to domain.Config.
type settings struct {
	BaseURL string `validate:"required|fullUrl"`
	Station string `validate:"required"`
	Units   string `validate:"required|in:imperial,metric"`
}
