// Package config holds the optional configuration file. Running with no
// config file at all is the normal case and behaves identically to the
// defaults.
package config

// Config is the root configuration structure.
type Config struct {
	Storage StorageConfig `json:"storage"`
	UI      UIConfig      `json:"ui"`
}

// StorageConfig configures where the editor state is read from.
type StorageConfig struct {
	// Path overrides the platform-default location of Windsurf's
	// storage.json. Supports a leading "~".
	Path string `json:"path"`
}

// UIConfig configures UI appearance.
type UIConfig struct {
	ShowFooter bool `json:"showFooter"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		UI: UIConfig{
			ShowFooter: true,
		},
	}
}
