// SPDX-License-Identifier: MPL-2.0

package config

type (
	// Config is the resolved plugorder configuration.
	Config struct {
		// PluginPaths are the directories scanned for plugins.
		PluginPaths []string `mapstructure:"plugin_paths"`

		// DisabledFile is the TOML file holding disabled plugin identities.
		DisabledFile string `mapstructure:"disabled_file"`

		// UI holds presentation settings.
		UI UIConfig `mapstructure:"ui"`
	}

	// UIConfig holds presentation settings.
	UIConfig struct {
		// ColorScheme selects the glamour/lipgloss style: auto, dark, or light.
		ColorScheme string `mapstructure:"color_scheme"`

		// Verbose enables debug logging and full error chains.
		Verbose bool `mapstructure:"verbose"`
	}
)

// DefaultConfig returns the built-in defaults. Path-valued fields are
// filled from the user's home directory; when that lookup fails they are
// left empty and the caller decides whether that matters.
func DefaultConfig() *Config {
	cfg := &Config{
		UI: UIConfig{ColorScheme: "auto"},
	}
	if dir, err := PluginsDir(); err == nil {
		cfg.PluginPaths = []string{dir}
	}
	if path, err := DisabledFilePath(); err == nil {
		cfg.DisabledFile = path
	}
	return cfg
}
