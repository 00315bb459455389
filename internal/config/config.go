// Package config handles objtool configuration loading and management.
package config

// Config holds all objtool settings.
type Config struct {
	Parse   ParseConfig   `yaml:"parse"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// ParseConfig holds settings passed to the mesh loader.
type ParseConfig struct {
	Encoding     string `yaml:"encoding"`      // Character set of .obj/.mtl files, empty for UTF-8
	TextureProbe string `yaml:"texture_probe"` // open, decode or none
}

// OutputConfig holds report settings.
type OutputConfig struct {
	MaxErrors   int    `yaml:"max_errors"`   // 0 = all
	MaxWarnings int    `yaml:"max_warnings"` // 0 = all
	Format      string `yaml:"format"`       // text or yaml
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Output formats.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Parse: ParseConfig{
			Encoding:     "",
			TextureProbe: "open",
		},
		Output: OutputConfig{
			MaxErrors:   50,
			MaxWarnings: 50,
			Format:      FormatText,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
