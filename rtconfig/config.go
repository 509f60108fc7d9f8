package rtconfig

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the CLI's optional configuration file. Every field has a
// sensible default so the absence of a config file is not an error.
type Config struct {
	// TraceLevel is one of "Debug", "Info", "Error".
	TraceLevel string `yaml:"trace_level"`
	// DemoPath, when set, is searched for named demo grammar files in
	// addition to the canned demos built into cmd/evalorder.
	DemoPath string `yaml:"demo_path"`
}

// Default returns the configuration used when no config file is present.
func Default() *Config {
	return &Config{TraceLevel: "Info"}
}

// Load reads a YAML config file at path. A missing file is not an error:
// Default() is returned instead.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if cfg.TraceLevel == "" {
		cfg.TraceLevel = "Info"
	}
	return cfg, nil
}
