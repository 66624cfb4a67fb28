package config

import (
	_ "embed"
)

//go:embed defaults/config.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration, used when the
// embedded YAML cannot be parsed.
func Default() Config {
	return Config{
		Exam: ExamConfig{
			TimeoutPolicy: "freeze",
		},
		Debug: DebugConfig{
			LogFile: "",
		},
	}
}

// DefaultYAML returns the embedded default configuration file, handy
// for seeding a user config.
func DefaultYAML() []byte {
	return defaultYAML
}
