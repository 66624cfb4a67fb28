// Package config provides YAML-based application configuration with a
// user-overridable search path and embedded defaults.
package config

// Config contains all runtime configuration for ptrdojo.
type Config struct {
	Exam  ExamConfig  `yaml:"exam"`
	Debug DebugConfig `yaml:"debug"`
}

// ExamConfig tunes the final examination behavior.
type ExamConfig struct {
	// TimeoutPolicy decides what happens to a challenge whose timer
	// expires: "freeze" keeps it in progress for later resumption,
	// "relock" returns it to the available pool for a fresh attempt.
	TimeoutPolicy string `yaml:"timeout_policy"`
}

// DebugConfig controls diagnostic output.
type DebugConfig struct {
	// LogFile, when set, receives structured logs. Empty disables
	// file logging; the TUI owns the terminal so logs never go there.
	LogFile string `yaml:"log_file"`
}
