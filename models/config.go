// Package models defines data structures shared across the journal, the
// aggregators and the CLI.
package models

// Config holds runtime configuration. Values come from the YAML config file,
// then environment overrides, then CLI flags.
type Config struct {
	DataDir           string   `yaml:"data_dir"`
	Users             []string `yaml:"users"`
	ExtraStopwords    []string `yaml:"extra_stopwords"`
	Language          string   `yaml:"language"`
	Stem              bool     `yaml:"stem"`
	PerTokenStopwords bool     `yaml:"per_token_stopwords"`
	Top               int      `yaml:"top"`
	LogLevel          string   `yaml:"log_level"`
	LogFile           string   `yaml:"log_file"`
	SessionFile       string   `yaml:"session_file"`
}
