package config

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	recursive := true
	return &Config{
		Input: InputConfig{
			Directories: []string{"atomics"},
			Include:     []string{"T*.yaml", "T*.yml"},
			Exclude:     []string{"vendor/**", "node_modules/**"},
			Recursive:   &recursive,
		},
		Output: OutputConfig{
			Directory:     "",
			Suffix:        ".md",
			VerifyAnchors: true,
		},
		Attack: AttackConfig{
			Source:  "none",
			BaseURL: "https://attack.mitre.org/techniques",
			Timeout: "15s",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		DryRun: false,
	}
}
