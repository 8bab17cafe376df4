package config

// Config holds all application configuration values.
// Defaults are set in DefaultConfig() and can be overridden via dotfile.
// NOTE: Values in config files override defaults, including explicit zero values.
// Missing keys are left at their default values.
type Config struct {
	Shell ShellConfig `json:"shell"`
	UI    UIConfig    `json:"ui"`

	// Commands holds per-command option maps, decoded on demand into typed
	// option structs (see commands.go). Unknown command names are ignored.
	Commands map[string]map[string]any `json:"commands"`
}

type ShellConfig struct {
	// Command Execution
	MaxCommandOutputSize int64 `json:"max_command_output_size"` // Default: 10 * 1024 * 1024 (10MB), captured mode only

	// Prompt
	PromptGitBranch bool `json:"prompt_git_branch"` // Default: true
}

type UIConfig struct {
	// Output pane buffer cap; oldest lines are dropped past this.
	MaxOutputLines int `json:"max_output_lines"` // Default: 1000
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Shell: ShellConfig{
			MaxCommandOutputSize: 10 * 1024 * 1024,
			PromptGitBranch:      true,
		},
		UI: UIConfig{
			MaxOutputLines: 1000,
		},
	}
}
