package config

import (
	"fmt"
	"strings"
)

// Validate checks config values for correctness.
// Returns an error if any values are invalid.
func (c *Config) Validate() error {
	var errs []string

	// Shell validation
	if c.Shell.MaxCommandOutputSize < 1 {
		errs = append(errs, "shell.max_command_output_size must be >= 1")
	}

	// UI validation
	if c.UI.MaxOutputLines < 1 {
		errs = append(errs, "ui.max_output_lines must be >= 1")
	}

	// Per-command option validation (decode errors and out-of-range values)
	lsOpts, err := c.LsOptions()
	if err != nil {
		errs = append(errs, fmt.Sprintf("commands.ls: %v", err))
	} else {
		if lsOpts.Columns < 1 {
			errs = append(errs, "commands.ls.columns must be >= 1")
		}
		if lsOpts.ColumnWidth < 1 {
			errs = append(errs, "commands.ls.column_width must be >= 1")
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(errs, "; "))
	}
	return nil
}
