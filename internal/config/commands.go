package config

import (
	"github.com/mitchellh/mapstructure"
)

// LsOptions controls the column layout of the ls built-in.
type LsOptions struct {
	Columns     int `mapstructure:"columns"`      // Default: 4 entries per row
	ColumnWidth int `mapstructure:"column_width"` // Default: 20 character cells per entry
}

// DefaultLsOptions returns the built-in ls layout.
func DefaultLsOptions() LsOptions {
	return LsOptions{
		Columns:     4,
		ColumnWidth: 20,
	}
}

// LsOptions decodes the "ls" entry of the commands section over the defaults.
// Keys the config file doesn't set keep their default values; unknown keys
// are ignored.
func (c *Config) LsOptions() (LsOptions, error) {
	opts := DefaultLsOptions()
	if err := c.decodeCommand("ls", &opts); err != nil {
		return LsOptions{}, err
	}
	return opts, nil
}

// decodeCommand decodes one per-command option map into a typed struct.
func (c *Config) decodeCommand(name string, out any) error {
	raw, ok := c.Commands[name]
	if !ok {
		return nil
	}
	return mapstructure.Decode(raw, out)
}
