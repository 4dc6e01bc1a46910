package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"gopkg.in/yaml.v3"

	"github.com/harrison/quickreplace/internal/display"
	"github.com/harrison/quickreplace/internal/fileutil"
	"github.com/harrison/quickreplace/internal/logger"
)

// Config represents quickreplace configuration options
type Config struct {
	// LogLevel sets the logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// Color selects colored diagnostics (auto, always, never)
	Color string `yaml:"color"`

	// Literal treats the target and replacement as plain strings
	Literal bool `yaml:"literal"`

	// LockOutput holds an exclusive lock on the output's directory while writing
	LockOutput bool `yaml:"lock_output"`

	// FileMode is the permission given to newly created output files
	FileMode os.FileMode `yaml:"-"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		LogLevel:   logger.DefaultLevel,
		Color:      display.ColorAuto,
		Literal:    false,
		LockOutput: false,
		FileMode:   fileutil.DefaultFileMode,
	}
}

// LoadConfig loads configuration from path on fsys, merged over defaults.
// The file is only read when a path is given explicitly, so a missing file is an error.
func LoadConfig(fsys billy.Filesystem, path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := util.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Use a temporary struct to handle file mode parsing
	type yamlConfig struct {
		LogLevel   string `yaml:"log_level"`
		Color      string `yaml:"color"`
		Literal    *bool  `yaml:"literal"`
		LockOutput *bool  `yaml:"lock_output"`
		FileMode   string `yaml:"file_mode"`
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply values present in the file (merging with defaults)
	if yamlCfg.LogLevel != "" {
		cfg.LogLevel = yamlCfg.LogLevel
	}
	if yamlCfg.Color != "" {
		cfg.Color = yamlCfg.Color
	}
	if yamlCfg.Literal != nil {
		cfg.Literal = *yamlCfg.Literal
	}
	if yamlCfg.LockOutput != nil {
		cfg.LockOutput = *yamlCfg.LockOutput
	}
	if yamlCfg.FileMode != "" {
		mode, err := ParseFileMode(yamlCfg.FileMode)
		if err != nil {
			return nil, err
		}
		cfg.FileMode = mode
	}

	return cfg, nil
}

// ParseFileMode parses an octal permission string such as "0644" or "600".
func ParseFileMode(s string) (os.FileMode, error) {
	v, err := strconv.ParseUint(s, 8, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid file_mode %q: %w", s, err)
	}
	return os.FileMode(v), nil
}

// MergeWithFlags merges CLI flags into the configuration
// Non-nil flag values override configuration values
// This allows CLI flags to take precedence over config file settings
func (c *Config) MergeWithFlags(logLevel *string, color *string, literal *bool, lockOutput *bool) {
	if logLevel != nil {
		c.LogLevel = *logLevel
	}
	if color != nil {
		c.Color = *color
	}
	if literal != nil {
		c.Literal = *literal
	}
	if lockOutput != nil {
		c.LockOutput = *lockOutput
	}
}

// Validate validates the configuration values
// Returns an error if any values are invalid
func (c *Config) Validate() error {
	if !logger.IsValidLevel(c.LogLevel) {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}

	if !display.IsValidColorMode(c.Color) {
		return fmt.Errorf("invalid color %q, must be one of: auto, always, never", c.Color)
	}

	if c.FileMode&^os.ModePerm != 0 {
		return fmt.Errorf("file_mode must only contain permission bits, got %o", uint32(c.FileMode))
	}

	return nil
}
