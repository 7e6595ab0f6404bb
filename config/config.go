package config

import (
	"fmt"
	"os"

	ftime "github.com/viant/tagly/format/time"
	"github.com/viant/tagly/format/text"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultLogTimeLayout formats console line timestamps
	DefaultLogTimeLayout = "2006-01-02 15:04:05"
	// DefaultHistoryLimit caps console command history
	DefaultHistoryLimit = 100
	// DefaultSettingsFile stores console window enablement
	DefaultSettingsFile = "inspector_settings.json"
)

type (
	// Config holds inspector and console settings
	Config struct {
		// ShowScriptProperties lists script properties of values with an attached script.
		ShowScriptProperties bool `yaml:"show_script_properties"`

		// ShowScriptEnumName resolves script enum classes through the native enum registry.
		ShowScriptEnumName bool `yaml:"show_script_enum_name"`

		// PinReturnValue pins method return values to the clipboard.
		PinReturnValue bool `yaml:"pin_return_value"`

		// CaseFormat formats member labels (e.g. "lc" for lowerCamel, "lu" for lower_underscore).
		CaseFormat string `yaml:"case_format"`

		// DateFormat is an ISO date format (e.g. "YYYY-MM-DD hh:mm:ss") used for time values,
		// TimeLayout takes precedence when both are set.
		DateFormat string `yaml:"date_format"`

		// TimeLayout is a Go time layout used for time values.
		TimeLayout string `yaml:"time_layout"`

		// LogTimeLayout formats console line timestamps.
		LogTimeLayout string `yaml:"log_time_layout"`

		// HistoryLimit caps console command history, 0 keeps all commands.
		HistoryLimit int `yaml:"history_limit"`

		// SettingsFile stores console window enablement.
		SettingsFile string `yaml:"settings_file"`

		// Windows lists console windows and scene paths they are attached to.
		Windows []Window `yaml:"windows"`
	}

	// Window represents a console window attached to a scene path
	Window struct {
		Key     string `yaml:"key"`
		Scene   string `yaml:"scene"`
		Enabled bool   `yaml:"enabled"`
	}
)

// Default returns default configuration
func Default() *Config {
	return &Config{
		ShowScriptProperties: true,
		PinReturnValue:       true,
		LogTimeLayout:        DefaultLogTimeLayout,
		HistoryLimit:         DefaultHistoryLimit,
		SettingsFile:         DefaultSettingsFile,
	}
}

// Load reads configuration YAML file, unset keys keep default values
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return Parse(data)
}

// Parse parses configuration YAML
func Parse(data []byte) (*Config, error) {
	ret := Default()
	if err := yaml.Unmarshal(data, ret); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	if err := ret.Validate(); err != nil {
		return nil, err
	}
	return ret, nil
}

// Validate checks configuration values
func (c *Config) Validate() error {
	if c.CaseFormat != "" && !c.LabelCaseFormat().IsDefined() {
		return fmt.Errorf("invalid case format: %v", c.CaseFormat)
	}
	if c.HistoryLimit < 0 {
		return fmt.Errorf("invalid history limit: %v", c.HistoryLimit)
	}
	keys := map[string]bool{}
	for i, window := range c.Windows {
		if window.Key == "" {
			return fmt.Errorf("window #%v: key was empty", i)
		}
		if keys[window.Key] {
			return fmt.Errorf("window #%v: duplicated key %v", i, window.Key)
		}
		keys[window.Key] = true
	}
	return nil
}

// LabelCaseFormat returns member label case format
func (c *Config) LabelCaseFormat() text.CaseFormat {
	if c.CaseFormat == "" {
		return text.CaseFormatUndefined
	}
	return text.NewCaseFormat(c.CaseFormat)
}

// ValueTimeLayout returns Go time layout for time values or empty for the default one
func (c *Config) ValueTimeLayout() string {
	if c.TimeLayout != "" {
		return c.TimeLayout
	}
	if c.DateFormat != "" {
		return ftime.DateFormatToTimeLayout(c.DateFormat)
	}
	return ""
}
