package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

const (
	DefaultReportPath   = "/var/log/lynis-report.dat"
	DefaultLynisBinary  = "lynis"
	DefaultTemplatesDir = "remediation_templates"
	DefaultSnapshotPath = ".lynis-snapshot.json"
	DefaultOutputFormat = "table"
)

type Config struct {
	ReportPath   string `yaml:"report_path"`
	LynisBinary  string `yaml:"lynis_binary"`
	TemplatesDir string `yaml:"templates_dir"`
	SnapshotPath string `yaml:"snapshot_path"`
	OutputFormat string `yaml:"output_format"` // table or json
}

// Default returns the configuration used when no file exists
func Default() *Config {
	return &Config{
		ReportPath:   DefaultReportPath,
		LynisBinary:  DefaultLynisBinary,
		TemplatesDir: DefaultTemplatesDir,
		SnapshotPath: DefaultSnapshotPath,
		OutputFormat: DefaultOutputFormat,
	}
}

func GetConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	configDir := filepath.Join(home, ".lynis-dash")
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.yaml"), nil
}

func LoadConfig() (*Config, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadConfigFrom(path)
}

// LoadConfigFrom reads the config at path. A missing file yields the
// defaults; fields left empty in the file are filled from them too.
func LoadConfigFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	cfg.fillDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func SaveConfig(cfg *Config) error {
	path, err := GetConfigPath()
	if err != nil {
		return err
	}
	return SaveConfigTo(cfg, path)
}

func SaveConfigTo(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

func (c *Config) fillDefaults() {
	d := Default()
	if c.ReportPath == "" {
		c.ReportPath = d.ReportPath
	}
	if c.LynisBinary == "" {
		c.LynisBinary = d.LynisBinary
	}
	if c.TemplatesDir == "" {
		c.TemplatesDir = d.TemplatesDir
	}
	if c.SnapshotPath == "" {
		c.SnapshotPath = d.SnapshotPath
	}
	if c.OutputFormat == "" {
		c.OutputFormat = d.OutputFormat
	}
}

func (c *Config) Validate() error {
	if c.OutputFormat != "table" && c.OutputFormat != "json" {
		return fmt.Errorf("invalid output_format: %s", c.OutputFormat)
	}
	return nil
}

// fields maps yaml keys to the settings they address
func (c *Config) fields() map[string]*string {
	return map[string]*string{
		"report_path":   &c.ReportPath,
		"lynis_binary":  &c.LynisBinary,
		"templates_dir": &c.TemplatesDir,
		"snapshot_path": &c.SnapshotPath,
		"output_format": &c.OutputFormat,
	}
}

// Keys lists the settable keys in sorted order
func (c *Config) Keys() []string {
	var keys []string
	for k := range c.fields() {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Get returns the value of a setting by its yaml key
func (c *Config) Get(key string) (string, bool) {
	f, ok := c.fields()[key]
	if !ok {
		return "", false
	}
	return *f, true
}

// Set updates a setting by its yaml key. The previous value is restored if
// the result doesn't validate.
func (c *Config) Set(key, value string) error {
	f, ok := c.fields()[key]
	if !ok {
		return fmt.Errorf("unknown config key: %s", key)
	}
	old := *f
	*f = value
	if err := c.Validate(); err != nil {
		*f = old
		return err
	}
	return nil
}
