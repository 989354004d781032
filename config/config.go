package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config groups the tracker settings. Every field has a working default;
// the config file is optional.
type Config struct {
	Storage StorageConfig `json:"storage"`
	Report  ReportConfig  `json:"report"`
	Logging LoggingConfig `json:"logging"`
}

// StorageConfig locates the fleet data file.
type StorageConfig struct {
	// Path is the pipe-delimited data file rewritten on save.
	Path string `json:"path"`
}

// SetDefaults applies sane defaults.
func (c *StorageConfig) SetDefaults() {
	if c.Path == "" {
		c.Path = "bus_data.txt"
	}
}

// ReportConfig locates the CSV maintenance report.
type ReportConfig struct {
	Path string `json:"path"`
}

// SetDefaults applies sane defaults.
func (c *ReportConfig) SetDefaults() {
	if c.Path == "" {
		c.Path = "fleet_report.csv"
	}
}

// Load reads the configuration file, if present, and applies FG_
// environment overrides. A missing file is not an error: defaults apply.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	if _, err := os.Stat(path); err == nil {
		ext := strings.ToLower(filepath.Ext(path))
		var parser koanf.Parser
		switch ext {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		default:
			return nil, fmt.Errorf("unsupported config format: %s", ext)
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, err
		}
	}
	// Optional environment overrides
	if err := k.Load(env.Provider("FG_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "fg_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Storage.SetDefaults()
	cfg.Report.SetDefaults()
	cfg.Logging.SetDefaults()
	if err := cfg.Logging.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
