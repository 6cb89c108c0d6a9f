package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/creaotrhubn26/tidsflyt-piiscan/internal/lexicon"
	"github.com/creaotrhubn26/tidsflyt-piiscan/internal/models"
)

type Config struct {
	RootPath string `yaml:"root_path"`
	Workers  int    `yaml:"workers"`
	Verbose  bool   `yaml:"verbose"`
	NoColor  bool   `yaml:"no_color"`

	// FastMode skips files larger than FastModeMaxBytes
	FastMode bool `yaml:"fast_mode"`

	DBPath string `yaml:"db_path"`

	// WhitelistPath is the path to the file containing whitelisted terms
	WhitelistPath string `yaml:"whitelist_path"`

	// MinConfidence hides findings below this level in reports and output.
	// Empty keeps everything.
	MinConfidence string `yaml:"min_confidence"`

	// Local additions to the embedded name lists
	ExtraFirstNames []string `yaml:"extra_first_names"`
	ExtraSurnames   []string `yaml:"extra_surnames"`
	ExtraSafeWords  []string `yaml:"extra_safe_words"`

	JSONReport string `yaml:"json_report"`
	HTMLReport string `yaml:"html_report"`

	ServerAddr string `yaml:"server_addr"`
}

// FastModeMaxBytes is the size limit applied in fast mode.
const FastModeMaxBytes = 1024 * 1024

func DefaultConfig() *Config {
	return &Config{
		Workers:       runtime.NumCPU() * 2, // I/O bound
		DBPath:        "piiscan.db",
		WhitelistPath: "whitelist.txt",
		JSONReport:    "piiscan-report.json",
		HTMLReport:    "piiscan-report.html",
		ServerAddr:    ":8080",
	}
}

// Load reads a YAML file on top of the defaults. Keys missing from the file
// keep their default value.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault is Load, except that a missing file yields the defaults.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return cfg, err
}

func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if _, err := models.ParseConfidence(c.MinConfidence); err != nil {
		return err
	}
	return nil
}

// MinConfidenceLevel returns the parsed MinConfidence. An invalid value is
// treated as no filter; Validate reports it.
func (c *Config) MinConfidenceLevel() models.Confidence {
	level, err := models.ParseConfidence(c.MinConfidence)
	if err != nil {
		return models.ConfidenceNone
	}
	return level
}

// LexiconOptions returns the local list additions for lexicon.New.
func (c *Config) LexiconOptions() lexicon.Options {
	return lexicon.Options{
		ExtraFirstNames: c.ExtraFirstNames,
		ExtraSurnames:   c.ExtraSurnames,
		ExtraSafeWords:  c.ExtraSafeWords,
	}
}

// HasLexiconExtras reports whether the embedded lexicon needs extending.
func (c *Config) HasLexiconExtras() bool {
	return len(c.ExtraFirstNames)+len(c.ExtraSurnames)+len(c.ExtraSafeWords) > 0
}
