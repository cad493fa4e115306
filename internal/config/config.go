// Package config loads the engine's YAML configuration and bootstraps a
// default config file on first run.
package config

import (
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DirtyTitleRule drops rows a scraper is known to emit as test data.
type DirtyTitleRule struct {
	Company  string `yaml:"company"`  // matched case-insensitively
	Contains string `yaml:"contains"` // case-sensitive substring of the trimmed title
}

type Config struct {
	App struct {
		DataDir  string `yaml:"data_dir"`
		Snapshot string `yaml:"snapshot"`
	} `yaml:"app"`

	Freshness struct {
		DefaultHours int            `yaml:"default_hours"`
		SourceHours  map[string]int `yaml:"source_hours"`
	} `yaml:"freshness"`

	Refresh struct {
		Commands       map[string][]string `yaml:"commands"`
		RequestsPerSec float64             `yaml:"requests_per_sec"`
		Burst          int                 `yaml:"burst"`
	} `yaml:"refresh"`

	// LocationOverrides maps company -> raw location -> replacement,
	// applied before splitting. Both keys match case-insensitively.
	LocationOverrides map[string]map[string]string `yaml:"location_overrides"`

	DirtyTitles []DirtyTitleRule `yaml:"dirty_titles"`
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	cfg.applyDefaults()
	return cfg, nil
}

// Default returns the configuration used when no config file exists.
func Default() Config {
	var cfg Config
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.App.Snapshot == "" {
		c.App.Snapshot = "map/public/ai.csv"
	}
	if c.Freshness.DefaultHours <= 0 {
		c.Freshness.DefaultHours = 1
	}
	if c.Freshness.SourceHours == nil {
		c.Freshness.SourceHours = map[string]int{}
	}
	for source, hours := range map[string]int{"apple": 6, "uber": 6, "nvidia": 12} {
		if _, ok := c.Freshness.SourceHours[source]; !ok {
			c.Freshness.SourceHours[source] = hours
		}
	}
	if c.Refresh.RequestsPerSec <= 0 {
		c.Refresh.RequestsPerSec = 0.5
	}
	if c.Refresh.Burst <= 0 {
		c.Refresh.Burst = 1
	}
	if c.LocationOverrides == nil {
		c.LocationOverrides = map[string]map[string]string{}
	}
	if _, ok := c.LocationOverrides["tavily"]; !ok {
		c.LocationOverrides["tavily"] = map[string]string{
			"all locations - on site": "New York",
		}
	}
	if len(c.DirtyTitles) == 0 {
		c.DirtyTitles = []DirtyTitleRule{{Company: "nintendo", Contains: "TEST"}}
	}
}

// FreshnessWindow returns the freshness window for a source tag.
func (c Config) FreshnessWindow(source string) time.Duration {
	if h, ok := c.Freshness.SourceHours[source]; ok && h > 0 {
		return time.Duration(h) * time.Hour
	}
	return time.Duration(c.Freshness.DefaultHours) * time.Hour
}

// NormalizedOverrides lowercases the override table's keys for the adapters.
func (c Config) NormalizedOverrides() map[string]map[string]string {
	out := make(map[string]map[string]string, len(c.LocationOverrides))
	for company, rules := range c.LocationOverrides {
		m := make(map[string]string, len(rules))
		for loc, repl := range rules {
			m[strings.ToLower(strings.TrimSpace(loc))] = repl
		}
		out[strings.ToLower(strings.TrimSpace(company))] = m
	}
	return out
}

// IsDirtyTitle reports whether a row matches a dirty-title rule.
func (c Config) IsDirtyTitle(company, title string) bool {
	title = strings.TrimSpace(title)
	for _, rule := range c.DirtyTitles {
		if strings.EqualFold(strings.TrimSpace(company), rule.Company) &&
			strings.Contains(title, rule.Contains) {
			return true
		}
	}
	return false
}
