package saynumber

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config controls how numbers are said
type Config struct {
	// Delimiter is written between latin morphemes and between a block and its scale word.
	// it must not contain a-z, otherwise the names could not be split again
	Delimiter string `yaml:"delimiter"`
	// ShortScale uses billion, trillion, ... (us/uk) instead of milliarde, billion, ...
	ShortScale bool `yaml:"short-scale"`
	// Synonym uses LatinSynonyms where available
	Synonym bool `yaml:"synonym"`
	// Chuquet uses ChuquetPrefixes where available; wins over Synonym
	Chuquet bool `yaml:"chuquet"`
	// ForceSingular and ForcePlural override the plural of scale words
	ForceSingular bool `yaml:"force-singular"`
	ForcePlural   bool `yaml:"force-plural"`
	// ForceZ keeps the z in short scale names (zentillion), ForceC replaces
	// it in long scale names as well (centilliarde)
	ForceZ bool `yaml:"force-z"`
	ForceC bool `yaml:"force-c"`
	// ByLine writes every non zero block on its own line
	ByLine bool `yaml:"by-line"`
	// LatinOnly says "123 millionen" instead of "einhundertdreiundzwanzigmillionen"
	LatinOnly bool `yaml:"latin-only"`
	// Template renders a latinOnly component; supports {{value}} and {{scale}}
	Template string `yaml:"template,omitempty"`
}

// DefaultConfig is used when nil is passed as config
var DefaultConfig = Config{}

// NewConfig reads config from file
func NewConfig(filePath string) (*Config, error) {
	bin, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err = yaml.Unmarshal(bin, &cfg); err != nil {
		return nil, err
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// GenerateSample creates a sample yaml file with default values
func GenerateSample(filePath string) error {
	cfg := DefaultConfig
	cfg.Template = defaultTemplate
	bin, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, bin, 0644)
}

// Validate checks that the options do not contradict each other
func (c *Config) Validate() error {
	if strings.ContainsAny(c.Delimiter, "abcdefghijklmnopqrstuvwxyz") {
		return fmt.Errorf("%w: delimiter %q must not contain a-z", ErrInvalidConfig, c.Delimiter)
	}
	if c.ForceSingular && c.ForcePlural {
		return fmt.Errorf("%w: force-singular and force-plural are mutually exclusive", ErrInvalidConfig)
	}
	if c.ForceZ && c.ForceC {
		return fmt.Errorf("%w: force-z and force-c are mutually exclusive", ErrInvalidConfig)
	}
	if c.Template != "" {
		if err := validateTemplate(c.Template); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
	}
	return nil
}

// pluralFor applies ForceSingular and ForcePlural to the natural plural of a scale word
func (c *Config) pluralFor(plural bool) bool {
	switch {
	case c.ForceSingular:
		return false
	case c.ForcePlural:
		return true
	}
	return plural
}

// resolve returns a validated config, falling back to DefaultConfig for nil
func resolve(cfg *Config) (*Config, error) {
	if cfg == nil {
		c := DefaultConfig
		cfg = &c
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
