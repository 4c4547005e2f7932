// Package config loads and validates the wikibuild YAML configuration.
// Environment variables referenced in the file are expanded after an optional
// .env file is loaded, so tokens and local paths stay out of the config.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	werrors "github.com/rondayan42/requiem-wiki/internal/errors"
	"github.com/rondayan42/requiem-wiki/internal/wiki"
)

// Config represents the application configuration
type Config struct {
	Site      SiteConfig     `yaml:"site"`
	Sources   []Source       `yaml:"sources"`
	Output    OutputConfig   `yaml:"output"`
	Templates TemplateConfig `yaml:"templates"`
	Taxonomy  TaxonomyConfig `yaml:"taxonomy"`
}

// SiteConfig carries site-wide presentation settings.
type SiteConfig struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description,omitempty"`
	// HomeContent optionally points at a Markdown file whose rendered body
	// replaces the builtin home page blurb.
	HomeContent string `yaml:"home_content,omitempty"`
}

// Source is one snapshot root. Exactly one of Path or Git must be set.
// Sources are consulted in list order; the first root to produce a title wins.
type Source struct {
	Path string     `yaml:"path,omitempty"`
	Git  *GitSource `yaml:"git,omitempty"`
}

// GitSource identifies a remote repository holding salvaged snapshots.
type GitSource struct {
	URL    string `yaml:"url"`
	Branch string `yaml:"branch,omitempty"`
}

// OutputConfig represents output configuration
type OutputConfig struct {
	Directory string `yaml:"directory"`
	Clean     *bool  `yaml:"clean,omitempty"` // delete output directory before build (default true)
}

// CleanOutput reports whether the output directory is removed before a build.
func (o OutputConfig) CleanOutput() bool {
	return o.Clean == nil || *o.Clean
}

// TemplateConfig locates the page template and static assets.
type TemplateConfig struct {
	// Dir holds page.html and an assets/ subdirectory. When the directory is
	// missing, builtin equivalents are used.
	Dir string `yaml:"dir"`
}

// TaxonomyConfig optionally overrides the curated title taxonomy.
type TaxonomyConfig struct {
	Rules    []RuleConfig `yaml:"rules,omitempty"`
	Featured []string     `yaml:"featured,omitempty"`
}

// RuleConfig is one curated pattern-to-category rule.
type RuleConfig struct {
	Pattern  string `yaml:"pattern"`
	Category string `yaml:"category"`
}

// Load loads configuration from the specified file
func Load(configPath string) (*Config, error) {
	// Load .env file if it exists
	if err := loadEnvFile(); err != nil {
		fmt.Fprintf(os.Stderr, "Note: .env file not found or couldn't be loaded: %v\n", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, werrors.ConfigNotFound(configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, werrors.Wrap(err, werrors.CategoryConfig, werrors.SeverityFatal, "failed to read config file")
	}

	// Expand environment variables in the YAML content
	expandedData := os.ExpandEnv(string(data))

	var config Config
	if err := yaml.Unmarshal([]byte(expandedData), &config); err != nil {
		return nil, werrors.Wrap(err, werrors.CategoryConfig, werrors.SeverityFatal, "failed to unmarshal config")
	}

	applyDefaults(&config)
	if err := validate(&config); err != nil {
		return nil, err
	}
	return &config, nil
}

func applyDefaults(config *Config) {
	if config.Site.Title == "" {
		config.Site.Title = "Requiem Wiki (2009 Archive)"
	}
	if config.Output.Directory == "" {
		config.Output.Directory = "./site"
	}
	if config.Templates.Dir == "" {
		config.Templates.Dir = "./templates"
	}
	for i := range config.Sources {
		if config.Sources[i].Git != nil && config.Sources[i].Git.Branch == "" {
			config.Sources[i].Git.Branch = "main"
		}
	}
}

func validate(config *Config) error {
	if len(config.Sources) == 0 {
		return werrors.ConfigRequired("sources")
	}
	for i, src := range config.Sources {
		hasPath := src.Path != ""
		hasGit := src.Git != nil
		if hasPath == hasGit {
			return werrors.ValidationFailed(fmt.Sprintf("sources[%d]", i), "exactly one of path or git must be set")
		}
		if hasGit && src.Git.URL == "" {
			return werrors.ValidationFailed(fmt.Sprintf("sources[%d].git.url", i), "url is required")
		}
	}
	for i, rc := range config.Taxonomy.Rules {
		if rc.Pattern == "" || rc.Category == "" {
			return werrors.ValidationFailed(fmt.Sprintf("taxonomy.rules[%d]", i), "pattern and category are required")
		}
	}
	return nil
}

// CompiledRules returns the curated taxonomy: configured rules when present,
// the builtin list otherwise.
func (c *Config) CompiledRules() ([]wiki.Rule, error) {
	if len(c.Taxonomy.Rules) == 0 {
		return wiki.DefaultTaxonomy(), nil
	}
	rules := make([]wiki.Rule, 0, len(c.Taxonomy.Rules))
	for i, rc := range c.Taxonomy.Rules {
		r, err := wiki.CompileRule(rc.Pattern, rc.Category)
		if err != nil {
			return nil, werrors.ValidationFailed(fmt.Sprintf("taxonomy.rules[%d].pattern", i), err.Error())
		}
		rules = append(rules, r)
	}
	return rules, nil
}

// FeaturedRoots returns the curated root order for the category index.
func (c *Config) FeaturedRoots() []string {
	if len(c.Taxonomy.Featured) == 0 {
		return wiki.DefaultFeaturedRoots()
	}
	return c.Taxonomy.Featured
}

func loadEnvFile() error {
	if _, err := os.Stat(".env"); os.IsNotExist(err) {
		return nil
	}
	return godotenv.Load()
}
