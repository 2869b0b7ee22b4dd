package model

import "time"

// Config is the full runtime configuration, resolved from flags, environment
// variables (SEMOGRAPH_*), the config file and built-in defaults.
type Config struct {
	Analysis    AnalysisConfig    `yaml:"analysis" json:"analysis"`
	Cache       CacheConfig       `yaml:"cache" json:"cache"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" json:"concurrency"`
	Prep        PrepConfig        `yaml:"prep" json:"prep"`
	LLM         LLMConfig         `yaml:"llm" json:"llm"`
	Output      OutputConfig      `yaml:"output" json:"output"`
}

// AnalysisConfig controls the decision engine.
type AnalysisConfig struct {
	// Register biases heuristics toward a text domain ("", "legal").
	// Legal register lets definite descriptions carry a Generic alternative.
	Register string `yaml:"register" json:"register"`

	// PreserveAmbiguity keeps alternative readings in an interpretation
	// lattice. When false only the default reading is produced.
	PreserveAmbiguity bool `yaml:"preserve_ambiguity" json:"preserve_ambiguity"`

	// Overrides maps verb -> object category -> act type, checked before the
	// built-in selectional-restriction tables. Loaded from a YAML file and
	// passed explicitly; never mutated at runtime.
	Overrides map[string]map[string]string `yaml:"overrides,omitempty" json:"overrides,omitempty"`
}

// CacheConfig controls analysis-result caching.
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled" json:"enabled"`
	Dir       string        `yaml:"dir" json:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl" json:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl" json:"disk_ttl"`
}

// ConcurrencyConfig controls batch processing.
type ConcurrencyConfig struct {
	Workers int `yaml:"workers" json:"workers"`
}

// PrepConfig controls the corpus-preparation fetcher.
type PrepConfig struct {
	Timeout           time.Duration `yaml:"timeout" json:"timeout"`
	UserAgent         string        `yaml:"user_agent" json:"user_agent"`
	MaxBodyBytes      int64         `yaml:"max_body_bytes" json:"max_body_bytes"`
	RespectRobots     bool          `yaml:"respect_robots" json:"respect_robots"`
	RequestsPerSecond float64       `yaml:"requests_per_second" json:"requests_per_second"`
	HTTPProxy         string        `yaml:"http_proxy,omitempty" json:"http_proxy,omitempty"`
	HTTPSProxy        string        `yaml:"https_proxy,omitempty" json:"https_proxy,omitempty"`
	NoProxy           string        `yaml:"no_proxy,omitempty" json:"no_proxy,omitempty"`
}

// LLMConfig configures the optional audit-trail gloss.
// The gloss never affects the graph.
type LLMConfig struct {
	Provider  string `yaml:"provider" json:"provider"` // "openai" or "" (disabled)
	Model     string `yaml:"model" json:"model"`
	APIKey    string `yaml:"-" json:"-"`
	BaseURL   string `yaml:"base_url,omitempty" json:"base_url,omitempty"`
	Timeout   int    `yaml:"timeout" json:"timeout"` // seconds
	MaxTokens int    `yaml:"max_tokens" json:"max_tokens"`
}

// OutputConfig controls rendering.
type OutputConfig struct {
	Verbose       bool `yaml:"verbose" json:"verbose"`
	IncludeFooter bool `yaml:"include_footer" json:"include_footer"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Analysis: AnalysisConfig{
			Register:          "",
			PreserveAmbiguity: true,
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       "",
			MemoryTTL: 30 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		Prep: PrepConfig{
			Timeout:           30 * time.Second,
			UserAgent:         "Semograph/0.1 (+https://github.com/ppiankov/semograph)",
			MaxBodyBytes:      2_000_000,
			RespectRobots:     true,
			RequestsPerSecond: 1,
		},
		LLM: LLMConfig{
			Provider:  "",
			Timeout:   30,
			MaxTokens: 1000,
		},
		Output: OutputConfig{
			IncludeFooter: true,
		},
	}
}
