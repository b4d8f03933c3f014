package model

import "time"

// Config holds the full application configuration.
type Config struct {
	HTTP        HTTPConfig        `yaml:"http" json:"http"`
	Cache       CacheConfig       `yaml:"cache" json:"cache"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" json:"concurrency"`
	LLM         LLMConfig         `yaml:"llm" json:"llm"`
	Output      OutputConfig      `yaml:"output" json:"output"`
}

// HTTPConfig configures the extraction-service client.
type HTTPConfig struct {
	Endpoint    string        `yaml:"endpoint" json:"endpoint"` // base URL of the extraction service
	Timeout     time.Duration `yaml:"timeout" json:"timeout"`
	UserAgent   string        `yaml:"user_agent" json:"user_agent"`
	MaxRetries  int           `yaml:"max_retries" json:"max_retries"`
	InsecureTLS bool          `yaml:"insecure_tls" json:"insecure_tls"`
	HTTPProxy   string        `yaml:"http_proxy" json:"http_proxy"`
	HTTPSProxy  string        `yaml:"https_proxy" json:"https_proxy"`
	NoProxy     string        `yaml:"no_proxy" json:"no_proxy"`
}

// CacheConfig configures extraction-response caching.
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled" json:"enabled"`
	Dir       string        `yaml:"dir" json:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl" json:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl" json:"disk_ttl"`
}

// ConcurrencyConfig bounds parallel work.
type ConcurrencyConfig struct {
	ReviewWorkers     int     `yaml:"review_workers" json:"review_workers"`
	RequestsPerSecond float64 `yaml:"requests_per_second" json:"requests_per_second"`
	Burst             int     `yaml:"burst" json:"burst"`
}

// LLMConfig configures the optional review summarizer.
type LLMConfig struct {
	Provider  string `yaml:"provider" json:"provider"` // "openai" or "" (disabled)
	Model     string `yaml:"model" json:"model"`
	APIKey    string `yaml:"-" json:"-"` // from environment, never persisted
	BaseURL   string `yaml:"base_url" json:"base_url"`
	Timeout   int    `yaml:"timeout_seconds" json:"timeout_seconds"`
	MaxTokens int    `yaml:"max_tokens" json:"max_tokens"`
}

// OutputConfig configures report rendering.
type OutputConfig struct {
	Verbose       bool `yaml:"verbose" json:"verbose"`
	IncludeFooter bool `yaml:"include_footer" json:"include_footer"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Endpoint:   "http://localhost:8000",
			Timeout:    90 * time.Second,
			UserAgent:  "appraisalint/0.1 (+https://github.com/reviewdesk/appraisalint)",
			MaxRetries: 3,
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       "",
			MemoryTTL: 15 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
		Concurrency: ConcurrencyConfig{
			ReviewWorkers:     8,
			RequestsPerSecond: 2,
			Burst:             2,
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
