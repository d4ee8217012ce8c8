package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Rule is the limit applied to one endpoint pattern. Path is matched by
// prefix; an empty Method matches all methods.
type Rule struct {
	Path   string
	Method string
	Limit  int // Maximum requests per window; <= 0 means unlimited
	Window time.Duration
	Burst  int // Burst capacity, defaults to Limit
}

// Config holds limiter configuration.
type Config struct {
	Enabled       bool
	DefaultLimit  int
	DefaultWindow time.Duration
	SweepInterval time.Duration
	Exempt        map[string]bool
	Rules         []Rule
}

// DefaultConfig returns the built-in limits: scoring and analysis calls are
// expensive (LLM-backed for analysis), reads fall under the default limit,
// and health checks are unlimited.
func DefaultConfig() *Config {
	return &Config{
		Enabled:       true,
		DefaultLimit:  600,
		DefaultWindow: time.Minute,
		SweepInterval: 5 * time.Minute,
		Exempt:        map[string]bool{},
		Rules: []Rule{
			{Path: "/health", Method: "GET", Limit: 0},
			{Path: "/campaigns/", Method: "POST", Limit: 10, Window: time.Hour, Burst: 2},
			{Path: "/search/score", Method: "POST", Limit: 120, Window: time.Minute, Burst: 20},
		},
	}
}

// LoadConfig builds a Config from environment variables, falling back to the
// defaults for anything unset.
func LoadConfig() *Config {
	cfg := DefaultConfig()
	cfg.Enabled = envBool("RATE_LIMIT_ENABLED", cfg.Enabled)
	cfg.DefaultLimit = envInt("RATE_LIMIT_DEFAULT_LIMIT", cfg.DefaultLimit)
	cfg.DefaultWindow = envDuration("RATE_LIMIT_DEFAULT_WINDOW", cfg.DefaultWindow)
	cfg.SweepInterval = envDuration("RATE_LIMIT_SWEEP_INTERVAL", cfg.SweepInterval)

	for _, ip := range strings.Split(os.Getenv("RATE_LIMIT_EXEMPT"), ",") {
		if ip = strings.TrimSpace(ip); ip != "" {
			cfg.Exempt[ip] = true
		}
	}
	return cfg
}

// match returns the first rule whose path prefix and method match, or a
// default rule when none does.
func (c *Config) match(path, method string) Rule {
	for _, rule := range c.Rules {
		if !strings.HasPrefix(path, rule.Path) {
			continue
		}
		if rule.Method != "" && rule.Method != method {
			continue
		}
		return rule
	}
	return Rule{Limit: c.DefaultLimit, Window: c.DefaultWindow}
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
