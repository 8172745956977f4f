package config

import "time"

// NewsConfig controls the MLB Stats API news lookups.
type NewsConfig struct {
	Enabled  bool
	BaseURL  string
	CacheTTL time.Duration
}

func loadNews() NewsConfig {
	return NewsConfig{
		Enabled:  boolEnvOrDefault(envNewsOn, true),
		BaseURL:  envOrDefault(envNewsBaseURL, ""),
		CacheTTL: durationEnvOrDefault(envNewsCacheTTL, defaultNewsCacheTTL),
	}
}
