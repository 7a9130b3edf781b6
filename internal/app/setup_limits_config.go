package app

// LimitsConfig bounds the work a single request can ask for.
type LimitsConfig struct {
	DefaultSimilarLimit   int
	MaxSimilarLimit       int
	DefaultPerSourceLimit int
	MaxPerSourceLimit     int
	MaxTotalLimit         int
	TrendingLimit         int
}

// DefaultLimitsConfig returns the default request limit configuration.
func DefaultLimitsConfig() LimitsConfig {
	return LimitsConfig{
		DefaultSimilarLimit:   10,
		MaxSimilarLimit:       100,
		DefaultPerSourceLimit: 10,
		MaxPerSourceLimit:     50,
		MaxTotalLimit:         500,
		TrendingLimit:         10,
	}
}
