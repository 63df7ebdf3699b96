package redis

// Config holds Redis connection and behavior settings
type Config struct {
	// URL is the Redis connection URL (e.g., redis://localhost:6379/0)
	URL string

	// Prefix namespaces every key written by the store
	Prefix string

	// Pool settings
	PoolSize     int
	MinIdleConns int

	// MaxRanks caps the number of wins kept per preset leaderboard
	MaxRanks int
}

// DefaultConfig returns sensible defaults for Redis configuration
func DefaultConfig() Config {
	return Config{
		URL:          "redis://localhost:6379/0",
		Prefix:       "mines",
		PoolSize:     10,
		MinIdleConns: 2,
		MaxRanks:     100,
	}
}
