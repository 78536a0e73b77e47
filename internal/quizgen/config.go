package quizgen

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// Temperature controls provider output randomness (0.0-1.0). Kept
	// low so regenerating from the same passage stays on topic.
	Temperature float64
}

// DefaultConfig returns a Config with recommended defaults.
func DefaultConfig() Config {
	return Config{
		Temperature: 0.2,
	}
}
