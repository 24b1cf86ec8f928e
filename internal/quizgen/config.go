package quizgen

// Config controls the generation pipeline.
type Config struct {
	// Validators run in order over every generated batch; the first
	// failure rejects the batch and routes it to the fallback bank.
	Validators []BatchValidator

	// MaxTokens is the token budget for one batch response.
	MaxTokens int

	// Temperature controls output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns the standard validator chain and generation
// defaults. A 10-question batch with options and fun facts comfortably
// fits the token budget.
func DefaultConfig() Config {
	return Config{
		Validators: []BatchValidator{
			&StructuralValidator{},
			&SafetyValidator{},
		},
		MaxTokens:   3000,
		Temperature: 0.7,
	}
}
