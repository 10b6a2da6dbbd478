package drip

// Draw reports whether an event with probability p fires.
// It always consumes exactly one value from rng, so a seeded run draws the
// same sequence whatever p is. p outside [0,1] simply biases the result.
func Draw(p float64, rng RandomSource) bool {
	return rng.Float64() < p
}
