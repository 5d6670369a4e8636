package result

// Result is the actual final score for one fixture. A fixture without a
// result is still pending for scoring purposes.
type Result struct {
	FixtureID string
	Home      int
	Away      int
}

// Set maps fixture id to its posted result.
type Set map[string]Result
