package practicesession

// SessionConfig holds the sizing of a mixed training batch.
type SessionConfig struct {
	TargetCount   int // questions per batch
	ReviewPercent int // share of TargetCount reserved for due reviews, floored
}

// DefaultConfig returns the 20-question, 30% review training mix.
func DefaultConfig() SessionConfig {
	return SessionConfig{
		TargetCount:   20,
		ReviewPercent: 30,
	}
}

// reviewQuota returns how many review questions fit in the batch.
func (c SessionConfig) reviewQuota() int {
	return c.TargetCount * c.ReviewPercent / 100
}
