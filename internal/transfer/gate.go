package transfer

import "github.com/bft-labs/scoreship/internal/domain"

// Default eligibility thresholds.
const (
	DefaultMinLevel = 5
	DefaultMinScore = 2000
)

// Gate decides whether an account may enter a transfer sequence.
// It is evaluated against a fresh profile every time, never cached.
type Gate struct {
	MinLevel int
	MinScore int64
}

// DefaultGate returns the level 5 / score 2000 gate.
func DefaultGate() Gate {
	return Gate{MinLevel: DefaultMinLevel, MinScore: DefaultMinScore}
}

// Eligible reports whether p satisfies both thresholds.
func (g Gate) Eligible(p domain.Profile) bool {
	return p.Level >= g.MinLevel && p.Score >= g.MinScore
}
