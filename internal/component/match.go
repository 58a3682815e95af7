// internal/component/match.go
package component

// MatchStatus is the terminal-aware state machine of the whole match.
// GameOver and GameWon are absorbing: once reached, ticks are no-ops.
type MatchStatus int

const (
	StatusIdle MatchStatus = iota
	StatusWaveActive
	StatusWaveComplete
	StatusGameOver
	StatusGameWon
)

func (s MatchStatus) Terminal() bool {
	return s == StatusGameOver || s == StatusGameWon
}

func (s MatchStatus) String() string {
	switch s {
	case StatusIdle:
		return "Idle"
	case StatusWaveActive:
		return "WaveActive"
	case StatusWaveComplete:
		return "WaveComplete"
	case StatusGameOver:
		return "GameOver"
	case StatusGameWon:
		return "GameWon"
	default:
		return "Unknown"
	}
}
