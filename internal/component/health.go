// internal/component/health.go
package component

// Health is remaining hit points. The value is allowed to go negative;
// deadness is always the derived predicate Value <= 0, never a flag.
type Health struct {
	Value float64
}

func (h *Health) Dead() bool {
	return h.Value <= 0
}
