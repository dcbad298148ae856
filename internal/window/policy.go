// internal/window/policy.go
package window

import "depthstat/internal/stats"

// Mode selects how window boundaries are detected.
type Mode int

const (
	// Position closes a window once it spans a fixed range of reference
	// positions.
	Position Mode = iota
	// Mapped closes a window once it holds a fixed count of covered
	// positions.
	Mapped
	// None never closes a window; chromosomes are reported whole.
	None
)

// Policy reports whether the window opened at buf should close, given the
// accumulator state after the latest record. Pure predicate, no side
// effects.
type Policy interface {
	ShouldClose(acc stats.Accumulator, buf stats.Boundary) bool
}

// ForMode picks the policy once, at startup, from the parsed options.
func ForMode(m Mode, size int) Policy {
	switch m {
	case Mapped:
		return mappedPolicy{size: size}
	case None:
		return nonePolicy{}
	default:
		return spanPolicy{size: size}
	}
}

type spanPolicy struct{ size int }

func (p spanPolicy) ShouldClose(acc stats.Accumulator, buf stats.Boundary) bool {
	return acc.Pos-buf.Pos >= p.size
}

type mappedPolicy struct{ size int }

func (p mappedPolicy) ShouldClose(acc stats.Accumulator, buf stats.Boundary) bool {
	return acc.Nuc-buf.Nuc >= p.size
}

type nonePolicy struct{}

func (nonePolicy) ShouldClose(stats.Accumulator, stats.Boundary) bool { return false }
