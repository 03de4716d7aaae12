package businesstime

import (
	"time"

	"github.com/msto63/bizclock/pkg/businesstime/constraint"
)

// Constraint decides whether an instant is business time. Implementations
// must be pure and deterministic.
type Constraint interface {
	IsBusinessTime(t time.Time) bool
}

// ConstraintFunc adapts a plain function to Constraint
type ConstraintFunc func(t time.Time) bool

// IsBusinessTime calls f(t)
func (f ConstraintFunc) IsBusinessTime(t time.Time) bool {
	return f(t)
}

// DefaultConstraints returns 09:00-17:00 on Monday to Friday
func DefaultConstraints() []Constraint {
	return []Constraint{
		constraint.HourWindow{From: 9, To: 17},
		constraint.WorkWeek(),
	}
}

// allOf evaluates constraints in order and stops at the first rejection.
// An empty list accepts every instant.
func allOf(constraints []Constraint, t time.Time) bool {
	for _, c := range constraints {
		if !c.IsBusinessTime(t) {
			return false
		}
	}
	return true
}
