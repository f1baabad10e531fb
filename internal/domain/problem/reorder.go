package problem

import (
	"sort"

	"github.com/Bitshifter-9/cp-tracker/internal/domain/shared"
)

// Move describes the outcome of a reorder: the two problems whose order
// values were swapped, or a no-op when the target was already at the
// requested boundary. On a real move exactly these two records change;
// every other member of the group keeps its stored order.
type Move struct {
	// A and B carry the swapped order values. Nil on a no-op.
	A, B *Problem
}

// IsNoop reports whether the move changed nothing.
func (m Move) IsNoop() bool {
	return m.A == nil && m.B == nil
}

// SortGroup orders a (sheet, rating) group ascending by stored order
// value. The sort is stable so that problems with colliding order values
// keep their fetch order, which stands in for insertion order.
func SortGroup(group []*Problem) {
	sort.SliceStable(group, func(i, j int) bool {
		return group[i].Order < group[j].Order
	})
}

// Reorder moves the target one position up or down within its group by
// swapping stored order values with the adjacent element. The group
// slice must contain every problem sharing the target's (team, sheet,
// rating); it is sorted in place.
//
// This is deliberately a value swap, not a renumbering: order values may
// drift or collide across a group's lifetime, and that is tolerated
// because only within-group relative order is read. Boundary moves
// succeed as no-ops, so repeating a move against a boundary is
// idempotent.
func Reorder(group []*Problem, targetID string, direction shared.Direction) (Move, error) {
	if !direction.IsValid() {
		return Move{}, shared.ErrInvalidDirection
	}

	SortGroup(group)

	idx := -1
	for i, p := range group {
		if p.ID == targetID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return Move{}, shared.ErrProblemNotFound
	}

	var neighbor int
	switch direction {
	case shared.DirectionUp:
		if idx == 0 {
			return Move{}, nil
		}
		neighbor = idx - 1
	case shared.DirectionDown:
		if idx == len(group)-1 {
			return Move{}, nil
		}
		neighbor = idx + 1
	}

	group[idx].Order, group[neighbor].Order = group[neighbor].Order, group[idx].Order
	return Move{A: group[idx], B: group[neighbor]}, nil
}
