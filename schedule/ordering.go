package schedule

import (
	"sort"

	"poolcare-backend/models"

	"github.com/google/uuid"
)

// OrderAssignment is one pending sort-order write.
type OrderAssignment struct {
	CustomerID uuid.UUID
	SortOrder  int
}

// InitializeOrder returns the writes needed to give every customer lacking
// a sort order its position within its service-day group, groups taken in
// ascending service-day order and arrival order within a group. A fully
// ordered list produces no writes, so re-running the pass is a no-op.
// Existing duplicate values are left alone; only absent values are filled.
func InitializeOrder(customers []models.Customer) []OrderAssignment {
	groups := make(map[string][]models.Customer)
	var days []string
	for _, c := range customers {
		if _, ok := groups[c.ServiceDay]; !ok {
			days = append(days, c.ServiceDay)
		}
		groups[c.ServiceDay] = append(groups[c.ServiceDay], c)
	}
	sort.Strings(days)

	var writes []OrderAssignment
	for _, day := range days {
		for i, c := range groups[day] {
			if c.SortOrder == nil {
				writes = append(writes, OrderAssignment{CustomerID: c.ID, SortOrder: i})
			}
		}
	}
	return writes
}

// MoveDirection selects which neighbor a move swaps with.
type MoveDirection int

const (
	MoveUp MoveDirection = iota
	MoveDown
)

// PlanMove computes the pair of sort-order writes that swaps a customer
// with its neighbor inside its service-day group. The group is sorted by
// current sort order (arrival-order tiebreak) before the neighbor is
// picked. Moves off either end of the group, and unknown ids, return no
// writes.
func PlanMove(dayGroup []models.Customer, id uuid.UUID, dir MoveDirection) []OrderAssignment {
	group := append([]models.Customer(nil), dayGroup...)
	SortByOrder(group)

	idx := -1
	for i, c := range group {
		if c.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}

	other := idx - 1
	if dir == MoveDown {
		other = idx + 1
	}
	if other < 0 || other >= len(group) {
		return nil
	}

	return []OrderAssignment{
		{CustomerID: group[idx].ID, SortOrder: orderOf(group[other])},
		{CustomerID: group[other].ID, SortOrder: orderOf(group[idx])},
	}
}
