package schedule

import (
	"testing"

	"poolcare-backend/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func customer(name, day string, order *int) models.Customer {
	return models.Customer{
		ID:         uuid.New(),
		FullName:   name,
		ServiceDay: day,
		SortOrder:  order,
	}
}

func intp(n int) *int { return &n }

// apply replays pending writes onto an in-memory copy of the group.
func apply(group []models.Customer, writes []OrderAssignment) []models.Customer {
	out := append([]models.Customer(nil), group...)
	for _, w := range writes {
		for i := range out {
			if out[i].ID == w.CustomerID {
				v := w.SortOrder
				out[i].SortOrder = &v
			}
		}
	}
	return out
}

func sortedIDs(group []models.Customer) []uuid.UUID {
	sorted := append([]models.Customer(nil), group...)
	SortByOrder(sorted)
	ids := make([]uuid.UUID, len(sorted))
	for i, c := range sorted {
		ids[i] = c.ID
	}
	return ids
}

func TestInitializeOrderAssignsPositions(t *testing.T) {
	customers := []models.Customer{
		customer("Alice", "Monday", nil),
		customer("Bob", "Monday", nil),
		customer("Carol", "Tuesday", nil),
		customer("Dave", "Monday", nil),
	}

	writes := InitializeOrder(customers)
	require.Len(t, writes, 4)

	ordered := apply(customers, writes)
	orders := map[string][]int{}
	for _, c := range ordered {
		orders[c.ServiceDay] = append(orders[c.ServiceDay], *c.SortOrder)
	}
	// Each day group gets exactly 0..n-1 in arrival order
	assert.Equal(t, []int{0, 1, 2}, orders["Monday"])
	assert.Equal(t, []int{0}, orders["Tuesday"])
}

func TestInitializeOrderIsIdempotent(t *testing.T) {
	customers := []models.Customer{
		customer("Alice", "Monday", nil),
		customer("Bob", "Monday", nil),
	}

	ordered := apply(customers, InitializeOrder(customers))
	assert.Empty(t, InitializeOrder(ordered), "second pass must issue no writes")
}

func TestInitializeOrderFillsOnlyMissing(t *testing.T) {
	keep := customer("Alice", "Monday", intp(5))
	fill := customer("Bob", "Monday", nil)

	writes := InitializeOrder([]models.Customer{keep, fill})
	require.Len(t, writes, 1)
	assert.Equal(t, fill.ID, writes[0].CustomerID)
	assert.Equal(t, 1, writes[0].SortOrder) // position within the group, existing values untouched
}

func TestPlanMoveBoundariesAreNoOps(t *testing.T) {
	a := customer("Alice", "Monday", intp(0))
	b := customer("Bob", "Monday", intp(1))
	group := []models.Customer{a, b}

	assert.Empty(t, PlanMove(group, a.ID, MoveUp), "first element cannot move up")
	assert.Empty(t, PlanMove(group, b.ID, MoveDown), "last element cannot move down")

	single := []models.Customer{customer("Solo", "Friday", intp(0))}
	assert.Empty(t, PlanMove(single, single[0].ID, MoveUp))
	assert.Empty(t, PlanMove(single, single[0].ID, MoveDown))

	assert.Empty(t, PlanMove(group, uuid.New(), MoveDown), "unknown id plans nothing")
}

func TestPlanMoveSwapsNeighborOrders(t *testing.T) {
	a := customer("Alice", "Monday", intp(0))
	b := customer("Bob", "Monday", intp(1))
	c := customer("Carol", "Monday", intp(2))
	group := []models.Customer{a, b, c}

	writes := PlanMove(group, b.ID, MoveUp)
	require.Len(t, writes, 2)
	assert.Equal(t, OrderAssignment{CustomerID: b.ID, SortOrder: 0}, writes[0])
	assert.Equal(t, OrderAssignment{CustomerID: a.ID, SortOrder: 1}, writes[1])

	moved := apply(group, writes)
	assert.Equal(t, []uuid.UUID{b.ID, a.ID, c.ID}, sortedIDs(moved))
}

func TestMoveRoundTripRestoresOrder(t *testing.T) {
	a := customer("Alice", "Monday", intp(0))
	b := customer("Bob", "Monday", intp(1))
	c := customer("Carol", "Monday", intp(2))
	group := []models.Customer{a, b, c}
	original := sortedIDs(group)

	up := apply(group, PlanMove(group, b.ID, MoveUp))
	down := apply(up, PlanMove(up, b.ID, MoveDown))

	assert.Equal(t, original, sortedIDs(down))
}

func TestPlanMoveUsesArrivalOrderOnTies(t *testing.T) {
	// Duplicate sort orders are a degraded state: arrival order breaks the
	// tie, and a move still swaps with the stable-sorted neighbor.
	a := customer("Alice", "Monday", intp(0))
	b := customer("Bob", "Monday", intp(0))
	group := []models.Customer{a, b}

	writes := PlanMove(group, b.ID, MoveUp)
	require.Len(t, writes, 2)
	assert.Equal(t, b.ID, writes[0].CustomerID)
	assert.Equal(t, a.ID, writes[1].CustomerID)
}
