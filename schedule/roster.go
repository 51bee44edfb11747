package schedule

import (
	"sort"
	"strings"
	"time"

	"poolcare-backend/models"

	"github.com/google/uuid"
)

// Weekdays is the Monday..Friday service sequence used for rosters, the
// missed-service scan and the weekly report. Saturday pools exist but never
// take part in the weekday route views.
var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

// TodayRoster returns the customers scheduled for now's weekday, sorted by
// sort order. Saturdays and Sundays have no roster.
func TodayRoster(customers []models.Customer, now time.Time) []models.Customer {
	day := now.Weekday().String()
	if day == "Saturday" || day == "Sunday" {
		return nil
	}
	var roster []models.Customer
	for _, c := range customers {
		if c.ServiceDay == day {
			roster = append(roster, c)
		}
	}
	SortByOrder(roster)
	return roster
}

// SortByOrder sorts customers by sort order ascending. A missing sort order
// counts as zero; equal values keep their arrival order.
func SortByOrder(customers []models.Customer) {
	sort.SliceStable(customers, func(i, j int) bool {
		return orderOf(customers[i]) < orderOf(customers[j])
	})
}

func orderOf(c models.Customer) int {
	if c.SortOrder == nil {
		return 0
	}
	return *c.SortOrder
}

// CompletionSet indexes which customers already have a service log dated
// today. Multiple same-day logs collapse to a single entry.
func CompletionSet(logs []models.ServiceLog, now time.Time) map[uuid.UUID]bool {
	today := now.Format(dateLayout)
	done := make(map[uuid.UUID]bool)
	for _, l := range logs {
		if l.ServiceDate == today {
			done[l.CustomerID] = true
		}
	}
	return done
}

// LastWeekLogIndex maps each customer to the first log in input order that
// falls inside last week's window. First match wins: callers passing logs
// sorted by service date descending get the most recent log of that week.
func LastWeekLogIndex(logs []models.ServiceLog, now time.Time) map[uuid.UUID]models.ServiceLog {
	lastWeek := WeekWindow(now, -1)
	index := make(map[uuid.UUID]models.ServiceLog)
	for _, l := range logs {
		if _, seen := index[l.CustomerID]; seen {
			continue
		}
		if lastWeek.ContainsDate(l.ServiceDate) {
			index[l.CustomerID] = l
		}
	}
	return index
}

// MissedService flags a customer whose scheduled day already passed this
// week without a single service log inside the week's window.
type MissedService struct {
	Customer     models.Customer `json:"customer"`
	ScheduledDay string          `json:"scheduledDay"`
}

// MissedServices scans every weekday strictly before today in the
// Monday..Friday sequence and reports customers scheduled on those days
// that have no log this week. The scan covers all customers, not just
// today's roster. Result order is weekday order, then input order within a
// weekday. On weekends (and Mondays, with no earlier days) nothing is
// reported.
func MissedServices(customers []models.Customer, logs []models.ServiceLog, now time.Time) []MissedService {
	todayIdx := indexOfDay(now.Weekday().String())
	if todayIdx <= 0 {
		return nil
	}

	week := WeekWindow(now, 0)
	logged := make(map[uuid.UUID]bool)
	for _, l := range logs {
		if week.ContainsDate(l.ServiceDate) {
			logged[l.CustomerID] = true
		}
	}

	var missed []MissedService
	for _, day := range Weekdays[:todayIdx] {
		for _, c := range customers {
			if c.ServiceDay != day || logged[c.ID] {
				continue
			}
			missed = append(missed, MissedService{Customer: c, ScheduledDay: day})
		}
	}
	return missed
}

func indexOfDay(day string) int {
	for i, d := range Weekdays {
		if d == day {
			return i
		}
	}
	return -1
}

// CustomerHistory pairs a customer with their service logs from the
// trailing month.
type CustomerHistory struct {
	Customer models.Customer     `json:"customer"`
	Logs     []models.ServiceLog `json:"logs"`
}

// HistoryGroups groups the past month's logs by customer, keeping the input
// order of both customers and logs. Customers without a log in the window
// are dropped.
func HistoryGroups(customers []models.Customer, logs []models.ServiceLog, now time.Time) []CustomerHistory {
	ago := now.AddDate(0, -1, 0)
	window := Window{
		Start: time.Date(ago.Year(), ago.Month(), ago.Day(), 0, 0, 0, 0, time.UTC),
		End:   time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
	}

	byCustomer := make(map[uuid.UUID][]models.ServiceLog)
	for _, l := range logs {
		if window.ContainsDate(l.ServiceDate) {
			byCustomer[l.CustomerID] = append(byCustomer[l.CustomerID], l)
		}
	}

	var groups []CustomerHistory
	for _, c := range customers {
		if recent := byCustomer[c.ID]; len(recent) > 0 {
			groups = append(groups, CustomerHistory{Customer: c, Logs: recent})
		}
	}
	return groups
}

// CustomerUsage pairs a customer with their chemical usage records for a
// month window.
type CustomerUsage struct {
	Customer models.Customer        `json:"customer"`
	Records  []models.ChemicalUsage `json:"records"`
}

// MonthlyUsageGroups buckets the month's usage records by customer.
// Customers without records that month are omitted entirely, and groups are
// ordered by customer name, case-insensitively. Records referencing a
// deleted customer are skipped; customer deletion does not cascade.
func MonthlyUsageGroups(customers []models.Customer, records []models.ChemicalUsage, month Window) []CustomerUsage {
	byID := make(map[uuid.UUID]models.Customer, len(customers))
	for _, c := range customers {
		byID[c.ID] = c
	}

	grouped := make(map[uuid.UUID][]models.ChemicalUsage)
	for _, r := range records {
		if !month.ContainsDate(r.CreatedDate) {
			continue
		}
		if _, ok := byID[r.CustomerID]; !ok {
			continue
		}
		grouped[r.CustomerID] = append(grouped[r.CustomerID], r)
	}

	groups := make([]CustomerUsage, 0, len(grouped))
	for id, recs := range grouped {
		groups = append(groups, CustomerUsage{Customer: byID[id], Records: recs})
	}
	sort.Slice(groups, func(i, j int) bool {
		return strings.ToLower(groups[i].Customer.FullName) < strings.ToLower(groups[j].Customer.FullName)
	})
	return groups
}
