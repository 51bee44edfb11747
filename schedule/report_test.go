package schedule

import (
	"testing"

	"poolcare-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildWeeklyReport(t *testing.T) {
	week := WeekWindow(date(t, "2024-07-17"), 0) // Jul 15..21

	monSecond := customer("Mon Second", "Monday", intp(1))
	monFirst := customer("Mon First", "Monday", intp(0))
	tue := customer("Tue Pool", "Tuesday", intp(0))
	skipped := customer("Not Serviced", "Monday", intp(2))

	logs := []models.ServiceLog{
		logFor(monSecond, "2024-07-15"),
		logFor(monFirst, "2024-07-15"),
		logFor(tue, "2024-07-16"),
		logFor(skipped, "2024-07-08"), // previous week, filtered out
	}

	report := BuildWeeklyReport([]models.Customer{monSecond, monFirst, tue, skipped}, logs, week)

	require.Len(t, report.Days, 5, "monday through friday, even when empty")
	assert.Equal(t, Weekdays, []string{report.Days[0].Day, report.Days[1].Day, report.Days[2].Day, report.Days[3].Day, report.Days[4].Day})

	mondayRows := report.Days[0]
	require.Equal(t, 2, mondayRows.Services, "only customers with a log this week produce rows")
	assert.Equal(t, monFirst.ID, mondayRows.Rows[0].Customer.ID, "rows follow roster position")
	assert.Equal(t, monSecond.ID, mondayRows.Rows[1].Customer.ID)

	assert.Equal(t, 1, report.Days[1].Services)
	assert.Equal(t, 0, report.Days[2].Services)
	assert.Equal(t, 3, report.TotalServices)
}

func TestBuildWeeklyReportPicksFirstLogPerCustomer(t *testing.T) {
	week := WeekWindow(date(t, "2024-07-17"), 0)
	c := customer("Twice", "Monday", intp(0))

	later := logFor(c, "2024-07-18")
	earlier := logFor(c, "2024-07-15")

	report := BuildWeeklyReport([]models.Customer{c}, []models.ServiceLog{later, earlier}, week)
	require.Equal(t, 1, report.Days[0].Services, "multiple logs collapse to one row")
	assert.Equal(t, later.ID, report.Days[0].Rows[0].Log.ID, "first match in input order wins")
}

func TestBuildMonthlyChemicalReport(t *testing.T) {
	march := MonthWindow(date(t, "2024-03-15"), 0)

	a := customer("Alpha", "Monday", intp(0))
	b := customer("Beta", "Tuesday", intp(0))

	records := []models.ChemicalUsage{
		usageFor(a, "2024-03-10", "Soda Ash"),
		usageFor(a, "2024-03-03", "Liquid Chlorine"),
		usageFor(b, "2024-03-12", "Salt"),
		usageFor(b, "2024-04-01", "Clarifier"), // outside the window
	}

	report := BuildMonthlyChemicalReport([]models.Customer{a, b}, records, march)

	require.Len(t, report.Groups, 2)
	assert.Equal(t, 2, report.Groups[0].Entries)
	assert.Equal(t, 1, report.Groups[1].Entries)
	assert.Equal(t, 3, report.TotalEntries)

	// Records keep their input order (callers pass newest first)
	assert.Equal(t, "Soda Ash", report.Groups[0].Records[0].ChemicalType)
	assert.Equal(t, "Liquid Chlorine", report.Groups[0].Records[1].ChemicalType)
}
