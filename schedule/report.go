package schedule

import "poolcare-backend/models"

// WeeklyRow is one (day, customer) line of the weekly service report. Only
// customers with a log in the selected week produce a row.
type WeeklyRow struct {
	Customer models.Customer   `json:"customer"`
	Log      models.ServiceLog `json:"log"`
}

// WeeklyDay groups a report day's rows with its service count.
type WeeklyDay struct {
	Day      string      `json:"day"`
	Services int         `json:"services"`
	Rows     []WeeklyRow `json:"rows"`
}

type WeeklyReport struct {
	Week          Window      `json:"week"`
	Days          []WeeklyDay `json:"days"`
	TotalServices int         `json:"totalServices"`
}

// BuildWeeklyReport assembles the Monday..Friday service table for one week
// window. Rows follow the fixed weekday sequence, then each customer's
// roster position within the day. A customer's row carries the first of
// their logs found in the window (input order), matching the single-log-
// per-day expectation. The assembler only reshapes; all filtering happened
// upstream.
func BuildWeeklyReport(customers []models.Customer, logs []models.ServiceLog, week Window) WeeklyReport {
	var weekLogs []models.ServiceLog
	for _, l := range logs {
		if week.ContainsDate(l.ServiceDate) {
			weekLogs = append(weekLogs, l)
		}
	}

	report := WeeklyReport{Week: week}
	for _, day := range Weekdays {
		var roster []models.Customer
		for _, c := range customers {
			if c.ServiceDay == day {
				roster = append(roster, c)
			}
		}
		SortByOrder(roster)

		entry := WeeklyDay{Day: day}
		for _, c := range roster {
			for _, l := range weekLogs {
				if l.CustomerID == c.ID {
					entry.Rows = append(entry.Rows, WeeklyRow{Customer: c, Log: l})
					break
				}
			}
		}
		entry.Services = len(entry.Rows)
		report.TotalServices += entry.Services
		report.Days = append(report.Days, entry)
	}
	return report
}

// UsageGroup is one customer's section of the monthly chemical report.
type UsageGroup struct {
	Customer models.Customer        `json:"customer"`
	Entries  int                    `json:"entries"`
	Records  []models.ChemicalUsage `json:"records"`
}

type MonthlyChemicalReport struct {
	Month        Window       `json:"month"`
	Groups       []UsageGroup `json:"groups"`
	TotalEntries int          `json:"totalEntries"`
}

// BuildMonthlyChemicalReport assembles the per-customer chemical usage
// table for one month window. Group order is alphabetical by customer name;
// records inside a group keep their input order, which callers supply
// sorted by creation date descending.
func BuildMonthlyChemicalReport(customers []models.Customer, records []models.ChemicalUsage, month Window) MonthlyChemicalReport {
	report := MonthlyChemicalReport{Month: month}
	for _, g := range MonthlyUsageGroups(customers, records, month) {
		group := UsageGroup{Customer: g.Customer, Entries: len(g.Records), Records: g.Records}
		report.TotalEntries += group.Entries
		report.Groups = append(report.Groups, group)
	}
	return report
}
