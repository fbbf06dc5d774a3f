package service

import (
	"strings"

	"mysched/internal/csvgrid"
	"mysched/internal/domain"
)

// locateHeader finds the header row (first cell contains "employee",
// case-insensitively) and the date row immediately after it. Sheets drift:
// the block is not at a fixed offset, and some weeks are missing it
// entirely, in which case rows 0 and 1 are assumed.
func locateHeader(grid csvgrid.Grid) (headerIdx, dateIdx int) {
	for i := range grid {
		if strings.Contains(strings.ToLower(grid.Cell(i, 0)), "employee") {
			return i, i + 1
		}
	}
	return 0, 1
}

// dateRow returns the raw date row of a grid, used for the
// duplicate-sheet diagnostic.
func dateRow(grid csvgrid.Grid) []string {
	_, dateIdx := locateHeader(grid)
	return grid.Row(dateIdx)
}

// reconcileWeek rebuilds the employee records of one roster week from its
// raw grid. The sheet lays each employee out as one or two rows: a name row
// carrying shift starts, optionally followed by a row with an empty first
// cell carrying shift ends.
func reconcileWeek(key domain.WeekKey, grid csvgrid.Grid) domain.WeekSchedule {
	headerIdx, dateIdx := locateHeader(grid)

	dayHeaders := grid.Row(headerIdx)
	if len(dayHeaders) == 0 {
		dayHeaders = domain.DefaultDayHeaders
	}

	dates := make([]string, domain.DaysPerWeek)
	for col := 1; col <= domain.DaysPerWeek; col++ {
		dates[col-1] = grid.Cell(dateIdx, col)
	}

	employees := []domain.EmployeeDayRecord{}
	for i := dateIdx + 1; i < len(grid); i++ {
		name := strings.TrimSpace(grid.Cell(i, 0))

		// Stray repeated headers and continuation rows are not employees.
		if name == "" || strings.Contains(strings.ToLower(name), "employee") {
			continue
		}

		// The next row is this employee's paired time-row when its first
		// cell is empty but it carries at least one day value. Otherwise the
		// employee has no end times at all.
		hasTimeRow := isTimeRow(grid.Row(i + 1))

		days := make([]domain.DayCell, domain.DaysPerWeek)
		for col := 1; col <= domain.DaysPerWeek; col++ {
			days[col-1].Start = strings.TrimSpace(grid.Cell(i, col))
			if hasTimeRow {
				days[col-1].End = strings.TrimSpace(grid.Cell(i+1, col))
			}
		}

		employees = append(employees, domain.EmployeeDayRecord{
			EmployeeName: name,
			Days:         days,
		})

		if hasTimeRow {
			i++
		}
	}

	return domain.WeekSchedule{
		Key:        key,
		Label:      domain.WeekLabels[key],
		DayHeaders: dayHeaders,
		Dates:      dates,
		Employees:  employees,
	}
}

func isTimeRow(row []string) bool {
	if len(row) == 0 || strings.TrimSpace(row[0]) != "" {
		return false
	}
	for _, cell := range row[1:] {
		if strings.TrimSpace(cell) != "" {
			return true
		}
	}
	return false
}
