package domain

import "strings"

// DisplayCategory is the five-way classification of a day cell. It is always
// derived from a DayCell at render time, never stored.
type DisplayCategory string

const (
	CategoryHoliday DisplayCategory = "holiday"
	CategoryOff     DisplayCategory = "off"
	CategoryManager DisplayCategory = "manager"
	CategoryTimed   DisplayCategory = "timed"
	CategoryEmpty   DisplayCategory = "empty"
)

// Category classifies the cell by substring containment on the uppercased,
// trimmed halves. A status keyword in either half overrides a time value
// (source cells may combine both, e.g. "10-6 MGR"), so the checks run in a
// fixed priority order: Holiday, Off, Manager, Empty, Timed.
func (c DayCell) Category() DisplayCategory {
	start := strings.ToUpper(strings.TrimSpace(c.Start))
	end := strings.ToUpper(strings.TrimSpace(c.End))

	switch {
	case strings.Contains(start, "HOLIDAY") || strings.Contains(end, "HOLIDAY"):
		return CategoryHoliday
	case strings.Contains(start, "OFF") || strings.Contains(end, "OFF"):
		return CategoryOff
	case strings.Contains(start, "MGR") || strings.Contains(end, "MGR") ||
		strings.Contains(start, "MANAGER") || strings.Contains(end, "MANAGER"):
		return CategoryManager
	case start == "" && end == "":
		return CategoryEmpty
	default:
		return CategoryTimed
	}
}
