package domain

import "time"

// WeekKey identifies one of the three roster weeks published as separate
// spreadsheet tabs.
type WeekKey string

const (
	WeekPast    WeekKey = "past"
	WeekCurrent WeekKey = "current"
	WeekNext    WeekKey = "next"
)

// WeekOrder is the fixed navigation order for week paging.
var WeekOrder = []WeekKey{WeekPast, WeekCurrent, WeekNext}

// WeekLabels maps week keys to their user-facing labels.
var WeekLabels = map[WeekKey]string{
	WeekPast:    "Past Week",
	WeekCurrent: "Current Week",
	WeekNext:    "Next Week",
}

// DefaultDayHeaders is the column layout assumed when a sheet ships without a
// usable header row. The roster week runs THU through WED, not on the
// calendar week boundary.
var DefaultDayHeaders = []string{"Employee", "THU", "FRI", "SAT", "SUN", "MON", "TUE", "WED"}

// DaysPerWeek is the fixed number of day columns per roster week.
const DaysPerWeek = 7

// DayCell holds the two raw text values at one employee/day intersection.
// Start and End are either a clock-in/clock-out pair or a status keyword
// duplicated or split across the two slots; both may be empty.
type DayCell struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// EmployeeDayRecord is one employee's week as reconstructed from the sheet.
// Days always has exactly DaysPerWeek entries, padded with empty cells when
// the source row is short.
type EmployeeDayRecord struct {
	EmployeeName string    `json:"employee_name"`
	Days         []DayCell `json:"days"`
}

// WeekSchedule is the reconciled view of a single roster week.
type WeekSchedule struct {
	Key        WeekKey             `json:"week"`
	Label      string              `json:"label"`
	DayHeaders []string            `json:"day_headers"`
	Dates      []string            `json:"dates"`
	Employees  []EmployeeDayRecord `json:"employees"`
}

// RosterSnapshot is the shared data model produced by one load cycle. It is
// replaced wholesale after all three week fetches settle; it is never
// partially updated.
type RosterSnapshot struct {
	Weeks    map[WeekKey]WeekSchedule `json:"weeks"`
	LoadedAt time.Time                `json:"loaded_at"`
}

// PromotionRecord is one row of the promotions tab. Every field except ID
// defaults to the empty string; records without a title are dropped during
// parsing.
type PromotionRecord struct {
	ID             int    `json:"id"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	Requirements   string `json:"requirements"`
	Limitations    string `json:"limitations"`
	Type           string `json:"type"`
	Discount       string `json:"discount"`
	ValidUntil     string `json:"valid_until"`
	Image          string `json:"image"`
	Link           string `json:"link"`
	Devices900     string `json:"devices_900"`
	Devices630     string `json:"devices_630"`
	Devices315     string `json:"devices_315"`
	AdditionalInfo string `json:"additional_info"`
}
