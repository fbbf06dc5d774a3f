package handlers

import (
	"errors"
	"net/http"
	"time"

	"mysched/internal/domain"
	"mysched/internal/service"

	"github.com/gin-gonic/gin"
)

type ScheduleHandler struct {
	roster *service.RosterService
}

func NewScheduleHandler(roster *service.RosterService) *ScheduleHandler {
	return &ScheduleHandler{roster: roster}
}

// GetSchedule godoc
// @Summary All roster weeks
// @Description Returns the reconciled schedule for the past, current and next weeks.
// @Tags schedule
// @Produce json
// @Success 200 {object} ScheduleResponse
// @Router /api/schedule [get]
func (h *ScheduleHandler) GetSchedule(c *gin.Context) {
	snap := h.roster.Snapshot()

	weeks := make(map[string]WeekScheduleResponse, len(snap.Weeks))
	order := make([]string, 0, len(domain.WeekOrder))
	for _, key := range domain.WeekOrder {
		order = append(order, string(key))
		weeks[string(key)] = weekView(snap.Weeks[key], "")
	}

	c.JSON(http.StatusOK, ScheduleResponse{
		Order:    order,
		Weeks:    weeks,
		LoadedAt: formatLoadedAt(snap.LoadedAt),
	})
}

// GetWeek godoc
// @Summary One roster week
// @Description Returns the reconciled schedule for a single week, optionally filtered by employee name.
// @Tags schedule
// @Produce json
// @Param week path string true "Week key: past|current|next"
// @Param q query string false "Employee name filter (substring, case-insensitive)"
// @Success 200 {object} WeekScheduleResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/schedule/{week} [get]
func (h *ScheduleHandler) GetWeek(c *gin.Context) {
	key, ok := weekKey(c.Param("week"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "week must be one of past|current|next"})
		return
	}

	c.JSON(http.StatusOK, weekView(h.roster.Week(key), c.Query("q")))
}

// ExportWeekCSV godoc
// @Summary Export one week as CSV
// @Description Re-encodes the raw grid of a week as delimited text.
// @Tags schedule
// @Produce plain
// @Param week path string true "Week key: past|current|next"
// @Success 200 {string} string "CSV body"
// @Failure 400 {object} ErrorResponse
// @Router /api/schedule/{week}/export.csv [get]
func (h *ScheduleHandler) ExportWeekCSV(c *gin.Context) {
	key, ok := weekKey(c.Param("week"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "week must be one of past|current|next"})
		return
	}

	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(h.roster.ExportCSV(key)))
}

// Refresh godoc
// @Summary Reload all roster weeks
// @Description Fetches all three week tabs again and replaces the snapshot. No automatic retry is performed on failure.
// @Tags schedule
// @Produce json
// @Success 200 {object} RefreshResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/schedule/refresh [post]
func (h *ScheduleHandler) Refresh(c *gin.Context) {
	if err := h.roster.Refresh(c.Request.Context()); err != nil {
		if errors.Is(err, service.ErrNoData) {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, RefreshResponse{
		Status:   "refreshed",
		LoadedAt: formatLoadedAt(h.roster.Snapshot().LoadedAt),
	})
}

func weekKey(raw string) (domain.WeekKey, bool) {
	key := domain.WeekKey(raw)
	for _, k := range domain.WeekOrder {
		if key == k {
			return key, true
		}
	}
	return "", false
}

// weekView derives the rendering model from a reconciled week: the employee
// list (optionally name-filtered) with a display category per day cell.
func weekView(week domain.WeekSchedule, query string) WeekScheduleResponse {
	records := service.FilterEmployees(week.Employees, query)

	employees := make([]EmployeeView, 0, len(records))
	for _, r := range records {
		days := make([]DayCellView, 0, len(r.Days))
		for _, d := range r.Days {
			days = append(days, DayCellView{
				Start:    d.Start,
				End:      d.End,
				Category: d.Category(),
			})
		}
		employees = append(employees, EmployeeView{Name: r.EmployeeName, Days: days})
	}

	return WeekScheduleResponse{
		Week:       string(week.Key),
		Label:      week.Label,
		DayHeaders: week.DayHeaders,
		Dates:      week.Dates,
		Employees:  employees,
	}
}

func formatLoadedAt(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
