package handlers

import "mysched/internal/domain"

type ErrorResponse struct {
	Error string `json:"error"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

// DayCellView is the rendering contract for one day cell: the raw start/end
// text plus the derived display category, which is the sole source of
// per-cell visual state.
type DayCellView struct {
	Start    string                 `json:"start"`
	End      string                 `json:"end"`
	Category domain.DisplayCategory `json:"category"`
}

type EmployeeView struct {
	Name string        `json:"name"`
	Days []DayCellView `json:"days"`
}

type WeekScheduleResponse struct {
	Week       string         `json:"week"`
	Label      string         `json:"label"`
	DayHeaders []string       `json:"day_headers"`
	Dates      []string       `json:"dates"`
	Employees  []EmployeeView `json:"employees"`
}

type ScheduleResponse struct {
	Order    []string                        `json:"order"`
	Weeks    map[string]WeekScheduleResponse `json:"weeks"`
	LoadedAt string                          `json:"loaded_at"`
}

type RefreshResponse struct {
	Status   string `json:"status"`
	LoadedAt string `json:"loaded_at"`
}

type PromotionsResponse struct {
	Promotions []domain.PromotionRecord `json:"promotions"`
	Notice     string                   `json:"notice,omitempty"`
}
