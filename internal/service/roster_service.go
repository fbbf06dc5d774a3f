package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"mysched/internal/csvgrid"
	"mysched/internal/domain"
	"mysched/internal/sheets"
)

// ErrNoData reports a load cycle where every week resolved empty. The caller
// surfaces it as a visible error with a retry affordance; no automatic retry
// happens here.
var ErrNoData = errors.New("no schedule data found in any sheet")

// minUsableRows guards against accepting a tab that holds only the header
// and date preamble.
const minUsableRows = 2

// RosterService loads the three roster-week tabs, keeps the latest raw grids
// as a snapshot, and reconciles them into week schedules on demand.
type RosterService struct {
	client sheets.Client
	tabs   map[domain.WeekKey]string
	logger *slog.Logger

	mu       sync.RWMutex
	grids    map[domain.WeekKey]csvgrid.Grid
	loadedAt time.Time
}

func NewRosterService(client sheets.Client, tabs map[domain.WeekKey]string, logger *slog.Logger) *RosterService {
	return &RosterService{
		client: client,
		tabs:   tabs,
		logger: logger,
		grids:  map[domain.WeekKey]csvgrid.Grid{},
	}
}

// Refresh fetches all three weeks concurrently and replaces the snapshot in
// one write after every fetch has settled. A week that cannot be resolved
// degrades to an empty grid without blocking its siblings; only a cycle with
// no data anywhere is an error.
func (s *RosterService) Refresh(ctx context.Context) error {
	results := make([]csvgrid.Grid, len(domain.WeekOrder))

	g, ctx := errgroup.WithContext(ctx)
	for i, key := range domain.WeekOrder {
		g.Go(func() error {
			results[i] = s.resolveTab(ctx, key, s.tabs[key])
			return nil
		})
	}
	// Goroutines fill private slots and never fail; Wait is the join point
	// before the single snapshot write.
	_ = g.Wait()

	grids := make(map[domain.WeekKey]csvgrid.Grid, len(domain.WeekOrder))
	hasData := false
	for i, key := range domain.WeekOrder {
		grids[key] = results[i]
		if len(results[i]) > 0 {
			hasData = true
		}
	}

	s.checkDuplicateDates(grids)

	if len(grids[domain.WeekPast]) == 0 && (len(grids[domain.WeekCurrent]) > 0 || len(grids[domain.WeekNext]) > 0) {
		s.logger.Warn("past week sheet appears to be empty; check the tab name", slog.String("tab", s.tabs[domain.WeekPast]))
	}

	s.mu.Lock()
	s.grids = grids
	s.loadedAt = time.Now()
	s.mu.Unlock()

	if !hasData {
		return fmt.Errorf("%w: check that the tabs are named %q, %q and %q",
			ErrNoData, s.tabs[domain.WeekPast], s.tabs[domain.WeekCurrent], s.tabs[domain.WeekNext])
	}
	return nil
}

// resolveTab tries case/whitespace variants of the configured tab name until
// one yields a plausible grid. All variants failing is not a hard error; the
// week just has no data this cycle.
func (s *RosterService) resolveTab(ctx context.Context, key domain.WeekKey, name string) csvgrid.Grid {
	for _, candidate := range tabNameVariants(name) {
		body, err := s.client.FetchTab(ctx, candidate)
		if err != nil {
			s.logger.Warn("sheet tab fetch failed",
				slog.String("week", string(key)),
				slog.String("tab", candidate),
				slog.String("error", err.Error()),
			)
			continue
		}

		if strings.TrimSpace(body) == "" || strings.Contains(body, "error") {
			s.logger.Warn("sheet tab returned empty or error response",
				slog.String("week", string(key)),
				slog.String("tab", candidate),
			)
			continue
		}

		grid := csvgrid.Parse(body)
		if len(grid) <= minUsableRows {
			s.logger.Warn("sheet tab has too few rows",
				slog.String("week", string(key)),
				slog.String("tab", candidate),
				slog.Int("rows", len(grid)),
			)
			continue
		}

		s.logger.Info("loaded week",
			slog.String("week", string(key)),
			slog.String("tab", candidate),
			slog.Int("rows", len(grid)),
			slog.String("sample_dates", sampleDates(grid)),
		)
		return grid
	}

	s.logger.Error("could not load week from any tab name variant",
		slog.String("week", string(key)),
		slog.String("tab", name),
	)
	return csvgrid.Grid{}
}

// tabNameVariants compensates for inconsistent tab capitalization in the
// source spreadsheet. Order matters: the configured name is always tried
// first and duplicates are dropped.
func tabNameVariants(name string) []string {
	candidates := []string{
		name,
		strings.ToLower(name),
		strings.ToUpper(name),
		titleCaseFirst(name),
		strings.TrimSpace(name),
	}

	variants := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if !slices.Contains(variants, c) {
			variants = append(variants, c)
		}
	}
	return variants
}

func titleCaseFirst(name string) string {
	if name == "" {
		return ""
	}
	return strings.ToUpper(name[:1]) + strings.ToLower(name[1:])
}

// checkDuplicateDates warns when past and current share a byte-identical
// date row, which almost always means two logical weeks point at the same
// physical tab. Diagnostic only; rendering proceeds.
func (s *RosterService) checkDuplicateDates(grids map[domain.WeekKey]csvgrid.Grid) {
	past := dateRow(grids[domain.WeekPast])
	current := dateRow(grids[domain.WeekCurrent])
	if past == nil || current == nil {
		return
	}

	if slices.Equal(past, current) {
		s.logger.Warn("past and current weeks have identical date rows; both tabs may point at the same sheet",
			slog.String("past_tab", s.tabs[domain.WeekPast]),
			slog.String("current_tab", s.tabs[domain.WeekCurrent]),
		)
	}
}

func sampleDates(grid csvgrid.Grid) string {
	row := dateRow(grid)
	samples := []string{}
	for i := 1; i < len(row) && i < 4; i++ {
		if strings.TrimSpace(row[i]) != "" {
			samples = append(samples, row[i])
		}
	}
	return strings.Join(samples, ", ")
}

// Week reconciles one roster week from the current snapshot. The employee
// records are recomputed from the raw grid on every call rather than cached.
func (s *RosterService) Week(key domain.WeekKey) domain.WeekSchedule {
	s.mu.RLock()
	grid := s.grids[key]
	s.mu.RUnlock()

	return reconcileWeek(key, grid)
}

// Snapshot reconciles all three weeks from the current snapshot.
func (s *RosterService) Snapshot() domain.RosterSnapshot {
	s.mu.RLock()
	grids := s.grids
	loadedAt := s.loadedAt
	s.mu.RUnlock()

	weeks := make(map[domain.WeekKey]domain.WeekSchedule, len(domain.WeekOrder))
	for _, key := range domain.WeekOrder {
		weeks[key] = reconcileWeek(key, grids[key])
	}

	return domain.RosterSnapshot{Weeks: weeks, LoadedAt: loadedAt}
}

// ExportCSV re-encodes the raw grid of one week as delimited text.
func (s *RosterService) ExportCSV(key domain.WeekKey) string {
	s.mu.RLock()
	grid := s.grids[key]
	s.mu.RUnlock()

	return csvgrid.Encode(grid)
}

// FilterEmployees narrows a week's records to names containing the query,
// case-insensitively. It returns a derived view and never mutates the input.
func FilterEmployees(records []domain.EmployeeDayRecord, query string) []domain.EmployeeDayRecord {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return records
	}

	filtered := []domain.EmployeeDayRecord{}
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.EmployeeName), query) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}
