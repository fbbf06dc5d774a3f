package service

import (
	"context"
	"errors"
	"log/slog"
	"reflect"
	"strings"
	"sync"
	"testing"

	"mysched/internal/domain"
)

// stubClient serves canned bodies per tab name; unknown tabs fail like a
// 400 from the export endpoint.
type stubClient struct {
	mu     sync.Mutex
	bodies map[string]string
	calls  []string
}

func (c *stubClient) FetchTab(_ context.Context, tab string) (string, error) {
	c.mu.Lock()
	c.calls = append(c.calls, tab)
	c.mu.Unlock()

	body, ok := c.bodies[tab]
	if !ok {
		return "", errors.New("sheet tab returned status 400")
	}
	return body, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&strings.Builder{}, nil))
}

func defaultTabs() map[domain.WeekKey]string {
	return map[domain.WeekKey]string{
		domain.WeekPast:    "past",
		domain.WeekCurrent: "current",
		domain.WeekNext:    "next week",
	}
}

func TestTabNameVariants_OrderAndDedupe(t *testing.T) {
	got := tabNameVariants("next week")
	want := []string{"next week", "NEXT WEEK", "Next week"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	got = tabNameVariants("Past")
	want = []string{"Past", "past", "PAST"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestResolveTab_FallsThroughVariantsUntilUsable(t *testing.T) {
	client := &stubClient{bodies: map[string]string{
		"CURRENT": rosterBody,
	}}
	svc := NewRosterService(client, defaultTabs(), testLogger())

	grid := svc.resolveTab(context.Background(), domain.WeekCurrent, "current")

	if len(grid) != 3 {
		t.Fatalf("expected the uppercase variant to load 3 rows, got %d", len(grid))
	}
	if !reflect.DeepEqual(client.calls, []string{"current", "CURRENT"}) {
		t.Fatalf("unexpected candidate order: %v", client.calls)
	}
}

func TestResolveTab_RejectsErrorBodiesAndShortGrids(t *testing.T) {
	client := &stubClient{bodies: map[string]string{
		"past": "error: sheet not found",
		"PAST": "Employee,THU\n,11/6\n",
		"Past": "   ",
	}}
	svc := NewRosterService(client, defaultTabs(), testLogger())

	grid := svc.resolveTab(context.Background(), domain.WeekPast, "past")

	if len(grid) != 0 {
		t.Fatalf("expected no usable variant, got %d rows", len(grid))
	}
	if len(client.calls) != 3 {
		t.Fatalf("expected all 3 variants tried, got %v", client.calls)
	}
}

func TestRefresh_IndependentWeekFailure(t *testing.T) {
	nextBody := "Employee,THU,FRI,SAT,SUN,MON,TUE,WED\n" +
		",11/13,11/14,11/15,11/16,11/17,11/18,11/19\n" +
		"Bob,OFF,10-6,10-6,OFF,9-5,9-5,OFF\n"

	client := &stubClient{bodies: map[string]string{
		"current":   rosterBody,
		"next week": nextBody,
	}}
	svc := NewRosterService(client, defaultTabs(), testLogger())

	if err := svc.Refresh(context.Background()); err != nil {
		t.Fatalf("expected partial failure to be tolerated, got %v", err)
	}

	snap := svc.Snapshot()
	if len(snap.Weeks[domain.WeekPast].Employees) != 0 {
		t.Fatalf("expected past week to degrade to empty, got %v", snap.Weeks[domain.WeekPast].Employees)
	}
	if len(snap.Weeks[domain.WeekCurrent].Employees) != 1 {
		t.Fatalf("expected current week populated, got %v", snap.Weeks[domain.WeekCurrent].Employees)
	}
	if len(snap.Weeks[domain.WeekNext].Employees) != 1 {
		t.Fatalf("expected next week populated, got %v", snap.Weeks[domain.WeekNext].Employees)
	}
	if snap.LoadedAt.IsZero() {
		t.Fatalf("expected loadedAt to be stamped")
	}
}

func TestRefresh_NoDataAnywhere(t *testing.T) {
	client := &stubClient{bodies: map[string]string{}}
	svc := NewRosterService(client, defaultTabs(), testLogger())

	err := svc.Refresh(context.Background())
	if !errors.Is(err, ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
}

func TestWeek_RecomputesFromSnapshot(t *testing.T) {
	client := &stubClient{bodies: map[string]string{"current": rosterBody}}
	svc := NewRosterService(client, defaultTabs(), testLogger())

	if week := svc.Week(domain.WeekCurrent); len(week.Employees) != 0 {
		t.Fatalf("expected empty week before first refresh, got %v", week.Employees)
	}

	if err := svc.Refresh(context.Background()); err != nil {
		t.Fatalf("unexpected refresh error: %v", err)
	}

	week := svc.Week(domain.WeekCurrent)
	if len(week.Employees) != 1 || week.Employees[0].EmployeeName != "Alice" {
		t.Fatalf("unexpected week after refresh: %v", week.Employees)
	}
}

func TestExportCSV_RoundTripsRawGrid(t *testing.T) {
	client := &stubClient{bodies: map[string]string{"current": rosterBody}}
	svc := NewRosterService(client, defaultTabs(), testLogger())

	if err := svc.Refresh(context.Background()); err != nil {
		t.Fatalf("unexpected refresh error: %v", err)
	}

	exported := svc.ExportCSV(domain.WeekCurrent)
	if !strings.HasPrefix(exported, "Employee,THU") {
		t.Fatalf("unexpected export prefix: %q", exported)
	}
	if !strings.Contains(exported, "Alice,10-6,OFF") {
		t.Fatalf("expected employee row in export, got %q", exported)
	}
}

func TestFilterEmployees(t *testing.T) {
	records := []domain.EmployeeDayRecord{
		{EmployeeName: "Alice"},
		{EmployeeName: "Alicia"},
		{EmployeeName: "Bob"},
	}

	filtered := FilterEmployees(records, "ali")
	if len(filtered) != 2 {
		t.Fatalf("expected 2 matches, got %v", filtered)
	}

	if got := FilterEmployees(records, ""); len(got) != 3 {
		t.Fatalf("expected empty query to return all records, got %v", got)
	}
	if len(records) != 3 {
		t.Fatalf("expected source list untouched, got %v", records)
	}
}
