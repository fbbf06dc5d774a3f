package sheets

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&strings.Builder{}, nil))
}

func TestFetchTab_BuildsExportURLWithCacheBuster(t *testing.T) {
	var gotURL string
	var gotCacheControl string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotURL = r.URL.String()
		gotCacheControl = r.Header.Get("Cache-Control")
		_, _ = w.Write([]byte("Employee,THU\n"))
	}))
	defer srv.Close()

	client, err := NewClient("sheet123", "A1:H200", testLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	client.baseURL = srv.URL
	client.now = func() time.Time { return time.UnixMilli(1700000000000) }

	body, err := client.FetchTab(context.Background(), "next week")
	if err != nil {
		t.Fatalf("unexpected fetch error: %v", err)
	}
	if body != "Employee,THU\n" {
		t.Fatalf("unexpected body %q", body)
	}

	if !strings.HasPrefix(gotURL, "/sheet123/gviz/tq?") {
		t.Fatalf("unexpected path %q", gotURL)
	}
	for _, param := range []string{"tqx=out%3Acsv", "sheet=next+week", "range=A1%3AH200", "t=1700000000000"} {
		if !strings.Contains(gotURL, param) {
			t.Fatalf("expected %q in request url %q", param, gotURL)
		}
	}
	if gotCacheControl != "no-store" {
		t.Fatalf("expected no-store cache header, got %q", gotCacheControl)
	}
}

func TestFetchTab_NonSuccessStatusIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	client, err := NewClient("sheet123", "A1:H200", testLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	client.baseURL = srv.URL

	if _, err := client.FetchTab(context.Background(), "past"); err == nil {
		t.Fatalf("expected error for 400 response")
	}
}

func TestNewClient_RequiresSpreadsheetID(t *testing.T) {
	if _, err := NewClient("", "A1:H200", testLogger()); err == nil {
		t.Fatalf("expected error for empty spreadsheet id")
	}
}
