package sheets

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const defaultBaseURL = "https://docs.google.com/spreadsheets/d"

// APIClient fetches tabs through the Google Sheets gviz CSV export endpoint.
type APIClient struct {
	spreadsheetID string
	cellRange     string
	baseURL       string
	logger        *slog.Logger
	httpClient    *http.Client
	now           func() time.Time
}

func NewClient(spreadsheetID, cellRange string, logger *slog.Logger) (*APIClient, error) {
	if spreadsheetID == "" {
		return nil, fmt.Errorf("spreadsheet id is required")
	}

	return &APIClient{
		spreadsheetID: spreadsheetID,
		cellRange:     cellRange,
		baseURL:       defaultBaseURL,
		logger:        logger,
		httpClient: &http.Client{
			Timeout: 12 * time.Second,
		},
		now: time.Now,
	}, nil
}

// FetchTab requests the CSV export of one tab. Every call carries a
// cache-busting timestamp parameter and disables intermediate caching so a
// stale copy of the sheet is never served.
func (c *APIClient) FetchTab(ctx context.Context, tab string) (string, error) {
	endpoint := c.exportURL(tab)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("build sheet request: %w", err)
	}
	req.Header.Set("Cache-Control", "no-store")
	req.Header.Set("Pragma", "no-cache")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch sheet tab %q: %w", tab, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("sheet tab %q returned status %d", tab, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read sheet tab %q: %w", tab, err)
	}

	c.logger.Debug("fetched sheet tab",
		slog.String("tab", tab),
		slog.Int("bytes", len(body)),
	)

	return string(body), nil
}

func (c *APIClient) exportURL(tab string) string {
	q := url.Values{}
	q.Set("tqx", "out:csv")
	q.Set("sheet", tab)
	q.Set("range", c.cellRange)
	q.Set("t", strconv.FormatInt(c.now().UnixMilli(), 10))
	return fmt.Sprintf("%s/%s/gviz/tq?%s", c.baseURL, c.spreadsheetID, q.Encode())
}
