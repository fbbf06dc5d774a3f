package sheets

import (
	"context"
	"log/slog"
)

// NoopClient stands in when no spreadsheet ID is configured. Every fetch
// returns an empty body, which downstream resolution treats as a tab with no
// data.
type NoopClient struct {
	logger *slog.Logger
}

func NewNoopClient(logger *slog.Logger) *NoopClient {
	return &NoopClient{logger: logger}
}

func (c *NoopClient) FetchTab(_ context.Context, tab string) (string, error) {
	c.logger.Info("noop sheet fetch", slog.String("tab", tab))
	return "", nil
}
