package sheets

import "context"

// Client fetches the delimited-text export of one named spreadsheet tab.
// Implementations must return the raw response body on success and an error
// on any transport failure or non-2xx status.
type Client interface {
	FetchTab(ctx context.Context, tab string) (string, error)
}
