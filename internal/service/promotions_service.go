package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"mysched/internal/csvgrid"
	"mysched/internal/domain"
	"mysched/internal/sheets"
)

// ErrSchemaMismatch reports a promotions load that found the pricing-plan
// sheet instead. Recovered as an empty list with a schema hint, not as a
// generic failure.
var ErrSchemaMismatch = errors.New("sheet matches the pricing schema, not promotions")

// ExpectedPromoSchema is the user-facing hint shown alongside a schema
// mismatch.
const ExpectedPromoSchema = "expected columns: title, description, requirements, limitations, type, discount, valid_until, image, link"

// The same spreadsheet family hosts both promotion and pricing tabs; these
// column sets discriminate between the two schemas.
var (
	planColumns  = []string{"plan_id", "plan_name", "plan_type", "monthly_total_usd", "price_per_line_usd"}
	promoColumns = []string{"title", "promo_name", "promotion", "requirements", "limitations"}
)

// Per-field header fallback chains. Human-maintained sheets rename columns
// freely; the first present, non-empty cell along each chain wins.
var promoFieldChains = map[string][]string{
	"title":           {"title", "promo_name", "promotion", "name"},
	"description":     {"description", "desc", "details", "summary"},
	"requirements":    {"requirements", "requirement", "reqs"},
	"limitations":     {"limitations", "limitation", "restrictions", "restriction"},
	"type":            {"type", "promo_type", "category"},
	"discount":        {"discount", "discount_amount", "value", "amount"},
	"valid_until":     {"valid_until", "expires", "expiration", "end_date"},
	"image":           {"image", "image_url", "img"},
	"link":            {"link", "url", "more_info"},
	"devices_900":     {"devices_900", "devices900"},
	"devices_630":     {"devices_630", "devices630"},
	"devices_315":     {"devices_315", "devices315"},
	"additional_info": {"additional_info", "additional", "notes", "info"},
}

// PromotionsService loads and parses the promotions tab. Promotions are
// independent of the roster weeks and are fetched on demand, never touching
// roster state.
type PromotionsService struct {
	client sheets.Client
	tab    string
	logger *slog.Logger
}

func NewPromotionsService(client sheets.Client, tab string, logger *slog.Logger) *PromotionsService {
	return &PromotionsService{client: client, tab: tab, logger: logger}
}

// Load fetches and parses the promotions tab. Unlike the roster weeks there
// is no degraded mode: a fetch or parse failure is a hard error and nothing
// partial is returned.
func (s *PromotionsService) Load(ctx context.Context) ([]domain.PromotionRecord, error) {
	body, err := s.client.FetchTab(ctx, s.tab)
	if err != nil {
		return nil, fmt.Errorf("load promotions: %w", err)
	}

	if strings.TrimSpace(body) == "" || strings.Contains(body, "error") {
		return nil, fmt.Errorf("load promotions: tab %q returned empty or error response", s.tab)
	}

	records, err := ParsePromotions(csvgrid.Parse(body))
	if err != nil {
		return nil, err
	}

	s.logger.Info("loaded promotions", slog.String("tab", s.tab), slog.Int("count", len(records)))
	return records, nil
}

// ParsePromotions turns a parsed grid into promotion records. The first row
// names the columns; every following row is a candidate record keyed by its
// 1-based position, kept only when a title resolves.
func ParsePromotions(grid csvgrid.Grid) ([]domain.PromotionRecord, error) {
	if len(grid) == 0 {
		return []domain.PromotionRecord{}, nil
	}

	columns := headerIndex(grid[0])

	hasPlan := hasAnyColumn(columns, planColumns)
	hasPromo := hasAnyColumn(columns, promoColumns)
	if hasPlan && !hasPromo {
		return nil, ErrSchemaMismatch
	}

	records := []domain.PromotionRecord{}
	for i, row := range grid[1:] {
		field := func(name string) string {
			return resolveField(columns, row, promoFieldChains[name])
		}

		title := field("title")
		if title == "" {
			continue
		}

		// Mixed-schema sheets interleave plan rows that can coincidentally
		// carry a title; filter them out by their plan identity columns.
		if hasPlan {
			if cellByName(columns, row, "plan_id") != "" {
				continue
			}
			if cellByName(columns, row, "plan_name") != "" && !hasPromo {
				continue
			}
		}

		records = append(records, domain.PromotionRecord{
			ID:             i + 1,
			Title:          title,
			Description:    field("description"),
			Requirements:   field("requirements"),
			Limitations:    field("limitations"),
			Type:           field("type"),
			Discount:       field("discount"),
			ValidUntil:     field("valid_until"),
			Image:          field("image"),
			Link:           field("link"),
			Devices900:     field("devices_900"),
			Devices630:     field("devices_630"),
			Devices315:     field("devices_315"),
			AdditionalInfo: field("additional_info"),
		})
	}

	return records, nil
}

// headerIndex builds the case-insensitive header-name to column-index map.
// The first occurrence of a duplicated header wins.
func headerIndex(header []string) map[string]int {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" {
			continue
		}
		if _, ok := columns[key]; !ok {
			columns[key] = i
		}
	}
	return columns
}

func hasAnyColumn(columns map[string]int, names []string) bool {
	for _, n := range names {
		if _, ok := columns[n]; ok {
			return true
		}
	}
	return false
}

func resolveField(columns map[string]int, row []string, chain []string) string {
	for _, name := range chain {
		if v := cellByName(columns, row, name); v != "" {
			return v
		}
	}
	return ""
}

func cellByName(columns map[string]int, row []string, name string) string {
	idx, ok := columns[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// FilterPromotions narrows records by a free-text query (matched against
// title, description and type) and an exact promotion type. It returns a
// derived view over the source list.
func FilterPromotions(records []domain.PromotionRecord, query, promoType string) []domain.PromotionRecord {
	query = strings.ToLower(strings.TrimSpace(query))
	promoType = strings.ToLower(strings.TrimSpace(promoType))
	if query == "" && promoType == "" {
		return records
	}

	filtered := []domain.PromotionRecord{}
	for _, r := range records {
		if promoType != "" && strings.ToLower(r.Type) != promoType {
			continue
		}
		if query != "" {
			haystack := strings.ToLower(r.Title + " " + r.Description + " " + r.Type)
			if !strings.Contains(haystack, query) {
				continue
			}
		}
		filtered = append(filtered, r)
	}
	return filtered
}
