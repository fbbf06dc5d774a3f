package service

import (
	"context"
	"errors"
	"testing"

	"mysched/internal/csvgrid"
	"mysched/internal/domain"
)

func TestParsePromotions_PricingSheetIsRejected(t *testing.T) {
	grid := csvgrid.Parse("plan_id,plan_name,monthly_total_usd\nP1,Unlimited,140\n")

	_, err := ParsePromotions(grid)
	if !errors.Is(err, ErrSchemaMismatch) {
		t.Fatalf("expected schema mismatch, got %v", err)
	}
}

func TestParsePromotions_TitleFallbackChain(t *testing.T) {
	grid := csvgrid.Parse("promo_name,description\nSpring Deal,Save big\n")

	records, err := ParsePromotions(grid)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].Title != "Spring Deal" {
		t.Fatalf("expected title from promo_name, got %q", records[0].Title)
	}
	if records[0].Description != "Save big" {
		t.Fatalf("expected description, got %q", records[0].Description)
	}
}

func TestParsePromotions_LimitationsFallbackChain(t *testing.T) {
	grid := csvgrid.Parse("title,restrictions\nBundle,One per account\n")

	records, err := ParsePromotions(grid)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if records[0].Limitations != "One per account" {
		t.Fatalf("expected limitations from restrictions column, got %q", records[0].Limitations)
	}
}

func TestParsePromotions_TitlelessRowsAreDropped(t *testing.T) {
	grid := csvgrid.Parse("title,description\nDeal A,first\n,orphan description\nDeal B,third\n")

	records, err := ParsePromotions(grid)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	// IDs come from the sheet position, so dropped rows leave gaps.
	if records[0].ID != 1 || records[1].ID != 3 {
		t.Fatalf("expected ids 1 and 3, got %d and %d", records[0].ID, records[1].ID)
	}
}

func TestParsePromotions_MixedSchemaSkipsPlanRows(t *testing.T) {
	grid := csvgrid.Parse("title,plan_id,discount\n" +
		"Phone Deal,,20%\n" +
		"Unlimited Plan,P9,\n" +
		"Tablet Deal,,10%\n")

	records, err := ParsePromotions(grid)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected plan row to be skipped, got %d records", len(records))
	}
	if records[0].Title != "Phone Deal" || records[1].Title != "Tablet Deal" {
		t.Fatalf("unexpected records: %v", records)
	}
}

func TestParsePromotions_EmptyGrid(t *testing.T) {
	records, err := ParsePromotions(csvgrid.Grid{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected no records, got %v", records)
	}
}

func TestPromotionsLoad_FetchFailureIsHardError(t *testing.T) {
	client := &stubClient{bodies: map[string]string{}}
	svc := NewPromotionsService(client, "promos", testLogger())

	if _, err := svc.Load(context.Background()); err == nil {
		t.Fatalf("expected hard error when the promotions fetch fails")
	}
}

func TestPromotionsLoad_ParsesTab(t *testing.T) {
	client := &stubClient{bodies: map[string]string{
		"promos": "title,type,discount\nSpring Deal,device,20%\nFall Deal,service,10%\n",
	}}
	svc := NewPromotionsService(client, "promos", testLogger())

	records, err := svc.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
}

func TestFilterPromotions(t *testing.T) {
	records := []domain.PromotionRecord{
		{ID: 1, Title: "Spring Phone Deal", Type: "device"},
		{ID: 2, Title: "Streaming Bundle", Type: "service", Description: "phone and tv"},
		{ID: 3, Title: "Trade-In Offer", Type: "device"},
	}

	byType := FilterPromotions(records, "", "device")
	if len(byType) != 2 {
		t.Fatalf("expected 2 device promos, got %v", byType)
	}

	byQuery := FilterPromotions(records, "phone", "")
	if len(byQuery) != 2 {
		t.Fatalf("expected query to match title and description, got %v", byQuery)
	}

	both := FilterPromotions(records, "phone", "service")
	if len(both) != 1 || both[0].ID != 2 {
		t.Fatalf("expected combined filters to yield record 2, got %v", both)
	}

	if got := FilterPromotions(records, "", ""); len(got) != 3 {
		t.Fatalf("expected no-op filter to return all records, got %v", got)
	}
}
