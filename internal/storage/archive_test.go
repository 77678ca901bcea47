package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"rentscout/internal/models"
)

func TestSaveRaw(t *testing.T) {
	a := NewArchiver(t.TempDir())

	records := []models.RawRecord{
		{ID: "r1", Title: "2 bedroom apartment", PriceText: "GH₵ 2,200 /month"},
		{ID: "r2", Title: "4 bedroom house", PriceText: "GH₵ 4,500 /month"},
	}

	path, err := a.SaveRaw(records)
	if err != nil {
		t.Fatalf("SaveRaw() error = %v", err)
	}

	if dir := filepath.Base(filepath.Dir(path)); dir != PrefixRaw {
		t.Errorf("snapshot dir = %q, want %q", dir, PrefixRaw)
	}
	if !strings.HasSuffix(path, ".json") {
		t.Errorf("snapshot path %q missing .json suffix", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading snapshot: %v", err)
	}

	var got []models.RawRecord
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("snapshot is not valid JSON: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("snapshot records = %d, want 2", len(got))
	}
	if got[0].ID != "r1" || got[1].ID != "r2" {
		t.Errorf("snapshot IDs = %q, %q, want r1, r2", got[0].ID, got[1].ID)
	}
}

func TestSaveProcessed(t *testing.T) {
	a := NewArchiver(t.TempDir())

	listings := []models.Listing{
		{ID: "l1", Location: "Osu", PriceAmount: 2200, PriceCurrency: models.CurrencyGHS},
	}
	rejections := []models.Rejection{
		{Record: models.RawRecord{ID: "r9"}, Reason: models.ReasonBadPrice},
	}

	path, err := a.SaveProcessed(listings, rejections)
	if err != nil {
		t.Fatalf("SaveProcessed() error = %v", err)
	}

	if dir := filepath.Base(filepath.Dir(path)); dir != PrefixProcessed {
		t.Errorf("snapshot dir = %q, want %q", dir, PrefixProcessed)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading snapshot: %v", err)
	}

	var got struct {
		Listings       []models.Listing `json:"listings"`
		RejectionCount int              `json:"rejectionCount"`
		Rejections     []string         `json:"rejections"`
	}
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("snapshot is not valid JSON: %v", err)
	}
	if len(got.Listings) != 1 || got.Listings[0].ID != "l1" {
		t.Errorf("snapshot listings = %+v, want one listing l1", got.Listings)
	}
	if got.RejectionCount != 1 {
		t.Errorf("rejectionCount = %d, want 1", got.RejectionCount)
	}
	if len(got.Rejections) != 1 || !strings.Contains(got.Rejections[0], string(models.ReasonBadPrice)) {
		t.Errorf("rejections = %v, want one entry mentioning %s", got.Rejections, models.ReasonBadPrice)
	}
}

func TestSaveRaw_DistinctFiles(t *testing.T) {
	a := NewArchiver(t.TempDir())

	first, err := a.SaveRaw(nil)
	if err != nil {
		t.Fatalf("first SaveRaw() error = %v", err)
	}
	second, err := a.SaveRaw(nil)
	if err != nil {
		t.Fatalf("second SaveRaw() error = %v", err)
	}

	if first == second {
		t.Errorf("consecutive snapshots share a path: %q", first)
	}
}
