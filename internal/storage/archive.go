// Package storage writes timestamped JSON snapshots of scraped batches so a
// session can be reprocessed later. The layout mirrors a raw/processed
// bucket split: {base}/raw/{timestamp}_{id}.json and
// {base}/processed/{timestamp}_{id}.json.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"rentscout/internal/models"
)

// Prefixes for the two snapshot stages.
const (
	PrefixRaw       = "raw"
	PrefixProcessed = "processed"
)

// Archiver persists snapshots under a base directory.
type Archiver struct {
	basePath string
}

// NewArchiver creates an archiver rooted at basePath.
func NewArchiver(basePath string) *Archiver {
	return &Archiver{basePath: basePath}
}

// SaveRaw writes a raw-record batch snapshot and returns the file path.
func (a *Archiver) SaveRaw(records []models.RawRecord) (string, error) {
	return a.save(PrefixRaw, records)
}

// SaveProcessed writes a normalized-listing batch snapshot along with its
// rejection report and returns the file path.
func (a *Archiver) SaveProcessed(listings []models.Listing, rejections []models.Rejection) (string, error) {
	reasons := make([]string, len(rejections))
	for i, r := range rejections {
		reasons[i] = fmt.Sprintf("%s: %v", r.Reason, r.Err)
	}

	snapshot := map[string]interface{}{
		"listings":       listings,
		"rejectionCount": len(rejections),
		"rejections":     reasons,
	}

	return a.save(PrefixProcessed, snapshot)
}

func (a *Archiver) save(prefix string, payload interface{}) (string, error) {
	dir := filepath.Join(a.basePath, prefix)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating snapshot dir: %w", err)
	}

	name := fmt.Sprintf("%s_%s.json",
		time.Now().UTC().Format("2006-01-02_15-04-05"),
		uuid.NewString(),
	)
	path := filepath.Join(dir, name)

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling snapshot: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing snapshot: %w", err)
	}

	return path, nil
}
