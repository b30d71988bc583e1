package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"empleos-scraper/internal/domain"
)

// ExportJSON writes the collection as a JSON array in the flat _job_*
// schema. The write goes through a temp file and rename so a crashed run
// never leaves a truncated export behind.
func ExportJSON(path string, recs []domain.JobRecord) error {
	if recs == nil {
		recs = []domain.JobRecord{}
	}
	b, err := json.MarshalIndent(recs, "", "  ")
	if err != nil {
		return err
	}
	return writeAtomic(path, append(b, '\n'))
}

// ExportCSV writes the collection as CSV with the fixed _job_* header.
func ExportCSV(path string, recs []domain.JobRecord) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".export-*.csv")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	w := csv.NewWriter(tmp)
	if err := w.Write(domain.FieldNames()); err != nil {
		_ = tmp.Close()
		return err
	}
	for _, r := range recs {
		if err := w.Write(r.Values()); err != nil {
			_ = tmp.Close()
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".export-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
