package repositories

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ps-vitor/editais-sys/backend/internal/domain"
)

type ListingRepository interface {
	Save(ctx context.Context, listings []domain.Listing) error
	FindAll(ctx context.Context) ([]domain.Listing, error)
}

const jsonIndent = "    "

// JSONFileRepository keeps the listings as a single pretty-printed JSON
// array, the file the dashboard reads.
type JSONFileRepository struct {
	path string
}

func NewJSONFileRepository(path string) *JSONFileRepository {
	return &JSONFileRepository{path: path}
}

func (r *JSONFileRepository) Path() string {
	return r.path
}

// Save overwrites the file with listings. Non-ASCII and HTML characters are
// written as-is.
func (r *JSONFileRepository) Save(ctx context.Context, listings []domain.Listing) error {
	if listings == nil {
		listings = []domain.Listing{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", jsonIndent)
	if err := enc.Encode(listings); err != nil {
		return fmt.Errorf("encode listings: %w", err)
	}

	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("could not create output dir: %w", err)
		}
	}

	f, err := os.Create(r.path)
	if err != nil {
		return fmt.Errorf("could not create file: %w", err)
	}
	if _, err := f.Write(buf.Bytes()); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", r.path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", r.path, err)
	}
	return nil
}

func (r *JSONFileRepository) FindAll(ctx context.Context) ([]domain.Listing, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", r.path, err)
	}

	var listings []domain.Listing
	if err := json.Unmarshal(data, &listings); err != nil {
		return nil, fmt.Errorf("decode %s: %w", r.path, err)
	}
	return listings, nil
}
