package catalogstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

const (
	// BooksDataFile maps English title → full novel text
	BooksDataFile = "books_data.json"
	// KoreanMapFile maps Korean/translated title → English title
	KoreanMapFile = "korean_map.json"
)

// Save persists the curated catalog as the two JSON artifacts consumed by
// the interactive app.
func Save(dir string, books map[string]string, titleMap map[string]string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create catalog directory: %w", err)
	}

	if err := writeJSON(filepath.Join(dir, BooksDataFile), books); err != nil {
		return err
	}
	if err := writeJSON(filepath.Join(dir, KoreanMapFile), titleMap); err != nil {
		return err
	}

	slog.Info("Catalog saved", "dir", dir, "books", len(books), "titles", len(titleMap))
	return nil
}

// Load reads both catalog artifacts. A missing file is reported with a hint
// to run the curation step first; the interactive app treats that as fatal.
func Load(dir string) (books map[string]string, titleMap map[string]string, err error) {
	if err := readJSON(filepath.Join(dir, BooksDataFile), &books); err != nil {
		return nil, nil, err
	}
	if err := readJSON(filepath.Join(dir, KoreanMapFile), &titleMap); err != nil {
		return nil, nil, err
	}

	slog.Info("Catalog loaded", "dir", dir, "books", len(books), "titles", len(titleMap))
	return books, titleMap, nil
}

func writeJSON(path string, data map[string]string) error {
	encoded, err := json.MarshalIndent(data, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, encoded, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}
	return nil
}

func readJSON(path string, out *map[string]string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("catalog file %s not found: run `novelscope curate` first", filepath.Base(path))
		}
		return fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	return nil
}
