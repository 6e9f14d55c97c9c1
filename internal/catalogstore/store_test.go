package catalogstore

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestSaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()

	books := map[string]string{
		"Dracula":      "the full text of dracula",
		"Frankenstein": "the full text of frankenstein",
	}
	titleMap := map[string]string{
		"드라큘라":   "Dracula",
		"프랑켄슈타인": "Frankenstein",
	}

	if err := Save(dir, books, titleMap); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loadedBooks, loadedMap, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(loadedBooks) != 2 {
		t.Errorf("Expected 2 books, got %d", len(loadedBooks))
	}
	if loadedBooks["Dracula"] != books["Dracula"] {
		t.Errorf("Expected Dracula text preserved, got %q", loadedBooks["Dracula"])
	}
	if loadedMap["드라큘라"] != "Dracula" {
		t.Errorf("Expected Korean title mapping preserved, got %q", loadedMap["드라큘라"])
	}
}

func TestLoadMissingFiles(t *testing.T) {
	dir := t.TempDir()

	_, _, err := Load(dir)
	if err == nil {
		t.Fatal("Expected error for missing catalog files, got nil")
	}
	if !strings.Contains(err.Error(), "novelscope curate") {
		t.Errorf("Expected error to point at the curation step, got: %v", err)
	}
}

func TestLoadMissingKoreanMap(t *testing.T) {
	dir := t.TempDir()

	// Only books_data.json present
	if err := writeJSON(filepath.Join(dir, BooksDataFile), map[string]string{"A": "a"}); err != nil {
		t.Fatalf("writeJSON failed: %v", err)
	}

	_, _, err := Load(dir)
	if err == nil {
		t.Fatal("Expected error when korean_map.json is absent, got nil")
	}
	if !strings.Contains(err.Error(), KoreanMapFile) {
		t.Errorf("Expected error to name %s, got: %v", KoreanMapFile, err)
	}
}
