package curation

import (
	"testing"
)

func TestBuildPriorityFirstOrdering(t *testing.T) {
	// "other" entries were discovered before the priority ones; the catalog
	// still lists priority entries first, each bucket in insertion order.
	priority := []Entry{
		{Title: "Dracula", Text: "d", Priority: true, MatchedKeyword: "dracula"},
		{Title: "Frankenstein", Text: "f", Priority: true, MatchedKeyword: "frankenstein"},
	}
	other := []Entry{
		{Title: "Plain One", Text: "p1"},
		{Title: "Plain Two", Text: "p2"},
	}

	catalog := Build(priority, other)

	want := []string{"Dracula", "Frankenstein", "Plain One", "Plain Two"}
	if len(catalog.OrderedTitles) != len(want) {
		t.Fatalf("Expected %d titles, got %d", len(want), len(catalog.OrderedTitles))
	}
	for i, title := range want {
		if catalog.OrderedTitles[i] != title {
			t.Errorf("Expected %q at index %d, got %q", title, i, catalog.OrderedTitles[i])
		}
	}

	for _, title := range want {
		if _, ok := catalog.TextByTitle[title]; !ok {
			t.Errorf("Ordered title %q missing from text map", title)
		}
	}
	if catalog.TextByTitle["Dracula"] != "d" {
		t.Errorf("Expected text 'd' for Dracula, got %q", catalog.TextByTitle["Dracula"])
	}
}

func TestBuildEmpty(t *testing.T) {
	catalog := Build(nil, nil)
	if len(catalog.OrderedTitles) != 0 {
		t.Errorf("Expected empty ordered titles, got %d", len(catalog.OrderedTitles))
	}
	if len(catalog.TextByTitle) != 0 {
		t.Errorf("Expected empty text map, got %d entries", len(catalog.TextByTitle))
	}
}
