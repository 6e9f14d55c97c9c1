package curation

import (
	"testing"
)

func TestClassifierKeywordConsumedOnce(t *testing.T) {
	c := NewClassifier([]string{"dracula"}, 10)

	if !c.Offer("Dracula", "text1") {
		t.Fatal("Expected first Dracula title to be accepted")
	}
	// The keyword is consumed, so the second title falls through to "other"
	if !c.Offer("Dracula's Guest", "text2") {
		t.Fatal("Expected second title to be accepted into the other bucket")
	}

	priority, other := c.Partition()
	if len(priority) != 1 {
		t.Errorf("Expected 1 priority entry, got %d", len(priority))
	}
	if len(other) != 1 {
		t.Errorf("Expected 1 other entry, got %d", len(other))
	}
	if priority[0].MatchedKeyword != "dracula" {
		t.Errorf("Expected matched keyword 'dracula', got %q", priority[0].MatchedKeyword)
	}
	if other[0].MatchedKeyword != "" {
		t.Errorf("Expected no matched keyword on other entry, got %q", other[0].MatchedKeyword)
	}
}

func TestClassifierFirstKeywordWins(t *testing.T) {
	// The title contains both keywords; list order decides the match.
	c := NewClassifier([]string{"sherlock holmes", "scarlet"}, 10)

	c.Offer("A Study in Scarlet by the Sherlock Holmes author", "text")

	priority, _ := c.Partition()
	if len(priority) != 1 {
		t.Fatalf("Expected 1 priority entry, got %d", len(priority))
	}
	if priority[0].MatchedKeyword != "sherlock holmes" {
		t.Errorf("Expected first keyword in list order to win, got %q", priority[0].MatchedKeyword)
	}
}

func TestClassifierNormalizesTitles(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  bool
	}{
		{name: "lower-cases", title: "MOBY DICK", want: true},
		{name: "hyphens become spaces", title: "Moby-Dick; or, The Whale", want: true},
		{name: "no match", title: "The Whale", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewClassifier([]string{"moby dick"}, 10)
			c.Offer(tt.title, "text")
			priority, _ := c.Partition()
			got := len(priority) == 1
			if got != tt.want {
				t.Errorf("Priority classification of %q: expected %v, got %v", tt.title, tt.want, got)
			}
		})
	}
}

func TestClassifierReservesHeadroomForPriority(t *testing.T) {
	// targetCount 5, 3 keywords: the other bucket holds at most 2 entries
	// even while no priority titles have been found yet.
	keywords := []string{"dracula", "frankenstein", "gatsby"}
	c := NewClassifier(keywords, 5)

	if !c.Offer("Plain One", "t") {
		t.Error("Expected first other title accepted")
	}
	if !c.Offer("Plain Two", "t") {
		t.Error("Expected second other title accepted")
	}
	if c.Offer("Plain Three", "t") {
		t.Error("Expected third other title rejected: headroom is reserved for priority matches")
	}
	// Priority titles still fit in the reserved space.
	if !c.Offer("Dracula", "t") {
		t.Error("Expected priority title accepted after other bucket filled")
	}

	if c.Accepted() != 3 {
		t.Errorf("Expected 3 accepted candidates, got %d", c.Accepted())
	}
}

func TestClassifierNeverExceedsTargetCount(t *testing.T) {
	keywords := []string{"one", "two", "three"}
	c := NewClassifier(keywords, 2)

	c.Offer("Book One", "t")
	c.Offer("Book Two", "t")
	c.Offer("Book Three", "t")

	if c.Accepted() > 2 {
		t.Errorf("Total accepted exceeds target: %d", c.Accepted())
	}
}

func TestClassifyIsIdempotent(t *testing.T) {
	candidates := []Entry{
		{Title: "Plain Novel", Text: "a"},
		{Title: "Dracula", Text: "b"},
		{Title: "Another Plain Novel", Text: "c"},
		{Title: "Frankenstein", Text: "d"},
	}
	keywords := []string{"dracula", "frankenstein"}

	p1, o1 := Classify(candidates, keywords, 10)
	p2, o2 := Classify(candidates, keywords, 10)

	if len(p1) != len(p2) || len(o1) != len(o2) {
		t.Fatalf("Partition sizes differ between runs: (%d,%d) vs (%d,%d)", len(p1), len(o1), len(p2), len(o2))
	}
	for i := range p1 {
		if p1[i].Title != p2[i].Title {
			t.Errorf("Priority order differs at %d: %q vs %q", i, p1[i].Title, p2[i].Title)
		}
	}
	for i := range o1 {
		if o1[i].Title != o2[i].Title {
			t.Errorf("Other order differs at %d: %q vs %q", i, o1[i].Title, o2[i].Title)
		}
	}
}
