package curation

import (
	"log/slog"
	"strings"
)

// DefaultPriorityKeywords are the famous-novel keywords searched for first.
// Order matters: a title is tested against the list in order and placed on
// its first hit.
var DefaultPriorityKeywords = []string{
	"sherlock holmes", "scarlet", "baskervilles",
	"pride and prejudice", "frankenstein", "moby dick", "dracula",
	"huckleberry finn", "gatsby", "misérables", "miserables",
	"all quiet on the western front", "rebecca", "wizard of oz",
	"alice in wonderland", "peter pan",
}

// Entry is a classified catalog entry
type Entry struct {
	Title          string
	Text           string
	Priority       bool
	MatchedKeyword string
}

// Classifier partitions discovered titles into a priority bucket (matched
// against the keyword list, at most one title per keyword) and an "other"
// bucket filled up to the remaining capacity. Insertion order is preserved
// within each bucket.
type Classifier struct {
	keywords    []string
	targetCount int
	consumed    map[string]bool
	priority    []Entry
	other       []Entry
}

// NewClassifier creates a classifier for one curation run
func NewClassifier(keywords []string, targetCount int) *Classifier {
	return &Classifier{
		keywords:    keywords,
		targetCount: targetCount,
		consumed:    make(map[string]bool),
	}
}

// Offer classifies a single candidate and reports whether it was accepted.
// A candidate is rejected only when it is non-priority and the "other"
// bucket has no headroom left; capacity is reserved for priority matches
// that may arrive late in the scan.
func (c *Classifier) Offer(title, text string) bool {
	if c.Accepted() >= c.targetCount {
		return false
	}

	normalized := strings.ReplaceAll(strings.ToLower(title), "-", " ")
	for _, kw := range c.keywords {
		if strings.Contains(normalized, kw) && !c.consumed[kw] {
			c.consumed[kw] = true
			c.priority = append(c.priority, Entry{
				Title:          title,
				Text:           text,
				Priority:       true,
				MatchedKeyword: kw,
			})
			slog.Info("Found priority novel", "title", title, "keyword", kw)
			return true
		}
	}

	if len(c.other) < c.targetCount-len(c.keywords) {
		c.other = append(c.other, Entry{Title: title, Text: text})
		return true
	}

	return false
}

// Accepted returns the total number of accepted candidates so far
func (c *Classifier) Accepted() int {
	return len(c.priority) + len(c.other)
}

// Partition returns the priority and "other" entries in insertion order
func (c *Classifier) Partition() (priority, other []Entry) {
	return c.priority, c.other
}

// ConsumedKeywords returns the keywords matched so far, in list order
func (c *Classifier) ConsumedKeywords() []string {
	var out []string
	for _, kw := range c.keywords {
		if c.consumed[kw] {
			out = append(out, kw)
		}
	}
	return out
}

// Classify partitions a fixed candidate set with a fresh classifier.
// Running it twice over the same candidates yields the same partition.
func Classify(candidates []Entry, keywords []string, targetCount int) (priority, other []Entry) {
	c := NewClassifier(keywords, targetCount)
	for _, cand := range candidates {
		c.Offer(cand.Title, cand.Text)
	}
	return c.Partition()
}
