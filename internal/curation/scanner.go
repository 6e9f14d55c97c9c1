package curation

import (
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"
)

// Defaults mirror the published catalog: novels only (length filter), at
// most 50 titles, scanning no more than 50,000 documents.
const (
	DefaultMinLength   = 70000
	DefaultScanLimit   = 50000
	DefaultTargetCount = 50
)

// DefaultTitlePattern extracts the title from a Gutenberg header line
var DefaultTitlePattern = regexp.MustCompile(`(?i)Title:\s*(.+)`)

// Document is a single corpus document as seen by the scanner
type Document struct {
	Text string
}

// Corpus yields documents in order and returns io.EOF when exhausted
type Corpus interface {
	Next() (Document, error)
}

// Acceptor decides whether an extracted candidate joins the catalog.
// *Classifier is the production implementation.
type Acceptor interface {
	Offer(title, text string) bool
	Accepted() int
}

// ScanConfig configures a corpus scan
type ScanConfig struct {
	MinLength    int
	TitlePattern *regexp.Regexp
	ScanLimit    int
	TargetCount  int
}

// ScanStats summarizes what a scan saw and skipped
type ScanStats struct {
	Scanned          int `yaml:"scanned"`
	SkippedShort     int `yaml:"skippedshort"`
	SkippedNoTitle   int `yaml:"skippednotitle"`
	SkippedDuplicate int `yaml:"skippedduplicate"`
	Rejected         int `yaml:"rejected"`
	Accepted         int `yaml:"accepted"`
}

// Scan consumes documents lazily, in corpus order, and offers every
// candidate that passes the length, title and duplicate filters to the
// acceptor. It stops as soon as the acceptor has taken TargetCount
// candidates, or after ScanLimit documents, whichever comes first.
// The scan itself performs no network or disk I/O.
func Scan(corpus Corpus, acceptor Acceptor, cfg ScanConfig) (ScanStats, error) {
	if cfg.TitlePattern == nil {
		cfg.TitlePattern = DefaultTitlePattern
	}

	var stats ScanStats
	seen := make(map[string]bool)

	for stats.Scanned < cfg.ScanLimit {
		if acceptor.Accepted() >= cfg.TargetCount {
			slog.Info("Target catalog size reached, stopping scan", "accepted", acceptor.Accepted())
			break
		}

		doc, err := corpus.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return stats, fmt.Errorf("corpus read failed: %w", err)
		}

		stats.Scanned++
		if stats.Scanned%1000 == 0 {
			slog.Info("Scanning corpus", "scanned", stats.Scanned, "limit", cfg.ScanLimit, "accepted", acceptor.Accepted())
		}

		if len(doc.Text) < cfg.MinLength {
			stats.SkippedShort++
			continue
		}

		match := cfg.TitlePattern.FindStringSubmatch(doc.Text)
		if match == nil {
			stats.SkippedNoTitle++
			continue
		}

		title := strings.TrimSpace(match[1])
		if title == "" {
			stats.SkippedNoTitle++
			continue
		}
		if seen[title] {
			stats.SkippedDuplicate++
			continue
		}

		if acceptor.Offer(title, doc.Text) {
			seen[title] = true
		} else {
			stats.Rejected++
		}
	}

	stats.Accepted = acceptor.Accepted()
	return stats, nil
}
