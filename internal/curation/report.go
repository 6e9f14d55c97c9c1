package curation

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// ReportConfig records the parameters a curation run was executed with
type ReportConfig struct {
	CorpusPath  string `yaml:"corpuspath"`
	MinLength   int    `yaml:"minlength"`
	ScanLimit   int    `yaml:"scanlimit"`
	TargetCount int    `yaml:"targetcount"`
	Model       string `yaml:"model"`
	Timestamp   string `yaml:"timestamp"`
}

// Report is the durable record of one curation run, written next to the
// catalog artifacts so an operator can see what the scan did.
type Report struct {
	Config             ReportConfig `yaml:"config"`
	Stats              ScanStats    `yaml:"stats"`
	PriorityTitles     []string     `yaml:"prioritytitles"`
	OtherTitles        []string     `yaml:"othertitles"`
	ConsumedKeywords   []string     `yaml:"consumedkeywords"`
	TranslationApplied bool         `yaml:"translationapplied"`
}

// SaveReport writes the curation report as YAML into dir
func SaveReport(dir string, report Report) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create report directory: %w", err)
	}

	if report.Config.Timestamp == "" {
		report.Config.Timestamp = time.Now().Format("2006-01-02_15-04-05")
	}

	filename := filepath.Join(dir, fmt.Sprintf("curation-%s.yaml", report.Config.Timestamp))

	data, err := yaml.Marshal(&report)
	if err != nil {
		return "", fmt.Errorf("failed to marshal YAML: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write YAML file: %w", err)
	}

	return filename, nil
}

// NewReport assembles a report from a finished run
func NewReport(cfg ReportConfig, stats ScanStats, classifier *Classifier, translated bool) Report {
	priority, other := classifier.Partition()

	report := Report{
		Config:             cfg,
		Stats:              stats,
		ConsumedKeywords:   classifier.ConsumedKeywords(),
		TranslationApplied: translated,
	}
	for _, e := range priority {
		report.PriorityTitles = append(report.PriorityTitles, e.Title)
	}
	for _, e := range other {
		report.OtherTitles = append(report.OtherTitles, e.Title)
	}

	return report
}
