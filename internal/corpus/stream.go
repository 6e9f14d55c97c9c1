package corpus

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/parquet-go/parquet-go"
)

// Stream yields corpus records one at a time, in file order. It returns
// io.EOF once the underlying file is exhausted. Records are not retained
// after being handed to the caller, so arbitrarily large corpora can be
// scanned in constant memory.
type Stream interface {
	Next() (GutenbergRecord, error)
	Close() error
}

// Open opens a corpus file (Parquet or JSONL) as a Stream
func Open(path string) (Stream, error) {
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".parquet":
		return openParquet(path)
	case ".jsonl", ".json":
		return openJSONL(path)
	default:
		return nil, fmt.Errorf("unsupported file format: %s (supported: .parquet, .jsonl)", ext)
	}
}

type parquetStream struct {
	file   *os.File
	reader *parquet.GenericReader[GutenbergRecord]
	buf    []GutenbergRecord
	pos    int
	n      int
	done   bool
}

func openParquet(path string) (*parquetStream, error) {
	slog.Debug("Opening Parquet file", "path", path)

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	slog.Debug("Parquet file stats", "size_bytes", info.Size(), "size_mb", info.Size()/1024/1024)

	pf, err := parquet.OpenFile(file, info.Size())
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to open parquet: %w", err)
	}

	slog.Debug("Parquet file opened successfully", "num_rows", pf.NumRows(), "num_row_groups", len(pf.RowGroups()))

	return &parquetStream{
		file:   file,
		reader: parquet.NewGenericReader[GutenbergRecord](pf),
		buf:    make([]GutenbergRecord, 128), // Read in batches
	}, nil
}

func (s *parquetStream) Next() (GutenbergRecord, error) {
	if s.pos >= s.n {
		if s.done {
			return GutenbergRecord{}, io.EOF
		}
		n, err := s.reader.Read(s.buf)
		if err != nil {
			if err != io.EOF {
				return GutenbergRecord{}, fmt.Errorf("error reading parquet: %w", err)
			}
			s.done = true
		}
		if n == 0 {
			return GutenbergRecord{}, io.EOF
		}
		s.pos = 0
		s.n = n
	}

	record := s.buf[s.pos]
	s.pos++
	return record, nil
}

func (s *parquetStream) Close() error {
	s.reader.Close()
	return s.file.Close()
}

type jsonlStream struct {
	file    *os.File
	scanner *bufio.Scanner
	lineNum int
}

func openJSONL(path string) (*jsonlStream, error) {
	slog.Debug("Opening JSONL file", "path", path)

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open corpus file: %w", err)
	}

	scanner := bufio.NewScanner(file)

	// Increase buffer size for large JSON lines; a full novel is one line
	const maxCapacity = 10 * 1024 * 1024 // 10MB per line
	buf := make([]byte, maxCapacity)
	scanner.Buffer(buf, maxCapacity)

	return &jsonlStream{file: file, scanner: scanner}, nil
}

func (s *jsonlStream) Next() (GutenbergRecord, error) {
	for s.scanner.Scan() {
		s.lineNum++
		line := s.scanner.Bytes()

		if len(line) == 0 {
			continue
		}

		var record GutenbergRecord
		if err := json.Unmarshal(line, &record); err != nil {
			// Skip malformed lines but continue
			slog.Warn("Failed to parse corpus line, skipping", "line", s.lineNum, "error", err)
			continue
		}

		return record, nil
	}

	if err := s.scanner.Err(); err != nil {
		return GutenbergRecord{}, fmt.Errorf("error reading corpus: %w", err)
	}

	return GutenbergRecord{}, io.EOF
}

func (s *jsonlStream) Close() error {
	return s.file.Close()
}
