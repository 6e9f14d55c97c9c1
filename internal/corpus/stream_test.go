package corpus

import (
	"io"
	"os"
	"path/filepath"
	"testing"
)

func writeCorpusFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Unable to write corpus file: %v", err)
	}
	return path
}

func TestJSONLStreamYieldsRecordsInOrder(t *testing.T) {
	content := `{"id":"1","text":"Title: Dracula\n\nfirst novel"}
{"id":"2","text":"Title: Moby Dick\n\nsecond novel"}
`
	path := writeCorpusFile(t, "corpus.jsonl", content)

	stream, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer stream.Close()

	first, err := stream.Next()
	if err != nil {
		t.Fatalf("First Next failed: %v", err)
	}
	if first.ID != "1" {
		t.Errorf("Expected first record id 1, got %q", first.ID)
	}

	second, err := stream.Next()
	if err != nil {
		t.Fatalf("Second Next failed: %v", err)
	}
	if second.ID != "2" {
		t.Errorf("Expected second record id 2, got %q", second.ID)
	}

	if _, err := stream.Next(); err != io.EOF {
		t.Errorf("Expected io.EOF after last record, got %v", err)
	}
}

func TestJSONLStreamSkipsMalformedLines(t *testing.T) {
	content := `{"id":"1","text":"good"}
this is not json
{"id":"2","text":"also good"}
`
	path := writeCorpusFile(t, "corpus.jsonl", content)

	stream, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer stream.Close()

	var ids []string
	for {
		record, err := stream.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		ids = append(ids, record.ID)
	}

	if len(ids) != 2 || ids[0] != "1" || ids[1] != "2" {
		t.Errorf("Expected malformed line skipped, got ids %v", ids)
	}
}

func TestOpenRejectsUnknownFormat(t *testing.T) {
	path := writeCorpusFile(t, "corpus.csv", "id,text\n")

	if _, err := Open(path); err == nil {
		t.Fatal("Expected error for unsupported format, got nil")
	}
}

func TestDownloaderUsesCachedShard(t *testing.T) {
	cacheDir := t.TempDir()
	downloader := NewDownloader(DownloadConfig{CacheDir: cacheDir})

	// Pre-populate the cache so no network request is needed
	cachedPath := downloader.GetCachePath(DefaultShard)
	if err := os.MkdirAll(filepath.Dir(cachedPath), 0755); err != nil {
		t.Fatalf("Unable to create cache dir: %v", err)
	}
	if err := os.WriteFile(cachedPath, []byte("parquet bytes"), 0644); err != nil {
		t.Fatalf("Unable to seed cache: %v", err)
	}

	path, err := downloader.DownloadShard(DefaultShard)
	if err != nil {
		t.Fatalf("DownloadShard failed: %v", err)
	}
	if path != cachedPath {
		t.Errorf("Expected cached path %q, got %q", cachedPath, path)
	}
}
