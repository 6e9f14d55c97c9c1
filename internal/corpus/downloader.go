package corpus

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

const (
	// HuggingFace dataset repository
	HFDatasetRepo = "manu/project_gutenberg"

	// HuggingFace URLs
	HFResolveURL = "https://huggingface.co/datasets/%s/resolve/main/%s"

	// DefaultShard is the first English shard of the dataset
	DefaultShard = "data/en-00000-of-00080.parquet"

	// Default cache directory (similar to Python's datasets library)
	DefaultCacheDir = "~/.cache/huggingface/datasets"
)

// DownloadConfig configures dataset downloading
type DownloadConfig struct {
	CacheDir      string
	ForceDownload bool
	Token         string // HuggingFace token, only needed for gated datasets
}

// Downloader handles downloading and caching corpus shards from HuggingFace
type Downloader struct {
	config DownloadConfig
}

// NewDownloader creates a new corpus downloader
func NewDownloader(config DownloadConfig) *Downloader {
	if config.CacheDir == "" {
		config.CacheDir = DefaultCacheDir
	}

	// Expand ~ to home directory
	if strings.HasPrefix(config.CacheDir, "~") {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			config.CacheDir = filepath.Join(homeDir, config.CacheDir[1:])
		}
	}

	return &Downloader{
		config: config,
	}
}

// DownloadShard downloads a corpus shard from HuggingFace.
// Returns the path to the cached file.
func (d *Downloader) DownloadShard(filename string) (string, error) {
	cacheDir := filepath.Join(d.config.CacheDir, HFDatasetRepo)
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create cache directory: %w", err)
	}

	cachedPath := filepath.Join(cacheDir, filepath.Base(filename))

	if !d.config.ForceDownload {
		if _, err := os.Stat(cachedPath); err == nil {
			slog.Info("Using cached corpus shard", "path", cachedPath)
			return cachedPath, nil
		}
	}

	slog.Info("Downloading corpus shard from HuggingFace", "repo", HFDatasetRepo, "file", filename)

	url := fmt.Sprintf(HFResolveURL, HFDatasetRepo, filename)

	if err := d.downloadFile(url, cachedPath); err != nil {
		return "", fmt.Errorf("failed to download corpus shard: %w", err)
	}

	slog.Info("Corpus shard downloaded successfully", "path", cachedPath)
	return cachedPath, nil
}

// downloadFile downloads a file from a URL to a local path
func (d *Downloader) downloadFile(url, destPath string) error {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if d.config.Token != "" {
		req.Header.Set("Authorization", "Bearer "+d.config.Token)
	}

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to download: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download failed with status: %d", resp.StatusCode)
	}

	// Write to a temp file first so an interrupted download never leaves a
	// truncated file in the cache.
	tempPath := destPath + ".tmp"
	out, err := os.Create(tempPath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	written, err := io.Copy(out, resp.Body)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("download failed: %w", err)
	}

	slog.Debug("Download complete", "bytes", written, "total_mb", written/(1024*1024))

	if err := os.Rename(tempPath, destPath); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to move file: %w", err)
	}

	return nil
}

// GetCachePath returns the path where a corpus shard would be cached
func (d *Downloader) GetCachePath(filename string) string {
	cacheDir := filepath.Join(d.config.CacheDir, HFDatasetRepo)
	return filepath.Join(cacheDir, filepath.Base(filename))
}

// ClearCache removes all cached corpus shards
func (d *Downloader) ClearCache() error {
	cacheDir := filepath.Join(d.config.CacheDir, HFDatasetRepo)
	slog.Info("Clearing cache", "path", cacheDir)
	return os.RemoveAll(cacheDir)
}

// OpenOrDownload opens a corpus shard from cache, downloading it if not present
func OpenOrDownload(filename string, config DownloadConfig) (Stream, error) {
	downloader := NewDownloader(config)

	path, err := downloader.DownloadShard(filename)
	if err != nil {
		return nil, err
	}

	return Open(path)
}
