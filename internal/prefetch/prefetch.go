package prefetch

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"carddex/internal/domain"
)

const fetchTimeout = 15 * time.Second

// Warmer downloads card images into a local cache directory so list and
// detail views can show them without waiting on the network. It
// implements domain.ImagePrefetcher.
type Warmer struct {
	cacheDir   string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewWarmer creates a warmer writing under cacheDir
func NewWarmer(cacheDir string, logger *slog.Logger) *Warmer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Warmer{
		cacheDir:   cacheDir,
		httpClient: &http.Client{Timeout: fetchTimeout},
		logger:     logger,
	}
}

// Warm fetches the given URLs into the cache in the background. It
// returns immediately; download failures are logged and ignored so list
// availability never depends on image fetches.
func (w *Warmer) Warm(urls []string) {
	if len(urls) == 0 {
		return
	}
	go w.warm(urls)
}

func (w *Warmer) warm(urls []string) {
	if err := os.MkdirAll(w.cacheDir, 0755); err != nil {
		w.logger.Error("failed to create image cache dir", "error", err)
		return
	}

	warmed := 0
	for _, u := range urls {
		if w.fetchOne(u) {
			warmed++
		}
	}
	w.logger.Debug("warmed image cache", "requested", len(urls), "fetched", warmed)
}

// fetchOne downloads a single URL unless it is already cached. Returns
// true only when a new file was written.
func (w *Warmer) fetchOne(url string) bool {
	path := w.cachePath(url)
	if _, err := os.Stat(path); err == nil {
		return false
	}

	resp, err := w.httpClient.Get(url)
	if err != nil {
		w.logger.Debug("image fetch failed", "url", url, "error", err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		w.logger.Debug("image fetch error", "url", url, "status", resp.StatusCode)
		return false
	}

	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		w.logger.Debug("failed to create image file", "path", tmp, "error", err)
		return false
	}
	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()
		os.Remove(tmp)
		w.logger.Debug("failed to write image file", "path", tmp, "error", err)
		return false
	}
	f.Close()

	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return false
	}
	return true
}

// CachedPath returns the local path for a URL and whether it exists
func (w *Warmer) CachedPath(url string) (string, bool) {
	path := w.cachePath(url)
	_, err := os.Stat(path)
	return path, err == nil
}

// cachePath derives a stable filename from the URL
func (w *Warmer) cachePath(url string) string {
	hash := sha256.Sum256([]byte(url))
	name := hex.EncodeToString(hash[:8])
	if ext := filepath.Ext(url); ext != "" && len(ext) <= 5 && !strings.ContainsAny(ext, "?&=") {
		name += ext
	}
	return filepath.Join(w.cacheDir, name)
}

var _ domain.ImagePrefetcher = (*Warmer)(nil)
