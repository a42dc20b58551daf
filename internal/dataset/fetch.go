package dataset

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"time"

	manifesterrors "github.com/wexinc/manifest/internal/errors"
	"github.com/wexinc/manifest/internal/passenger"
)

// maxDownloadSize caps a remote manifest body.
const maxDownloadSize = 64 << 20

func loadRemote(ctx context.Context, source string, opts Options) (*passenger.Dataset, error) {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	body, err := fetch(ctx, opts.Client, source, timeout)
	if err == nil {
		var ds *passenger.Dataset
		ds, err = Parse(bytes.NewReader(body), source)
		if err == nil {
			if cachePath := CachePath(opts.CacheDir, source); cachePath != "" {
				if werr := writeCache(cachePath, body); werr != nil {
					opts.Logger.Warn("failed to cache dataset", "path", cachePath, "error", werr)
				}
			}
			opts.Logger.Info("dataset downloaded", "source", source, "rows", ds.Len())
			return ds, nil
		}
	}

	cachePath := CachePath(opts.CacheDir, source)
	if cachePath != "" {
		if _, statErr := os.Stat(cachePath); statErr == nil {
			opts.Logger.Warn("remote dataset unavailable, using cached copy",
				"source", source, "cache", cachePath, "error", err)
			return LoadFile(cachePath)
		}
	}

	if _, ok := manifesterrors.As(err); ok {
		return nil, err
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return nil, manifesterrors.FetchTimeout(source, timeout).WithCause(err)
	}
	return nil, manifesterrors.DataUnavailable(source, err)
}

func fetch(ctx context.Context, client *http.Client, source string, timeout time.Duration) ([]byte, error) {
	if client == nil {
		client = http.DefaultClient
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "text/csv, text/plain, */*")
	req.Header.Set("User-Agent", "manifest-dataset-loader")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("download failed with status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxDownloadSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	return body, nil
}

// CachePath returns where a download of source is cached, or "" when
// caching is disabled.
func CachePath(cacheDir, source string) string {
	if cacheDir == "" {
		return ""
	}
	name := "dataset.csv"
	if u, err := url.Parse(source); err == nil {
		if base := path.Base(u.Path); base != "" && base != "/" && base != "." {
			name = base
		}
	}
	return filepath.Join(cacheDir, name)
}

// writeCache replaces the cache file atomically.
func writeCache(cachePath string, body []byte) error {
	if err := os.MkdirAll(filepath.Dir(cachePath), 0755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(cachePath), ".download-*")
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(body); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), cachePath)
}
