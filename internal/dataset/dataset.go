// Package dataset loads the passenger manifest from a URL, a local CSV file,
// or the bundled sample, and writes filtered rows back out as CSV.
package dataset

import (
	"bytes"
	"context"
	_ "embed"
	"net/http"
	"os"
	"strings"
	"time"

	manifesterrors "github.com/wexinc/manifest/internal/errors"
	"github.com/wexinc/manifest/internal/logging"
	"github.com/wexinc/manifest/internal/passenger"
)

// BuiltinSource selects the bundled sample manifest.
const BuiltinSource = "builtin"

// DefaultTimeout bounds a remote download when Options.Timeout is unset.
const DefaultTimeout = 30 * time.Second

//go:embed titanic_sample.csv
var builtinCSV []byte

// Options configures Load.
type Options struct {
	// Source is an http(s) URL, a file path, or BuiltinSource.
	Source string
	// CacheDir receives a copy of every successful remote download. Empty disables caching.
	CacheDir string
	// Timeout bounds the remote download.
	Timeout time.Duration
	// Client overrides the HTTP client used for remote sources.
	Client *http.Client
	// Logger receives fetch and fallback messages. Defaults to the global logger.
	Logger *logging.Logger
}

// Load reads the manifest named by opts.Source. An empty source loads the
// bundled sample.
func Load(ctx context.Context, opts Options) (*passenger.Dataset, error) {
	if opts.Logger == nil {
		opts.Logger = logging.Global()
	}

	source := strings.TrimSpace(opts.Source)
	switch {
	case source == "" || strings.EqualFold(source, BuiltinSource):
		return Builtin()
	case IsRemote(source):
		return loadRemote(ctx, source, opts)
	default:
		return LoadFile(source)
	}
}

// Builtin returns the bundled sample manifest.
func Builtin() (*passenger.Dataset, error) {
	return Parse(bytes.NewReader(builtinCSV), BuiltinSource)
}

// LoadFile parses a CSV file from disk.
func LoadFile(path string) (*passenger.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, manifesterrors.SourceNotFound(path)
		}
		return nil, manifesterrors.Wrap(err, manifesterrors.ErrData, "failed to open dataset")
	}
	defer f.Close()

	return Parse(f, path)
}

// IsRemote reports whether source is an http or https URL.
func IsRemote(source string) bool {
	lower := strings.ToLower(source)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
