// Package assets turns the configured model source into a local glTF file.
package assets

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"garage-door/internal/archive"
	"garage-door/internal/download"
)

// Logger is the subset of the application logger used while resolving.
type Logger interface {
	Infof(format string, args ...any)
}

// Resolver fetches the model once. Sources may be a local path, an http(s) URL, or a .zip
// of either; archives are unpacked into CacheDir and searched for the scene file.
type Resolver struct {
	Source   string
	CacheDir string
	Client   *http.Client
	Log      Logger
}

// NewResolver returns a resolver with a one minute download timeout.
func NewResolver(source, cacheDir string, log Logger) *Resolver {
	return &Resolver{
		Source:   source,
		CacheDir: cacheDir,
		Client:   &http.Client{Timeout: 60 * time.Second},
		Log:      log,
	}
}

// IsRemote reports whether src is fetched over HTTP.
func IsRemote(src string) bool {
	lower := strings.ToLower(src)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// Resolve returns the path of a local .gltf or .glb file for r.Source.
func (r *Resolver) Resolve(ctx context.Context) (string, error) {
	if r.Source == "" {
		return "", fmt.Errorf("assets: no model source configured")
	}
	path := r.Source
	if IsRemote(path) {
		saved, err := download.Download(ctx, r.Client, path, filepath.Join(r.CacheDir, "downloads"), r.progress())
		if err != nil {
			return "", err
		}
		r.infof("Downloaded model to %s", saved)
		path = saved
	}
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("assets: %w", err)
	}
	if strings.EqualFold(filepath.Ext(path), ".zip") {
		dest := filepath.Join(r.CacheDir, "unpacked", strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))
		files, err := archive.Unzip(path, dest)
		if err != nil {
			return "", err
		}
		r.infof("Unpacked %d files from %s", len(files), path)
		return archive.FindScene(dest)
	}
	return path, nil
}

// progress returns a download callback that logs each whole percent once.
func (r *Resolver) progress() download.Progress {
	last := -1
	return func(received, total int64) {
		if total <= 0 {
			return
		}
		pct := int(received * 100 / total)
		if pct == last {
			return
		}
		last = pct
		r.infof("Loading progress: %d%%", pct)
	}
}

func (r *Resolver) infof(format string, args ...any) {
	if r.Log != nil {
		r.Log.Infof(format, args...)
	}
}
