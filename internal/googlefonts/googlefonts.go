// Package googlefonts fetches a font family from the google/fonts repository when it is not
// installed locally.
package googlefonts

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"garage-door/internal/download"
)

const apiBase = "https://api.github.com/repos/google/fonts/contents/ofl"

// Only these hosts are used; no user-supplied URLs.
const allowedRawPrefix = "https://raw.githubusercontent.com/google/fonts/"

type githubFile struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	DownloadURL string `json:"download_url"`
}

// Client looks fonts up through the GitHub contents API.
type Client struct {
	HTTP *http.Client
	// APIBase and AllowedPrefix default to the google/fonts ofl directory and its raw host.
	APIBase       string
	AllowedPrefix string
}

// New returns a client with a 15 second timeout.
func New() *Client {
	return &Client{
		HTTP:          &http.Client{Timeout: 15 * time.Second},
		APIBase:       apiBase,
		AllowedPrefix: allowedRawPrefix,
	}
}

// NormalizeFamily converts a display name to the folder names used in google/fonts ofl.
// e.g. "Inter" -> "inter", "Open Sans" -> "opensans", "open-sans".
func NormalizeFamily(name string) []string {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	lower := strings.ToLower(name)
	noSpaces := strings.ReplaceAll(lower, " ", "")
	withHyphens := strings.ReplaceAll(lower, " ", "-")
	out := []string{noSpaces}
	if withHyphens != noSpaces {
		out = append(out, withHyphens)
	}
	return out
}

// pick chooses a file: bold upright first, then any upright face, then an italic.
func pick(files []githubFile, allowed string) string {
	var upright, italic string
	for _, f := range files {
		if f.Type != "file" || f.DownloadURL == "" || !strings.HasPrefix(f.DownloadURL, allowed) {
			continue
		}
		lower := strings.ToLower(f.Name)
		if !strings.HasSuffix(lower, ".ttf") && !strings.HasSuffix(lower, ".otf") {
			continue
		}
		switch {
		case strings.Contains(lower, "italic"):
			if italic == "" {
				italic = f.DownloadURL
			}
		case strings.Contains(lower, "bold") && !strings.Contains(lower, "semibold") && !strings.Contains(lower, "extrabold"):
			return f.DownloadURL
		case upright == "":
			upright = f.DownloadURL
		}
	}
	if upright != "" {
		return upright
	}
	return italic
}

// FetchDownloadURL returns the raw download URL for a font file in the given folder.
func (c *Client) FetchDownloadURL(ctx context.Context, folder string) (string, error) {
	u := c.APIBase + "/" + url.PathEscape(folder)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", fmt.Errorf("google fonts: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return "", fmt.Errorf("font %q not found on Google Fonts", folder)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("google fonts: HTTP %d", resp.StatusCode)
	}
	var files []githubFile
	if err := json.NewDecoder(resp.Body).Decode(&files); err != nil {
		return "", fmt.Errorf("google fonts: %w", err)
	}
	if u := pick(files, c.AllowedPrefix); u != "" {
		return u, nil
	}
	return "", fmt.Errorf("no .ttf/.otf file found for %q on Google Fonts", folder)
}

// Fetch makes sure a file for family exists under destDir and returns its path. A file cached
// by an earlier run is reused without touching the network.
func (c *Client) Fetch(ctx context.Context, family, destDir string) (string, error) {
	candidates := NormalizeFamily(family)
	if len(candidates) == 0 {
		return "", fmt.Errorf("invalid font name")
	}
	dir := filepath.Join(destDir, candidates[0])
	if entries, err := os.ReadDir(dir); err == nil {
		for _, e := range entries {
			if ext := strings.ToLower(filepath.Ext(e.Name())); ext == ".ttf" || ext == ".otf" {
				return filepath.Join(dir, e.Name()), nil
			}
		}
	}
	var lastErr error
	for _, folder := range candidates {
		u, err := c.FetchDownloadURL(ctx, folder)
		if err != nil {
			lastErr = err
			continue
		}
		return download.Download(ctx, c.HTTP, u, dir, nil)
	}
	return "", lastErr
}
