package googlefonts

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestNormalizeFamily(t *testing.T) {
	got := NormalizeFamily(" Open Sans ")
	if len(got) != 2 || got[0] != "opensans" || got[1] != "open-sans" {
		t.Errorf("NormalizeFamily = %v", got)
	}
	if NormalizeFamily("") != nil {
		t.Error("empty name should yield nothing")
	}
}

func TestPick(t *testing.T) {
	const raw = "https://raw.example/"
	files := []githubFile{
		{Name: "OFL.txt", Type: "file", DownloadURL: raw + "OFL.txt"},
		{Name: "Inter-Italic.ttf", Type: "file", DownloadURL: raw + "Inter-Italic.ttf"},
		{Name: "Inter-Regular.ttf", Type: "file", DownloadURL: raw + "Inter-Regular.ttf"},
		{Name: "Inter-SemiBold.ttf", Type: "file", DownloadURL: raw + "Inter-SemiBold.ttf"},
		{Name: "Inter-Bold.ttf", Type: "file", DownloadURL: raw + "Inter-Bold.ttf"},
		{Name: "Evil-Bold.ttf", Type: "file", DownloadURL: "https://elsewhere/Evil-Bold.ttf"},
	}
	if got := pick(files, raw); got != raw+"Inter-Bold.ttf" {
		t.Errorf("pick = %q", got)
	}
	if got := pick(files[:2], raw); got != raw+"Inter-Italic.ttf" {
		t.Errorf("italic only: pick = %q", got)
	}
	if got := pick(files[5:], raw); got != "" {
		t.Errorf("foreign host accepted: %q", got)
	}
}

func TestFetch(t *testing.T) {
	var srv *httptest.Server
	hits := 0
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ofl/inter":
			hits++
			_ = json.NewEncoder(w).Encode([]githubFile{
				{Name: "Inter-Bold.ttf", Type: "file", DownloadURL: srv.URL + "/raw/Inter-Bold.ttf"},
			})
		case "/raw/Inter-Bold.ttf":
			_, _ = w.Write([]byte("not really a font"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := &Client{HTTP: srv.Client(), APIBase: srv.URL + "/ofl", AllowedPrefix: srv.URL + "/raw/"}
	dir := t.TempDir()
	path, err := c.Fetch(context.Background(), "Inter", dir)
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Ext(path) != ".ttf" || filepath.Dir(path) != filepath.Join(dir, "inter") {
		t.Errorf("path = %q", path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatal(err)
	}
	again, err := c.Fetch(context.Background(), "Inter", dir)
	if err != nil || again != path || hits != 1 {
		t.Errorf("cached fetch: %q %v hits=%d", again, err, hits)
	}
	if _, err := c.Fetch(context.Background(), "Nope", dir); err == nil {
		t.Error("expected error for unknown family")
	}
}
