package download

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDownloadSavesWithExtension(t *testing.T) {
	body := `{"asset":{"version":"2.0"}}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "model/gltf+json")
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	var last int64
	dir := t.TempDir()
	got, err := Download(context.Background(), srv.Client(), srv.URL+"/models/door", dir, func(received, total int64) {
		last = received
	})
	if err != nil {
		t.Fatalf("Download: %v", err)
	}
	if filepath.Base(got) != "door.gltf" {
		t.Errorf("saved as %s, want door.gltf", filepath.Base(got))
	}
	data, err := os.ReadFile(got)
	if err != nil || string(data) != body {
		t.Errorf("content = %q, %v", data, err)
	}
	if last != int64(len(body)) {
		t.Errorf("progress ended at %d, want %d", last, len(body))
	}
}

func TestDownloadHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()
	_, err := Download(context.Background(), srv.Client(), srv.URL+"/scene.glb", t.TempDir(), nil)
	if err == nil || !strings.Contains(err.Error(), "404") {
		t.Errorf("err = %v, want HTTP 404", err)
	}
}

func TestDownloadCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("x"))
	}))
	defer srv.Close()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Download(ctx, srv.Client(), srv.URL+"/a.glb", t.TempDir(), nil); err == nil {
		t.Error("expected error for a cancelled context")
	}
}

func TestFilenameHelpers(t *testing.T) {
	if got := filenameFromContentDisposition(`attachment; filename="garage door.zip"`); got != "garage door.zip" {
		t.Errorf("content disposition name = %q", got)
	}
	if got := sanitizeFilename("garage door.zip"); got != "garage_door.zip" {
		t.Errorf("sanitize = %q", got)
	}
	if got := extensionFromURL("https://x/scene.GLB?raw=1"); got != ".glb" {
		t.Errorf("extension = %q", got)
	}
}
