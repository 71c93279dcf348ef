package archive

import (
	"archive/zip"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeZip(t *testing.T, path string, files map[string]string) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	zw := zip.NewWriter(f)
	for name, body := range files {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := w.Write([]byte(body)); err != nil {
			t.Fatal(err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestUnzipAndFindScene(t *testing.T) {
	dir := t.TempDir()
	zipPath := filepath.Join(dir, "door.zip")
	writeZip(t, zipPath, map[string]string{
		"extra/other.gltf":              "{}",
		"garage_door_01/scene.gltf":     "{}",
		"garage_door_01/scene.bin":      "bin",
		"garage_door_01/textures/a.png": "png",
	})
	dest := filepath.Join(dir, "out")
	files, err := Unzip(zipPath, dest)
	if err != nil {
		t.Fatalf("Unzip: %v", err)
	}
	if len(files) != 4 {
		t.Errorf("extracted %d files, want 4", len(files))
	}
	got, err := FindScene(dest)
	if err != nil {
		t.Fatalf("FindScene: %v", err)
	}
	if filepath.Base(got) != "scene.gltf" {
		t.Errorf("FindScene = %s, want scene.gltf", got)
	}
}

func TestFindScenePrefersShallowGLB(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a/b/deep.glb", "top.glb"} {
		p := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, nil, 0644); err != nil {
			t.Fatal(err)
		}
	}
	got, err := FindScene(dir)
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(got) != "top.glb" {
		t.Errorf("FindScene = %s, want top.glb", got)
	}
}

func TestFindSceneEmpty(t *testing.T) {
	if _, err := FindScene(t.TempDir()); !errors.Is(err, ErrNoScene) {
		t.Errorf("err = %v, want ErrNoScene", err)
	}
}
