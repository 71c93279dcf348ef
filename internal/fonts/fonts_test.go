package fonts

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"golang.org/x/image/font/gofont/gobold"
)

func TestFamilies(t *testing.T) {
	got := Families(`Inter, "Open Sans", sans-serif`)
	want := []string{"Inter", "Open Sans"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Families = %v, want %v", got, want)
	}
}

func TestFindFontPrefersBold(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"Inter/Inter-Regular.ttf", "Inter/Inter-Bold.ttf", "Other/readme.txt"} {
		p := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	got, err := FindFont([]string{dir}, "inter", "bold")
	if err != nil {
		t.Fatalf("FindFont: %v", err)
	}
	if filepath.Base(got) != "Inter-Bold.ttf" {
		t.Errorf("FindFont = %s, want Inter-Bold.ttf", got)
	}
	if _, err := FindFont([]string{dir}, "Roboto", ""); err == nil {
		t.Error("expected an error for a missing family")
	}
}

func TestResolveFallsBackToEmbedded(t *testing.T) {
	face, src, err := Resolve("", "Inter, sans-serif", []string{t.TempDir()}, 48)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if src != "gobold" {
		t.Errorf("source = %q, want gobold", src)
	}
	if face.Metrics().Height <= 0 {
		t.Error("face has no height")
	}
}

func TestResolveExplicitPath(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bold.ttf")
	if err := os.WriteFile(p, gobold.TTF, 0644); err != nil {
		t.Fatal(err)
	}
	_, src, err := Resolve(p, "", nil, 24)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if src != p {
		t.Errorf("source = %q, want %q", src, p)
	}
}
