// Package fonts finds and loads the font used for the branding overlay.
package fonts

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
)

// Extensions we consider as font files.
var Exts = []string{".ttf", ".otf"}

// BaseDirs returns candidate base directories for fonts (relative to process cwd).
func BaseDirs() []string {
	return []string{"assets/fonts", "../../assets/fonts"}
}

// ScanDir returns relative paths of all font files under dir (e.g. "Inter/Inter-Bold.ttf").
// Paths use forward slashes. Only .ttf and .otf are included. A missing dir yields no paths.
func ScanDir(dir string) ([]string, error) {
	var out []string
	dir = filepath.Clean(dir)
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if info.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		for _, e := range Exts {
			if ext == e {
				rel, err := filepath.Rel(dir, path)
				if err != nil {
					return err
				}
				out = append(out, filepath.ToSlash(rel))
				return nil
			}
		}
		return nil
	})
	return out, err
}

// normalizeForMatch lowercases and removes spaces, dashes, and underscores for fuzzy matching.
func normalizeForMatch(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "_", "")
	return s
}

// Families splits a CSS font-family list ("Inter, sans-serif") into names, dropping quotes
// and generic families, which have no file of their own.
func Families(list string) []string {
	var out []string
	for _, part := range strings.Split(list, ",") {
		name := strings.Trim(strings.TrimSpace(part), `"'`)
		switch strings.ToLower(name) {
		case "", "serif", "sans-serif", "monospace", "cursive", "fantasy", "system-ui":
			continue
		}
		out = append(out, name)
	}
	return out
}

// FindFont searches dirs for a font file whose path contains search (fuzzy).
// When several files match, one whose path contains prefer (e.g. "bold") wins.
// Returns the full path of the match, or os.ErrNotExist.
func FindFont(dirs []string, search, prefer string) (string, error) {
	norm := normalizeForMatch(search)
	if norm == "" {
		return "", os.ErrNotExist
	}
	var candidates []string
	for _, base := range dirs {
		list, walkErr := ScanDir(base)
		if walkErr != nil || len(list) == 0 {
			continue
		}
		for _, rel := range list {
			if strings.Contains(normalizeForMatch(rel), norm) {
				candidates = append(candidates, filepath.Join(base, filepath.FromSlash(rel)))
			}
		}
	}
	if len(candidates) == 0 {
		return "", os.ErrNotExist
	}
	if prefer != "" {
		for _, c := range candidates {
			if strings.Contains(strings.ToLower(filepath.Base(c)), strings.ToLower(prefer)) {
				return c, nil
			}
		}
	}
	return candidates[0], nil
}

// LoadFace parses the font file at path and returns a face of the given pixel size.
func LoadFace(path string, size float64) (font.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fonts: %w", err)
	}
	return newFace(data, size)
}

// BoldFace returns the embedded Go Bold face, used when no font file is available.
func BoldFace(size float64) (font.Face, error) {
	return newFace(gobold.TTF, size)
}

func newFace(data []byte, size float64) (font.Face, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("fonts: parse: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("fonts: %w", err)
	}
	return face, nil
}

// Resolve picks the face for a CSS-like family list: an explicit path wins, then the first
// family found under dirs (bold preferred), then the embedded bold face.
func Resolve(path, families string, dirs []string, size float64) (font.Face, string, error) {
	if path != "" {
		face, err := LoadFace(path, size)
		if err == nil {
			return face, path, nil
		}
	}
	for _, fam := range Families(families) {
		if p, err := FindFont(dirs, fam, "bold"); err == nil {
			if face, err := LoadFace(p, size); err == nil {
				return face, p, nil
			}
		}
	}
	face, err := BoldFace(size)
	return face, "gobold", err
}
