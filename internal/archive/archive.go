package archive

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrNoScene is returned when an extracted archive holds no glTF scene.
var ErrNoScene = errors.New("archive: no .gltf or .glb file found")

// Unzip extracts zipPath into destDir, preserving directory structure.
// destDir is created if needed. Entries that would escape destDir are skipped.
// Returns the list of extracted file paths, or an error.
func Unzip(zipPath, destDir string) (extracted []string, err error) {
	r, err := zip.OpenReader(zipPath)
	if err != nil {
		return nil, fmt.Errorf("unzip: %w", err)
	}
	defer r.Close()
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return nil, fmt.Errorf("unzip: %w", err)
	}
	absDir, err := filepath.Abs(destDir)
	if err != nil {
		return nil, fmt.Errorf("unzip: %w", err)
	}
	for _, f := range r.File {
		dest := filepath.Clean(filepath.Join(destDir, f.Name))
		absDest, err := filepath.Abs(dest)
		if err != nil {
			return nil, fmt.Errorf("unzip: %w", err)
		}
		if !strings.HasPrefix(absDest, absDir+string(os.PathSeparator)) && absDest != absDir {
			continue // skip path escape
		}
		if f.FileInfo().IsDir() {
			_ = os.MkdirAll(dest, 0755)
			continue
		}
		if err := extractFile(f, dest); err != nil {
			return nil, err
		}
		extracted = append(extracted, dest)
	}
	return extracted, nil
}

func extractFile(f *zip.File, dest string) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return fmt.Errorf("unzip: %w", err)
	}
	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("unzip: %w", err)
	}
	defer out.Close()
	rc, err := f.Open()
	if err != nil {
		return fmt.Errorf("unzip: %w", err)
	}
	defer rc.Close()
	if _, err := io.Copy(out, rc); err != nil {
		return fmt.Errorf("unzip: %w", err)
	}
	return nil
}

// FindScene returns the model file inside dir. A file named scene.gltf wins (the layout of
// exported model packs); otherwise the shallowest .gltf, then the shallowest .glb.
func FindScene(dir string) (string, error) {
	var gltfs, glbs []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".gltf":
			gltfs = append(gltfs, path)
		case ".glb":
			glbs = append(glbs, path)
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("archive: %w", err)
	}
	byDepth := func(paths []string) {
		sort.SliceStable(paths, func(i, j int) bool {
			return strings.Count(paths[i], string(os.PathSeparator)) < strings.Count(paths[j], string(os.PathSeparator))
		})
	}
	byDepth(gltfs)
	byDepth(glbs)
	for _, p := range gltfs {
		if strings.EqualFold(filepath.Base(p), "scene.gltf") {
			return p, nil
		}
	}
	if len(gltfs) > 0 {
		return gltfs[0], nil
	}
	if len(glbs) > 0 {
		return glbs[0], nil
	}
	return "", ErrNoScene
}
