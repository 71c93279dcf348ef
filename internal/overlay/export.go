package overlay

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
)

// Export writes img to path as WebP or PNG, chosen by the file extension.
func Export(img image.Image, path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".webp" && ext != ".png" {
		return fmt.Errorf("overlay: unsupported export format %q", ext)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("overlay: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("overlay: %w", err)
	}
	defer f.Close()

	if ext == ".webp" {
		if err := nativewebp.Encode(f, img, nil); err != nil {
			return fmt.Errorf("overlay: webp encode: %w", err)
		}
		return nil
	}
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("overlay: png encode: %w", err)
	}
	return nil
}
