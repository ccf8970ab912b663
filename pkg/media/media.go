// Package media handles image file I/O around the pipeline: decoding
// inputs (local files or URLs) and writing outputs atomically.
package media

import (
	"image"
	"image/draw"
	_ "image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/lexero/logospin/pkg/logger"
)

// IsURL reports whether the input should be fetched over HTTP.
func IsURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// Load decodes the image at path into an RGBA buffer. URLs are fetched
// into the system temp directory first.
func Load(path string, log *logger.Logger) (*image.RGBA, error) {
	if IsURL(path) {
		local, err := Fetch(path, os.TempDir(), log)
		if err != nil {
			return nil, err
		}
		path = local
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}
	return ToRGBA(img), nil
}

// ToRGBA normalizes any decoded image into an RGBA buffer anchored at
// the origin. Already-conforming images are returned as-is.
func ToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Bounds().Min == (image.Point{}) {
		return rgba
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

// SavePNG writes a still image, atomically.
func SavePNG(path string, img image.Image) error {
	return WriteAtomic(path, func(w io.Writer) error { return png.Encode(w, img) })
}

// WriteAtomic streams into a temp file next to path and renames it over
// path only when everything succeeded, so a failed run never leaves a
// truncated output behind.
func WriteAtomic(path string, write func(io.Writer) error) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}

	var result *multierror.Error
	result = multierror.Append(result, write(tmp))
	result = multierror.Append(result, tmp.Close())
	if err := result.ErrorOrNil(); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	return nil
}

// WriteAtomicFile is WriteAtomic for writers that insist on a file
// path instead of an io.Writer. The callback writes to a temp path
// next to path, which is renamed over path on success.
func WriteAtomicFile(path string, write func(tmpPath string) error) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	name := tmp.Name()
	if err := tmp.Close(); err != nil {
		_ = os.Remove(name)
		return err
	}
	if err := write(name); err != nil {
		_ = os.Remove(name)
		return err
	}
	if err := os.Rename(name, path); err != nil {
		_ = os.Remove(name)
		return err
	}
	return nil
}
