package caption

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

func fontDirs() []string {
	dirs := []string{
		"/usr/share/fonts",
		"/usr/local/share/fonts",
	}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".fonts"), filepath.Join(home, ".local/share/fonts"))
	}
	return dirs
}

// LoadFace looks the named family up in the usual font directories and
// falls back to the embedded Go Regular when nothing matches, so a bare
// system still renders captions.
func LoadFace(name string, size float64) (font.Face, error) {
	if data := findFontFile(name); data != nil {
		if face, err := newFace(data, size); err == nil {
			return face, nil
		}
	}
	return newFace(goregular.TTF, size)
}

func newFace(data []byte, size float64) (font.Face, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// findFontFile returns the first readable .ttf or .otf whose file name
// contains the family name (spaces and dashes ignored, case folded).
func findFontFile(name string) []byte {
	want := strings.ToLower(strings.ReplaceAll(name, " ", ""))
	if want == "" {
		return nil
	}
	for _, dir := range fontDirs() {
		var found []byte
		_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return nil
			}
			switch strings.ToLower(filepath.Ext(path)) {
			case ".ttf", ".otf":
			default:
				return nil
			}
			base := strings.ToLower(strings.ReplaceAll(filepath.Base(path), "-", ""))
			if !strings.Contains(base, want) {
				return nil
			}
			if data, err := os.ReadFile(path); err == nil {
				found = data
				return fs.SkipAll
			}
			return nil
		})
		if found != nil {
			return found
		}
	}
	return nil
}
