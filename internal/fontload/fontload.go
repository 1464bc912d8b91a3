// Package fontload locates font files and reads them into memory.
package fontload

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/flopp/go-findfont"
)

// FontBinary is a font file's raw data, together with where it was found.
type FontBinary struct {
	Fontname string // file name without directory
	Filepath string
	Binary   []byte
}

// Locate resolves a font to a file path. If font names an existing file,
// it is used as is. Otherwise font is looked up as a system font, e.g.
// "DejaVuSans.ttf" or "Arial".
func Locate(font string) (string, error) {
	if font == "" {
		return "", errors.New("no font given")
	}
	if fi, err := os.Stat(font); err == nil && !fi.IsDir() {
		return font, nil
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return "", err
	}
	fpath, err := findfont.Find(font) // try to find as system font
	if err != nil {
		return "", fmt.Errorf("font %q is neither a file nor a system font: %w", font, err)
	}
	return fpath, nil
}

// LoadFontFile reads a font file from a path.
func LoadFontFile(fontfile string) (*FontBinary, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, err
	}
	return &FontBinary{
		Fontname: filepath.Base(fontfile),
		Filepath: fontfile,
		Binary:   bytez,
	}, nil
}

// Load locates a font, either by path or as a system font, and reads it.
func Load(font string) (*FontBinary, error) {
	fpath, err := Locate(font)
	if err != nil {
		return nil, err
	}
	return LoadFontFile(fpath)
}
