/*
Package truetype is for reading TrueType font files.

A TrueType font file is a directory of independent binary tables. Package
truetype is the entry point for clients who simply want to load a font:

	f, err := truetype.LoadFont("/Library/Fonts/Arial.ttf")
	family, subfamily := truetype.FamilyName(f)

Decoding itself is homed in package `tt`, interpretation of decoded tables in
package `ttquery`.

# Status

Does not contain methods for font collections (*.ttc), and does not decode
outlines, metrics tables or character mapping segments.

# Links

TrueType reference manual:
https://developer.apple.com/fonts/TrueType-Reference-Manual/

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package truetype

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/truetype/internal/fontload"
	"github.com/npillmayer/truetype/tt"
	"github.com/npillmayer/truetype/ttquery"
	"golang.org/x/image/font/sfnt"
)

// tracer writes to trace with key 'truetype'
func tracer() tracing.Trace {
	return tracing.Select("truetype")
}

// LoadFont loads a font from a file and decodes every table for which a
// decoder exists. font is either a file path or the name of a system font.
func LoadFont(font string) (*tt.FontFile, error) {
	fb, err := fontload.Load(font)
	if err != nil {
		return nil, err
	}
	f, err := ParseFont(fb.Binary)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("loaded and decoded font file %s", fb.Filepath)
	return f, nil
}

// ParseFont decodes an in-memory font file. If tags are given, only these
// tables are decoded; otherwise every table for which a decoder exists.
func ParseFont(data []byte, tags ...tt.TableTag) (*tt.FontFile, error) {
	return tt.ParseBytes(data, tags...)
}

// FamilyName extracts family and subfamily names from a font's `name` table.
//
// Returned values are empty if no matching records exist or if records cannot be
// decoded.
func FamilyName(f *tt.FontFile) (family, subfamily string) {
	family, _ = ttquery.Name(f, sfnt.NameIDFamily)
	subfamily, _ = ttquery.Name(f, sfnt.NameIDSubfamily)
	return
}
