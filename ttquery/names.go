package ttquery

import (
	"errors"
	"fmt"
	"iter"

	"github.com/npillmayer/truetype/tt"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// ErrUnsupportedEncoding is returned for name records with a platform/encoding
// combination we are not able to convert to UTF-8.
var ErrUnsupportedEncoding = errors.New("unsupported name record encoding")

// Platform-specific encoding and language IDs.
const (
	msEncodingSymbol   = 0
	msEncodingUCS2     = 1
	msEncodingUCS4     = 10
	macEncodingRoman   = 0
	langMacEnglish     = 0
	langWindowsEnUS    = 0x0409
	langWindowsPrimary = 0x03ff // mask for the primary language of a Windows LCID
	langEnglishPrimary = 0x0009
)

// textEncoding selects the encoding of a name record's text.
func textEncoding(rec tt.NameRecord) (encoding.Encoding, bool) {
	switch rec.PlatformID {
	case tt.PlatformUnicode:
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM), true
	case tt.PlatformMicrosoft:
		switch rec.RawEncodingID {
		case msEncodingSymbol, msEncodingUCS2, msEncodingUCS4:
			return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM), true
		}
	case tt.PlatformMacintosh:
		if rec.RawEncodingID == macEncodingRoman {
			return charmap.Macintosh, true
		}
	}
	return nil, false
}

// DecodeString converts the raw bytes of a name record to a Go string.
// Unicode and Microsoft records are UTF-16BE, Macintosh records are decoded
// for the Roman script only.
func DecodeString(rec tt.NameRecord, b []byte) (string, error) {
	enc, ok := textEncoding(rec)
	if !ok {
		return "", fmt.Errorf("%w: platform %d, encoding %d", ErrUnsupportedEncoding,
			rec.RawPlatformID, rec.RawEncodingID)
	}
	s, err := enc.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("decoding %s name string: %w", rec.PlatformID, err)
	}
	return string(s), nil
}

// NameString resolves the text of a record of table 'name'.
func NameString(name *tt.NameTable, rec tt.NameRecord) (string, error) {
	if name == nil {
		return "", errors.New("font has no decoded 'name' table")
	}
	b, err := name.RecordBytes(rec)
	if err != nil {
		return "", err
	}
	return DecodeString(rec, b)
}

// NamesRange yields decoded `(nameID, value)` pairs from a font's table 'name',
// in record order.
//
// Records with unsupported encodings are skipped, as are malformed or
// out-of-bounds records. The same name ID may be yielded more than once, e.g.
// for different platforms or languages.
func NamesRange(f *tt.FontFile) iter.Seq2[sfnt.NameID, string] {
	return func(yield func(sfnt.NameID, string) bool) {
		if f == nil || f.Name() == nil {
			tracer().Debugf("no name table found in font")
			return
		}
		name := f.Name()
		for _, rec := range name.Records() {
			s, err := NameString(name, rec)
			if err != nil {
				tracer().Debugf("skipping %v: %v", rec, err)
				continue
			}
			if s == "" {
				continue
			}
			if !yield(rec.NameID, s) {
				return
			}
		}
	}
}

// rank orders name records by preference: Windows English first (US English
// ahead of other variants), then Unicode, then Macintosh English, then any
// other Windows language.
// Records which cannot be decoded rank 0.
func rank(rec tt.NameRecord) int {
	if _, ok := textEncoding(rec); !ok {
		return 0
	}
	switch rec.PlatformID {
	case tt.PlatformMicrosoft:
		if rec.LanguageID == langWindowsEnUS {
			return 5
		}
		if rec.LanguageID&langWindowsPrimary == langEnglishPrimary {
			return 4
		}
		return 1
	case tt.PlatformUnicode:
		return 3
	case tt.PlatformMacintosh:
		if rec.LanguageID == langMacEnglish {
			return 2
		}
	}
	return 0
}

// Name returns the preferred string for a name ID, if any.
func Name(f *tt.FontFile, id sfnt.NameID) (string, bool) {
	if f == nil || f.Name() == nil {
		return "", false
	}
	name := f.Name()
	best, bestRank := "", 0
	for _, rec := range name.Records() {
		if rec.NameID != id {
			continue
		}
		r := rank(rec)
		if r <= bestRank {
			continue
		}
		s, err := NameString(name, rec)
		if err != nil || s == "" {
			tracer().Debugf("skipping %v: %v", rec, err)
			continue
		}
		best, bestRank = s, r
	}
	return best, bestRank > 0
}

// nameKeys are the keys of NameInfo.
var nameKeys = map[sfnt.NameID]string{
	sfnt.NameIDCopyright:            "copyright",
	sfnt.NameIDFamily:               "family",
	sfnt.NameIDSubfamily:            "subfamily",
	sfnt.NameIDUniqueIdentifier:     "identifier",
	sfnt.NameIDFull:                 "fullname",
	sfnt.NameIDVersion:              "version",
	sfnt.NameIDPostScript:           "postscript",
	sfnt.NameIDTrademark:            "trademark",
	sfnt.NameIDManufacturer:         "manufacturer",
	sfnt.NameIDDesigner:             "designer",
	sfnt.NameIDDescription:          "description",
	sfnt.NameIDVendorURL:            "vendor-url",
	sfnt.NameIDDesignerURL:          "designer-url",
	sfnt.NameIDLicense:              "license",
	sfnt.NameIDLicenseURL:           "license-url",
	sfnt.NameIDTypographicFamily:    "typographic-family",
	sfnt.NameIDTypographicSubfamily: "typographic-subfamily",
}

// NameKey returns the key NameInfo uses for a name ID, or "" if the name ID is
// not part of NameInfo.
func NameKey(id sfnt.NameID) string {
	return nameKeys[id]
}

// NameInfo returns the font's general names, e.g. "family", "subfamily" and
// "version", each in its preferred variant. Names absent from the font are
// absent from the map.
func NameInfo(f *tt.FontFile) map[string]string {
	info := make(map[string]string)
	for id, key := range nameKeys {
		if s, ok := Name(f, id); ok {
			info[key] = s
		}
	}
	return info
}
