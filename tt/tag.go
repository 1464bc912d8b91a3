package tt

import (
	"unicode/utf8"
)

// --- Raw tags --------------------------------------------------------------

// RawTag is a 4-byte table identifier as it occurs in the font's binary data,
// interpreted as a big-endian uint32.
type RawTag uint32

// MakeTag creates a RawTag from 4 bytes.
// If b is shorter or longer, it will be silently extended or cut as appropriate.
//
//	MakeTag([]byte("cmap"))
func MakeTag(b []byte) RawTag {
	if b == nil {
		b = []byte{0, 0, 0, 0}
	} else if len(b) > 4 {
		b = b[:4]
	} else if len(b) < 4 {
		b = append([]byte{0, 0, 0, 0}[:4-len(b)], b...)
	}
	return RawTag(u32(b))
}

// T returns a RawTag from a (4-letter) string.
// If t is shorter or longer, it will be silently extended or cut as appropriate.
func T(t string) RawTag {
	t = (t + "    ")[:4]
	return RawTag(u32([]byte(t)))
}

func (t RawTag) String() string {
	return string(t.Bytes())
}

// Bytes returns the tag as 4 bytes.
func (t RawTag) Bytes() []byte {
	return []byte{
		byte(t >> 24 & 0xff),
		byte(t >> 16 & 0xff),
		byte(t >> 8 & 0xff),
		byte(t & 0xff),
	}
}

// --- Table tags ------------------------------------------------------------

// TableTag is the closed set of table kinds this package recognizes: the tables
// every TrueType font must include in its table directory.
// See https://developer.apple.com/fonts/TrueType-Reference-Manual/RM06/Chap6.html,
// table 2.
//
// The order of the constants is the iteration order of a TableDirectory.
type TableTag int

const (
	Cmap TableTag = iota // character to glyph mapping
	Glyf                 // glyph data
	Head                 // font header
	Hhea                 // horizontal header
	Hmtx                 // horizontal metrics
	Loca                 // index to location
	Maxp                 // maximum profile
	Name                 // naming
	Post                 // PostScript
	tableTagCount
)

var tableTagNames = [tableTagCount]string{
	"cmap", "glyf", "head", "hhea", "hmtx", "loca", "maxp", "name", "post",
}

// AllTableTags returns every TableTag, in directory order.
func AllTableTags() []TableTag {
	tags := make([]TableTag, tableTagCount)
	for i := range tags {
		tags[i] = TableTag(i)
	}
	return tags
}

func (t TableTag) String() string {
	if !t.isValid() {
		return "????"
	}
	return tableTagNames[t]
}

// Raw returns the 4-byte tag for t.
func (t TableTag) Raw() RawTag {
	return T(t.String())
}

func (t TableTag) isValid() bool {
	return t >= 0 && t < tableTagCount
}

// LookupTag maps the 4 tag bytes of a table record to a TableTag.
//
// If the bytes are not valid UTF-8, LookupTag fails with ErrInvalidTag. A
// well-formed tag which does not name a required table is not an error: LookupTag
// will return false, and the table is out of scope for this package.
func LookupTag(b []byte) (TableTag, bool, error) {
	if len(b) != 4 || !utf8.Valid(b) {
		return 0, false, errInvalidTag(b)
	}
	switch string(b) {
	case "cmap":
		return Cmap, true, nil
	case "glyf":
		return Glyf, true, nil
	case "head":
		return Head, true, nil
	case "hhea":
		return Hhea, true, nil
	case "hmtx":
		return Hmtx, true, nil
	case "loca":
		return Loca, true, nil
	case "maxp":
		return Maxp, true, nil
	case "name":
		return Name, true, nil
	case "post":
		return Post, true, nil
	}
	return 0, false, nil
}

// ParseTableTag is LookupTag for a tag given as a string, e.g. from a command line.
func ParseTableTag(s string) (TableTag, bool) {
	if len(s) != 4 {
		return 0, false
	}
	tag, ok, err := LookupTag([]byte(s))
	if err != nil {
		return 0, false
	}
	return tag, ok
}
