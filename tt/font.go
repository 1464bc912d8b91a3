package tt

import (
	"bytes"
	"io"
	"slices"
)

// Table is a decoded font table.
type Table interface {
	Tag() TableTag           // kind of table
	Location() TableLocation // where the table has been decoded from
}

// Decoder decodes one kind of table. A decoder seeks to the table's location,
// reads exactly the table's bytes, and decodes them positionally. It must fail
// explicitly on truncated data and must not depend on any other table.
type Decoder func(r ByteReader, loc TableLocation) (Table, error)

// decoders is the dispatch table for table decoders. Tags without a decoder
// are located by the directory, but cannot be decoded.
var decoders = map[TableTag]Decoder{
	Cmap: func(r ByteReader, loc TableLocation) (Table, error) { return asTable(DecodeCMap(r, loc)) },
	Head: func(r ByteReader, loc TableLocation) (Table, error) { return asTable(DecodeHead(r, loc)) },
	Hhea: func(r ByteReader, loc TableLocation) (Table, error) { return asTable(DecodeHHea(r, loc)) },
	Maxp: func(r ByteReader, loc TableLocation) (Table, error) { return asTable(DecodeMaxP(r, loc)) },
	Name: func(r ByteReader, loc TableLocation) (Table, error) { return asTable(DecodeName(r, loc)) },
}

// asTable keeps a typed nil pointer from ending up in a non-nil Table.
func asTable[T Table](t T, err error) (Table, error) {
	if err != nil {
		return nil, err
	}
	return t, nil
}

// HasDecoder is true if tables of kind tag can be decoded.
func HasDecoder(tag TableTag) bool {
	_, ok := decoders[tag]
	return ok
}

// DecodeTable decodes the table at loc with the decoder registered for tag.
func DecodeTable(r ByteReader, tag TableTag, loc TableLocation) (Table, error) {
	dec, ok := decoders[tag]
	if !ok {
		return nil, errNoDecoder(tag)
	}
	return dec(r, loc)
}

// --- Font file -------------------------------------------------------------

// FontFile is a decoded font file: its offset header, its table directory,
// and the tables which have been decoded. It is immutable and does not
// retain the reader it has been decoded from.
type FontFile struct {
	header    OffsetHeader
	directory *TableDirectory
	tables    map[TableTag]Table
}

// Decode decodes the offset header and the table directory from r, then decodes
// the tables given by tags, in order. If no tags are given, every table in the
// directory which has a decoder is decoded.
//
// Decode fails with ErrMissingTable if a requested table is not contained in the
// font, and with ErrNoDecoder if it cannot be decoded. The first error encountered
// is returned.
func Decode(r ByteReader, tags ...TableTag) (*FontFile, error) {
	h, err := ReadOffsetHeader(r)
	if err != nil {
		return nil, err
	}
	dir, err := ReadDirectory(r, h.TableCount())
	if err != nil {
		return nil, err
	}
	f := &FontFile{header: h, directory: dir, tables: make(map[TableTag]Table)}
	if len(tags) == 0 {
		for tag := range dir.All() {
			if HasDecoder(tag) {
				tags = append(tags, tag)
			}
		}
	}
	for _, tag := range tags {
		if _, done := f.tables[tag]; done {
			continue
		}
		loc, err := dir.Lookup(tag)
		if err != nil {
			return nil, err
		}
		t, err := DecodeTable(r, tag, loc)
		if err != nil {
			return nil, err
		}
		tracer().Infof("decoded table (%s) %v", tag, loc)
		f.tables[tag] = t
	}
	return f, nil
}

// Parse decodes a font from an io.ReadSeeker, e.g. an *os.File.
// See Decode.
func Parse(rs io.ReadSeeker, tags ...TableTag) (*FontFile, error) {
	return Decode(NewReader(rs), tags...)
}

// ParseBytes decodes an in-memory font.
// See Decode.
func ParseBytes(font []byte, tags ...TableTag) (*FontFile, error) {
	return Decode(NewReader(bytes.NewReader(font)), tags...)
}

// Header returns the font's offset header.
func (f *FontFile) Header() OffsetHeader {
	return f.header
}

// Directory returns the font's table directory.
func (f *FontFile) Directory() *TableDirectory {
	return f.directory
}

// Table returns a decoded table, or nil if the table has not been decoded.
func (f *FontFile) Table(tag TableTag) Table {
	if t, ok := f.tables[tag]; ok {
		return t
	}
	return nil
}

// DecodedTags returns the tags of all decoded tables, in directory order.
func (f *FontFile) DecodedTags() []TableTag {
	tags := make([]TableTag, 0, len(f.tables))
	for tag := range f.tables {
		tags = append(tags, tag)
	}
	slices.Sort(tags)
	return tags
}

// Head returns the decoded table 'head', or nil.
func (f *FontFile) Head() *HeadTable {
	t, _ := f.Table(Head).(*HeadTable)
	return t
}

// Name returns the decoded table 'name', or nil.
func (f *FontFile) Name() *NameTable {
	t, _ := f.Table(Name).(*NameTable)
	return t
}

// MaxP returns the decoded table 'maxp', or nil.
func (f *FontFile) MaxP() *MaxPTable {
	t, _ := f.Table(Maxp).(*MaxPTable)
	return t
}

// HHea returns the decoded table 'hhea', or nil.
func (f *FontFile) HHea() *HHeaTable {
	t, _ := f.Table(Hhea).(*HHeaTable)
	return t
}

// CMap returns the decoded header of table 'cmap', or nil.
func (f *FontFile) CMap() *CMapTable {
	t, _ := f.Table(Cmap).(*CMapTable)
	return t
}
