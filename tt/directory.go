package tt

import (
	"fmt"
	"iter"
	"math"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
)

// TableRecordSize is the size of one record of the table directory.
const TableRecordSize = 16

// MaxTableCount bounds the number of table records we are willing to read.
// Real fonts rarely have more than 40 tables.
const MaxTableCount = 1024

// TableLocation locates a table's data within a font file.
// The tag is not part of a location; it is the key of a TableDirectory entry.
type TableLocation struct {
	Checksum uint32 // checksum of the table, not verified by this package
	Offset   uint32 // absolute offset from the beginning of the font file
	Length   uint32 // length of the table in bytes, without padding
}

// End returns the offset of the first byte after the table.
func (loc TableLocation) End() (int64, error) {
	end := int64(loc.Offset) + int64(loc.Length)
	if end > math.MaxUint32 {
		return 0, fmt.Errorf("table end %d overflows 32 bit offset", end)
	}
	return end, nil
}

func (loc TableLocation) String() string {
	return fmt.Sprintf("[%d…%d) chk=%#08x", loc.Offset, int64(loc.Offset)+int64(loc.Length), loc.Checksum)
}

// TableDirectory maps table tags to table locations. It is built once by
// ParseDirectory or ReadDirectory and is read-only thereafter.
// Iteration is ordered by TableTag.
type TableDirectory struct {
	entries *treemap.Map // TableTag (as int) → TableLocation
}

func newTableDirectory() *TableDirectory {
	return &TableDirectory{entries: treemap.NewWith(utils.IntComparator)}
}

// Get returns the location of a table, if the table is present.
func (dir *TableDirectory) Get(tag TableTag) (TableLocation, bool) {
	if dir == nil || dir.entries == nil {
		return TableLocation{}, false
	}
	v, found := dir.entries.Get(int(tag))
	if !found {
		return TableLocation{}, false
	}
	return v.(TableLocation), true
}

// Lookup returns the location of a table. If the table is absent, Lookup
// fails with ErrMissingTable.
func (dir *TableDirectory) Lookup(tag TableTag) (TableLocation, error) {
	loc, ok := dir.Get(tag)
	if !ok {
		return TableLocation{}, errMissingTable(tag)
	}
	return loc, nil
}

// Has is true if the directory contains a location for tag.
func (dir *TableDirectory) Has(tag TableTag) bool {
	_, ok := dir.Get(tag)
	return ok
}

// Len returns the number of entries.
func (dir *TableDirectory) Len() int {
	if dir == nil || dir.entries == nil {
		return 0
	}
	return dir.entries.Size()
}

// Tags returns the tags of all entries, in order.
func (dir *TableDirectory) Tags() []TableTag {
	tags := make([]TableTag, 0, dir.Len())
	for tag := range dir.All() {
		tags = append(tags, tag)
	}
	return tags
}

// All yields the entries of the directory, ordered by tag.
func (dir *TableDirectory) All() iter.Seq2[TableTag, TableLocation] {
	return func(yield func(TableTag, TableLocation) bool) {
		if dir == nil || dir.entries == nil {
			return
		}
		it := dir.entries.Iterator()
		for it.Next() {
			if !yield(TableTag(it.Key().(int)), it.Value().(TableLocation)) {
				return
			}
		}
	}
}

// ParseDirectory decodes count table records from block, which must be exactly
// count*16 bytes long.
//
// Records are decoded in file order. Records with a tag outside of TableTag are
// dropped. If a tag occurs more than once, the last record wins.
func ParseDirectory(block []byte, count uint16) (*TableDirectory, error) {
	expected := int(count) * TableRecordSize
	if len(block) != expected {
		return nil, errMalformedLength("directory", "", expected, len(block), OffsetHeaderSize)
	}
	dir := newTableDirectory()
	recs, _ := binarySegm(block).records(0, int(count), TableRecordSize)
	for i, rec := range recs {
		tag, ok, err := LookupTag(rec[0:4])
		if err != nil {
			return nil, err
		}
		if !ok {
			tracer().Debugf("table record %d: table (%s) is not a required table, dropped",
				i, MakeTag(rec[0:4]))
			continue
		}
		loc := TableLocation{
			Checksum: u32(rec[4:8]),
			Offset:   u32(rec[8:12]),
			Length:   u32(rec[12:16]),
		}
		if prev, dup := dir.Get(tag); dup {
			tracer().Infof("table (%s) occurs more than once in directory, %v replaces %v",
				tag, loc, prev)
		}
		dir.entries.Put(int(tag), loc)
	}
	return dir, nil
}

// ReadDirectory reads the table directory for count table records. r must be
// positioned immediately after the offset header.
//
// count is bounded by MaxTableCount and, if r is able to tell its size, by the
// size of the font data.
func ReadDirectory(r ByteReader, count uint16) (*TableDirectory, error) {
	expected := int(count) * TableRecordSize
	if count > MaxTableCount {
		return nil, errMalformedLength("directory", "TableCount", MaxTableCount*TableRecordSize,
			expected, OffsetHeaderSize)
	}
	if sz, ok := r.(sizer); ok {
		if size, err := sz.Size(); err == nil {
			if avail := size - OffsetHeaderSize; int64(expected) > avail {
				return nil, errMalformedLength("directory", "", expected, int(max(avail, 0)),
					OffsetHeaderSize)
			}
		}
	}
	block, err := r.ReadExact(expected)
	if err != nil && !isShortRead(err) {
		return nil, errIO("directory", "Read", OffsetHeaderSize, err)
	}
	return ParseDirectory(block, count)
}
