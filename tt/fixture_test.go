package tt

import (
	"encoding/binary"
	"math/bits"
)

// --- Synthetic fonts -------------------------------------------------------

type tableSpec struct {
	tag  string
	data []byte
}

// buildFont assembles a font file from tables, in the given order. Table data
// is placed after the directory, 4-byte aligned.
func buildFont(tables ...tableSpec) []byte {
	n := len(tables)
	font := offsetHeaderBytes(0x00010000, uint16(n))
	offset := OffsetHeaderSize + n*TableRecordSize
	var data []byte
	for _, t := range tables {
		font = append(font, tableRecord(t.tag, 0, uint32(offset+len(data)), uint32(len(t.data)))...)
		data = append(data, t.data...)
		for len(data)%4 != 0 {
			data = append(data, 0)
		}
	}
	return append(font, data...)
}

func offsetHeaderBytes(scalar uint32, count uint16) []byte {
	var searchRange, entrySelector uint16
	if count > 0 {
		entrySelector = uint16(bits.Len16(count) - 1)
		searchRange = (1 << entrySelector) * 16
	}
	b := binary.BigEndian.AppendUint32(nil, scalar)
	b = binary.BigEndian.AppendUint16(b, count)
	b = binary.BigEndian.AppendUint16(b, searchRange)
	b = binary.BigEndian.AppendUint16(b, entrySelector)
	b = binary.BigEndian.AppendUint16(b, count*16-searchRange)
	return b
}

func tableRecord(tag string, checksum, offset, length uint32) []byte {
	b := []byte(tag)
	b = binary.BigEndian.AppendUint32(b, checksum)
	b = binary.BigEndian.AppendUint32(b, offset)
	b = binary.BigEndian.AppendUint32(b, length)
	return b
}

// headBytes is a 'head' table, modelled after the sample of the TrueType
// reference manual.
func headBytes(flags uint16, indexToLoc, glyphDataFormat int16) []byte {
	b := make([]byte, HeadTableSize)
	putAt16(b, 0, 0x0001) // version 1.0
	putAt16(b, 2, 0x0000)
	putAt32(b, 4, 0x00010000)  // font revision
	putAt32(b, 8, 0x12345678)  // checksum adjustment
	putAt32(b, 12, 0x5F0F3CF5) // magic
	putAt16(b, 16, flags)
	putAt16(b, 18, 2048) // units per em
	binary.BigEndian.PutUint64(b[20:], 3406620153)
	binary.BigEndian.PutUint64(b[28:], 3647951938)
	putAt16(b, 36, uint16(0xFFFF&-1000)) // xMin = -1000
	putAt16(b, 38, uint16(0xFFFF&-500))  // yMin = -500
	putAt16(b, 40, 2000)                 // xMax
	putAt16(b, 42, 1800)                 // yMax
	putAt16(b, 44, 0x0001)               // bold
	putAt16(b, 46, 9)                    // lowest rec. PPEM
	putAt16(b, 48, 2)                    // font direction hint
	putAt16(b, 50, uint16(indexToLoc))
	putAt16(b, 52, uint16(glyphDataFormat))
	return b
}

type nameRec struct {
	platform, encoding, language, nameID, length, offset uint16
}

// nameBytes builds a format 0 'name' table with string storage directly
// following the records.
func nameBytes(pool []byte, recs ...nameRec) []byte {
	storage := uint16(nameHeaderSize + len(recs)*nameRecordSize)
	b := binary.BigEndian.AppendUint16(nil, 0)
	b = binary.BigEndian.AppendUint16(b, uint16(len(recs)))
	b = binary.BigEndian.AppendUint16(b, storage)
	for _, r := range recs {
		for _, v := range []uint16{r.platform, r.encoding, r.language, r.nameID, r.length, r.offset} {
			b = binary.BigEndian.AppendUint16(b, v)
		}
	}
	return append(b, pool...)
}

func putAt16(b []byte, at int, v uint16) {
	binary.BigEndian.PutUint16(b[at:], v)
}

func putAt32(b []byte, at int, v uint32) {
	binary.BigEndian.PutUint32(b[at:], v)
}

// --- Spying on a reader ----------------------------------------------------

type readOp struct {
	seek int64 // -1 for reads
	n    int
}

// spyReader records seeks and exact reads.
type spyReader struct {
	*Reader
	ops []readOp
}

func newSpyReader(b []byte) *spyReader {
	return &spyReader{Reader: NewBytesReader(b)}
}

func (s *spyReader) SeekAbsolute(pos int64) error {
	s.ops = append(s.ops, readOp{seek: pos})
	return s.Reader.SeekAbsolute(pos)
}

func (s *spyReader) ReadExact(n int) ([]byte, error) {
	s.ops = append(s.ops, readOp{seek: -1, n: n})
	return s.Reader.ReadExact(n)
}

// failingReader fails every seek.
type failingReader struct {
	*Reader
	err error
}

func (f failingReader) SeekAbsolute(pos int64) error {
	return f.err
}
