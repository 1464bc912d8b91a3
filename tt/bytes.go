package tt

import (
	"encoding/binary"
)

// Reading scalars from a font's binary representation.
// Callers are responsible for checking bounds before calling these.

func u16(b []byte) uint16 {
	_ = b[1] // Bounds check hint to compiler
	return uint16(b[0])<<8 | uint16(b[1])<<0
}

func u32(b []byte) uint32 {
	_ = b[3] // Bounds check hint to compiler
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])<<0
}

func i16(b []byte) int16 {
	return int16(u16(b))
}

func i64(b []byte) int64 {
	return int64(binary.BigEndian.Uint64(b))
}

// binarySegm is a segment of a table's byte data with bounds-checked access.
type binarySegm []byte

// view returns n bytes at the given offset.
// The byte segment returned is a sub-slice of b.
func (b binarySegm) view(offset, n int) (binarySegm, bool) {
	if offset < 0 || n < 0 || offset+n > len(b) {
		return nil, false
	}
	return b[offset : offset+n], true
}

// records splits the region [offset, offset+count*size) into count records.
func (b binarySegm) records(offset, count, size int) ([]binarySegm, bool) {
	region, ok := b.view(offset, count*size)
	if !ok {
		return nil, false
	}
	recs := make([]binarySegm, count)
	for i := range recs {
		recs[i] = region[i*size : (i+1)*size]
	}
	return recs, true
}

func putU16(b []byte, v uint16) []byte {
	return binary.BigEndian.AppendUint16(b, v)
}

func putU32(b []byte, v uint32) []byte {
	return binary.BigEndian.AppendUint32(b, v)
}
