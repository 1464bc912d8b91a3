package tt

import "fmt"

// OffsetHeaderSize is the size of the offset header at the start of a font file.
const OffsetHeaderSize = 12

// Well-known values of the scalar type.
const (
	ScalarTypeTrueType uint32 = 0x00010000
	ScalarTypeTrue     uint32 = 0x74727565 // 'true', used by Apple
	ScalarTypeOpenType uint32 = 0x4f54544f // 'OTTO', CFF outlines
	ScalarTypeTyp1     uint32 = 0x74797031 // 'typ1', old-style PostScript
)

// OffsetHeader is the fixed prologue of a font file. It tells the number of
// tables in the font and carries parameters for a binary search over the
// table directory.
//
// OffsetHeader is always read from offset 0 of a font file. The scalar type is
// not range-checked.
type OffsetHeader struct {
	scalarType    uint32
	tableCount    uint16
	searchRange   uint16
	entrySelector uint16
	rangeShift    uint16
}

// ScalarType tells the kind of outlines in a font.
func (h OffsetHeader) ScalarType() uint32 { return h.scalarType }

// TableCount is the number of table records in the table directory.
func (h OffsetHeader) TableCount() uint16 { return h.tableCount }

// SearchRange is (maximum power of 2 <= TableCount) * 16.
func (h OffsetHeader) SearchRange() uint16 { return h.searchRange }

// EntrySelector is log2(maximum power of 2 <= TableCount).
func (h OffsetHeader) EntrySelector() uint16 { return h.entrySelector }

// RangeShift is TableCount * 16 - SearchRange.
func (h OffsetHeader) RangeShift() uint16 { return h.rangeShift }

func (h OffsetHeader) String() string {
	st := RawTag(h.scalarType).String()
	if h.scalarType == ScalarTypeTrueType {
		st = "0x00010000"
	}
	return fmt.Sprintf("OffsetHeader{scalar=%s, tables=%d, search=%d/%d/%d}", st,
		h.tableCount, h.searchRange, h.entrySelector, h.rangeShift)
}

// AppendBinary appends the 12-byte binary encoding of h to b.
func (h OffsetHeader) AppendBinary(b []byte) ([]byte, error) {
	b = putU32(b, h.scalarType)
	b = putU16(b, h.tableCount)
	b = putU16(b, h.searchRange)
	b = putU16(b, h.entrySelector)
	b = putU16(b, h.rangeShift)
	return b, nil
}

// ParseOffsetHeader decodes an offset header from exactly 12 bytes.
func ParseOffsetHeader(b []byte) (OffsetHeader, error) {
	if len(b) != OffsetHeaderSize {
		return OffsetHeader{}, errMalformedLength("header", "", OffsetHeaderSize, len(b), 0)
	}
	return OffsetHeader{
		scalarType:    u32(b[0:4]),
		tableCount:    u16(b[4:6]),
		searchRange:   u16(b[6:8]),
		entrySelector: u16(b[8:10]),
		rangeShift:    u16(b[10:12]),
	}, nil
}

// ReadOffsetHeader seeks r to offset 0 and decodes the offset header. If fewer than
// 12 bytes are available, ReadOffsetHeader fails with ErrMalformedLength.
func ReadOffsetHeader(r ByteReader) (OffsetHeader, error) {
	b, err := readRegion(r, "header", 0, OffsetHeaderSize)
	if err != nil {
		if isShortRead(err) {
			return OffsetHeader{}, errMalformedLength("header", "", OffsetHeaderSize, len(b), 0)
		}
		return OffsetHeader{}, err
	}
	h, err := ParseOffsetHeader(b)
	if err != nil {
		return OffsetHeader{}, err
	}
	tracer().Debugf("header = %v", h)
	return h, nil
}
