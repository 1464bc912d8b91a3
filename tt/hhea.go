package tt

const hheaTableSize = 36

// HHeaTable contains information for horizontal layout.
type HHeaTable struct {
	loc                 TableLocation
	Version             uint32
	Ascender            int16
	Descender           int16
	LineGap             int16
	AdvanceWidthMax     uint16
	MinLeftSideBearing  int16
	MinRightSideBearing int16
	XMaxExtent          int16
	CaretSlopeRise      int16
	CaretSlopeRun       int16
	CaretOffset         int16
	MetricDataFormat    int16
	NumberOfHMetrics    uint16
}

// DecodeHHea seeks to the table's location and decodes table 'hhea'.
func DecodeHHea(r ByteReader, loc TableLocation) (*HHeaTable, error) {
	if loc.Length < hheaTableSize {
		return nil, errMalformedLength("hhea", "", hheaTableSize, int(loc.Length), int64(loc.Offset))
	}
	b, err := readTable(r, "hhea", loc)
	if err != nil {
		return nil, err
	}
	t, err := ParseHHea(b)
	if err != nil {
		return nil, withTable(err, "hhea", int64(loc.Offset))
	}
	t.loc = loc
	return t, nil
}

// ParseHHea decodes table 'hhea' from the table's bytes.
// Bytes 24–32 are reserved and skipped.
func ParseHHea(b []byte) (*HHeaTable, error) {
	if len(b) < hheaTableSize {
		return nil, errMalformedLength("hhea", "", hheaTableSize, len(b), 0)
	}
	return &HHeaTable{
		Version:             u32(b[0:4]),
		Ascender:            i16(b[4:6]),
		Descender:           i16(b[6:8]),
		LineGap:             i16(b[8:10]),
		AdvanceWidthMax:     u16(b[10:12]),
		MinLeftSideBearing:  i16(b[12:14]),
		MinRightSideBearing: i16(b[14:16]),
		XMaxExtent:          i16(b[16:18]),
		CaretSlopeRise:      i16(b[18:20]),
		CaretSlopeRun:       i16(b[20:22]),
		CaretOffset:         i16(b[22:24]),
		MetricDataFormat:    i16(b[32:34]),
		NumberOfHMetrics:    u16(b[34:36]),
	}, nil
}

// Tag returns Hhea.
func (t *HHeaTable) Tag() TableTag { return Hhea }

// Location returns the location the table has been decoded from.
func (t *HHeaTable) Location() TableLocation { return t.loc }
