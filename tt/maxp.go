package tt

const (
	maxpMinSize = 6
	maxpV10Size = 32
)

// MaxPTable establishes the memory requirements for this font.
// The 'maxp' table contains a count for the number of glyphs in the font.
//
// Version 0.5 tables (CFF outlines) contain only the glyph count; version 1.0
// tables carry the TrueType profile fields as well.
type MaxPTable struct {
	loc       TableLocation
	version   uint32
	numGlyphs uint16
	profile   *MaxPProfile
}

// MaxPProfile holds the fields of a version 1.0 'maxp' table.
type MaxPProfile struct {
	MaxPoints             uint16
	MaxContours           uint16
	MaxCompositePoints    uint16
	MaxCompositeContours  uint16
	MaxZones              uint16
	MaxTwilightPoints     uint16
	MaxStorage            uint16
	MaxFunctionDefs       uint16
	MaxInstructionDefs    uint16
	MaxStackElements      uint16
	MaxSizeOfInstructions uint16
	MaxComponentElements  uint16
	MaxComponentDepth     uint16
}

// DecodeMaxP seeks to the table's location and decodes table 'maxp'.
func DecodeMaxP(r ByteReader, loc TableLocation) (*MaxPTable, error) {
	if loc.Length < maxpMinSize {
		return nil, errMalformedLength("maxp", "", maxpMinSize, int(loc.Length), int64(loc.Offset))
	}
	b, err := readTable(r, "maxp", loc)
	if err != nil {
		return nil, err
	}
	t, err := ParseMaxP(b)
	if err != nil {
		return nil, withTable(err, "maxp", int64(loc.Offset))
	}
	t.loc = loc
	return t, nil
}

// ParseMaxP decodes table 'maxp' from the table's bytes. A version 1.0 table
// shorter than 32 bytes is reported as ErrMalformedLength.
func ParseMaxP(b []byte) (*MaxPTable, error) {
	if len(b) < maxpMinSize {
		return nil, errMalformedLength("maxp", "", maxpMinSize, len(b), 0)
	}
	t := &MaxPTable{
		version:   u32(b[0:4]),
		numGlyphs: u16(b[4:6]),
	}
	if t.version != 0x00010000 {
		return t, nil
	}
	if len(b) < maxpV10Size {
		return nil, errMalformedLength("maxp", "Profile", maxpV10Size, len(b), 0)
	}
	t.profile = &MaxPProfile{
		MaxPoints:             u16(b[6:8]),
		MaxContours:           u16(b[8:10]),
		MaxCompositePoints:    u16(b[10:12]),
		MaxCompositeContours:  u16(b[12:14]),
		MaxZones:              u16(b[14:16]),
		MaxTwilightPoints:     u16(b[16:18]),
		MaxStorage:            u16(b[18:20]),
		MaxFunctionDefs:       u16(b[20:22]),
		MaxInstructionDefs:    u16(b[22:24]),
		MaxStackElements:      u16(b[24:26]),
		MaxSizeOfInstructions: u16(b[26:28]),
		MaxComponentElements:  u16(b[28:30]),
		MaxComponentDepth:     u16(b[30:32]),
	}
	return t, nil
}

// Tag returns Maxp.
func (t *MaxPTable) Tag() TableTag { return Maxp }

// Location returns the location the table has been decoded from.
func (t *MaxPTable) Location() TableLocation { return t.loc }

// Version is 0x00005000 or 0x00010000.
func (t *MaxPTable) Version() uint32 { return t.version }

// NumGlyphs is the number of glyphs in the font.
func (t *MaxPTable) NumGlyphs() uint16 { return t.numGlyphs }

// Profile returns the TrueType profile of a version 1.0 table.
func (t *MaxPTable) Profile() (MaxPProfile, bool) {
	if t.profile == nil {
		return MaxPProfile{}, false
	}
	return *t.profile, true
}
