package tt

// HeadTableSize is the size of the fixed layout of table 'head'.
const HeadTableSize = 54

// HeadTable gives global information about the font.
// See https://developer.apple.com/fonts/TrueType-Reference-Manual/RM06/Chap6head.html
//
// HeadTable is an immutable value; all fields are accessible through methods.
// No semantic validation of the magic number or the checksum adjustment is
// performed.
type HeadTable struct {
	loc                TableLocation
	version            uint32
	fontRevision       uint32
	checksumAdjustment uint32
	magicNumber        uint32
	flags              HeadFlags
	unitsPerEm         uint16
	created            int64
	modified           int64
	xMin, yMin         int16
	xMax, yMax         int16
	macStyle           MacStyle
	lowestRecPPEM      uint16
	fontDirectionHint  int16
	indexToLocFormat   int16
	glyphDataFormat    int16
}

// HeadMagicNumber is the value of field magicNumber in well-formed fonts.
const HeadMagicNumber uint32 = 0x5F0F3CF5

// Values of field indexToLocFormat.
const (
	ShortOffsets int16 = 0 // loca holds offset/2 as uint16
	LongOffsets  int16 = 1 // loca holds offsets as uint32
)

// DecodeHead seeks to the table's location and decodes table 'head'.
// A location declaring less than 54 bytes is reported as ErrMalformedLength
// without reading. A table extending past the end of the data is reported
// as ErrIO wrapping io.ErrUnexpectedEOF.
func DecodeHead(r ByteReader, loc TableLocation) (*HeadTable, error) {
	if loc.Length < HeadTableSize {
		return nil, errMalformedLength("head", "", HeadTableSize, int(loc.Length), int64(loc.Offset))
	}
	b, err := readTable(r, "head", loc)
	if err != nil {
		return nil, err
	}
	t, err := ParseHead(b)
	if err != nil {
		return nil, withTable(err, "head", int64(loc.Offset))
	}
	t.loc = loc
	return t, nil
}

// ParseHead decodes table 'head' from the table's bytes.
func ParseHead(b []byte) (*HeadTable, error) {
	if len(b) < HeadTableSize {
		return nil, errMalformedLength("head", "", HeadTableSize, len(b), 0)
	}
	t := &HeadTable{
		version:            u32(b[0:4]),
		fontRevision:       u32(b[4:8]),
		checksumAdjustment: u32(b[8:12]),
		magicNumber:        u32(b[12:16]),
		flags:              HeadFlags(u16(b[16:18])),
		unitsPerEm:         u16(b[18:20]),
		created:            i64(b[20:28]),
		modified:           i64(b[28:36]),
		xMin:               i16(b[36:38]),
		yMin:               i16(b[38:40]),
		xMax:               i16(b[40:42]),
		yMax:               i16(b[42:44]),
		macStyle:           MacStyle(u16(b[44:46])),
		lowestRecPPEM:      u16(b[46:48]),
		fontDirectionHint:  i16(b[48:50]),
		indexToLocFormat:   i16(b[50:52]),
		glyphDataFormat:    i16(b[52:54]),
	}
	return t, nil
}

// Tag returns Head.
func (t *HeadTable) Tag() TableTag { return Head }

// Location returns the location the table has been decoded from.
func (t *HeadTable) Location() TableLocation { return t.loc }

// Version is a 16.16 fixed number, usually 0x00010000.
func (t *HeadTable) Version() uint32 { return t.version }

// FontRevision is a 16.16 fixed number set by the font manufacturer.
func (t *HeadTable) FontRevision() uint32 { return t.fontRevision }

// ChecksumAdjustment is 0xB1B0AFBA minus the checksum of the whole font.
func (t *HeadTable) ChecksumAdjustment() uint32 { return t.checksumAdjustment }

// MagicNumber should be 0x5F0F3CF5.
func (t *HeadTable) MagicNumber() uint32 { return t.magicNumber }

// Flags returns the raw flags, with predicates for the individual bits.
func (t *HeadTable) Flags() HeadFlags { return t.flags }

// UnitsPerEm is in range 64 to 16384 for well-formed fonts.
func (t *HeadTable) UnitsPerEm() uint16 { return t.unitsPerEm }

// Created is the creation date, in seconds since 1904-01-01 00:00 UTC.
func (t *HeadTable) Created() int64 { return t.created }

// Modified is the modification date, in seconds since 1904-01-01 00:00 UTC.
func (t *HeadTable) Modified() int64 { return t.modified }

// XMin is the minimum x for all glyph bounding boxes.
func (t *HeadTable) XMin() int16 { return t.xMin }

// YMin is the minimum y for all glyph bounding boxes.
func (t *HeadTable) YMin() int16 { return t.yMin }

// XMax is the maximum x for all glyph bounding boxes.
func (t *HeadTable) XMax() int16 { return t.xMax }

// YMax is the maximum y for all glyph bounding boxes.
func (t *HeadTable) YMax() int16 { return t.yMax }

// MacStyle returns the raw style bits, with predicates.
func (t *HeadTable) MacStyle() MacStyle { return t.macStyle }

// LowestRecPPEM is the smallest readable size in pixels.
func (t *HeadTable) LowestRecPPEM() uint16 { return t.lowestRecPPEM }

// FontDirectionHint is deprecated and should be 2.
func (t *HeadTable) FontDirectionHint() int16 { return t.fontDirectionHint }

// IndexToLocFormat is ShortOffsets or LongOffsets, needed to interpret table 'loca'.
func (t *HeadTable) IndexToLocFormat() int16 { return t.indexToLocFormat }

// GlyphDataFormat is 0 for the current format.
func (t *HeadTable) GlyphDataFormat() int16 { return t.glyphDataFormat }

// --- Flags -----------------------------------------------------------------

// HeadFlags is the 16-bit flags field of table 'head'. The raw bits are the
// single source of truth; predicates are computed from them on demand.
type HeadFlags uint16

func (f HeadFlags) bit(n uint) bool { return f>>n&1 == 1 }

// YValueZeroIsBaseline: bit 0, baseline for font at y=0.
func (f HeadFlags) YValueZeroIsBaseline() bool { return f.bit(0) }

// XPosLeftmostBlackBitIsLSB: bit 1, left sidebearing point at x=0.
func (f HeadFlags) XPosLeftmostBlackBitIsLSB() bool { return f.bit(1) }

// ScaledPointSizeDiffers: bit 2, instructions may depend on point size.
func (f HeadFlags) ScaledPointSizeDiffers() bool { return f.bit(2) }

// UseIntegerScaling: bit 3, force ppem to integer values.
func (f HeadFlags) UseIntegerScaling() bool { return f.bit(3) }

// MicrosoftScaler: bit 4, instructions may alter advance width.
func (f HeadFlags) MicrosoftScaler() bool { return f.bit(4) }

// VerticalLayout: bit 5, x=0 is the vertical baseline.
func (f HeadFlags) VerticalLayout() bool { return f.bit(5) }

// MustBeZero: bit 6, reserved.
func (f HeadFlags) MustBeZero() bool { return f.bit(6) }

// RequiresLinguisticLayout: bit 7, e.g. for Arabic fonts.
func (f HeadFlags) RequiresLinguisticLayout() bool { return f.bit(7) }

// AATDefaultMetamorphosis: bit 8, AAT font with metamorphosis effects on by default.
func (f HeadFlags) AATDefaultMetamorphosis() bool { return f.bit(8) }

// StrongRTLGlyphs: bit 9, font contains strong right-to-left glyphs.
func (f HeadFlags) StrongRTLGlyphs() bool { return f.bit(9) }

// IndicRearrangement: bit 10, font contains Indic-style rearrangement effects.
func (f HeadFlags) IndicRearrangement() bool { return f.bit(10) }

// AdobeDefined returns bits 11–13 as a 3-bit value.
func (f HeadFlags) AdobeDefined() uint8 { return uint8(f >> 11 & 0x7) }

// LosslessFontData: bit 11, as defined by OpenType.
func (f HeadFlags) LosslessFontData() bool { return f.bit(11) }

// Converted: bit 12, font converted to produce compatible metrics.
func (f HeadFlags) Converted() bool { return f.bit(12) }

// ClearTypeOptimized: bit 13, font optimized for ClearType.
func (f HeadFlags) ClearTypeOptimized() bool { return f.bit(13) }

// GenericSymbolFont: bit 14, glyphs are generic symbols for code point ranges,
// as in a last resort font.
func (f HeadFlags) GenericSymbolFont() bool { return f.bit(14) }

// Reserved: bit 15, must be 0.
func (f HeadFlags) Reserved() bool { return f.bit(15) }

// --- Mac style -------------------------------------------------------------

// MacStyle is field macStyle of table 'head'.
type MacStyle uint16

func (s MacStyle) Bold() bool      { return s&0x01 != 0 }
func (s MacStyle) Italic() bool    { return s&0x02 != 0 }
func (s MacStyle) Underline() bool { return s&0x04 != 0 }
func (s MacStyle) Outline() bool   { return s&0x08 != 0 }
func (s MacStyle) Shadow() bool    { return s&0x10 != 0 }
func (s MacStyle) Condensed() bool { return s&0x20 != 0 }
func (s MacStyle) Extended() bool  { return s&0x40 != 0 }
