package tt

import (
	"errors"
	"io"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeadFields(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "truetype.tt")
	defer teardown()
	//
	head, err := ParseHead(headBytes(0x0003, 1, 0))
	require.NoError(t, err)
	assert.Equal(t, uint32(0x00010000), head.Version())
	assert.Equal(t, uint32(0x00010000), head.FontRevision())
	assert.Equal(t, uint32(0x12345678), head.ChecksumAdjustment())
	assert.Equal(t, HeadMagicNumber, head.MagicNumber())
	assert.Equal(t, uint16(2048), head.UnitsPerEm())
	assert.Equal(t, int64(3406620153), head.Created())
	assert.Equal(t, int64(3647951938), head.Modified())
	assert.Equal(t, int16(-1000), head.XMin())
	assert.Equal(t, int16(-500), head.YMin())
	assert.Equal(t, int16(2000), head.XMax())
	assert.Equal(t, int16(1800), head.YMax())
	assert.True(t, head.MacStyle().Bold())
	assert.False(t, head.MacStyle().Italic())
	assert.Equal(t, uint16(9), head.LowestRecPPEM())
	assert.Equal(t, int16(2), head.FontDirectionHint())
	assert.Equal(t, LongOffsets, head.IndexToLocFormat())
	assert.Equal(t, int16(0), head.GlyphDataFormat())
}

// indexToLocFormat and glyphDataFormat live in adjacent fields; reading one
// for the other must show.
func TestHeadLocFormatAndGlyphFormatAreDistinct(t *testing.T) {
	head, err := ParseHead(headBytes(0, 0, 7))
	require.NoError(t, err)
	assert.Equal(t, ShortOffsets, head.IndexToLocFormat())
	assert.Equal(t, int16(7), head.GlyphDataFormat())
	head, err = ParseHead(headBytes(0, 1, 0))
	require.NoError(t, err)
	assert.Equal(t, LongOffsets, head.IndexToLocFormat())
	assert.Equal(t, int16(0), head.GlyphDataFormat())
}

func TestHeadFlagPredicates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "truetype.tt")
	defer teardown()
	//
	f := HeadFlags(0x0003)
	assert.True(t, f.YValueZeroIsBaseline())
	assert.True(t, f.XPosLeftmostBlackBitIsLSB())
	others := []bool{
		f.ScaledPointSizeDiffers(), f.UseIntegerScaling(), f.MicrosoftScaler(),
		f.VerticalLayout(), f.MustBeZero(), f.RequiresLinguisticLayout(),
		f.AATDefaultMetamorphosis(), f.StrongRTLGlyphs(), f.IndicRearrangement(),
		f.LosslessFontData(), f.Converted(), f.ClearTypeOptimized(),
		f.GenericSymbolFont(), f.Reserved(),
	}
	for i, p := range others {
		assert.False(t, p, "expected predicate #%d to be false for flags 0x0003", i)
	}
	assert.Equal(t, uint8(0), f.AdobeDefined())
}

func TestHeadFlagBits(t *testing.T) {
	predicates := []func(HeadFlags) bool{
		HeadFlags.YValueZeroIsBaseline,
		HeadFlags.XPosLeftmostBlackBitIsLSB,
		HeadFlags.ScaledPointSizeDiffers,
		HeadFlags.UseIntegerScaling,
		HeadFlags.MicrosoftScaler,
		HeadFlags.VerticalLayout,
		HeadFlags.MustBeZero,
		HeadFlags.RequiresLinguisticLayout,
		HeadFlags.AATDefaultMetamorphosis,
		HeadFlags.StrongRTLGlyphs,
		HeadFlags.IndicRearrangement,
		HeadFlags.LosslessFontData,
		HeadFlags.Converted,
		HeadFlags.ClearTypeOptimized,
		HeadFlags.GenericSymbolFont,
		HeadFlags.Reserved,
	}
	for bit, p := range predicates {
		assert.True(t, p(HeadFlags(1<<bit)), "expected predicate for bit %d to be set", bit)
		assert.False(t, p(HeadFlags(0xffff&^(1<<bit))), "expected predicate for bit %d to be clear", bit)
	}
	assert.Equal(t, uint8(0b101), HeadFlags(0b0010_1000_0000_0000).AdobeDefined())
	assert.Equal(t, uint8(0b111), HeadFlags(0xffff).AdobeDefined())
}

func TestDecodeHeadTruncated(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "truetype.tt")
	defer teardown()
	//
	_, err := DecodeHead(NewBytesReader(make([]byte, 100)), TableLocation{Offset: 0, Length: 40})
	assert.True(t, errors.Is(err, ErrMalformedLength), "expected short head to be malformed, have %v", err)
	//
	_, err = DecodeHead(NewBytesReader(make([]byte, 80)), TableLocation{Offset: 44, Length: 54})
	assert.True(t, errors.Is(err, ErrIO), "expected read failure, have %v", err)
	assert.True(t, errors.Is(err, io.ErrUnexpectedEOF))
	//
	_, err = ParseHead(make([]byte, 53))
	assert.True(t, errors.Is(err, ErrMalformedLength))
}

func TestDecodeTablesHugeLength(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "truetype.tt")
	defer teardown()
	//
	font := make([]byte, 100)
	loc := TableLocation{Offset: 44, Length: 0xFFFFFFF0}
	decoders := map[string]func(ByteReader) error{
		"head": func(r ByteReader) error { _, err := DecodeHead(r, loc); return err },
		"maxp": func(r ByteReader) error { _, err := DecodeMaxP(r, loc); return err },
		"hhea": func(r ByteReader) error { _, err := DecodeHHea(r, loc); return err },
		"cmap": func(r ByteReader) error { _, err := DecodeCMap(r, loc); return err },
	}
	for table, decode := range decoders {
		r := newSpyReader(font)
		err := decode(r)
		var derr *DecodeError
		require.True(t, errors.As(err, &derr), "%s: expected DecodeError, have %v", table, err)
		assert.Equal(t, KindIO, derr.Kind, table)
		assert.True(t, errors.Is(err, io.ErrUnexpectedEOF), table)
		assert.Equal(t, 56, derr.Actual, table)
		assert.Empty(t, r.ops, "%s: table must be rejected before reading", table)
	}
	//
	// end of table overflows 32 bit offsets
	_, err := DecodeHead(NewBytesReader(font), TableLocation{Offset: 0xFFFFFF00, Length: 0x1000})
	assert.True(t, errors.Is(err, ErrIO), "expected short read, have %v", err)
}
