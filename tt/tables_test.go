package tt

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaxP(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "truetype.tt")
	defer teardown()
	//
	b := make([]byte, 32)
	binary.BigEndian.PutUint32(b[0:], 0x00010000)
	binary.BigEndian.PutUint16(b[4:], 1234)
	binary.BigEndian.PutUint16(b[6:], 300) // max points
	binary.BigEndian.PutUint16(b[30:], 3)  // max component depth
	maxp, err := ParseMaxP(b)
	require.NoError(t, err)
	assert.Equal(t, uint16(1234), maxp.NumGlyphs())
	p, ok := maxp.Profile()
	require.True(t, ok)
	assert.Equal(t, uint16(300), p.MaxPoints)
	assert.Equal(t, uint16(3), p.MaxComponentDepth)
	//
	_, err = ParseMaxP(b[:20])
	assert.True(t, errors.Is(err, ErrMalformedLength), "expected truncated v1.0 profile to fail")
	binary.BigEndian.PutUint32(b[0:], 0x00005000)
	maxp, err = ParseMaxP(b[:6])
	require.NoError(t, err)
	_, ok = maxp.Profile()
	assert.False(t, ok, "expected version 0.5 table to have no profile")
}

func TestHHea(t *testing.T) {
	b := make([]byte, 36)
	binary.BigEndian.PutUint32(b[0:], 0x00010000)
	binary.BigEndian.PutUint16(b[4:], 1900)
	binary.BigEndian.PutUint16(b[6:], uint16(0xffff&-500))
	binary.BigEndian.PutUint16(b[10:], 2400)
	binary.BigEndian.PutUint16(b[34:], 600)
	hhea, err := ParseHHea(b)
	require.NoError(t, err)
	assert.Equal(t, int16(1900), hhea.Ascender)
	assert.Equal(t, int16(-500), hhea.Descender)
	assert.Equal(t, uint16(2400), hhea.AdvanceWidthMax)
	assert.Equal(t, uint16(600), hhea.NumberOfHMetrics)
	_, err = ParseHHea(b[:35])
	assert.True(t, errors.Is(err, ErrMalformedLength))
}

func TestCMapHeader(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "truetype.tt")
	defer teardown()
	//
	var b []byte
	b = binary.BigEndian.AppendUint16(b, 0) // version
	b = binary.BigEndian.AppendUint16(b, 2) // 2 encoding records
	b = binary.BigEndian.AppendUint16(b, 3)
	b = binary.BigEndian.AppendUint16(b, 1)
	b = binary.BigEndian.AppendUint32(b, 20)
	b = binary.BigEndian.AppendUint16(b, 0)
	b = binary.BigEndian.AppendUint16(b, 4)
	b = binary.BigEndian.AppendUint32(b, 9999) // outside of table
	b = binary.BigEndian.AppendUint16(b, 4)    // format 4 sub-table at 20
	cmap, err := ParseCMap(b)
	require.NoError(t, err)
	recs := cmap.EncodingRecords()
	require.Len(t, recs, 2)
	assert.Equal(t, CMapEncodingRecord{PlatformID: 3, PlatformSpecificID: 1, Offset: 20, Format: 4}, recs[0])
	assert.Equal(t, uint16(0), recs[1].Format)
	//
	binary.BigEndian.PutUint16(b[2:], 3)
	_, err = ParseCMap(b)
	assert.True(t, errors.Is(err, ErrMalformedLength))
}

func TestDecodeTableWithoutDecoder(t *testing.T) {
	_, err := DecodeTable(NewBytesReader(nil), Glyf, TableLocation{})
	assert.True(t, errors.Is(err, ErrNoDecoder))
	assert.False(t, HasDecoder(Loca))
	assert.True(t, HasDecoder(Head))
}
