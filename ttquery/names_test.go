package ttquery

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/truetype/tt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/text/encoding/unicode"
)

type nameRec struct {
	platform, encoding, language, nameID uint16
	text                                 []byte
}

// fontWithNames builds a font file with a single table 'name'.
func fontWithNames(t *testing.T, recs ...nameRec) *tt.FontFile {
	var pool []byte
	var name []byte
	name = binary.BigEndian.AppendUint16(name, 0)
	name = binary.BigEndian.AppendUint16(name, uint16(len(recs)))
	name = binary.BigEndian.AppendUint16(name, uint16(6+12*len(recs)))
	for _, r := range recs {
		for _, v := range []uint16{r.platform, r.encoding, r.language, r.nameID,
			uint16(len(r.text)), uint16(len(pool))} {
			name = binary.BigEndian.AppendUint16(name, v)
		}
		pool = append(pool, r.text...)
	}
	name = append(name, pool...)
	font := []byte{0, 1, 0, 0, 0, 1, 0, 16, 0, 0, 0, 0}
	font = append(font, 'n', 'a', 'm', 'e')
	font = binary.BigEndian.AppendUint32(font, 0)
	font = binary.BigEndian.AppendUint32(font, 28)
	font = binary.BigEndian.AppendUint32(font, uint32(len(name)))
	font = append(font, name...)
	f, err := tt.ParseBytes(font)
	require.NoError(t, err)
	return f
}

func utf16be(t *testing.T, s string) []byte {
	b, err := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewEncoder().Bytes([]byte(s))
	require.NoError(t, err)
	return b
}

func TestDecodeString(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "truetype.query")
	defer teardown()
	//
	mac := tt.NameRecord{PlatformID: tt.PlatformMacintosh, RawPlatformID: 1}
	s, err := DecodeString(mac, []byte{'K', 0x8a, 's', 'e'})
	require.NoError(t, err)
	assert.Equal(t, "Käse", s)
	//
	win := tt.NameRecord{PlatformID: tt.PlatformMicrosoft, RawPlatformID: 3, RawEncodingID: 1}
	s, err = DecodeString(win, utf16be(t, "Grüße"))
	require.NoError(t, err)
	assert.Equal(t, "Grüße", s)
	//
	macJapanese := tt.NameRecord{PlatformID: tt.PlatformMacintosh, RawPlatformID: 1, RawEncodingID: 1}
	_, err = DecodeString(macJapanese, []byte{0x82, 0xa0})
	assert.True(t, errors.Is(err, ErrUnsupportedEncoding))
	reserved := tt.NameRecord{PlatformID: tt.PlatformReserved, RawPlatformID: 2}
	_, err = DecodeString(reserved, nil)
	assert.True(t, errors.Is(err, ErrUnsupportedEncoding))
}

func TestNamePreference(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "truetype.query")
	defer teardown()
	//
	f := fontWithNames(t,
		nameRec{platform: 1, nameID: 1, text: []byte("MacFamily")},
		nameRec{platform: 3, encoding: 1, language: 0x0407, nameID: 1, text: utf16be(t, "Familie")},
		nameRec{platform: 3, encoding: 1, language: 0x0409, nameID: 1, text: utf16be(t, "Family")},
		nameRec{platform: 1, nameID: 2, text: []byte("Regular")},
		nameRec{platform: 7, nameID: 5, text: []byte("???")},
	)
	fam, ok := Name(f, sfnt.NameIDFamily)
	require.True(t, ok)
	assert.Equal(t, "Family", fam)
	sub, ok := Name(f, sfnt.NameIDSubfamily)
	require.True(t, ok)
	assert.Equal(t, "Regular", sub)
	_, ok = Name(f, sfnt.NameIDVersion)
	assert.False(t, ok, "expected undecodable version record to be ignored")
	//
	info := NameInfo(f)
	assert.Equal(t, map[string]string{"family": "Family", "subfamily": "Regular"}, info)
	//
	var ids []sfnt.NameID
	for id := range NamesRange(f) {
		ids = append(ids, id)
	}
	assert.Equal(t, []sfnt.NameID{1, 1, 1, 2}, ids)
}

func TestNamesWithoutNameTable(t *testing.T) {
	assert.Empty(t, NameInfo(nil))
	_, ok := Name(nil, sfnt.NameIDFamily)
	assert.False(t, ok)
	for range NamesRange(nil) {
		t.Fatal("expected no names for nil font")
	}
	_, err := NameString(nil, tt.NameRecord{})
	assert.Error(t, err)
}
