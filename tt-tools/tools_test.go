package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/truetype"
	"github.com/npillmayer/truetype/tt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func TestFontReport(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "truetype.tt")
	defer teardown()
	//
	f, err := truetype.ParseFont(goregular.TTF)
	require.NoError(t, err)
	var out bytes.Buffer
	require.NoError(t, writeFontReport(&out, f, splitCSVSpace("head, GSUB xyzw")))
	report := out.String()
	assert.Contains(t, report, "Type: TrueType\n")
	assert.Contains(t, report, "Family: Go\n")
	assert.Contains(t, report, " cmap glyf head hhea hmtx loca maxp name post\n")
	assert.Contains(t, report, "table head: offset=")
	assert.Contains(t, report, "table GSUB: not a TrueType table\n")
	//
	out.Reset()
	writeNames(&out, f, false)
	assert.Contains(t, out.String(), "family: Go\n")
}

func TestDumpTable(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, dumpTable(&out, goregular.TTF, tt.Head, 16))
	assert.Contains(t, out.String(), "16 bytes shown")
	assert.Contains(t, out.String(), "00000000  00 01 00 00")
	//
	font := []byte{0, 1, 0, 0, 0, 1, 0, 16, 0, 0, 0, 0, 'h', 'e', 'a', 'd',
		0, 0, 0, 0, 0, 0, 0, 28, 0, 0, 0, 54}
	err := dumpTable(&out, font, tt.Head, 0)
	assert.Error(t, err, "expected table beyond end of file to fail")
	err = dumpTable(&out, font, tt.Name, 0)
	assert.True(t, errors.Is(err, tt.ErrMissingTable))
}
