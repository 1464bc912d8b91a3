package ttquery

import (
	"github.com/npillmayer/truetype/tt"
	"golang.org/x/image/font/sfnt"
)

// FontMetrics retrieves selected metrics of a font from tables 'head' and
// 'hhea'. Metrics of tables which have not been decoded are left zero.
func FontMetrics(f *tt.FontFile) FontMetricsInfo {
	metrics := FontMetricsInfo{}
	if f == nil {
		return metrics
	}
	if hhea := f.HHea(); hhea != nil {
		metrics.Ascent = sfnt.Units(hhea.Ascender)
		metrics.Descent = sfnt.Units(hhea.Descender)
		metrics.LineGap = sfnt.Units(hhea.LineGap)
		metrics.MaxAdvance = sfnt.Units(hhea.AdvanceWidthMax)
	} else {
		tracer().Debugf("font metrics without table 'hhea'")
	}
	if head := f.Head(); head != nil {
		metrics.UnitsPerEm = sfnt.Units(head.UnitsPerEm())
		metrics.BBox = headBBox(head)
	}
	return metrics
}

// GlyphCount returns the number of glyphs from table 'maxp'.
func GlyphCount(f *tt.FontFile) (int, bool) {
	if f == nil || f.MaxP() == nil {
		return 0, false
	}
	return int(f.MaxP().NumGlyphs()), true
}

// UnicodeCMaps returns the encoding records of table 'cmap' which map Unicode
// code-points, in order of preference: full-repertoire tables first.
func UnicodeCMaps(f *tt.FontFile) []tt.CMapEncodingRecord {
	if f == nil || f.CMap() == nil {
		return nil
	}
	var full, bmp []tt.CMapEncodingRecord
	for _, rec := range f.CMap().EncodingRecords() {
		switch {
		case rec.PlatformID == 0 && rec.PlatformSpecificID >= 4,
			rec.PlatformID == 3 && rec.PlatformSpecificID == msEncodingUCS4:
			full = append(full, rec)
		case rec.PlatformID == 0,
			rec.PlatformID == 3 && rec.PlatformSpecificID == msEncodingUCS2:
			bmp = append(bmp, rec)
		}
	}
	return append(full, bmp...)
}
