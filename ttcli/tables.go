package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/truetype/tt"
	"github.com/npillmayer/truetype/ttquery"
	"github.com/pterm/pterm"
	"golang.org/x/image/font/sfnt"
)

func headerOp(intp *Intp, op *Op) (error, bool) {
	if err := intp.checkFont(); err != nil {
		return err, false
	}
	h := intp.font.Header()
	data := [][]string{
		{"Field", "Value"},
		{"Scalar type", fmt.Sprintf("%#08x (%s)", h.ScalarType(), ttquery.FontType(intp.font))},
		{"Tables", strconv.Itoa(int(h.TableCount()))},
		{"Search range", strconv.Itoa(int(h.SearchRange()))},
		{"Entry selector", strconv.Itoa(int(h.EntrySelector()))},
		{"Range shift", strconv.Itoa(int(h.RangeShift()))},
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil, false
}

func tablesOp(intp *Intp, op *Op) (error, bool) {
	if err := intp.checkFont(); err != nil {
		return err, false
	}
	data := [][]string{
		{"Tag", "Offset", "Length", "Checksum", "Decoded"},
	}
	for tag, loc := range intp.font.Directory().All() {
		decoded := "-"
		if intp.font.Table(tag) != nil {
			decoded = "yes"
		} else if !tt.HasDecoder(tag) {
			decoded = "no decoder"
		}
		data = append(data, []string{
			tag.String(),
			strconv.Itoa(int(loc.Offset)),
			strconv.Itoa(int(loc.Length)),
			fmt.Sprintf("%#08x", loc.Checksum),
			decoded,
		})
	}
	pterm.Printf("%d of %d table records are TrueType tables\n",
		intp.font.Directory().Len(), intp.font.Header().TableCount())
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil, false
}

func tableOp(intp *Intp, op *Op) (error, bool) {
	if err := intp.checkFont(); err != nil {
		return err, false
	}
	arg, ok := op.hasArg()
	if !ok {
		intp.set = false
		return nil, false
	}
	tag, ok := tt.ParseTableTag(arg)
	if !ok {
		return fmt.Errorf("not a TrueType table: %q", arg), false
	}
	loc, err := intp.font.Directory().Lookup(tag)
	if err != nil {
		return err, false
	}
	intp.table, intp.set = tag, true
	tracer().Infof("setting table: %v", tag)
	pterm.Printf("table %s at %v\n", tag, loc)
	return nil, false
}

func headOp(intp *Intp, op *Op) (error, bool) {
	if err := intp.checkFont(); err != nil {
		return err, false
	}
	h, ok := ttquery.HeadInfo(intp.font)
	if !ok {
		return fmt.Errorf("table head has not been decoded"), false
	}
	data := [][]string{
		{"Field", "Value"},
		{"Version", h.Version},
		{"Font revision", h.FontRevision},
		{"Units per em", strconv.Itoa(int(h.UnitsPerEm))},
		{"Created", h.Created.String()},
		{"Modified", h.Modified.String()},
		{"Bounding box", fmt.Sprintf("(%d,%d) – (%d,%d)", h.BBox.MinX, h.BBox.MinY, h.BBox.MaxX, h.BBox.MaxY)},
		{"Mac style", strings.Join(h.Styles, ", ")},
		{"Flags", strings.Join(h.Flags, ", ")},
		{"Lowest rec. PPEM", strconv.Itoa(int(h.LowestRecPPEM))},
		{"Index to loc", h.IndexToLocFormat},
		{"Magic number ok", strconv.FormatBool(h.MagicNumberOK)},
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil, false
}

// nameOp lists the records of table name. With an argument, only records for
// this name ID are listed.
func nameOp(intp *Intp, op *Op) (error, bool) {
	if err := intp.checkFont(); err != nil {
		return err, false
	}
	name := intp.font.Name()
	if name == nil {
		return fmt.Errorf("table name has not been decoded"), false
	}
	filter := -1
	if arg, ok := op.hasArg(); ok {
		id, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("name ID not numeric: %v", arg), false
		}
		filter = id
	}
	pterm.Printf("name table format %s, %d records\n", name.Format(), name.Count())
	data := [][]string{
		{"ID", "Key", "Platform", "Encoding", "Language", "Value"},
	}
	for _, rec := range name.Records() {
		if filter >= 0 && int(rec.NameID) != filter {
			continue
		}
		value, err := ttquery.NameString(name, rec)
		if err != nil {
			value = fmt.Sprintf("<%v>", err)
		}
		data = append(data, []string{
			strconv.Itoa(int(rec.NameID)),
			ttquery.NameKey(rec.NameID),
			rec.PlatformID.String(),
			strconv.Itoa(int(rec.RawEncodingID)),
			fmt.Sprintf("%#04x", rec.LanguageID),
			value,
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil, false
}

func cmapOp(intp *Intp, op *Op) (error, bool) {
	if err := intp.checkFont(); err != nil {
		return err, false
	}
	cmap := intp.font.CMap()
	if cmap == nil {
		return fmt.Errorf("table cmap has not been decoded"), false
	}
	data := [][]string{
		{"Platform", "Encoding", "Offset", "Format"},
	}
	for _, rec := range cmap.EncodingRecords() {
		data = append(data, []string{
			tt.PlatformFromID(rec.PlatformID).String(),
			strconv.Itoa(int(rec.PlatformSpecificID)),
			strconv.Itoa(int(rec.Offset)),
			strconv.Itoa(int(rec.Format)),
		})
	}
	pterm.Printf("cmap version %d, %d Unicode sub-tables\n", cmap.Version(),
		len(ttquery.UnicodeCMaps(intp.font)))
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil, false
}

func maxpOp(intp *Intp, op *Op) (error, bool) {
	if err := intp.checkFont(); err != nil {
		return err, false
	}
	maxp := intp.font.MaxP()
	if maxp == nil {
		return fmt.Errorf("table maxp has not been decoded"), false
	}
	pterm.Printf("maxp version %s, %d glyphs\n", ttquery.Fixed(maxp.Version()), maxp.NumGlyphs())
	if p, ok := maxp.Profile(); ok {
		pterm.Printf("max points=%d contours=%d component depth=%d\n",
			p.MaxPoints, p.MaxContours, p.MaxComponentDepth)
	}
	return nil, false
}

func hheaOp(intp *Intp, op *Op) (error, bool) {
	if err := intp.checkFont(); err != nil {
		return err, false
	}
	hhea := intp.font.HHea()
	if hhea == nil {
		return fmt.Errorf("table hhea has not been decoded"), false
	}
	data := [][]string{
		{"Field", "Value"},
		{"Ascender", strconv.Itoa(int(hhea.Ascender))},
		{"Descender", strconv.Itoa(int(hhea.Descender))},
		{"Line gap", strconv.Itoa(int(hhea.LineGap))},
		{"Max advance", strconv.Itoa(int(hhea.AdvanceWidthMax))},
		{"H-metrics", strconv.Itoa(int(hhea.NumberOfHMetrics))},
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil, false
}

func metricsOp(intp *Intp, op *Op) (error, bool) {
	if err := intp.checkFont(); err != nil {
		return err, false
	}
	m := ttquery.FontMetrics(intp.font)
	family, _ := ttquery.Name(intp.font, sfnt.NameIDFamily)
	pterm.Printf("%s: units/em=%d ascent=%d descent=%d line gap=%d\n",
		family, m.UnitsPerEm, m.Ascent, m.Descent, m.LineGap)
	return nil, false
}
