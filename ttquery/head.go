package ttquery

import (
	"fmt"
	"time"

	"github.com/npillmayer/truetype/tt"
	"golang.org/x/image/font/sfnt"
)

// secondsFrom1904To1970 is the offset of the TrueType epoch (1904-01-01 UTC)
// against the Unix epoch.
const secondsFrom1904To1970 = 2082844800

// LongDateTime converts a TrueType timestamp, counted in seconds since
// midnight 1904-01-01 UTC, to a time.Time.
func LongDateTime(secs int64) time.Time {
	return time.Unix(secs-secondsFrom1904To1970, 0).UTC()
}

// Fixed renders a 16.16 fixed-point number, e.g. a font revision.
func Fixed(v uint32) string {
	return fmt.Sprintf("%.3f", float64(int32(v))/65536.0)
}

// HeadTableInfo is a query view over table 'head', with timestamps, flags and
// styles interpreted.
type HeadTableInfo struct {
	Version          string
	FontRevision     string
	UnitsPerEm       uint16
	Created          time.Time
	Modified         time.Time
	BBox             BoundingBox
	Styles           []string // names of the set mac-style bits
	Flags            []string // names of the set flag bits
	LowestRecPPEM    uint16
	IndexToLocFormat string
	MagicNumberOK    bool
}

// HeadInfo interprets table 'head' of a font.
// Returns (info, true) on success, or (zero, false) if the table has not been
// decoded.
func HeadInfo(f *tt.FontFile) (HeadTableInfo, bool) {
	var info HeadTableInfo
	if f == nil || f.Head() == nil {
		return info, false
	}
	head := f.Head()
	info.Version = Fixed(head.Version())
	info.FontRevision = Fixed(head.FontRevision())
	info.UnitsPerEm = head.UnitsPerEm()
	info.Created = LongDateTime(head.Created())
	info.Modified = LongDateTime(head.Modified())
	info.BBox = headBBox(head)
	info.Styles = MacStyleNames(head.MacStyle())
	info.Flags = FlagNames(head.Flags())
	info.LowestRecPPEM = head.LowestRecPPEM()
	switch head.IndexToLocFormat() {
	case tt.ShortOffsets:
		info.IndexToLocFormat = "short"
	case tt.LongOffsets:
		info.IndexToLocFormat = "long"
	default:
		info.IndexToLocFormat = fmt.Sprintf("unknown(%d)", head.IndexToLocFormat())
	}
	info.MagicNumberOK = head.MagicNumber() == tt.HeadMagicNumber
	if !info.MagicNumberOK {
		tracer().Infof("table 'head' has magic number %#x", head.MagicNumber())
	}
	return info, true
}

func headBBox(head *tt.HeadTable) BoundingBox {
	return BoundingBox{
		MinX: sfnt.Units(head.XMin()),
		MinY: sfnt.Units(head.YMin()),
		MaxX: sfnt.Units(head.XMax()),
		MaxY: sfnt.Units(head.YMax()),
	}
}

// MacStyleNames lists the set bits of a mac-style value. A value without any
// set bit is reported as "regular".
func MacStyleNames(s tt.MacStyle) []string {
	var names []string
	for _, st := range []struct {
		set  bool
		name string
	}{
		{s.Bold(), "bold"},
		{s.Italic(), "italic"},
		{s.Underline(), "underline"},
		{s.Outline(), "outline"},
		{s.Shadow(), "shadow"},
		{s.Condensed(), "condensed"},
		{s.Extended(), "extended"},
	} {
		if st.set {
			names = append(names, st.name)
		}
	}
	if len(names) == 0 {
		return []string{"regular"}
	}
	return names
}

// FlagNames lists the set bits of the flags of table 'head', from bit 0 to
// bit 15.
func FlagNames(f tt.HeadFlags) []string {
	var names []string
	for _, fl := range []struct {
		set  bool
		name string
	}{
		{f.YValueZeroIsBaseline(), "baseline-at-y0"},
		{f.XPosLeftmostBlackBitIsLSB(), "lsb-at-x0"},
		{f.ScaledPointSizeDiffers(), "scaled-size-differs"},
		{f.UseIntegerScaling(), "integer-scaling"},
		{f.MicrosoftScaler(), "microsoft-scaler"},
		{f.VerticalLayout(), "vertical-layout"},
		{f.MustBeZero(), "bit6"},
		{f.RequiresLinguisticLayout(), "linguistic-layout"},
		{f.AATDefaultMetamorphosis(), "aat-metamorphosis"},
		{f.StrongRTLGlyphs(), "strong-rtl"},
		{f.IndicRearrangement(), "indic-rearrangement"},
		{f.LosslessFontData(), "lossless"},
		{f.Converted(), "converted"},
		{f.ClearTypeOptimized(), "cleartype"},
		{f.GenericSymbolFont(), "last-resort"},
		{f.Reserved(), "bit15"},
	} {
		if fl.set {
			names = append(names, fl.name)
		}
	}
	return names
}

// FontType returns the kind of outlines the font's offset header announces.
func FontType(f *tt.FontFile) string {
	if f == nil {
		return ""
	}
	switch f.Header().ScalarType() {
	case tt.ScalarTypeTrueType, tt.ScalarTypeTrue:
		return "TrueType"
	case tt.ScalarTypeOpenType:
		return "OpenType"
	case tt.ScalarTypeTyp1:
		return "Type1"
	}
	return "unknown"
}
