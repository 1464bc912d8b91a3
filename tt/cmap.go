package tt

import "fmt"

const (
	cmapHeaderSize = 4
	cmapRecordSize = 8
)

// CMapTable is the header of table 'cmap': a version and a list of encoding
// records, each pointing to a sub-table for one platform/encoding combination.
//
// Sub-tables are not interpreted; mapping characters to glyphs is out of scope
// for this package.
type CMapTable struct {
	loc     TableLocation
	version uint16
	records []CMapEncodingRecord
}

// CMapEncodingRecord locates one character mapping sub-table.
type CMapEncodingRecord struct {
	PlatformID         uint16
	PlatformSpecificID uint16
	Offset             uint32 // from the beginning of table 'cmap'
	Format             uint16 // format of the sub-table, 0 if not readable
}

func (rec CMapEncodingRecord) String() string {
	return fmt.Sprintf("cmap sub-table %s/%d format %d @%d", PlatformFromID(rec.PlatformID),
		rec.PlatformSpecificID, rec.Format, rec.Offset)
}

// DecodeCMap seeks to the table's location and decodes the header of table 'cmap'.
func DecodeCMap(r ByteReader, loc TableLocation) (*CMapTable, error) {
	if loc.Length < cmapHeaderSize {
		return nil, errMalformedLength("cmap", "Header", cmapHeaderSize, int(loc.Length), int64(loc.Offset))
	}
	b, err := readTable(r, "cmap", loc)
	if err != nil {
		return nil, err
	}
	t, err := ParseCMap(b)
	if err != nil {
		return nil, withTable(err, "cmap", int64(loc.Offset))
	}
	t.loc = loc
	return t, nil
}

// ParseCMap decodes the header of table 'cmap' from the table's bytes.
// The format of each sub-table is read if the record's offset is within the
// table; it is not an error for it not to be.
func ParseCMap(b []byte) (*CMapTable, error) {
	if len(b) < cmapHeaderSize {
		return nil, errMalformedLength("cmap", "Header", cmapHeaderSize, len(b), 0)
	}
	t := &CMapTable{version: u16(b[0:2])}
	n := int(u16(b[2:4]))
	recs, ok := binarySegm(b).records(cmapHeaderSize, n, cmapRecordSize)
	if !ok {
		return nil, errMalformedLength("cmap", "EncodingRecords",
			cmapHeaderSize+n*cmapRecordSize, len(b), cmapHeaderSize)
	}
	t.records = make([]CMapEncodingRecord, n)
	for i, rec := range recs {
		t.records[i] = CMapEncodingRecord{
			PlatformID:         u16(rec[0:2]),
			PlatformSpecificID: u16(rec[2:4]),
			Offset:             u32(rec[4:8]),
		}
		if f, ok := binarySegm(b).view(int(t.records[i].Offset), 2); ok {
			t.records[i].Format = u16(f)
		} else {
			tracer().Infof("cmap sub-table %d points outside of table", i)
		}
	}
	return t, nil
}

// Tag returns Cmap.
func (t *CMapTable) Tag() TableTag { return Cmap }

// Location returns the location the table has been decoded from.
func (t *CMapTable) Location() TableLocation { return t.loc }

// Version is 0 for all current fonts.
func (t *CMapTable) Version() uint16 { return t.version }

// EncodingRecords returns the encoding records in table order.
func (t *CMapTable) EncodingRecords() []CMapEncodingRecord {
	recs := make([]CMapEncodingRecord, len(t.records))
	copy(recs, t.records)
	return recs
}
