package tt

import (
	"fmt"

	"golang.org/x/image/font/sfnt"
)

const (
	nameHeaderSize     = 6
	nameRecordSize     = 12
	langTagRecordSize  = 4
	langTagCountLength = 2
)

// NameFormat is the format of table 'name'.
type NameFormat uint16

const (
	NameFormatStandard NameFormat = 0 // TrueType
	NameFormatExtended NameFormat = 1 // OpenType, with language-tag records
)

// IsKnown is false for format values other than 0 and 1. These are preserved,
// but the table is decoded as format 0.
func (f NameFormat) IsKnown() bool {
	return f == NameFormatStandard || f == NameFormatExtended
}

func (f NameFormat) String() string {
	switch f {
	case NameFormatStandard:
		return "standard"
	case NameFormatExtended:
		return "extended"
	}
	return fmt.Sprintf("unknown(%d)", uint16(f))
}

// Platform identifies the vendor convention a name record's text follows.
type Platform int

const (
	PlatformUnicode Platform = iota
	PlatformMacintosh
	PlatformReserved
	PlatformMicrosoft
	PlatformUnknown
)

// PlatformFromID maps a numeric platform ID to a Platform. Vendor extensions
// are tolerated and map to PlatformUnknown.
func PlatformFromID(id uint16) Platform {
	if id <= 3 {
		return Platform(id)
	}
	return PlatformUnknown
}

func (p Platform) String() string {
	switch p {
	case PlatformUnicode:
		return "Unicode"
	case PlatformMacintosh:
		return "Macintosh"
	case PlatformReserved:
		return "Reserved"
	case PlatformMicrosoft:
		return "Microsoft"
	}
	return "Unknown"
}

// Encoding is a platform-specific encoding ID. Its interpretation depends on
// the platform; the names of the constants follow the Unicode platform.
type Encoding int

const (
	EncodingVersion1 Encoding = iota
	EncodingVersion1_1
	EncodingISO10646 // deprecated
	EncodingUnicode2BMP
	EncodingUnicode2Full
	EncodingUnknown
)

// EncodingFromID maps a numeric platform-specific ID to an Encoding.
func EncodingFromID(id uint16) Encoding {
	if id <= 4 {
		return Encoding(id)
	}
	return EncodingUnknown
}

func (e Encoding) String() string {
	switch e {
	case EncodingVersion1:
		return "Version1.0"
	case EncodingVersion1_1:
		return "Version1.1"
	case EncodingISO10646:
		return "ISO10646"
	case EncodingUnicode2BMP:
		return "Unicode2.0/BMP"
	case EncodingUnicode2Full:
		return "Unicode2.0/full"
	}
	return "Unknown"
}

// NameRecord describes one string of table 'name'. The text itself is not part
// of the record: Length and Offset address it within the table's string
// storage. Many records may share overlapping byte ranges.
type NameRecord struct {
	PlatformID         Platform
	PlatformSpecificID Encoding
	RawPlatformID      uint16 // numeric value, also for PlatformUnknown
	RawEncodingID      uint16 // numeric value, also for EncodingUnknown
	LanguageID         uint16
	NameID             sfnt.NameID // e.g. sfnt.NameIDFamily
	Length             uint16      // string length in bytes
	Offset             uint16      // string offset in bytes from the start of string storage
}

func (rec NameRecord) String() string {
	return fmt.Sprintf("name %d (%s/%d, lang=%#x) @%d+%d", rec.NameID, rec.PlatformID,
		rec.RawEncodingID, rec.LanguageID, rec.Offset, rec.Length)
}

// LangTagRecord addresses an IETF BCP 47 language tag in a format 1 table.
type LangTagRecord struct {
	Length uint16
	Offset uint16
}

// NameTable is table 'name', which associates strings with the font.
// See https://developer.apple.com/fonts/TrueType-Reference-Manual/RM06/Chap6name.html
//
// The string pool is kept verbatim. Resolving a record's text is left to the
// client, as choosing a text encoding is a matter of platform policy (see package
// ttquery).
type NameTable struct {
	loc           TableLocation
	format        NameFormat
	count         uint16
	storageOffset uint16
	records       []NameRecord
	langTags      []LangTagRecord
	poolStart     int
	pool          []byte
}

// DecodeName seeks to the table's location and decodes table 'name'.
func DecodeName(r ByteReader, loc TableLocation) (*NameTable, error) {
	b, err := readTable(r, "name", loc)
	if err != nil {
		if isShortRead(err) {
			return nil, errMalformedLength("name", "", int(loc.Length), shortReadCount(err, b), int64(loc.Offset))
		}
		return nil, err
	}
	t, err := ParseName(b)
	if err != nil {
		return nil, withTable(err, "name", int64(loc.Offset))
	}
	t.loc = loc
	return t, nil
}

// ParseName decodes table 'name' from the table's bytes.
//
// Records occupy bytes [6, 6+count*12); everything after the records is the
// string pool. A count which does not fit into the table is reported as
// ErrMalformedLength. This is the only structural failure: language-tag records
// of a format 1 table which do not fit are dropped, see LangTagRecords.
func ParseName(b []byte) (*NameTable, error) {
	if len(b) < nameHeaderSize {
		return nil, errMalformedLength("name", "Header", nameHeaderSize, len(b), 0)
	}
	t := &NameTable{
		format:        NameFormat(u16(b[0:2])),
		count:         u16(b[2:4]),
		storageOffset: u16(b[4:6]),
	}
	end := nameHeaderSize + int(t.count)*nameRecordSize
	recs, ok := binarySegm(b).records(nameHeaderSize, int(t.count), nameRecordSize)
	if !ok {
		return nil, errMalformedLength("name", "NameRecords", end, len(b), nameHeaderSize)
	}
	t.records = make([]NameRecord, len(recs))
	for i, rec := range recs {
		t.records[i] = parseNameRecord(rec)
	}
	t.poolStart = end
	t.pool = b[end:]
	if t.format == NameFormatExtended {
		t.parseLangTags(b, end)
	}
	return t, nil
}

func parseNameRecord(rec binarySegm) NameRecord {
	pid, eid := u16(rec[0:2]), u16(rec[2:4])
	return NameRecord{
		PlatformID:         PlatformFromID(pid),
		PlatformSpecificID: EncodingFromID(eid),
		RawPlatformID:      pid,
		RawEncodingID:      eid,
		LanguageID:         u16(rec[4:6]),
		NameID:             sfnt.NameID(u16(rec[6:8])),
		Length:             u16(rec[8:10]),
		Offset:             u16(rec[10:12]),
	}
}

// Format 1 tables follow the name records with a count and an array of
// language-tag records. Language tags are optional to clients: if they do not
// fit into the table, the table is kept without them.
func (t *NameTable) parseLangTags(b binarySegm, at int) {
	cnt, ok := b.view(at, langTagCountLength)
	if !ok {
		tracer().Infof("name table format 1 without language-tag count")
		return
	}
	n := int(u16(cnt))
	at += langTagCountLength
	recs, ok := b.records(at, n, langTagRecordSize)
	if !ok {
		tracer().Infof("name table: %d language-tag records do not fit into table", n)
		return
	}
	t.langTags = make([]LangTagRecord, n)
	for i, rec := range recs {
		t.langTags[i] = LangTagRecord{Length: u16(rec[0:2]), Offset: u16(rec[2:4])}
	}
}

// Tag returns Name.
func (t *NameTable) Tag() TableTag { return Name }

// Location returns the location the table has been decoded from.
func (t *NameTable) Location() TableLocation { return t.loc }

// Format returns the table's format. Unknown formats are preserved.
func (t *NameTable) Format() NameFormat { return t.format }

// Count is the number of name records.
func (t *NameTable) Count() uint16 { return t.count }

// StringStorageOffset is the offset of the string storage, in bytes from the
// start of the table.
func (t *NameTable) StringStorageOffset() uint16 { return t.storageOffset }

// Records returns the name records in table order.
func (t *NameTable) Records() []NameRecord {
	recs := make([]NameRecord, len(t.records))
	copy(recs, t.records)
	return recs
}

// LangTagRecords returns the language-tag records of a format 1 table.
// It is nil if the table has no room for them.
func (t *NameTable) LangTagRecords() []LangTagRecord {
	if len(t.langTags) == 0 {
		return nil
	}
	tags := make([]LangTagRecord, len(t.langTags))
	copy(tags, t.langTags)
	return tags
}

// Pool returns the bytes following the name records, verbatim. Should be
// treated as read-only by clients.
func (t *NameTable) Pool() []byte {
	return t.pool
}

// PoolStart is the offset of the pool, in bytes from the start of the table.
func (t *NameTable) PoolStart() int {
	return t.poolStart
}

// RecordBytes returns the string bytes a record addresses, i.e. the bytes
// at StringStorageOffset+rec.Offset relative to the table start.
// A record pointing outside of the pool is reported as ErrMalformedLength.
//
// Pool starts directly after the name records, at 6+count*12. A table whose
// StringStorageOffset differs from that start (e.g. format 1 with language-tag
// records in between) resolves differently through RecordBytes than through
// Pool()[rec.Offset:]. RecordBytes follows the table's storage offset, as font
// producers and other readers do.
func (t *NameTable) RecordBytes(rec NameRecord) ([]byte, error) {
	return t.storageBytes(int(rec.Offset), int(rec.Length), "NameRecord")
}

// LangTagBytes returns the bytes of a language tag (UTF-16BE).
func (t *NameTable) LangTagBytes(rec LangTagRecord) ([]byte, error) {
	return t.storageBytes(int(rec.Offset), int(rec.Length), "LangTagRecord")
}

func (t *NameTable) storageBytes(offset, length int, section string) ([]byte, error) {
	start := int(t.storageOffset) - t.poolStart + offset
	b, ok := binarySegm(t.pool).view(start, length)
	if !ok {
		return nil, errMalformedLength("name", section, t.poolStart+start+length,
			t.poolStart+len(t.pool), int64(t.loc.Offset))
	}
	return b, nil
}
