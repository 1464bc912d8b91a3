package tt

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// ByteReader is the random-access capability the decoders of this package
// consume. All scalar reads are big-endian.
//
// ReadExact returns exactly n bytes or an error. If the source ends before n bytes
// could be read, ReadExact returns the bytes available together with an error
// wrapping io.ErrUnexpectedEOF (or io.EOF, if no byte was available).
type ByteReader interface {
	SeekAbsolute(pos int64) error
	SkipRelative(delta int64) error
	ReadExact(n int) ([]byte, error)
	ReadU8() (uint8, error)
	ReadI8() (int8, error)
	ReadU16() (uint16, error)
	ReadI16() (int16, error)
	ReadU32() (uint32, error)
	ReadI32() (int32, error)
}

// sizer is an optional capability of a ByteReader. If present, it is used to
// bound counts read from a font against the size of the font's data.
type sizer interface {
	Size() (int64, error)
}

// Reader implements ByteReader on top of an io.ReadSeeker.
type Reader struct {
	rs io.ReadSeeker
}

var _ ByteReader = (*Reader)(nil)

// NewReader wraps an io.ReadSeeker, e.g. an *os.File.
func NewReader(rs io.ReadSeeker) *Reader {
	return &Reader{rs: rs}
}

// NewBytesReader creates a Reader for an in-memory font.
func NewBytesReader(b []byte) *Reader {
	return &Reader{rs: bytes.NewReader(b)}
}

// SeekAbsolute positions the cursor at pos, counted from the start of the data.
func (r *Reader) SeekAbsolute(pos int64) error {
	if _, err := r.rs.Seek(pos, io.SeekStart); err != nil {
		return fmt.Errorf("failed to seek to %d: %w", pos, err)
	}
	return nil
}

// SkipRelative moves the cursor by delta bytes, counted from the current position.
func (r *Reader) SkipRelative(delta int64) error {
	if _, err := r.rs.Seek(delta, io.SeekCurrent); err != nil {
		return fmt.Errorf("failed to skip %d bytes: %w", delta, err)
	}
	return nil
}

// ReadExact reads exactly n bytes.
func (r *Reader) ReadExact(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("negative read size %d", n)
	}
	buf := make([]byte, n)
	k, err := io.ReadFull(r.rs, buf)
	if err != nil {
		return buf[:k], err
	}
	return buf, nil
}

// Size returns the total size of the underlying data. The cursor position
// is preserved.
func (r *Reader) Size() (int64, error) {
	cur, err := r.rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, err
	}
	end, err := r.rs.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, err
	}
	if _, err = r.rs.Seek(cur, io.SeekStart); err != nil {
		return 0, err
	}
	return end, nil
}

func (r *Reader) ReadU8() (uint8, error) {
	b, err := r.ReadExact(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *Reader) ReadI8() (int8, error) {
	n, err := r.ReadU8()
	return int8(n), err
}

func (r *Reader) ReadU16() (uint16, error) {
	b, err := r.ReadExact(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

func (r *Reader) ReadI16() (int16, error) {
	n, err := r.ReadU16()
	return int16(n), err
}

func (r *Reader) ReadU32() (uint32, error) {
	b, err := r.ReadExact(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

func (r *Reader) ReadI32() (int32, error) {
	n, err := r.ReadU32()
	return int32(n), err
}

// ---------------------------------------------------------------------------

// readRegion seeks to an absolute offset and reads n bytes. A short read is
// reported as an I/O failure of the region; use isShortRead to tell it apart
// from other failures.
func readRegion(r ByteReader, table string, offset int64, n int) ([]byte, error) {
	if err := r.SeekAbsolute(offset); err != nil {
		return nil, errIO(table, "Seek", offset, err)
	}
	b, err := r.ReadExact(n)
	if err != nil {
		return b, errIO(table, "Read", offset, err)
	}
	return b, nil
}

func isShortRead(err error) bool {
	return errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF)
}

// readTable seeks to a table's location and reads the table's bytes. If r is
// able to tell its size, a table extending past the end of the data is reported
// as a short read before any buffer is allocated for it.
func readTable(r ByteReader, table string, loc TableLocation) ([]byte, error) {
	offset := int64(loc.Offset)
	end, err := loc.End()
	if sz, ok := r.(sizer); ok {
		if size, serr := sz.Size(); serr == nil && (err != nil || end > size) {
			return nil, errShortRegion(table, offset, int(loc.Length), int(max(size-offset, 0)))
		}
	}
	if err != nil {
		return nil, &DecodeError{Kind: KindMalformedLength, Table: table, Expected: int(loc.Length),
			Offset: offset, Err: err}
	}
	return readRegion(r, table, offset, int(loc.Length))
}

func errShortRegion(table string, offset int64, expected, actual int) error {
	return &DecodeError{
		Kind:     KindIO,
		Table:    table,
		Section:  "Read",
		Expected: expected,
		Actual:   actual,
		Offset:   offset,
		Err:      fmt.Errorf("table needs %d bytes, %d available: %w", expected, actual, io.ErrUnexpectedEOF),
	}
}

// shortReadCount is the number of bytes available to a short read.
func shortReadCount(err error, b []byte) int {
	var derr *DecodeError
	if errors.As(err, &derr) && derr.Actual > len(b) {
		return derr.Actual
	}
	return len(b)
}
