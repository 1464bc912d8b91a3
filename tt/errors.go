package tt

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a decoding failure.
type ErrorKind int

const (
	// KindMalformedLength: a fixed-size region did not match its required byte count.
	KindMalformedLength ErrorKind = iota
	// KindIO: an underlying seek or read could not complete.
	KindIO
	// KindInvalidTag: the tag bytes of a table record are not valid text.
	KindInvalidTag
	// KindMissingTable: a table has been asked for which is absent from the directory.
	KindMissingTable
	// KindNoDecoder: a table is present, but no decoder is registered for it.
	KindNoDecoder
)

// Sentinel errors, one per ErrorKind. Use errors.Is to test a returned error
// against them.
var (
	ErrMalformedLength = errors.New("malformed length")
	ErrIO              = errors.New("i/o failure")
	ErrInvalidTag      = errors.New("invalid tag")
	ErrMissingTable    = errors.New("missing required table")
	ErrNoDecoder       = errors.New("no decoder for table")
)

// String returns a human-readable representation of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case KindMalformedLength:
		return "MalformedLength"
	case KindIO:
		return "IoFailure"
	case KindInvalidTag:
		return "InvalidTag"
	case KindMissingTable:
		return "MissingRequiredTable"
	case KindNoDecoder:
		return "NoDecoder"
	default:
		return "UNKNOWN"
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case KindMalformedLength:
		return ErrMalformedLength
	case KindIO:
		return ErrIO
	case KindInvalidTag:
		return ErrInvalidTag
	case KindMissingTable:
		return ErrMissingTable
	case KindNoDecoder:
		return ErrNoDecoder
	}
	return nil
}

// DecodeError represents a failure encountered while decoding a font.
// Decoders fail fast: a DecodeError is returned to the immediate caller and
// no partially decoded value accompanies it.
type DecodeError struct {
	Kind     ErrorKind
	Table    string // table or region where the error occurred, e.g. "head", "directory"
	Section  string // specific section within the table, e.g. "NameRecords"
	Expected int    // expected byte count, for KindMalformedLength
	Actual   int    // actual byte count, for KindMalformedLength
	Offset   int64  // byte offset in the font file (-1 if unknown)
	Err      error  // underlying error, if any
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	var where string
	if e.Section != "" {
		where = e.Table + "/" + e.Section
	} else {
		where = e.Table
	}
	if e.Offset >= 0 {
		where = fmt.Sprintf("%s at offset %d", where, e.Offset)
	}
	switch e.Kind {
	case KindMalformedLength:
		return fmt.Sprintf("[%s] %s: expected %d bytes, got %d", e.Kind, where, e.Expected, e.Actual)
	case KindMissingTable, KindNoDecoder:
		return fmt.Sprintf("[%s] %s", e.Kind, where)
	}
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Kind, where, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, where)
}

// Unwrap returns the underlying error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel error for e's kind.
func (e *DecodeError) Is(target error) bool {
	return target != nil && target == e.Kind.sentinel()
}

// --- Constructors ----------------------------------------------------------

func errMalformedLength(table, section string, expected, actual int, offset int64) error {
	return &DecodeError{
		Kind:     KindMalformedLength,
		Table:    table,
		Section:  section,
		Expected: expected,
		Actual:   actual,
		Offset:   offset,
	}
}

func errIO(table, section string, offset int64, err error) error {
	return &DecodeError{
		Kind:    KindIO,
		Table:   table,
		Section: section,
		Offset:  offset,
		Err:     err,
	}
}

func errInvalidTag(b []byte) error {
	return &DecodeError{
		Kind:    KindInvalidTag,
		Table:   "directory",
		Section: "Tag",
		Offset:  -1,
		Err:     fmt.Errorf("tag bytes % x are not valid UTF-8", b),
	}
}

func errMissingTable(tag TableTag) error {
	return &DecodeError{
		Kind:   KindMissingTable,
		Table:  tag.String(),
		Offset: -1,
	}
}

func errNoDecoder(tag TableTag) error {
	return &DecodeError{
		Kind:   KindNoDecoder,
		Table:  tag.String(),
		Offset: -1,
	}
}

// withTable re-labels a DecodeError produced by a pure parse function with the
// table it belongs to and the table's offset in the file.
func withTable(err error, table string, offset int64) error {
	var derr *DecodeError
	if errors.As(err, &derr) {
		derr.Table = table
		if derr.Offset >= 0 {
			derr.Offset += offset
		} else {
			derr.Offset = offset
		}
	}
	return err
}
