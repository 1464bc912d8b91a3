/*
Package tt decodes the binary container of TrueType fonts: the offset header,
the table directory, and a set of table decoders.

A TrueType file starts with a 12-byte offset header, followed immediately by
the table directory, a list of 16-byte table records. Every record names a table
by a 4-byte tag and locates it by an absolute byte offset and a length. The
tables themselves are independent binary structures, each with its own
positional layout.

Decoding runs strictly in this order:

▪︎ the offset header is read from byte 0 and yields the number of table records,

▪︎ the table directory is read from byte 12, one record per table. Records with tags
outside the set of required TrueType tables are dropped,

▪︎ table decoders are dispatched using the directory's locations. Each decoder
seeks to its table and reads exactly the table's bytes.

Package tt will not interpret more of a table than its binary layout. For
example, name records are decoded, but their strings are not converted to Go
strings, as this depends on platform encodings. Interpretation of that kind is
homed in package `ttquery`.

Decoding is synchronous. A ByteReader has a single cursor and must not be
shared between goroutines while decoding.

# Links

TrueType reference manual:
https://developer.apple.com/fonts/TrueType-Reference-Manual/RM06/Chap6.html

OpenType explained:
https://docs.microsoft.com/en-us/typography/opentype/

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package tt

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'truetype.tt'
func tracer() tracing.Trace {
	return tracing.Select("truetype.tt")
}
