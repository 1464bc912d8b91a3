/*
Package ttquery interprets decoded TrueType tables for clients.

Package tt decodes tables positionally and leaves choices of policy to the
caller. ttquery makes these choices: it resolves the strings of table 'name'
under their platform encodings, converts timestamps of table 'head' to
time.Time, and lists flags and styles in human readable form.

All functions accept fonts which lack the table in question and report this
either by an empty result or by a boolean.

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package ttquery

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'truetype.query'
func tracer() tracing.Trace {
	return tracing.Select("truetype.query")
}
