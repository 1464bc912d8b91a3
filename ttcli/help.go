package main

import (
	"strings"

	"github.com/pterm/pterm"
)

func helpOp(intp *Intp, op *Op) (error, bool) {
	help(op.arg)
	return nil, false
}

func help(topic string) {
	tracer().Infof("help %v", topic)
	t := strings.ToLower(topic)
	switch t {
	case "name", "names":
		pterm.Info.Println("name")
		pterm.Println(`
	Table 'name' consists of a header, name records and a string pool:
	+--------+-------+----------------------+
	| format | count | string storage offset|
	+--------+-------+----------------------+
	| platform | encoding | language | name ID | length | offset |   × count
	+--------------------------------------------------------+
	| string storage ...                                     |
	+--------------------------------------------------------+
	'name' lists all records, 'name:1' lists records for name ID 1 (family).
	`)
	case "table", "tables", "directory":
		pterm.Info.Println("Table directory")
		pterm.Println(`
	The offset header is followed by one 16-byte record per table:
	+-----+----------+--------+--------+
	| tag | checksum | offset | length |
	+-----+----------+--------+--------+
	Only the TrueType tables cmap, glyf, head, hhea, hmtx, loca, maxp, name
	and post are kept. 'tables' lists them, 'table:<tag>' selects one.
	`)
	default:
		pterm.Info.Println("Commands (combine with blanks, arguments with ':')")
		pterm.Println(`
	header          offset header
	tables          table directory
	table:<tag>     select a table
	head            table head, interpreted
	name[:<id>]     name records and their strings
	cmap            cmap encoding records
	maxp            glyph count and profile
	hhea            horizontal header
	metrics         font metrics
	help[:<topic>]  help on 'name' or 'tables'
	quit            leave (or <ctrl>D)
	`)
	}
}
