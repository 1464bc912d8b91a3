package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/truetype"
	"github.com/npillmayer/truetype/tt"
	"github.com/thatisuday/commando"
)

func main() {
	commando.
		SetExecutableName("tt-tools").
		SetVersion("v0.0.1").
		SetDescription("CLI for TrueType font diagnostics.")

	commando.
		Register(nil).
		AddFlag("verbose,V", "display additional output", commando.Bool, nil)

	commando.
		Register("font").
		SetDescription("Print diagnostics and table directory information for a TrueType font.").
		SetShortDescription("font diagnostics").
		AddArgument("font", "font file path or system font name", "").
		AddArgument("tables...", "optional list of table tags (e.g. head,name)", "").
		SetAction(runFontCommand)

	commando.
		Register("names").
		SetDescription("Print the strings of table 'name'.").
		SetShortDescription("name strings").
		AddArgument("font", "font file path or system font name", "").
		AddFlag("all,a", "print every record instead of the preferred variant per name", commando.Bool, nil).
		SetAction(runNamesCommand)

	commando.
		Register("dump").
		SetDescription("Hex-dump the raw bytes of a table, as located by the table directory.").
		SetShortDescription("dump table bytes").
		AddArgument("font", "font file path or system font name", "").
		AddArgument("table", "table tag (e.g. head)", "").
		AddFlag("max,m", "maximum number of bytes to dump (0 for all)", commando.Int, 256).
		SetAction(runDumpCommand)

	commando.Parse(nil)
}

func mustLoadFont(path string) *tt.FontFile {
	f, err := truetype.LoadFont(path)
	if err != nil {
		fatalf("cannot load font %s: %v", path, err)
	}
	return f
}

func mustFlagInt(flag commando.FlagValue, name string) int {
	n, err := flag.GetInt()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return n
}

func mustFlagBool(flag commando.FlagValue, name string) bool {
	b, err := flag.GetBool()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return b
}

func splitCSVSpace(list string) []string {
	return strings.FieldsFunc(list, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
}

func fatalf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(os.Stderr, "tt-tools: "+format+"\n", args...)
	os.Exit(1)
}
