package main

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/npillmayer/truetype/tt"
	"github.com/npillmayer/truetype/ttquery"
	"github.com/thatisuday/commando"
)

func runFontCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	fontPath := strings.TrimSpace(args["font"].Value)
	if fontPath == "" {
		fatalf("font path is required")
	}
	f := mustLoadFont(fontPath)
	fmt.Printf("Path: %s\n", fontPath)
	if err := writeFontReport(os.Stdout, f, splitCSVSpace(args["tables"].Value)); err != nil {
		fatalf("%v", err)
	}
}

func writeFontReport(w io.Writer, f *tt.FontFile, tables []string) error {
	fmt.Fprintf(w, "Type: %s\n", ttquery.FontType(f))
	names := ttquery.NameInfo(f)
	if family := names["family"]; family != "" {
		fmt.Fprintf(w, "Family: %s\n", family)
	}
	if sub := names["subfamily"]; sub != "" {
		fmt.Fprintf(w, "Subfamily: %s\n", sub)
	}
	if version := names["version"]; version != "" {
		fmt.Fprintf(w, "Version: %s\n", version)
	}
	if n, ok := ttquery.GlyphCount(f); ok {
		fmt.Fprintf(w, "Glyphs: %d\n", n)
	}
	tags := f.Directory().Tags()
	fmt.Fprintf(w, "Tables (%d of %d):", len(tags), f.Header().TableCount())
	for _, tag := range tags {
		fmt.Fprintf(w, " %s", tag.String())
	}
	fmt.Fprintln(w)
	if len(tables) > 0 {
		printSelectedTables(w, f, tables)
	}
	return nil
}

func printSelectedTables(w io.Writer, f *tt.FontFile, requested []string) {
	for _, t := range requested {
		tagName := strings.TrimSpace(t)
		if tagName == "" {
			continue
		}
		tag, ok := tt.ParseTableTag(tagName)
		if !ok {
			fmt.Fprintf(w, "table %s: not a TrueType table\n", tagName)
			continue
		}
		loc, ok := f.Directory().Get(tag)
		if !ok {
			fmt.Fprintf(w, "table %s: missing\n", tagName)
			continue
		}
		fmt.Fprintf(w, "table %s: offset=%d size=%d checksum=%#08x\n", tagName,
			loc.Offset, loc.Length, loc.Checksum)
	}
}

func runNamesCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	fontPath := strings.TrimSpace(args["font"].Value)
	if fontPath == "" {
		fatalf("font path is required")
	}
	f := mustLoadFont(fontPath)
	writeNames(os.Stdout, f, mustFlagBool(flags["all"], "all"))
}

func writeNames(w io.Writer, f *tt.FontFile, all bool) {
	if all {
		for id, value := range ttquery.NamesRange(f) {
			fmt.Fprintf(w, "%3d %s\n", id, value)
		}
		return
	}
	info := ttquery.NameInfo(f)
	keys := make([]string, 0, len(info))
	for k := range info {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "%s: %s\n", k, info[k])
	}
}
