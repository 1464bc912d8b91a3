package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/truetype/internal/fontload"
	"github.com/npillmayer/truetype/tt"
	"github.com/thatisuday/commando"
)

func runDumpCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	fontPath := strings.TrimSpace(args["font"].Value)
	if fontPath == "" {
		fatalf("font path is required")
	}
	fb, err := fontload.Load(fontPath)
	if err != nil {
		fatalf("cannot load font %s: %v", fontPath, err)
	}
	tag, ok := tt.ParseTableTag(strings.TrimSpace(args["table"].Value))
	if !ok {
		fatalf("not a TrueType table: %q", args["table"].Value)
	}
	if err := dumpTable(os.Stdout, fb.Binary, tag, mustFlagInt(flags["max"], "max")); err != nil {
		fatalf("%v", err)
	}
}

// dumpTable locates a table through the font's directory and writes a hex dump
// of its bytes. Only the offset header and the directory are decoded.
func dumpTable(w io.Writer, font []byte, tag tt.TableTag, limit int) error {
	r := tt.NewBytesReader(font)
	h, err := tt.ReadOffsetHeader(r)
	if err != nil {
		return err
	}
	dir, err := tt.ReadDirectory(r, h.TableCount())
	if err != nil {
		return err
	}
	loc, err := dir.Lookup(tag)
	if err != nil {
		return err
	}
	n := int(loc.Length)
	if limit > 0 && n > limit {
		n = limit
	}
	if err := r.SeekAbsolute(int64(loc.Offset)); err != nil {
		return err
	}
	b, err := r.ReadExact(n)
	if err != nil {
		return fmt.Errorf("table %s at %v: %w", tag, loc, err)
	}
	fmt.Fprintf(w, "table %s %v, %d bytes shown\n", tag, loc, n)
	_, err = io.WriteString(w, hex.Dump(b))
	return err
}
