package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/npillmayer/truetype"
	"github.com/npillmayer/truetype/tt"
	"github.com/pterm/pterm"
)

// tracer traces with key 'truetype.cli'
func tracer() tracing.Trace {
	return tracing.Select("truetype.cli")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":    "go",
		"trace.truetype.cli": "Info",
		"trace.truetype.tt":  "Error",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	fontname := flag.String("font", "", "Font to load, file path or system font name")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelError)    // will set the correct level later
	pterm.Info.Println("Welcome to TrueType CLI") // colored welcome message
	//
	// set up REPL
	repl, err := readline.New("tt > ")
	if err != nil {
		tracer().Errorf("%v", err)
		os.Exit(3)
	}
	intp := &Intp{repl: repl}
	//
	// load font to use
	if err := intp.loadFont(*fontname); err != nil { // font name provided by flag
		tracer().Errorf("%v", err)
		os.Exit(4)
	}
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	if !setTraceLevel(*tlevel, tracer(), tracing.Select("truetype.tt")) {
		tracer().Errorf("Invalid trace level: %s", *tlevel)
		os.Exit(5)
	}
	tracer().Infof("Trace level is %s", *tlevel)
	intp.REPL() // go into interactive mode
}

func setTraceLevel(s string, tracers ...tracing.Trace) bool {
	level := tracing.LevelError
	switch s {
	case "Debug":
		level = tracing.LevelDebug
	case "Info":
		level = tracing.LevelInfo
	case "Error":
	default:
		return false
	}
	for _, t := range tracers {
		t.SetTraceLevel(level)
	}
	return true
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	font  *tt.FontFile
	name  string // name of the font file
	repl  *readline.Instance
	table tt.TableTag // current table, if any
	set   bool        // table is set
}

func (intp *Intp) String() string {
	if intp == nil || !intp.set {
		return "()"
	}
	return fmt.Sprintf("( table=%s )", intp.table)
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		pterm.Println(intp.String())
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		cmd, err := parseCommand(line)
		if err != nil {
			tracer().Errorf("%v", err)
			continue
		}
		err, quit := intp.execute(cmd)
		if err != nil {
			tracer().Errorf("%v", err)
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

// --- Font Loading -----------------------------------------------------

func (intp *Intp) loadFont(fontname string) error {
	f, err := truetype.LoadFont(fontname)
	if err != nil {
		tracer().Errorf("cannot load font %s: %s", fontname, err)
		return err
	}
	intp.font, intp.name = f, fontname
	family, subfamily := truetype.FamilyName(f)
	tracer().Infof("loaded font %s %s", family, subfamily)
	pterm.Printf("font tables: %v\n", f.Directory().Tags())
	return nil
}
