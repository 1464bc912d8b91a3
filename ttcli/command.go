package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pterm/pterm"
)

// Op is a single step of a command, e.g. "table:name".
type Op struct {
	code   int
	arg    string
	format string
}

// Command is a line of input, split into steps.
type Command struct {
	count int
	op    []Op
}

const NOOP = -1
const (
	// op-code QUIT will not have arguments
	QUIT int = iota
	// op-codes below may have arguments
	HELP
	HEADER
	TABLES
	TABLE
	HEAD
	NAME
	CMAP
	MAXP
	HHEA
	METRICS
)

var opMap = map[string]int{
	"quit":    QUIT,
	"help":    HELP,
	"header":  HEADER,
	"tables":  TABLES,
	"table":   TABLE,
	"head":    HEAD,
	"name":    NAME,
	"names":   NAME,
	"cmap":    CMAP,
	"maxp":    MAXP,
	"hhea":    HHEA,
	"metrics": METRICS,
}

var opNames = []string{
	"quit",
	"help",
	"header",
	"tables",
	"table",
	"head",
	"name",
	"cmap",
	"maxp",
	"hhea",
	"metrics",
}

var errEmptyCommand = errors.New("empty command")

// parseCommand splits a line into steps separated by blanks. Each step has the
// form "op[:arg[:format]]", e.g. "name:1" or "table:head". Unknown ops are
// turned into HELP.
func parseCommand(line string) (*Command, error) {
	steps := strings.Fields(line)
	if len(steps) == 0 {
		return nil, errEmptyCommand
	}
	cmd := &Command{count: len(steps), op: make([]Op, len(steps))}
	for i, step := range steps {
		c := strings.Split(step, ":")
		code, ok := opMap[strings.ToLower(c[0])]
		if !ok {
			code = HELP
		}
		cmd.op[i] = Op{code: code, arg: getOptArg(c, 1), format: getOptArg(c, 2)}
		if code == QUIT {
			cmd.op = cmd.op[:i+1]
			cmd.count = i + 1
			break
		}
		if cmd.op[i].arg == "" {
			tracer().Debugf("%s", opNames[code])
		} else {
			tracer().Debugf("%s: looking for '%s'", opNames[code], cmd.op[i].arg)
		}
	}
	return cmd, nil
}

var commandFn = map[int]func(*Intp, *Op) (error, bool){
	QUIT:    quitOp,
	HELP:    helpOp,
	HEADER:  headerOp,
	TABLES:  tablesOp,
	TABLE:   tableOp,
	HEAD:    headOp,
	NAME:    nameOp,
	CMAP:    cmapOp,
	MAXP:    maxpOp,
	HHEA:    hheaOp,
	METRICS: metricsOp,
}

func (intp *Intp) execute(cmd *Command) (err error, stop bool) {
	tracer().Debugf("cmd = %v", cmd.op)
	for i := range cmd.op {
		c := &cmd.op[i]
		f, ok := commandFn[c.code]
		if !ok {
			pterm.Error.Printf("unknown command code: %d\n", c.code)
			return nil, false
		}
		err, stop = f(intp, c)
		if err != nil {
			pterm.Error.Println(err)
			return
		}
		if stop {
			return
		}
	}
	return
}

func quitOp(intp *Intp, op *Op) (error, bool) {
	pterm.Println("Goodbye!")
	return nil, true
}

var errNoFont = errors.New("no font loaded")

func (intp *Intp) checkFont() error {
	if intp.font == nil {
		return errNoFont
	}
	return nil
}

func getOptArg(s []string, inx int) string {
	if len(s) > inx {
		return s[inx]
	}
	return ""
}

func (op *Op) hasArg() (string, bool) {
	if op.arg == "" {
		return "", false
	}
	return op.arg, true
}

func (op *Op) String() string {
	if op.code < 0 || op.code >= len(opNames) {
		return fmt.Sprintf("op(%d)", op.code)
	}
	if op.arg == "" {
		return opNames[op.code]
	}
	return opNames[op.code] + ":" + op.arg
}
