/*
File   : willow/repl/repl.go
Package: repl
*/

// Package repl implements Willow's Read-Eval-Print Loop: line editing
// and persistent history via chzyer/readline, colored feedback via
// fatih/color, one shared eval.Evaluator across the whole session so
// `let` bindings and functions persist line to line.
//
// Grounded on the teacher's repl.Repl (repl/repl.go): same struct shape
// (Banner/Version/Author/Line/License/Prompt), same PrintBannerInfo/
// Start/executeWithRecovery split, same five-color palette — except
// successful results print in magenta instead of the teacher's yellow,
// and history is no longer in-memory only: HistoryFile wires
// readline.Config.HistoryFile to a persistent file on disk, and vi-style
// editing is turned on.
package repl

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/arana-dev/willow/eval"
	"github.com/arana-dev/willow/parser"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

var (
	blueColor    = color.New(color.FgBlue)
	magentaColor = color.New(color.FgMagenta)
	redColor     = color.New(color.FgRed)
	greenColor   = color.New(color.FgGreen)
	cyanColor    = color.New(color.FgCyan)
)

// historyEnvVar names the environment variable that overrides the
// default history file location.
const historyEnvVar = "WILLOW_HISTORY"

// defaultHistoryFileName is the history file created under $HOME when
// WILLOW_HISTORY is unset.
const defaultHistoryFileName = ".willow_history"

// Repl holds the configuration for one interactive session.
type Repl struct {
	Banner      string
	Version     string
	Author      string
	Line        string
	License     string
	Prompt      string
	HistoryFile string // resolved by ResolveHistoryFile; empty disables persistence
}

// New creates a Repl with its history file resolved from WILLOW_HISTORY
// or the $HOME default.
func New(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{
		Banner:      banner,
		Version:     version,
		Author:      author,
		Line:        line,
		License:     license,
		Prompt:      prompt,
		HistoryFile: ResolveHistoryFile(),
	}
}

// ResolveHistoryFile returns the path readline should persist history
// to: WILLOW_HISTORY if set, otherwise $HOME/.willow_history. If $HOME
// can't be determined either, history is disabled (empty string).
func ResolveHistoryFile() string {
	if path := os.Getenv(historyEnvVar); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, defaultHistoryFileName)
}

// PrintBannerInfo writes the startup banner and usage hints to writer.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	magentaColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to Willow!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the main loop until the user exits, Ctrl+D is pressed, or
// readline itself fails to initialize.
func (r *Repl) Start(writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:      r.Prompt,
		HistoryFile: r.HistoryFile,
		VimMode:     true,
	})
	if err != nil {
		fmt.Fprintf(writer, "[REPL ERROR] %v\n", err)
		return
	}
	defer rl.Close()

	evaluator := eval.NewWithWriters(writer, writer)

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		rl.SaveHistory(line)
		r.executeWithRecovery(writer, line, evaluator)
	}
}

// executeWithRecovery parses and evaluates one line, recovering from any
// panic so a single bad input can't crash the session.
func (r *Repl) executeWithRecovery(writer io.Writer, line string, evaluator *eval.Evaluator) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[RUNTIME ERROR] %v\n", recovered)
		}
	}()

	p := parser.New(line)
	root := p.Parse()

	if p.HasErrors() {
		for _, msg := range p.Errors() {
			redColor.Fprintf(writer, "%s\n", msg)
		}
		return
	}

	result := evaluator.Run(root)
	if result == nil {
		return
	}
	if result.Kind() == "error" {
		redColor.Fprintf(writer, "%s\n", result.Display())
		return
	}
	magentaColor.Fprintf(writer, "%s\n", result.Display())
}
