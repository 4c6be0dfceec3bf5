/*
File   : willow/cmd/willow/main.go
Package: main
*/

// Command willow is the entry point for the Willow interpreter: an
// interactive REPL by default, or a one-shot file runner when given a
// source path. Grounded on the teacher's main/main.go (mode dispatch on
// os.Args, --help/--version handling, executeFileWithRecovery's
// parse-then-evaluate-then-report-exit-code shape).
package main

import (
	"os"

	"github.com/arana-dev/willow/eval"
	"github.com/arana-dev/willow/parser"
	"github.com/arana-dev/willow/repl"
	"github.com/fatih/color"
)

const (
	version = "v0.1.0"
	author  = "arana-dev"
	license = "MIT"
	prompt  = "\n>> "
)

var banner = `
 ██╗    ██╗██╗██╗     ██╗      ██████╗ ██╗    ██╗
 ██║    ██║██║██║     ██║     ██╔═══██╗██║    ██║
 ██║ █╗ ██║██║██║     ██║     ██║   ██║██║ █╗ ██║
 ██║███╗██║██║██║     ██║     ██║   ██║██║███╗██║
 ╚███╔███╔╝██║███████╗███████╗╚██████╔╝╚███╔███╔╝
  ╚══╝╚══╝ ╚═╝╚══════╝╚══════╝ ╚═════╝  ╚══╝╚══╝
`

const line = "----------------------------------------------------------------"

var (
	redColor  = color.New(color.FgRed)
	cyanColor = color.New(color.FgCyan)
)

func main() {
	if len(os.Args) > 1 {
		switch arg := os.Args[1]; arg {
		case "--help", "-h":
			showHelp()
		case "--version", "-v":
			showVersion()
		default:
			runFile(arg)
		}
		return
	}

	r := repl.New(banner, version, author, line, license, prompt)
	r.Start(os.Stdout)
}

func showHelp() {
	cyanColor.Println("Willow - a small expression-oriented scripting language")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	cyanColor.Println("  willow                    Start interactive REPL mode")
	cyanColor.Println("  willow <path-to-file>     Execute a Willow source file")
	cyanColor.Println("  willow --help             Display this help message")
	cyanColor.Println("  willow --version          Display version information")
}

func showVersion() {
	cyanColor.Printf("Willow %s (license: %s, author: %s)\n", version, license, author)
}

// runFile reads and executes a single Willow source file. A file that
// reads cleanly but fails to parse, or that evaluates to an error,
// exits 1; a program that calls the `exit` builtin terminates the
// process directly from inside that call with its own code.
func runFile(path string) {
	source, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] could not read file %q: %v\n", path, err)
		os.Exit(1)
	}

	p := parser.New(string(source))
	root := p.Parse()

	if p.HasErrors() {
		for _, msg := range p.Errors() {
			redColor.Fprintf(os.Stderr, "[PARSE ERROR] %s\n", msg)
		}
		os.Exit(1)
	}

	e := eval.New()
	result := e.Run(root)
	if result != nil && result.Kind() == "error" {
		redColor.Fprintf(os.Stderr, "%s\n", result.Display())
		os.Exit(1)
	}
}
