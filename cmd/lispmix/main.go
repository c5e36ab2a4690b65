/*
File    : lisp-mix/cmd/lispmix/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Command lispmix is the entry point for the lisp-mix interpreter. With
// no arguments it starts an interactive REPL over a single persistent
// environment; given a file path it evaluates that file once and
// prints the result.
package main

import (
	"os"

	"github.com/fatih/color"
)

var (
	redColor    = color.New(color.FgRed)
	cyanColor   = color.New(color.FgCyan)
	yellowColor = color.New(color.FgYellow)
)

const (
	version = "v1.0.0"
	author  = "akashmaji(@iisc.ac.in)"
	license = "MIT"
	prompt  = "lisp-mix >>> "
	line    = "----------------------------------------------------------------"
	banner = "" +
		"   lisp-mix\n" +
		"   a small parenthesized-prefix expression interpreter\n"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--help", "-h":
			showHelp()
			return
		case "--version", "-v":
			showVersion()
			return
		default:
			runFile(os.Args[1])
			return
		}
	}

	r := newRepl(banner, version, author, line, license, prompt)
	r.start(os.Stdin, os.Stdout)
}

func showHelp() {
	cyanColor.Println("lisp-mix - a small parenthesized-prefix expression interpreter")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  lispmix                    Start interactive REPL mode")
	yellowColor.Println("  lispmix <path-to-file>     Evaluate a lisp-mix source file")
	yellowColor.Println("  lispmix --help             Display this help message")
	yellowColor.Println("  lispmix --version          Display version information")
	cyanColor.Println("")
	cyanColor.Println("REPL COMMANDS:")
	yellowColor.Println("  .exit                      Exit the REPL")
}

func showVersion() {
	cyanColor.Println("lisp-mix - a small parenthesized-prefix expression interpreter")
	cyanColor.Printf("Version: %s\n", version)
	cyanColor.Printf("License: %s\n", license)
	cyanColor.Printf("Author : %s\n", author)
}

func runFile(path string) {
	src, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] could not read file %q: %v\n", path, err)
		os.Exit(1)
	}
	executeFileWithRecovery(string(src))
}
