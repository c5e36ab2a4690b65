/*
File    : lisp-mix/cmd/lispmix/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package main

import (
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/akashmaji946/lisp-mix/environment"
	"github.com/akashmaji946/lisp-mix/eval"
	"github.com/akashmaji946/lisp-mix/internal/facade"
	"github.com/akashmaji946/lisp-mix/parser"
)

var (
	blueColor  = color.New(color.FgBlue)
	greenColor = color.New(color.FgGreen)
)

// repl is an interactive Read-Eval-Print loop over a single persistent
// Environment, so a define made on one line is visible on the next.
type repl struct {
	banner  string
	version string
	author  string
	line    string
	license string
	prompt  string
}

func newRepl(banner, version, author, line, license, prompt string) *repl {
	return &repl{banner: banner, version: version, author: author, line: line, license: license, prompt: prompt}
}

func (r *repl) printBanner(w io.Writer) {
	blueColor.Fprintf(w, "%s\n", r.line)
	greenColor.Fprintf(w, "%s\n", r.banner)
	blueColor.Fprintf(w, "%s\n", r.line)
	yellowColor.Fprintln(w, "Version: "+r.version+" | Author: "+r.author+" | License: "+r.license)
	blueColor.Fprintf(w, "%s\n", r.line)
	cyanColor.Fprintln(w, "Type an expression and press enter. Type '.exit' to quit.")
	blueColor.Fprintf(w, "%s\n", r.line)
}

func (r *repl) start(in io.Reader, out io.Writer) {
	r.printBanner(out)

	rl, err := readline.New(r.prompt)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[REPL ERROR] %v\n", err)
		os.Exit(1)
	}
	defer rl.Close()

	env := environment.New()
	evaluator := eval.NewEvaluator()
	evaluator.SetWriter(out)

	for {
		input, err := rl.Readline()
		if err != nil {
			io.WriteString(out, "Good bye!\n")
			return
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if input == ".exit" {
			io.WriteString(out, "Good bye!\n")
			return
		}

		rl.SaveHistory(input)
		r.evalLine(out, input, evaluator, env)
	}
}

func (r *repl) evalLine(out io.Writer, input string, evaluator *eval.Evaluator, env *environment.Environment) {
	defer func() {
		if rec := recover(); rec != nil {
			redColor.Fprintf(out, "[RUNTIME ERROR] %v\n", rec)
		}
	}()

	tree, err := parser.Parse(input)
	if err != nil {
		redColor.Fprintf(out, "%s\n", err)
		return
	}

	v, err := evaluator.Eval(tree, env)
	if err != nil {
		redColor.Fprintf(out, "%s\n", err)
		return
	}

	if result := facade.Display(v); result != "" {
		yellowColor.Fprintf(out, "%s\n", result)
	}
}
