// Command golisp is a thin wrapper around package interp: given a
// script path it reads and evaluates every top-level form in the
// file, otherwise it starts a REPL on stdin. Follows the shape of the
// teacher's own cmd entry point (birowo-yaegi/yaegi.go): flag for
// options, log for startup failures, a positional script argument.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/anselm67/scheme/interp"
	"github.com/anselm67/scheme/primitives"
)

func main() {
	flag.Usage = func() {
		fmt.Println("Usage:", os.Args[0], "[script]")
		flag.PrintDefaults()
	}
	flag.Parse()
	log.SetFlags(log.Lshortfile)

	i := interp.New(interp.Options{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr})
	i.Use(primitives.All())

	args := flag.Args()
	if len(args) == 0 {
		os.Exit(i.REPL(os.Stdin, os.Stdout, os.Stderr))
	}

	b, err := os.ReadFile(args[0])
	if err != nil {
		log.Fatal("could not read file: ", args[0])
	}
	os.Exit(evalFile(i, string(b)))
}

// evalFile reads and evaluates every top-level form in src in order,
// printing each result on its own line. A read or evaluation error is
// reported to stderr and stops the file with status 1 (unlike the
// REPL, which reports it and goes on); quit/exit stop it with their
// own status.
func evalFile(i *interp.Interpreter, src string) int {
	reader := interp.NewReader(strings.NewReader(src), i.Heap)
	for {
		v, err := reader.Read()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return 1
		}
		if reader.AtEOF() {
			return 0
		}
		result, err := i.Eval(v)
		if err != nil {
			if ee, ok := err.(*interp.ExitError); ok {
				return ee.Code
			}
			fmt.Fprintln(os.Stderr, "Error:", err)
			return 1
		}
		fmt.Println(interp.Print(i, result))
	}
}

