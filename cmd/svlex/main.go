/*
File    : svlex/cmd/svlex/main.go
Author  : svlex contributors
*/

// Command svlex is a thin CLI driver: for each positional input file it
// tokenizes the buffer and writes one DumpToken line per token to
// standard error until EOF, mirroring original_source's driver.cpp
// per-file loop.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/svlex/svlex/preprocessor"
	"github.com/svlex/svlex/token"
)

var (
	dumpRepr = flag.Bool("dump-repr", false, "use the structured repr-based dump instead of the plain DumpToken line")
	noColor  = flag.Bool("no-color", false, "disable ANSI color in diagnostic output")
)

func main() {
	flag.Parse()
	if *noColor {
		color.NoColor = true
	}

	files := flag.Args()
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "usage: svlex [-dump-repr] [-no-color] file...")
		os.Exit(2)
	}

	exitCode := 0
	for _, path := range files {
		if err := processFile(path); err != nil {
			fmt.Fprintf(os.Stderr, "svlex: %s: %v\n", path, err)
			exitCode = 1
		}
	}
	os.Exit(exitCode)
}

func processFile(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	pp := preprocessor.NewPreprocessor()
	pp.SetDiagnosticSink(func(d preprocessor.Diagnostic) {
		preprocessor.DumpDiagnostic(os.Stderr, d)
	})
	pp.EnterMainSourceFile(src)

	for {
		tok := pp.Next()
		if *dumpRepr {
			pp.DumpTokenRepr(os.Stderr, tok)
		} else {
			pp.DumpTokenColor(os.Stderr, tok)
		}
		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}
