// wktcat reads a WKT-CRS document from standard input (or a named
// file), parses it and writes it back out in a chosen serialization
// form. It's a thin consumer of the dispatch/serialize packages, in the
// spirit of the teacher's apps/displayrtcm3 - a small program that
// exercises the library rather than extending it.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/goblimey/go-wktcrs/dispatch"
	"github.com/goblimey/go-wktcrs/serialize"
)

func main() {
	var (
		lenient    bool
		expandSP   bool
		expandTab  bool
		useParens  bool
		oldSyntax  bool
		topIDOnly  bool
		noIDs      bool
		inputFile  string
	)
	flag.BoolVar(&lenient, "lenient", false, "parse leniently instead of strictly")
	flag.BoolVar(&expandSP, "expand", false, "re-indent output using two-space indents")
	flag.BoolVar(&expandTab, "expand-tab", false, "re-indent output using tab indents")
	flag.BoolVar(&useParens, "parens", false, "emit () instead of []")
	flag.BoolVar(&oldSyntax, "wkt1", false, "emit WKT1 legacy keywords and layout")
	flag.BoolVar(&topIDOnly, "top-id-only", false, "emit only the root object's identifier")
	flag.BoolVar(&noIDs, "no-ids", false, "suppress every identifier")
	flag.StringVar(&inputFile, "f", "", "input file (default: stdin)")
	flag.Parse()

	raw, err := readInput(inputFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "wktcat:", err)
		os.Exit(1)
	}

	obj, werr := dispatch.Parse(raw, !lenient)
	if werr != nil {
		fmt.Fprintln(os.Stderr, "wktcat:", werr.Error())
		os.Exit(1)
	}

	opts := buildOptions(expandSP, expandTab, useParens, oldSyntax, topIDOnly, noIDs)
	fmt.Println(dispatch.Emit(obj, opts))
}

func readInput(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

func buildOptions(expandSP, expandTab, useParens, oldSyntax, topIDOnly, noIDs bool) serialize.Options {
	var opts serialize.Options
	if expandSP {
		opts |= serialize.ExpandSP
	}
	if expandTab {
		opts |= serialize.ExpandTab
	}
	if useParens {
		opts |= serialize.Parens
	}
	if oldSyntax {
		opts |= serialize.OldSyntax
	}
	if topIDOnly {
		opts |= serialize.TopIDOnly
	}
	if noIDs {
		opts |= serialize.NoIDs
	}
	return opts
}
