package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	u "github.com/araddon/gou"

	"dfatool/internal/render"
	"dfatool/internal/session"
)

func main() {
	outFile := flag.String("o", "-", "output file, - for stdout")
	minimize := flag.Bool("minimize", false, "minimize before drawing")
	logLevel := flag.String("loglevel", "warn", "log level")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: dfadot [-o out.dot] [-minimize] FILE.jff|FILE.dfa")
		flag.PrintDefaults()
		os.Exit(2)
	}
	u.SetupLogging(*logLevel)
	u.SetColorIfTerminal()

	d, err := session.LoadFile(flag.Arg(0))
	if err != nil {
		u.Errorf("%v", err)
		os.Exit(1)
	}
	if *minimize {
		before := d.NumStates()
		d.Minimize()
		u.Infof("minimized %d -> %d states", before, d.NumStates())
	}

	var w io.Writer = os.Stdout
	if *outFile != "-" {
		f, err := os.Create(*outFile)
		if err != nil {
			u.Errorf("cannot create %s: %v", *outFile, err)
			os.Exit(1)
		}
		defer f.Close()
		w = f
	}
	if err := render.WriteDot(w, d); err != nil {
		u.Errorf("%v", err)
		os.Exit(1)
	}
	if *outFile != "-" {
		fmt.Printf("DOT written to %s\n", *outFile)
	}
}
