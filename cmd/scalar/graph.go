package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/born-ml/scalar/internal/autodiff"
)

func runGraph(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("graph", flag.ContinueOnError)
	fs.SetOutput(stdout)
	trace := fs.Bool("trace", false, "dump every node of the graph after backward")
	only := fs.String("expr", "", "run a single example by name")

	if err := fs.Parse(args); err != nil {
		return err
	}

	selected := examples
	if *only != "" {
		ex, ok := findExample(*only)
		if !ok {
			return fmt.Errorf("unknown example %q", *only)
		}
		selected = []example{ex}
	}

	for i, ex := range selected {
		if i > 0 {
			fmt.Fprintln(stdout)
		}

		leaves := make([]*autodiff.Value, len(ex.at))
		for j, v := range ex.at {
			leaves[j] = autodiff.New(v)
		}
		out := ex.build(leaves)
		out.Backward()

		fmt.Fprintf(stdout, "%s = %g\n", ex.name, out.Data())
		for j, leaf := range leaves {
			fmt.Fprintf(stdout, "  d/d%s = %g\n", ex.names[j], leaf.Grad())
		}

		if *trace {
			if err := autodiff.Trace(stdout, out); err != nil {
				return err
			}
		}
	}

	return nil
}
