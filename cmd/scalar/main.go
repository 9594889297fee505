// Package main provides the scalar autodiff CLI.
package main

import (
	"fmt"
	"io"
	"os"
)

const version = "v0.1.0-dev"

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	if len(args) == 0 {
		usage(stdout)
		return nil
	}

	switch args[0] {
	case "version":
		fmt.Fprintf(stdout, "scalar %s\n", version)
		return nil
	case "train":
		return runTrain(args[1:], stdout)
	case "graph":
		return runGraph(args[1:], stdout)
	case "check":
		return runCheck(args[1:], stdout)
	case "help", "-h", "--help":
		usage(stdout)
		return nil
	default:
		usage(stdout)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "scalar - reverse-mode autodiff over scalars")
	fmt.Fprintf(w, "Version: %s\n\n", version)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  version    Show version")
	fmt.Fprintln(w, "  train      Train an MLP on y = x1 + x2")
	fmt.Fprintln(w, "  graph      Build example graphs and print their gradients")
	fmt.Fprintln(w, "  check      Compare example gradients with finite differences")
}
