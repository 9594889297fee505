package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/born-ml/scalar/internal/gradcheck"
)

func runCheck(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(stdout)
	tol := fs.Float64("tol", 1e-5, "maximum absolute difference")
	step := fs.Float64("step", 1e-6, "finite-difference step")

	if err := fs.Parse(args); err != nil {
		return err
	}

	failed := 0
	for _, ex := range examples {
		res, err := gradcheck.Check(ex.build, ex.at, gradcheck.WithTolerance(*tol), gradcheck.WithStep(*step))
		status := "ok"
		if err != nil {
			status = "FAIL"
			failed++
		}
		fmt.Fprintf(stdout, "%-4s %-18s analytic=%v numeric=%.6g maxdiff=%.3g\n",
			status, ex.name, res.Analytic, res.Numeric, res.MaxAbsDiff)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d gradient checks failed", failed, len(examples))
	}
	return nil
}
