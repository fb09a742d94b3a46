package main

import (
	"flag"
	"fmt"
	"os"

	"asmgp/instr"
	"asmgp/trace"
)

// traceCommand applies a pair of execution traces to a baseline assembly
// file as good/bad weight maps and writes the weighted individual back out
// in the same file format, ready for "asmgp run --baseline".
func traceCommand(args []string) int {
	fs := flag.NewFlagSet("trace", flag.ExitOnError)
	program := fs.String("program", "", "baseline assembly source file")
	good := fs.String("good", "", "execution trace from a passing run")
	bad := fs.String("bad", "", "execution trace from a failing run")
	out := fs.String("out", "", "output path (default: overwrite --program)")
	fs.Parse(args)

	if *program == "" || *good == "" || *bad == "" {
		fmt.Fprintln(os.Stderr, "trace: --program, --good, and --bad are required")
		fs.PrintDefaults()
		return 1
	}

	ind, err := instr.ReadFile(*program)
	if err != nil {
		fmt.Fprintf(os.Stderr, "trace: read program: %v\n", err)
		return 1
	}

	goodHist, err := trace.ReadHistogram(*good)
	if err != nil {
		fmt.Fprintf(os.Stderr, "trace: %v\n", err)
		return 1
	}
	badHist, err := trace.ReadHistogram(*bad)
	if err != nil {
		fmt.Fprintf(os.Stderr, "trace: %v\n", err)
		return 1
	}

	maxIndex := len(ind.Representation)

	// The good weight map favors instructions exercised by the passing
	// trace but not the failing one: the genuinely-good-only instructions
	// worth copying from during append.
	diff := trace.Difference(goodHist, badHist)
	goodWeights := trace.Smooth(diff, maxIndex)
	badWeights := trace.Smooth(badHist, maxIndex)

	instr.ApplyPath(&ind, instr.GoodWeightKind, goodWeights)
	instr.ApplyPath(&ind, instr.BadWeightKind, badWeights)

	outPath := *out
	if outPath == "" {
		outPath = *program
	}
	if err := instr.WriteFile(outPath, ind); err != nil {
		fmt.Fprintf(os.Stderr, "trace: write output: %v\n", err)
		return 1
	}

	fmt.Printf("Applied trace weights to %d instructions, wrote %s\n", len(ind.Representation), outPath)
	return 0
}
