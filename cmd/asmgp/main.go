// ABOUTME: Entry point for the asmgp repair engine
// ABOUTME: Dispatches to the run, trace, and watch subcommands by flag.Args()[0]

// Package main is the asmgp command: a genetic-programming assembly repair
// engine. Subcommands: "run" drives a repair search to completion, "trace"
// turns an execution trace into a weight map applied to a baseline, "watch"
// opens a read-only dashboard on a checkpoint directory.
package main

import (
	"fmt"
	"os"
)

func main() {
	os.Exit(run())
}

func run() int {
	if len(os.Args) < 2 {
		printUsage()
		return 1
	}

	switch os.Args[1] {
	case "run":
		return runCommand(os.Args[2:])
	case "trace":
		return traceCommand(os.Args[2:])
	case "watch":
		return watchCommand(os.Args[2:])
	case "-h", "-help", "--help", "help":
		printUsage()
		return 0
	default:
		fmt.Fprintf(os.Stderr, "unknown subcommand %q\n\n", os.Args[1])
		printUsage()
		return 1
	}
}

func printUsage() {
	fmt.Println("Usage: asmgp <run|trace|watch> [flags]")
	fmt.Println()
	fmt.Println("  run    drive a repair search to completion")
	fmt.Println("  trace  apply good/bad execution traces to a baseline as weight maps")
	fmt.Println("  watch  open a read-only dashboard on a checkpoint directory")
}
