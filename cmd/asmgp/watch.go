package main

import (
	"flag"
	"fmt"
	"os"

	"asmgp/dashboard"
)

// watchCommand opens the read-only terminal dashboard on a checkpoint
// directory produced by a previous or ongoing "asmgp run".
func watchCommand(args []string) int {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	dir := fs.String("checkpoint-dir", "", "checkpoint directory to tail")
	fs.Parse(args)

	if *dir == "" {
		fmt.Fprintln(os.Stderr, "watch: --checkpoint-dir is required")
		fs.PrintDefaults()
		return 1
	}

	if err := dashboard.Run(*dir); err != nil {
		fmt.Fprintf(os.Stderr, "watch: %v\n", err)
		return 1
	}
	return 0
}
