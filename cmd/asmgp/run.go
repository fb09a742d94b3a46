package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"

	"asmgp/config"
	"asmgp/eval"
	"asmgp/evolve"
	"asmgp/instr"
	"asmgp/ops"
	"asmgp/persist"
)

const statusUpdateInterval = 500 * time.Millisecond

func isTTY(f *os.File) bool {
	stat, err := f.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}

// runCommand drives a repair search to completion against a baseline
// assembly file, reporting progress to stdout and checkpointing each
// generation's best individual.
func runCommand(args []string) int {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	baselinePath := fs.String("baseline", "", "baseline assembly source, optionally pre-weighted by \"asmgp trace\"")
	configPath := fs.String("config", "", "engine config TOML (default: ./asmgp.toml or ~/.config/asmgp/config.toml)")
	checkpointDir := fs.String("checkpoint-dir", "", "directory for per-generation and final checkpoints (overrides config)")
	ext := fs.String("ext", "s", "file extension for checkpoint/output assembly files")
	outPath := fs.String("out", "", "path to write the final winner's assembly (default: overwrite --baseline)")
	debug := fs.Bool("debug", false, "enable debug logging to asmgp-debug.log")
	watchConfig := fs.Bool("watch-config", true, "hot-reload the config file while running")
	seed := fs.Uint64("seed", 1, "RNG seed")
	fs.Parse(args)

	if *baselinePath == "" {
		fmt.Fprintln(os.Stderr, "run: --baseline is required")
		fs.PrintDefaults()
		return 1
	}

	if *debug {
		if err := setupDebugLog("asmgp-debug.log"); err != nil {
			fmt.Fprintf(os.Stderr, "run: %v\n", err)
			return 1
		}
	}

	path := *configPath
	if path == "" {
		path = config.GetConfigPath()
	}
	engineCfg, err := config.LoadConfig(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "run: %v\n", err)
		return 1
	}
	sharedCfg := config.NewSharedConfig(engineCfg)

	if *watchConfig {
		stop, err := config.Watch(path, sharedCfg, debugLog)
		if err != nil {
			debugf("[CONFIG] watch disabled: %v", err)
		} else {
			defer stop()
		}
	}

	baseline, err := instr.ReadFile(*baselinePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "run: read baseline: %v\n", err)
		return 1
	}

	dir := *checkpointDir
	if dir == "" {
		dir = engineCfg.CheckpointDir
	}
	var cp evolve.Checkpointer
	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "run: create checkpoint dir: %v\n", err)
			return 1
		}
		cp = persist.DirCheckpointer{Dir: dir, Ext: *ext}
	}

	evCfg := eval.Config{
		Compiler:      engineCfg.Compiler,
		CompilerFlags: engineCfg.CompilerFlags,
		TestDir:       engineCfg.TestDir,
		TestGood:      engineCfg.TestGood,
		TestBad:       engineCfg.TestBad,
		GoodMult:      engineCfg.GoodMult,
		BadMult:       engineCfg.BadMult,
		TestTimeout:   time.Duration(engineCfg.TestTimeoutMS) * time.Millisecond,
	}
	ev := eval.NewEvaluator(evCfg, debugLog)

	opsCfg := ops.Config{Mode: ops.ModeDefault, MaxSectionSize: engineCfg.MaxSectionSize}
	gaCfg := evolve.Config{
		PopulationSize: engineCfg.PopulationSize,
		TournamentSize: engineCfg.TournamentSize,
		UseTournament:  engineCfg.UseTournament,
		CrossoverRate:  engineCfg.CrossoverRate,
		TargetFitness:  engineCfg.TargetFitness,
		MaxGenerations: engineCfg.MaxGenerations,
	}

	rng := rand.New(rand.NewPCG(*seed, *seed^0x9e3779b97f4a7c15))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	stopSig := make(chan os.Signal, 1)
	signal.Notify(stopSig, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-stopSig
		fmt.Println("\nstopping early, returning best individual found so far...")
		cancel()
	}()

	updates := make(chan evolve.Update, 16)
	liveEvolveConfig := func() evolve.Config {
		c := sharedCfg.Get()
		return evolve.Config{
			PopulationSize: gaCfg.PopulationSize,
			TournamentSize: c.TournamentSize,
			UseTournament:  c.UseTournament,
			CrossoverRate:  c.CrossoverRate,
			TargetFitness:  c.TargetFitness,
			MaxGenerations: c.MaxGenerations,
		}
	}

	var best instr.Individual
	done := make(chan instr.Individual)
	go func() {
		done <- evolve.RunLive(ctx, []instr.Individual{baseline}, gaCfg, liveEvolveConfig, opsCfg, ev, rng, updates, cp)
	}()

	printProgress(updates)
	best = <-done

	fmt.Printf("\nFinished: best fitness %.4f over %d trials (%d total evaluations)\n",
		best.Fitness, best.Trials, ev.Count())

	winnerPath := *outPath
	if winnerPath == "" {
		winnerPath = *baselinePath
	}
	if err := instr.WriteFile(winnerPath, best); err != nil {
		fmt.Fprintf(os.Stderr, "run: write winner: %v\n", err)
		return 1
	}
	if dir != "" {
		if err := persist.SaveFinal(dir, *ext, best); err != nil {
			debugf("[CHECKPOINT] failed to save final winner: %v", err)
		}
	}

	fmt.Printf("Wrote best individual to %s\n", winnerPath)
	return 0
}

// printProgress renders one line per generation, colorized by whether
// fitness improved, and drains updates until the channel closes.
func printProgress(updates <-chan evolve.Update) {
	improved := color.New(color.FgGreen, color.Bold).SprintFunc()
	plain := color.New(color.FgWhite).SprintFunc()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer w.Flush()

	best := -1.0
	startTime := time.Now()
	for u := range updates {
		elapsed := time.Since(startTime).Round(time.Millisecond)
		line := fmt.Sprintf("%s\tgen %d\tbest %s\tmean %.4f\ttrials %d",
			elapsed, u.Generation, formatMinimalPrecision(best, u.BestFitness), u.MeanFitness, u.BestTrials)

		if u.BestFitness > best {
			best = u.BestFitness
			fmt.Fprintln(w, improved(line))
			w.Flush()
		} else {
			fmt.Fprintln(w, plain(line))
		}
	}
}
