// Package eval compiles and scores individuals against a pair of oracle
// scripts, memoizing fitness by the structural hash of an individual's
// representation so identical repair attempts are never paid for twice.
package eval

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"sync/atomic"

	"asmgp/instr"
)

// Evaluator is the only stateful piece of the evaluation pipeline: a
// fitness cache and a trial counter, both instance fields rather than
// package globals so callers can run independent evaluators in tests.
type Evaluator struct {
	cfg     Config
	cache   *fitnessCache
	counter atomic.Int64
	logger  *log.Logger
}

// NewEvaluator builds an Evaluator. A nil logger discards debug output, so
// callers only pay for logging once --debug wires a real one in.
func NewEvaluator(cfg Config, logger *log.Logger) *Evaluator {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Evaluator{cfg: cfg, cache: newFitnessCache(), logger: logger}
}

// Count returns the number of Evaluate calls made so far (cache hits included).
func (e *Evaluator) Count() int64 { return e.counter.Load() }

// Evaluate compiles and scores ind in place, setting Compile, Reused,
// Fitness, Scored, and Trials. It never returns an error for a bad
// individual — a failed compile or a timed-out oracle simply scores 0; the
// only errors surfaced are evaluator-infrastructure failures (e.g. unable
// to create a scratch directory).
func (e *Evaluator) Evaluate(ctx context.Context, ind *instr.Individual) error {
	ind.Trials = e.counter.Add(1)

	key := structuralKey(*ind)
	if fitness, hit := e.cache.Get(key); hit {
		ind.Compile = ""
		ind.Reused = true
		ind.Fitness = fitness
		ind.Scored = true
		return nil
	}
	ind.Reused = false

	workDir, err := os.MkdirTemp(e.cfg.TestDir, "asmgp-eval-")
	if err != nil {
		return fmt.Errorf("create evaluation workdir: %w", err)
	}
	defer os.RemoveAll(workDir)

	binPath, err := compile(ctx, e.cfg, *ind, workDir)
	if err != nil {
		e.logger.Printf("compile failed: %v", err)
		ind.Compile = ""
		ind.Fitness = 0
		ind.Scored = true
		e.cache.Set(key, 0)
		return nil
	}
	ind.Compile = binPath

	good := runOracle(ctx, e.cfg, e.cfg.TestGood, binPath, e.cfg.GoodMult, workDir)
	bad := runOracle(ctx, e.cfg, e.cfg.TestBad, binPath, e.cfg.BadMult, workDir)

	ind.Fitness = good + bad
	ind.Scored = true
	e.cache.Set(key, ind.Fitness)
	return nil
}
