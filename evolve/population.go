package evolve

import (
	"context"
	"runtime"

	"asmgp/eval"
	"asmgp/instr"
	"asmgp/ops"
	"asmgp/seq"
)

// InitialPopulation is the baselines themselves plus enough mutated copies
// of a randomly picked baseline to fill cfg.PopulationSize, all evaluated in
// parallel over a worker pool sized to the available CPUs.
func InitialPopulation(ctx context.Context, baselines []instr.Individual, cfg Config, opsCfg ops.Config, ev *eval.Evaluator, rng seq.RNG) []instr.Individual {
	pop := make([]instr.Individual, 0, cfg.PopulationSize)
	pop = append(pop, baselines...)
	for len(pop) < cfg.PopulationSize {
		picked := baselines[rng.IntN(len(baselines))]
		pop = append(pop, ops.Mutate(picked, opsCfg, rng))
	}
	if len(pop) > cfg.PopulationSize {
		pop = pop[:cfg.PopulationSize]
	}

	evaluateAll(ctx, pop, ev)
	return pop
}

// evaluateAll scores every individual in place, in parallel, one lane per
// available CPU. Compiling and running a candidate's test suite dominates
// the cost of a generation, so fanning evaluations out is what keeps
// population sizes in the hundreds tractable.
func evaluateAll(ctx context.Context, pop []instr.Individual, ev *eval.Evaluator) {
	if len(pop) == 0 {
		return
	}
	p := newEvalPool(runtime.NumCPU(), len(pop))
	defer p.close()

	for i := range pop {
		i := i
		p.submit(func() {
			_ = ev.Evaluate(ctx, &pop[i])
		})
	}
	p.wait()
}
