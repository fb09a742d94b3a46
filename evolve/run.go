package evolve

import (
	"context"
	"log"
	"math"

	"asmgp/eval"
	"asmgp/instr"
	"asmgp/ops"
	"asmgp/seq"
)

// Run drives the evolutionary loop to completion: it terminates when the
// best individual reaches cfg.TargetFitness or cfg.MaxGenerations elapses,
// whichever comes first, and always returns some best individual. updates
// and cp are both optional (nil is fine) and receive one message per
// generation.
func Run(ctx context.Context, baselines []instr.Individual, cfg Config, opsCfg ops.Config, ev *eval.Evaluator, rng seq.RNG, updates chan<- Update, cp Checkpointer) instr.Individual {
	return runLoop(ctx, baselines, cfg, nil, opsCfg, ev, rng, updates, cp)
}

// RunLive behaves like Run but re-reads the tunable fields of cfg from live
// before spawning each generation's children, the way an operator retunes
// CrossoverRate, TournamentSize, UseTournament, or TargetFitness mid-run
// through a hot-reloaded config.SharedConfig. PopulationSize is taken once
// from the initial cfg and never revisited — it's a structural parameter
// fixed at population construction, not a live-tunable one.
func RunLive(ctx context.Context, baselines []instr.Individual, cfg Config, live func() Config, opsCfg ops.Config, ev *eval.Evaluator, rng seq.RNG, updates chan<- Update, cp Checkpointer) instr.Individual {
	return runLoop(ctx, baselines, cfg, live, opsCfg, ev, rng, updates, cp)
}

func runLoop(ctx context.Context, baselines []instr.Individual, cfg Config, live func() Config, opsCfg ops.Config, ev *eval.Evaluator, rng seq.RNG, updates chan<- Update, cp Checkpointer) instr.Individual {
	rep := &reporter{ch: updates}
	defer rep.close()

	pop := InitialPopulation(ctx, baselines, cfg, opsCfg, ev, rng)
	best := bestOf(pop)

	for generation := 0; best.Fitness < cfg.TargetFitness && generation < cfg.MaxGenerations; generation++ {
		select {
		case <-ctx.Done():
			return best
		default:
		}

		if live != nil {
			next := live()
			cfg.TournamentSize = next.TournamentSize
			cfg.UseTournament = next.UseTournament
			cfg.CrossoverRate = next.CrossoverRate
			cfg.TargetFitness = next.TargetFitness
			cfg.MaxGenerations = next.MaxGenerations
		}

		children := spawnChildren(pop, cfg, opsCfg, rng)
		evaluateAll(ctx, children, ev)

		combined := make([]instr.Individual, 0, len(pop)+len(children))
		combined = append(combined, pop...)
		combined = append(combined, children...)
		pop = Select(combined, cfg.PopulationSize, cfg, rng)

		genBest := bestOf(pop)
		if genBest.Fitness > best.Fitness {
			best = genBest
		}

		rep.send(Update{
			Generation:  generation,
			MeanFitness: meanFitness(pop),
			BestFitness: genBest.Fitness,
			BestTrials:  genBest.Trials,
			Best:        genBest,
		})

		if cp != nil {
			if err := cp.Save(generation, genBest); err != nil {
				log.Printf("[CHECKPOINT] generation %d: %v", generation, err)
			}
		}
	}

	return best
}

// spawnChildren produces one generation's worth of candidate children:
// round(CrossoverRate*PopulationSize) via crossover of selected pairs, the
// remainder via mutation of selected survivors.
func spawnChildren(pop []instr.Individual, cfg Config, opsCfg ops.Config, rng seq.RNG) []instr.Individual {
	nCrossover := int(math.Round(cfg.CrossoverRate * float64(cfg.PopulationSize)))
	if nCrossover > cfg.PopulationSize {
		nCrossover = cfg.PopulationSize
	}
	nMutate := cfg.PopulationSize - nCrossover

	children := make([]instr.Individual, 0, cfg.PopulationSize)
	for i := 0; i < nCrossover; i++ {
		parents := Select(pop, 2, cfg, rng)
		children = append(children, ops.CrossoverNormal(parents[0], parents[1], rng))
	}
	for i := 0; i < nMutate; i++ {
		survivor := Select(pop, 1, cfg, rng)[0]
		children = append(children, ops.Mutate(survivor, opsCfg, rng))
	}
	return children
}

func bestOf(pop []instr.Individual) instr.Individual {
	best := pop[0]
	for _, ind := range pop[1:] {
		if ind.Fitness > best.Fitness {
			best = ind
		}
	}
	return best
}

func meanFitness(pop []instr.Individual) float64 {
	if len(pop) == 0 {
		return 0
	}
	sum := 0.0
	for _, ind := range pop {
		sum += ind.Fitness
	}
	return sum / float64(len(pop))
}
