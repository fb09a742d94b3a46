package evolve

import (
	"sort"

	"asmgp/instr"
	"asmgp/seq"
)

// Select produces n survivors from pop, dispatching to tournament or SUS
// selection per cfg.UseTournament. Higher Fitness is better throughout this
// package.
func Select(pop []instr.Individual, n int, cfg Config, rng seq.RNG) []instr.Individual {
	if cfg.UseTournament {
		return Tournament(pop, n, cfg.TournamentSize, rng)
	}
	return SUS(pop, n, rng)
}

// Tournament samples tournamentSize individuals with replacement, n times,
// keeping the fittest of each sample.
func Tournament(pop []instr.Individual, n, tournamentSize int, rng seq.RNG) []instr.Individual {
	survivors := make([]instr.Individual, 0, n)
	for i := 0; i < n; i++ {
		best := pop[rng.IntN(len(pop))]
		for j := 1; j < tournamentSize; j++ {
			candidate := pop[rng.IntN(len(pop))]
			if candidate.Fitness > best.Fitness {
				best = candidate
			}
		}
		survivors = append(survivors, best)
	}
	return survivors
}

// SUS performs stochastic universal sampling: the population is sorted by
// descending fitness, then walked by a single ruler of n equally spaced
// marks over the cumulative-fitness axis, giving lower selection variance
// than independent roulette-wheel draws. The ruler's start offset is drawn
// uniformly within one step, the standard SUS construction.
func SUS(pop []instr.Individual, n int, rng seq.RNG) []instr.Individual {
	sorted := make([]instr.Individual, len(pop))
	copy(sorted, pop)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Fitness > sorted[j].Fitness })

	total := 0.0
	for _, ind := range sorted {
		total += ind.Fitness
	}

	survivors := make([]instr.Individual, 0, n)
	if total <= 0 || n <= 0 {
		for i := 0; i < n; i++ {
			survivors = append(survivors, sorted[seq.Place(len(sorted), rng)])
		}
		return survivors
	}

	step := total / float64(n)
	pointer := rng.Float64() * step
	cum := 0.0
	idx := 0
	for i := 0; i < n; i++ {
		for idx < len(sorted)-1 && cum+sorted[idx].Fitness < pointer {
			cum += sorted[idx].Fitness
			idx++
		}
		survivors = append(survivors, sorted[idx])
		pointer += step
	}
	return survivors
}
