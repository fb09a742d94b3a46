// Package ops implements the weighted genetic operators: delete, append,
// swap, and the three crossover variants (sticky, normal, homologous). All
// operators return a new instr.Individual; inputs are never mutated.
package ops

import (
	"asmgp/instr"
	"asmgp/seq"
)

// SectionMode selects how Delete/Append/Swap size the contiguous run of
// instructions they operate on.
type SectionMode struct {
	Single bool
	Fixed  int // > 0 selects ModeFixed(Fixed); ignored when Single is set
}

// ModeSingle always edits exactly one instruction.
var ModeSingle = SectionMode{Single: true}

// ModeFixed edits exactly k instructions (capped by what's available).
func ModeFixed(k int) SectionMode { return SectionMode{Fixed: k} }

// ModeDefault picks a random section length up to maxSectionSize.
var ModeDefault = SectionMode{}

// SectionLength resolves a SectionMode to a concrete length given how many
// instructions are available from the chosen start point.
func SectionLength(mode SectionMode, available, maxSectionSize int, rng seq.RNG) int {
	switch {
	case mode.Single:
		return 1
	case mode.Fixed > 0:
		if mode.Fixed < available {
			return mode.Fixed
		}
		return available
	default:
		n := maxSectionSize
		if available < n {
			n = available
		}
		if n < 1 {
			n = 1
		}
		return 1 + rng.IntN(n)
	}
}

// Config bundles the operator-tuning knobs that come from engine
// configuration rather than from the operator call site.
type Config struct {
	Mode           SectionMode
	MaxSectionSize int
}

// DefaultConfig is max_section_size=1, i.e. single-line edits under
// ModeDefault.
func DefaultConfig() Config {
	return Config{Mode: ModeDefault, MaxSectionSize: 1}
}

func goodWeights(ind instr.Individual) []float64 { return instr.GoodWeights(ind.Representation) }
func badWeights(ind instr.Individual) []float64  { return instr.BadWeights(ind.Representation) }
