package ops

import (
	"asmgp/instr"
	"asmgp/seq"
)

// Delete removes a weighted-bad-chosen contiguous section of the
// representation. Returns a new individual with Compile/Fitness reset.
func Delete(ind instr.Individual, cfg Config, rng seq.RNG) instr.Individual {
	rep := ind.Representation
	child := ind.Clone()
	child.ResetEvaluation()
	child.Operations = append(child.Operations, instr.Operation{Kind: "delete"})

	if len(rep) == 0 {
		return child
	}

	start := seq.WeightedPlace(badWeights(ind), rng)
	length := SectionLength(cfg.Mode, len(rep)-start, cfg.MaxSectionSize, rng)

	out := make([]instr.Instruction, 0, len(rep)-length)
	out = append(out, rep[:start]...)
	out = append(out, rep[start+length:]...)
	child.Representation = out
	return child
}

// Append copies a weighted-good-chosen section and inserts it at a
// weighted-bad-chosen position; the source section is not removed
// (duplication is intentional).
func Append(ind instr.Individual, cfg Config, rng seq.RNG) instr.Individual {
	rep := ind.Representation
	child := ind.Clone()
	child.ResetEvaluation()
	child.Operations = append(child.Operations, instr.Operation{Kind: "append"})

	if len(rep) == 0 {
		return child
	}

	src := seq.WeightedPlace(goodWeights(ind), rng)
	dst := seq.WeightedPlace(badWeights(ind), rng)
	length := SectionLength(cfg.Mode, len(rep)-src, cfg.MaxSectionSize, rng)

	section := make([]instr.Instruction, length)
	copy(section, rep[src:src+length])

	// The section is inserted *after* dst, so choosing the last instruction
	// appends the copy at the very end of the representation.
	at := dst + 1
	out := make([]instr.Instruction, 0, len(rep)+length)
	out = append(out, rep[:at]...)
	out = append(out, section...)
	out = append(out, rep[at:]...)
	child.Representation = out
	return child
}

// Swap exchanges two weighted-bad-chosen, independently sized sections in
// place, preserving the gap between them. Equal positions are a no-op on
// the representation (an operation entry is still recorded).
func Swap(ind instr.Individual, cfg Config, rng seq.RNG) instr.Individual {
	rep := ind.Representation
	child := ind.Clone()
	child.ResetEvaluation()
	child.Operations = append(child.Operations, instr.Operation{Kind: "swap"})

	if len(rep) == 0 {
		return child
	}

	weights := badWeights(ind)
	p1 := seq.WeightedPlace(weights, rng)
	p2 := seq.WeightedPlace(weights, rng)
	if p1 == p2 {
		return child
	}

	left, right := p1, p2
	if left > right {
		left, right = right, left
	}

	leftLength := SectionLength(cfg.Mode, right-left, cfg.MaxSectionSize, rng)
	rightLength := SectionLength(cfg.Mode, len(rep)-right, cfg.MaxSectionSize, rng)

	out := make([]instr.Instruction, 0, len(rep))
	out = append(out, rep[:left]...)
	out = append(out, rep[right:right+rightLength]...)
	out = append(out, rep[left+leftLength:right]...)
	out = append(out, rep[left:left+leftLength]...)
	out = append(out, rep[right+rightLength:]...)
	child.Representation = out
	return child
}

// Mutate chooses uniformly among Delete, Append, and Swap.
func Mutate(ind instr.Individual, cfg Config, rng seq.RNG) instr.Individual {
	switch rng.IntN(3) {
	case 0:
		return Delete(ind, cfg, rng)
	case 1:
		return Append(ind, cfg, rng)
	default:
		return Swap(ind, cfg, rng)
	}
}
