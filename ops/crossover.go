package ops

import (
	"asmgp/instr"
	"asmgp/seq"
)

// crossoverTrials is max(mother.Trials, father.Trials): a child inherits the
// evaluation-counter snapshot of whichever parent was scored more recently.
func crossoverTrials(mother, father instr.Individual) int64 {
	if mother.Trials > father.Trials {
		return mother.Trials
	}
	return father.Trials
}

func crossoverOp(mother, father instr.Individual) instr.Operation {
	return instr.Operation{Kind: "crossover", Parents: [][]instr.Operation{mother.Operations, father.Operations}}
}

func newChild(rep []instr.Instruction, mother, father instr.Individual) instr.Individual {
	return instr.Individual{
		Representation: rep,
		Trials:         crossoverTrials(mother, father),
		Operations:     append(append([]instr.Operation{}, mother.Operations...), crossoverOp(mother, father)),
	}
}

// weightedSplitIndex picks a weighted split point within section (by bad
// weight, the default key), returning 0 for an empty section rather than
// calling into seq on a zero-length slice.
func weightedSplitIndex(section []instr.Instruction, rng seq.RNG) int {
	if len(section) == 0 {
		return 0
	}
	return seq.WeightedPlace(instr.BadWeights(section), rng)
}

func splitAt(rep []instr.Instruction, at int) (left, right []instr.Instruction) {
	if at < 0 {
		at = 0
	}
	if at > len(rep) {
		at = len(rep)
	}
	return rep[:at], rep[at:]
}

func clampIndex(i, max int) int {
	if i < 0 {
		return 0
	}
	if i > max {
		return max
	}
	return i
}

func concat(parts ...[]instr.Instruction) []instr.Instruction {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	out := make([]instr.Instruction, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// emptyParentGuard implements the "when either parent is empty, the child
// equals the other parent" rule shared by all three crossover variants.
func emptyParentGuard(mother, father instr.Individual) (instr.Individual, bool) {
	switch {
	case len(mother.Representation) == 0 && len(father.Representation) == 0:
		return newChild(nil, mother, father), true
	case len(mother.Representation) == 0:
		rep := make([]instr.Instruction, len(father.Representation))
		copy(rep, father.Representation)
		return newChild(rep, mother, father), true
	case len(father.Representation) == 0:
		rep := make([]instr.Instruction, len(mother.Representation))
		copy(rep, mother.Representation)
		return newChild(rep, mother, father), true
	default:
		return instr.Individual{}, false
	}
}

// CrossoverSticky picks one midpoint in mother and reuses it verbatim to
// split father too; each half's secondary split is chosen from mother's
// weights alone and reused on the matching father half. This deliberately
// biases toward positions meaningful in mother's index space even when
// applied to father: when bad weight concentrates early, the split points
// skew low for both parents alike, which is intentional.
func CrossoverSticky(mother, father instr.Individual, rng seq.RNG) instr.Individual {
	if child, empty := emptyParentGuard(mother, father); empty {
		return child
	}

	m := weightedSplitIndex(mother.Representation, rng)
	motherL, motherR := splitAt(mother.Representation, m)
	fatherL, fatherR := splitAt(father.Representation, clampIndex(m, len(father.Representation)))

	mL := weightedSplitIndex(motherL, rng)
	mR := weightedSplitIndex(motherR, rng)

	fL := clampIndex(mL, len(fatherL))
	fR := clampIndex(mR, len(fatherR))

	rep := concat(motherL[:mL], fatherL[fL:], fatherR[:fR], motherR[mR:])
	return newChild(rep, mother, father)
}

// CrossoverNormal splits mother and father at independently weighted
// points, with four further independent secondary splits, one per half.
func CrossoverNormal(mother, father instr.Individual, rng seq.RNG) instr.Individual {
	if child, empty := emptyParentGuard(mother, father); empty {
		return child
	}

	mM := weightedSplitIndex(mother.Representation, rng)
	mF := weightedSplitIndex(father.Representation, rng)

	motherL, motherR := splitAt(mother.Representation, mM)
	fatherL, fatherR := splitAt(father.Representation, mF)

	mML := weightedSplitIndex(motherL, rng)
	mMR := weightedSplitIndex(motherR, rng)
	mFL := weightedSplitIndex(fatherL, rng)
	mFR := weightedSplitIndex(fatherR, rng)

	rep := concat(motherL[:mML], fatherL[mFL:], fatherR[:mFR], motherR[mMR:])
	return newChild(rep, mother, father)
}

// CrossoverHomologous locates the recombination point in father by content
// similarity rather than raw index, using two small exemplar windows drawn
// from mother. exemplarR is drawn from motherL rather than motherR, which
// looks like it should draw from motherR instead — kept as-is rather than
// silently corrected, and called out at the point of use below.
func CrossoverHomologous(mother, father instr.Individual, rng seq.RNG, radius int) instr.Individual {
	if child, empty := emptyParentGuard(mother, father); empty {
		return child
	}

	mM := weightedSplitIndex(mother.Representation, rng)
	motherL, motherR := splitAt(mother.Representation, mM)

	mML := weightedSplitIndex(motherL, rng)
	mMR := weightedSplitIndex(motherR, rng)

	exemplarL := seq.PointsAround(motherL, mML, radius)
	// The second exemplar is also windowed out of motherL, using an index
	// chosen from motherR's weights.
	exemplarR := seq.PointsAround(motherL, clampIndex(mMR, maxInt(len(motherL)-1, 0)), radius)

	fatherElems := instr.Elements(father.Representation)
	exemplarLElems := instr.Elements(exemplarL)
	exemplarRElems := instr.Elements(exemplarR)

	fSplit := seq.HomologousPlace(fatherElems, exemplarLElems, rng)

	rR := (len(exemplarR) - 1) / 2
	remainderStart := fSplit - rR
	if remainderStart < 0 {
		remainderStart = 0
	}
	if remainderStart > len(father.Representation) {
		remainderStart = len(father.Representation)
	}
	fatherRemainder := father.Representation[remainderStart:]

	mFR := 0
	if len(fatherRemainder) > 0 {
		mFR = seq.HomologousPlace(instr.Elements(fatherRemainder), exemplarRElems, rng)
	}
	mid := clampIndex(remainderStart+mFR, len(father.Representation))
	if mid < fSplit {
		mid = fSplit
	}

	rep := concat(motherL[:mML], father.Representation[fSplit:mid], motherR[mMR:])
	return newChild(rep, mother, father)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
