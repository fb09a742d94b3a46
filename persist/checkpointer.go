package persist

import "asmgp/instr"

// DirCheckpointer writes one GenerationFilename per generation into Dir. It
// satisfies evolve.Checkpointer without this package importing evolve,
// keeping the dependency one-directional.
type DirCheckpointer struct {
	Dir string
	Ext string
}

// Save implements evolve.Checkpointer.
func (c DirCheckpointer) Save(generation int, ind instr.Individual) error {
	ext := c.Ext
	if ext == "" {
		ext = "s"
	}
	return Save(GenerationFilename(c.Dir, generation, ind.Fitness, ext), Checkpoint{Generation: generation, Individual: ind})
}

// SaveFinal writes the end-of-run winner to FinalFilename.
func SaveFinal(dir, ext string, ind instr.Individual) error {
	if ext == "" {
		ext = "s"
	}
	return Save(FinalFilename(dir, ext), Checkpoint{Individual: ind})
}
