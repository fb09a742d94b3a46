package persist

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"asmgp/instr"
)

const noCompileSentinel = "none"

// Checkpoint is everything persisted about one generation's best individual.
// Operations (crossover/mutation lineage) are deliberately not persisted —
// the format only needs to be sufficient to reload and keep evolving from,
// not to reconstruct full provenance.
type Checkpoint struct {
	Generation int
	Individual instr.Individual
}

// Save writes cp to path: a field:value header followed by a "---"
// separator and the instruction block in instr's own line format.
func Save(path string, cp Checkpoint) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save checkpoint: %w", err)
	}
	defer func() { _ = f.Close() }()

	compile := cp.Individual.Compile
	if compile == "" {
		compile = noCompileSentinel
	}

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "generation:%d\n", cp.Generation)
	fmt.Fprintf(w, "fitness:%f\n", cp.Individual.Fitness)
	fmt.Fprintf(w, "trials:%d\n", cp.Individual.Trials)
	fmt.Fprintf(w, "reused:%t\n", cp.Individual.Reused)
	fmt.Fprintf(w, "compile:%s\n", compile)
	fmt.Fprintln(w, "---")
	for _, ins := range cp.Individual.Representation {
		fmt.Fprintln(w, ins.Line.String())
	}
	return w.Flush()
}

// Load parses a checkpoint previously written by Save.
func Load(path string) (Checkpoint, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Checkpoint{}, fmt.Errorf("load checkpoint: %w", err)
	}

	headerText, body, ok := strings.Cut(string(raw), "---")
	if !ok {
		return Checkpoint{}, fmt.Errorf("load checkpoint: missing --- separator")
	}

	h, err := headerParser.ParseString(path, headerText+"---")
	if err != nil {
		return Checkpoint{}, fmt.Errorf("load checkpoint: parse header: %w", err)
	}

	var rep []instr.Instruction
	scanner := bufio.NewScanner(strings.NewReader(strings.TrimPrefix(body, "\n")))
	for scanner.Scan() {
		rep = append(rep, instr.Instruction{Line: instr.ParseLine(scanner.Text())})
	}
	if err := scanner.Err(); err != nil {
		return Checkpoint{}, fmt.Errorf("load checkpoint: %w", err)
	}

	compile := h.Compile
	if compile == noCompileSentinel {
		compile = ""
	}

	return Checkpoint{
		Generation: h.Generation,
		Individual: instr.Individual{
			Representation: rep,
			Compile:        compile,
			Reused:         h.Reused == "true",
			Fitness:        h.Fitness,
			Scored:         true,
			Trials:         h.Trials,
		},
	}, nil
}
