package instr

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// ReadFile loads an assembly source file into a fresh Individual. A line
// matching "\t<field1>\t<field2>" becomes a TabbedLine; any other line is
// preserved verbatim as a RawLine. Weights, Fitness, Compile, and
// Operations all start at their zero values.
func ReadFile(path string) (Individual, error) {
	f, err := os.Open(path)
	if err != nil {
		return Individual{}, fmt.Errorf("read assembly file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var rep []Instruction
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		rep = append(rep, Instruction{Line: parseLine(scanner.Text())})
	}
	if err := scanner.Err(); err != nil {
		return Individual{}, fmt.Errorf("read assembly file: %w", err)
	}

	return Individual{Representation: rep}, nil
}

// ParseLine exposes parseLine for callers outside this package (persist)
// that need to decode individual lines against the same round-trip rule
// ReadFile uses, without duplicating it.
func ParseLine(line string) Line { return parseLine(line) }

// parseLine implements the "\t<field1>\t<field2>" round-trip rule: exactly
// two tab separators with a non-tab field in between parses to Tabbed;
// anything else (including lines with extra tabs) stays Raw.
func parseLine(line string) Line {
	if !strings.HasPrefix(line, "\t") {
		return RawLine(line)
	}
	rest := line[1:]
	parts := strings.SplitN(rest, "\t", 2)
	if len(parts) != 2 {
		return RawLine(line)
	}
	field1, field2 := parts[0], parts[1]
	if strings.Contains(field2, "\t") {
		return RawLine(line)
	}
	return TabbedLine(field1, field2)
}

func (l Line) String() string {
	if l.Tabbed {
		return "\t" + l.Mnemonic + "\t" + l.Operands
	}
	return l.Raw
}

// WriteFile serializes an Individual's Representation back to the
// line-oriented assembly format. Round-trip with ReadFile is byte-identical
// for any file containing only "\t...\t..." lines and non-tab lines.
func WriteFile(path string, ind Individual) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write assembly file: %w", err)
	}
	defer func() { _ = f.Close() }()

	w := bufio.NewWriter(f)
	for _, in := range ind.Representation {
		if _, err := w.WriteString(in.Line.String()); err != nil {
			return fmt.Errorf("write assembly file: %w", err)
		}
		if err := w.WriteByte('\n'); err != nil {
			return fmt.Errorf("write assembly file: %w", err)
		}
	}
	return w.Flush()
}
