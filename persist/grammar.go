// Package persist serializes an instr.Individual checkpoint to a small
// self-describing text format: a field:value header, parsed with a
// participle grammar, followed by the instruction block in the same
// line format instr.ReadFile/WriteFile use.
package persist

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// header is the participle-parsed portion of a checkpoint file: everything
// up to the "---" separator that introduces the instruction block.
type header struct {
	Generation int     `"generation" ":" @Word`
	Fitness    float64 `"fitness" ":" @Word`
	Trials     int64   `"trials" ":" @Word`
	Reused     string  `"reused" ":" @Word`
	Compile    string  `"compile" ":" @Word`
	Sep        string  `@Sep`
}

var checkpointLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Sep", Pattern: `---`},
	{Name: "Word", Pattern: `[^\s:]+`},
	{Name: "Colon", Pattern: `:`},
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
})

var headerParser = participle.MustBuild[header](
	participle.Lexer(checkpointLexer),
	participle.Elide("Whitespace"),
)
