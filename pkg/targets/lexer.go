package targets

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// TargetLexer tokenizes target lists such as "630, 780 550..600:10".
var TargetLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `[\s\t\n\r]+`},

	// DotDot must come before Int so ".." is not split.
	{Name: "DotDot", Pattern: `\.\.`},
	{Name: "Int", Pattern: `[-+]?[0-9]+`},

	{Name: "Comma", Pattern: `,`},
	{Name: "Colon", Pattern: `:`},
})
