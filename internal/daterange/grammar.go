package daterange

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Unit is the calendar unit a relative token is anchored to.
type Unit string

const (
	UnitToday Unit = "T"
	UnitWeek  Unit = "W"
	UnitMonth Unit = "M"
	UnitYear  Unit = "Y"
)

// Edge selects the first or last day of a unit.
type Edge string

const (
	EdgeNone  Edge = ""
	EdgeBegin Edge = "B"
	EdgeEnd   Edge = "E"
)

// relativeToken is the grammar root: a unit letter followed by at most one
// edge marker or signed offset. Input is upper-cased before parsing.
type relativeToken struct {
	Unit   string       `parser:"@Unit"`
	Suffix *tokenSuffix `parser:"@@?"`
}

type tokenSuffix struct {
	Edge   string `parser:"  @Edge"`
	Offset string `parser:"| @Offset"`
}

// No whitespace rule: inner spaces make the token fail the grammar.
var tokenLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Unit", Pattern: `[TWMY]`},
	{Name: "Edge", Pattern: `[BE]`},
	{Name: "Offset", Pattern: `[+-][0-9]+`},
})

var tokenParser = participle.MustBuild[relativeToken](
	participle.Lexer(tokenLexer),
)

// token is the interpreted form of a relative expression.
type token struct {
	unit      Unit
	edge      Edge
	offset    int
	hasOffset bool
}

// unitOf returns the unit a normalized expression is anchored to, if any.
func unitOf(expr string) (Unit, bool) {
	if expr == "" {
		return "", false
	}
	switch u := Unit(expr[:1]); u {
	case UnitToday, UnitWeek, UnitMonth, UnitYear:
		return u, true
	}
	return "", false
}

// parseToken interprets a normalized expression that starts with a unit
// letter. When the remainder does not fit the grammar the bare unit is
// returned, so callers fall back to the unit's default range.
func parseToken(expr string, unit Unit) token {
	tok := token{unit: unit}

	ast, err := tokenParser.ParseString("", expr)
	if err != nil || ast.Suffix == nil {
		return tok
	}

	switch {
	case ast.Suffix.Edge != "":
		tok.edge = Edge(ast.Suffix.Edge)
	case ast.Suffix.Offset != "":
		tok.offset, tok.hasOffset = parseOffset(ast.Suffix.Offset)
	}
	return tok
}
