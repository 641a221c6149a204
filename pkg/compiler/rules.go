package compiler

import "glox/pkg/scanner"

type precedence int

const (
	precNone       precedence = iota
	precAssignment            // =
	precOr                    // or
	precAnd                   // and
	precEquality              // == !=
	precComparison            // < > <= >=
	precTerm                  // + -
	precFactor                // * /
	precUnary                 // ! -
	precCall                  // . ()
	precPrimary
)

// action identifies a parse routine. The rule table is pure data;
// dispatch happens in one exhaustive switch in applyAction.
type action int

const (
	actNone action = iota
	actGrouping
	actUnary
	actBinary
	actNumber
	actString
	actLiteral
	actVariable
	actAnd
	actOr
)

type parseRule struct {
	prefix action
	infix  action
	prec   precedence
}

var rules = map[scanner.TokenType]parseRule{
	scanner.LPAREN: {actGrouping, actNone, precNone},
	scanner.MINUS:  {actUnary, actBinary, precTerm},
	scanner.PLUS:   {actNone, actBinary, precTerm},
	scanner.SLASH:  {actNone, actBinary, precFactor},
	scanner.STAR:   {actNone, actBinary, precFactor},
	scanner.BANG:   {actUnary, actNone, precNone},
	scanner.NEQ:    {actNone, actBinary, precEquality},
	scanner.EQ:     {actNone, actBinary, precEquality},
	scanner.GT:     {actNone, actBinary, precComparison},
	scanner.GE:     {actNone, actBinary, precComparison},
	scanner.LT:     {actNone, actBinary, precComparison},
	scanner.LE:     {actNone, actBinary, precComparison},
	scanner.ID:     {actVariable, actNone, precNone},
	scanner.STRING: {actString, actNone, precNone},
	scanner.NUM:    {actNumber, actNone, precNone},
	scanner.AND:    {actNone, actAnd, precAnd},
	scanner.OR:     {actNone, actOr, precOr},
	scanner.NIL:    {actLiteral, actNone, precNone},
	scanner.TRUE:   {actLiteral, actNone, precNone},
	scanner.FALSE:  {actLiteral, actNone, precNone},
}

// ruleFor returns the parse rule for a token type. Token types without
// an entry have no prefix or infix role and the lowest precedence.
func ruleFor(t scanner.TokenType) parseRule {
	return rules[t]
}
