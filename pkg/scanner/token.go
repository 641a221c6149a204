package scanner

import "fmt"

type TokenType int

type Token struct {
	Type   TokenType // Type of the token
	Lexeme string    // Slice of the original source text (or diagnostic for ERROR tokens)
	Line   int       // 1-based source line
}

const (
	// Single-character tokens
	LPAREN    TokenType = iota // (
	RPAREN                     // )
	LBRACE                     // {
	RBRACE                     // }
	COMMA                      // ,
	DOT                        // .
	MINUS                      // -
	PLUS                       // +
	SEMICOLON                  // ;
	SLASH                      // /
	STAR                       // *

	// One or two character tokens
	BANG   // !
	NEQ    // !=
	ASSIGN // =
	EQ     // ==
	GT     // >
	GE     // >=
	LT     // <
	LE     // <=

	// Literals
	ID     // identifier
	STRING // string literal
	NUM    // number literal

	// Keywords
	AND    // and
	CLASS  // class
	ELSE   // else
	FALSE  // false
	FOR    // for
	FUN    // fun
	IF     // if
	NIL    // nil
	OR     // or
	PRINT  // print
	RETURN // return
	SUPER  // super
	THIS   // this
	TRUE   // true
	VAR    // var
	WHILE  // while

	ERROR // malformed input, lexeme carries the message
	EOF   // end of input
)

var tokenNames = map[TokenType]string{
	LPAREN:    "(",
	RPAREN:    ")",
	LBRACE:    "{",
	RBRACE:    "}",
	COMMA:     ",",
	DOT:       ".",
	MINUS:     "-",
	PLUS:      "+",
	SEMICOLON: ";",
	SLASH:     "/",
	STAR:      "*",
	BANG:      "!",
	NEQ:       "!=",
	ASSIGN:    "=",
	EQ:        "==",
	GT:        ">",
	GE:        ">=",
	LT:        "<",
	LE:        "<=",
	ID:        "id",
	STRING:    "string",
	NUM:       "num",
	AND:       "and",
	CLASS:     "class",
	ELSE:      "else",
	FALSE:     "false",
	FOR:       "for",
	FUN:       "fun",
	IF:        "if",
	NIL:       "nil",
	OR:        "or",
	PRINT:     "print",
	RETURN:    "return",
	SUPER:     "super",
	THIS:      "this",
	TRUE:      "true",
	VAR:       "var",
	WHILE:     "while",
	ERROR:     "error",
	EOF:       "$",
}

// String returns a string representation of the TokenType
func (t TokenType) String() string {
	if str, ok := tokenNames[t]; ok {
		return str
	}

	return fmt.Sprintf("UNKNOWN(%d)", int(t))
}

// String returns a string representation of the Token
func (t Token) String() string {
	return fmt.Sprintf("T_{%s, %q, line %d}", t.Type, t.Lexeme, t.Line)
}
