package scanner_test

import (
	"glox/pkg/scanner"
	"testing"
)

func TestTokens(t *testing.T) {
	input := "var x = 10 / 2;\n" + "while (true != false) {\n" + "	x = 5;\n" + "if (x == 5) {\n" + "		print x;\n" + "	}\n" + "}\nx = 10"
	s := scanner.New(input)

	expectedTokens := []scanner.TokenType{
		scanner.VAR, scanner.ID, scanner.ASSIGN, scanner.NUM, scanner.SLASH, scanner.NUM, scanner.SEMICOLON,
		scanner.WHILE, scanner.LPAREN, scanner.TRUE, scanner.NEQ, scanner.FALSE, scanner.RPAREN, scanner.LBRACE,
		scanner.ID, scanner.ASSIGN, scanner.NUM, scanner.SEMICOLON,
		scanner.IF, scanner.LPAREN, scanner.ID, scanner.EQ, scanner.NUM, scanner.RPAREN, scanner.LBRACE,
		scanner.PRINT, scanner.ID, scanner.SEMICOLON,
		scanner.RBRACE, scanner.RBRACE,
		scanner.ID, scanner.ASSIGN, scanner.NUM,
		scanner.EOF,
	}

	for i, expected := range expectedTokens {
		token := s.ScanToken()
		if token.Type != expected {
			t.Errorf("Token %d: expected %s, got %s", i, expected, token.Type)
		}
	}
}

func TestKeywords(t *testing.T) {
	tests := []struct {
		input    string
		expected scanner.TokenType
	}{
		{"and", scanner.AND},
		{"class", scanner.CLASS},
		{"else", scanner.ELSE},
		{"false", scanner.FALSE},
		{"for", scanner.FOR},
		{"fun", scanner.FUN},
		{"if", scanner.IF},
		{"nil", scanner.NIL},
		{"or", scanner.OR},
		{"print", scanner.PRINT},
		{"return", scanner.RETURN},
		{"super", scanner.SUPER},
		{"this", scanner.THIS},
		{"true", scanner.TRUE},
		{"var", scanner.VAR},
		{"while", scanner.WHILE},

		{"android", scanner.ID},
		{"form", scanner.ID},
		{"fals", scanner.ID},
		{"truex", scanner.ID},
		{"_var", scanner.ID},
		{"f", scanner.ID},
		{"t", scanner.ID},
	}

	for _, test := range tests {
		token := scanner.New(test.input).ScanToken()
		if token.Type != test.expected {
			t.Errorf("Input %s: expected %s, got %s", test.input, test.expected, token.Type)
		}
		if token.Lexeme != test.input {
			t.Errorf("Input %s: expected lexeme %s, got %s", test.input, test.input, token.Lexeme)
		}
	}
}

func TestOperators(t *testing.T) {
	tests := []struct {
		input    string
		expected []scanner.TokenType
	}{
		{"!", []scanner.TokenType{scanner.BANG}},
		{"!=", []scanner.TokenType{scanner.NEQ}},
		{"=", []scanner.TokenType{scanner.ASSIGN}},
		{"==", []scanner.TokenType{scanner.EQ}},
		{"<", []scanner.TokenType{scanner.LT}},
		{"<=", []scanner.TokenType{scanner.LE}},
		{">", []scanner.TokenType{scanner.GT}},
		{">=", []scanner.TokenType{scanner.GE}},
		{"===", []scanner.TokenType{scanner.EQ, scanner.ASSIGN}},
		{"!==", []scanner.TokenType{scanner.NEQ, scanner.ASSIGN}},
		{"(.,)", []scanner.TokenType{scanner.LPAREN, scanner.DOT, scanner.COMMA, scanner.RPAREN}},
	}

	for _, test := range tests {
		s := scanner.New(test.input)
		for i, expected := range test.expected {
			token := s.ScanToken()
			if token.Type != expected {
				t.Errorf("Input %s token %d: expected %s, got %s", test.input, i, expected, token.Type)
			}
		}
		if token := s.ScanToken(); token.Type != scanner.EOF {
			t.Errorf("Input %s: expected EOF after all tokens, got %s", test.input, token.Type)
		}
	}
}

func TestErrorTokens(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"@", "Unexpected character."},
		{"#", "Unexpected character."},
		{`"no closing quote`, "Unterminated string."},
	}

	for _, test := range tests {
		token := scanner.New(test.input).ScanToken()
		if token.Type != scanner.ERROR {
			t.Errorf("Input %s: expected ERROR, got %s", test.input, token.Type)
		}
		if token.Lexeme != test.expected {
			t.Errorf("Input %s: expected message %q, got %q", test.input, test.expected, token.Lexeme)
		}
	}
}

func TestEOFIsSticky(t *testing.T) {
	s := scanner.New("x")
	s.ScanToken()

	for i := 0; i < 3; i++ {
		if token := s.ScanToken(); token.Type != scanner.EOF {
			t.Errorf("Call %d past the end: expected EOF, got %s", i, token.Type)
		}
	}
}
