package scanner_test

import (
	"glox/pkg/scanner"
	"testing"
)

func TestComments(t *testing.T) {
	input := "// leading comment\n" +
		"var x; // trailing comment\n" +
		"// only a comment\n" +
		"print x;"
	s := scanner.New(input)

	expected := []struct {
		tokenType scanner.TokenType
		line      int
	}{
		{scanner.VAR, 2},
		{scanner.ID, 2},
		{scanner.SEMICOLON, 2},
		{scanner.PRINT, 4},
		{scanner.ID, 4},
		{scanner.SEMICOLON, 4},
		{scanner.EOF, 4},
	}

	for i, want := range expected {
		token := s.ScanToken()
		if token.Type != want.tokenType {
			t.Errorf("Token %d: expected %s, got %s", i, want.tokenType, token.Type)
		}
		if token.Line != want.line {
			t.Errorf("Token %d (%s): expected line %d, got %d", i, token.Type, want.line, token.Line)
		}
	}
}

func TestSlashIsNotAComment(t *testing.T) {
	s := scanner.New("1 / 2")

	expected := []scanner.TokenType{scanner.NUM, scanner.SLASH, scanner.NUM, scanner.EOF}
	for i, want := range expected {
		token := s.ScanToken()
		if token.Type != want {
			t.Errorf("Token %d: expected %s, got %s", i, want, token.Type)
		}
	}
}
