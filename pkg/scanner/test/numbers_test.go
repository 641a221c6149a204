package scanner_test

import (
	"glox/pkg/scanner"
	"testing"
)

func TestNumbers(t *testing.T) {
	tests := []struct {
		input       string
		expected    string
		description string
	}{
		{"42", "42", "integer"},
		{"0", "0", "zero"},
		{"1000000", "1000000", "large integer"},

		{"3.14", "3.14", "simple float"},
		{"0.5", "0.5", "float starting with zero"},
		{"123.456", "123.456", "multi-digit float"},
		{"0.0", "0.0", "zero as float"},

		{"1.", "1", "trailing dot is not part of the number"},
		{".5", "", "leading dot is not a number"},
	}

	for _, test := range tests {
		token := scanner.New(test.input).ScanToken()
		if test.expected == "" {
			if token.Type == scanner.NUM {
				t.Errorf("Input %s (%s): expected a non-number token, got NUM", test.input, test.description)
			}
			continue
		}
		if token.Type != scanner.NUM {
			t.Errorf("Input %s (%s): expected NUM, got %s", test.input, test.description, token.Type)
		}
		if token.Lexeme != test.expected {
			t.Errorf("Input %s (%s): expected lexeme %s, got %s", test.input, test.description, test.expected, token.Lexeme)
		}
	}
}

func TestStrings(t *testing.T) {
	tests := []struct {
		input       string
		expected    string
		line        int
		description string
	}{
		{`"hello"`, `"hello"`, 1, "simple string"},
		{`""`, `""`, 1, "empty string"},
		{"\"first\nsecond\"", "\"first\nsecond\"", 2, "multiline string ends on its last line"},
	}

	for _, test := range tests {
		token := scanner.New(test.input).ScanToken()
		if token.Type != scanner.STRING {
			t.Errorf("Input %q (%s): expected STRING, got %s", test.input, test.description, token.Type)
		}
		if token.Lexeme != test.expected {
			t.Errorf("Input %q (%s): expected lexeme %q, got %q", test.input, test.description, test.expected, token.Lexeme)
		}
		if token.Line != test.line {
			t.Errorf("Input %q (%s): expected line %d, got %d", test.input, test.description, test.line, token.Line)
		}
	}
}
