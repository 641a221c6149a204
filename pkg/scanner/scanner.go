package scanner

// Scanner turns source text into a lazy stream of tokens. One pass per
// instance: once EOF has been produced every further call produces EOF.
type Scanner struct {
	source  string
	start   int // start of the lexeme being scanned
	current int // cursor into source
	line    int // current 1-based line
}

// New creates a scanner over the given source text
func New(source string) *Scanner {
	return &Scanner{
		source: source,
		line:   1,
	}
}

// ScanToken returns the next token, advancing the internal cursor.
// Lexical faults are reported as ERROR tokens whose lexeme is the
// diagnostic message; no error is ever raised.
func (s *Scanner) ScanToken() Token {
	s.skipWhitespace()
	s.start = s.current

	if s.isAtEnd() {
		return s.makeToken(EOF)
	}

	c := s.advance()

	if isAlpha(c) {
		return s.identifier()
	}
	if isDigit(c) {
		return s.number()
	}

	switch c {
	case '(':
		return s.makeToken(LPAREN)
	case ')':
		return s.makeToken(RPAREN)
	case '{':
		return s.makeToken(LBRACE)
	case '}':
		return s.makeToken(RBRACE)
	case ';':
		return s.makeToken(SEMICOLON)
	case ',':
		return s.makeToken(COMMA)
	case '.':
		return s.makeToken(DOT)
	case '-':
		return s.makeToken(MINUS)
	case '+':
		return s.makeToken(PLUS)
	case '/':
		return s.makeToken(SLASH)
	case '*':
		return s.makeToken(STAR)
	case '!':
		if s.match('=') {
			return s.makeToken(NEQ)
		}
		return s.makeToken(BANG)
	case '=':
		if s.match('=') {
			return s.makeToken(EQ)
		}
		return s.makeToken(ASSIGN)
	case '<':
		if s.match('=') {
			return s.makeToken(LE)
		}
		return s.makeToken(LT)
	case '>':
		if s.match('=') {
			return s.makeToken(GE)
		}
		return s.makeToken(GT)
	case '"':
		return s.stringLiteral()
	}

	return s.errorToken("Unexpected character.")
}

func (s *Scanner) makeToken(t TokenType) Token {
	return Token{
		Type:   t,
		Lexeme: s.source[s.start:s.current],
		Line:   s.line,
	}
}

func (s *Scanner) errorToken(message string) Token {
	return Token{
		Type:   ERROR,
		Lexeme: message,
		Line:   s.line,
	}
}

func (s *Scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

func (s *Scanner) advance() byte {
	s.current++
	return s.source[s.current-1]
}

func (s *Scanner) match(expected byte) bool {
	if s.isAtEnd() {
		return false
	}
	if s.source[s.current] != expected {
		return false
	}

	s.current++
	return true
}

func (s *Scanner) peek() byte {
	if s.isAtEnd() {
		return 0
	}
	return s.source[s.current]
}

func (s *Scanner) peekNext() byte {
	if s.current+1 >= len(s.source) {
		return 0
	}
	return s.source[s.current+1]
}

// skipWhitespace consumes blanks and // line comments, counting newlines
func (s *Scanner) skipWhitespace() {
	for {
		switch s.peek() {
		case ' ', '\r', '\t':
			s.advance()
		case '\n':
			s.line++
			s.advance()
		case '/':
			if s.peekNext() != '/' {
				return
			}
			// A comment goes until the end of the line.
			for s.peek() != '\n' && !s.isAtEnd() {
				s.advance()
			}
		default:
			return
		}
	}
}

func (s *Scanner) stringLiteral() Token {
	for s.peek() != '"' && !s.isAtEnd() {
		if s.peek() == '\n' {
			s.line++
		}
		s.advance()
	}

	if s.isAtEnd() {
		return s.errorToken("Unterminated string.")
	}

	s.advance() // closing quote
	return s.makeToken(STRING)
}

func (s *Scanner) number() Token {
	for isDigit(s.peek()) {
		s.advance()
	}

	// Fractional part: a single '.' must be followed by a digit.
	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.advance()
		for isDigit(s.peek()) {
			s.advance()
		}
	}

	return s.makeToken(NUM)
}

func (s *Scanner) identifier() Token {
	for isAlpha(s.peek()) || isDigit(s.peek()) {
		s.advance()
	}
	return s.makeToken(s.identifierType())
}

// identifierType classifies reserved words by direct character matching
// on the lexeme just scanned, trie style.
func (s *Scanner) identifierType() TokenType {
	switch s.source[s.start] {
	case 'a':
		return s.checkKeyword(1, "nd", AND)
	case 'c':
		return s.checkKeyword(1, "lass", CLASS)
	case 'e':
		return s.checkKeyword(1, "lse", ELSE)
	case 'f':
		if s.current-s.start > 1 {
			switch s.source[s.start+1] {
			case 'a':
				return s.checkKeyword(2, "lse", FALSE)
			case 'o':
				return s.checkKeyword(2, "r", FOR)
			case 'u':
				return s.checkKeyword(2, "n", FUN)
			}
		}
	case 'i':
		return s.checkKeyword(1, "f", IF)
	case 'n':
		return s.checkKeyword(1, "il", NIL)
	case 'o':
		return s.checkKeyword(1, "r", OR)
	case 'p':
		return s.checkKeyword(1, "rint", PRINT)
	case 'r':
		return s.checkKeyword(1, "eturn", RETURN)
	case 's':
		return s.checkKeyword(1, "uper", SUPER)
	case 't':
		if s.current-s.start > 1 {
			switch s.source[s.start+1] {
			case 'h':
				return s.checkKeyword(2, "is", THIS)
			case 'r':
				return s.checkKeyword(2, "ue", TRUE)
			}
		}
	case 'v':
		return s.checkKeyword(1, "ar", VAR)
	case 'w':
		return s.checkKeyword(1, "hile", WHILE)
	}

	return ID
}

func (s *Scanner) checkKeyword(begin int, rest string, t TokenType) TokenType {
	if s.source[s.start+begin:s.current] == rest {
		return t
	}
	return ID
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
