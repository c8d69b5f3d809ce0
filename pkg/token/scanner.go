package token

// Scanner walks source text byte by byte and emits normalized tokens.
type Scanner struct {
	src string
	pos int
}

// NewScanner creates a scanner over the given source text.
func NewScanner(src string) *Scanner {
	return &Scanner{src: src}
}

// Scan tokenizes source text in one call.
func Scan(src string) []string {
	return NewScanner(src).Tokens()
}

// Tokens consumes the entire source and returns the normalized token stream,
// terminated by the end-of-stream marker. Whitespace, comments, and
// preprocessor lines produce no tokens.
func (s *Scanner) Tokens() []string {
	var tokens []string
	for s.pos < len(s.src) {
		s.skipWhitespace()
		if s.pos >= len(s.src) {
			break
		}
		if s.skipComment() || s.skipPreprocessor() {
			continue
		}

		c := s.src[s.pos]
		switch {
		case isAlpha(c):
			word := s.readIdentifierOrKeyword()
			if IsKeyword(word) {
				tokens = append(tokens, word)
			} else {
				tokens = append(tokens, Identifier)
			}
		case isDigit(c):
			s.readNumber()
			tokens = append(tokens, NumberLiteral)
		case c == '"':
			s.readQuoted('"')
			tokens = append(tokens, StringLiteral)
		case c == '\'':
			s.readQuoted('\'')
			tokens = append(tokens, CharLiteral)
		default:
			if _, ok := singleCharOperatorDelimiters[c]; ok {
				tokens = append(tokens, s.readOperatorOrDelimiter())
			} else {
				// Unknown byte, skip it.
				s.pos++
			}
		}
	}
	return append(tokens, EOF)
}

func (s *Scanner) skipWhitespace() {
	for s.pos < len(s.src) && isWhitespace(s.src[s.pos]) {
		s.pos++
	}
}

// skipComment consumes // line comments and /* */ block comments.
func (s *Scanner) skipComment() bool {
	if s.pos+1 >= len(s.src) || s.src[s.pos] != '/' {
		return false
	}
	switch s.src[s.pos+1] {
	case '/':
		for s.pos < len(s.src) && s.src[s.pos] != '\n' {
			s.pos++
		}
		if s.pos < len(s.src) {
			s.pos++
		}
		return true
	case '*':
		s.pos += 2
		for s.pos+1 < len(s.src) && !(s.src[s.pos] == '*' && s.src[s.pos+1] == '/') {
			s.pos++
		}
		if s.pos+1 < len(s.src) {
			s.pos += 2
		} else {
			// Unterminated block comment reaches end of input.
			s.pos = len(s.src)
		}
		return true
	}
	return false
}

// skipPreprocessor drops a whole #... line.
func (s *Scanner) skipPreprocessor() bool {
	if s.pos >= len(s.src) || s.src[s.pos] != '#' {
		return false
	}
	for s.pos < len(s.src) && s.src[s.pos] != '\n' {
		s.pos++
	}
	if s.pos < len(s.src) {
		s.pos++
	}
	return true
}

func (s *Scanner) readIdentifierOrKeyword() string {
	start := s.pos
	for s.pos < len(s.src) && isAlphaNumeric(s.src[s.pos]) {
		s.pos++
	}
	return s.src[start:s.pos]
}

func (s *Scanner) readNumber() {
	for s.pos < len(s.src) && isDigit(s.src[s.pos]) {
		s.pos++
	}
	if s.pos < len(s.src) && s.src[s.pos] == '.' {
		s.pos++
		for s.pos < len(s.src) && isDigit(s.src[s.pos]) {
			s.pos++
		}
	}
}

// readQuoted consumes a quoted literal, honoring backslash escapes.
func (s *Scanner) readQuoted(quote byte) {
	s.pos++
	for s.pos < len(s.src) && s.src[s.pos] != quote {
		if s.src[s.pos] == '\\' && s.pos+1 < len(s.src) {
			s.pos++
		}
		s.pos++
	}
	if s.pos < len(s.src) {
		s.pos++
	}
}

// readOperatorOrDelimiter prefers the longest operator: a two-character
// operator always wins over its one-character prefix.
func (s *Scanner) readOperatorOrDelimiter() string {
	if s.pos+1 < len(s.src) {
		two := s.src[s.pos : s.pos+2]
		if _, ok := multiCharOperators[two]; ok {
			s.pos += 2
			return two
		}
	}
	one := s.src[s.pos : s.pos+1]
	s.pos++
	return one
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlphaNumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
