// Package token turns raw source text into the normalized token stream the
// parser consumes. Identifiers and literals are collapsed to generic markers
// so that renamed variables and changed constants produce identical streams.
package token

// Normalized marker tokens. Everything the scanner cannot classify as a
// keyword, operator, or delimiter is collapsed to one of these.
const (
	Identifier    = "IDENTIFIER"
	NumberLiteral = "NUMBER_LITERAL"
	StringLiteral = "STRING_LITERAL"
	CharLiteral   = "CHAR_LITERAL"
	EOF           = "END_OF_FILE"
)

// Kind classifies a token string.
type Kind int

const (
	KindUnknown Kind = iota
	KindKeyword
	KindIdentifier
	KindOperator
	KindDelimiter
	KindNumberLiteral
	KindStringLiteral
	KindCharLiteral
	KindEOF
)

// keywords is the C-family keyword set recognized by the scanner. Keywords
// pass through the stream verbatim; everything else alphabetic becomes the
// IDENTIFIER marker.
var keywords = map[string]struct{}{
	"alignas": {}, "alignof": {}, "and": {}, "and_eq": {}, "asm": {},
	"atomic_cancel": {}, "atomic_commit": {}, "atomic_noexcept": {},
	"auto": {}, "bitand": {}, "bitor": {}, "bool": {}, "break": {},
	"case": {}, "catch": {}, "char": {}, "char8_t": {}, "char16_t": {},
	"char32_t": {}, "class": {}, "compl": {}, "concept": {}, "const": {},
	"consteval": {}, "constexpr": {}, "constinit": {}, "const_cast": {},
	"continue": {}, "co_await": {}, "co_return": {}, "co_yield": {},
	"decltype": {}, "default": {}, "delete": {}, "do": {}, "double": {},
	"dynamic_cast": {}, "else": {}, "enum": {}, "explicit": {}, "export": {},
	"extern": {}, "false": {}, "float": {}, "for": {}, "friend": {},
	"goto": {}, "if": {}, "inline": {}, "int": {}, "long": {}, "mutable": {},
	"namespace": {}, "new": {}, "noexcept": {}, "not": {}, "not_eq": {},
	"nullptr": {}, "operator": {}, "or": {}, "or_eq": {}, "private": {},
	"protected": {}, "public": {}, "reflexpr": {}, "register": {},
	"reinterpret_cast": {}, "requires": {}, "return": {}, "short": {},
	"signed": {}, "sizeof": {}, "static": {}, "static_assert": {},
	"static_cast": {}, "struct": {}, "switch": {}, "synchronized": {},
	"template": {}, "this": {}, "thread_local": {}, "throw": {}, "true": {},
	"try": {}, "typedef": {}, "typeid": {}, "typename": {}, "union": {},
	"unsigned": {}, "using": {}, "virtual": {}, "void": {}, "volatile": {},
	"wchar_t": {}, "while": {}, "xor": {}, "xor_eq": {},
}

// multiCharOperators are matched before single characters so that "==" never
// scans as two "=" tokens.
var multiCharOperators = map[string]struct{}{
	"==": {}, "!=": {}, "<=": {}, ">=": {}, "&&": {}, "||": {},
	"++": {}, "--": {}, "<<": {}, ">>": {}, "->": {}, "::": {},
	"+=": {}, "-=": {}, "*=": {}, "/=": {}, "%=": {}, "&=": {},
	"|=": {}, "^=": {}, "<<=": {}, ">>=": {},
}

var singleCharOperatorDelimiters = map[byte]struct{}{
	'+': {}, '-': {}, '*': {}, '/': {}, '%': {}, '=': {}, '<': {}, '>': {},
	'!': {}, '&': {}, '|': {}, '^': {}, '~': {},
	'(': {}, ')': {}, '{': {}, '}': {}, '[': {}, ']': {},
	';': {}, ',': {}, '.': {}, ':': {}, '?': {},
}

var delimiters = map[string]struct{}{
	"(": {}, ")": {}, "{": {}, "}": {}, "[": {}, "]": {},
	";": {}, ",": {}, "?": {}, ":": {},
}

// IsKeyword reports whether s is a recognized keyword.
func IsKeyword(s string) bool {
	_, ok := keywords[s]
	return ok
}

// KindOf classifies a token emitted by Scan.
func KindOf(tok string) Kind {
	switch tok {
	case Identifier:
		return KindIdentifier
	case NumberLiteral:
		return KindNumberLiteral
	case StringLiteral:
		return KindStringLiteral
	case CharLiteral:
		return KindCharLiteral
	case EOF:
		return KindEOF
	}
	if IsKeyword(tok) {
		return KindKeyword
	}
	if _, ok := delimiters[tok]; ok {
		return KindDelimiter
	}
	if _, ok := multiCharOperators[tok]; ok {
		return KindOperator
	}
	if len(tok) == 1 {
		if _, ok := singleCharOperatorDelimiters[tok[0]]; ok {
			return KindOperator
		}
	}
	return KindUnknown
}
