// Package parser builds an AST from a normalized token stream via recursive
// descent with explicit operator precedence. The grammar is an intentionally
// simplified C subset: it covers functions, declarations, the usual statement
// forms, and the full expression precedence ladder, which is all the
// structural fingerprinting needs.
package parser

import (
	"fmt"

	"github.com/codemimic/mimic/pkg/ast"
	"github.com/codemimic/mimic/pkg/token"
)

// SyntaxError reports a failed expectation. Position is the index into the
// token stream, not a source location: the stream carries no positions.
type SyntaxError struct {
	Expected string
	Found    string
	Pos      int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error: expected %q but found %q at token index %d", e.Expected, e.Found, e.Pos)
}

// Parser consumes a token slice with single-token lookahead. Backtracking is
// a cursor save and restore around a speculative scan; it is used only at the
// two ambiguous points in the grammar (top level, for-loop initializer).
type Parser struct {
	tokens []string
	pos    int
}

// New creates a parser over the given token stream.
func New(tokens []string) *Parser {
	return &Parser{tokens: tokens}
}

// Parse builds the Program or fails with a *SyntaxError on the first unmet
// expectation. No partial tree is ever returned.
func Parse(tokens []string) (*ast.Program, error) {
	return New(tokens).Parse()
}

// Parse parses the whole stream into one Program node.
func (p *Parser) Parse() (*ast.Program, error) {
	return p.parseProgram()
}

func (p *Parser) peek() string {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos]
	}
	return token.EOF
}

func (p *Parser) consume() {
	if p.pos < len(p.tokens) {
		p.pos++
	}
}

func (p *Parser) check(want string) bool {
	return p.peek() == want
}

func (p *Parser) match(want string) error {
	if p.check(want) {
		p.consume()
		return nil
	}
	return &SyntaxError{Expected: want, Found: p.peek(), Pos: p.pos}
}

// tokenKind classifies with the parser's reduced keyword set. The scanner
// recognizes the full C-family keyword list, but the grammar only gives
// meaning to these; anything else classifies as unknown and fails parsing.
func tokenKind(tok string) token.Kind {
	switch tok {
	case "if", "else", "while", "for", "return",
		"int", "void", "bool", "true", "false", "nullptr", "const":
		return token.KindKeyword
	case "=", "+=", "-=", "*=", "/=", "%=",
		"==", "!=", "<", ">", "<=", ">=",
		"&&", "||", "!", "++", "--",
		"+", "-", "*", "/", "%", "->", "::", "<<", ">>":
		return token.KindOperator
	case "(", ")", "{", "}", ";", ",", "?", ":":
		return token.KindDelimiter
	case token.Identifier:
		return token.KindIdentifier
	case token.NumberLiteral:
		return token.KindNumberLiteral
	case token.StringLiteral:
		return token.KindStringLiteral
	case token.CharLiteral:
		return token.KindCharLiteral
	case token.EOF:
		return token.KindEOF
	}
	return token.KindUnknown
}

func (p *Parser) checkKind(k token.Kind) bool {
	return tokenKind(p.peek()) == k
}

// parseProgram distinguishes function definitions from variable declarations
// by scanning past a type and identifier, then rewinding.
func (p *Parser) parseProgram() (*ast.Program, error) {
	program := &ast.Program{}
	for p.peek() != token.EOF {
		start := p.pos

		if _, err := p.parseType(); err != nil {
			return nil, err
		}
		if !p.checkKind(token.KindIdentifier) {
			found := p.peek()
			pos := p.pos
			p.pos = start
			return nil, &SyntaxError{Expected: token.Identifier, Found: found, Pos: pos}
		}
		p.consume()
		next := p.peek()
		p.pos = start

		switch {
		case next == "(":
			fn, err := p.parseFunctionDefinition()
			if err != nil {
				return nil, err
			}
			program.Declarations = append(program.Declarations, fn)
		case next == "=" || next == ";" || next == ",":
			decl, err := p.parseDeclarationStatement()
			if err != nil {
				return nil, err
			}
			program.Declarations = append(program.Declarations, decl)
		default:
			return nil, &SyntaxError{Expected: "function or variable declaration", Found: next, Pos: p.pos}
		}
	}
	return program, nil
}

func (p *Parser) parseFunctionDefinition() (ast.Node, error) {
	returnType, err := p.parseType()
	if err != nil {
		return nil, err
	}
	name := p.peek()
	if err := p.match(token.Identifier); err != nil {
		return nil, err
	}

	if err := p.match("("); err != nil {
		return nil, err
	}
	var params []ast.Node
	if !p.check(")") {
		param, err := p.parseParameter()
		if err != nil {
			return nil, err
		}
		params = append(params, param)
		for p.check(",") {
			p.consume()
			param, err := p.parseParameter()
			if err != nil {
				return nil, err
			}
			params = append(params, param)
		}
	}
	if err := p.match(")"); err != nil {
		return nil, err
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return &ast.FunctionDefinition{
		ReturnType: returnType,
		Name:       &ast.Identifier{Name: name},
		Parameters: params,
		Body:       body,
	}, nil
}

func (p *Parser) parseParameter() (ast.Node, error) {
	paramType, err := p.parseType()
	if err != nil {
		return nil, err
	}
	name := p.peek()
	if err := p.match(token.Identifier); err != nil {
		return nil, err
	}
	return &ast.Parameter{ParamType: paramType, Name: &ast.Identifier{Name: name}}, nil
}

// parseType folds an optional const qualifier, a keyword-or-identifier base
// name, and any ::identifier qualifications into one textual type name.
func (p *Parser) parseType() (*ast.Type, error) {
	name := ""
	if p.check("const") {
		name = p.peek() + " "
		p.consume()
	}

	if p.checkKind(token.KindKeyword) || p.checkKind(token.KindIdentifier) {
		name += p.peek()
		p.consume()
		for p.check("::") {
			if err := p.match("::"); err != nil {
				return nil, err
			}
			name += "::" + p.peek()
			if err := p.match(token.Identifier); err != nil {
				return nil, err
			}
		}
		return &ast.Type{Name: name}, nil
	}
	return nil, &SyntaxError{Expected: "type", Found: p.peek(), Pos: p.pos}
}

func (p *Parser) parseStatement() (ast.Node, error) {
	switch {
	case p.check("{"):
		return p.parseBlock()
	case p.check("if"):
		return p.parseIf()
	case p.check("while"):
		return p.parseWhile()
	case p.check("for"):
		return p.parseFor()
	case p.check("return"):
		return p.parseReturn()
	}

	if p.looksLikeDeclaration() {
		return p.parseDeclarationStatement()
	}
	return p.parseExpressionStatement()
}

// looksLikeDeclaration speculatively scans past a type-shaped prefix to see
// whether an identifier follows. The cursor is always restored.
func (p *Parser) looksLikeDeclaration() bool {
	start := p.pos
	defer func() { p.pos = start }()

	cur := p.peek()
	if tokenKind(cur) != token.KindKeyword && tokenKind(cur) != token.KindIdentifier {
		return false
	}
	p.consume()
	if cur == "const" {
		if p.checkKind(token.KindKeyword) || p.checkKind(token.KindIdentifier) {
			p.consume()
		}
	}
	return p.checkKind(token.KindIdentifier)
}

func (p *Parser) parseDeclarationStatement() (ast.Node, error) {
	declType, err := p.parseType()
	if err != nil {
		return nil, err
	}
	name := p.peek()
	if err := p.match(token.Identifier); err != nil {
		return nil, err
	}

	var init ast.Node
	if p.check("=") {
		p.consume()
		init, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}

	if err := p.match(";"); err != nil {
		return nil, err
	}
	return &ast.VariableDeclaration{
		DeclType:    declType,
		Name:        &ast.Identifier{Name: name},
		Initializer: init,
	}, nil
}

func (p *Parser) parseIf() (ast.Node, error) {
	if err := p.match("if"); err != nil {
		return nil, err
	}
	if err := p.match("("); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.match(")"); err != nil {
		return nil, err
	}
	then, err := p.parseStatement()
	if err != nil {
		return nil, err
	}

	// Dangling else binds to the nearest unmatched if.
	var elseBranch ast.Node
	if p.check("else") {
		p.consume()
		elseBranch, err = p.parseStatement()
		if err != nil {
			return nil, err
		}
	}
	return &ast.If{Condition: cond, Then: then, Else: elseBranch}, nil
}

func (p *Parser) parseWhile() (ast.Node, error) {
	if err := p.match("while"); err != nil {
		return nil, err
	}
	if err := p.match("("); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.match(")"); err != nil {
		return nil, err
	}
	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	return &ast.While{Condition: cond, Body: body}, nil
}

// parseFor handles the three independently optional clauses. The initializer
// reuses the declaration-vs-expression lookahead; both forms consume their
// trailing semicolon.
func (p *Parser) parseFor() (ast.Node, error) {
	if err := p.match("for"); err != nil {
		return nil, err
	}
	if err := p.match("("); err != nil {
		return nil, err
	}

	var init ast.Node
	var err error
	if !p.check(";") {
		if p.looksLikeDeclaration() {
			init, err = p.parseDeclarationStatement()
		} else {
			init, err = p.parseExpressionStatement()
		}
		if err != nil {
			return nil, err
		}
	} else if err := p.match(";"); err != nil {
		return nil, err
	}

	var cond ast.Node
	if !p.check(";") {
		cond, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}
	if err := p.match(";"); err != nil {
		return nil, err
	}

	var incr ast.Node
	if !p.check(")") {
		incr, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}
	if err := p.match(")"); err != nil {
		return nil, err
	}

	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	return &ast.For{Initializer: init, Condition: cond, Increment: incr, Body: body}, nil
}

func (p *Parser) parseReturn() (ast.Node, error) {
	if err := p.match("return"); err != nil {
		return nil, err
	}
	var expr ast.Node
	var err error
	if !p.check(";") {
		expr, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}
	if err := p.match(";"); err != nil {
		return nil, err
	}
	return &ast.Return{Expression: expr}, nil
}

func (p *Parser) parseExpressionStatement() (ast.Node, error) {
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.match(";"); err != nil {
		return nil, err
	}
	return &ast.ExpressionStatement{Expression: expr}, nil
}

func (p *Parser) parseBlock() (ast.Node, error) {
	if err := p.match("{"); err != nil {
		return nil, err
	}
	block := &ast.Block{}
	for !p.check("}") {
		if p.check(token.EOF) {
			return nil, &SyntaxError{Expected: "}", Found: token.EOF, Pos: p.pos}
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		block.Statements = append(block.Statements, stmt)
	}
	if err := p.match("}"); err != nil {
		return nil, err
	}
	return block, nil
}
