package parser

import (
	"github.com/codemimic/mimic/pkg/ast"
	"github.com/codemimic/mimic/pkg/token"
)

// Expression precedence ladder, lowest first. Each level parses the next
// tighter level for its operands.

func (p *Parser) parseExpression() (ast.Node, error) {
	return p.parseAssignment()
}

// parseAssignment is right-associative: a = b = c parses as a = (b = c).
func (p *Parser) parseAssignment() (ast.Node, error) {
	expr, err := p.parseLogicalOr()
	if err != nil {
		return nil, err
	}
	switch p.peek() {
	case "=", "+=", "-=", "*=", "/=":
		op := p.peek()
		p.consume()
		right, err := p.parseAssignment()
		if err != nil {
			return nil, err
		}
		return &ast.BinaryExpression{Left: expr, Right: right, Operator: op}, nil
	}
	return expr, nil
}

func (p *Parser) parseLogicalOr() (ast.Node, error) {
	return p.parseBinaryLevel([]string{"||"}, p.parseLogicalAnd)
}

func (p *Parser) parseLogicalAnd() (ast.Node, error) {
	return p.parseBinaryLevel([]string{"&&"}, p.parseEquality)
}

func (p *Parser) parseEquality() (ast.Node, error) {
	return p.parseBinaryLevel([]string{"==", "!="}, p.parseRelational)
}

func (p *Parser) parseRelational() (ast.Node, error) {
	return p.parseBinaryLevel([]string{"<", ">", "<=", ">="}, p.parseShift)
}

func (p *Parser) parseShift() (ast.Node, error) {
	return p.parseBinaryLevel([]string{"<<", ">>"}, p.parseAdditive)
}

func (p *Parser) parseAdditive() (ast.Node, error) {
	return p.parseBinaryLevel([]string{"+", "-"}, p.parseMultiplicative)
}

func (p *Parser) parseMultiplicative() (ast.Node, error) {
	return p.parseBinaryLevel([]string{"*", "/", "%"}, p.parseUnary)
}

// parseBinaryLevel parses a left-associative run of the given operators.
func (p *Parser) parseBinaryLevel(ops []string, next func() (ast.Node, error)) (ast.Node, error) {
	expr, err := next()
	if err != nil {
		return nil, err
	}
	for p.checkAny(ops) {
		op := p.peek()
		p.consume()
		right, err := next()
		if err != nil {
			return nil, err
		}
		expr = &ast.BinaryExpression{Left: expr, Right: right, Operator: op}
	}
	return expr, nil
}

func (p *Parser) checkAny(ops []string) bool {
	cur := p.peek()
	for _, op := range ops {
		if cur == op {
			return true
		}
	}
	return false
}

func (p *Parser) parseUnary() (ast.Node, error) {
	switch p.peek() {
	case "++", "--", "+", "-", "!":
		op := p.peek()
		p.consume()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpression{Operand: operand, Operator: op}, nil
	}
	return p.parsePostfix()
}

// parsePostfix handles postfix increment/decrement and call application,
// which may chain: f(x)(y)++ is legal grammar here.
func (p *Parser) parsePostfix() (ast.Node, error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	for {
		switch p.peek() {
		case "++", "--":
			op := p.peek()
			p.consume()
			expr = &ast.UnaryExpression{Operand: expr, Operator: op}
		case "(":
			p.consume()
			call := &ast.FunctionCall{Callee: expr}
			if !p.check(")") {
				arg, err := p.parseExpression()
				if err != nil {
					return nil, err
				}
				call.Arguments = append(call.Arguments, arg)
				for p.check(",") {
					p.consume()
					arg, err := p.parseExpression()
					if err != nil {
						return nil, err
					}
					call.Arguments = append(call.Arguments, arg)
				}
			}
			if err := p.match(")"); err != nil {
				return nil, err
			}
			expr = call
		default:
			return expr, nil
		}
	}
}

func (p *Parser) parsePrimary() (ast.Node, error) {
	tok := p.peek()

	if p.check("(") {
		p.consume()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if err := p.match(")"); err != nil {
			return nil, err
		}
		return expr, nil
	}

	switch tokenKind(tok) {
	case token.KindIdentifier:
		p.consume()
		name := tok
		for p.check("::") {
			if err := p.match("::"); err != nil {
				return nil, err
			}
			name += "::" + p.peek()
			if err := p.match(token.Identifier); err != nil {
				return nil, err
			}
		}
		return &ast.Identifier{Name: name}, nil
	case token.KindNumberLiteral:
		p.consume()
		return &ast.NumberLiteral{Value: tok}, nil
	case token.KindStringLiteral:
		p.consume()
		return &ast.StringLiteral{Value: tok}, nil
	case token.KindCharLiteral:
		p.consume()
		return &ast.CharLiteral{Value: tok}, nil
	}

	return nil, &SyntaxError{Expected: "expression", Found: tok, Pos: p.pos}
}
