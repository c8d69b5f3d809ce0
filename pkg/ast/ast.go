// Package ast defines the abstract syntax tree produced by the parser and the
// canonical structural hash computed over it. The hash is what makes two
// pieces of code comparable: it is blind to identifier names and literal
// values, and it normalizes operand order for commutative and relational
// operators, so superficially obfuscated copies converge to the same
// fingerprints.
package ast

// NodeKind tags every node with its structural role. The kind value seeds the
// node's canonical hash, so the ordering here is part of the hash definition.
type NodeKind int

const (
	KindProgram NodeKind = iota
	KindFunctionDefinition
	KindVariableDeclaration
	KindIf
	KindWhile
	KindFor
	KindReturn
	KindExpressionStatement
	KindBlock
	KindBinaryExpression
	KindUnaryExpression
	KindFunctionCall
	KindIdentifier
	KindNumberLiteral
	KindStringLiteral
	KindCharLiteral
	KindParameter
	KindType
)

// String returns the kind name for debug output.
func (k NodeKind) String() string {
	switch k {
	case KindProgram:
		return "Program"
	case KindFunctionDefinition:
		return "FunctionDefinition"
	case KindVariableDeclaration:
		return "VariableDeclaration"
	case KindIf:
		return "If"
	case KindWhile:
		return "While"
	case KindFor:
		return "For"
	case KindReturn:
		return "Return"
	case KindExpressionStatement:
		return "ExpressionStatement"
	case KindBlock:
		return "Block"
	case KindBinaryExpression:
		return "BinaryExpression"
	case KindUnaryExpression:
		return "UnaryExpression"
	case KindFunctionCall:
		return "FunctionCall"
	case KindIdentifier:
		return "Identifier"
	case KindNumberLiteral:
		return "NumberLiteral"
	case KindStringLiteral:
		return "StringLiteral"
	case KindCharLiteral:
		return "CharLiteral"
	case KindParameter:
		return "Parameter"
	case KindType:
		return "Type"
	default:
		return "Unknown"
	}
}

// Node is implemented by every AST node. Trees are singly owned: Clone
// produces a fully independent copy, which the fingerprint collector relies on
// when it assembles temporary canonical trees from borrowed subtrees.
type Node interface {
	Kind() NodeKind
	Hash() uint64
	Clone() Node
}

// Program is the root node: an ordered list of top-level declarations.
type Program struct {
	Declarations []Node
}

// FunctionDefinition is a function with return type, name, parameters, and a
// block body.
type FunctionDefinition struct {
	ReturnType *Type
	Name       *Identifier
	Parameters []Node
	Body       Node
}

// VariableDeclaration declares a typed variable with an optional initializer.
type VariableDeclaration struct {
	DeclType    *Type
	Name        *Identifier
	Initializer Node // nil when absent
}

// If is a conditional with an optional else branch.
type If struct {
	Condition Node
	Then      Node
	Else      Node // nil when absent
}

// While is a pre-test loop.
type While struct {
	Condition Node
	Body      Node
}

// For is a C-style three-clause loop. All clauses except the body are
// optional and may be nil.
type For struct {
	Initializer Node
	Condition   Node
	Increment   Node
	Body        Node
}

// Return carries an optional result expression.
type Return struct {
	Expression Node // nil when absent
}

// ExpressionStatement wraps an expression used as a statement.
type ExpressionStatement struct {
	Expression Node
}

// Block is an ordered statement sequence.
type Block struct {
	Statements []Node
}

// BinaryExpression applies an infix operator to two operands.
type BinaryExpression struct {
	Left     Node
	Right    Node
	Operator string
}

// UnaryExpression applies a prefix or postfix operator to one operand.
type UnaryExpression struct {
	Operand  Node
	Operator string
}

// FunctionCall applies a callee to an argument list.
type FunctionCall struct {
	Callee    Node
	Arguments []Node
}

// Identifier is a name reference. The name is retained for inspection but
// never participates in hashing.
type Identifier struct {
	Name string
}

// NumberLiteral is a numeric constant; its value never participates in
// hashing.
type NumberLiteral struct {
	Value string
}

// StringLiteral is a string constant; its value never participates in
// hashing.
type StringLiteral struct {
	Value string
}

// CharLiteral is a character constant; its value never participates in
// hashing.
type CharLiteral struct {
	Value string
}

// Parameter pairs a type with a parameter name.
type Parameter struct {
	ParamType *Type
	Name      *Identifier
}

// Type is a textual type name, with any const qualifier and :: qualifications
// folded in. Unlike identifiers, the name does affect the hash: declarations
// of different types are not structurally interchangeable.
type Type struct {
	Name string
}

func (*Program) Kind() NodeKind             { return KindProgram }
func (*FunctionDefinition) Kind() NodeKind  { return KindFunctionDefinition }
func (*VariableDeclaration) Kind() NodeKind { return KindVariableDeclaration }
func (*If) Kind() NodeKind                  { return KindIf }
func (*While) Kind() NodeKind               { return KindWhile }
func (*For) Kind() NodeKind                 { return KindFor }
func (*Return) Kind() NodeKind              { return KindReturn }
func (*ExpressionStatement) Kind() NodeKind { return KindExpressionStatement }
func (*Block) Kind() NodeKind               { return KindBlock }
func (*BinaryExpression) Kind() NodeKind    { return KindBinaryExpression }
func (*UnaryExpression) Kind() NodeKind     { return KindUnaryExpression }
func (*FunctionCall) Kind() NodeKind        { return KindFunctionCall }
func (*Identifier) Kind() NodeKind          { return KindIdentifier }
func (*NumberLiteral) Kind() NodeKind       { return KindNumberLiteral }
func (*StringLiteral) Kind() NodeKind       { return KindStringLiteral }
func (*CharLiteral) Kind() NodeKind         { return KindCharLiteral }
func (*Parameter) Kind() NodeKind           { return KindParameter }
func (*Type) Kind() NodeKind                { return KindType }

func cloneSlice(nodes []Node) []Node {
	if nodes == nil {
		return nil
	}
	out := make([]Node, len(nodes))
	for i, n := range nodes {
		out[i] = n.Clone()
	}
	return out
}

func cloneOrNil(n Node) Node {
	if n == nil {
		return nil
	}
	return n.Clone()
}

// Clone returns a deep copy with no shared nodes.
func (p *Program) Clone() Node {
	return &Program{Declarations: cloneSlice(p.Declarations)}
}

func (f *FunctionDefinition) Clone() Node {
	return &FunctionDefinition{
		ReturnType: f.ReturnType.Clone().(*Type),
		Name:       f.Name.Clone().(*Identifier),
		Parameters: cloneSlice(f.Parameters),
		Body:       f.Body.Clone(),
	}
}

func (v *VariableDeclaration) Clone() Node {
	return &VariableDeclaration{
		DeclType:    v.DeclType.Clone().(*Type),
		Name:        v.Name.Clone().(*Identifier),
		Initializer: cloneOrNil(v.Initializer),
	}
}

func (i *If) Clone() Node {
	return &If{
		Condition: i.Condition.Clone(),
		Then:      i.Then.Clone(),
		Else:      cloneOrNil(i.Else),
	}
}

func (w *While) Clone() Node {
	return &While{Condition: w.Condition.Clone(), Body: w.Body.Clone()}
}

func (f *For) Clone() Node {
	return &For{
		Initializer: cloneOrNil(f.Initializer),
		Condition:   cloneOrNil(f.Condition),
		Increment:   cloneOrNil(f.Increment),
		Body:        f.Body.Clone(),
	}
}

func (r *Return) Clone() Node {
	return &Return{Expression: cloneOrNil(r.Expression)}
}

func (e *ExpressionStatement) Clone() Node {
	return &ExpressionStatement{Expression: e.Expression.Clone()}
}

func (b *Block) Clone() Node {
	return &Block{Statements: cloneSlice(b.Statements)}
}

func (b *BinaryExpression) Clone() Node {
	return &BinaryExpression{
		Left:     b.Left.Clone(),
		Right:    b.Right.Clone(),
		Operator: b.Operator,
	}
}

func (u *UnaryExpression) Clone() Node {
	return &UnaryExpression{Operand: u.Operand.Clone(), Operator: u.Operator}
}

func (c *FunctionCall) Clone() Node {
	return &FunctionCall{Callee: c.Callee.Clone(), Arguments: cloneSlice(c.Arguments)}
}

func (i *Identifier) Clone() Node    { return &Identifier{Name: i.Name} }
func (n *NumberLiteral) Clone() Node { return &NumberLiteral{Value: n.Value} }
func (s *StringLiteral) Clone() Node { return &StringLiteral{Value: s.Value} }
func (c *CharLiteral) Clone() Node   { return &CharLiteral{Value: c.Value} }

func (p *Parameter) Clone() Node {
	return &Parameter{
		ParamType: p.ParamType.Clone().(*Type),
		Name:      p.Name.Clone().(*Identifier),
	}
}

func (t *Type) Clone() Node { return &Type{Name: t.Name} }
