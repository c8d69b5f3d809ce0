package ast

// Hashing constants shared by every node. All arithmetic stays below the
// modulus, so hash values fit comfortably in a uint64.
const (
	hashBase1   uint64 = 31
	hashBase2   uint64 = 37
	hashModulus uint64 = 1_000_000_007
)

// commutativeOperators hash identically regardless of operand order.
var commutativeOperators = map[string]struct{}{
	"+": {}, "*": {}, "==": {}, "!=": {}, "&&": {}, "||": {},
	"&": {}, "|": {}, "^": {},
}

// relationalFlips maps each canonicalizable relational operator to its
// mirror. x < 10 and 10 > x must hash identically.
var relationalFlips = map[string]string{
	"<": ">", ">": "<", "<=": ">=", ">=": "<=",
}

// combine folds the next child hash into the accumulator.
func combine(h, next uint64) uint64 {
	return (h*hashBase1 + next) % hashModulus
}

// hashString is a polynomial hash over the raw bytes, using the secondary
// base so operator and type-name hashes do not collide with combine chains.
func hashString(s string) uint64 {
	var h uint64
	power := uint64(1)
	for i := 0; i < len(s); i++ {
		h = (h + uint64(s[i])*power%hashModulus) % hashModulus
		power = (power * hashBase2) % hashModulus
	}
	return h
}

// Leaf nodes hash to their kind tag alone: two different identifiers, or two
// different literal values, are structurally identical.
func (i *Identifier) Hash() uint64    { return uint64(KindIdentifier) }
func (n *NumberLiteral) Hash() uint64 { return uint64(KindNumberLiteral) }
func (s *StringLiteral) Hash() uint64 { return uint64(KindStringLiteral) }
func (c *CharLiteral) Hash() uint64   { return uint64(KindCharLiteral) }

// Type names do matter: fold the textual name into the hash.
func (t *Type) Hash() uint64 {
	return combine(uint64(KindType), hashString(t.Name))
}

func (p *Program) Hash() uint64 {
	h := uint64(KindProgram)
	for _, d := range p.Declarations {
		h = combine(h, d.Hash())
	}
	return h
}

func (f *FunctionDefinition) Hash() uint64 {
	h := uint64(KindFunctionDefinition)
	h = combine(h, f.ReturnType.Hash())
	h = combine(h, f.Name.Hash())
	for _, p := range f.Parameters {
		h = combine(h, p.Hash())
	}
	return combine(h, f.Body.Hash())
}

func (v *VariableDeclaration) Hash() uint64 {
	h := uint64(KindVariableDeclaration)
	h = combine(h, v.DeclType.Hash())
	h = combine(h, v.Name.Hash())
	if v.Initializer != nil {
		h = combine(h, v.Initializer.Hash())
	}
	return h
}

func (i *If) Hash() uint64 {
	h := uint64(KindIf)
	h = combine(h, i.Condition.Hash())
	h = combine(h, i.Then.Hash())
	if i.Else != nil {
		h = combine(h, i.Else.Hash())
	}
	return h
}

func (w *While) Hash() uint64 {
	h := uint64(KindWhile)
	h = combine(h, w.Condition.Hash())
	return combine(h, w.Body.Hash())
}

func (f *For) Hash() uint64 {
	h := uint64(KindFor)
	if f.Initializer != nil {
		h = combine(h, f.Initializer.Hash())
	}
	if f.Condition != nil {
		h = combine(h, f.Condition.Hash())
	}
	if f.Increment != nil {
		h = combine(h, f.Increment.Hash())
	}
	return combine(h, f.Body.Hash())
}

func (r *Return) Hash() uint64 {
	h := uint64(KindReturn)
	if r.Expression != nil {
		h = combine(h, r.Expression.Hash())
	}
	return h
}

func (e *ExpressionStatement) Hash() uint64 {
	return combine(uint64(KindExpressionStatement), e.Expression.Hash())
}

func (b *Block) Hash() uint64 {
	h := uint64(KindBlock)
	for _, s := range b.Statements {
		h = combine(h, s.Hash())
	}
	return h
}

// Hash canonicalizes operand order before combining. The tie-break is a pure
// function of the child hash values, never of surface text, so it is stable
// under renaming while still separating genuinely different structures.
func (b *BinaryExpression) Hash() uint64 {
	left := b.Left.Hash()
	right := b.Right.Hash()
	op := b.Operator
	sorted := false

	if _, ok := commutativeOperators[op]; ok {
		sorted = true
	} else if flipped, ok := relationalFlips[op]; ok {
		sorted = true
		if left > right {
			left, right = right, left
			op = flipped
		}
	}

	h := uint64(KindBinaryExpression)
	h = combine(h, hashString(op))
	if sorted && left > right {
		left, right = right, left
	}
	h = combine(h, left)
	return combine(h, right)
}

func (u *UnaryExpression) Hash() uint64 {
	h := uint64(KindUnaryExpression)
	h = combine(h, hashString(u.Operator))
	return combine(h, u.Operand.Hash())
}

func (c *FunctionCall) Hash() uint64 {
	h := uint64(KindFunctionCall)
	h = combine(h, c.Callee.Hash())
	for _, a := range c.Arguments {
		h = combine(h, a.Hash())
	}
	return h
}

func (p *Parameter) Hash() uint64 {
	h := uint64(KindParameter)
	h = combine(h, p.ParamType.Hash())
	return combine(h, p.Name.Hash())
}
