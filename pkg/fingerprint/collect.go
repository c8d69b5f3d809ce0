package fingerprint

import (
	"github.com/codemimic/mimic/pkg/ast"
)

// Collect performs a depth-first pre-order walk inserting every node's
// canonical hash. For loops are rewritten to their while-loop equivalent
// before hashing, so for(init; cond; incr) body and the hand-written
// init; while(cond) { body; incr; } converge to the same fingerprints.
func Collect(root ast.Node) *Set {
	set := NewSet()
	collect(root, set)
	return set
}

func collect(node ast.Node, set *Set) {
	if node == nil {
		return
	}

	if forNode, ok := node.(*ast.For); ok {
		collectCanonicalFor(forNode, set)
		return
	}

	set.Add(node.Hash())

	switch n := node.(type) {
	case *ast.Program:
		for _, d := range n.Declarations {
			collect(d, set)
		}
	case *ast.FunctionDefinition:
		collect(n.ReturnType, set)
		collect(n.Name, set)
		for _, p := range n.Parameters {
			collect(p, set)
		}
		collect(n.Body, set)
	case *ast.VariableDeclaration:
		collect(n.DeclType, set)
		collect(n.Name, set)
		collect(n.Initializer, set)
	case *ast.If:
		collect(n.Condition, set)
		collect(n.Then, set)
		collect(n.Else, set)
	case *ast.While:
		collect(n.Condition, set)
		collect(n.Body, set)
	case *ast.Return:
		collect(n.Expression, set)
	case *ast.ExpressionStatement:
		collect(n.Expression, set)
	case *ast.Block:
		for _, s := range n.Statements {
			collect(s, set)
		}
	case *ast.BinaryExpression:
		collect(n.Left, set)
		collect(n.Right, set)
	case *ast.UnaryExpression:
		collect(n.Operand, set)
	case *ast.FunctionCall:
		collect(n.Callee, set)
		for _, a := range n.Arguments {
			collect(a, set)
		}
	case *ast.Parameter:
		collect(n.ParamType, set)
		collect(n.Name, set)
	}
	// Leaves (Identifier, literals, Type) have no children.
}

// collectCanonicalFor assembles a temporary while-loop tree from clones of
// the for-loop's parts and collects that instead of the for node itself.
// The original subtree is never visited directly and never mutated.
func collectCanonicalFor(forNode *ast.For, set *Set) {
	// The initializer is a statement preceding the loop. A declaration is
	// collected as-is; a bare expression is wrapped the way it would appear
	// as a standalone statement.
	if forNode.Initializer != nil {
		if forNode.Initializer.Kind() == ast.KindVariableDeclaration {
			collect(forNode.Initializer, set)
		} else {
			init := forNode.Initializer
			if init.Kind() != ast.KindExpressionStatement {
				init = &ast.ExpressionStatement{Expression: init.Clone()}
			}
			collect(init, set)
		}
	}

	// The synthetic body flattens an existing block rather than nesting it,
	// and appends the increment as its last statement.
	body := &ast.Block{}
	if forNode.Body != nil {
		if block, ok := forNode.Body.(*ast.Block); ok {
			for _, stmt := range block.Statements {
				body.Statements = append(body.Statements, stmt.Clone())
			}
		} else {
			body.Statements = append(body.Statements, forNode.Body.Clone())
		}
	}
	if forNode.Increment != nil {
		body.Statements = append(body.Statements, &ast.ExpressionStatement{
			Expression: forNode.Increment.Clone(),
		})
	}

	var cond ast.Node
	if forNode.Condition != nil {
		cond = forNode.Condition.Clone()
	} else {
		// An empty condition loops unconditionally; canonicalize to the
		// literal truth a hand-written while(true) would parse to.
		cond = &ast.Identifier{Name: "true"}
	}

	collect(&ast.While{Condition: cond, Body: body}, set)
}
