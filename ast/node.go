/*
File    : sltrans/ast/node.go

Package ast defines the syntax tree the parser builds and the evaluator
walks. spec.md section 3 describes the tree as a small tagged union rather
than one shared base type with a nullable lexeme field: most nodes carry a
lexeme (the token that introduced them - an operator, a keyword, an
identifier use), but block-shaped nodes (the program root and each
`{ ... }` block) exist purely to own an ordered run of children and never
carry one. Folding that into a single struct with an always-legal
Lexeme field would let a caller dereference a nil lexeme on any node without
a compile-time hint that the node might not have one; keeping the tag
explicit makes that case something callers have to name.
*/
package ast

import "github.com/sl-translate/sltrans/lexer"

// Tag selects which of a Node's fields are meaningful.
type Tag int

const (
	// Common nodes carry a Lexeme: operators, keywords, identifier uses,
	// literals. Children, if any, are operands.
	Common Tag = iota
	// Declaration nodes introduce a variable. Lexeme is the identifier
	// lexeme being declared; Children holds the declared type keyword node
	// first, then an optional initializer. An array size is recorded on the
	// variable table row, not as a child.
	Declaration
	// CodeBlock nodes own an ordered sequence of statements and carry no
	// Lexeme of their own.
	CodeBlock
	// IndexAppeal nodes represent a subscripted use of an array, a[expr].
	// Lexeme is the array identifier's lexeme; Children holds exactly the
	// index expression.
	IndexAppeal
)

// Node is one element of the syntax tree. Children are owned: the tree is
// a strict forest with no shared subtrees and no back-edges, so it can be
// walked, copied, or freed without cycle bookkeeping.
type Node struct {
	Tag      Tag
	Lexeme   *lexer.Lexeme
	Children []*Node

	// VarIndex caches the resolved row index into the shared variable
	// table for Declaration and IndexAppeal nodes. Common and CodeBlock
	// nodes keep -1; a Common identifier use finds its row through
	// Lexeme.Index.
	VarIndex int
}

// NewCommon returns a Common node for lex with the given operands.
func NewCommon(lex *lexer.Lexeme, children ...*Node) *Node {
	return &Node{Tag: Common, Lexeme: lex, Children: children, VarIndex: -1}
}

// NewDeclaration returns a Declaration node for the identifier lex,
// resolved to varIndex in the shared variable table.
func NewDeclaration(lex *lexer.Lexeme, varIndex int, children ...*Node) *Node {
	return &Node{Tag: Declaration, Lexeme: lex, Children: children, VarIndex: varIndex}
}

// NewCodeBlock returns a block node owning statements in order.
func NewCodeBlock(statements ...*Node) *Node {
	return &Node{Tag: CodeBlock, Children: statements, VarIndex: -1}
}

// NewIndexAppeal returns an a[expr] node for the array identifier lex.
func NewIndexAppeal(lex *lexer.Lexeme, varIndex int, index *Node) *Node {
	return &Node{Tag: IndexAppeal, Lexeme: lex, Children: []*Node{index}, VarIndex: varIndex}
}

// Append adds a child statement to a CodeBlock node in place.
func (n *Node) Append(child *Node) {
	n.Children = append(n.Children, child)
}
