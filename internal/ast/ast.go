package ast

import "github.com/pakhi-lang/pakhi/internal/token"

// Node is implemented by every statement and expression. All nodes carry the
// source location used for error reporting.
type Node interface {
	Line() int
	File() string
}

// Pos is embedded in every node.
type Pos struct {
	LineNo  int
	SrcFile string
}

func (p Pos) Line() int    { return p.LineNo }
func (p Pos) File() string { return p.SrcFile }

// Stmt is one record of the flat, jump-addressed statement list the parser
// produces. Blocks are delimited by explicit BlockStart/BlockEnd markers so
// the evaluator can do address-based control flow; expressions stay
// tree-shaped.
type Stmt interface {
	Node
	stmtNode()
}

type Print struct {
	Pos
	Expr Expr
}

type PrintNoEOL struct {
	Pos
	Expr Expr
}

type AssignKind int

const (
	// FirstAssignment binds a new name in the innermost scope.
	FirstAssignment AssignKind = iota
	// Reassignment mutates an existing binding, or a heap slot when index
	// suffixes are present.
	Reassignment
)

type Assignment struct {
	Pos
	Kind    AssignKind
	Name    string
	Indexes []Expr // index suffixes on the target, empty for plain assignment
	Init    Expr   // nil for a bare declaration
}

type If struct {
	Pos
	Cond Expr
}

type Else struct {
	Pos
}

// FuncDef marks a function definition. The next statement is the header
// (an Expression holding a Call whose callee is the function name and whose
// arguments are the parameter names), followed by the body block and a
// trailing Return that closes the definition.
type FuncDef struct {
	Pos
}

type Expression struct {
	Pos
	Expr Expr
}

// Loop begins an unconditional loop. The parser closes the body block with a
// Continue statement acting as the loop's back-edge and Break's scan target.
type Loop struct {
	Pos
}

type Continue struct {
	Pos
}

type Break struct {
	Pos
}

type BlockStart struct {
	Pos
}

type BlockEnd struct {
	Pos
}

type Return struct {
	Pos
	Expr Expr
}

// EOS terminates the statement list.
type EOS struct {
	Pos
}

func (*Print) stmtNode()      {}
func (*PrintNoEOL) stmtNode() {}
func (*Assignment) stmtNode() {}
func (*If) stmtNode()         {}
func (*Else) stmtNode()       {}
func (*FuncDef) stmtNode()    {}
func (*Expression) stmtNode() {}
func (*Loop) stmtNode()       {}
func (*Continue) stmtNode()   {}
func (*Break) stmtNode()      {}
func (*BlockStart) stmtNode() {}
func (*BlockEnd) stmtNode()   {}
func (*Return) stmtNode()     {}
func (*EOS) stmtNode()        {}

// Expr is a tree-shaped expression node.
type Expr interface {
	Node
	exprNode()
}

type Num struct {
	Pos
	Value float64
}

type Str struct {
	Pos
	Value string
}

type Boolean struct {
	Pos
	Value bool
}

type NilLit struct {
	Pos
}

type Var struct {
	Pos
	Name string
}

type Group struct {
	Pos
	Expr Expr
}

type Unary struct {
	Pos
	Op    token.Type
	Right Expr
}

type Binary struct {
	Pos
	Op    token.Type
	Left  Expr
	Right Expr
}

type Call struct {
	Pos
	Callee Expr
	Args   []Expr
}

type Index struct {
	Pos
	Target Expr
	Idx    Expr
}

type ListLit struct {
	Pos
	Elements []Expr
}

// RecordLit holds keys and values pairwise in declaration order; later
// duplicate keys overwrite earlier ones at evaluation time.
type RecordLit struct {
	Pos
	Keys   []Expr
	Values []Expr
}

func (*Num) exprNode()       {}
func (*Str) exprNode()       {}
func (*Boolean) exprNode()   {}
func (*NilLit) exprNode()    {}
func (*Var) exprNode()       {}
func (*Group) exprNode()     {}
func (*Unary) exprNode()     {}
func (*Binary) exprNode()    {}
func (*Call) exprNode()      {}
func (*Index) exprNode()     {}
func (*ListLit) exprNode()   {}
func (*RecordLit) exprNode() {}
