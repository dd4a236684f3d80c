package ast

// Visitor implements the Visitor pattern over the parse tree (spec §9's
// sum-type AST is walked this way rather than via reflection).
type Visitor interface {
	// Visit is invoked for every node before its children. If it returns
	// nil, the node's children are not visited.
	Visit(n Node) Visitor
}

// Walk traverses the tree rooted at n, calling v.Visit for n and (if it
// returns non-nil) every descendant, in source order.
func Walk(v Visitor, n Node) {
	if n == nil {
		return
	}
	n.Walk(v)
}

type inspector func(Node) bool

func (f inspector) Visit(n Node) Visitor {
	if f(n) {
		return f
	}
	return nil
}

// Inspect walks the tree rooted at n, calling f for each node. Walking
// stops for a subtree as soon as f returns false for its root.
func Inspect(n Node, f func(Node) bool) {
	Walk(inspector(f), n)
}
