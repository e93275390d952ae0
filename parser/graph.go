package parser

// AllParsers returns every parser reachable from root, each exactly once, in
// depth-first order following child order. Cycles are handled by a visited
// set.
func AllParsers(root Parser) []Parser {
	var ordered []Parser
	visited := make(map[Parser]bool)
	var walk func(p Parser)
	walk = func(p Parser) {
		if visited[p] {
			return
		}
		visited[p] = true
		ordered = append(ordered, p)
		for _, child := range p.Children() {
			walk(child)
		}
	}
	walk(root)
	return ordered
}

// DeepCopy returns an isomorphic copy of the graph reachable from root: every
// node is shallow-copied and all child references are remapped onto the
// copies, so cycles in the source become cycles in the copy. The result
// shares no nodes with the source.
func DeepCopy(root Parser) Parser {
	return Transform(root, nil)
}

// Transform returns a copy of the graph reachable from root in which every
// node present in replacements is substituted by its replacement and every
// other node by a shallow copy. Child references of the copies are remapped;
// replacement nodes are taken as given, their internals are not rewritten.
func Transform(root Parser, replacements map[Parser]Parser) Parser {
	all := AllParsers(root)
	mapping := make(map[Parser]Parser, len(all))
	for _, p := range all {
		if r, ok := replacements[p]; ok {
			mapping[p] = r
		} else {
			mapping[p] = p.Copy()
		}
	}
	for _, p := range all {
		if _, replaced := replacements[p]; replaced {
			continue
		}
		clone := mapping[p]
		for _, child := range p.Children() {
			clone.Replace(child, mapping[child])
		}
	}
	return mapping[root]
}

// ReplaceAll substitutes with for old in every node reachable from root,
// mutating the graph in place. Calling it again with the same arguments is a
// no-op.
func ReplaceAll(root Parser, old, with Parser) {
	for _, p := range AllParsers(root) {
		p.Replace(old, with)
	}
}

type parserPair struct {
	left, right Parser
}

// EqualParsers reports structural equality of the graphs rooted at a and b:
// corresponding nodes have the same variant and configuration and their
// children correspond pairwise. A visited set of node pairs makes the
// comparison terminate on cycles.
func EqualParsers(a, b Parser) bool {
	return matchParsers(a, b, make(map[parserPair]bool))
}

func matchParsers(a, b Parser, visited map[parserPair]bool) bool {
	pair := parserPair{a, b}
	if visited[pair] {
		return true
	}
	visited[pair] = true
	if !a.equalProperties(b) {
		return false
	}
	ca, cb := a.Children(), b.Children()
	if len(ca) != len(cb) {
		return false
	}
	for i := range ca {
		if !matchParsers(ca[i], cb[i], visited) {
			return false
		}
	}
	return true
}
