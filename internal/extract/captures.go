package extract

import (
	tree_sitter "github.com/tree-sitter/go-tree-sitter"
)

// nodeRef exposes the minimal node surface the synthesizer needs for span
// resolution: a node's own range and its parent's. Fallback captures carry a
// nil nodeRef because their spans are already resolved.
type nodeRef interface {
	Range() Span
	// ParentRange returns the span of the enclosing node. ok is false at
	// the tree root.
	ParentRange() (span Span, ok bool)
}

// sitterNode adapts a tree-sitter node to nodeRef.
type sitterNode struct {
	node *tree_sitter.Node
}

func (s sitterNode) Range() Span {
	return nodeSpan(s.node)
}

func (s sitterNode) ParentRange() (Span, bool) {
	parent := s.node.Parent()
	if parent == nil {
		return Span{}, false
	}
	return nodeSpan(parent), true
}

func nodeSpan(node *tree_sitter.Node) Span {
	return Span{
		StartLine: node.StartPosition().Row,
		EndLine:   node.EndPosition().Row,
		StartByte: node.StartByte(),
		EndByte:   node.EndByte(),
	}
}

// RunQuery executes a compiled query against a tree and returns every capture
// in match order. Purely mechanical: no filtering or labeling happens here.
// The returned captures reference nodes owned by the tree and must not
// outlive it.
func RunQuery(query *tree_sitter.Query, tree *tree_sitter.Tree, source []byte) []Capture {
	cursor := tree_sitter.NewQueryCursor()
	defer cursor.Close()

	names := query.CaptureNames()

	var captures []Capture
	matches := cursor.Matches(query, tree.RootNode(), source)
	for match := matches.Next(); match != nil; match = matches.Next() {
		for _, qc := range match.Captures {
			node := qc.Node
			captures = append(captures, Capture{
				Span: nodeSpan(&node),
				Name: names[qc.Index],
				node: sitterNode{node: &node},
			})
		}
	}
	return captures
}
