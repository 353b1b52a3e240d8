package extract

import (
	"fmt"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
)

// ParseTree parses source into a syntax tree using the given grammar. A new
// tree-sitter parser is created per call, so concurrent callers never share
// mutable parser state. The returned tree is owned by the caller and must be
// closed after capture extraction.
//
// Grammars in this family recover from malformed input and still produce a
// usable partial tree; only a nil tree is treated as a parser fault.
func ParseTree(grammar *tree_sitter.Language, source []byte) (*tree_sitter.Tree, error) {
	parser := tree_sitter.NewParser()
	defer parser.Close()

	if err := parser.SetLanguage(grammar); err != nil {
		return nil, fmt.Errorf("set language: %w", err)
	}

	tree := parser.Parse(source, nil)
	if tree == nil {
		return nil, fmt.Errorf("parser returned nil tree")
	}
	return tree, nil
}
