package latex

import (
	"regexp"
	"strings"
)

var paragraphBreak = regexp.MustCompile(`\n[ \t\r]*\n\s*`)

// Assemble prepares parsed document for rendering: loose inline content at the top level is grouped into
// paragraphs, one paragraph per run of non-blank lines, and empty nodes at the document edges are removed.
func Assemble(doc *Node) *Node {
	var children []*Node
	var floating []*Node

	flush := func() {
		content := trim(floating)
		for len(content) > 0 && content[len(content)-1].Kind == LineBreakKind {
			content = trim(content[:len(content)-1])
		}

		paragraph := &Node{Kind: ParagraphKind, Children: content}
		if !empty(paragraph) {
			children = append(children, paragraph)
		}

		floating = nil
	}

	for _, child := range doc.Children {
		switch {
		case child.Kind == TextKind:
			for index, segment := range paragraphBreak.Split(child.Data, -1) {
				if index > 0 {
					flush()
				}

				if segment != "" {
					floating = append(floating, &Node{Kind: TextKind, Data: segment})
				}
			}
		case child.inline():
			floating = append(floating, child)
		default:
			flush()
			children = append(children, child)
		}
	}

	flush()

	for len(children) > 0 && empty(children[0]) {
		children = children[1:]
	}

	for len(children) > 0 && empty(children[len(children)-1]) {
		children = children[:len(children)-1]
	}

	return &Node{Kind: DocumentKind, Children: children}
}

// empty is true for nodes which do not display any text
func empty(node *Node) bool {
	return strings.TrimSpace(String(node)) == ""
}
