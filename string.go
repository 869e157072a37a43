package latex

import (
	"strings"
)

// String returns text a reader sees for the node: formatting is dropped, line breaks become newlines and item
// labels are kept.
func String(node *Node) string {
	var b strings.Builder
	writeString(&b, node)

	return b.String()
}

func writeString(b *strings.Builder, node *Node) {
	switch node.Kind {
	case TextKind:
		b.WriteString(node.Data)
		return
	case LineBreakKind:
		b.WriteString("\n")
		return
	case ItemKind:
		if label := node.Parameters["label"]; label != "" {
			b.WriteString(label)
			b.WriteString(" ")
		}
	}

	for _, child := range node.Children {
		writeString(b, child)
	}
}
