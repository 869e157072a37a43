package latex

import (
	"strings"
)

// arguments splits raw command arguments like [opt]{one}{two} into optional and mandatory values
func arguments(raw string) (opts []string, args []string) {
	runes := []rune(raw)
	for pos := 0; pos < len(runes); pos++ {
		var close rune
		switch runes[pos] {
		case '[':
			close = ']'
		case '{':
			close = '}'
		default:
			continue
		}

		end := matching(runes, pos, close)
		value := string(runes[pos+1 : end])

		if close == ']' {
			opts = append(opts, value)
		} else {
			args = append(args, value)
		}

		pos = end
	}

	return
}

// matching finds position of the symbol closing group started at pos, or length of input if group is not closed
func matching(runes []rune, pos int, close rune) int {
	depth := 0
	for i := pos + 1; i < len(runes); i++ {
		switch runes[i] {
		case '\\':
			i++
		case '{':
			depth++
		case '}':
			if depth == 0 && close == '}' {
				return i
			}

			depth--
		case close:
			if depth == 0 {
				return i
			}
		}
	}

	return len(runes)
}

// trim removes whitespace at the edges of inline content
func trim(children []*Node) []*Node {
	for len(children) > 0 && children[0].Kind == TextKind {
		children[0].Data = strings.TrimLeft(children[0].Data, " \t\r\n")
		if children[0].Data != "" {
			break
		}

		children = children[1:]
	}

	for len(children) > 0 && children[len(children)-1].Kind == TextKind {
		last := children[len(children)-1]
		last.Data = strings.TrimRight(last.Data, " \t\r\n")
		if last.Data != "" {
			break
		}

		children = children[:len(children)-1]
	}

	return children
}

// unwrapBold returns content of the bold node if it's the only child
func unwrapBold(children []*Node) []*Node {
	if len(children) == 1 && children[0].Kind == BoldKind {
		return children[0].Children
	}

	return children
}

func indexOf(children []*Node, kind Kind) int {
	for i, child := range children {
		if child.Kind == kind {
			return i
		}
	}

	return -1
}

// firstContent finds first node starting at pos which is not a whitespace or a line break
func firstContent(children []*Node, pos int) int {
	for i := pos; i < len(children); i++ {
		if blank(children[i]) || children[i].Kind == LineBreakKind {
			continue
		}

		return i
	}

	return -1
}

func blank(node *Node) bool {
	return node.Kind == TextKind && strings.TrimSpace(node.Data) == ""
}
