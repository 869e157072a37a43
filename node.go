package latex

type Kind int

const (
	TextKind Kind = iota
	DocumentKind
	BoldKind
	ItalicKind
	TitleKind    // document title, a heading of the first level
	SubtitleKind // heading of the second level
	SectionKind
	CenterKind
	ListKind
	ItemKind
	LineBreakKind
	ParagraphKind
	FillKind  // \hfill, pushes the rest of the line to the right
	SpaceKind // vertical space
)

var kinds = map[Kind]string{
	TextKind:      "text",
	DocumentKind:  "document",
	BoldKind:      "bold",
	ItalicKind:    "italic",
	TitleKind:     "title",
	SubtitleKind:  "subtitle",
	SectionKind:   "section",
	CenterKind:    "center",
	ListKind:      "list",
	ItemKind:      "item",
	LineBreakKind: "linebreak",
	ParagraphKind: "paragraph",
	FillKind:      "fill",
	SpaceKind:     "space",
}

func (k Kind) String() string {
	if s, ok := kinds[k]; ok {
		return s
	}

	return "unknown"
}

// Node is an element of the document tree. Data holds text for TextKind nodes, Parameters hold attributes
// of elements (for example list options or line break length).
type Node struct {
	Kind       Kind
	Parameters map[string]string
	Data       string
	Children   []*Node
}

// inline returns true for nodes which are laid out within a line of text
func (n *Node) inline() bool {
	switch n.Kind {
	case TextKind, BoldKind, ItalicKind, LineBreakKind, FillKind:
		return true
	default:
		return false
	}
}
