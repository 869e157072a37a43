package latex

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// DefaultClasses are CSS classes assigned to rendered elements, keys are node kind names
var DefaultClasses = map[string]string{
	TitleKind.String():     "text-3xl font-bold",
	SubtitleKind.String():  "text-xl mt-2",
	SectionKind.String():   "text-xl font-bold mt-6 mb-3 border-b-2 border-gray-300 pb-1",
	CenterKind.String():    "text-center mb-6",
	ListKind.String():      "list-disc mb-3",
	ItemKind.String():      "ml-6 mb-1",
	ParagraphKind.String(): "mb-2",
	FillKind.String():      "float-right",
	SpaceKind.String():     "block",
}

// Renderer turns document tree into HTML
type Renderer struct {
	classes map[string]string
}

// NewRenderer creates renderer, classes override DefaultClasses, an empty value removes the class.
func NewRenderer(classes map[string]string) *Renderer {
	merged := make(map[string]string, len(DefaultClasses))
	for k, v := range DefaultClasses {
		merged[k] = v
	}

	for k, v := range classes {
		merged[k] = v
	}

	return &Renderer{classes: merged}
}

func Render(w io.Writer, node *Node) error {
	return NewRenderer(nil).Render(w, node)
}

// Render writes HTML for the node, text is always escaped
func (r *Renderer) Render(w io.Writer, node *Node) error {
	for index, n := range r.Build(node) {
		if index > 0 {
			if _, err := fmt.Fprint(w, "\n"); err != nil {
				return err
			}
		}

		if err := html.Render(w, n); err != nil {
			return err
		}
	}

	return nil
}

// Build creates HTML nodes for the document node (or any other node), nodes are returned detached so they
// can be attached to the host document.
func (r *Renderer) Build(node *Node) []*html.Node {
	container := &html.Node{Type: html.DocumentNode}
	r.build(container, node)

	var out []*html.Node
	for c := container.FirstChild; c != nil; {
		next := c.NextSibling
		container.RemoveChild(c)
		out = append(out, c)
		c = next
	}

	return out
}

func (r *Renderer) build(parent *html.Node, node *Node) {
	switch node.Kind {
	case DocumentKind:
		r.children(parent, node.Children)
	case TextKind:
		parent.AppendChild(&html.Node{Type: html.TextNode, Data: node.Data})
	case BoldKind:
		r.wrap(parent, node, atom.Strong)
	case ItalicKind:
		r.wrap(parent, node, atom.Em)
	case TitleKind:
		r.wrap(parent, node, atom.H1)
	case SubtitleKind:
		r.wrap(parent, node, atom.H2)
	case SectionKind:
		r.wrap(parent, node, atom.H3)
	case CenterKind:
		r.wrap(parent, node, atom.Div)
	case ParagraphKind:
		r.wrap(parent, node, atom.P)
	case ListKind:
		if node.Data == "enumerate" {
			r.wrap(parent, node, atom.Ol)
			return
		}

		r.wrap(parent, node, atom.Ul)
	case ItemKind:
		li := r.element(atom.Li, node.Kind)
		if label := node.Parameters["label"]; label != "" {
			strong := r.element(atom.Strong, BoldKind)
			strong.AppendChild(&html.Node{Type: html.TextNode, Data: label})
			li.AppendChild(strong)
			li.AppendChild(&html.Node{Type: html.TextNode, Data: " "})
		}

		r.children(li, node.Children)
		parent.AppendChild(li)
	case LineBreakKind:
		parent.AppendChild(r.element(atom.Br, node.Kind))
	case FillKind:
		parent.AppendChild(r.element(atom.Span, node.Kind))
	case SpaceKind:
		r.space(parent, node)
	}
}

func (r *Renderer) wrap(parent *html.Node, node *Node, a atom.Atom) {
	element := r.element(a, node.Kind)
	r.children(element, node.Children)
	parent.AppendChild(element)
}

// children renders nodes in order, content following \hfill up to the end of line is placed into floating element
func (r *Renderer) children(parent *html.Node, nodes []*Node) {
	target := parent
	for _, node := range nodes {
		switch {
		case node.Kind == FillKind:
			target = r.element(atom.Span, node.Kind)
			parent.AppendChild(target)
			continue
		case node.Kind == LineBreakKind || !node.inline():
			target = parent
		case node.Kind == TextKind && target != parent:
			if line, rest, found := strings.Cut(node.Data, "\n"); found {
				target.AppendChild(&html.Node{Type: html.TextNode, Data: line})
				target = parent
				parent.AppendChild(&html.Node{Type: html.TextNode, Data: "\n" + rest})
				continue
			}
		}

		r.build(target, node)
	}
}

// space renders vertical space, lengths which can't be converted to pixels are ignored
func (r *Renderer) space(parent *html.Node, node *Node) {
	px, err := MeasurePixels(node.Parameters["height"])
	if err != nil || px <= 0 {
		return
	}

	div := r.element(atom.Div, node.Kind)
	div.Attr = append(div.Attr, html.Attribute{Key: "style", Val: fmt.Sprintf("height: %.1fpx", px)})
	parent.AppendChild(div)
}

func (r *Renderer) element(a atom.Atom, kind Kind) *html.Node {
	node := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}

	switch a {
	case atom.Strong, atom.Em, atom.Br:
		// inline formatting is not styled
	default:
		if class := r.classes[kind.String()]; class != "" {
			node.Attr = []html.Attribute{{Key: "class", Val: class}}
		}
	}

	return node
}
