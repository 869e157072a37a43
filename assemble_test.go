package latex_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	latex "github.com/eolymp/go-latex-preview"
)

func TestAssemble(t *testing.T) {
	par := func(children ...*latex.Node) *latex.Node {
		return element(latex.ParagraphKind, children...)
	}

	tt := []struct {
		name   string
		input  *latex.Node
		output *latex.Node
	}{
		{
			name:   "text becomes paragraph",
			input:  doc(text("Hello")),
			output: doc(par(text("Hello"))),
		},
		{
			name:   "paragraphs are separated by empty lines",
			input:  doc(text("one\ntwo\n  \nthree\n")),
			output: doc(par(text("one\ntwo")), par(text("three"))),
		},
		{
			name:  "blocks break paragraphs",
			input: doc(text("intro\n"), element(latex.SectionKind, text("S")), text("\nbody")),
			output: doc(
				par(text("intro")),
				element(latex.SectionKind, text("S")),
				par(text("body")),
			),
		},
		{
			name:   "inline elements stay in paragraph",
			input:  doc(text("a "), element(latex.BoldKind, text("b")), br(), text("c")),
			output: doc(par(text("a "), element(latex.BoldKind, text("b")), br(), text("c"))),
		},
		{
			name:   "whitespace at the edges is removed",
			input:  doc(text("\n\n"), element(latex.CenterKind, text("x")), text("  \n")),
			output: doc(element(latex.CenterKind, text("x"))),
		},
		{
			name:   "paragraph of line breaks is dropped",
			input:  doc(element(latex.SectionKind, text("S")), text("\n\n"), br(), text("\n\n"), element(latex.SectionKind, text("T"))),
			output: doc(element(latex.SectionKind, text("S")), element(latex.SectionKind, text("T"))),
		},
		{
			name:   "line break at the end of paragraph is dropped",
			input:  doc(text("one"), br(), text(" \n\ntwo")),
			output: doc(par(text("one")), par(text("two"))),
		},
		{
			name:   "empty nodes at the edges are removed",
			input:  doc(elementp(latex.SpaceKind, map[string]string{"height": "4pt"}), text("a"), element(latex.CenterKind)),
			output: doc(par(text("a"))),
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			got := latex.Assemble(tc.input)

			if diff := cmp.Diff(tc.output, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Tree does not match (-want +got):\n%s", diff)
			}
		})
	}
}
