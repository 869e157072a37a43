package latex_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	latex "github.com/eolymp/go-latex-preview"
)

func doc(children ...*latex.Node) *latex.Node {
	return &latex.Node{Kind: latex.DocumentKind, Children: children}
}

func text(t string) *latex.Node {
	return &latex.Node{Kind: latex.TextKind, Data: t}
}

func element(kind latex.Kind, children ...*latex.Node) *latex.Node {
	return &latex.Node{Kind: kind, Children: children}
}

func elementp(kind latex.Kind, params map[string]string, children ...*latex.Node) *latex.Node {
	return &latex.Node{Kind: kind, Parameters: params, Children: children}
}

func list(name string, items ...*latex.Node) *latex.Node {
	return &latex.Node{Kind: latex.ListKind, Data: name, Children: items}
}

func br() *latex.Node {
	return &latex.Node{Kind: latex.LineBreakKind}
}

func TestParse(t *testing.T) {
	item := func(children ...*latex.Node) *latex.Node {
		return element(latex.ItemKind, children...)
	}

	tt := []struct {
		name        string
		input       string
		output      *latex.Node
		diagnostics []latex.Diagnostic
	}{
		{
			name:   "simple text",
			input:  "Hello",
			output: doc(text("Hello")),
		},
		{
			name:  "simple formatting",
			input: "odd \\textbf{foo bar} baz",
			output: doc(
				text("odd "),
				element(latex.BoldKind, text("foo bar")),
				text(" baz"),
			),
		},
		{
			name:  "nested formatting",
			input: "\\textbf{foo \\textit{bar}}",
			output: doc(
				element(latex.BoldKind, text("foo "), element(latex.ItalicKind, text("bar"))),
			),
		},
		{
			name:  "itemize",
			input: "\\begin{itemize}\\item A \\textbf{B}\\item C\\end{itemize}",
			output: doc(list("itemize",
				item(text("A "), element(latex.BoldKind, text("B"))),
				item(text("C")),
			)),
		},
		{
			name:  "content before first item is discarded",
			input: "\\begin{itemize}\n  junk \\item A\n\\end{itemize}",
			output: doc(list("itemize",
				item(text("A")),
			)),
		},
		{
			name:  "nested itemize belongs to the item",
			input: "\\begin{itemize}\\item A\\begin{itemize}\\item B\\end{itemize}\\item C\\end{itemize}",
			output: doc(list("itemize",
				item(text("A"), list("itemize", item(text("B")))),
				item(text("C")),
			)),
		},
		{
			name:  "list options and item labels",
			input: "\\begin{itemize}[leftmargin=*, noitemsep]\\item[2020] Launch\\end{itemize}",
			output: doc(&latex.Node{
				Kind:       latex.ListKind,
				Data:       "itemize",
				Parameters: map[string]string{"leftmargin": "*", "noitemsep": ""},
				Children: []*latex.Node{
					elementp(latex.ItemKind, map[string]string{"label": "2020"}, text("Launch")),
				},
			}),
		},
		{
			name:   "preamble is stripped",
			input:  "\\documentclass[11pt]{article}\\usepackage{geometry}\\begin{document}Hello\\end{document}",
			output: doc(text("Hello")),
		},
		{
			name:   "escaped percent",
			input:  "50\\%",
			output: doc(text("50%")),
		},
		{
			name:   "section",
			input:  "\\section*{Experience}",
			output: doc(element(latex.SectionKind, text("Experience"))),
		},
		{
			name:  "sized headings in centered block",
			input: "\\begin{center}\n{\\LARGE \\textbf{John Doe}} \\\\\n{\\large Software Engineer} \\\\\njohn@example.com\n\\end{center}",
			output: doc(element(latex.CenterKind,
				element(latex.TitleKind, text("John Doe")),
				text(" "),
				br(),
				element(latex.SubtitleKind, text("Software Engineer")),
				text(" "),
				br(),
				text("john@example.com\n"),
			)),
		},
		{
			name:  "bold run in centered block is the title",
			input: "\\begin{center}\n\\textbf{Jane Roe}\\\\\nData Scientist\\\\\njane@example.com\n\\end{center}",
			output: doc(element(latex.CenterKind,
				element(latex.TitleKind, text("Jane Roe")),
				br(),
				element(latex.SubtitleKind, text("Data Scientist")),
				br(),
				text("jane@example.com\n"),
			)),
		},
		{
			name:  "subtitle is taken from the first line",
			input: "\\begin{center}\\textbf{Jane Roe}\nData Scientist\nLondon\\end{center}",
			output: doc(element(latex.CenterKind,
				element(latex.TitleKind, text("Jane Roe")),
				element(latex.SubtitleKind, text("Data Scientist")),
				text("London"),
			)),
		},
		{
			name:  "hfill",
			input: "\\textbf{Acme} \\hfill 2020",
			output: doc(
				element(latex.BoldKind, text("Acme")),
				text(" "),
				element(latex.FillKind),
				text("2020"),
			),
		},
		{
			name:  "line break with length",
			input: "a\\\\[2pt]b",
			output: doc(
				text("a"),
				elementp(latex.LineBreakKind, map[string]string{"length": "2pt"}),
				text("b"),
			),
		},
		{
			name:  "vertical space",
			input: "a\\vspace{4pt}b",
			output: doc(
				text("a"),
				elementp(latex.SpaceKind, map[string]string{"height": "4pt"}),
				text("b"),
			),
		},
		{
			name:   "replacements",
			input:  "a\\textbar b",
			output: doc(text("a|b")),
		},
		{
			name:   "command without argument produces empty node",
			input:  "\\textbf x",
			output: doc(element(latex.BoldKind), text("x")),
		},
		{
			name:   "anonymous group is transparent",
			input:  "a{b}c",
			output: doc(text("abc")),
		},
		{
			name:        "unterminated environment",
			input:       "\\begin{center}Title",
			output:      doc(element(latex.CenterKind, text("Title"))),
			diagnostics: []latex.Diagnostic{{Kind: latex.UnterminatedEnvironment, Name: "center"}},
		},
		{
			name:        "unterminated group",
			input:       "\\textbf{abc",
			output:      doc(element(latex.BoldKind, text("abc"))),
			diagnostics: []latex.Diagnostic{{Kind: latex.UnterminatedGroup}},
		},
		{
			name:        "mismatched environment is flattened",
			input:       "\\begin{center}\\begin{itemize}\\item x\\end{center}",
			output:      doc(element(latex.CenterKind, text("x"))),
			diagnostics: []latex.Diagnostic{{Kind: latex.MismatchedEnvironment, Name: "itemize"}},
		},
		{
			name:        "end without begin",
			input:       "a\\end{itemize}b",
			output:      doc(text("ab")),
			diagnostics: []latex.Diagnostic{{Kind: latex.MismatchedEnvironment, Name: "itemize"}},
		},
		{
			name:        "unexpected group close",
			input:       "a}b",
			output:      doc(text("ab")),
			diagnostics: []latex.Diagnostic{{Kind: latex.UnexpectedGroupClose}},
		},
		{
			name:        "unknown command is dropped",
			input:       "\\foo{bar}",
			output:      doc(text("bar")),
			diagnostics: []latex.Diagnostic{{Kind: latex.UnrecognizedCommand, Name: "foo"}},
		},
		{
			name:   "unknown environment is transparent",
			input:  "\\begin{minipage}a\\end{minipage}",
			output: doc(text("a")),
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			got, diagnostics, err := latex.Parse(tc.input, latex.Limits{})
			if err != nil {
				t.Fatalf("Unable to parse document: %v", err)
			}

			if diff := cmp.Diff(tc.output, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Tree does not match (-want +got):\n%s", diff)
			}

			if diff := cmp.Diff(tc.diagnostics, diagnostics, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Diagnostics do not match (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseDepthLimit(t *testing.T) {
	got, diagnostics, err := latex.Parse("{{{a}}}b", latex.Limits{MaxDepth: 2})
	if err != nil {
		t.Fatalf("Unable to parse document: %v", err)
	}

	if diff := cmp.Diff(doc(text("ab")), got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("Tree does not match (-want +got):\n%s", diff)
	}

	want := []latex.Diagnostic{{Kind: latex.DepthExceeded}}
	if diff := cmp.Diff(want, diagnostics); diff != "" {
		t.Errorf("Diagnostics do not match (-want +got):\n%s", diff)
	}
}

func TestParseDeepNesting(t *testing.T) {
	input := ""
	for i := 0; i < 10000; i++ {
		input += "{\\textbf{"
	}

	_, diagnostics, err := latex.Parse(input+"deep", latex.Limits{})
	if err != nil {
		t.Fatalf("Unable to parse document: %v", err)
	}

	if len(diagnostics) == 0 || diagnostics[0].Kind != latex.DepthExceeded {
		t.Errorf("Depth overflow is not reported: %v", diagnostics)
	}
}

func TestParseLimits(t *testing.T) {
	tt := []struct {
		name   string
		input  string
		limits latex.Limits
	}{
		{name: "input size", input: "hello", limits: latex.Limits{MaxInputSize: 4}},
		{name: "node count", input: "\\textbf{a}\\textbf{b}\\textbf{c}", limits: latex.Limits{MaxNodes: 3}},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := latex.Parse(tc.input, tc.limits)
			if !errors.Is(err, latex.ErrInputTooLarge) {
				t.Errorf("Expected ErrInputTooLarge, got %v", err)
			}
		})
	}
}

func TestParseMergedTextIsOneNode(t *testing.T) {
	input := strings.Repeat("a-b \\% ", 1000)

	document, _, err := latex.Parse(input, latex.Limits{MaxNodes: 2})
	if err != nil {
		t.Fatalf("Unable to parse: %v", err)
	}

	want := doc(text(strings.Repeat("a-b % ", 1000)))
	if diff := cmp.Diff(want, document, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("Tree does not match (-want +got):\n%s", diff)
	}
}
