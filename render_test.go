package latex_test

import (
	"bytes"
	"testing"

	latex "github.com/eolymp/go-latex-preview"
)

func TestRender(t *testing.T) {
	par := func(children ...*latex.Node) *latex.Node {
		return element(latex.ParagraphKind, children...)
	}

	tt := []struct {
		name     string
		render   string
		document *latex.Node
	}{
		{
			name:     "simple paragraph",
			render:   `<p class="mb-2">Hello</p>`,
			document: doc(par(text("Hello"))),
		},
		{
			name:     "two paragraphs",
			render:   "<p class=\"mb-2\">one</p>\n<p class=\"mb-2\">two</p>",
			document: doc(par(text("one")), par(text("two"))),
		},
		{
			name:     "text is escaped",
			render:   `<p class="mb-2">&lt;script&gt;alert(&#34;x&#34;)&lt;/script&gt; &amp; co</p>`,
			document: doc(par(text(`<script>alert("x")</script> & co`))),
		},
		{
			name:   "formatting",
			render: `<p class="mb-2">odd <strong>foo <em>bar</em></strong> baz</p>`,
			document: doc(par(
				text("odd "),
				element(latex.BoldKind, text("foo "), element(latex.ItalicKind, text("bar"))),
				text(" baz"),
			)),
		},
		{
			name:   "headings",
			render: "<div class=\"text-center mb-6\"><h1 class=\"text-3xl font-bold\">John</h1><br/><h2 class=\"text-xl mt-2\">Engineer</h2></div>\n<h3 class=\"text-xl font-bold mt-6 mb-3 border-b-2 border-gray-300 pb-1\">Skills</h3>",
			document: doc(
				element(latex.CenterKind,
					element(latex.TitleKind, text("John")),
					br(),
					element(latex.SubtitleKind, text("Engineer")),
				),
				element(latex.SectionKind, text("Skills")),
			),
		},
		{
			name:   "itemize",
			render: `<ul class="list-disc mb-3"><li class="ml-6 mb-1">A <strong>B</strong></li><li class="ml-6 mb-1">C</li></ul>`,
			document: doc(list("itemize",
				element(latex.ItemKind, text("A "), element(latex.BoldKind, text("B"))),
				element(latex.ItemKind, text("C")),
			)),
		},
		{
			name:     "enumerate",
			render:   `<ol class="list-disc mb-3"><li class="ml-6 mb-1">A</li></ol>`,
			document: doc(list("enumerate", element(latex.ItemKind, text("A")))),
		},
		{
			name:   "item label",
			render: `<ul class="list-disc mb-3"><li class="ml-6 mb-1"><strong>2020</strong> Launch</li></ul>`,
			document: doc(list("itemize",
				elementp(latex.ItemKind, map[string]string{"label": "2020"}, text("Launch")),
			)),
		},
		{
			name:   "hfill floats the rest of the line",
			render: `<p class="mb-2"><strong>Acme</strong> <span class="float-right">2020</span><br/>next</p>`,
			document: doc(par(
				element(latex.BoldKind, text("Acme")),
				text(" "),
				element(latex.FillKind),
				text("2020"),
				br(),
				text("next"),
			)),
		},
		{
			name:   "hfill ends at the end of line",
			render: "<p class=\"mb-2\"><strong>Acme</strong> <span class=\"float-right\">2020</span>\nSoftware Engineer</p>",
			document: doc(par(
				element(latex.BoldKind, text("Acme")),
				text(" "),
				element(latex.FillKind),
				text("2020\nSoftware Engineer"),
			)),
		},
		{
			name:     "vertical space",
			render:   `<div class="block" style="height: 37.8px"></div>`,
			document: doc(elementp(latex.SpaceKind, map[string]string{"height": "1cm"})),
		},
		{
			name:     "vertical space with unsupported length",
			render:   "",
			document: doc(elementp(latex.SpaceKind, map[string]string{"height": "\\baselineskip"})),
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			buffer := bytes.NewBuffer(nil)

			if err := latex.Render(buffer, tc.document); err != nil {
				t.Fatalf("Unable to render document: %v", err)
			}

			if got := buffer.String(); got != tc.render {
				t.Errorf("Render does not match:\n want %s\n  got %s\n", tc.render, got)
			}
		})
	}
}

func TestRenderClasses(t *testing.T) {
	buffer := bytes.NewBuffer(nil)

	renderer := latex.NewRenderer(map[string]string{
		latex.ParagraphKind.String(): "",
		latex.SectionKind.String():   "section",
	})

	document := doc(
		element(latex.SectionKind, text("Skills")),
		element(latex.ParagraphKind, text("Go")),
	)

	if err := renderer.Render(buffer, document); err != nil {
		t.Fatalf("Unable to render document: %v", err)
	}

	want := "<h3 class=\"section\">Skills</h3>\n<p>Go</p>"
	if got := buffer.String(); got != want {
		t.Errorf("Render does not match:\n want %s\n  got %s\n", want, got)
	}
}

func TestBuild(t *testing.T) {
	nodes := latex.NewRenderer(nil).Build(doc(element(latex.ParagraphKind, text("a")), element(latex.ParagraphKind, text("b"))))

	if len(nodes) != 2 {
		t.Fatalf("Expected 2 nodes, got %d", len(nodes))
	}

	for _, node := range nodes {
		if node.Parent != nil || node.PrevSibling != nil || node.NextSibling != nil {
			t.Errorf("Node %s is attached", node.Data)
		}

		if node.Data != "p" {
			t.Errorf("Expected paragraph, got %s", node.Data)
		}
	}
}
