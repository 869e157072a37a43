package latex

import (
	"strings"

	"github.com/pkg/errors"
)

// rule describes what a command produces
type rule int

const (
	ruleNone        rule = iota // consumed, produces nothing
	ruleBold                    // \textbf{...}
	ruleItalic                  // \textit{...}
	ruleSection                 // \section*{...}
	ruleTransparent             // takes an argument but keeps its content without formatting
	ruleTitle                   // size declaration producing a title, {\LARGE ...}
	ruleSubtitle                // size declaration producing a subtitle, {\large ...}
	ruleBoldShape               // {\bfseries ...}
	ruleItalicShape             // {\itshape ...}
	ruleFill
	ruleItem
	ruleSpace
	ruleNewline
	ruleParagraph
)

// commands is the enumeration of recognized commands, anything else is tolerated and dropped
var commands = map[string]rule{
	// preamble and layout settings, arguments are captured by tokenizer
	"documentclass":   ruleNone,
	"usepackage":      ruleNone,
	"pagestyle":       ruleNone,
	"thispagestyle":   ruleNone,
	"geometry":        ruleNone,
	"hypersetup":      ruleNone,
	"setlist":         ruleNone,
	"setlength":       ruleNone,
	"addtolength":     ruleNone,
	"newcommand":      ruleNone,
	"renewcommand":    ruleNone,
	"definecolor":     ruleNone,
	"titlespacing":    ruleNone,
	"titlespacing*":   ruleNone,
	"titleformat":     ruleNone,
	"titleformat*":    ruleNone,
	"input":           ruleNone,
	"include":         ruleNone,
	"includegraphics": ruleNone,
	"hspace":          ruleNone,
	"hspace*":         ruleNone,
	"noindent":        ruleNone,
	"centering":       ruleNone,
	"maketitle":       ruleNone,
	"normalfont":      ruleNone,
	"normalsize":      ruleNone,
	"small":           ruleNone,
	"footnotesize":    ruleNone,
	"scriptsize":      ruleNone,
	"tiny":            ruleNone,
	"smallskip":       ruleNone,
	"medskip":         ruleNone,
	"bigskip":         ruleNone,
	",":               ruleNone,
	";":               ruleNone,
	":":               ruleNone,
	"!":               ruleNone,
	">":               ruleNone,
	"/":               ruleNone,

	"textbf":      ruleBold,
	"textit":      ruleItalic,
	"emph":        ruleItalic,
	"textsl":      ruleItalic,
	"section":     ruleSection,
	"section*":    ruleSection,
	"subsection":  ruleSection,
	"subsection*": ruleSection,
	"underline":   ruleTransparent,
	"textsc":      ruleTransparent,
	"texttt":      ruleTransparent,
	"textrm":      ruleTransparent,
	"textsf":      ruleTransparent,
	"textup":      ruleTransparent,
	"textmd":      ruleTransparent,
	"mbox":        ruleTransparent,

	"LARGE":    ruleTitle,
	"Large":    ruleTitle,
	"huge":     ruleTitle,
	"Huge":     ruleTitle,
	"large":    ruleSubtitle,
	"bfseries": ruleBoldShape,
	"bf":       ruleBoldShape,
	"itshape":  ruleItalicShape,
	"it":       ruleItalicShape,
	"em":       ruleItalicShape,

	"hfill":     ruleFill,
	"item":      ruleItem,
	"vspace":    ruleSpace,
	"vspace*":   ruleSpace,
	"newline":   ruleNewline,
	"linebreak": ruleNewline,
	"par":       ruleParagraph,
}

// takesArgument is true for commands which consume following group
func (r rule) takesArgument() bool {
	return r == ruleBold || r == ruleItalic || r == ruleSection || r == ruleTransparent
}

// declaration is true for commands which change formatting till the end of enclosing group
func (r rule) declaration() bool {
	return r == ruleTitle || r == ruleSubtitle || r == ruleBoldShape || r == ruleItalicShape
}

type scopeKind int

const (
	rootScope scopeKind = iota
	groupScope
	envScope
)

// scope is a region of accumulated nodes bounded by a group or an environment
type scope struct {
	kind     scopeKind
	name     string // environment name
	rule     rule   // command which takes the group as argument
	decl     rule   // declaration found inside the group
	params   map[string]string
	children []*Node
	text     strings.Builder // text run which becomes a node when it ends

	// list environments collect items, children hold content of the current item
	items     []*Node
	item      *Node
	itemsOpen bool
}

func (s *scope) list() bool {
	return s.kind == envScope && (s.name == "itemize" || s.name == "enumerate")
}

type Parser struct {
	tokens []any
	limits Limits

	stack       []*scope
	pending     rule
	hasPending  bool
	overflow    []string // scopes opened beyond depth limit: "{" for a group, environment name otherwise
	nodes       int
	diagnostics []Diagnostic
}

// Parse scans and parses source into a document tree
func Parse(source string, limits Limits) (*Node, []Diagnostic, error) {
	limits = limits.withDefaults()
	if len(source) > limits.MaxInputSize {
		return nil, nil, errors.Wrapf(ErrInputTooLarge, "%d bytes exceed limit of %d bytes", len(source), limits.MaxInputSize)
	}

	return NewParser(Scan(source), limits).Parse()
}

func NewParser(tokens []any, limits Limits) *Parser {
	return &Parser{tokens: tokens, limits: limits.withDefaults()}
}

// Parse builds the document tree. Malformed markup is recovered from and reported in diagnostics, an error is
// returned only when node limit is exceeded.
func (p *Parser) Parse() (*Node, []Diagnostic, error) {
	p.stack = []*scope{{kind: rootScope}}

	for _, token := range p.tokens {
		p.token(token)

		if p.nodes > p.limits.MaxNodes {
			return nil, p.diagnostics, errors.Wrapf(ErrInputTooLarge, "document has more than %d nodes", p.limits.MaxNodes)
		}
	}

	p.flushPending()

	// close everything left open at the end of input, keeping the content
	for len(p.stack) > 1 {
		top := p.pop()
		if top.kind == groupScope {
			p.report(UnterminatedGroup, "")
		} else {
			p.report(UnterminatedEnvironment, top.name)
		}

		p.append(p.close(top)...)
	}

	root := p.stack[0]
	p.flushText(root)

	return &Node{Kind: DocumentKind, Children: root.children}, p.diagnostics, nil
}

func (p *Parser) token(t any) {
	if _, ok := t.(GroupOpen); !ok {
		p.flushPending()
	}

	switch token := t.(type) {
	case Text:
		p.write(string(token))
	case EscapedChar:
		p.write(string(rune(token)))
	case LineBreak:
		p.append(p.lineBreak(token.Length))
	case Command:
		p.command(token)
	case GroupOpen:
		p.groupOpen()
	case GroupClose:
		p.groupClose()
	case EnvBegin:
		p.envBegin(token)
	case EnvEnd:
		p.envEnd(token)
	}
}

func (p *Parser) command(c Command) {
	r, ok := commands[c.Name]
	if !ok {
		if v, ok := replacements[c.Name]; ok {
			p.write(v)
			return
		}

		p.report(UnrecognizedCommand, c.Name)
		return
	}

	switch {
	case r.takesArgument():
		p.pending, p.hasPending = r, true
	case r.declaration():
		// declarations are meaningful only inside a group: {\LARGE ...}
		if top := p.top(); top.kind == groupScope && top.decl == ruleNone {
			top.decl = r
		}
	case r == ruleFill:
		p.append(p.node(FillKind))
	case r == ruleNewline:
		p.append(p.lineBreak(""))
	case r == ruleParagraph:
		p.write("\n\n")
	case r == ruleSpace:
		if _, args := arguments(c.Args); len(args) > 0 {
			space := p.node(SpaceKind)
			space.Parameters = map[string]string{"height": strings.TrimSpace(args[0])}
			p.append(space)
		}
	case r == ruleItem:
		p.item(c)
	}
}

// item starts a new list item, \item outside of a list is ignored
func (p *Parser) item(c Command) {
	top := p.top()
	if !top.list() {
		return
	}

	p.finishItem(top)
	top.text.Reset()

	item := p.node(ItemKind)
	if opts, _ := arguments(c.Args); len(opts) > 0 {
		item.Parameters = map[string]string{"label": strings.TrimSpace(opts[0])}
	}

	// content before the first \item is not a part of any item and is discarded
	top.item, top.itemsOpen, top.children = item, true, nil
}

func (p *Parser) finishItem(s *scope) {
	if !s.itemsOpen {
		return
	}

	p.flushText(s)
	s.item.Children = trim(s.children)
	s.items = append(s.items, s.item)
	s.item, s.itemsOpen, s.children = nil, false, nil
}

func (p *Parser) groupOpen() {
	r, ok := p.pending, p.hasPending
	p.pending, p.hasPending = ruleNone, false

	if p.depthExceeded() {
		p.overflow = append(p.overflow, "{")
		return
	}

	s := &scope{kind: groupScope}
	if ok {
		s.rule = r
	}

	p.stack = append(p.stack, s)
}

func (p *Parser) groupClose() {
	if n := len(p.overflow); n > 0 {
		p.overflow = p.overflow[:n-1]
		return
	}

	top := p.top()
	if top.kind != groupScope {
		p.report(UnexpectedGroupClose, "")
		return
	}

	p.pop()
	p.append(p.close(top)...)
}

func (p *Parser) envBegin(e EnvBegin) {
	if e.Name == "document" {
		return
	}

	if p.depthExceeded() {
		p.overflow = append(p.overflow, e.Name)
		return
	}

	s := &scope{kind: envScope, name: e.Name}
	if e.Options != "" {
		s.params = KeyValue(e.Options)
	}

	p.stack = append(p.stack, s)
}

func (p *Parser) envEnd(e EnvEnd) {
	if e.Name == "document" {
		return
	}

	for i := len(p.overflow) - 1; i >= 0; i-- {
		if p.overflow[i] == e.Name {
			p.overflow = p.overflow[:i]
			return
		}
	}

	index := -1
	for i := len(p.stack) - 1; i > 0; i-- {
		if p.stack[i].kind == envScope && p.stack[i].name == e.Name {
			index = i
			break
		}
	}

	if index < 0 {
		p.report(MismatchedEnvironment, e.Name)
		return
	}

	p.overflow = nil

	// scopes opened after the matching environment lose their meaning, their content is kept
	for len(p.stack)-1 > index {
		top := p.pop()
		if top.kind == groupScope {
			p.report(UnterminatedGroup, "")
		} else {
			p.report(MismatchedEnvironment, top.name)
		}

		p.flushText(top)
		p.append(flatten(top)...)
	}

	p.append(p.close(p.pop())...)
}

// close turns a finished scope into nodes for its parent
func (p *Parser) close(s *scope) []*Node {
	p.flushText(s)

	switch s.kind {
	case groupScope:
		return p.closeGroup(s)
	case envScope:
		return p.closeEnvironment(s)
	default:
		return s.children
	}
}

func (p *Parser) closeGroup(s *scope) []*Node {
	switch s.rule {
	case ruleBold:
		return []*Node{p.node(BoldKind, s.children...)}
	case ruleItalic:
		return []*Node{p.node(ItalicKind, s.children...)}
	case ruleSection:
		return []*Node{p.node(SectionKind, trim(s.children)...)}
	case ruleTransparent:
		return s.children
	}

	switch s.decl {
	case ruleTitle:
		return []*Node{p.node(TitleKind, unwrapBold(trim(s.children))...)}
	case ruleSubtitle:
		return []*Node{p.node(SubtitleKind, trim(s.children)...)}
	case ruleBoldShape:
		return []*Node{p.node(BoldKind, s.children...)}
	case ruleItalicShape:
		return []*Node{p.node(ItalicKind, s.children...)}
	default:
		return s.children
	}
}

func (p *Parser) closeEnvironment(s *scope) []*Node {
	switch {
	case s.name == "center":
		return []*Node{p.node(CenterKind, p.headings(s.children)...)}
	case s.list():
		p.finishItem(s)

		list := p.node(ListKind, s.items...)
		list.Data = s.name
		list.Parameters = s.params

		return []*Node{list}
	default:
		// unknown environments are transparent
		return s.children
	}
}

// headings applies title rules within centered block: the first bold run is the title, the plain line following
// the title is the subtitle. Explicitly sized headings take precedence.
func (p *Parser) headings(children []*Node) []*Node {
	title := indexOf(children, TitleKind)
	if title < 0 {
		first := firstContent(children, 0)
		if first < 0 || children[first].Kind != BoldKind {
			return children
		}

		children[first].Kind = TitleKind
		children[first].Children = trim(children[first].Children)
		title = first
	}

	if indexOf(children, SubtitleKind) >= 0 {
		return children
	}

	next := firstContent(children, title+1)
	if next < 0 || children[next].Kind != TextKind {
		return children
	}

	data := strings.TrimLeft(children[next].Data, " \t\r\n")
	line, rest, found := strings.Cut(data, "\n")

	// the run must occupy the whole line
	if !found && next+1 < len(children) && children[next+1].Kind != LineBreakKind {
		return children
	}

	subtitle := p.node(SubtitleKind, p.text(strings.TrimSpace(line)))

	replacement := []*Node{subtitle}
	if strings.TrimSpace(rest) != "" {
		replacement = append(replacement, p.text(rest))
	}

	out := make([]*Node, 0, len(children)+1)
	out = append(out, children[:next]...)
	out = append(out, replacement...)
	out = append(out, children[next+1:]...)

	return out
}

// flatten returns content of the scope without applying its meaning
func flatten(s *scope) []*Node {
	if !s.list() {
		return s.children
	}

	var out []*Node
	for _, item := range s.items {
		out = append(out, item.Children...)
	}

	if s.itemsOpen {
		out = append(out, s.children...)
	}

	return out
}

// append adds nodes to the innermost scope, text nodes are merged into the scope's text run
func (p *Parser) append(nodes ...*Node) {
	top := p.top()
	for _, node := range nodes {
		if node.Kind == TextKind {
			top.text.WriteString(node.Data)
			p.nodes--
			continue
		}

		p.flushText(top)
		top.children = append(top.children, node)
	}
}

// write adds text to the innermost scope
func (p *Parser) write(data string) {
	p.top().text.WriteString(data)
}

// flushText ends the text run of the scope
func (p *Parser) flushText(s *scope) {
	if s.text.Len() == 0 {
		return
	}

	s.children = append(s.children, p.text(s.text.String()))
	s.text.Reset()
}

// flushPending adds an empty node for a command which expected an argument, but did not get one
func (p *Parser) flushPending() {
	if !p.hasPending {
		return
	}

	r := p.pending
	p.pending, p.hasPending = ruleNone, false

	switch r {
	case ruleBold:
		p.append(p.node(BoldKind))
	case ruleItalic:
		p.append(p.node(ItalicKind))
	case ruleSection:
		p.append(p.node(SectionKind))
	}
}

func (p *Parser) depthExceeded() bool {
	if len(p.stack)-1+len(p.overflow) < p.limits.MaxDepth {
		return false
	}

	if len(p.overflow) == 0 {
		p.report(DepthExceeded, "")
	}

	return true
}

func (p *Parser) report(kind DiagnosticKind, name string) {
	p.diagnostics = append(p.diagnostics, Diagnostic{Kind: kind, Name: name})
}

func (p *Parser) top() *scope {
	return p.stack[len(p.stack)-1]
}

func (p *Parser) pop() *scope {
	top := p.top()
	p.stack = p.stack[:len(p.stack)-1]

	return top
}

func (p *Parser) node(kind Kind, children ...*Node) *Node {
	p.nodes++
	return &Node{Kind: kind, Children: children}
}

func (p *Parser) text(data string) *Node {
	p.nodes++
	return &Node{Kind: TextKind, Data: data}
}

func (p *Parser) lineBreak(length string) *Node {
	node := p.node(LineBreakKind)
	if length != "" {
		node.Parameters = map[string]string{"length": length}
	}

	return node
}
