package latex

import (
	"io"
	"strings"
)

// verbatimArgs lists commands which arguments are captured raw (as written) instead of being tokenized, the value is
// the number of mandatory {} arguments the command takes. Optional [] arguments are captured wherever they appear.
var verbatimArgs = map[string]int{
	"documentclass":   1,
	"usepackage":      1,
	"pagestyle":       1,
	"thispagestyle":   1,
	"geometry":        1,
	"hypersetup":      1,
	"setlist":         1,
	"vspace":          1,
	"vspace*":         1,
	"hspace":          1,
	"hspace*":         1,
	"setlength":       2,
	"addtolength":     2,
	"newcommand":      2,
	"renewcommand":    2,
	"definecolor":     3,
	"titlespacing":    4,
	"titlespacing*":   4,
	"titleformat":     5,
	"titleformat*":    2,
	"input":           1,
	"include":         1,
	"includegraphics": 1,
	"item":            0,
}

type Tokenizer struct {
	r     io.RuneScanner
	queue []any // tokens read ahead, they are returned before the input is read further
}

func NewTokenizer(r io.RuneScanner) *Tokenizer {
	return &Tokenizer{r: r}
}

// Scan splits source into tokens. It never fails: any input produces some token stream, brace balance is not
// validated here.
func Scan(source string) []any {
	tokens := NewTokenizer(strings.NewReader(source))

	var out []any
	for {
		// strings.Reader does not fail other than with io.EOF
		token, err := tokens.Token()
		if err != nil {
			return out
		}

		out = append(out, token)
	}
}

// Token reads next token, it returns io.EOF when input is exhausted.
func (l *Tokenizer) Token() (any, error) {
	for {
		if len(l.queue) > 0 {
			token := l.queue[0]
			l.queue = l.queue[1:]

			return token, nil
		}

		token, err := l.next()
		if err != nil {
			return nil, err
		}

		if token != nil {
			return token, nil
		}
	}
}

// next reads one lexical form, it may return nil token for forms which produce nothing (comments, math delimiters)
func (l *Tokenizer) next() (any, error) {
	char, _, err := l.r.ReadRune()
	if err != nil {
		return nil, err
	}

	switch char {
	case '{':
		return GroupOpen{}, nil
	case '}':
		return GroupClose{}, nil
	case '%':
		return l.readLineComment()
	case '$', '&':
		return nil, nil
	case '~':
		return Text(symbol("~")), nil
	case '`', '\'', '-':
		return l.readLigature(char)
	case '\\':
		return l.readBackslash()
	default:
		if err := l.r.UnreadRune(); err != nil {
			return nil, err
		}

		return l.readText()
	}
}

func (l *Tokenizer) readText() (any, error) {
	var runes []rune
	for {
		read, _, err := l.r.ReadRune()
		if err == io.EOF {
			return Text(runes), nil
		}

		if err != nil {
			return nil, err
		}

		if isSpecial(read) {
			return Text(runes), l.r.UnreadRune()
		}

		runes = append(runes, read)

		if read == '\n' {
			return Text(runes), nil
		}
	}
}

func (l *Tokenizer) readBackslash() (any, error) {
	r, _, err := l.r.ReadRune()
	if err == io.EOF {
		// trailing backslash has no meaning
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	switch {
	case r == '\\':
		return l.readLineBreak()
	case isEscapable(r):
		return EscapedChar(r), nil
	case isLetter(r):
		if err := l.r.UnreadRune(); err != nil {
			return nil, err
		}

		return l.readCommand()
	case isWhitespace(r):
		return Text(" "), nil
	default:
		// control symbols like \, or \; are spacing commands
		return Command{Name: string(r)}, nil
	}
}

// readLineBreak reads the rest of \\ command: optional star and optional [length]
func (l *Tokenizer) readLineBreak() (any, error) {
	if _, err := l.star(); err != nil {
		return nil, err
	}

	length, ok, err := l.optional()
	if err != nil {
		return nil, err
	}

	if ok {
		length = strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(length, "["), "]"))
	}

	return LineBreak{Length: length}, l.whitespaces()
}

func (l *Tokenizer) readCommand() (any, error) {
	name, err := l.word()
	if err != nil {
		return nil, err
	}

	// command names may include * in the end (except for begin and end)
	if name != "begin" && name != "end" {
		star, err := l.star()
		if err != nil {
			return nil, err
		}

		if star {
			name += "*"
		}
	}

	switch name {
	case "begin":
		return l.readEnvBegin()
	case "end":
		return l.readEnvEnd()
	}

	command := Command{Name: name}

	if n, ok := verbatimArgs[name]; ok {
		args, err := l.arguments(n)
		if err != nil {
			return nil, err
		}

		command.Args = args
	}

	return command, l.whitespaces()
}

func (l *Tokenizer) readEnvBegin() (any, error) {
	name, ok, err := l.envName()
	if err != nil {
		return nil, err
	}

	if !ok {
		return Command{Name: "begin"}, nil
	}

	options, ok, err := l.optional()
	if err != nil {
		return nil, err
	}

	if ok {
		options = strings.TrimSuffix(strings.TrimPrefix(options, "["), "]")
	}

	return EnvBegin{Name: name, Options: options}, l.whitespaces()
}

func (l *Tokenizer) readEnvEnd() (any, error) {
	name, ok, err := l.envName()
	if err != nil {
		return nil, err
	}

	if !ok {
		return Command{Name: "end"}, nil
	}

	return EnvEnd{Name: name}, nil
}

// envName reads {name} following \begin or \end, ok is false if there is no brace
func (l *Tokenizer) envName() (string, bool, error) {
	if err := l.blanks(); err != nil {
		return "", false, err
	}

	r, _, err := l.r.ReadRune()
	if err == io.EOF {
		return "", false, nil
	}

	if err != nil {
		return "", false, err
	}

	if r != '{' {
		return "", false, l.r.UnreadRune()
	}

	var runes []rune
	for {
		read, _, err := l.r.ReadRune()
		if err == io.EOF || read == '}' {
			return strings.TrimSpace(string(runes)), true, nil
		}

		if err != nil {
			return "", false, err
		}

		runes = append(runes, read)
	}
}

// readLineComment skips one line comment after %
//
// When LATEX encounters a % character while processing an input file, it ignores the
// rest of the present line, the line break, and all whitespace at the
// beginning of the next line. An empty line following the comment still ends the paragraph.
func (l *Tokenizer) readLineComment() (any, error) {
	for {
		read, _, err := l.r.ReadRune()
		if err == io.EOF {
			return nil, nil
		}

		if err != nil {
			return nil, err
		}

		if read != '\n' {
			continue
		}

		if err := l.blanks(); err != nil {
			return nil, err
		}

		blank, err := l.newline()
		if err != nil || !blank {
			return nil, err
		}

		return Text("\n"), nil
	}
}

func (l *Tokenizer) readLigature(first rune) (any, error) {
	line := []rune{first}
	for {
		read, _, err := l.r.ReadRune()
		if err == io.EOF {
			return Text(symbol(string(line))), nil
		}

		if err != nil {
			return nil, err
		}

		switch string(append(line, read)) {
		case "``", "--", "---", "''":
			line = append(line, read)
		default:
			return Text(symbol(string(line))), l.r.UnreadRune()
		}
	}
}

// arguments captures up to n mandatory {} arguments and any optional [] arguments between them as raw text
func (l *Tokenizer) arguments(n int) (string, error) {
	var raw strings.Builder
	for {
		if err := l.blanks(); err != nil {
			return "", err
		}

		r, _, err := l.r.ReadRune()
		if err == io.EOF {
			return raw.String(), nil
		}

		if err != nil {
			return "", err
		}

		switch {
		case r == '[':
			group, err := l.balanced('[', ']')
			if err != nil {
				return "", err
			}

			raw.WriteString(group)
		case r == '{' && n > 0:
			group, err := l.balanced('{', '}')
			if err != nil {
				return "", err
			}

			raw.WriteString(group)
			n--
		default:
			return raw.String(), l.r.UnreadRune()
		}
	}
}

// optional reads [...] if it follows immediately
func (l *Tokenizer) optional() (string, bool, error) {
	r, _, err := l.r.ReadRune()
	if err == io.EOF {
		return "", false, nil
	}

	if err != nil {
		return "", false, err
	}

	if r != '[' {
		return "", false, l.r.UnreadRune()
	}

	group, err := l.balanced('[', ']')
	return group, true, err
}

// balanced reads raw text until closing symbol, the opening symbol is expected to be read already.
// Nested groups are respected, escaped characters are copied as is.
func (l *Tokenizer) balanced(open, close rune) (string, error) {
	runes := []rune{open}
	depth := 0  // nesting of open/close pairs
	braces := 0 // nesting of {} inside [] group
	for {
		read, _, err := l.r.ReadRune()
		if err == io.EOF {
			return string(runes), nil
		}

		if err != nil {
			return "", err
		}

		runes = append(runes, read)

		switch {
		case read == '\\':
			next, _, err := l.r.ReadRune()
			if err == io.EOF {
				return string(runes), nil
			}

			if err != nil {
				return "", err
			}

			runes = append(runes, next)
		case open != '{' && read == '{':
			braces++
		case open != '{' && read == '}':
			if braces > 0 {
				braces--
			}
		case braces > 0:
		case read == open:
			depth++
		case read == close:
			if depth == 0 {
				return string(runes), nil
			}

			depth--
		}
	}
}

// whitespaces skips whitespaces after a control word. An empty line starts a new paragraph, so when one follows
// the line break already skipped is put back into the stream.
func (l *Tokenizer) whitespaces() error {
	newline := false
	for {
		r, _, err := l.r.ReadRune()
		if err == io.EOF {
			return nil
		}

		if err != nil {
			return err
		}

		if r == '\n' && newline {
			l.queue = append(l.queue, Text("\n"))
			return l.r.UnreadRune()
		}

		if !isWhitespace(r) {
			return l.r.UnreadRune()
		}

		newline = newline || r == '\n'
	}
}

// blanks skips spaces and tabs on the current line
func (l *Tokenizer) blanks() error {
	for {
		r, _, err := l.r.ReadRune()
		if err == io.EOF {
			return nil
		}

		if err != nil {
			return err
		}

		if r != ' ' && r != '\t' && r != '\r' {
			return l.r.UnreadRune()
		}
	}
}

// newline is true if the next symbol is a line break, the symbol is left unread
func (l *Tokenizer) newline() (bool, error) {
	r, _, err := l.r.ReadRune()
	if err == io.EOF {
		return false, nil
	}

	if err != nil {
		return false, err
	}

	return r == '\n', l.r.UnreadRune()
}

// star reads following star symbol, if present
func (l *Tokenizer) star() (bool, error) {
	r, _, err := l.r.ReadRune()
	if err == io.EOF {
		return false, nil
	}

	if err != nil {
		return false, err
	}

	if r == '*' {
		return true, nil
	}

	return false, l.r.UnreadRune()
}

// word reads sequence of letters
func (l *Tokenizer) word() (string, error) {
	var runes []rune
	for {
		read, _, err := l.r.ReadRune()
		if err == io.EOF {
			return string(runes), nil
		}

		if err != nil {
			return "", err
		}

		if !isLetter(read) {
			return string(runes), l.r.UnreadRune()
		}

		runes = append(runes, read)
	}
}

// isLetter returns true for a letter
func isLetter(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z'
}

// isSpecial returns true if a symbol has a special meaning and should interrupt text reading
func isSpecial(r rune) bool {
	switch r {
	case '$', '%', '&', '{', '}', '~', '\\', '`', '\'', '-':
		return true
	default:
		return false
	}
}

// isEscapable returns true for characters which are printed literally when preceded by backslash
func isEscapable(r rune) bool {
	switch r {
	case '%', '&', '#', '_', '$', '{', '}':
		return true
	default:
		return false
	}
}

func isWhitespace(r rune) bool {
	switch r {
	case ' ', '\n', '\t', '\r':
		return true
	default:
		return false
	}
}
