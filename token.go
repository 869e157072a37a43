package latex

// Text is a run of literal characters.
type Text string

// EscapedChar is a special character written with a leading backslash, eg. \%
type EscapedChar rune

// Command is a control word, Args holds raw arguments for commands which take them verbatim.
type Command struct {
	Name string
	Args string
}

type GroupOpen struct {
}

type GroupClose struct {
}

type EnvBegin struct {
	Name    string
	Options string
}

type EnvEnd struct {
	Name string
}

// LineBreak is \\ with optional [length]
type LineBreak struct {
	Length string
}
