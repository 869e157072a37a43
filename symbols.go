package latex

// symbol resolves ligatures and active characters to the text they print
func symbol(a string) string {
	switch a {
	case "---":
		return "—"
	case "--":
		return "–"
	case "''", "``":
		return "\""
	case "'", "`":
		return "'"
	case "~":
		return " "
	default:
		return a
	}
}

// replacements are commands which print a fixed text
var replacements = map[string]string{
	"quad":            " ",
	"qquad":           "  ",
	"enspace":         " ",
	"ldots":           "…",
	"dots":            "…",
	"textbar":         "|",
	"textbullet":      "•",
	"cdot":            "·",
	"textasciitilde":  "~",
	"textbackslash":   "\\",
	"textless":        "<",
	"textgreater":     ">",
	"textendash":      "–",
	"textemdash":      "—",
	"S":               "§",
	"copyright":       "©",
	"LaTeX":           "LaTeX",
	"TeX":             "TeX",
	"textasciicircum": "^",
}
