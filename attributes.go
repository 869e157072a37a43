package latex

import (
	"regexp"
	"strings"
)

var measure = regexp.MustCompile("^\\s*(-?[0-9]*(?:\\.[0-9]+)?)\\s*(%|\\\\?[a-z]*)\\s*$")

// KeyValue parses key-value parameters in this format: key=value, key=value, for example as used in itemize
// environment options: [leftmargin=*, noitemsep].
func KeyValue(raw string) map[string]string {
	kv := map[string]string{}

	parts := strings.Split(raw, ",")
	for _, part := range parts {
		n := strings.SplitN(strings.TrimSpace(part), "=", 2)
		if n[0] == "" {
			continue
		}

		if len(n) == 1 {
			kv[strings.ToLower(n[0])] = ""
			continue
		}

		kv[strings.ToLower(strings.TrimSpace(n[0]))] = strings.TrimSpace(n[1])
	}

	return kv
}
