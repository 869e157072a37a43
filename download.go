package latex

import (
	"regexp"
	"strings"
)

var (
	spaces      = regexp.MustCompile(`\s+`)
	unsafeChars = regexp.MustCompile(`[/\\:*?"<>|\x00-\x1f]`)
)

// DownloadFile is the source offered for download, it's never modified by conversion.
type DownloadFile struct {
	Name        string
	ContentType string
	Content     []byte
}

// DownloadName suggests file name for the source written for the given person: resume_John_Doe.tex
func DownloadName(subject string) string {
	name := spaces.ReplaceAllString(strings.TrimSpace(subject), "_")
	name = unsafeChars.ReplaceAllString(name, "_")

	if name == "" {
		name = "document"
	}

	return "resume_" + name + ".tex"
}

// Download returns the original source as a file named after the subject.
func (p *Preview) Download(subject string) DownloadFile {
	return DownloadFile{
		Name:        DownloadName(subject),
		ContentType: "text/plain",
		Content:     []byte(p.Source),
	}
}
