package latex

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// sanitizer is applied to rendered HTML when Options.Sanitize is set, policies are safe for concurrent use
var sanitizer = func() *bluemonday.Policy {
	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("class").Globally()
	policy.AllowStyles("height").OnElements("div")

	return policy
}()

type Options struct {
	Limits   Limits
	Classes  map[string]string // see DefaultClasses
	Sanitize bool              // pass output through HTML sanitizer
	Logger   *zap.Logger
}

// Preview is a result of conversion: HTML for display and the source exactly as it was given, for download.
type Preview struct {
	HTML        string
	Source      string
	Document    *Node
	Diagnostics []Diagnostic
}

// Convert transforms markup into HTML preview. Malformed markup never fails conversion, it is reported in
// diagnostics. When the input exceeds limits, ErrInputTooLarge is returned along with a preview holding
// only the source, so it can still be shown and downloaded.
func Convert(source string, opts Options) (*Preview, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	doc, diagnostics, err := Parse(source, opts.Limits)
	if err != nil {
		log.Warn("Unable to convert document", zap.Int("size", len(source)), zap.Error(err))
		return &Preview{Source: source, Diagnostics: diagnostics}, err
	}

	for _, d := range diagnostics {
		if d.Informational() {
			log.Debug("Markup ignored", zap.Stringer("kind", d.Kind), zap.String("name", d.Name))
			continue
		}

		log.Warn("Malformed markup", zap.Stringer("kind", d.Kind), zap.String("name", d.Name))
	}

	doc = Assemble(doc)

	var b strings.Builder
	if err := NewRenderer(opts.Classes).Render(&b, doc); err != nil {
		return &Preview{Source: source, Diagnostics: diagnostics}, errors.Wrap(err, "unable to render document")
	}

	out := b.String()
	if opts.Sanitize {
		out = sanitizer.Sanitize(out)
	}

	log.Debug("Document converted", zap.Int("size", len(source)), zap.Int("html", len(out)), zap.Int("diagnostics", len(diagnostics)))

	return &Preview{HTML: out, Source: source, Document: doc, Diagnostics: diagnostics}, nil
}

// Err combines diagnostics which indicate malformed markup into a single error, nil if there are none.
func (p *Preview) Err() error {
	var err error
	for _, d := range p.Diagnostics {
		if !d.Informational() {
			err = multierr.Append(err, d)
		}
	}

	return err
}
