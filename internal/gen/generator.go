package gen

import (
	"bytes"
	"fmt"
	"go/format"

	"litgen/internal/analyze"
	"litgen/internal/plan"
)

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// WriteUnformatted writes the raw template output next to the intended
	// file when formatting fails.
	WriteUnformatted bool
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		WriteUnformatted: true,
	}
}

// Generator generates Go code from helper plans.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Dir is the package directory the file belongs to.
	Dir string
	// Filename is the name of the file (e.g., "lit_generated.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

type templateData struct {
	Header      string
	PackageName string
	Imports     []plan.Import
	Helpers     []helperData
}

type helperData struct {
	plan.Helper

	Doc []string
}

// Generate renders the helpers of p into one file. It returns nil when p
// has no helpers.
func (g *Generator) Generate(p *plan.Plan) (*GeneratedFile, error) {
	if p.IsEmpty() {
		return nil, nil
	}

	data := &templateData{
		Header:      Header,
		PackageName: p.PackageName,
		Imports:     p.Imports,
	}

	for _, h := range p.Helpers {
		data.Helpers = append(data.Helpers, helperData{Helper: h, Doc: helperDoc(&h)})
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		if g.config.WriteUnformatted {
			_ = writeDebugUnformatted(p.Dir, p.Output, buf.Bytes())
		}

		return &GeneratedFile{
			Dir:      p.Dir,
			Filename: p.Output,
			Content:  buf.Bytes(),
		}, fmt.Errorf("formatting code: %w", err)
	}

	return &GeneratedFile{
		Dir:      p.Dir,
		Filename: p.Output,
		Content:  formatted,
	}, nil
}

// helperDoc returns the doc comment lines of a helper.
func helperDoc(h *plan.Helper) []string {
	unit := "element"
	if h.IsPairwise() {
		unit = "pair"
	}

	doc := []string{
		fmt.Sprintf("%s calls %s once, then %s once per %s in argument order.", h.Name, h.Constructor, h.Method, unit),
	}

	switch h.Variant {
	case analyze.VariantVecFront:
		doc = append(doc, "The last argument ends up at the front.")
	case analyze.VariantSet:
		doc = append(doc, "Duplicate elements are passed to "+h.Method+" unchanged.")
	case analyze.VariantMap:
		doc = append(doc, "Duplicate keys are passed to "+h.Method+" unchanged.")
	}

	return doc
}
