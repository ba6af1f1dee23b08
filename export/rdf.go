// Package export serializes graphs to Turtle, N-Triples and JSON-LD.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/c360studio/semlex/graph"
	"github.com/c360studio/semlex/vocabulary"
)

// Format specifies the output serialization format.
type Format string

const (
	// FormatTurtle produces Turtle (.ttl) output.
	FormatTurtle Format = "turtle"

	// FormatNTriples produces N-Triples (.nt) output.
	FormatNTriples Format = "ntriples"

	// FormatJSONLD produces JSON-LD (.jsonld) output.
	FormatJSONLD Format = "jsonld"
)

// RDFExporter serializes graphs using a prefix table for the compact forms.
type RDFExporter struct {
	prefixes map[string]string
}

// NewRDFExporter creates an exporter seeded with the well-known prefixes.
func NewRDFExporter() *RDFExporter {
	return &RDFExporter{prefixes: vocabulary.Prefixes()}
}

// SetPrefix binds prefix to a namespace IRI, replacing any earlier binding.
func (e *RDFExporter) SetPrefix(prefix, iri string) {
	e.prefixes[prefix] = iri
}

// Export serializes g to the specified format.
func (e *RDFExporter) Export(g *graph.Graph, format Format) (string, error) {
	switch format {
	case FormatTurtle:
		w := NewTurtleWriter()
		w.prefixes = e.prefixes
		w.WriteGraph(g)
		return w.String(), nil
	case FormatNTriples:
		w := NewNTriplesWriter()
		w.WriteGraph(g)
		return w.String(), nil
	case FormatJSONLD:
		w := NewJSONLDWriter()
		w.SetContext(e.usedPrefixes(g))
		if err := w.WriteGraph(g); err != nil {
			return "", err
		}
		return w.String(), nil
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

// usedPrefixes returns the bindings needed to compact the IRIs in g.
func (e *RDFExporter) usedPrefixes(g *graph.Graph) map[string]string {
	used := make(map[string]string)
	note := func(iri string) {
		if curie, ok := vocabulary.CompactWith(iri, e.prefixes); ok {
			prefix, _, _ := strings.Cut(curie, ":")
			used[prefix] = e.prefixes[prefix]
		}
	}
	for _, t := range g.Triples() {
		note(string(t.Predicate))
		for _, term := range []graph.Term{t.Subject, t.Object} {
			switch v := term.(type) {
			case graph.IRI:
				note(string(v))
			case graph.Literal:
				if v.Datatype != "" && v.Datatype != graph.XSDString {
					note(string(v.Datatype))
				}
			}
		}
	}
	return used
}

// Write serializes g to w with the default exporter.
func Write(w io.Writer, g *graph.Graph, format Format) error {
	out, err := NewRDFExporter().Export(g, format)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, out); err != nil {
		return fmt.Errorf("write %s: %w", format, err)
	}
	return nil
}

// NTriples returns the N-Triples form of a term.
func NTriples(t graph.Term) string {
	switch v := t.(type) {
	case graph.IRI:
		return "<" + string(v) + ">"
	case graph.BlankNode:
		return v.String()
	case graph.Literal:
		return v.Quoted()
	default:
		return `""`
	}
}
