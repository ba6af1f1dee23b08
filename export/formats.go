package export

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/piprate/json-gold/ld"

	"github.com/c360studio/semlex/graph"
	"github.com/c360studio/semlex/vocabulary"
)

// FormatInfo provides metadata about an export format.
type FormatInfo struct {
	// Name is the format identifier.
	Name Format

	// MIMEType is the standard MIME type.
	MIMEType string

	// Extension is the file extension (with dot).
	Extension string

	// Description describes the format.
	Description string
}

// FormatRegistry contains metadata for all supported formats.
var FormatRegistry = map[Format]FormatInfo{
	FormatTurtle: {
		Name:        FormatTurtle,
		MIMEType:    "text/turtle",
		Extension:   ".ttl",
		Description: "Turtle - Terse RDF Triple Language",
	},
	FormatNTriples: {
		Name:        FormatNTriples,
		MIMEType:    "application/n-triples",
		Extension:   ".nt",
		Description: "N-Triples - Line-based RDF format",
	},
	FormatJSONLD: {
		Name:        FormatJSONLD,
		MIMEType:    "application/ld+json",
		Extension:   ".jsonld",
		Description: "JSON-LD - JSON for Linked Data",
	},
}

// GetFormatInfo returns metadata for a format.
func GetFormatInfo(format Format) (FormatInfo, bool) {
	info, ok := FormatRegistry[format]
	return info, ok
}

// Formats returns the registered formats ordered by name.
func Formats() []FormatInfo {
	out := make([]FormatInfo, 0, len(FormatRegistry))
	for _, info := range FormatRegistry {
		out = append(out, info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// ParseFormat resolves a format from its name, file extension or MIME type.
// Matching is case-insensitive.
func ParseFormat(name string) (Format, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	switch key {
	case "ttl":
		return FormatTurtle, nil
	case "nt", "n-triples":
		return FormatNTriples, nil
	case "json-ld":
		return FormatJSONLD, nil
	}
	for format, info := range FormatRegistry {
		if key == string(format) || key == info.MIMEType || key == info.Extension {
			return format, nil
		}
	}
	return "", fmt.Errorf("unsupported format: %q", name)
}

// TurtleWriter writes RDF in Turtle format.
type TurtleWriter struct {
	prefixes map[string]string
	sb       strings.Builder
}

// NewTurtleWriter creates a new Turtle writer with default prefixes.
func NewTurtleWriter() *TurtleWriter {
	return &TurtleWriter{
		prefixes: vocabulary.Prefixes(),
	}
}

// SetPrefix sets a namespace prefix.
func (w *TurtleWriter) SetPrefix(prefix, iri string) {
	w.prefixes[prefix] = iri
}

// WriteGraph writes the prefixes g needs followed by one block per subject.
// Subjects and their predicates keep first-appearance order.
func (w *TurtleWriter) WriteGraph(g *graph.Graph) {
	used := make(map[string]bool)
	iri := func(v string) string {
		if curie, ok := vocabulary.CompactWith(v, w.prefixes); ok {
			prefix, _, _ := strings.Cut(curie, ":")
			used[prefix] = true
			return curie
		}
		return "<" + v + ">"
	}
	term := func(t graph.Term) string {
		switch v := t.(type) {
		case graph.IRI:
			return iri(string(v))
		case graph.Literal:
			if v.Language == "" && v.Datatype != "" && v.Datatype != graph.XSDString {
				return `"` + graph.EscapeString(v.Value) + `"^^` + iri(string(v.Datatype))
			}
			return v.Quoted()
		default:
			return NTriples(t)
		}
	}

	var body strings.Builder
	for _, s := range groupBySubject(g) {
		body.WriteString(term(s.subject))
		body.WriteString("\n")
		for i, p := range s.predicates {
			pred := "a"
			if p.predicate != vocabulary.RDFType {
				pred = iri(string(p.predicate))
			}
			objects := make([]string, len(p.objects))
			for j, o := range p.objects {
				objects[j] = term(o)
			}
			terminator := " ;"
			if i == len(s.predicates)-1 {
				terminator = " ."
			}
			body.WriteString(fmt.Sprintf("    %s %s%s\n", pred, strings.Join(objects, ", "), terminator))
		}
		body.WriteString("\n")
	}

	if len(used) > 0 {
		keys := make([]string, 0, len(used))
		for k := range used {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, prefix := range keys {
			w.sb.WriteString(fmt.Sprintf("@prefix %s: <%s> .\n", prefix, w.prefixes[prefix]))
		}
		w.sb.WriteString("\n")
	}
	w.sb.WriteString(body.String())
}

// String returns the accumulated Turtle output.
func (w *TurtleWriter) String() string {
	return w.sb.String()
}

// NTriplesWriter writes RDF in N-Triples format.
type NTriplesWriter struct {
	sb strings.Builder
}

// NewNTriplesWriter creates a new N-Triples writer.
func NewNTriplesWriter() *NTriplesWriter {
	return &NTriplesWriter{}
}

// WriteTriple writes a single triple.
func (w *NTriplesWriter) WriteTriple(t graph.Triple) {
	w.sb.WriteString(fmt.Sprintf("%s <%s> %s .\n", NTriples(t.Subject), t.Predicate, NTriples(t.Object)))
}

// WriteGraph writes every triple of g in iteration order.
func (w *NTriplesWriter) WriteGraph(g *graph.Graph) {
	for _, t := range g.Triples() {
		w.WriteTriple(t)
	}
}

// String returns the accumulated N-Triples output.
func (w *NTriplesWriter) String() string {
	return w.sb.String()
}

// JSONLDWriter writes RDF in compacted JSON-LD form.
type JSONLDWriter struct {
	context map[string]any
	doc     any
}

// NewJSONLDWriter creates a new JSON-LD writer.
func NewJSONLDWriter() *JSONLDWriter {
	return &JSONLDWriter{context: make(map[string]any)}
}

// SetContext adds prefixes to the @context used for compaction.
func (w *JSONLDWriter) SetContext(prefixes map[string]string) {
	for k, v := range prefixes {
		w.context[k] = v
	}
}

// WriteGraph converts g to JSON-LD and compacts it against the context.
func (w *JSONLDWriter) WriteGraph(g *graph.Graph) error {
	nt := NewNTriplesWriter()
	nt.WriteGraph(g)

	proc := ld.NewJsonLdProcessor()
	opts := ld.NewJsonLdOptions("")
	opts.Format = "application/n-quads"

	expanded, err := proc.FromRDF(nt.String(), opts)
	if err != nil {
		return fmt.Errorf("json-ld from rdf: %w", err)
	}
	compacted, err := proc.Compact(expanded, map[string]any{"@context": w.context}, opts)
	if err != nil {
		return fmt.Errorf("json-ld compact: %w", err)
	}
	w.doc = compacted
	return nil
}

// String returns the JSON-LD output.
func (w *JSONLDWriter) String() string {
	if w.doc == nil {
		return "{}"
	}
	data, err := json.MarshalIndent(w.doc, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(data) + "\n"
}

type predicateObjects struct {
	predicate graph.IRI
	objects   []graph.Term
}

type subjectBlock struct {
	subject    graph.Term
	predicates []*predicateObjects
}

func groupBySubject(g *graph.Graph) []*subjectBlock {
	var blocks []*subjectBlock
	bySubject := make(map[string]*subjectBlock)
	for _, t := range g.Triples() {
		key := NTriples(t.Subject)
		block, ok := bySubject[key]
		if !ok {
			block = &subjectBlock{subject: t.Subject}
			bySubject[key] = block
			blocks = append(blocks, block)
		}
		var po *predicateObjects
		for _, existing := range block.predicates {
			if existing.predicate == t.Predicate {
				po = existing
				break
			}
		}
		if po == nil {
			po = &predicateObjects{predicate: t.Predicate}
			block.predicates = append(block.predicates, po)
		}
		po.objects = append(po.objects, t.Object)
	}
	return blocks
}
