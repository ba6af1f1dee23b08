package export_test

import (
	"bytes"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/semlex/export"
	"github.com/c360studio/semlex/graph"
	"github.com/c360studio/semlex/vocabulary"
)

const (
	cat     = graph.IRI("http://example.org/cat")
	felidae = graph.IRI("http://example.org/felidae")
)

func sampleGraph() *graph.Graph {
	g := graph.New()
	g.Add(
		graph.Triple{Subject: cat, Predicate: vocabulary.RDFType, Object: graph.IRI(vocabulary.OntoLexLexicalEntry)},
		graph.Triple{Subject: cat, Predicate: vocabulary.RDFSLabel, Object: graph.LangLiteral("cat", "en")},
		graph.Triple{Subject: cat, Predicate: vocabulary.RDFSSeeAlso, Object: felidae},
		graph.Triple{Subject: cat, Predicate: vocabulary.RDFSLabel, Object: graph.LangLiteral("chat", "fr")},
		graph.Triple{Subject: felidae, Predicate: vocabulary.RDFSComment, Object: graph.NewLiteral("Family of \"cats\"\nincl. lions")},
		graph.Triple{Subject: felidae, Predicate: "http://example.org/genera", Object: graph.Literal{Value: "14", Datatype: vocabulary.XSDInteger}},
	)
	return g
}

// ntripleLines returns the sorted N-Triples lines of g.
func ntripleLines(t *testing.T, g *graph.Graph) []string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, export.Write(&buf, g, export.FormatNTriples))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	sort.Strings(lines)
	return lines
}

func TestExportTurtle(t *testing.T) {
	output, err := export.NewRDFExporter().Export(sampleGraph(), export.FormatTurtle)
	require.NoError(t, err)

	assert.Contains(t, output, "@prefix rdfs: <http://www.w3.org/2000/01/rdf-schema#> .")
	assert.Contains(t, output, "@prefix ontolex: <http://www.w3.org/ns/lemon/ontolex#> .")
	assert.Contains(t, output, "@prefix xsd: <http://www.w3.org/2001/XMLSchema#> .")
	assert.NotContains(t, output, "@prefix foaf:", "unused prefixes are omitted")

	assert.Contains(t, output, "<http://example.org/cat>\n    a ontolex:LexicalEntry ;\n")
	assert.Contains(t, output, `    rdfs:label "cat"@en, "chat"@fr ;`)
	assert.Contains(t, output, `    rdfs:seeAlso <http://example.org/felidae> .`)
	assert.Contains(t, output, `"Family of \"cats\"\nincl. lions"`)
	assert.Contains(t, output, `<http://example.org/genera> "14"^^xsd:integer .`)

	assert.Less(t, strings.Index(output, "<http://example.org/cat>\n"), strings.Index(output, "<http://example.org/felidae>\n"),
		"subjects keep first-appearance order")
}

func TestExportTurtleRoundTrip(t *testing.T) {
	g := sampleGraph()
	output, err := export.NewRDFExporter().Export(g, export.FormatTurtle)
	require.NoError(t, err)

	parsed, err := graph.Parse("text/turtle", strings.NewReader(output), "")
	require.NoError(t, err)
	assert.Equal(t, ntripleLines(t, g), ntripleLines(t, parsed))
}

func TestExportTurtleCustomPrefix(t *testing.T) {
	exporter := export.NewRDFExporter()
	exporter.SetPrefix("ex", "http://example.org/")

	output, err := exporter.Export(sampleGraph(), export.FormatTurtle)
	require.NoError(t, err)
	assert.Contains(t, output, "@prefix ex: <http://example.org/> .")
	assert.Contains(t, output, "ex:cat\n")
	assert.Contains(t, output, "rdfs:seeAlso ex:felidae .")
}

func TestExportNTriples(t *testing.T) {
	g := graph.New()
	g.Add(
		graph.Triple{Subject: cat, Predicate: vocabulary.RDFSLabel, Object: graph.LangLiteral("Katze", "de")},
		graph.Triple{Subject: graph.BlankNode{ID: "b0"}, Predicate: vocabulary.RDFSSeeAlso, Object: cat},
		graph.Triple{Subject: cat, Predicate: vocabulary.RDFSComment, Object: graph.NewLiteral("tab\there")},
	)

	output, err := export.NewRDFExporter().Export(g, export.FormatNTriples)
	require.NoError(t, err)

	expected := `<http://example.org/cat> <http://www.w3.org/2000/01/rdf-schema#label> "Katze"@de .
_:b0 <http://www.w3.org/2000/01/rdf-schema#seeAlso> <http://example.org/cat> .
<http://example.org/cat> <http://www.w3.org/2000/01/rdf-schema#comment> "tab\there" .
`
	assert.Equal(t, expected, output)
}

func TestExportJSONLD(t *testing.T) {
	g := sampleGraph()
	output, err := export.NewRDFExporter().Export(g, export.FormatJSONLD)
	require.NoError(t, err)

	assert.Contains(t, output, `"@context"`)
	assert.Contains(t, output, `"rdfs": "http://www.w3.org/2000/01/rdf-schema#"`)
	assert.Contains(t, output, `"rdfs:label"`)
	assert.NotContains(t, output, `"foaf"`)

	parsed, err := graph.Parse("application/ld+json", strings.NewReader(output), "")
	require.NoError(t, err)
	assert.Equal(t, ntripleLines(t, g), ntripleLines(t, parsed))
}

func TestExportEmptyGraph(t *testing.T) {
	for _, format := range []export.Format{export.FormatTurtle, export.FormatNTriples} {
		output, err := export.NewRDFExporter().Export(graph.New(), format)
		require.NoError(t, err)
		assert.Empty(t, output, format)
	}

	output, err := export.NewRDFExporter().Export(graph.New(), export.FormatJSONLD)
	require.NoError(t, err)
	assert.NotContains(t, output, "@id")
}

func TestExportUnsupportedFormat(t *testing.T) {
	_, err := export.NewRDFExporter().Export(sampleGraph(), export.Format("rdfxml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")

	var buf bytes.Buffer
	assert.Error(t, export.Write(&buf, sampleGraph(), export.Format("csv")))
	assert.Zero(t, buf.Len())
}

func TestNTriplesTerm(t *testing.T) {
	assert.Equal(t, "<http://example.org/cat>", export.NTriples(cat))
	assert.Equal(t, "_:x", export.NTriples(graph.BlankNode{ID: "x"}))
	assert.Equal(t, `"chat"@fr`, export.NTriples(graph.LangLiteral("chat", "fr")))
}
