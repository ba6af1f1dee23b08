package vocabulary

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpand(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
		unknown bool
	}{
		{name: "skos curie", in: "skos:prefLabel", want: SKOSPrefLabel},
		{name: "rdfs curie", in: "rdfs:label", want: RDFSLabel},
		{name: "ontolex curie", in: "ontolex:writtenRep", want: OntoLexWrittenRep},
		{name: "absolute iri", in: "http://example.org/p", want: "http://example.org/p"},
		{name: "bracketed iri", in: "<http://example.org/p>", want: "http://example.org/p"},
		{name: "surrounding space", in: "  rdfs:comment ", want: RDFSComment},
		{name: "urn", in: "urn:isbn:0451450523", want: "urn:isbn:0451450523"},
		{name: "mailto", in: "mailto:lex@example.org", want: "mailto:lex@example.org"},
		{name: "bracketed urn", in: "<urn:uuid:6e8bc430-9c3a-11d9-9669-0800200c9a66>", want: "urn:uuid:6e8bc430-9c3a-11d9-9669-0800200c9a66"},
		{name: "scheme without body", in: "urn:", wantErr: true, unknown: true},
		{name: "unknown prefix", in: "ex:thing", wantErr: true, unknown: true},
		{name: "bare word", in: "label", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Expand(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.unknown, errors.Is(err, ErrUnknownPrefix))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCompact(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{SKOSPrefLabel, "skos:prefLabel", true},
		{RDFType, "rdf:type", true},
		{LexInfoPartOfSpeech, "lexinfo:partOfSpeech", true},
		{"http://schema.org/name", "schema:name", true},
		{"http://purl.org/dc/terms/title", "dcterms:title", true},
		{"http://example.org/cat", "", false},
		{RDFS, "", false},
		{Schema + "path/segment", "", false},
		{Schema + "1st", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := Compact(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCompactExpandRoundTrip(t *testing.T) {
	for _, iri := range LabelPredicates {
		curie, ok := Compact(iri)
		require.True(t, ok, iri)
		back, err := Expand(curie)
		require.NoError(t, err)
		assert.Equal(t, iri, back)
	}
}

func TestNamespaces(t *testing.T) {
	ns := Namespaces()
	require.Len(t, ns, 11)
	for i := 1; i < len(ns); i++ {
		assert.Less(t, ns[i-1].Prefix, ns[i].Prefix)
	}

	iri, ok := Lookup("skos")
	assert.True(t, ok)
	assert.Equal(t, SKOS, iri)

	_, ok = Lookup("ex")
	assert.False(t, ok)
}

func TestCompactWith(t *testing.T) {
	prefixes := map[string]string{
		"ex":    "http://example.org/",
		"exvoc": "http://example.org/vocab#",
	}

	got, ok := CompactWith("http://example.org/vocab#term", prefixes)
	require.True(t, ok)
	assert.Equal(t, "exvoc:term", got, "longest namespace wins")

	got, ok = CompactWith("http://example.org/cat", prefixes)
	require.True(t, ok)
	assert.Equal(t, "ex:cat", got)

	_, ok = CompactWith(SKOSPrefLabel, prefixes)
	assert.False(t, ok)
}

func TestPrefixesIsCopy(t *testing.T) {
	p := Prefixes()
	p["skos"] = "http://example.org/"

	iri, _ := Lookup("skos")
	assert.Equal(t, SKOS, iri)
}
