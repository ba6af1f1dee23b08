package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	cat         = IRI("http://example.org/cat")
	rdfsLabel   = IRI("http://www.w3.org/2000/01/rdf-schema#label")
	rdfsSeeAlso = IRI("http://www.w3.org/2000/01/rdf-schema#seeAlso")
)

func TestGetAttribute(t *testing.T) {
	seeAlso := IRI("http://example.org/felidae")

	tests := []struct {
		name      string
		triples   []Triple
		predicate IRI
		lang      string
		want      Term
	}{
		{
			name: "tagged literal wins over earlier untagged",
			triples: []Triple{
				{Subject: cat, Predicate: rdfsLabel, Object: NewLiteral("cat")},
				{Subject: cat, Predicate: rdfsLabel, Object: LangLiteral("Katze", "de")},
			},
			lang: "de",
			want: LangLiteral("Katze", "de"),
		},
		{
			name: "tagged literal wins over earlier other-tagged",
			triples: []Triple{
				{Subject: cat, Predicate: rdfsLabel, Object: LangLiteral("chat", "fr")},
				{Subject: cat, Predicate: rdfsLabel, Object: LangLiteral("gatto", "it")},
			},
			lang: "it",
			want: LangLiteral("gatto", "it"),
		},
		{
			name: "falls back to first predicate match",
			triples: []Triple{
				{Subject: cat, Predicate: rdfsLabel, Object: LangLiteral("chat", "fr")},
				{Subject: cat, Predicate: rdfsLabel, Object: LangLiteral("gatto", "it")},
			},
			lang: "de",
			want: LangLiteral("chat", "fr"),
		},
		{
			name: "fallback may return a non-literal",
			triples: []Triple{
				{Subject: cat, Predicate: rdfsSeeAlso, Object: seeAlso},
			},
			predicate: rdfsSeeAlso,
			lang:      "en",
			want:      seeAlso,
		},
		{
			name: "language tag match is exact",
			triples: []Triple{
				{Subject: cat, Predicate: rdfsLabel, Object: LangLiteral("colour", "en-GB")},
				{Subject: cat, Predicate: rdfsLabel, Object: LangLiteral("color", "en")},
			},
			lang: "en",
			want: LangLiteral("color", "en"),
		},
		{
			name: "other predicates are ignored",
			triples: []Triple{
				{Subject: cat, Predicate: rdfsSeeAlso, Object: LangLiteral("chat", "fr")},
			},
			lang: "fr",
			want: nil,
		},
		{
			name:    "empty graph",
			triples: nil,
			lang:    "en",
			want:    nil,
		},
		{
			name: "no language requested returns nothing",
			triples: []Triple{
				{Subject: cat, Predicate: rdfsLabel, Object: LangLiteral("cat", "en")},
			},
			lang: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			predicate := tt.predicate
			if predicate == "" {
				predicate = rdfsLabel
			}
			g := New()
			g.Add(tt.triples...)
			assert.Equal(t, tt.want, GetAttribute(g, predicate, tt.lang))
		})
	}
}

func TestGetAttribute_NilGraph(t *testing.T) {
	assert.Nil(t, GetAttribute(nil, rdfsLabel, "en"))
}
