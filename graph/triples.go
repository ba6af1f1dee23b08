package graph

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/knakk/rdf"
)

// tripleParser covers the line and document formats handled by knakk/rdf.
type tripleParser struct {
	format  rdf.Format
	quads   bool
	hasBase bool
	mimes   []string
}

// NewTurtleParser returns a Turtle parser.
func NewTurtleParser() Parser {
	return &tripleParser{format: rdf.Turtle, hasBase: true, mimes: []string{"text/turtle", "application/x-turtle"}}
}

// NewNTriplesParser returns an N-Triples parser.
func NewNTriplesParser() Parser {
	return &tripleParser{format: rdf.NTriples, mimes: []string{"application/n-triples"}}
}

// NewNQuadsParser returns an N-Quads parser. Graph names are dropped; every
// statement lands in the same graph.
func NewNQuadsParser() Parser {
	return &tripleParser{format: rdf.NQuads, quads: true, mimes: []string{"application/n-quads"}}
}

// NewRDFXMLParser returns an RDF/XML parser.
func NewRDFXMLParser() Parser {
	return &tripleParser{format: rdf.RDFXML, hasBase: true, mimes: []string{"application/rdf+xml"}}
}

func (p *tripleParser) MimeTypes() []string {
	return p.mimes
}

func (p *tripleParser) Parse(r io.Reader, base string) (*Graph, error) {
	if p.quads {
		return p.parseQuads(r)
	}

	dec := rdf.NewTripleDecoder(r, p.format)
	if p.hasBase && base != "" {
		iri, err := rdf.NewIRI(base)
		if err != nil {
			return nil, fmt.Errorf("base IRI: %w", err)
		}
		if err := dec.SetOption(rdf.Base, iri); err != nil {
			return nil, err
		}
	}
	g := New()
	for {
		tr, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		t, err := convertTriple(tr)
		if err != nil {
			return nil, err
		}
		g.Add(t)
	}
	return g, nil
}

func (p *tripleParser) parseQuads(r io.Reader) (*Graph, error) {
	dec := rdf.NewQuadDecoder(r, p.format)
	g := New()
	for {
		q, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		t, err := convertTriple(q.Triple)
		if err != nil {
			return nil, err
		}
		g.Add(t)
	}
	return g, nil
}

func convertTriple(tr rdf.Triple) (Triple, error) {
	subj, err := convertTerm(tr.Subj)
	if err != nil {
		return Triple{}, fmt.Errorf("subject: %w", err)
	}
	obj, err := convertTerm(tr.Obj)
	if err != nil {
		return Triple{}, fmt.Errorf("object: %w", err)
	}
	return Triple{
		Subject:   subj,
		Predicate: IRI(tr.Pred.String()),
		Object:    obj,
	}, nil
}

func convertTerm(term rdf.Term) (Term, error) {
	switch v := term.(type) {
	case rdf.IRI:
		return IRI(v.String()), nil
	case rdf.Blank:
		return BlankNode{ID: strings.TrimPrefix(v.String(), "_:")}, nil
	case rdf.Literal:
		lit := Literal{Value: v.String(), Language: v.Lang()}
		if lit.Language == "" {
			lit.Datatype = IRI(v.DataType.String())
		}
		return lit, nil
	default:
		return nil, fmt.Errorf("unexpected term %T", term)
	}
}
