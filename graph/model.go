// Package graph provides an in-memory RDF graph, MIME-keyed parsers that
// populate it, and lookups over its triples.
package graph

import (
	"fmt"
	"strings"
)

// TermKind identifies the kind of an RDF term.
type TermKind uint8

const (
	// TermIRI is a resource identifier.
	TermIRI TermKind = iota
	// TermBlankNode is an anonymous resource.
	TermBlankNode
	// TermLiteral is a value node.
	TermLiteral
)

// String returns the kind name.
func (k TermKind) String() string {
	switch k {
	case TermIRI:
		return "iri"
	case TermBlankNode:
		return "blank"
	case TermLiteral:
		return "literal"
	default:
		return "unknown"
	}
}

// Term is a node that can appear in a triple.
type Term interface {
	Kind() TermKind
	String() string
}

// IRI is an absolute resource identifier.
type IRI string

// Kind implements Term.
func (i IRI) Kind() TermKind { return TermIRI }

// String returns the raw IRI.
func (i IRI) String() string { return string(i) }

// BlankNode is a document-scoped anonymous node.
type BlankNode struct {
	ID string
}

// Kind implements Term.
func (b BlankNode) Kind() TermKind { return TermBlankNode }

// String returns the node label with its "_:" prefix.
func (b BlankNode) String() string { return "_:" + b.ID }

// Literal is a lexical value with an optional language tag or datatype.
// Language-tagged literals carry the rdf:langString datatype implicitly and
// leave Datatype empty.
type Literal struct {
	Value    string
	Language string
	Datatype IRI
}

// Kind implements Term.
func (l Literal) Kind() TermKind { return TermLiteral }

// String returns the lexical value.
func (l Literal) String() string { return l.Value }

// Quoted returns the literal in N-Triples form.
func (l Literal) Quoted() string {
	var sb strings.Builder
	sb.WriteByte('"')
	sb.WriteString(EscapeString(l.Value))
	sb.WriteByte('"')
	switch {
	case l.Language != "":
		sb.WriteString("@")
		sb.WriteString(l.Language)
	case l.Datatype != "" && l.Datatype != XSDString:
		sb.WriteString("^^<")
		sb.WriteString(string(l.Datatype))
		sb.WriteString(">")
	}
	return sb.String()
}

// XSDString is the implicit datatype of plain literals.
const XSDString IRI = "http://www.w3.org/2001/XMLSchema#string"

// NewLiteral returns a plain string literal.
func NewLiteral(value string) Literal {
	return Literal{Value: value}
}

// LangLiteral returns a literal tagged with lang.
func LangLiteral(value, lang string) Literal {
	return Literal{Value: value, Language: lang}
}

// Triple is a single subject-predicate-object statement.
type Triple struct {
	Subject   Term
	Predicate IRI
	Object    Term
}

// Graph is an ordered collection of triples. Iteration follows insertion
// order, which for parsed graphs is document order. A Graph is not safe for
// concurrent mutation; each parse returns a fresh one owned by the caller.
type Graph struct {
	triples []Triple
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{triples: make([]Triple, 0)}
}

// Add appends triples to the graph.
func (g *Graph) Add(triples ...Triple) {
	g.triples = append(g.triples, triples...)
}

// Len returns the number of triples.
func (g *Graph) Len() int {
	if g == nil {
		return 0
	}
	return len(g.triples)
}

// Triples returns a copy of the triples in iteration order.
func (g *Graph) Triples() []Triple {
	if g == nil {
		return nil
	}
	out := make([]Triple, len(g.triples))
	copy(out, g.triples)
	return out
}

// Objects returns the objects of every triple with the given predicate.
func (g *Graph) Objects(predicate IRI) []Term {
	if g == nil {
		return nil
	}
	var out []Term
	for _, t := range g.triples {
		if t.Predicate == predicate {
			out = append(out, t.Object)
		}
	}
	return out
}

// EscapeString escapes a lexical value for use inside a double-quoted
// N-Triples or Turtle string.
func EscapeString(s string) string {
	var sb strings.Builder
	for _, r := range s {
		switch r {
		case '\\':
			sb.WriteString(`\\`)
		case '"':
			sb.WriteString(`\"`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&sb, `\u%04X`, r)
				continue
			}
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
