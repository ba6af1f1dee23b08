package vocabulary

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Namespace IRIs for the vocabularies that show up in lexical linked data.
const (
	RDF     = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	RDFS    = "http://www.w3.org/2000/01/rdf-schema#"
	OWL     = "http://www.w3.org/2002/07/owl#"
	XSD     = "http://www.w3.org/2001/XMLSchema#"
	SKOS    = "http://www.w3.org/2004/02/skos/core#"
	DCTerms = "http://purl.org/dc/terms/"
	DC      = "http://purl.org/dc/elements/1.1/"
	Schema  = "http://schema.org/"
	FOAF    = "http://xmlns.com/foaf/0.1/"
	LexInfo = "http://www.lexinfo.net/ontology/3.0/lexinfo#"
	OntoLex = "http://www.w3.org/ns/lemon/ontolex#"
)

// ErrUnknownPrefix is returned by Expand for a CURIE whose prefix is not
// registered.
var ErrUnknownPrefix = errors.New("unknown prefix")

// Namespace binds a prefix to its IRI.
type Namespace struct {
	Prefix string
	IRI    string
}

var namespaces = map[string]string{
	"rdf":     RDF,
	"rdfs":    RDFS,
	"owl":     OWL,
	"xsd":     XSD,
	"skos":    SKOS,
	"dcterms": DCTerms,
	"dc":      DC,
	"schema":  Schema,
	"foaf":    FOAF,
	"lexinfo": LexInfo,
	"ontolex": OntoLex,
}

// localName is a conservative subset of the Turtle PN_LOCAL production.
var localName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_\-]*$`)

// Namespaces returns the registered namespaces ordered by prefix.
func Namespaces() []Namespace {
	out := make([]Namespace, 0, len(namespaces))
	for prefix, iri := range namespaces {
		out = append(out, Namespace{Prefix: prefix, IRI: iri})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Prefix < out[j].Prefix })
	return out
}

// Prefixes returns a copy of the prefix to namespace bindings.
func Prefixes() map[string]string {
	out := make(map[string]string, len(namespaces))
	for prefix, iri := range namespaces {
		out[prefix] = iri
	}
	return out
}

// Lookup returns the namespace IRI bound to prefix.
func Lookup(prefix string) (string, bool) {
	iri, ok := namespaces[prefix]
	return iri, ok
}

// uriSchemes are non-hierarchical schemes whose IRIs have no "://" but are
// never CURIEs.
var uriSchemes = map[string]bool{
	"urn":    true,
	"mailto": true,
	"tag":    true,
	"info":   true,
	"data":   true,
	"tel":    true,
	"did":    true,
}

// Expand turns a CURIE such as "skos:prefLabel" into a full IRI. Absolute
// IRIs and IRIs wrapped in angle brackets are returned as-is (brackets
// stripped). A name whose prefix is neither bound nor a known URI scheme is
// an ErrUnknownPrefix.
func Expand(curie string) (string, error) {
	s := strings.TrimSpace(curie)
	if strings.HasPrefix(s, "<") && strings.HasSuffix(s, ">") {
		return s[1 : len(s)-1], nil
	}
	if strings.Contains(s, "://") {
		return s, nil
	}

	prefix, local, ok := strings.Cut(s, ":")
	if !ok {
		return "", fmt.Errorf("expand %q: not a CURIE or IRI", curie)
	}
	ns, ok := namespaces[prefix]
	if !ok {
		if uriSchemes[strings.ToLower(prefix)] && local != "" {
			return s, nil
		}
		return "", fmt.Errorf("expand %q: %w %q", curie, ErrUnknownPrefix, prefix)
	}
	return ns + local, nil
}

// Compact returns the CURIE form of iri using the longest matching
// namespace. ok is false when no namespace matches or the remainder is not
// a plain local name.
func Compact(iri string) (curie string, ok bool) {
	return CompactWith(iri, namespaces)
}

// CompactWith is Compact over a caller supplied prefix table.
func CompactWith(iri string, prefixes map[string]string) (curie string, ok bool) {
	bestPrefix, bestNS := "", ""
	for prefix, ns := range prefixes {
		if strings.HasPrefix(iri, ns) && len(ns) > len(bestNS) {
			bestPrefix, bestNS = prefix, ns
		}
	}
	if bestNS == "" {
		return "", false
	}
	local := iri[len(bestNS):]
	if !localName.MatchString(local) {
		return "", false
	}
	return bestPrefix + ":" + local, true
}
