// Package vocabulary holds the RDF namespaces and predicate IRIs used when
// reading lexical resources, plus CURIE expansion and compaction over the
// well-known prefixes.
//
// Predicates are plain string constants so they convert to graph.IRI without
// ceremony:
//
//	label := graph.GetAttribute(g, vocabulary.SKOSPrefLabel, "de")
//
//	iri, err := vocabulary.Expand("ontolex:writtenRep")
package vocabulary
