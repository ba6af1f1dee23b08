package vocabulary

// Core RDF schema and datatype terms.
const (
	RDFType       = RDF + "type"
	RDFLangString = RDF + "langString"
	RDFSLabel     = RDFS + "label"
	RDFSComment   = RDFS + "comment"
	RDFSSeeAlso   = RDFS + "seeAlso"
	OWLSameAs     = OWL + "sameAs"
	XSDString     = XSD + "string"
	XSDInteger    = XSD + "integer"
	XSDBoolean    = XSD + "boolean"
	XSDDateTime   = XSD + "dateTime"
)

// Labelling and documentation properties.
const (
	// SKOSPrefLabel is the preferred lexical label of a concept.
	SKOSPrefLabel = SKOS + "prefLabel"

	// SKOSAltLabel is an alternative lexical label (synonym, abbreviation).
	SKOSAltLabel = SKOS + "altLabel"

	// SKOSDefinition is a natural language definition of a concept.
	SKOSDefinition = SKOS + "definition"

	DCTermsTitle = DCTerms + "title"
	DCTitle      = DC + "title"
	SchemaName   = Schema + "name"
	FOAFName     = FOAF + "name"
)

// OntoLex-Lemon and LexInfo terms for lexical entries.
const (
	// OntoLexLexicalEntry is the class of words, multiword expressions and affixes.
	OntoLexLexicalEntry = OntoLex + "LexicalEntry"

	// OntoLexCanonicalForm links an entry to its lemma form.
	OntoLexCanonicalForm = OntoLex + "canonicalForm"

	// OntoLexWrittenRep is the written representation of a form.
	// Domain: ontolex:Form, Range: rdf:langString
	OntoLexWrittenRep = OntoLex + "writtenRep"

	// OntoLexSense links an entry to one of its senses.
	OntoLexSense = OntoLex + "sense"

	// OntoLexDenotes links an entry to the ontology entity it denotes.
	OntoLexDenotes = OntoLex + "denotes"

	// LexInfoPartOfSpeech gives the part of speech of an entry.
	LexInfoPartOfSpeech = LexInfo + "partOfSpeech"
)

// LabelPredicates lists the properties consulted for a human readable label,
// most specific first.
var LabelPredicates = []string{
	SKOSPrefLabel,
	RDFSLabel,
	SchemaName,
	DCTermsTitle,
	DCTitle,
	FOAFName,
}
