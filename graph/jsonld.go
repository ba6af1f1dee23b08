package graph

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/piprate/json-gold/ld"
)

const (
	defaultGraphName = "@default"
	rdfLangString    = "http://www.w3.org/1999/02/22-rdf-syntax-ns#langString"
)

type jsonldParser struct {
	loader ld.DocumentLoader
}

// NewJSONLDParser returns a JSON-LD parser. Remote contexts are resolved with
// the json-gold default document loader.
func NewJSONLDParser() Parser {
	return &jsonldParser{}
}

// NewJSONLDParserWithLoader returns a JSON-LD parser that resolves remote
// contexts through loader.
func NewJSONLDParserWithLoader(loader ld.DocumentLoader) Parser {
	return &jsonldParser{loader: loader}
}

func (p *jsonldParser) MimeTypes() []string {
	return []string{"application/ld+json"}
}

func (p *jsonldParser) Parse(r io.Reader, base string) (*Graph, error) {
	var doc any
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode json-ld: %w", err)
	}
	g := New()
	if err := p.addDocument(g, doc, base, ""); err != nil {
		return nil, err
	}
	return g, nil
}

// addDocument converts doc to RDF and appends it to g. Blank node labels are
// prefixed with blankPrefix so several documents can share one graph.
func (p *jsonldParser) addDocument(g *Graph, doc any, base, blankPrefix string) error {
	proc := ld.NewJsonLdProcessor()
	opts := ld.NewJsonLdOptions(base)
	if p.loader != nil {
		opts.DocumentLoader = p.loader
	}

	result, err := proc.ToRDF(doc, opts)
	if err != nil {
		return fmt.Errorf("json-ld to rdf: %w", err)
	}
	dataset, ok := result.(*ld.RDFDataset)
	if !ok {
		return fmt.Errorf("json-ld: unexpected ToRDF result %T", result)
	}

	for _, name := range graphNames(dataset) {
		for _, q := range dataset.Graphs[name] {
			t, err := convertQuad(q, blankPrefix)
			if err != nil {
				return err
			}
			g.Add(t)
		}
	}
	return nil
}

// graphNames orders the default graph first, then named graphs by name.
func graphNames(dataset *ld.RDFDataset) []string {
	names := make([]string, 0, len(dataset.Graphs))
	for name := range dataset.Graphs {
		if name != defaultGraphName {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	if _, ok := dataset.Graphs[defaultGraphName]; ok {
		names = append([]string{defaultGraphName}, names...)
	}
	return names
}

func convertQuad(q *ld.Quad, blankPrefix string) (Triple, error) {
	if q == nil {
		return Triple{}, fmt.Errorf("json-ld: nil quad")
	}
	subj, err := convertLDNode(q.Subject, blankPrefix)
	if err != nil {
		return Triple{}, fmt.Errorf("subject: %w", err)
	}
	pred, ok := q.Predicate.(ld.IRI)
	if !ok {
		return Triple{}, fmt.Errorf("predicate: unexpected node %T", q.Predicate)
	}
	obj, err := convertLDNode(q.Object, blankPrefix)
	if err != nil {
		return Triple{}, fmt.Errorf("object: %w", err)
	}
	return Triple{Subject: subj, Predicate: IRI(pred.Value), Object: obj}, nil
}

func convertLDNode(node ld.Node, blankPrefix string) (Term, error) {
	switch v := node.(type) {
	case ld.IRI:
		return IRI(v.Value), nil
	case ld.BlankNode:
		return BlankNode{ID: blankPrefix + strings.TrimPrefix(v.Attribute, "_:")}, nil
	case ld.Literal:
		lit := Literal{Value: v.Value, Language: v.Language}
		if lit.Language == "" && v.Datatype != rdfLangString {
			lit.Datatype = IRI(v.Datatype)
		}
		return lit, nil
	default:
		return nil, fmt.Errorf("unexpected node %T", node)
	}
}
