package graph

// GetAttribute returns the object of the first triple whose predicate matches
// and whose object is a literal tagged exactly with lang. When no such literal
// exists it falls back to the object of the first triple with that predicate,
// whatever its kind or language. An empty lang always yields nil, even when
// matching triples exist.
func GetAttribute(g *Graph, predicate IRI, lang string) Term {
	if g == nil || lang == "" {
		return nil
	}

	for _, t := range g.triples {
		if t.Predicate != predicate {
			continue
		}
		if lit, ok := t.Object.(Literal); ok && lit.Language == lang {
			return lit
		}
	}

	for _, t := range g.triples {
		if t.Predicate == predicate {
			return t.Object
		}
	}

	return nil
}
