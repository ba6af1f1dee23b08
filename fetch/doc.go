// Package fetch retrieves RDF documents over HTTP with content negotiation.
//
// A fetch distinguishes three results. A parsed *graph.Graph is returned for a
// 200 response whose media type is one of the accepted types. A nil graph with
// a nil error means the resource has no RDF representation in those types
// (any other status, or a different Content-Type). An error is returned only
// when the transport fails or an accepted document does not parse, in which
// case it is a *ParseError matching ErrParse.
//
//	g, err := fetch.FetchRDFGraph(ctx, "http://example.org/cat",
//		[]string{"text/turtle", "application/ld+json"})
//	if err != nil {
//		return err
//	}
//	if g == nil {
//		// no RDF available
//	}
package fetch
