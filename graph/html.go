package graph

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/piprate/json-gold/ld"
	"golang.org/x/net/html"
)

const jsonldScriptType = "application/ld+json"

// htmlParser extracts the JSON-LD blocks embedded in an HTML page.
type htmlParser struct {
	jsonld *jsonldParser
}

// NewHTMLParser returns a parser for HTML and XHTML pages carrying
// <script type="application/ld+json"> blocks. A page without such blocks
// yields an empty graph.
func NewHTMLParser() Parser {
	return &htmlParser{jsonld: &jsonldParser{}}
}

// NewHTMLParserWithLoader is NewHTMLParser with remote JSON-LD contexts
// resolved through loader.
func NewHTMLParserWithLoader(loader ld.DocumentLoader) Parser {
	return &htmlParser{jsonld: &jsonldParser{loader: loader}}
}

func (p *htmlParser) MimeTypes() []string {
	return []string{"text/html", "application/xhtml+xml"}
}

func (p *htmlParser) Parse(r io.Reader, base string) (*Graph, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	blocks := extractJSONLDBlocks(doc)
	g := New()
	for i, block := range blocks {
		var data any
		if err := json.Unmarshal([]byte(block), &data); err != nil {
			return nil, fmt.Errorf("json-ld block %d: %w", i, err)
		}
		prefix := ""
		if len(blocks) > 1 {
			prefix = fmt.Sprintf("s%d", i)
		}
		if err := p.jsonld.addDocument(g, data, base, prefix); err != nil {
			return nil, fmt.Errorf("json-ld block %d: %w", i, err)
		}
	}
	return g, nil
}

// extractJSONLDBlocks returns the text of every JSON-LD script element in
// document order.
func extractJSONLDBlocks(doc *html.Node) []string {
	var blocks []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "script" && isJSONLDScript(n) {
			var sb strings.Builder
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				if c.Type == html.TextNode {
					sb.WriteString(c.Data)
				}
			}
			if text := strings.TrimSpace(sb.String()); text != "" {
				blocks = append(blocks, text)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return blocks
}

func isJSONLDScript(n *html.Node) bool {
	for _, a := range n.Attr {
		if a.Key != "type" {
			continue
		}
		mime, _, _ := strings.Cut(a.Val, ";")
		return strings.EqualFold(strings.TrimSpace(mime), jsonldScriptType)
	}
	return false
}
