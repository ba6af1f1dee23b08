package graph

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/piprate/json-gold/ld"
)

// ErrUnsupportedFormat is returned when no parser is registered for a MIME type.
var ErrUnsupportedFormat = errors.New("unsupported RDF format")

// Parser decodes one RDF serialization into a Graph.
type Parser interface {
	// Parse reads a document and returns a new graph. Relative IRIs are
	// resolved against base where the format supports it.
	Parse(r io.Reader, base string) (*Graph, error)

	// MimeTypes returns the MIME types this parser handles.
	MimeTypes() []string
}

// Registry maps MIME types to parsers.
type Registry struct {
	mu      sync.RWMutex
	parsers map[string]Parser
}

// DefaultRegistry holds the built-in parsers.
var DefaultRegistry = NewRegistry()

// NewRegistry creates a registry with the built-in parsers.
func NewRegistry() *Registry {
	return NewRegistryWithLoader(nil)
}

// NewRegistryWithLoader creates a registry with the built-in parsers whose
// JSON-LD and HTML parsers resolve remote contexts through loader. A nil
// loader selects the json-gold default.
func NewRegistryWithLoader(loader ld.DocumentLoader) *Registry {
	r := NewEmptyRegistry()

	r.Register(NewTurtleParser())
	r.Register(NewNTriplesParser())
	r.Register(NewNQuadsParser())
	r.Register(NewRDFXMLParser())
	if loader != nil {
		r.Register(NewJSONLDParserWithLoader(loader))
		r.Register(NewHTMLParserWithLoader(loader))
	} else {
		r.Register(NewJSONLDParser())
		r.Register(NewHTMLParser())
	}

	return r
}

// NewEmptyRegistry creates a registry with no parsers.
func NewEmptyRegistry() *Registry {
	return &Registry{parsers: make(map[string]Parser)}
}

// Register adds p under each of its MIME types, replacing earlier entries.
func (r *Registry) Register(p Parser) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, mime := range p.MimeTypes() {
		r.parsers[normalizeMime(mime)] = p
	}
}

// Get returns the parser for a MIME type, or nil.
func (r *Registry) Get(mimeType string) Parser {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.parsers[normalizeMime(mimeType)]
}

// Parse decodes r with the parser registered for mimeType.
func (r *Registry) Parse(mimeType string, rd io.Reader, base string) (*Graph, error) {
	p := r.Get(mimeType)
	if p == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, mimeType)
	}
	return p.Parse(rd, base)
}

// MimeTypes returns the registered MIME types in sorted order.
func (r *Registry) MimeTypes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]string, 0, len(r.parsers))
	for t := range r.parsers {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// Parse decodes r with the default registry.
func Parse(mimeType string, r io.Reader, base string) (*Graph, error) {
	return DefaultRegistry.Parse(mimeType, r, base)
}

func normalizeMime(mimeType string) string {
	return strings.ToLower(strings.TrimSpace(mimeType))
}
