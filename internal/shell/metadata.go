package shell

import "context"

const (
	// AppTitle is the document title of every SciBind page shell
	AppTitle = "SciBind"
	// FaviconRef is the icon link declared in the document head
	FaviconRef = "/favicon.ico"
)

// Metadata is what a page declares for the document head
type Metadata struct {
	Title   string
	IconRef string
}

// DefaultMetadata returns the metadata the page shell declares
func DefaultMetadata() Metadata {
	return Metadata{Title: AppTitle, IconRef: FaviconRef}
}

// Document holds the head state of one rendered page.
// It keeps a single title and a single icon reference: declaring again replaces
// the previous values instead of adding to them.
type Document struct {
	meta     Metadata
	declared bool
}

// NewDocument returns an empty document with nothing declared
func NewDocument() *Document {
	return &Document{}
}

// Declare sets the page metadata. Calling it repeatedly is safe.
func (d *Document) Declare(meta Metadata) {
	d.meta = meta
	d.declared = true
}

// Metadata returns the active metadata and whether anything was declared
func (d *Document) Metadata() (Metadata, bool) {
	if d == nil {
		return Metadata{}, false
	}
	return d.meta, d.declared
}

type documentKey struct{}

// WithDocument attaches the document to the context for the host layout to read
func WithDocument(ctx context.Context, doc *Document) context.Context {
	return context.WithValue(ctx, documentKey{}, doc)
}

// DocumentFrom returns the document attached to the context, or nil
func DocumentFrom(ctx context.Context) *Document {
	doc, _ := ctx.Value(documentKey{}).(*Document)
	return doc
}
