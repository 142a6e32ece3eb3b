package printing

import (
	"context"
	"time"
)

// StubRenderer is a PDFRenderer that returns fixed bytes. It backs the PDF
// endpoint when no Chrome binary is available and is used in tests.
type StubRenderer struct {
	// Data returned for every render; defaults to a minimal PDF header.
	Data []byte
	// LastRequest records the most recent render request.
	LastRequest *RenderRequest
}

// NewStubRenderer creates a stub renderer.
func NewStubRenderer() *StubRenderer {
	return &StubRenderer{Data: []byte("%PDF-1.4\n%stub\n")}
}

// Render returns the configured bytes without launching a browser.
func (r *StubRenderer) Render(_ context.Context, req *RenderRequest) (*RenderResult, error) {
	if req == nil || req.HTML == "" {
		return nil, NewRenderError(ErrCodeInvalidHTML, "HTML content is empty", nil)
	}
	r.LastRequest = req
	return &RenderResult{
		PDFData:        r.Data,
		RenderDuration: time.Millisecond,
	}, nil
}

// Close is a no-op.
func (r *StubRenderer) Close() error { return nil }

var _ PDFRenderer = (*StubRenderer)(nil)
