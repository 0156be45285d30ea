package status

import "context"

// Widget contains information about a generator instance.
type Widget struct {
	Gen   Generator
	Error error // Only modified by the status loop.
}

// Generator is the interface all generators must implement.
//
// Generate is the widget's activation: it runs on its own goroutine from
// the moment the status starts and publishes elements through gctx. It must
// release everything it acquired and return once ctx is done, which is the
// widget's deactivation. A non-nil error replaces the widget's elements with
// an error element.
type Generator interface {
	Generate(ctx context.Context, gctx *GeneratorCtx) error
}

// GeneratorFunc adapts a function to the Generator interface.
type GeneratorFunc func(ctx context.Context, gctx *GeneratorCtx) error

// Generate calls f.
func (f GeneratorFunc) Generate(ctx context.Context, gctx *GeneratorCtx) error {
	return f(ctx, gctx)
}

// GeneratorCtx is handed to a generator to publish its elements to the
// status instance.
type GeneratorCtx struct {
	Index   int
	publish func(index int, e []Element)
}

// NewGeneratorCtx creates a GeneratorCtx for the widget at index which
// forwards published elements to publish.
func NewGeneratorCtx(index int, publish func(index int, e []Element)) *GeneratorCtx {
	return &GeneratorCtx{Index: index, publish: publish}
}

// Publish replaces the elements displayed for the widget. It never blocks.
func (g *GeneratorCtx) Publish(e []Element) {
	g.publish(g.Index, e)
}

// WidgetError is passed to the status instance when
// a generator encounters an unrecoverable error.
type WidgetError struct {
	Index int
	Error error
}
