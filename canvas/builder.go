package canvas

import (
	"log/slog"
)

// CanvasBuilder declares one construction step per component kind. Each step
// adds exactly one component of its kind to the canvas in progress.
//
// Build returns a snapshot of the canvas in progress; later steps never
// modify a canvas already returned. Reset starts over with an empty canvas.
type CanvasBuilder interface {
	BuildTitle()
	BuildLegend()
	BuildMargins()
	BuildSize()
	BuildFont()
	BuildBackground()
	BuildColorScale()
	BuildAxes()
	BuildColorAxisDomain()
	BuildColorAxisScales()
	BuildColorBarStyle()
	BuildColorBarPosition()
	BuildColorBarBoundary()
	BuildColorBarTicks()
	BuildColorBarTickStyle()
	BuildColorBarTickFont()
	BuildColorBarNumbers()
	BuildColorBarTitle()

	Build() *Canvas
	Reset()
}

// Drain returns the canvas built so far and resets the builder so that it
// can be reused for the next canvas.
func Drain(b CanvasBuilder) *Canvas {
	c := b.Build()
	b.Reset()
	return c
}

// Step returns the construction step of b that builds the given kind, or nil
// when k is not a single kind.
func Step(b CanvasBuilder, k Kind) func() {
	switch k {
	case KindTitle:
		return b.BuildTitle
	case KindLegend:
		return b.BuildLegend
	case KindMargins:
		return b.BuildMargins
	case KindSize:
		return b.BuildSize
	case KindFont:
		return b.BuildFont
	case KindBackground:
		return b.BuildBackground
	case KindColorScale:
		return b.BuildColorScale
	case KindAxes:
		return b.BuildAxes
	case KindColorAxisDomain:
		return b.BuildColorAxisDomain
	case KindColorAxisScales:
		return b.BuildColorAxisScales
	case KindColorBarStyle:
		return b.BuildColorBarStyle
	case KindColorBarPosition:
		return b.BuildColorBarPosition
	case KindColorBarBoundary:
		return b.BuildColorBarBoundary
	case KindColorBarTicks:
		return b.BuildColorBarTicks
	case KindColorBarTickStyle:
		return b.BuildColorBarTickStyle
	case KindColorBarTickFont:
		return b.BuildColorBarTickFont
	case KindColorBarNumbers:
		return b.BuildColorBarNumbers
	case KindColorBarTitle:
		return b.BuildColorBarTitle
	default:
		return nil
	}
}

// DefaultCanvasBuilder builds canvas made of the default components. It is
// not safe for concurrent use.
type DefaultCanvasBuilder struct {
	canvas *Canvas
	logger *slog.Logger
}

func NewDefaultCanvasBuilder() *DefaultCanvasBuilder {
	b := DefaultCanvasBuilder{
		logger: slog.Default().With(slog.String("module", "canvas")),
	}
	b.Reset()
	return &b
}

// WithLogger replaces the logger the builder reports its steps to.
func (b *DefaultCanvasBuilder) WithLogger(logger *slog.Logger) *DefaultCanvasBuilder {
	if logger != nil {
		b.logger = logger
	}
	return b
}

func (b *DefaultCanvasBuilder) Reset() {
	b.canvas = NewCanvas()
}

func (b *DefaultCanvasBuilder) Build() *Canvas {
	return b.canvas.Clone()
}

func (b *DefaultCanvasBuilder) BuildTitle()      { b.add(DefaultTitle()) }
func (b *DefaultCanvasBuilder) BuildLegend()     { b.add(DefaultLegend()) }
func (b *DefaultCanvasBuilder) BuildMargins()    { b.add(DefaultMargins()) }
func (b *DefaultCanvasBuilder) BuildSize()       { b.add(DefaultSize()) }
func (b *DefaultCanvasBuilder) BuildFont()       { b.add(DefaultFont()) }
func (b *DefaultCanvasBuilder) BuildBackground() { b.add(DefaultBackground()) }
func (b *DefaultCanvasBuilder) BuildColorScale() { b.add(DefaultColorScale()) }
func (b *DefaultCanvasBuilder) BuildAxes()       { b.add(DefaultAxes()) }

func (b *DefaultCanvasBuilder) BuildColorAxisDomain()   { b.add(DefaultColorAxisDomain()) }
func (b *DefaultCanvasBuilder) BuildColorAxisScales()   { b.add(DefaultColorAxisScales()) }
func (b *DefaultCanvasBuilder) BuildColorBarStyle()     { b.add(DefaultColorBarStyle()) }
func (b *DefaultCanvasBuilder) BuildColorBarPosition()  { b.add(DefaultColorBarPosition()) }
func (b *DefaultCanvasBuilder) BuildColorBarBoundary()  { b.add(DefaultColorBarBoundary()) }
func (b *DefaultCanvasBuilder) BuildColorBarTicks()     { b.add(DefaultColorBarTicks()) }
func (b *DefaultCanvasBuilder) BuildColorBarTickStyle() { b.add(DefaultColorBarTickStyle()) }
func (b *DefaultCanvasBuilder) BuildColorBarTickFont()  { b.add(DefaultColorBarTickFont()) }
func (b *DefaultCanvasBuilder) BuildColorBarNumbers()   { b.add(DefaultColorBarNumbers()) }
func (b *DefaultCanvasBuilder) BuildColorBarTitle()     { b.add(DefaultColorBarTitle()) }

func (b *DefaultCanvasBuilder) add(comp Component) {
	b.logger.Debug("component added", slog.String("kind", comp.Kind().String()))
	b.canvas.Add(comp)
}
