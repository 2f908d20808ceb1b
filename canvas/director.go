package canvas

// Director runs the steps of a CanvasBuilder in a fixed order.
type Director struct {
	builder CanvasBuilder
}

func NewDirector(b CanvasBuilder) *Director {
	return &Director{
		builder: b,
	}
}

func (d *Director) Builder() CanvasBuilder {
	return d.builder
}

// Construct builds a canvas with one component of every kind.
func (d *Director) Construct() *Canvas {
	return d.ConstructKinds(KindAll)
}

// ConstructBasic builds a canvas without color scale nor color axis.
func (d *Director) ConstructBasic() *Canvas {
	return d.ConstructKinds(KindBasic)
}

// ConstructKinds builds a canvas holding exactly the given kinds. The builder
// is left empty afterwards.
func (d *Director) ConstructKinds(k Kind) *Canvas {
	d.builder.Reset()
	for _, x := range k.Split() {
		Step(d.builder, x)()
	}
	return Drain(d.builder)
}
