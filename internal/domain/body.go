package domain

// Body is a rectangular-box silhouette in feet.
type Body struct {
	Height float64
	Width  float64
	Depth  float64
}

// DefaultBody is the reference silhouette: 70in tall, 20in wide, 12in deep.
var DefaultBody = Body{
	Height: 70.0 / 12,
	Width:  20.0 / 12,
	Depth:  12.0 / 12,
}

// TopArea is the horizontal silhouette that catches falling rain (head and shoulders).
func (b Body) TopArea() float64 {
	return b.Width * b.Depth
}

// FrontArea is the vertical silhouette that walks into rain (chest and legs).
func (b Body) FrontArea() float64 {
	return b.Height * b.Width
}
