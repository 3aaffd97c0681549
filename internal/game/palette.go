package game

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

func (c RGB) Mul(k uint8) RGB {
	return RGB{
		R: uint8((uint16(c.R) * uint16(k)) / 255),
		G: uint8((uint16(c.G) * uint16(k)) / 255),
		B: uint8((uint16(c.B) * uint16(k)) / 255),
	}
}

func (c RGB) Add(dr, dg, db int) RGB {
	r := int(c.R) + dr
	g := int(c.G) + dg
	b := int(c.B) + db
	if r < 0 {
		r = 0
	} else if r > 255 {
		r = 255
	}
	if g < 0 {
		g = 0
	} else if g > 255 {
		g = 255
	}
	if b < 0 {
		b = 0
	} else if b > 255 {
		b = 255
	}
	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
}

var Palette = struct {
	Road     RGB
	RoadLine RGB
	Sidewalk RGB
	Lot      RGB
	Border   RGB
	CarBody  RGB
	CarCabin RGB
	Wheel    RGB
	Pickup   RGB
	Dropoff  RGB
	Building [6]RGB
}{
	Road:     RGB{R: 52, G: 52, B: 56},
	RoadLine: RGB{R: 180, G: 170, B: 90},
	Sidewalk: RGB{R: 120, G: 118, B: 112},
	Lot:      RGB{R: 88, G: 110, B: 70},
	Border:   RGB{R: 70, G: 66, B: 62},
	CarBody:  RGB{R: 210, G: 60, B: 40},
	CarCabin: RGB{R: 235, G: 225, B: 210},
	Wheel:    RGB{R: 25, G: 25, B: 28},
	Pickup:   RGB{R: 80, G: 200, B: 255},
	Dropoff:  RGB{R: 120, G: 255, B: 120},
	Building: [6]RGB{
		{R: 140, G: 120, B: 104},
		{R: 110, G: 116, B: 130},
		{R: 150, G: 140, B: 120},
		{R: 96, G: 104, B: 112},
		{R: 132, G: 110, B: 96},
		{R: 118, G: 128, B: 118},
	},
}
