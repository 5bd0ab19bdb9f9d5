package object

// StarField is the scrolling background.
type StarField struct {
	Stars []Star
}

// NewStarField scatters count stars uniformly over the playfield.
func NewStarField(count int, field Playfield, rng Rand) *StarField {
	stars := make([]Star, count)
	for i := range stars {
		stars[i] = Star{
			X: rng.Float64() * field.Width,
			Y: rng.Float64() * field.Height,
		}
	}
	return &StarField{Stars: stars}
}

// Scroll moves every star down by speed, wrapping to the top with a fresh x
// once it falls past the bottom edge.
func (s *StarField) Scroll(speed float64, field Playfield, rng Rand) {
	for i := range s.Stars {
		star := &s.Stars[i]
		star.Y += speed
		if star.Y > field.Height {
			star.Y = 0
			star.X = rng.Float64() * field.Width
		}
	}
}

// Draw renders all stars in one call.
func (s *StarField) Draw(r Renderer) {
	r.DrawStars(s.Stars)
}
