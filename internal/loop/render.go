package loop

import "github.com/tomz197/asteroid-shooter/internal/object"

// draw renders the current world through the surface. The welcome screen
// shows only the star field; a finished game keeps showing its last frame.
func (g *Game) draw() {
	r := g.surface
	w := g.world

	r.Clear()
	w.Stars.Draw(r)
	if g.state == GameStateWelcome {
		return
	}

	w.Ship.Draw(r, w.shipColor())
	for _, b := range w.Bullets {
		b.Draw(r)
	}
	for _, a := range w.Asteroids {
		a.Draw(r)
	}
	for _, e := range w.Explosions {
		e.Draw(r)
	}
	drawHearts(r, w.Lives)
}

// drawHearts shows one heart per remaining life along the top edge.
func drawHearts(r object.Renderer, lives int) {
	for i := range lives {
		r.DrawHeart(HeartX+HeartSpacing*float64(i), HeartY, HeartSize, HeartColor)
	}
}
