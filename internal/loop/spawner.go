package loop

import (
	"math"

	"github.com/tomz197/asteroid-shooter/internal/object"
)

// variant describes one asteroid type and its place in the selection table.
type variant struct {
	Type   object.AsteroidType
	Cutoff float64 // Base cumulative cutoff at level 0
	Step   float64 // How much the cutoff drops per level
	Hits   int
	Score  int
	Color  object.Color
}

// variants is evaluated in order; a sample below a variant's threshold picks
// it. The last entry takes the remainder.
var variants = [...]variant{
	{Type: object.AsteroidClassic, Cutoff: 0.95, Step: 0.005, Hits: 1, Score: 10},
	{Type: object.AsteroidBad, Cutoff: 0.98, Step: 0.005, Hits: 3, Score: 30, Color: object.RGBA(0.560784314, 0.125490196, 0.094117647, 1)},
	{Type: object.AsteroidGood, Cutoff: 0.985, Step: 0.002, Hits: 2, Score: 20, Color: object.RGBA(0.196078431, 0.803921569, 0.196078431, 1)},
	{Type: object.AsteroidRaffale, Cutoff: 0.99, Step: 0.001, Hits: 3, Score: 0, Color: object.RGBA(0.8, 0.8, 0.2, 1)},
	{Type: object.AsteroidHeart, Cutoff: 0.995, Step: 0.001, Hits: 3, Score: 0, Color: object.RGBA(0, 1, 0, 1)},
	{Type: object.AsteroidUltime, Cutoff: 1, Hits: 5, Score: 100, Color: object.RGBA(0, 0, 0.5, 1)},
}

// classicColors are the greys a classic asteroid picks from.
var classicColors = [...]object.Color{
	object.RGBA(0.6, 0.6, 0.6, 1),
	object.RGBA(0.3, 0.3, 0.3, 1),
	object.RGBA(0.7, 0.7, 0.7, 1),
}

// threshold is the variant's cumulative cutoff at level.
func (v variant) threshold(level int) float64 {
	if v.Type == object.AsteroidUltime {
		return 1
	}
	return v.Cutoff - v.Step*float64(level)
}

// pickVariant maps a uniform sample onto the level-adjusted table.
func pickVariant(level int, sample float64) variant {
	for _, v := range variants[:len(variants)-1] {
		if sample < v.threshold(level) {
			return v
		}
	}
	return variants[len(variants)-1]
}

// Spawner decides every tick whether a new asteroid enters the playfield.
//
// Draw order per tick: spawn roll; then, only when spawning, variant, edge
// side, y, radius, grey shade (classic only) and speed.
type Spawner struct {
	rng object.Rand
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(rng object.Rand) *Spawner {
	return &Spawner{rng: rng}
}

// Update rolls for a spawn and adds the asteroid to the world.
// Returns the new asteroid, or nil if none spawned.
func (s *Spawner) Update(w *World) *object.Asteroid {
	if s.rng.Float64() >= DifficultyFor(w.Level).SpawnProbability {
		return nil
	}
	a := s.spawn(w)
	w.Asteroids = append(w.Asteroids, a)
	return a
}

// spawn builds an asteroid at the left or right edge aimed at the ship.
func (s *Spawner) spawn(w *World) *object.Asteroid {
	v := pickVariant(w.Level, s.rng.Float64())

	x := 0.0
	if s.rng.Float64() >= 0.5 {
		x = w.Field.Width
	}
	y := s.rng.Float64() * w.Field.Height
	radius := AsteroidMinRadius + s.rng.Float64()*AsteroidRadiusRange

	c := v.Color
	if v.Type == object.AsteroidClassic {
		c = classicColors[int(s.rng.Float64()*float64(len(classicColors)))%len(classicColors)]
	}

	a := object.NewAsteroid(x, y, radius, v.Type, c, v.Hits, v.Score)
	speed := math.Sqrt(float64(w.Level)) + s.rng.Float64()*2
	a.AimAt(w.Ship.X, w.Ship.Y, speed)
	return a
}
