// Package object defines the game entities and the shape-drawing
// collaborator they render through.
package object

import "math"

// Rand is the source of uniform [0,1) draws used for spawning and jitter.
// *math/rand/v2.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// Color is an RGBA colour with components in the 0..1 range.
type Color struct {
	R, G, B, A float64
}

// RGBA builds a Color from its four components.
func RGBA(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// WithAlpha returns a copy of c with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// Star is a single background star.
type Star struct {
	X, Y float64
}

// Playfield is the visible simulation area in logical units.
type Playfield struct {
	Width  float64
	Height float64
}

// Contains reports whether (x,y) lies inside the playfield, edges included.
func (p Playfield) Contains(x, y float64) bool {
	return x >= 0 && x <= p.Width && y >= 0 && y <= p.Height
}

// Center returns the middle of the playfield.
func (p Playfield) Center() (float64, float64) {
	return p.Width / 2, p.Height / 2
}

// Renderer is the drawing collaborator. Implementations decide how a shape
// looks; entities only say where it is, how big, and in what colour.
type Renderer interface {
	Clear()
	DrawStars(stars []Star)
	DrawShip(x, y, radius, angle float64, c Color)
	DrawAsteroid(x, y, radius float64, c Color)
	DrawBullet(x, y, w, h, angle float64, c Color)
	DrawParticle(x, y, radius float64, c Color)
	DrawExplosion(x, y, radius float64, c Color, progress float64)
	DrawHeart(x, y, size float64, c Color)
}

// Destructible is implemented by entities that can be marked for removal.
type Destructible interface {
	// MarkDestroyed marks the entity for removal at the next compaction.
	// Marking an already destroyed entity is a no-op.
	MarkDestroyed()
	// IsDestroyed returns true if the entity is marked for removal.
	IsDestroyed() bool
}

// Compact drops destroyed entities in place, keeping insertion order.
// Safe on nil and empty slices.
func Compact[T Destructible](items []T) []T {
	kept := items[:0] // reuse backing array
	for _, item := range items {
		if !item.IsDestroyed() {
			kept = append(kept, item)
		}
	}
	// Zero the tail so dropped pointers can be collected.
	clear(items[len(kept):])
	return kept
}

// NormalizeAngle wraps an angle into [0, 2π).
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	if a >= 2*math.Pi {
		a = 0
	}
	return a
}
