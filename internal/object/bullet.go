package object

import (
	"math"
)

// Bullet geometry.
const (
	BulletWidth  = 5.0
	BulletHeight = 15.0
)

// BulletColor is the colour every bullet is drawn with.
var BulletColor = RGBA(1, 0, 0, 1)

// Bullet is a shot fired by the ship.
type Bullet struct {
	X, Y          float64 // Position
	VX, VY        float64 // Velocity per tick
	Width, Height float64
	Angle         float64 // Ship facing at fire time
	destroyed     bool
}

// NewBullet creates a bullet at (x,y) travelling along angle at speed units per tick.
func NewBullet(x, y, angle, speed float64) *Bullet {
	return &Bullet{
		X:      x,
		Y:      y,
		VX:     math.Cos(angle) * speed,
		VY:     math.Sin(angle) * speed,
		Width:  BulletWidth,
		Height: BulletHeight,
		Angle:  angle,
	}
}

// MarkDestroyed marks the bullet for removal.
func (b *Bullet) MarkDestroyed() {
	b.destroyed = true
}

// IsDestroyed returns true if the bullet is marked for removal.
func (b *Bullet) IsDestroyed() bool {
	return b.destroyed
}

// Update moves the bullet one tick. Returns true if it left the playfield.
func (b *Bullet) Update(field Playfield) bool {
	b.X += b.VX
	b.Y += b.VY

	if !field.Contains(b.X, b.Y) {
		b.MarkDestroyed()
	}
	return b.destroyed
}

// Draw renders the bullet.
func (b *Bullet) Draw(r Renderer) {
	r.DrawBullet(b.X, b.Y, b.Width, b.Height, b.Angle, BulletColor)
}
