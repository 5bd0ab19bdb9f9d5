package object

import (
	"math"
	"time"
)

// Ship is the player-controlled turret at the middle of the playfield.
// It never moves; input only changes where it points and when it fires.
type Ship struct {
	X, Y   float64 // Position (center of ship)
	Radius float64 // Drawn radius; the collision halo is twice this
	Angle  float64 // Facing in radians, 0 = pointing right, kept in [0, 2π)

	shootReadyAt time.Time // Earliest time the next bullet may leave
}

// NewShip creates a ship at the given position pointing up.
func NewShip(x, y, radius float64) *Ship {
	return &Ship{
		X:      x,
		Y:      y,
		Radius: radius,
		Angle:  NormalizeAngle(-math.Pi / 2),
	}
}

// SetAim points the ship at an absolute angle.
func (s *Ship) SetAim(angle float64) {
	s.Angle = NormalizeAngle(angle)
}

// AimAt points the ship toward (px,py).
func (s *Ship) AimAt(px, py float64) {
	s.SetAim(math.Atan2(py-s.Y, px-s.X))
}

// Turn rotates the ship by delta radians.
func (s *Ship) Turn(delta float64) {
	s.SetAim(s.Angle + delta)
}

// HaloRadius is the radius used for asteroid contact.
func (s *Ship) HaloRadius() float64 {
	return s.Radius * 2
}

// CanShoot reports whether the shoot cooldown has elapsed at now.
func (s *Ship) CanShoot(now time.Time) bool {
	return !now.Before(s.shootReadyAt)
}

// Fire spawns a bullet from the nose of the ship travelling along its facing
// and blocks further shots until now+cooldown.
func (s *Ship) Fire(now time.Time, speed float64, cooldown time.Duration) *Bullet {
	s.shootReadyAt = now.Add(cooldown)

	cos, sin := math.Cos(s.Angle), math.Sin(s.Angle)
	noseX := s.X + s.Radius*cos
	noseY := s.Y + s.Radius*sin
	return NewBullet(noseX, noseY, s.Angle, speed)
}

// Draw renders the ship in the given colour.
func (s *Ship) Draw(r Renderer, c Color) {
	r.DrawShip(s.X, s.Y, s.Radius, s.Angle, c)
}
