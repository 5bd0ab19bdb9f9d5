package draw

import (
	"math"
	"sort"

	"github.com/tomz197/asteroid-shooter/internal/object"
)

// Shape tunables.
const (
	circleSegments = 24
	heartSegments  = 40
	heartScale     = 0.2
	explosionBlobs = 5
	starSize       = 2.0
)

var (
	// HaloColor is the translucent circle around the ship.
	HaloColor = object.RGBA(0, 0, 1, 0.5)
	// StarColor is the colour of background stars.
	StarColor = object.RGBA(1, 1, 1, 1)
)

// Ensure Canvas satisfies object.Renderer.
var _ object.Renderer = (*Canvas)(nil)

// plot blends c into the pixel at (x,y).
func (c *Canvas) plot(x, y int, col object.Color) {
	c.setPixel(x, y, blend(c.pixel(x, y), col))
}

// DrawStars draws each star as a small square.
func (c *Canvas) DrawStars(stars []object.Star) {
	for _, s := range stars {
		c.fillRect(s.X, s.Y, starSize, starSize, StarColor)
	}
}

// DrawShip draws a triangle pointing along angle, then the halo at twice
// the radius.
func (c *Canvas) DrawShip(x, y, radius, angle float64, col object.Color) {
	pts := c.borrowPoints(3)
	pts[0] = polar(x, y, radius, angle)
	pts[1] = polar(x, y, radius*0.8, angle+2.5)
	pts[2] = polar(x, y, radius*0.8, angle-2.5)
	c.fillPolygon(pts, col)
	c.circleOutline(x, y, radius*2, HaloColor)
}

// DrawAsteroid draws a filled disc.
func (c *Canvas) DrawAsteroid(x, y, radius float64, col object.Color) {
	c.fillCircle(x, y, radius, col)
}

// DrawBullet draws a w x h rectangle anchored at (x,y) and rotated by angle.
func (c *Canvas) DrawBullet(x, y, w, h, angle float64, col object.Color) {
	cos, sin := math.Cos(angle), math.Sin(angle)
	pts := c.borrowPoints(4)
	pts[0] = Point{X: x, Y: y}
	pts[1] = Point{X: x + w*cos, Y: y + w*sin}
	pts[2] = Point{X: x + w*cos - h*sin, Y: y + w*sin + h*cos}
	pts[3] = Point{X: x - h*sin, Y: y + h*cos}
	c.fillPolygon(pts, col)
}

// DrawParticle draws a trail particle; its alpha fades it into the background.
func (c *Canvas) DrawParticle(x, y, radius float64, col object.Color) {
	c.circleOutline(x, y, radius, col)
}

// DrawExplosion scatters shrinking blobs outward as progress goes from 0 to 1.
func (c *Canvas) DrawExplosion(x, y, radius float64, col object.Color, progress float64) {
	if progress >= 1 {
		return
	}
	for i := range explosionBlobs {
		// Fixed per-blob spread so the burst does not flicker between frames
		f := float64(i+1) / explosionBlobs
		angle := 2*math.Pi*float64(i)/explosionBlobs + progress
		p := polar(x, y, progress*radius*f, angle)
		c.fillCircle(p.X, p.Y, radius*(1-progress)*(1-f/2), col)
	}
}

// DrawHeart draws the classic parametric heart centred on (x,y).
func (c *Canvas) DrawHeart(x, y, size float64, col object.Color) {
	pts := c.borrowPoints(heartSegments)
	for i := range pts {
		t := 2 * math.Pi * float64(i) / heartSegments
		hx := 16 * math.Pow(math.Sin(t), 3)
		hy := 13*math.Cos(t) - 5*math.Cos(2*t) - 2*math.Cos(3*t) - math.Cos(4*t)
		pts[i] = Point{X: x + size*hx*heartScale, Y: y - size*hy*heartScale}
	}
	c.fillPolygon(pts, col)
}

func polar(x, y, r, angle float64) Point {
	return Point{X: x + r*math.Cos(angle), Y: y + r*math.Sin(angle)}
}

// fillRect fills an axis-aligned rectangle, always at least one pixel.
func (c *Canvas) fillRect(x, y, w, h float64, col object.Color) {
	x0, y0 := c.toPixel(x, y)
	x1, y1 := c.toPixel(x+w, y+h)
	for py := y0; py <= max(y0, y1-1); py++ {
		for px := x0; px <= max(x0, x1-1); px++ {
			c.plot(px, py, col)
		}
	}
}

// fillCircle fills a disc in pixel space; tiny discs still cover one pixel.
func (c *Canvas) fillCircle(x, y, radius float64, col object.Color) {
	if radius <= 0 {
		return
	}
	cx, cy := x*c.scaleX, y*c.scaleY
	rx, ry := radius*c.scaleX, radius*c.scaleY
	if rx < 0.5 || ry < 0.5 {
		c.plot(int(math.Floor(cx)), int(math.Floor(cy)), col)
		return
	}

	for py := int(math.Floor(cy - ry)); py <= int(math.Ceil(cy+ry)); py++ {
		dy := (float64(py) + 0.5 - cy) / ry
		if dy < -1 || dy > 1 {
			continue
		}
		half := rx * math.Sqrt(1-dy*dy)
		for px := int(math.Ceil(cx - half - 0.5)); px <= int(math.Floor(cx+half-0.5)); px++ {
			c.plot(px, py, col)
		}
	}
}

// circleOutline draws a circle as a closed polyline.
func (c *Canvas) circleOutline(x, y, radius float64, col object.Color) {
	if radius*c.scaleX < 1 || radius*c.scaleY < 1 {
		c.fillCircle(x, y, radius, col)
		return
	}
	prev := polar(x, y, radius, 0)
	for i := 1; i <= circleSegments; i++ {
		next := polar(x, y, radius, 2*math.Pi*float64(i)/circleSegments)
		c.drawLine(prev, next, col)
		prev = next
	}
}

// drawLine draws a line using Bresenham's algorithm. The end point is
// skipped so joined segments do not blend twice.
func (c *Canvas) drawLine(p1, p2 Point, col object.Color) {
	x1, y1 := c.toPixel(p1.X, p1.Y)
	x2, y2 := c.toPixel(p2.X, p2.Y)

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy

	for x1 != x2 || y1 != y2 {
		c.plot(x1, y1, col)

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// fillPolygon fills a polygon using scanline algorithm in pixel space.
// Polygons smaller than a pixel still cover their first vertex.
func (c *Canvas) fillPolygon(points []Point, col object.Color) {
	if len(points) < 3 {
		return
	}

	if cap(c.scaledBuf) < len(points) {
		c.scaledBuf = make([]Point, len(points))
	}
	scaled := c.scaledBuf[:len(points)]
	for i, p := range points {
		scaled[i] = Point{X: p.X * c.scaleX, Y: p.Y * c.scaleY}
	}

	minY, maxY := scaled[0].Y, scaled[0].Y
	for _, p := range scaled {
		minY = min(minY, p.Y)
		maxY = max(maxY, p.Y)
	}

	filled := false
	for y := int(math.Floor(minY)); y <= int(math.Ceil(maxY)); y++ {
		scanY := float64(y) + 0.5

		intersections := c.intersectionBuf[:0]
		n := len(scaled)
		for i := range n {
			p1 := scaled[i]
			p2 := scaled[(i+1)%n]
			if (p1.Y <= scanY && p2.Y > scanY) || (p2.Y <= scanY && p1.Y > scanY) {
				t := (scanY - p1.Y) / (p2.Y - p1.Y)
				intersections = append(intersections, p1.X+t*(p2.X-p1.X))
			}
		}
		c.intersectionBuf = intersections

		sort.Float64s(intersections)

		for i := 0; i+1 < len(intersections); i += 2 {
			xStart := int(math.Ceil(intersections[i] - 0.5))
			xEnd := int(math.Floor(intersections[i+1] - 0.5))
			for x := xStart; x <= xEnd; x++ {
				c.plot(x, y, col)
				filled = true
			}
		}
	}

	if !filled {
		c.plot(int(math.Floor(scaled[0].X)), int(math.Floor(scaled[0].Y)), col)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
