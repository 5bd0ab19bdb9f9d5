// Package hud draws the text layer over the playfield: score and level,
// floating labels, banners and the welcome and game-over screens.
package hud

import (
	"fmt"
	"math/rand/v2"
	"time"
	"unicode/utf8"

	"github.com/tomz197/asteroid-shooter/internal/object"
)

// Label timing: fully visible for labelHold, then fading for labelFade.
const (
	labelHold = time.Second
	labelFade = time.Second
)

var (
	textColor  = object.RGBA(1, 1, 1, 1)
	gainColor  = object.RGBA(0, 0.8, 0, 1)
	lifeColor  = object.RGBA(1, 0, 0, 1)
	alertColor = object.RGBA(1, 0.2, 0.2, 1)
	buffColor  = object.RGBA(0.8, 0.8, 0.2, 1)
	dimColor   = object.RGBA(0.5, 0.5, 0.5, 1)
)

// TextSurface is where the overlay writes text, in 0-based cells.
type TextSurface interface {
	Size() (cols, rows int)
	Text(col, row int, s string, c object.Color)
}

type phase int

const (
	phaseWelcome phase = iota
	phaseRunning
	phaseOver
)

// label is transient text placed at a fraction of the screen size.
type label struct {
	text  string
	color object.Color
	fx    float64
	fy    float64
	born  time.Time
}

// alpha returns the label's opacity at now; zero once it has expired.
func (l label) alpha(now time.Time) float64 {
	age := now.Sub(l.born)
	switch {
	case age < labelHold:
		return 1
	case age >= labelHold+labelFade:
		return 0
	}
	return 1 - float64(age-labelHold)/float64(labelFade)
}

// Overlay collects game events and renders them as text. It implements
// loop.Presenter. It is not safe for concurrent use.
type Overlay struct {
	clock  func() time.Time
	rng    object.Rand
	footer string

	phase      phase
	score      int
	lives      int
	level      int
	finalScore int
	fastUntil  time.Time

	labels []label
	banner *label
}

// Option configures an Overlay.
type Option func(*Overlay)

// WithClock replaces time.Now for label timing.
func WithClock(clock func() time.Time) Option {
	return func(o *Overlay) {
		o.clock = clock
	}
}

// WithRand sets the source used to scatter floating labels.
func WithRand(rng object.Rand) Option {
	return func(o *Overlay) {
		o.rng = rng
	}
}

// WithFooter shows s in the bottom-left corner on every screen.
func WithFooter(s string) Option {
	return func(o *Overlay) {
		o.footer = s
	}
}

// NewOverlay creates an overlay showing the welcome screen.
func NewOverlay(opts ...Option) *Overlay {
	o := &Overlay{clock: time.Now, level: 1}
	for _, opt := range opts {
		opt(o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return o
}

// Welcome shows the title screen and drops everything transient.
func (o *Overlay) Welcome() {
	o.phase = phaseWelcome
	o.score, o.lives, o.level = 0, 0, 1
	o.fastUntil = time.Time{}
	o.labels = o.labels[:0]
	o.banner = nil
}

// Started hides the title screen.
func (o *Overlay) Started() {
	o.phase = phaseRunning
}

func (o *Overlay) ScoreChanged(score int) { o.score = score }

func (o *Overlay) LivesChanged(lives int) { o.lives = lives }

// LevelChanged updates the level and shows a banner for a new level.
func (o *Overlay) LevelChanged(level int) {
	raised := level > o.level
	o.level = level
	if raised {
		o.banner = &label{
			text:  fmt.Sprintf("Level %d", level),
			color: textColor,
			fx:    0.5,
			fy:    0.3,
			born:  o.clock(),
		}
	}
}

// ScoreGain floats "+amount" near the middle of the screen.
func (o *Overlay) ScoreGain(amount int) {
	o.float(fmt.Sprintf("+%d", amount), gainColor)
}

// LifeGain floats "+symbol" near the middle of the screen.
func (o *Overlay) LifeGain(symbol string) {
	o.float("+"+symbol, lifeColor)
}

// FastFire shows the rapid fire countdown until the given time.
func (o *Overlay) FastFire(until time.Time) {
	o.fastUntil = until
}

// GameOver shows the final score until the next Welcome.
func (o *Overlay) GameOver(finalScore int) {
	o.phase = phaseOver
	o.finalScore = finalScore
}

func (o *Overlay) float(text string, c object.Color) {
	o.labels = append(o.labels, label{
		text:  text,
		color: c,
		fx:    0.5 + (o.rng.Float64()-0.5)*0.05,
		fy:    0.5 + (o.rng.Float64()-0.5)*0.1,
		born:  o.clock(),
	})
}

// Render draws the overlay for the current phase and expires old labels.
func (o *Overlay) Render(ts TextSurface) {
	now := o.clock()
	cols, rows := ts.Size()

	switch o.phase {
	case phaseWelcome:
		centered(ts, cols, rows/2-2, "A S T E R O I D S", textColor)
		centered(ts, cols, rows/2, "Press ⏎ to start", textColor)
		centered(ts, cols, rows/2+2, "Aim with the mouse or A/D, fire with click or SPACE, R restarts, Q quits", dimColor)
	case phaseRunning, phaseOver:
		o.renderStatus(ts, cols, now)
		o.renderLabels(ts, cols, rows, now)
	}

	if o.phase == phaseOver {
		centered(ts, cols, rows/2-2, "Game Over", alertColor)
		centered(ts, cols, rows/2, fmt.Sprintf("Score: %d", o.finalScore), alertColor)
		centered(ts, cols, rows/2+2, "Press R to restart", alertColor)
	}

	if o.footer != "" {
		ts.Text(0, rows-1, o.footer, dimColor)
	}
}

// renderStatus draws the score line in the top-right corner.
func (o *Overlay) renderStatus(ts TextSurface, cols int, now time.Time) {
	status := fmt.Sprintf("Score: %d  Level: %d  Lives: %d", o.score, o.level, o.lives)
	ts.Text(cols-utf8.RuneCountInString(status)-1, 0, status, textColor)

	if now.Before(o.fastUntil) {
		left := o.fastUntil.Sub(now).Round(time.Second)
		buff := fmt.Sprintf("RAPID FIRE %s", left)
		ts.Text(cols-utf8.RuneCountInString(buff)-1, 1, buff, buffColor)
	}
}

// renderLabels draws the banner and floating labels, dropping expired ones.
func (o *Overlay) renderLabels(ts TextSurface, cols, rows int, now time.Time) {
	if o.banner != nil {
		if a := o.banner.alpha(now); a > 0 {
			drawLabel(ts, cols, rows, *o.banner, a)
		} else {
			o.banner = nil
		}
	}

	kept := o.labels[:0]
	for _, l := range o.labels {
		a := l.alpha(now)
		if a <= 0 {
			continue
		}
		drawLabel(ts, cols, rows, l, a)
		kept = append(kept, l)
	}
	clear(o.labels[len(kept):])
	o.labels = kept
}

// drawLabel centres a label on its anchor, dimmed by a.
func drawLabel(ts TextSurface, cols, rows int, l label, a float64) {
	c := object.RGBA(l.color.R*a, l.color.G*a, l.color.B*a, 1)
	col := int(l.fx*float64(cols)) - utf8.RuneCountInString(l.text)/2
	ts.Text(col, int(l.fy*float64(rows)), l.text, c)
}

func centered(ts TextSurface, cols, row int, s string, c object.Color) {
	ts.Text((cols-utf8.RuneCountInString(s))/2, row, s, c)
}
