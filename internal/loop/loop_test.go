package loop

import (
	"context"
	"errors"
	"testing"
)

// scriptedInput replays inputs, then repeats the last one.
type scriptedInput struct {
	inputs []Input
	reads  int
}

func (s *scriptedInput) ReadInput() Input {
	in := s.inputs[min(s.reads, len(s.inputs)-1)]
	s.reads++
	return in
}

func fastConfig() Config {
	cfg := testConfig()
	cfg.TargetFPS = 1000
	return cfg
}

func TestRunQuits(t *testing.T) {
	surface := &nopSurface{}
	g, _ := NewGame(fastConfig(), surface, WithRand(&seqRand{vals: []float64{0.99}}))
	src := &scriptedInput{inputs: []Input{{Start: true}, {}, {}, {Quit: true}}}

	if err := Run(context.Background(), g, src); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if surface.presented != 3 {
		t.Errorf("presented %d frames, want 3", surface.presented)
	}
	if g.State() != GameStateRunning {
		t.Errorf("state = %v, want running", g.State())
	}
}

func TestRunNeedsInput(t *testing.T) {
	g, _ := NewGame(fastConfig(), &nopSurface{})
	if err := Run(context.Background(), g, nil); !errors.Is(err, ErrNoInput) {
		t.Errorf("err = %v, want ErrNoInput", err)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	g, _ := NewGame(fastConfig(), &nopSurface{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Run(ctx, g, &scriptedInput{inputs: []Input{{}}})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

type failingSurface struct {
	nopSurface
}

var errPresent = errors.New("connection closed")

func (*failingSurface) Present() error { return errPresent }

func TestRunPresentError(t *testing.T) {
	g, _ := NewGame(fastConfig(), &failingSurface{})
	err := Run(context.Background(), g, &scriptedInput{inputs: []Input{{}}})
	if !errors.Is(err, errPresent) {
		t.Errorf("err = %v, want %v", err, errPresent)
	}
}
