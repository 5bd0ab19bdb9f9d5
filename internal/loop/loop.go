// Package loop provides the game simulation and the frame loop that drives it.
package loop

import (
	"context"
	"fmt"
	"time"
)

// Run drives g at the configured frame rate with the Input → Update → Draw
// cycle until the context ends or the player quits.
func Run(ctx context.Context, g *Game, src InputSource) error {
	if src == nil {
		return ErrNoInput
	}

	frameTime := g.cfg.frameTime()
	ticker := time.NewTicker(frameTime)
	defer ticker.Stop()

	g.logger.Debug("loop started", "frame", frameTime)
	for {
		// ===== INPUT PHASE =====
		in := src.ReadInput()
		if in.Quit {
			g.logger.Info("player quit", "state", g.state, "score", g.world.Score)
			return nil
		}

		// ===== UPDATE + DRAW PHASE =====
		if err := g.Frame(time.Now(), in); err != nil {
			return fmt.Errorf("present frame: %w", err)
		}

		// ===== FRAME TIMING =====
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
