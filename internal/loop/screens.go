package loop

// reset discards the world and returns to the welcome screen.
func (g *Game) reset() {
	if g.world != nil {
		for _, a := range g.world.Asteroids {
			a.Release()
		}
	}

	g.world = NewWorld(g.cfg, g.rng)
	g.spawner = NewSpawner(g.rng)
	g.state = GameStateWelcome
	g.presenter.Welcome()
}

// start leaves the welcome screen.
func (g *Game) start() {
	g.state = GameStateRunning
	g.logger.Info("game started", "lives", g.world.Lives)
	g.presenter.Started()
	g.presenter.ScoreChanged(g.world.Score)
	g.presenter.LivesChanged(g.world.Lives)
	g.presenter.LevelChanged(g.world.Level)
}

// restart is a full reset, as reloading the page was.
func (g *Game) restart() {
	g.logger.Info("game restarted", "state", g.state, "score", g.world.Score)
	g.reset()
}

// gameOver freezes the world. Only the first call has any effect.
func (g *Game) gameOver() {
	if g.state == GameStateOver {
		return
	}
	g.state = GameStateOver
	g.logger.Info("game over", "score", g.world.Score, "level", g.world.Level)
	g.presenter.GameOver(g.world.Score)
}
