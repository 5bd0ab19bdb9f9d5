package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/tomz197/asteroid-shooter/internal/config"
	"github.com/tomz197/asteroid-shooter/internal/draw"
	"github.com/tomz197/asteroid-shooter/internal/frontend"
	"github.com/tomz197/asteroid-shooter/internal/hud"
	"github.com/tomz197/asteroid-shooter/internal/loop"
	"golang.org/x/term"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "asteroids: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Logs must never land on the game screen
	logger, closeLog, err := config.OpenLogFile("game")
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer closeLog()

	sessionID := uuid.NewString()
	logger = logger.With("session", sessionID)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := loop.ConfigFromEnv()
	overlay := hud.NewOverlay()

	switch renderer := config.GetEnv("ASTEROIDS_RENDERER", "ansi"); renderer {
	case "ansi":
		err = runANSI(ctx, cfg, overlay, logger)
	case "tcell":
		err = runTcell(ctx, cfg, overlay, logger)
	default:
		return fmt.Errorf("unknown renderer %q", renderer)
	}
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// runANSI plays on the raw controlling terminal.
func runANSI(ctx context.Context, cfg loop.Config, overlay *hud.Overlay, logger *log.Logger) error {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	fe, err := frontend.NewTerminal(os.Stdin, os.Stdout, draw.DefaultTermSizeFunc, cfg.Playfield, overlay)
	if err != nil {
		return err
	}
	defer fe.Close()

	return play(ctx, cfg, fe, fe, overlay, logger)
}

// runTcell plays through a tcell screen.
func runTcell(ctx context.Context, cfg loop.Config, overlay *hud.Overlay, logger *log.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	fe, err := frontend.NewTcell(screen, cfg.Playfield, overlay)
	if err != nil {
		return err
	}
	defer fe.Close()

	return play(ctx, cfg, fe, fe, overlay, logger)
}

func play(ctx context.Context, cfg loop.Config, surface loop.Surface, in loop.InputSource, overlay *hud.Overlay, logger *log.Logger) error {
	game, err := loop.NewGame(cfg, surface, loop.WithPresenter(overlay), loop.WithLogger(logger))
	if err != nil {
		return err
	}
	logger.Info("session started", "fps", cfg.TargetFPS, "lives", cfg.InitialLives)
	return loop.Run(ctx, game, in)
}
