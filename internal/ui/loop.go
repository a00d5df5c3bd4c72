package ui

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/Headmann88/Game-PyRPG/internal/game"
)

// Run drives the frame loop: input is applied as it arrives, and every tick
// advances the game clock and redraws. It returns when the game stops
// running, the screen is closed, or ctx is cancelled.
func Run(ctx context.Context, screen *Screen, g *game.Game, interval time.Duration) error {
	renderer := NewRenderer(screen)

	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)

	go func() {
		defer close(events)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := time.Now()
	renderer.Render(g.View())

	for g.Running() {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				g.Handle(ctx, KeyIntent(ev, g.Mode()))
			case *tcell.EventResize:
				screen.Sync()
			}

		case now := <-ticker.C:
			g.Tick(now.Sub(last))
			last = now
			renderer.Render(g.View())
		}
	}

	return nil
}
