package game

import (
	"context"

	"dungeoncrawl/internal/render"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
)

// Run drives the game on screen until the player quits, the screen stops
// delivering events, or ctx is cancelled. The caller owns the screen.
func (g *Game) Run(ctx context.Context, screen tcell.Screen) error {
	r := render.NewRenderer(screen)

	stop := context.AfterFunc(ctx, func() {
		_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
	})
	defer stop()

	for {
		g.Advance()
		g.draw(r)

		switch ev := screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventInterrupt:
			return ctx.Err()
		case *tcell.EventResize:
			screen.Sync()
			r.Resize()
		case *tcell.EventKey:
			action := keyToAction(ev)
			if action == ActionQuit {
				g.logger.Info("player quit", zap.Int("turn", g.Turn()))
				return nil
			}
			if g.PlayerDefeated() {
				continue
			}
			g.Tick(action)
		}
	}
}

func (g *Game) draw(r *render.Renderer) {
	pos := g.PlayerPosition()
	r.CenterOn(pos.X, pos.Y)
	r.DrawFrame(g.World(), g.Map())
	r.DrawHUD(g.World(), g.Player(), g.Turn(), g.journal.Recent(render.HUDHeight-2))
}
