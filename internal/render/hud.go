package render

import (
	"fmt"
	"strings"

	"dungeoncrawl/internal/component"
	"dungeoncrawl/internal/ecs"
	"dungeoncrawl/internal/gamelog"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"
)

// FormatEvent turns an event notice into a log line.
func FormatEvent(e gamelog.Event) string {
	switch e.Kind {
	case gamelog.Damage:
		return fmt.Sprintf("%s hits %s for %d hp.", e.SourceName, e.TargetName, e.Amount)
	case gamelog.Ineffective:
		return fmt.Sprintf("%s is unable to hurt %s.", e.SourceName, e.TargetName)
	case gamelog.Death:
		return fmt.Sprintf("%s is dead.", e.TargetName)
	case gamelog.PlayerDefeated:
		return "You are dead."
	}
	return ""
}

// messageLines formats events, wraps them to width and returns at most n of
// the newest lines.
func messageLines(events []gamelog.Event, width, n int) []string {
	var lines []string
	for _, e := range events {
		msg := FormatEvent(e)
		if msg == "" {
			continue
		}
		lines = append(lines, strings.Split(wordwrap.String(msg, width), "\n")...)
	}
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return lines
}

// DrawHUD renders the status line and the message log below the map, then
// shows the frame.
func (r *Renderer) DrawHUD(w *ecs.World, playerID ecs.EntityID, turn int, events []gamelog.Event) {
	screenW, screenH := r.screen.Size()
	hudY := screenH - HUDHeight

	r.drawHLine(hudY, tcell.ColorGray)

	hpText := "HP: ?"
	if c := w.Get(playerID, component.CCombatStats); c != nil {
		s := c.(component.CombatStats)
		hpText = fmt.Sprintf("HP: %d/%d  POW:%d DEF:%d", s.HP, s.MaxHP, s.Power, s.Defense)
	}
	status := fmt.Sprintf("%s  Turn: %d", hpText, turn)
	r.drawText(0, hudY+1, runewidth.Truncate(status, screenW, ""), tcell.StyleDefault.Foreground(tcell.ColorWhite))

	for i, line := range messageLines(events, screenW, HUDHeight-2) {
		r.drawText(0, hudY+2+i, line, tcell.StyleDefault.Foreground(tcell.ColorLightYellow))
	}

	r.screen.Show()
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col += runewidth.RuneWidth(ch)
	}
}
