package factory

import (
	"fmt"

	"dungeoncrawl/assets"
	"dungeoncrawl/internal/component"
	"dungeoncrawl/internal/config"
	"dungeoncrawl/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

// NewPlayer creates the player entity at (x, y) with the configured stats.
func NewPlayer(w *ecs.World, x, y int, cfg config.PlayerConfig) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, component.Renderable{
		Glyph:       assets.GlyphPlayer,
		FGColor:     assets.ColorPlayer,
		BGColor:     tcell.ColorBlack,
		RenderOrder: 10,
	})
	w.Add(id, component.Viewshed{Range: cfg.ViewRange, Dirty: true})
	w.Add(id, component.CombatStats{MaxHP: cfg.MaxHP, HP: cfg.MaxHP, Defense: cfg.Defense, Power: cfg.Power})
	w.Add(id, component.Name{Name: "Player"})
	w.Add(id, component.TagPlayer{})
	w.Add(id, component.TagBlocking{})
	return id
}

// NewMonster creates a monster from a template. The ordinal is appended to
// the template name so individual monsters can be told apart in the log.
func NewMonster(w *ecs.World, tmpl assets.MonsterTemplate, ordinal, x, y, viewRange int) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, component.Renderable{
		Glyph:       tmpl.Glyph,
		FGColor:     tmpl.FG(),
		BGColor:     tcell.ColorBlack,
		RenderOrder: 5,
	})
	w.Add(id, component.Viewshed{Range: viewRange, Dirty: true})
	w.Add(id, component.CombatStats{MaxHP: tmpl.MaxHP, HP: tmpl.MaxHP, Defense: tmpl.Defense, Power: tmpl.Power})
	w.Add(id, component.Name{Name: fmt.Sprintf("%s #%d", tmpl.Name, ordinal)})
	w.Add(id, component.TagMonster{})
	w.Add(id, component.TagBlocking{})
	return id
}
