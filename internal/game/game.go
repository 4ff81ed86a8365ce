// Package game drives the simulation: it owns the per-run state, sequences
// the systems through the turn state machine, and runs the interactive loop
// on a tcell screen.
package game

import (
	"fmt"
	"math/rand"
	"time"

	"dungeoncrawl/assets"
	"dungeoncrawl/internal/component"
	"dungeoncrawl/internal/config"
	"dungeoncrawl/internal/ecs"
	"dungeoncrawl/internal/factory"
	"dungeoncrawl/internal/gamelog"
	"dungeoncrawl/internal/gamemap"
	"dungeoncrawl/internal/generate"
	"dungeoncrawl/internal/geom"
	"dungeoncrawl/internal/system"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RunState tracks the turn state machine.
type RunState uint8

const (
	PreRun RunState = iota
	AwaitingInput
	PlayerTurn
	MonsterTurn
)

func (s RunState) String() string {
	switch s {
	case PreRun:
		return "pre_run"
	case AwaitingInput:
		return "awaiting_input"
	case PlayerTurn:
		return "player_turn"
	case MonsterTurn:
		return "monster_turn"
	}
	return fmt.Sprintf("RunState(%d)", uint8(s))
}

// Options configures a new Game.
type Options struct {
	Config config.Config
	// Monsters overrides the table named by Config.Monsters.File.
	Monsters []assets.MonsterTemplate
	Logger   *zap.Logger
	// Sinks receive every event notice in addition to the journal.
	Sinks []gamelog.Sink
}

// Game is the top-level orchestrator for one run.
type Game struct {
	state    system.State
	runState RunState
	journal  *gamelog.Journal
	runLog   *runTracker
	runID    string
	seed     int64
	logger   *zap.Logger
}

// New generates a level, spawns the player and monsters, and returns a Game
// in PreRun.
func New(opts Options) (*Game, error) {
	cfg := opts.Config
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	monsters := opts.Monsters
	if monsters == nil {
		var err error
		if monsters, err = assets.LoadMonsters(cfg.Monsters.File); err != nil {
			return nil, fmt.Errorf("loading monsters: %w", err)
		}
	}

	seed := cfg.Game.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	gmap, err := generate.Generate(levelConfig(cfg.Map, rng))
	if err != nil {
		return nil, fmt.Errorf("generating level: %w", err)
	}
	pop := generate.Populate(gmap, len(monsters), rng)

	g := newGame(gmap, cfg.Game.JournalSize, opts.Logger, seed, opts.Sinks...)
	g.setPlayer(factory.NewPlayer(g.state.World, pop.Player.X, pop.Player.Y, cfg.Player))
	for _, m := range pop.Monsters {
		factory.NewMonster(g.state.World, monsters[m.Template], m.Ordinal, m.X, m.Y, cfg.Monsters.ViewRange)
	}

	g.logger.Info("level generated",
		zap.Int64("seed", seed),
		zap.Int("width", gmap.Width),
		zap.Int("height", gmap.Height),
		zap.Int("rooms", len(gmap.Rooms)),
		zap.Int("monsters", len(pop.Monsters)))
	return g, nil
}

// newGame wires an empty world around gmap. The caller must set the player.
func newGame(gmap *gamemap.GameMap, journalSize int, logger *zap.Logger, seed int64, sinks ...gamelog.Sink) *Game {
	if logger == nil {
		logger = zap.NewNop()
	}
	runID := uuid.NewString()
	logger = logger.With(zap.String("run", runID))

	g := &Game{
		runState: PreRun,
		journal:  gamelog.NewJournal(journalSize),
		runLog:   newRunTracker(runID, seed),
		runID:    runID,
		seed:     seed,
		logger:   logger,
	}
	all := append([]gamelog.Sink{g.journal, g.runLog, gamelog.NewZapSink(logger)}, sinks...)
	g.state = system.State{
		World:  ecs.NewWorld(),
		Map:    gmap,
		Sink:   gamelog.Multi(all...),
		Logger: logger,
	}
	return g
}

// setPlayer records id as the player and its position as the shared
// player-position record.
func (g *Game) setPlayer(id ecs.EntityID) {
	g.state.Player = id
	g.runLog.player = id
	if pos, ok := g.position(id); ok {
		g.state.PlayerPos = pos
	}
}

func (g *Game) position(id ecs.EntityID) (geom.Point, bool) {
	c := g.state.World.Get(id, component.CPosition)
	if c == nil {
		return geom.Point{}, false
	}
	return c.(component.Position).Point(), true
}

// Tick advances the state machine by one step and returns the new state.
// The action is only consulted in AwaitingInput.
func (g *Game) Tick(action Action) RunState {
	switch g.runState {
	case PreRun:
		g.runSystems()
		g.runState = AwaitingInput
	case AwaitingInput:
		if g.MoveIntent(action) {
			g.runState = PlayerTurn
		}
	case PlayerTurn:
		g.runSystems()
		g.runState = MonsterTurn
	case MonsterTurn:
		g.runSystems()
		g.runState = AwaitingInput
	}
	return g.runState
}

// Advance ticks until the game is waiting for input again.
func (g *Game) Advance() {
	for g.runState != AwaitingInput {
		g.Tick(ActionNone)
	}
}

// MoveIntent applies a player command and reports whether it was
// actionable. Moves and waits are actionable even when the move is blocked;
// ActionNone and ActionQuit are not.
func (g *Game) MoveIntent(action Action) bool {
	dx, dy := actionToDelta(action)
	if (dx == 0 && dy == 0) && action != ActionWait {
		return false
	}
	s := &g.state
	system.Settle(s, s.Player)
	s.Turn++
	if dx != 0 || dy != 0 {
		system.TryMove(s, s.Player, dx, dy)
	}
	g.runLog.turns = s.Turn
	return true
}

// runSystems runs one full pipeline pass. Monsters only act during their
// own turn.
func (g *Game) runSystems() {
	s := &g.state
	system.Visibility(s)
	if g.runState == MonsterTurn {
		system.MonsterAI(s)
	}
	system.MapIndexing(s)
	system.MeleeCombat(s)
	system.ApplyDamage(s)
	system.DeleteTheDead(s)

	g.logger.Debug("pipeline run",
		zap.Stringer("state", g.runState),
		zap.Int("turn", s.Turn),
		zap.Int("entities", s.World.Len()))
}

// RunState returns the current state machine state.
func (g *Game) RunState() RunState { return g.runState }

// Map returns the level for rendering. Callers must not modify it.
func (g *Game) Map() *gamemap.GameMap { return g.state.Map }

// World returns the entity store for rendering. Callers must not modify it.
func (g *Game) World() *ecs.World { return g.state.World }

// Player returns the player entity.
func (g *Game) Player() ecs.EntityID { return g.state.Player }

// PlayerPosition returns the player-position record kept by movement.
func (g *Game) PlayerPosition() geom.Point { return g.state.PlayerPos }

// PlayerDefeated reports whether the player has dropped below 1 hp.
func (g *Game) PlayerDefeated() bool { return g.state.PlayerDefeated }

// Turn returns the number of actionable commands processed.
func (g *Game) Turn() int { return g.state.Turn }

// Journal returns the recent event notices.
func (g *Game) Journal() *gamelog.Journal { return g.journal }

// RunID identifies this run in logs and the run log.
func (g *Game) RunID() string { return g.runID }
