// Package game hosts the columns state machine in a terminal: it owns the
// model, feeds it timer ticks and start requests, and renders each state.
package game

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/bobbyscolumns/internal/columns"
	"github.com/samdwyer/bobbyscolumns/internal/palette"
	"github.com/samdwyer/bobbyscolumns/internal/telemetry"
	"github.com/samdwyer/bobbyscolumns/internal/ui"
)

// Game holds the entire game state.
type Game struct {
	cfg      Config
	screen   *ui.Screen
	renderer *ui.Renderer
	machine  *columns.Machine
	model    columns.Model
	tracer   trace.Tracer
	running  bool

	// observe, if set, sees every event and the model it produced.
	observe func(columns.Event, columns.Model)
}

// New creates a new game instance attached to the terminal.
func New(cfg Config) (*Game, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewWithScreen(cfg, s)
}

// NewWithScreen creates a game that draws to and reads input from s.
// The screen is initialized here and finalized when Run returns.
func NewWithScreen(cfg Config, s tcell.Screen) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	p, err := loadPalette(cfg.Palette)
	if err != nil {
		return nil, err
	}

	screen, err := ui.NewScreenFrom(s)
	if err != nil {
		return nil, err
	}

	g := newGame(cfg, ui.NewRenderer(screen, p), telemetry.Tracer("game"))
	g.screen = screen
	return g, nil
}

// loadPalette reads the palette file at path, or the embedded default when
// path is empty.
func loadPalette(path string) (*palette.Palette, error) {
	if path == "" {
		return palette.LoadDefault()
	}
	return palette.Load(os.DirFS(filepath.Dir(path)), filepath.Base(path))
}

// newGame builds a game around an existing renderer, without a terminal.
func newGame(cfg Config, renderer *ui.Renderer, tracer trace.Tracer) *Game {
	var opts []columns.Option
	if cfg.Seed != 0 {
		opts = append(opts, columns.WithColors(columns.NewSeededColors(cfg.Seed)))
	}

	return &Game{
		cfg:      cfg,
		renderer: renderer,
		machine:  columns.NewMachine(opts...),
		model:    columns.NewModel(cfg.Width, cfg.Height),
		tracer:   tracer,
		running:  true,
	}
}

// Run executes the main game loop until the player quits or ctx is done.
//
// All model updates happen on this goroutine, one event at a time, in the
// order they are received.
func (g *Game) Run(ctx context.Context) error {
	ctx, span := g.tracer.Start(ctx, "game.run")
	defer span.End()

	span.SetAttributes(
		attribute.Int("board.width", g.cfg.Width),
		attribute.Int("board.height", g.cfg.Height),
		attribute.Int64("tick_interval_ms", g.cfg.TickInterval.Milliseconds()),
	)

	quit := make(chan struct{})
	events := make(chan tcell.Event)
	pumped := make(chan struct{})
	screen := g.screen
	go func() {
		defer close(pumped)
		pumpEvents(screen, events, quit)
	}()

	ticker := time.NewTicker(g.cfg.TickInterval)
	defer ticker.Stop()

	start := time.Now()
	g.render()

	for g.running {
		select {
		case <-ctx.Done():
			g.running = false
		case ev, ok := <-events:
			if !ok {
				g.running = false
				break
			}
			g.handleEvent(ctx, ev)
		case now := <-ticker.C:
			g.apply(ctx, columns.Tick{TimestampMs: now.Sub(start).Milliseconds()})
		}
		if g.running {
			g.render()
		}
	}

	// Closing the screen unblocks PollEvent; wait for the pump to see it.
	close(quit)
	g.Close()
	<-pumped
	return nil
}

// pumpEvents forwards terminal events until the screen is closed or quit is
// closed.
func pumpEvents(screen *ui.Screen, events chan<- tcell.Event, quit <-chan struct{}) {
	defer close(events)
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-quit:
			return
		}
	}
}

// handleEvent processes a single terminal event.
func (g *Game) handleEvent(ctx context.Context, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch keyAction(ev.Key(), ev.Rune()) {
		case actionQuit:
			g.running = false
		case actionStart:
			g.apply(ctx, columns.StartGame{})
		}
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// apply feeds one event to the state machine and traces any phase change.
func (g *Game) apply(ctx context.Context, ev columns.Event) {
	before := g.model.Phase
	g.model = g.machine.Update(g.model, ev)
	after := g.model.Phase

	if g.observe != nil {
		g.observe(ev, g.model)
	}

	if _, ok := ev.(columns.StartGame); ok {
		_, span := g.tracer.Start(ctx, "columns.start")
		span.SetAttributes(
			attribute.String("from", before.Kind.String()),
			attribute.Int("board.width", g.model.Grid.Width()),
			attribute.Int("board.height", g.model.Grid.Height()),
		)
		span.End()
		return
	}

	if before == after {
		return
	}

	tick, _ := ev.(columns.Tick)
	_, span := g.tracer.Start(ctx, "columns.transition")
	span.SetAttributes(
		attribute.String("from", before.Kind.String()),
		attribute.String("to", after.Kind.String()),
		attribute.Int64("timestamp_ms", tick.TimestampMs),
		attribute.Int("occupied", g.model.Grid.OccupiedCount()),
		attribute.Bool("settled", g.model.Settled),
	)
	span.End()
}

// render draws the current model.
func (g *Game) render() {
	g.renderer.Render(g.model.Snapshot())
}

// Snapshot returns a read-only copy of the current state.
func (g *Game) Snapshot() columns.Snapshot {
	return g.model.Snapshot()
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
		g.screen = nil
	}
}
