// Package session owns a live minesweeper game: it holds the current
// snapshot, drives the one-second countdown and fans every new snapshot
// out to subscribers.
package session

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-mines/internal/core"
	"github.com/vovakirdan/tui-mines/internal/dependencies/clock"
	"github.com/vovakirdan/tui-mines/internal/mines"
)

// TickInterval is the countdown resolution.
const TickInterval = time.Second

// Listener receives every snapshot the session publishes.
// It runs synchronously while the session is locked and must not call
// back into the session.
type Listener func(mines.Game)

// Option configures a Session.
type Option func(*Session)

// WithClock replaces the system clock, mostly for tests.
func WithClock(c clock.Clock) Option {
	return func(s *Session) { s.clock = c }
}

// WithRandom sets the mine placement source. Without it the session
// seeds math/rand from the config seed or the clock.
func WithRandom(r core.Random) Option {
	return func(s *Session) { s.rnd = r }
}

// WithLogger sets the logger for lifecycle events.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithPreset labels games with a preset id.
func WithPreset(id string) Option {
	return func(s *Session) { s.preset = id }
}

type subscriber struct {
	id uint64
	fn Listener
}

// Session is the stateful controller around the pure rules in package mines.
// All methods are safe for concurrent use; calls are applied one at a time.
type Session struct {
	mu     sync.Mutex
	clock  clock.Clock
	rnd    core.Random
	logger *log.Logger

	cfg    core.BoardConfig
	preset string
	game   mines.Game

	timer      clock.Timer
	generation uint64

	subscribers []subscriber
	nextSubID   uint64
	closed      bool
	done        chan struct{}
}

// New creates a session holding an idle game built from cfg.
// The countdown starts with the first selection.
func New(cfg core.BoardConfig, opts ...Option) (*Session, error) {
	s := &Session{
		clock:  clock.New(),
		logger: log.New(io.Discard),
		cfg:    cfg,
		done:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rnd == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = s.clock.Now().UnixNano()
		}
		s.rnd = core.NewRandom(seed)
	}

	g, err := s.newGame(cfg, s.preset)
	if err != nil {
		return nil, err
	}
	s.game = g
	return s, nil
}

// Game returns the current snapshot.
func (s *Session) Game() mines.Game {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game
}

// Config returns the parameters used for restarts.
func (s *Session) Config() core.BoardConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg
}

// Subscribe registers fn for every future snapshot. The returned func
// removes it and may be called more than once.
func (s *Session) Subscribe(fn Listener) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextSubID++
	id := s.nextSubID
	s.subscribers = append(s.subscribers, subscriber{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			for i, sub := range s.subscribers {
				if sub.id == id {
					s.subscribers = append(s.subscribers[:i:i], s.subscribers[i+1:]...)
					return
				}
			}
		})
	}
}

// Select clicks the cell at c. The first click of a game starts the countdown.
func (s *Session) Select(c core.Coord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	if s.game.Status() == mines.StatusIdle {
		s.game = mines.Begin(s.game)
		s.schedule()
	}
	s.apply(mines.Select(s.game, c))
}

// ToggleFlagging switches between reveal and flag mode.
func (s *Session) ToggleFlagging() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.apply(mines.ToggleFlagging(s.game))
}

// Restart discards the current game and starts a new one of the same
// shape, already running.
func (s *Session) Restart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	g, err := s.newGame(s.cfg, s.preset)
	if err != nil {
		// cfg was validated when it was accepted.
		s.logger.Error("restart failed", "error", err)
		return
	}
	s.begin(g)
}

// Start replaces the game with a running one built from cfg.
// An invalid cfg is rejected and the current game is kept.
func (s *Session) Start(cfg core.BoardConfig) error {
	return s.start("", cfg)
}

// Dispatch applies a typed action. Unknown actions leave the game
// unchanged but still notify subscribers.
func (s *Session) Dispatch(a Action) error {
	switch a := a.(type) {
	case SelectAction:
		s.Select(a.At)
	case ToggleFlaggingAction:
		s.ToggleFlagging()
	case RestartAction:
		s.Restart()
	case StartAction:
		return s.start(a.Preset, a.Config)
	default:
		s.mu.Lock()
		defer s.mu.Unlock()
		if !s.closed {
			s.notify(s.game)
		}
	}
	return nil
}

// Close cancels the countdown, drops every subscriber and closes Done.
// Later calls on the session are no-ops.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	s.closed = true
	s.stopTimer()
	s.subscribers = nil
	close(s.done)
}

// Done returns a channel closed by Close.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

func (s *Session) start(preset string, cfg core.BoardConfig) error {
	if err := mines.ValidateConfig(cfg); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}

	g, err := s.newGame(cfg, preset)
	if err != nil {
		return err
	}
	s.cfg = cfg
	s.preset = preset
	s.begin(g)
	return nil
}

// newGame builds an idle game. Caller holds mu or owns s exclusively.
func (s *Session) newGame(cfg core.BoardConfig, preset string) (mines.Game, error) {
	g, err := mines.New(cfg, s.rnd)
	if err != nil {
		return mines.Game{}, err
	}
	g = g.WithPreset(preset)

	s.logger.Debug("game created",
		"game", g.ID(),
		"preset", g.Preset(),
		"width", cfg.Width,
		"height", cfg.Height,
		"mines", cfg.Mines,
		"seconds", cfg.Seconds,
	)
	return g, nil
}

// begin installs g as a running game with a fresh countdown.
func (s *Session) begin(g mines.Game) {
	s.game = mines.Begin(g)
	s.schedule()
	s.notify(s.game)
}

// apply replaces the game and publishes it. Leaving on cancels the countdown.
func (s *Session) apply(next mines.Game) {
	prev := s.game
	s.game = next

	if next.Status() != mines.StatusOn {
		s.stopTimer()
	}
	if next.Status().Terminal() && !prev.Status().Terminal() {
		s.logger.Debug("game finished",
			"game", next.ID(),
			"status", next.Status(),
			"elapsed", next.Elapsed(),
		)
	}
	s.notify(next)
}

func (s *Session) notify(g mines.Game) {
	subs := make([]subscriber, len(s.subscribers))
	copy(subs, s.subscribers)
	for _, sub := range subs {
		sub.fn(g)
	}
}

// schedule arms the single pending tick, replacing any previous one.
func (s *Session) schedule() {
	s.stopTimer()
	gen := s.generation
	s.timer = s.clock.AfterFunc(TickInterval, func() { s.tick(gen) })
}

// stopTimer cancels the pending tick. Bumping the generation also
// neutralizes a callback that already fired and is waiting on mu.
func (s *Session) stopTimer() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.generation++
}

func (s *Session) tick(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || gen != s.generation || s.game.Status() != mines.StatusOn {
		return
	}
	s.timer = nil

	next := mines.Tick(s.game)
	if next.Status() == mines.StatusOn {
		s.schedule()
	}
	s.apply(next)
}
