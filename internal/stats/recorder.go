package stats

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-mines/internal/dependencies/clock"
	"github.com/vovakirdan/tui-mines/internal/mines"
	"github.com/vovakirdan/tui-mines/internal/session"
)

// recordTimeout bounds a single write.
const recordTimeout = 2 * time.Second

// recordQueueSize is how many finished games may wait for the store.
const recordQueueSize = 16

// Recorder watches a session and stores each game once, the first time
// it is seen in a terminal status. Writes happen on a background
// goroutine so a slow store never holds up the session.
type Recorder struct {
	store  Store
	clock  clock.Clock
	logger *log.Logger

	mu     sync.Mutex
	lastID string
	closed bool

	queue   chan Outcome
	pending sync.WaitGroup
	worker  sync.WaitGroup
}

// NewRecorder creates a recorder writing to store. A nil logger discards.
// Call Close to flush pending writes and stop the writer.
func NewRecorder(store Store, clk clock.Clock, logger *log.Logger) *Recorder {
	if clk == nil {
		clk = clock.New()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	r := &Recorder{
		store:  store,
		clock:  clk,
		logger: logger,
		queue:  make(chan Outcome, recordQueueSize),
	}
	r.worker.Add(1)
	go r.run()
	return r
}

// Attach subscribes the recorder to s and returns the unsubscribe func.
func (r *Recorder) Attach(s *session.Session) func() {
	return s.Subscribe(r.Observe)
}

// Observe is a session listener. It never blocks: when the queue is
// full the outcome is dropped and logged.
func (r *Recorder) Observe(g mines.Game) {
	reason, ok := ReasonFor(g.Status())
	if !ok {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed || g.ID() == r.lastID {
		return
	}
	r.lastID = g.ID()

	o := Outcome{
		GameID:  g.ID(),
		Preset:  g.Preset(),
		Reason:  reason,
		Elapsed: g.Elapsed(),
		At:      r.clock.Now(),
	}

	r.pending.Add(1)
	select {
	case r.queue <- o:
	default:
		r.pending.Done()
		r.logger.Warn("stats queue full, outcome dropped", "game", o.GameID, "reason", o.Reason)
	}
}

// Flush blocks until every queued outcome has been written.
func (r *Recorder) Flush() {
	r.pending.Wait()
}

// Close flushes pending writes and stops the writer. Outcomes observed
// afterwards are ignored. Safe to call multiple times.
func (r *Recorder) Close() {
	r.mu.Lock()
	if !r.closed {
		r.closed = true
		close(r.queue)
	}
	r.mu.Unlock()
	r.worker.Wait()
}

func (r *Recorder) run() {
	defer r.worker.Done()
	for o := range r.queue {
		r.record(o)
		r.pending.Done()
	}
}

func (r *Recorder) record(o Outcome) {
	ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
	defer cancel()
	if err := r.store.Record(ctx, o); err != nil {
		r.logger.Warn("could not record outcome", "game", o.GameID, "reason", o.Reason, "error", err)
		return
	}
	r.logger.Debug("outcome recorded", "game", o.GameID, "reason", o.Reason, "elapsed", o.Elapsed)
}
