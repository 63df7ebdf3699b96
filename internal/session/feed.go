package session

import (
	"sync"

	"github.com/vovakirdan/tui-mines/internal/mines"
)

// Feed is a Listener that forwards snapshots to a buffered channel.
// Used by front ends whose event loop must not be blocked by, or block,
// the session's timer goroutine.
type Feed struct {
	games       chan mines.Game
	done        chan struct{}
	doneOnce    sync.Once
	unsubscribe func()
}

// NewFeed subscribes a new feed to s. The feed closes itself when s is closed.
// bufferSize controls how many snapshots can be queued before the oldest is dropped.
func NewFeed(s *Session, bufferSize int) *Feed {
	if bufferSize < 1 {
		bufferSize = 16
	}
	f := &Feed{
		games: make(chan mines.Game, bufferSize),
		done:  make(chan struct{}),
	}
	f.unsubscribe = s.Subscribe(f.Send)

	go func() {
		select {
		case <-s.Done():
			f.Close()
		case <-f.done:
		}
	}()
	return f
}

// Send queues g without blocking.
// If the buffer is full the oldest snapshot is dropped; snapshots are
// complete states, so only the newest matters.
func (f *Feed) Send(g mines.Game) {
	select {
	case <-f.done:
		return
	default:
	}

	select {
	case f.games <- g:
	default:
		select {
		case <-f.games:
		default:
		}
		select {
		case f.games <- g:
		default:
		}
	}
}

// Games returns the channel to receive snapshots from.
func (f *Feed) Games() <-chan mines.Game {
	return f.games
}

// Done returns a channel closed by Close.
func (f *Feed) Done() <-chan struct{} {
	return f.done
}

// Close unsubscribes the feed. Safe to call multiple times.
func (f *Feed) Close() {
	f.doneOnce.Do(func() {
		f.unsubscribe()
		close(f.done)
	})
}
