package stats

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore keeps outcomes in process memory.
type MemoryStore struct {
	mu       sync.RWMutex
	outcomes []Outcome
	seen     map[string]struct{}
}

// Ensure MemoryStore implements the interface
var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{seen: make(map[string]struct{})}
}

func (s *MemoryStore) Record(_ context.Context, o Outcome) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.seen[o.GameID]; ok {
		return nil
	}
	s.seen[o.GameID] = struct{}{}
	s.outcomes = append(s.outcomes, o)
	return nil
}

func (s *MemoryStore) Summary(_ context.Context, preset string, limit int) (Summary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = DefaultRanks
	}

	sum := Summary{Preset: preset}
	for _, o := range s.outcomes {
		if preset != "" && o.Preset != preset {
			continue
		}
		sum.Counts.Add(o.Reason, 1)
		if o.Reason == ReasonWin {
			sum.Ranks = append(sum.Ranks, Rank{GameID: o.GameID, Elapsed: o.Elapsed, At: o.At})
		}
	}

	SortRanks(sum.Ranks)
	if len(sum.Ranks) > limit {
		sum.Ranks = sum.Ranks[:limit]
	}
	return sum, nil
}

func (s *MemoryStore) Reset(_ context.Context, preset string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.outcomes[:0]
	for _, o := range s.outcomes {
		if preset != "" && o.Preset != preset {
			kept = append(kept, o)
			continue
		}
		delete(s.seen, o.GameID)
	}
	s.outcomes = kept
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}

// SortRanks orders ranks fastest first, then by date.
func SortRanks(ranks []Rank) {
	sort.SliceStable(ranks, func(i, j int) bool {
		if ranks[i].Elapsed != ranks[j].Elapsed {
			return ranks[i].Elapsed < ranks[j].Elapsed
		}
		return ranks[i].At.Before(ranks[j].At)
	})
}
