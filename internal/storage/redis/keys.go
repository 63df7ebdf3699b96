package redis

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// seenKey marks a game ID as recorded
func (s *Store) seenKey(gameID string) string {
	return fmt.Sprintf("%s:seen:%s", s.cfg.Prefix, gameID)
}

// presetsKey returns the SET of presets that have outcomes
func (s *Store) presetsKey() string {
	return fmt.Sprintf("%s:presets", s.cfg.Prefix)
}

// gamesKey returns the SET of game IDs recorded for a preset
func (s *Store) gamesKey(preset string) string {
	return fmt.Sprintf("%s:games:%s", s.cfg.Prefix, preset)
}

// countsKey returns the HASH of reason -> count for a preset
func (s *Store) countsKey(preset string) string {
	return fmt.Sprintf("%s:counts:%s", s.cfg.Prefix, preset)
}

// ranksKey returns the ZSET of wins for a preset scored by elapsed seconds
func (s *Store) ranksKey(preset string) string {
	return fmt.Sprintf("%s:ranks:%s", s.cfg.Prefix, preset)
}

// rankMember encodes a win so equal scores sort by date.
func rankMember(at time.Time, gameID string) string {
	return fmt.Sprintf("%020d|%s", at.UnixMilli(), gameID)
}

func parseRankMember(member string) (time.Time, string, error) {
	ms, id, ok := strings.Cut(member, "|")
	if !ok {
		return time.Time{}, "", fmt.Errorf("redis: malformed rank member %q", member)
	}
	n, err := strconv.ParseInt(ms, 10, 64)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("redis: malformed rank member %q: %w", member, err)
	}
	return time.UnixMilli(n), id, nil
}
