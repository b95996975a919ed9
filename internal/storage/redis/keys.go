package redis

import (
	"fmt"

	"github.com/mcoot/blockgame-go/internal/model"
)

// Key prefix for all game-related data
const keyPrefix = "bgame"

// scoreKey returns the Redis key for a ScoreRecord
func scoreKey(id model.ScoreID) string {
	return fmt.Sprintf("%s:score:%s", keyPrefix, id)
}

// leaderboardKey returns the Redis key for the sorted set of score IDs in a mode
func leaderboardKey(mode model.GameMode) string {
	return fmt.Sprintf("%s:idx:leaderboard:%s", keyPrefix, mode)
}
