package redis

import (
	"fmt"

	"github.com/pitwall/pitgames/internal/model"
)

// Key prefix for all game-related data
const keyPrefix = "pitgames"

// dailyPuzzleKey returns the Redis key for the singleton daily puzzle
func dailyPuzzleKey() string {
	return fmt.Sprintf("%s:daily_puzzle", keyPrefix)
}

// sessionKey returns the Redis key for a GameSession
func sessionKey(id model.SessionID) string {
	return fmt.Sprintf("%s:session:%s", keyPrefix, id)
}

// sessionIndexKey returns the Redis key for the SET of active session keys
func sessionIndexKey() string {
	return fmt.Sprintf("%s:idx:sessions", keyPrefix)
}
