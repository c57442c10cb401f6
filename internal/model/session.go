package model

import "time"

// SessionID is an opaque random token identifying a guess-who session
type SessionID string

// Player slots within a session
const (
	PlayerSlot1 = 1
	PlayerSlot2 = 2
)

// Pilot is a roster entry shown to both players of a session
type Pilot struct {
	ID         DriverID `json:"id"`
	PictureURL string   `json:"picture_url"`
}

// GameSession is a short-lived two-player guess-who game.
// Secrets[slot] holds the pilot that slot's player must guess;
// the two secrets are distinct members of Pilots.
type GameSession struct {
	ID           SessionID          `json:"id"`
	CreatedAt    time.Time          `json:"created_at"`
	Player1Ready bool               `json:"player1_ready"`
	Player2Ready bool               `json:"player2_ready"`
	Pilots       map[DriverID]Pilot `json:"pilots"`
	Secrets      map[int]DriverID   `json:"secrets"`
}

// Ready reports whether the given slot has joined
func (s *GameSession) Ready(slot int) bool {
	switch slot {
	case PlayerSlot1:
		return s.Player1Ready
	case PlayerSlot2:
		return s.Player2Ready
	}
	return false
}

// SetReady marks the given slot as joined
func (s *GameSession) SetReady(slot int) {
	switch slot {
	case PlayerSlot1:
		s.Player1Ready = true
	case PlayerSlot2:
		s.Player2Ready = true
	}
}

// BothReady reports whether both players have joined
func (s *GameSession) BothReady() bool {
	return s.Player1Ready && s.Player2Ready
}

// ExpiredAt reports whether the session's logical TTL has elapsed at now
func (s *GameSession) ExpiredAt(now time.Time, ttl time.Duration) bool {
	return now.Sub(s.CreatedAt) > ttl
}
