package response

import (
	"github.com/pitwall/pitgames/internal/model"
	"github.com/pitwall/pitgames/internal/services/guesswho"
)

// DailyPuzzle is the driver-of-the-day response
type DailyPuzzle struct {
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Date      string `json:"date"`
}

// DailyPuzzleFromModel converts a model.DailyPuzzle
func DailyPuzzleFromModel(p *model.DailyPuzzle) DailyPuzzle {
	return DailyPuzzle{
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Date:      p.Date,
	}
}

// GuessResult reports whether a guess names a real driver.
// It is always delivered with status 200.
type GuessResult struct {
	Success bool `json:"success"`
}

// ScoredLetter is one position's verdict in a scored guess
type ScoredLetter struct {
	Letter string `json:"letter"`
	Status string `json:"status"`
}

// ScoreResult carries the per-letter verdicts for a scored guess
type ScoreResult struct {
	Success bool           `json:"success"`
	Letters []ScoredLetter `json:"letters"`
}

// ScoreResultFromVerdicts pairs each guess letter with its verdict
func ScoreResultFromVerdicts(guess string, verdicts []model.LetterVerdict) ScoreResult {
	runes := []rune(guess)
	letters := make([]ScoredLetter, len(verdicts))
	for i, v := range verdicts {
		letters[i] = ScoredLetter{
			Letter: string(runes[i]),
			Status: string(v),
		}
	}
	return ScoreResult{Success: true, Letters: letters}
}

// Pilot is one roster entry of a guess-who session
type Pilot struct {
	ID         string `json:"id"`
	PictureURL string `json:"picture_url"`
}

// CreateGameResult is the response for a created guess-who session
type CreateGameResult struct {
	Success   bool   `json:"success"`
	SessionID string `json:"session_id"`
}

// JoinGameResult is the response for a successful join
type JoinGameResult struct {
	Success     bool             `json:"success"`
	Pilots      map[string]Pilot `json:"pilots"`
	SecretPilot Pilot            `json:"secret_pilot"`
}

// JoinGameResultFromView converts a guesswho.SessionView
func JoinGameResultFromView(view *guesswho.SessionView) JoinGameResult {
	pilots := make(map[string]Pilot, len(view.Pilots))
	for id, pilot := range view.Pilots {
		pilots[string(id)] = Pilot{
			ID:         string(pilot.ID),
			PictureURL: pilot.PictureURL,
		}
	}
	return JoinGameResult{
		Success: true,
		Pilots:  pilots,
		SecretPilot: Pilot{
			ID:         string(view.SecretPilot.ID),
			PictureURL: view.SecretPilot.PictureURL,
		},
	}
}

// ChampionshipsResult maps championship names to their available years
type ChampionshipsResult struct {
	Success       bool                `json:"success"`
	Championships map[string][]string `json:"championships"`
}
