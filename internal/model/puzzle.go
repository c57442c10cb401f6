package model

// PuzzleDateFormat is the calendar-day key for daily puzzles
const PuzzleDateFormat = "2006-01-02"

// DailyPuzzle is the driver selected as a given day's answer.
// Exactly one puzzle is current at any moment; it is recomputed
// (never mutated) when the stored date no longer matches today.
type DailyPuzzle struct {
	Date      string `json:"date"`
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
}
