package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pitwall/pitgames/internal/api/apierr"
	"github.com/pitwall/pitgames/internal/api/request"
	"github.com/pitwall/pitgames/internal/api/response"
	"github.com/pitwall/pitgames/internal/model"
	"github.com/pitwall/pitgames/internal/services/puzzle"
)

// PuzzleHandler handles driverdle endpoints
type PuzzleHandler struct {
	puzzleService *puzzle.Service
}

// NewPuzzleHandler creates a new puzzle handler
func NewPuzzleHandler(puzzleService *puzzle.Service) *PuzzleHandler {
	return &PuzzleHandler{
		puzzleService: puzzleService,
	}
}

// Today handles GET /api/v1/puzzle/today
func (h *PuzzleHandler) Today(w http.ResponseWriter, r *http.Request) {
	p, err := h.puzzleService.DriverOfTheDay(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.DailyPuzzleFromModel(p))
}

// Guess handles POST /api/v1/puzzle/guess.
// The response is always 200: an unknown or malformed guess is
// {success: false}, never an error status.
func (h *PuzzleHandler) Guess(w http.ResponseWriter, r *http.Request) {
	var req request.GuessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.JSON(w, http.StatusOK, response.GuessResult{Success: false})
		return
	}

	valid, err := h.puzzleService.ValidateGuess(r.Context(), req.Guess)
	if err != nil {
		valid = false
	}

	response.JSON(w, http.StatusOK, response.GuessResult{Success: valid})
}

// Score handles POST /api/v1/puzzle/score
func (h *PuzzleHandler) Score(w http.ResponseWriter, r *http.Request) {
	var req request.ScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	verdicts, err := model.ScoreGuess(req.Guess, req.Solution)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ScoreResultFromVerdicts(req.Guess, verdicts))
}
