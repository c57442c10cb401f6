package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/pitwall/pitgames/internal/api/apierr"
	"github.com/pitwall/pitgames/internal/api/request"
	"github.com/pitwall/pitgames/internal/api/response"
	"github.com/pitwall/pitgames/internal/model"
	"github.com/pitwall/pitgames/internal/services/guesswho"
)

// GuessWhoHandler handles guess-who session endpoints
type GuessWhoHandler struct {
	guessWhoService *guesswho.Service
}

// NewGuessWhoHandler creates a new guess-who handler
func NewGuessWhoHandler(guessWhoService *guesswho.Service) *GuessWhoHandler {
	return &GuessWhoHandler{
		guessWhoService: guessWhoService,
	}
}

// Create handles POST /api/v1/guesswho/games
func (h *GuessWhoHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	selections := make([]guesswho.ChampionshipSelection, 0, len(req.Championships))
	for _, pair := range req.Championships {
		if len(pair) != 2 {
			apierr.WriteError(w, apierr.NewInvalidRequestError("each championship selection must be a [name, year] pair"))
			return
		}
		selections = append(selections, guesswho.ChampionshipSelection{
			Name: pair[0],
			Year: pair[1],
		})
	}

	id, err := h.guessWhoService.CreateGame(r.Context(), selections)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.CreateGameResult{
		Success:   true,
		SessionID: string(id),
	})
}

// Join handles GET /api/v1/guesswho/join?session=&player=1|2
func (h *GuessWhoHandler) Join(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	sessionID := model.SessionID(query.Get("session"))
	if sessionID == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("session parameter is required"))
		return
	}

	slot, err := strconv.Atoi(query.Get("player"))
	if err != nil {
		apierr.WriteError(w, model.ErrInvalidPlayerSlot)
		return
	}

	view, err := h.guessWhoService.JoinGame(r.Context(), sessionID, slot)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.JoinGameResultFromView(view))
}
