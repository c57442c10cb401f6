package handler

import (
	"net/http"

	"github.com/pitwall/pitgames/internal/api/apierr"
	"github.com/pitwall/pitgames/internal/api/response"
	"github.com/pitwall/pitgames/internal/entity"
)

// ChampionshipHandler handles championship listing
type ChampionshipHandler struct {
	entities entity.Store
}

// NewChampionshipHandler creates a new championship handler
func NewChampionshipHandler(entities entity.Store) *ChampionshipHandler {
	return &ChampionshipHandler{
		entities: entities,
	}
}

// List handles GET /api/v1/championships
func (h *ChampionshipHandler) List(w http.ResponseWriter, r *http.Request) {
	championships, err := h.entities.ListChampionships(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ChampionshipsResult{
		Success:       true,
		Championships: championships,
	})
}
