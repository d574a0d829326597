package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"battleship_server/services"
)

// GameController handles the request-response part of match setup. Everything
// after setup happens over the socket connection.
type GameController struct {
	GameService *services.GameService
}

// NewGameController creates a new GameController instance
func NewGameController(gameService *services.GameService) *GameController {
	return &GameController{GameService: gameService}
}

// CreateGame handles creating a new game and returns its join code
func (gc *GameController) CreateGame(w http.ResponseWriter, r *http.Request) {
	var body struct {
		CreatorID string `json:"creatorId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	code, err := gc.GameService.CreateGame(r.Context(), body.CreatorID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"code": code})
}

// JoinGame handles joining an existing game by its code
func (gc *GameController) JoinGame(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Code      string `json:"code"`
		InvitedID string `json:"invitedId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := gc.GameService.JoinGame(r.Context(), body.Code, body.InvitedID); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// writeServiceError maps the service error taxonomy onto HTTP status codes.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, services.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, services.ErrConflict):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
