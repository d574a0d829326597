package routes

import (
	"battleship_server/controllers"
	"battleship_server/services"

	"github.com/gorilla/mux"
)

// RegisterGameRoutes sets up the match setup endpoints
func RegisterGameRoutes(r *mux.Router, gameService *services.GameService) {
	controller := controllers.NewGameController(gameService)
	r.HandleFunc("/createGame", controller.CreateGame).Methods("POST")
	r.HandleFunc("/joinGame", controller.JoinGame).Methods("POST")
}
