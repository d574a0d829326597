package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"

	"battleship_server/routes"
	"battleship_server/services"
	"battleship_server/socket"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on process environment")
	}

	// Initialize DynamoDB client and the game store
	log.Println("Initializing DynamoDB client...")
	dynamoClient := services.InitializeDynamoDBClient()
	dynamoService := &services.DynamoService{Client: dynamoClient}
	gameStore := services.NewDynamoGameStore(dynamoService)
	log.Println("DynamoDB client initialized.")

	// Initialize the socket server and the game service
	socketServer := socket.NewSocketServer()
	gameService := services.NewGameService(gameStore, socketServer)
	socketServer.RegisterHandlers(gameService)

	go func() {
		if err := socketServer.IO.Serve(); err != nil {
			log.Fatalf("Socket server error: %v", err)
		}
	}()
	defer socketServer.IO.Close()

	// Set up the server port
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Using server port: %s\n", port)

	// Initialize the router
	r := mux.NewRouter()

	// Register a welcome route
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "Welcome to Battleship")
	}).Methods("GET")

	// Register a health check endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		response := map[string]string{"status": "healthy"}
		json.NewEncoder(w).Encode(response)
	}).Methods("GET")

	// Register routes
	routes.RegisterGameRoutes(r, gameService)
	r.PathPrefix("/socket.io/").Handler(socketServer.IO)

	// Serve the client bundle when it has been built
	if _, err := os.Stat("public"); err == nil {
		r.PathPrefix("/app/").Handler(http.StripPrefix("/app/", http.FileServer(http.Dir("public"))))
	}

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // Adjust for specific domains if needed
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	// Start the HTTP server
	log.Printf("Starting server on port %s...\n", port)
	log.Fatal(http.ListenAndServe(":"+port, corsHandler))
}
