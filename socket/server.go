package socket

import (
	"context"
	"log"

	"battleship_server/services"

	socketio "github.com/googollee/go-socket.io"
)

// ArrangeShipsMessage is the inbound payload for the arrangeShips event.
type ArrangeShipsMessage struct {
	GameCode string `json:"gameCode"`
	UserID   string `json:"userId"`
	Ships    []int  `json:"ships"`
}

// ShootMessage is the inbound payload for the shoot event.
type ShootMessage struct {
	GameCode string `json:"gameCode"`
	UserID   string `json:"userId"`
	Position int    `json:"position"`
}

// Server wraps the Socket.IO server and the session registry. It implements
// services.Notifier: games are rooms, players are registered connections.
type Server struct {
	IO       *socketio.Server
	registry *Registry
}

// NewSocketServer initializes and returns a new Socket.IO server
func NewSocketServer() *Server {
	return &Server{
		IO:       socketio.NewServer(nil),
		registry: NewRegistry(),
	}
}

// RegisterHandlers wires the game events to the game service. Invalid
// in-game actions are dropped without a reply; only store failures are logged.
func (s *Server) RegisterHandlers(games *services.GameService) {
	s.IO.OnConnect("/", func(c socketio.Conn) error {
		u := c.URL()
		userID := u.Query().Get("userId")
		if userID == "" {
			log.Println("❌ Socket connected without userId:", c.ID())
			return nil
		}
		c.SetContext(userID)
		s.registry.Register(userID, c)
		log.Println("✅ Socket connected:", userID)
		return nil
	})

	s.IO.OnEvent("/", "arrangeShips", func(c socketio.Conn, msg ArrangeShipsMessage) {
		if err := games.ArrangeShips(context.Background(), msg.GameCode, msg.UserID, msg.Ships); err != nil {
			log.Printf("❌ arrangeShips failed for game %s: %v\n", msg.GameCode, err)
		}
	})

	s.IO.OnEvent("/", "shoot", func(c socketio.Conn, msg ShootMessage) {
		if err := games.Shoot(context.Background(), msg.GameCode, msg.UserID, msg.Position); err != nil {
			log.Printf("❌ shoot failed for game %s: %v\n", msg.GameCode, err)
		}
	})

	s.IO.OnDisconnect("/", func(c socketio.Conn, reason string) {
		userID, _ := c.Context().(string)
		if userID == "" {
			return
		}
		s.registry.Unregister(userID, c)
		if err := games.HandleDisconnect(context.Background(), userID); err != nil {
			log.Printf("❌ disconnect handling failed for user %s: %v\n", userID, err)
		}
		log.Println("❌ Socket disconnected:", userID)
	})
}

// ToGame broadcasts an event to every connection in the game's room.
func (s *Server) ToGame(gameID, event string, payload interface{}) {
	if payload == nil {
		s.IO.BroadcastToRoom("/", gameID, event)
		return
	}
	s.IO.BroadcastToRoom("/", gameID, event, payload)
}

// ToUser emits an event to one player's connection, if it is live.
func (s *Server) ToUser(userID, event string, payload interface{}) {
	conn, ok := s.registry.Get(userID)
	if !ok {
		return
	}
	if payload == nil {
		conn.Emit(event)
		return
	}
	conn.Emit(event, payload)
}

// ConnectToGame subscribes a player's connection to the game's room.
func (s *Server) ConnectToGame(gameID, userID string) {
	if conn, ok := s.registry.Get(userID); ok {
		conn.Join(gameID)
	}
}

// DisconnectFromGame removes a player's connection from the game's room.
func (s *Server) DisconnectFromGame(gameID, userID string) {
	if conn, ok := s.registry.Get(userID); ok {
		conn.Leave(gameID)
	}
}
