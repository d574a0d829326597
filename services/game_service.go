package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"battleship_server/board"
	"battleship_server/models"
	"battleship_server/utils"

	"github.com/google/uuid"
)

// codeAttempts bounds the join-code collision retry loop.
const codeAttempts = 10

// Notifier delivers events to game participants. Delivery is best-effort:
// the service never rolls back state because a notification was lost.
type Notifier interface {
	ToGame(gameID, event string, payload interface{})
	ToUser(userID, event string, payload interface{})
	ConnectToGame(gameID, userID string)
	DisconnectFromGame(gameID, userID string)
}

// GameService runs the match lifecycle: create, join, arrange, shoot,
// disconnect. Every mutating operation serializes on a per-game lock so that
// read-modify-write sequences against one game never interleave, while
// unrelated games proceed independently.
type GameService struct {
	Store    GameStore
	Notifier Notifier

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewGameService(store GameStore, notifier Notifier) *GameService {
	return &GameService{
		Store:    store,
		Notifier: notifier,
		locks:    map[string]*sync.Mutex{},
	}
}

// gameLock returns the mutex guarding one game id, creating it on first use.
// A released entry may be re-created while an old waiter still blocks on the
// previous mutex, so every holder must re-read the game after acquiring and
// treat a missing record as "already finished" rather than trust prior reads.
func (gs *GameService) gameLock(gameID string) *sync.Mutex {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	lock, ok := gs.locks[gameID]
	if !ok {
		lock = &sync.Mutex{}
		gs.locks[gameID] = lock
	}
	return lock
}

func (gs *GameService) releaseGameLock(gameID string) {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	delete(gs.locks, gameID)
}

// CreateGame creates a fresh game owned by creatorID and returns its join
// code. Any game the creator already owns is discarded first.
func (gs *GameService) CreateGame(ctx context.Context, creatorID string) (string, error) {
	if creatorID == "" {
		return "", fmt.Errorf("%w: creatorId is required", ErrInvalidInput)
	}

	prior, err := gs.Store.FindByParticipant(ctx, creatorID)
	if err != nil {
		return "", err
	}
	if prior != nil && prior.CreatorID == creatorID {
		if err := gs.discardGame(ctx, prior.GameID); err != nil {
			return "", err
		}
	}

	code, err := gs.uniqueCode(ctx)
	if err != nil {
		return "", err
	}

	game := &models.Game{
		GameID:       uuid.NewString(),
		Code:         code,
		CreatorID:    creatorID,
		State:        models.StateForming,
		MovingUserID: creatorID,
		CreatorShots: make([]int, board.FieldSize),
		InvitedShots: make([]int, board.FieldSize),
	}
	if err := gs.Store.Create(ctx, game); err != nil {
		return "", err
	}

	gs.Notifier.ConnectToGame(game.GameID, creatorID)
	return code, nil
}

// JoinGame attaches invitedID to the game identified by code and signals both
// players to start arranging their fleets.
func (gs *GameService) JoinGame(ctx context.Context, code, invitedID string) error {
	if code == "" || invitedID == "" {
		return fmt.Errorf("%w: code and invitedId are required", ErrInvalidInput)
	}

	game, err := gs.Store.FindByCode(ctx, code)
	if err != nil {
		return err
	}
	if game == nil {
		return fmt.Errorf("%w: no game with code %s", ErrNotFound, code)
	}
	// Reject obviously doomed joins before touching the joiner's own game;
	// a failed join must leave it intact. The checks repeat under the lock.
	if game.CreatorID == invitedID {
		return fmt.Errorf("%w: cannot join your own game", ErrConflict)
	}
	if game.InvitedID != "" {
		return fmt.Errorf("%w: game is already full", ErrConflict)
	}

	// A player abandons any other active game by joining a new one.
	other, err := gs.Store.FindByParticipant(ctx, invitedID)
	if err != nil {
		return err
	}
	if other != nil && other.GameID != game.GameID {
		if err := gs.discardGame(ctx, other.GameID); err != nil {
			return err
		}
	}

	lock := gs.gameLock(game.GameID)
	lock.Lock()
	defer lock.Unlock()

	game, err = gs.Store.FindByID(ctx, game.GameID)
	if err != nil {
		return err
	}
	if game == nil {
		return fmt.Errorf("%w: no game with code %s", ErrNotFound, code)
	}
	if game.CreatorID == invitedID {
		return fmt.Errorf("%w: cannot join your own game", ErrConflict)
	}
	if game.InvitedID != "" {
		return fmt.Errorf("%w: game is already full", ErrConflict)
	}

	game.InvitedID = invitedID
	game.State = models.StateArranging
	if err := gs.Store.Update(ctx, game); err != nil {
		return err
	}

	gs.Notifier.ConnectToGame(game.GameID, invitedID)
	gs.Notifier.ToGame(game.GameID, "startArrangement", nil)
	return nil
}

// ArrangeShips stores a player's fleet. Invalid submissions are dropped
// without a reply; an empty submission means "not arranged yet" and prompts
// the player to arrange again. Once both fleets are in, combat starts with
// the creator moving first.
func (gs *GameService) ArrangeShips(ctx context.Context, gameCode, userID string, ships []int) error {
	if len(ships) > 0 && !board.Validate(ships) {
		return nil
	}

	found, err := gs.Store.FindByCode(ctx, gameCode)
	if err != nil {
		return err
	}
	if found == nil {
		return nil
	}

	lock := gs.gameLock(found.GameID)
	lock.Lock()
	defer lock.Unlock()

	game, err := gs.Store.FindByID(ctx, found.GameID)
	if err != nil {
		return err
	}
	if game == nil || !game.IsParticipant(userID) {
		return nil
	}
	if game.State == models.StateInCombat || game.State == models.StateFinished {
		return nil
	}

	switch userID {
	case game.CreatorID:
		game.CreatorShips = ships
	case game.InvitedID:
		game.InvitedShips = ships
	}

	if board.Validate(game.CreatorShips) && board.Validate(game.InvitedShips) {
		game.State = models.StateInCombat
		game.MovingUserID = game.CreatorID
		if err := gs.Store.Update(ctx, game); err != nil {
			return err
		}
		gs.Notifier.ToGame(game.GameID, "startGame", map[string]interface{}{
			"movingUserId": game.MovingUserID,
		})
		return nil
	}

	if err := gs.Store.Update(ctx, game); err != nil {
		return err
	}
	if len(ships) == 0 {
		gs.Notifier.ToUser(userID, "startArrangement", nil)
	} else {
		gs.Notifier.ToUser(userID, "waitingForOpponent", nil)
	}
	return nil
}

// Shoot resolves one shot by the moving player. A miss passes the turn, a hit
// keeps it, and a hit that leaves the opponent with no unhit ship cell ends
// the game. Out-of-turn and out-of-range shots are dropped.
func (gs *GameService) Shoot(ctx context.Context, gameCode, userID string, position int) error {
	if !board.InBounds(position) {
		return nil
	}

	found, err := gs.Store.FindByCode(ctx, gameCode)
	if err != nil {
		return err
	}
	if found == nil {
		return nil
	}

	lock := gs.gameLock(found.GameID)
	lock.Lock()
	defer lock.Unlock()

	game, err := gs.Store.FindByID(ctx, found.GameID)
	if err != nil {
		return err
	}
	if game == nil || game.State != models.StateInCombat || game.MovingUserID != userID {
		return nil
	}

	shots := game.InvitedShots
	enemyShips := game.CreatorShips
	if userID == game.CreatorID {
		shots = game.CreatorShots
		enemyShips = game.InvitedShips
	}
	shots[position] = 1

	positionInfo := enemyShips[position]
	if positionInfo == board.EmptyCell {
		game.MovingUserID = game.Opponent(userID)
	}

	if positionInfo != board.EmptyCell && fleetEliminated(enemyShips, shots) {
		game.State = models.StateFinished
		if err := gs.Store.Delete(ctx, game.GameID); err != nil {
			return err
		}
		gs.Notifier.ToGame(game.GameID, "nextMove", map[string]interface{}{
			"position":     position,
			"positionInfo": positionInfo,
		})
		gs.Notifier.ToUser(userID, "victory", nil)
		gs.releaseGameLock(game.GameID)
		return nil
	}

	if err := gs.Store.Update(ctx, game); err != nil {
		return err
	}
	gs.Notifier.ToGame(game.GameID, "nextMove", map[string]interface{}{
		"position":     position,
		"positionInfo": positionInfo,
	})
	return nil
}

// HandleDisconnect forfeits the disconnecting player's active game, if any.
// The remaining player is told of their victory.
func (gs *GameService) HandleDisconnect(ctx context.Context, userID string) error {
	if userID == "" {
		return nil
	}

	found, err := gs.Store.FindByParticipant(ctx, userID)
	if err != nil {
		return err
	}
	if found == nil {
		return nil
	}

	lock := gs.gameLock(found.GameID)
	lock.Lock()
	defer lock.Unlock()

	game, err := gs.Store.FindByID(ctx, found.GameID)
	if err != nil {
		return err
	}
	if game == nil || !game.IsParticipant(userID) {
		return nil
	}

	game.State = models.StateFinished
	if err := gs.Store.Delete(ctx, game.GameID); err != nil {
		return err
	}

	gs.Notifier.DisconnectFromGame(game.GameID, userID)
	if opponent := game.Opponent(userID); opponent != "" {
		gs.Notifier.ToUser(opponent, "victory", nil)
	}
	gs.releaseGameLock(game.GameID)
	return nil
}

// discardGame removes a game under its own lock.
func (gs *GameService) discardGame(ctx context.Context, gameID string) error {
	lock := gs.gameLock(gameID)
	lock.Lock()
	defer lock.Unlock()
	if err := gs.Store.Delete(ctx, gameID); err != nil {
		return err
	}
	gs.releaseGameLock(gameID)
	return nil
}

// uniqueCode generates a join code that no active game is using.
func (gs *GameService) uniqueCode(ctx context.Context) (string, error) {
	for i := 0; i < codeAttempts; i++ {
		code, err := utils.GenerateGameCode()
		if err != nil {
			return "", err
		}
		existing, err := gs.Store.FindByCode(ctx, code)
		if err != nil {
			return "", err
		}
		if existing == nil {
			return code, nil
		}
	}
	return "", errors.New("could not generate a unique game code")
}

// fleetEliminated reports whether every ship cell of fleet has been shot.
func fleetEliminated(fleet, shots []int) bool {
	for i, cell := range fleet {
		if cell != board.EmptyCell && shots[i] == 0 {
			return false
		}
	}
	return true
}
