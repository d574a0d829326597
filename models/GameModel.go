package models

// GameState is the lifecycle state of a game.
type GameState string

const (
	StateForming   GameState = "forming"   // created, waiting for a second player
	StateArranging GameState = "arranging" // both players known, fleets not yet both placed
	StateInCombat  GameState = "inCombat"  // turns proceeding
	StateFinished  GameState = "finished"  // terminal: elimination or forfeit
)

type Game struct {
	GameID       string    `dynamodbav:"gameId" json:"gameId"`             // Unique gameId
	Code         string    `dynamodbav:"code" json:"code"`                 // Short join code shared by the creator
	CreatorID    string    `dynamodbav:"creatorId" json:"creatorId"`       // Player who created the game
	InvitedID    string    `dynamodbav:"invitedId" json:"invitedId"`       // Player who joined via code; empty while forming
	State        GameState `dynamodbav:"state" json:"state"`               // forming, arranging, inCombat, finished
	MovingUserID string    `dynamodbav:"movingUserId" json:"movingUserId"` // Whose turn it is while in combat
	CreatorShips []int     `dynamodbav:"creatorShips" json:"creatorShips"` // Per-cell ship ids; empty until arranged
	InvitedShips []int     `dynamodbav:"invitedShips" json:"invitedShips"` // Per-cell ship ids; empty until arranged
	CreatorShots []int     `dynamodbav:"creatorShots" json:"creatorShots"` // Creator's shots at the invited field (0/1 per cell)
	InvitedShots []int     `dynamodbav:"invitedShots" json:"invitedShots"` // Invited player's shots at the creator field
}

// GamesTable is the DynamoDB table name for active games
const GamesTable = "Games"

// IsParticipant reports whether userID is one of the game's two players.
func (g *Game) IsParticipant(userID string) bool {
	return userID != "" && (g.CreatorID == userID || g.InvitedID == userID)
}

// Opponent returns the other participant's id, or "" if userID is not a participant.
func (g *Game) Opponent(userID string) string {
	if userID == "" {
		return ""
	}
	switch userID {
	case g.CreatorID:
		return g.InvitedID
	case g.InvitedID:
		return g.CreatorID
	}
	return ""
}
