package services

import (
	"context"
	"fmt"
	"os"

	"battleship_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// GameStore is the persistence contract for game records. Lookups return
// (nil, nil) when no game matches; errors are reserved for store failures.
type GameStore interface {
	Create(ctx context.Context, game *models.Game) error
	FindByID(ctx context.Context, id string) (*models.Game, error)
	FindByCode(ctx context.Context, code string) (*models.Game, error)
	FindByParticipant(ctx context.Context, userID string) (*models.Game, error)
	Update(ctx context.Context, game *models.Game) error
	Delete(ctx context.Context, id string) error
}

// DynamoGameStore stores games in a DynamoDB table keyed by gameId.
type DynamoGameStore struct {
	Dynamo *DynamoService
	Table  string
}

// NewDynamoGameStore creates a store for the table named by GAMES_TABLE,
// falling back to models.GamesTable.
func NewDynamoGameStore(dynamo *DynamoService) *DynamoGameStore {
	table := os.Getenv("GAMES_TABLE")
	if table == "" {
		table = models.GamesTable
	}
	return &DynamoGameStore{Dynamo: dynamo, Table: table}
}

func (gs *DynamoGameStore) Create(ctx context.Context, game *models.Game) error {
	return gs.Dynamo.PutItem(ctx, gs.Table, game)
}

func (gs *DynamoGameStore) Update(ctx context.Context, game *models.Game) error {
	return gs.Dynamo.PutItem(ctx, gs.Table, game)
}

func (gs *DynamoGameStore) FindByID(ctx context.Context, id string) (*models.Game, error) {
	key := map[string]types.AttributeValue{
		"gameId": &types.AttributeValueMemberS{Value: id},
	}
	item, err := gs.Dynamo.GetItem(ctx, gs.Table, key)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	var game models.Game
	if err := attributevalue.UnmarshalMap(item, &game); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game %s: %w", id, err)
	}
	return &game, nil
}

func (gs *DynamoGameStore) FindByCode(ctx context.Context, code string) (*models.Game, error) {
	return gs.scanOne(ctx, "code = :code", map[string]types.AttributeValue{
		":code": &types.AttributeValueMemberS{Value: code},
	})
}

func (gs *DynamoGameStore) FindByParticipant(ctx context.Context, userID string) (*models.Game, error) {
	return gs.scanOne(ctx, "creatorId = :u OR invitedId = :u", map[string]types.AttributeValue{
		":u": &types.AttributeValueMemberS{Value: userID},
	})
}

func (gs *DynamoGameStore) Delete(ctx context.Context, id string) error {
	key := map[string]types.AttributeValue{
		"gameId": &types.AttributeValueMemberS{Value: id},
	}
	return gs.Dynamo.DeleteItem(ctx, gs.Table, key)
}

// scanOne runs a filtered scan and returns the first match. Active games
// number at most a few thousand, so a scan is acceptable here.
func (gs *DynamoGameStore) scanOne(ctx context.Context, filter string, values map[string]types.AttributeValue) (*models.Game, error) {
	var games []models.Game
	if err := gs.Dynamo.ScanWithFilter(ctx, gs.Table, filter, values, &games); err != nil {
		return nil, err
	}
	if len(games) == 0 {
		return nil, nil
	}
	return &games[0], nil
}
