package storage

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/jday1/euros/logging"
)

type PlayerStorage interface {
	Get(ctx context.Context, username string) (*Player, error)
	GetAll(ctx context.Context) ([]*Player, error)
	Create(ctx context.Context, player *Player) error
}

type DynamoPlayerStorage struct {
	Client    *dynamodb.Client
	TableName string
}

func (s *DynamoPlayerStorage) Get(ctx context.Context, username string) (*Player, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"PK": username})
	if err != nil {
		logging.Log.Errorf("PLAYER: failed to marshal key: %v", err)
		return nil, err
	}

	out, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: &s.TableName,
		Key:       key,
	})
	if err != nil {
		logging.Log.Errorf("PLAYER: GetItem for %s failed: %v", username, err)
		return nil, err
	}
	if out.Item == nil {
		return nil, ErrNotFound
	}

	var player Player
	if err := attributevalue.UnmarshalMap(out.Item, &player); err != nil {
		logging.Log.Errorf("PLAYER: failed to unmarshal player: %v", err)
		return nil, err
	}
	return &player, nil
}

func (s *DynamoPlayerStorage) GetAll(ctx context.Context) ([]*Player, error) {
	out, err := s.Client.Scan(ctx, &dynamodb.ScanInput{
		TableName: &s.TableName,
	})
	if err != nil {
		logging.Log.Errorf("PLAYER: scan failed: %v", err)
		return nil, err
	}

	var players []*Player
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &players); err != nil {
		logging.Log.Errorf("PLAYER: failed to unmarshal player list: %v", err)
		return nil, err
	}
	return players, nil
}

func (s *DynamoPlayerStorage) Create(ctx context.Context, player *Player) error {
	item, err := attributevalue.MarshalMap(player)
	if err != nil {
		logging.Log.Errorf("PLAYER: failed to marshal player: %v", err)
		return err
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           &s.TableName,
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(PK)"),
	})
	if err != nil {
		var cce *types.ConditionalCheckFailedException
		if errors.As(err, &cce) {
			logging.Log.Warnf("PLAYER: player %s already exists", player.Username)
			return ErrAlreadyExists
		}
		logging.Log.Errorf("PLAYER: failed to create player: %v", err)
		return err
	}
	return nil
}
