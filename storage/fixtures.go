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

type FixtureStorage interface {
	Get(ctx context.Context, matchNumber int) (*Fixture, error)
	GetAll(ctx context.Context) ([]*Fixture, error)
	Put(ctx context.Context, fixture *Fixture) error
	SetResult(ctx context.Context, matchNumber int, result string) error
}

type DynamoFixtureStorage struct {
	Client    *dynamodb.Client
	TableName string
}

func (s *DynamoFixtureStorage) GetAll(ctx context.Context) ([]*Fixture, error) {
	out, err := s.Client.Scan(ctx, &dynamodb.ScanInput{
		TableName: &s.TableName,
	})
	if err != nil {
		logging.Log.Errorf("FIXTURE: scan failed: %v", err)
		return nil, err
	}

	var fixtures []*Fixture
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &fixtures); err != nil {
		logging.Log.Errorf("FIXTURE: failed to unmarshal fixture list: %v", err)
		return nil, err
	}
	return fixtures, nil
}

func (s *DynamoFixtureStorage) Get(ctx context.Context, matchNumber int) (*Fixture, error) {
	key, err := attributevalue.MarshalMap(map[string]int{"PK": matchNumber})
	if err != nil {
		logging.Log.Errorf("FIXTURE: failed to marshal key for match %d: %v", matchNumber, err)
		return nil, err
	}

	out, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: &s.TableName,
		Key:       key,
	})
	if err != nil {
		logging.Log.Errorf("FIXTURE: GetItem for match %d failed: %v", matchNumber, err)
		return nil, err
	}
	if out.Item == nil {
		return nil, ErrNotFound
	}

	var fixture Fixture
	if err := attributevalue.UnmarshalMap(out.Item, &fixture); err != nil {
		logging.Log.Errorf("FIXTURE: failed to unmarshal fixture: %v", err)
		return nil, err
	}
	return &fixture, nil
}

func (s *DynamoFixtureStorage) Put(ctx context.Context, fixture *Fixture) error {
	item, err := attributevalue.MarshalMap(fixture)
	if err != nil {
		logging.Log.Errorf("FIXTURE: failed to marshal fixture %d: %v", fixture.MatchNumber, err)
		return err
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: &s.TableName,
		Item:      item,
	})
	if err != nil {
		logging.Log.Errorf("FIXTURE: failed to put fixture %d: %v", fixture.MatchNumber, err)
		return err
	}
	return nil
}

func (s *DynamoFixtureStorage) SetResult(ctx context.Context, matchNumber int, result string) error {
	key, err := attributevalue.MarshalMap(map[string]int{"PK": matchNumber})
	if err != nil {
		logging.Log.Errorf("FIXTURE: failed to marshal key for match %d: %v", matchNumber, err)
		return err
	}

	_, err = s.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           &s.TableName,
		Key:                 key,
		UpdateExpression:    aws.String("SET #result = :result"),
		ConditionExpression: aws.String("attribute_exists(PK)"),
		ExpressionAttributeNames: map[string]string{
			"#result": "Result",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":result": &types.AttributeValueMemberS{Value: result},
		},
	})
	if err != nil {
		var cce *types.ConditionalCheckFailedException
		if errors.As(err, &cce) {
			logging.Log.Warnf("FIXTURE: match %d does not exist", matchNumber)
			return ErrNotFound
		}
		logging.Log.Errorf("FIXTURE: failed to set result for match %d: %v", matchNumber, err)
		return err
	}
	logging.Log.Infof("FIXTURE: recorded result %q for match %d", result, matchNumber)
	return nil
}
