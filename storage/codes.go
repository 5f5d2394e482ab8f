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

type InviteCodeStorage interface {
	Get(ctx context.Context, code string) (*InviteCode, error)
	GetAll(ctx context.Context) ([]*InviteCode, error)
	Put(ctx context.Context, inviteCode *InviteCode) error
	MarkUsed(ctx context.Context, code string) error
	Delete(ctx context.Context, code string) error
}

type DynamoInviteCodeStorage struct {
	Client    *dynamodb.Client
	TableName string
}

func (s *DynamoInviteCodeStorage) Get(ctx context.Context, code string) (*InviteCode, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"PK": code})
	if err != nil {
		logging.Log.Errorf("CODE: failed to marshal key: %v", err)
		return nil, err
	}

	out, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: &s.TableName,
		Key:       key,
	})
	if err != nil {
		logging.Log.Errorf("CODE: GetItem failed: %v", err)
		return nil, err
	}
	if out.Item == nil {
		return nil, ErrNotFound
	}

	var inviteCode InviteCode
	if err := attributevalue.UnmarshalMap(out.Item, &inviteCode); err != nil {
		logging.Log.Errorf("CODE: failed to unmarshal code: %v", err)
		return nil, err
	}
	return &inviteCode, nil
}

func (s *DynamoInviteCodeStorage) GetAll(ctx context.Context) ([]*InviteCode, error) {
	out, err := s.Client.Scan(ctx, &dynamodb.ScanInput{
		TableName: &s.TableName,
	})
	if err != nil {
		logging.Log.Errorf("CODE: scan failed: %v", err)
		return nil, err
	}

	var codes []*InviteCode
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &codes); err != nil {
		logging.Log.Errorf("CODE: failed to unmarshal code list: %v", err)
		return nil, err
	}
	return codes, nil
}

func (s *DynamoInviteCodeStorage) Put(ctx context.Context, inviteCode *InviteCode) error {
	item, err := attributevalue.MarshalMap(inviteCode)
	if err != nil {
		logging.Log.Errorf("CODE: failed to marshal code: %v", err)
		return err
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: &s.TableName,
		Item:      item,
	})
	if err != nil {
		logging.Log.Errorf("CODE: failed to put code: %v", err)
		return err
	}
	return nil
}

func (s *DynamoInviteCodeStorage) MarkUsed(ctx context.Context, code string) error {
	key, err := attributevalue.MarshalMap(map[string]string{"PK": code})
	if err != nil {
		logging.Log.Errorf("CODE: failed to marshal key: %v", err)
		return err
	}

	// Conditional so two racing registrations cannot both redeem the code.
	_, err = s.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           &s.TableName,
		Key:                 key,
		UpdateExpression:    aws.String("SET Used = :used"),
		ConditionExpression: aws.String("attribute_exists(PK) AND Used = :unused"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":used":   &types.AttributeValueMemberBOOL{Value: true},
			":unused": &types.AttributeValueMemberBOOL{Value: false},
		},
	})
	if err != nil {
		var cce *types.ConditionalCheckFailedException
		if errors.As(err, &cce) {
			logging.Log.Warnf("CODE: code %s already redeemed", code)
			return ErrAlreadyExists
		}
		logging.Log.Errorf("CODE: failed to mark code %s as used: %v", code, err)
		return err
	}
	return nil
}

func (s *DynamoInviteCodeStorage) Delete(ctx context.Context, code string) error {
	key, err := attributevalue.MarshalMap(map[string]string{"PK": code})
	if err != nil {
		logging.Log.Errorf("CODE: failed to marshal delete key: %v", err)
		return err
	}

	_, err = s.Client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: &s.TableName,
		Key:       key,
	})
	if err != nil {
		logging.Log.Errorf("CODE: failed to delete code %s: %v", code, err)
		return err
	}
	logging.Log.Infof("CODE: deleted code %s", code)
	return nil
}
