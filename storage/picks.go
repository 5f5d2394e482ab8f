package storage

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/jday1/euros/logging"
)

type PickStorage interface {
	GetAll(ctx context.Context) ([]*Pick, error)
	GetByUser(ctx context.Context, username string) ([]*Pick, error)
	ReplaceForUser(ctx context.Context, username string, picks []*Pick) error
	DeleteAll(ctx context.Context) error
}

type DynamoPickStorage struct {
	Client    *dynamodb.Client
	TableName string
}

func (s *DynamoPickStorage) GetAll(ctx context.Context) ([]*Pick, error) {
	out, err := s.Client.Scan(ctx, &dynamodb.ScanInput{
		TableName: &s.TableName,
	})
	if err != nil {
		logging.Log.Errorf("PICK: scan failed: %v", err)
		return nil, err
	}

	var picks []*Pick
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &picks); err != nil {
		logging.Log.Errorf("PICK: failed to unmarshal pick list: %v", err)
		return nil, err
	}
	return picks, nil
}

func (s *DynamoPickStorage) GetByUser(ctx context.Context, username string) ([]*Pick, error) {
	input := &dynamodb.QueryInput{
		TableName:              &s.TableName,
		KeyConditionExpression: aws.String("PK = :username"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":username": &types.AttributeValueMemberS{Value: username},
		},
	}

	output, err := s.Client.Query(ctx, input)
	if err != nil {
		logging.Log.Errorf("PICK: failed to query picks for %s: %v", username, err)
		return nil, err
	}

	var picks []*Pick
	if err := attributevalue.UnmarshalListOfMaps(output.Items, &picks); err != nil {
		logging.Log.Errorf("PICK: failed to unmarshal picks for %s: %v", username, err)
		return nil, err
	}
	return picks, nil
}

// ReplaceForUser overwrites the user's whole allocation in one batch. The
// play endpoint always submits a full set of teams, so stale rows are
// overwritten rather than merged.
func (s *DynamoPickStorage) ReplaceForUser(ctx context.Context, username string, picks []*Pick) error {
	writeRequests := make([]types.WriteRequest, 0, len(picks))
	for _, pick := range picks {
		item, err := attributevalue.MarshalMap(pick)
		if err != nil {
			logging.Log.Errorf("PICK: failed to marshal pick for %s/%s: %v", username, pick.Team, err)
			return err
		}
		writeRequests = append(writeRequests, types.WriteRequest{
			PutRequest: &types.PutRequest{Item: item},
		})
	}

	for i := 0; i < len(writeRequests); i += 25 {
		end := i + 25
		if end > len(writeRequests) {
			end = len(writeRequests)
		}
		_, err := s.Client.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
			RequestItems: map[string][]types.WriteRequest{
				s.TableName: writeRequests[i:end],
			},
		})
		if err != nil {
			logging.Log.Errorf("PICK: batch write for %s failed: %v", username, err)
			return err
		}
	}

	logging.Log.Infof("PICK: replaced %d picks for %s", len(picks), username)
	return nil
}

func (s *DynamoPickStorage) DeleteAll(ctx context.Context) error {
	var lastEvaluatedKey map[string]types.AttributeValue

	for {
		scanOutput, err := s.Client.Scan(ctx, &dynamodb.ScanInput{
			TableName:            &s.TableName,
			ExclusiveStartKey:    lastEvaluatedKey,
			ProjectionExpression: aws.String("PK, SK"),
		})
		if err != nil {
			logging.Log.Errorf("PICK: scan for delete failed: %v", err)
			return err
		}

		var writeRequests []types.WriteRequest
		for _, item := range scanOutput.Items {
			writeRequests = append(writeRequests, types.WriteRequest{
				DeleteRequest: &types.DeleteRequest{
					Key: map[string]types.AttributeValue{
						"PK": item["PK"],
						"SK": item["SK"],
					},
				},
			})
		}

		for i := 0; i < len(writeRequests); i += 25 {
			end := i + 25
			if end > len(writeRequests) {
				end = len(writeRequests)
			}
			_, err := s.Client.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
				RequestItems: map[string][]types.WriteRequest{
					s.TableName: writeRequests[i:end],
				},
			})
			if err != nil {
				logging.Log.Errorf("PICK: batch delete failed: %v", err)
				return err
			}
			logging.Log.Infof("PICK: deleted batch of %d items", end-i)
		}

		if scanOutput.LastEvaluatedKey == nil {
			break
		}
		lastEvaluatedKey = scanOutput.LastEvaluatedKey
	}

	return nil
}
