/*
 * Copyright © 2025 Casetrail Systems Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/casetrail/dataset"
	"github.com/casetrail/dataset/errors"
	"github.com/casetrail/dataset/registry"
)

const (
	partitionAttr = "PK"
	sortAttr      = "SK"

	// batchWriteLimit is the DynamoDB BatchWriteItem request cap.
	batchWriteLimit = 25
)

// Store implements datastore.DataStore[T] using AWS DynamoDB as the
// underlying data store. Keys are derived from the entity identity through
// the key map registered for T.
type Store[T dataset.Entity] struct {
	client    *sdk.Client
	tableName string
	keyMap    registry.KeyMap
}

// NewClient initializes a DynamoDB client using static AWS credentials.
func NewClient(awsAccessKey, awsSecretKey, awsRegion string) (*sdk.Client, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(awsRegion),
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(awsAccessKey, awsSecretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	return sdk.NewFromConfig(cfg), nil
}

// New constructs a Store for type T against the given table. T must have a
// key map registered in the registry package.
func New[T dataset.Entity](client *sdk.Client, tableName string) (*Store[T], error) {
	km, ok := registry.GetKeyMap[T]()
	if !ok {
		var zero T
		return nil, errors.NewKeyMapError(fmt.Sprintf("%T", zero))
	}

	return &Store[T]{
		client:    client,
		tableName: tableName,
		keyMap:    km,
	}, nil
}

// GetOne retrieves a single entity by identity. A missing entity is
// reported with an error matching errors.ErrNotFound.
func (s *Store[T]) GetOne(ctx context.Context, id string) (*T, error) {
	out, err := s.client.GetItem(ctx, &sdk.GetItemInput{
		TableName: &s.tableName,
		Key:       s.key(id),
	})
	if err != nil {
		return nil, fmt.Errorf("GetItem error: %w", err)
	}
	if out.Item == nil {
		var zero T
		return nil, errors.NewNotFoundError(fmt.Sprintf("%T", zero), id)
	}

	result := new(T)
	if err := attributevalue.UnmarshalMap(out.Item, result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal item: %w", err)
	}
	return result, nil
}

// Put stores the given entity, replacing any existing item under the same
// identity.
func (s *Store[T]) Put(ctx context.Context, entity T) error {
	av, err := s.marshal(entity)
	if err != nil {
		return err
	}

	_, err = s.client.PutItem(ctx, &sdk.PutItemInput{
		TableName: &s.tableName,
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("PutItem failed: %w", err)
	}
	return nil
}

// PutAll stores every entity in the batch using BatchWriteItem, chunked to
// the DynamoDB request cap. Unprocessed items are retried once per chunk.
func (s *Store[T]) PutAll(ctx context.Context, entities []T) error {
	for start := 0; start < len(entities); start += batchWriteLimit {
		end := start + batchWriteLimit
		if end > len(entities) {
			end = len(entities)
		}

		requests := make([]types.WriteRequest, 0, end-start)
		for _, entity := range entities[start:end] {
			av, err := s.marshal(entity)
			if err != nil {
				return err
			}
			requests = append(requests, types.WriteRequest{
				PutRequest: &types.PutRequest{Item: av},
			})
		}

		out, err := s.client.BatchWriteItem(ctx, &sdk.BatchWriteItemInput{
			RequestItems: map[string][]types.WriteRequest{
				s.tableName: requests,
			},
		})
		if err != nil {
			return fmt.Errorf("BatchWriteItem failed: %w", err)
		}

		if unprocessed := out.UnprocessedItems[s.tableName]; len(unprocessed) > 0 {
			retry, err := s.client.BatchWriteItem(ctx, &sdk.BatchWriteItemInput{
				RequestItems: map[string][]types.WriteRequest{
					s.tableName: unprocessed,
				},
			})
			if err != nil {
				return fmt.Errorf("BatchWriteItem retry failed: %w", err)
			}
			if len(retry.UnprocessedItems[s.tableName]) > 0 {
				return fmt.Errorf("BatchWriteItem left %d unprocessed items",
					len(retry.UnprocessedItems[s.tableName]))
			}
		}
	}
	return nil
}

// Delete removes the entity stored under id. Deleting an unknown id is not
// an error.
func (s *Store[T]) Delete(ctx context.Context, id string) error {
	_, err := s.client.DeleteItem(ctx, &sdk.DeleteItemInput{
		TableName: &s.tableName,
		Key:       s.key(id),
	})
	if err != nil {
		return fmt.Errorf("DeleteItem failed: %w", err)
	}
	return nil
}

// List returns every entity in the collection by querying the shared
// partition, following pagination until exhaustion.
func (s *Store[T]) List(ctx context.Context) ([]T, error) {
	keyCond := fmt.Sprintf("%s = :pkVal", partitionAttr)
	exprVals := map[string]types.AttributeValue{
		":pkVal": &types.AttributeValueMemberS{Value: s.keyMap.PartitionKey("")},
	}

	var out []T
	var startKey map[string]types.AttributeValue
	for {
		page, err := s.client.Query(ctx, &sdk.QueryInput{
			TableName:                 &s.tableName,
			KeyConditionExpression:    aws.String(keyCond),
			ExpressionAttributeValues: exprVals,
			ExclusiveStartKey:         startKey,
		})
		if err != nil {
			return nil, fmt.Errorf("Query error: %w", err)
		}

		for _, item := range page.Items {
			result := new(T)
			if err := attributevalue.UnmarshalMap(item, result); err != nil {
				return nil, fmt.Errorf("failed to unmarshal item: %w", err)
			}
			out = append(out, *result)
		}

		if page.LastEvaluatedKey == nil {
			break
		}
		startKey = page.LastEvaluatedKey
	}
	return out, nil
}

func (s *Store[T]) key(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		partitionAttr: &types.AttributeValueMemberS{Value: s.keyMap.PartitionKey(id)},
		sortAttr:      &types.AttributeValueMemberS{Value: s.keyMap.SortKey(id)},
	}
}

func (s *Store[T]) marshal(entity T) (map[string]types.AttributeValue, error) {
	av, err := attributevalue.MarshalMap(entity)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entity: %w", err)
	}

	id := entity.ID()
	av[partitionAttr] = &types.AttributeValueMemberS{Value: s.keyMap.PartitionKey(id)}
	av[sortAttr] = &types.AttributeValueMemberS{Value: s.keyMap.SortKey(id)}
	return av, nil
}
