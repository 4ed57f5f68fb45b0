// Package dynamodb holds the DynamoDB-backed knowledge store, session store,
// and session lock. Both tables use the single-table PK/SK layout.
package dynamodb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"

	"ziwei-backend/domain/knowledge"
)

// Corpus entity type partition keys. Record ids go in SK, so one Query per
// kind returns the whole collection in id order.
const (
	entityPalace         = "PALACE"
	entityStar           = "STAR"
	entityTransformation = "TRANSFORMATION"
	entityBenefic        = "BENEFIC_STAR"
	entityMalefic        = "MALEFIC_STAR"
	entityRule           = "RULE"
)

// KnowledgeStore reads the reference corpus from a DynamoDB table. It
// implements knowledge.KnowledgeStore.
type KnowledgeStore struct {
	client    *dynamodb.Client
	tableName string
	logger    *zap.Logger
}

// NewKnowledgeStore creates a DynamoDB-backed knowledge store
func NewKnowledgeStore(client *dynamodb.Client, tableName string, logger *zap.Logger) *KnowledgeStore {
	return &KnowledgeStore{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

// GetAllPalaces returns every palace record
func (s *KnowledgeStore) GetAllPalaces(ctx context.Context) ([]knowledge.Palace, error) {
	items, err := s.queryKind(ctx, entityPalace)
	if err != nil {
		return nil, err
	}
	var palaces []knowledge.Palace
	if err := attributevalue.UnmarshalListOfMaps(items, &palaces); err != nil {
		return nil, fmt.Errorf("failed to unmarshal palaces: %w", err)
	}
	return palaces, nil
}

// GetAllStars returns every major star record
func (s *KnowledgeStore) GetAllStars(ctx context.Context) ([]knowledge.Star, error) {
	items, err := s.queryKind(ctx, entityStar)
	if err != nil {
		return nil, err
	}
	var stars []knowledge.Star
	if err := attributevalue.UnmarshalListOfMaps(items, &stars); err != nil {
		return nil, fmt.Errorf("failed to unmarshal stars: %w", err)
	}
	return stars, nil
}

// GetAllTransformations returns the four transformation records
func (s *KnowledgeStore) GetAllTransformations(ctx context.Context) ([]knowledge.Transformation, error) {
	items, err := s.queryKind(ctx, entityTransformation)
	if err != nil {
		return nil, err
	}
	var transformations []knowledge.Transformation
	if err := attributevalue.UnmarshalListOfMaps(items, &transformations); err != nil {
		return nil, fmt.Errorf("failed to unmarshal transformations: %w", err)
	}
	return transformations, nil
}

// GetBeneficStars returns the auxiliary benefic star records
func (s *KnowledgeStore) GetBeneficStars(ctx context.Context) ([]knowledge.BeneficStar, error) {
	items, err := s.queryKind(ctx, entityBenefic)
	if err != nil {
		return nil, err
	}
	var benefic []knowledge.BeneficStar
	if err := attributevalue.UnmarshalListOfMaps(items, &benefic); err != nil {
		return nil, fmt.Errorf("failed to unmarshal benefic stars: %w", err)
	}
	return benefic, nil
}

// GetMaleficStars returns the auxiliary malefic star records
func (s *KnowledgeStore) GetMaleficStars(ctx context.Context) ([]knowledge.MaleficStar, error) {
	items, err := s.queryKind(ctx, entityMalefic)
	if err != nil {
		return nil, err
	}
	var malefic []knowledge.MaleficStar
	if err := attributevalue.UnmarshalListOfMaps(items, &malefic); err != nil {
		return nil, fmt.Errorf("failed to unmarshal malefic stars: %w", err)
	}
	return malefic, nil
}

// GetRules returns every interpretation rule. Rules carry an ordinal in SK
// so the Query preserves declaration order.
func (s *KnowledgeStore) GetRules(ctx context.Context) ([]knowledge.Rule, error) {
	items, err := s.queryKind(ctx, entityRule)
	if err != nil {
		return nil, err
	}
	var rules []knowledge.Rule
	if err := attributevalue.UnmarshalListOfMaps(items, &rules); err != nil {
		return nil, fmt.Errorf("failed to unmarshal rules: %w", err)
	}
	return rules, nil
}

// queryKind pages through every item under one entity-type partition
func (s *KnowledgeStore) queryKind(ctx context.Context, entityType string) ([]map[string]types.AttributeValue, error) {
	keyCond := expression.Key("PK").Equal(expression.Value(entityType))
	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build query expression: %w", err)
	}

	var items []map[string]types.AttributeValue
	var lastKey map[string]types.AttributeValue

	for {
		out, err := s.client.Query(ctx, &dynamodb.QueryInput{
			TableName:                 aws.String(s.tableName),
			KeyConditionExpression:    expr.KeyCondition(),
			ExpressionAttributeNames:  expr.Names(),
			ExpressionAttributeValues: expr.Values(),
			ExclusiveStartKey:         lastKey,
		})
		if err != nil {
			s.logger.Error("Failed to query knowledge table",
				zap.Error(err),
				zap.String("entityType", entityType),
			)
			return nil, fmt.Errorf("failed to query %s records: %w", entityType, err)
		}

		items = append(items, out.Items...)
		if out.LastEvaluatedKey == nil {
			break
		}
		lastKey = out.LastEvaluatedKey
	}

	s.logger.Debug("Loaded knowledge records",
		zap.String("entityType", entityType),
		zap.Int("count", len(items)),
	)
	return items, nil
}
