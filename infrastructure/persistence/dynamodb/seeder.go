package dynamodb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"

	"ziwei-backend/domain/knowledge"
)

// Seeder writes a corpus into the knowledge table in the layout
// KnowledgeStore reads. Sort keys carry an ordinal prefix so Query returns
// records in corpus order.
type Seeder struct {
	client    *dynamodb.Client
	tableName string
	logger    *zap.Logger
}

// NewSeeder creates a corpus seeder for the given table
func NewSeeder(client *dynamodb.Client, tableName string, logger *zap.Logger) *Seeder {
	return &Seeder{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

// Seed writes every record from the source store into the table
func (s *Seeder) Seed(ctx context.Context, source knowledge.KnowledgeStore) error {
	palaces, err := source.GetAllPalaces(ctx)
	if err != nil {
		return err
	}
	for _, p := range palaces {
		if err := s.putRecord(ctx, entityPalace, fmt.Sprintf("%02d#%s", p.Number, p.ID), p); err != nil {
			return err
		}
	}

	stars, err := source.GetAllStars(ctx)
	if err != nil {
		return err
	}
	for _, st := range stars {
		if err := s.putRecord(ctx, entityStar, fmt.Sprintf("%02d#%s", st.Number, st.ID), st); err != nil {
			return err
		}
	}

	transformations, err := source.GetAllTransformations(ctx)
	if err != nil {
		return err
	}
	for _, tr := range transformations {
		if err := s.putRecord(ctx, entityTransformation, fmt.Sprintf("%02d#%s", tr.Number, tr.ID), tr); err != nil {
			return err
		}
	}

	benefic, err := source.GetBeneficStars(ctx)
	if err != nil {
		return err
	}
	for i, b := range benefic {
		if err := s.putRecord(ctx, entityBenefic, fmt.Sprintf("%02d#%s", i+1, b.ID), b); err != nil {
			return err
		}
	}

	malefic, err := source.GetMaleficStars(ctx)
	if err != nil {
		return err
	}
	for i, m := range malefic {
		if err := s.putRecord(ctx, entityMalefic, fmt.Sprintf("%02d#%s", i+1, m.ID), m); err != nil {
			return err
		}
	}

	rules, err := source.GetRules(ctx)
	if err != nil {
		return err
	}
	for i, r := range rules {
		if err := s.putRecord(ctx, entityRule, fmt.Sprintf("%03d#%s", i+1, r.ID), r); err != nil {
			return err
		}
	}

	s.logger.Info("Seeded knowledge table",
		zap.String("table", s.tableName),
		zap.Int("palaces", len(palaces)),
		zap.Int("stars", len(stars)),
		zap.Int("transformations", len(transformations)),
		zap.Int("beneficStars", len(benefic)),
		zap.Int("maleficStars", len(malefic)),
		zap.Int("rules", len(rules)),
	)
	return nil
}

func (s *Seeder) putRecord(ctx context.Context, entityType, sortKey string, record interface{}) error {
	av, err := attributevalue.MarshalMap(record)
	if err != nil {
		return fmt.Errorf("failed to marshal %s record: %w", entityType, err)
	}
	av["PK"] = &types.AttributeValueMemberS{Value: entityType}
	av["SK"] = &types.AttributeValueMemberS{Value: fmt.Sprintf("%s#%s", entityType, sortKey)}
	av["EntityType"] = &types.AttributeValueMemberS{Value: entityType}

	if _, err := s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      av,
	}); err != nil {
		return fmt.Errorf("failed to put %s record: %w", entityType, err)
	}
	return nil
}
