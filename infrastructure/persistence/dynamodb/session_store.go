package dynamodb

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"

	"ziwei-backend/domain/core/entities"
	"ziwei-backend/domain/core/valueobjects"
	apperrors "ziwei-backend/pkg/errors"
)

// SessionStore persists conversations in DynamoDB with a native TTL
// attribute. It implements ports.SessionStore.
type SessionStore struct {
	client    *dynamodb.Client
	tableName string
	ttl       time.Duration
	logger    *zap.Logger
}

// NewSessionStore creates a DynamoDB-backed session store
func NewSessionStore(client *dynamodb.Client, tableName string, ttl time.Duration, logger *zap.Logger) *SessionStore {
	return &SessionStore{
		client:    client,
		tableName: tableName,
		ttl:       ttl,
		logger:    logger,
	}
}

// sessionItem is the DynamoDB item layout for a conversation
type sessionItem struct {
	PK           string                 `dynamodbav:"PK"` // SESSION#<id>
	SK           string                 `dynamodbav:"SK"` // METADATA
	EntityType   string                 `dynamodbav:"EntityType"`
	SessionID    string                 `dynamodbav:"SessionID"`
	Conversation *entities.Conversation `dynamodbav:"Conversation"`
	UpdatedAt    string                 `dynamodbav:"UpdatedAt"`
	TTL          int64                  `dynamodbav:"TTL"`
}

// Save persists a conversation, refreshing its expiry window
func (s *SessionStore) Save(ctx context.Context, conv *entities.Conversation) error {
	expiresAt := time.Now().Add(s.ttl)
	item := sessionItem{
		PK:           fmt.Sprintf("SESSION#%s", conv.ID.String()),
		SK:           "METADATA",
		EntityType:   "SESSION",
		SessionID:    conv.ID.String(),
		Conversation: conv,
		UpdatedAt:    conv.UpdatedAt.Format(time.RFC3339),
		TTL:          expiresAt.Unix(),
	}

	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if _, err := s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      av,
	}); err != nil {
		s.logger.Error("Failed to save session",
			zap.Error(err),
			zap.String("sessionID", conv.ID.String()),
		)
		return apperrors.NewDatabaseError("save session", err)
	}

	return nil
}

// GetByID retrieves a conversation by session id
func (s *SessionStore) GetByID(ctx context.Context, id valueobjects.SessionID) (*entities.Conversation, error) {
	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key:       sessionKey(id),
	})
	if err != nil {
		s.logger.Error("Failed to get session",
			zap.Error(err),
			zap.String("sessionID", id.String()),
		)
		return nil, apperrors.NewDatabaseError("get session", err)
	}
	if out.Item == nil {
		return nil, apperrors.NewNotFoundError("session")
	}

	var item sessionItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	// TTL deletion lags; treat items past expiry as already gone
	if item.TTL > 0 && time.Now().Unix() > item.TTL {
		return nil, apperrors.NewNotFoundError("session")
	}
	if item.Conversation == nil {
		return nil, apperrors.NewNotFoundError("session")
	}

	return item.Conversation, nil
}

// Delete removes a conversation
func (s *SessionStore) Delete(ctx context.Context, id valueobjects.SessionID) error {
	if _, err := s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.tableName),
		Key:       sessionKey(id),
	}); err != nil {
		s.logger.Error("Failed to delete session",
			zap.Error(err),
			zap.String("sessionID", id.String()),
		)
		return apperrors.NewDatabaseError("delete session", err)
	}
	return nil
}

// DeleteExpired is a no-op here: DynamoDB's native TTL removes expired
// sessions, and GetByID filters items the sweeper has not reached yet.
func (s *SessionStore) DeleteExpired(ctx context.Context) (int, error) {
	return 0, nil
}

func sessionKey(id valueobjects.SessionID) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: fmt.Sprintf("SESSION#%s", id.String())},
		"SK": &types.AttributeValueMemberS{Value: "METADATA"},
	}
}
