package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"ziwei-backend/application/ports"
)

const (
	lockDuration      = 30 * time.Second
	lockRetryInterval = 100 * time.Millisecond
)

// SessionLock serializes concurrent turns on one session across processes
// using DynamoDB conditional writes. It implements ports.SessionLock.
type SessionLock struct {
	client    *dynamodb.Client
	tableName string
	logger    *zap.Logger
}

// NewSessionLock creates a DynamoDB-backed session lock
func NewSessionLock(client *dynamodb.Client, tableName string, logger *zap.Logger) *SessionLock {
	return &SessionLock{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

// AcquireLock blocks until the session lock is held or the context ends.
// Held locks expire after lockDuration so a crashed holder cannot wedge the
// session forever.
func (l *SessionLock) AcquireLock(ctx context.Context, sessionID string) (ports.ReleaseFunc, error) {
	lockID := uuid.New().String()
	retryInterval := lockRetryInterval

	for {
		acquired, err := l.tryAcquire(ctx, sessionID, lockID)
		if err != nil {
			return nil, err
		}
		if acquired {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(retryInterval):
			if retryInterval < time.Second {
				retryInterval = time.Duration(float64(retryInterval) * 1.5)
			}
		}
	}

	release := func(ctx context.Context) error {
		return l.release(ctx, sessionID, lockID)
	}
	return release, nil
}

func (l *SessionLock) tryAcquire(ctx context.Context, sessionID, lockID string) (bool, error) {
	now := time.Now()
	expiresAt := now.Add(lockDuration)

	item := map[string]types.AttributeValue{
		"PK":        &types.AttributeValueMemberS{Value: fmt.Sprintf("LOCK#%s", sessionID)},
		"SK":        &types.AttributeValueMemberS{Value: "LOCK"},
		"LockID":    &types.AttributeValueMemberS{Value: lockID},
		"ExpiresAt": &types.AttributeValueMemberS{Value: expiresAt.Format(time.RFC3339)},
		"TTL":       &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", expiresAt.Unix())},
	}

	_, err := l.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(l.tableName),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(PK) OR ExpiresAt < :now"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":now": &types.AttributeValueMemberS{Value: now.Format(time.RFC3339)},
		},
	})
	if err != nil {
		var conditionFailed *types.ConditionalCheckFailedException
		if errors.As(err, &conditionFailed) {
			return false, nil
		}
		return false, fmt.Errorf("failed to acquire session lock: %w", err)
	}

	l.logger.Debug("Session lock acquired",
		zap.String("sessionID", sessionID),
		zap.String("lockID", lockID),
	)
	return true, nil
}

func (l *SessionLock) release(ctx context.Context, sessionID, lockID string) error {
	_, err := l.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(l.tableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: fmt.Sprintf("LOCK#%s", sessionID)},
			"SK": &types.AttributeValueMemberS{Value: "LOCK"},
		},
		ConditionExpression: aws.String("LockID = :lockId"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":lockId": &types.AttributeValueMemberS{Value: lockID},
		},
	})
	if err != nil {
		var conditionFailed *types.ConditionalCheckFailedException
		if errors.As(err, &conditionFailed) {
			// Expired and taken over; nothing left to release
			l.logger.Warn("Session lock already released or reassigned",
				zap.String("sessionID", sessionID),
				zap.String("lockID", lockID),
			)
			return nil
		}
		return fmt.Errorf("failed to release session lock: %w", err)
	}
	return nil
}
