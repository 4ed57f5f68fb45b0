package events

import (
	"time"

	"ziwei-backend/domain/core/valueobjects"
)

// DomainEvent is the base interface for all domain events
// Events represent something that has happened in the past
type DomainEvent interface {
	GetAggregateID() string
	GetEventType() string
	GetTimestamp() time.Time
	GetVersion() int
}

// BaseEvent provides common event fields
type BaseEvent struct {
	AggregateID string    `json:"aggregate_id"`
	EventType   string    `json:"event_type"`
	Timestamp   time.Time `json:"timestamp"`
	Version     int       `json:"version"`
}

func (e BaseEvent) GetAggregateID() string  { return e.AggregateID }
func (e BaseEvent) GetEventType() string    { return e.EventType }
func (e BaseEvent) GetTimestamp() time.Time { return e.Timestamp }
func (e BaseEvent) GetVersion() int         { return e.Version }

// Interpretation Events

// ChartInterpreted is raised when a chart interpretation completes
type ChartInterpreted struct {
	BaseEvent
	RequestID        string `json:"request_id"`
	MatchedRuleCount int    `json:"matched_rule_count"`
	DimensionCount   int    `json:"dimension_count"`
}

// NewChartInterpreted creates a ChartInterpreted event
func NewChartInterpreted(requestID string, matchedRules, dimensions int, timestamp time.Time) ChartInterpreted {
	return ChartInterpreted{
		BaseEvent: BaseEvent{
			AggregateID: requestID,
			EventType:   "chart.interpreted",
			Timestamp:   timestamp,
			Version:     1,
		},
		RequestID:        requestID,
		MatchedRuleCount: matchedRules,
		DimensionCount:   dimensions,
	}
}

// ChartEnriched is raised when a chart enrichment completes
type ChartEnriched struct {
	BaseEvent
	RequestID      string `json:"request_id"`
	PalacesCovered int    `json:"palaces_covered"`
	StarsCovered   int    `json:"stars_covered"`
}

// NewChartEnriched creates a ChartEnriched event
func NewChartEnriched(requestID string, palaces, stars int, timestamp time.Time) ChartEnriched {
	return ChartEnriched{
		BaseEvent: BaseEvent{
			AggregateID: requestID,
			EventType:   "chart.enriched",
			Timestamp:   timestamp,
			Version:     1,
		},
		RequestID:      requestID,
		PalacesCovered: palaces,
		StarsCovered:   stars,
	}
}

// Compatibility Events

// CompatibilityScored is raised when a chart pair has been scored
type CompatibilityScored struct {
	BaseEvent
	RequestID        string `json:"request_id"`
	Score            int    `json:"score"`
	RelationshipType string `json:"relationship_type"`
	HasReport        bool   `json:"has_report"`
}

// NewCompatibilityScored creates a CompatibilityScored event
func NewCompatibilityScored(requestID string, score int, relationshipType string, hasReport bool, timestamp time.Time) CompatibilityScored {
	return CompatibilityScored{
		BaseEvent: BaseEvent{
			AggregateID: requestID,
			EventType:   "compatibility.scored",
			Timestamp:   timestamp,
			Version:     1,
		},
		RequestID:        requestID,
		Score:            score,
		RelationshipType: relationshipType,
		HasReport:        hasReport,
	}
}

// Conversation Events

// ConversationStarted is raised when a new session is created
type ConversationStarted struct {
	BaseEvent
	SessionID valueobjects.SessionID `json:"session_id"`
	Model     string                 `json:"model"`
}

// NewConversationStarted creates a ConversationStarted event
func NewConversationStarted(sessionID valueobjects.SessionID, model string, timestamp time.Time) ConversationStarted {
	return ConversationStarted{
		BaseEvent: BaseEvent{
			AggregateID: sessionID.String(),
			EventType:   "conversation.started",
			Timestamp:   timestamp,
			Version:     1,
		},
		SessionID: sessionID,
		Model:     model,
	}
}

// ConversationSummarized is raised when a long session's older history has
// been condensed.
type ConversationSummarized struct {
	BaseEvent
	SessionID    valueobjects.SessionID `json:"session_id"`
	MessageCount int                    `json:"message_count"`
}

// NewConversationSummarized creates a ConversationSummarized event
func NewConversationSummarized(sessionID valueobjects.SessionID, messageCount int, timestamp time.Time) ConversationSummarized {
	return ConversationSummarized{
		BaseEvent: BaseEvent{
			AggregateID: sessionID.String(),
			EventType:   "conversation.summarized",
			Timestamp:   timestamp,
			Version:     1,
		},
		SessionID:    sessionID,
		MessageCount: messageCount,
	}
}

// ConversationEnded is raised when a session is closed, carrying its final
// quality assessment.
type ConversationEnded struct {
	BaseEvent
	SessionID    valueobjects.SessionID `json:"session_id"`
	MessageCount int                    `json:"message_count"`
	QualityScore int                    `json:"quality_score"`
	TokensUsed   int                    `json:"tokens_used"`
}

// NewConversationEnded creates a ConversationEnded event
func NewConversationEnded(sessionID valueobjects.SessionID, messageCount, qualityScore, tokensUsed int, timestamp time.Time) ConversationEnded {
	return ConversationEnded{
		BaseEvent: BaseEvent{
			AggregateID: sessionID.String(),
			EventType:   "conversation.ended",
			Timestamp:   timestamp,
			Version:     1,
		},
		SessionID:    sessionID,
		MessageCount: messageCount,
		QualityScore: qualityScore,
		TokensUsed:   tokensUsed,
	}
}
