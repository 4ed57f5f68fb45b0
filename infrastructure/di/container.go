// Package di wires the application together.
package di

import (
	"go.uber.org/zap"

	commandbus "ziwei-backend/application/commands/bus"
	"ziwei-backend/application/ports"
	querybus "ziwei-backend/application/queries/bus"
	appservices "ziwei-backend/application/services"
	"ziwei-backend/domain/knowledge"
	"ziwei-backend/infrastructure/config"
	"ziwei-backend/pkg/auth"
	"ziwei-backend/pkg/observability"
)

// Container holds all application dependencies
type Container struct {
	Config        *config.Config
	Logger        *zap.Logger
	Registry      *knowledge.Registry
	SessionStore  ports.SessionStore
	SessionLock   ports.SessionLock
	Publisher     ports.EventPublisher
	Generator     ports.NarrativeGenerator
	Conversations *appservices.ConversationService
	CommandBus    *commandbus.CommandBus
	QueryBus      *querybus.QueryBus
	JWTValidator  *auth.JWTValidator
	Metrics       *observability.Metrics
}
