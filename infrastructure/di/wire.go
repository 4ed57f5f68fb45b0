//go:build wireinject
// +build wireinject

package di

import (
	"context"

	"github.com/google/wire"

	"ziwei-backend/infrastructure/config"
)

// SuperSet is the main provider set containing all providers
var SuperSet = wire.NewSet(
	ProvideLogger,
	ProvideDomainConfig,
	ProvideAWSConfig,
	ProvideDynamoDBClient,
	ProvideEventBridgeClient,
	ProvideCloudWatchClient,
	ProvideMetrics,
	ProvideKnowledgeRegistry,
	ProvideSessionStore,
	ProvideSessionLock,
	ProvideEventPublisher,
	ProvideNarrativeGenerator,
	ProvideRuleMatcher,
	ProvidePatternIdentifier,
	ProvideCompatibilityScorer,
	ProvideEnrichmentAggregator,
	ProvideContextBuilder,
	ProvideConversationService,
	ProvideJWTValidator,
	ProvideQueryBus,
	ProvideCommandBus,
	wire.Struct(new(Container), "*"),
)

// InitializeContainer creates a fully wired container
func InitializeContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	wire.Build(SuperSet)
	return nil, nil // Wire will replace this
}
