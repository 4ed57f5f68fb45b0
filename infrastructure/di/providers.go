package di

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awscloudwatch "github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	awseventbridge "github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"ziwei-backend/application/commands"
	commandbus "ziwei-backend/application/commands/bus"
	commandhandlers "ziwei-backend/application/commands/handlers"
	"ziwei-backend/application/ports"
	"ziwei-backend/application/queries"
	querybus "ziwei-backend/application/queries/bus"
	queryhandlers "ziwei-backend/application/queries/handlers"
	appservices "ziwei-backend/application/services"
	domainconfig "ziwei-backend/domain/config"
	"ziwei-backend/domain/core/services"
	"ziwei-backend/domain/knowledge"
	"ziwei-backend/infrastructure/config"
	"ziwei-backend/infrastructure/messaging"
	"ziwei-backend/infrastructure/messaging/eventbridge"
	"ziwei-backend/infrastructure/narrative"
	ddb "ziwei-backend/infrastructure/persistence/dynamodb"
	"ziwei-backend/infrastructure/persistence/memory"
	"ziwei-backend/infrastructure/persistence/seed"
	"ziwei-backend/pkg/auth"
	"ziwei-backend/pkg/observability"
)

// developmentJWTSecret keeps local servers bootable without credentials.
// Config validation rejects an empty secret in production.
const developmentJWTSecret = "ziwei-development-secret"

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.IsProduction() {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}

// ProvideDomainConfig loads and validates the domain tuning values
func ProvideDomainConfig(cfg *config.Config) (*domainconfig.DomainConfig, error) {
	domainCfg := domainconfig.LoadDomainConfig(cfg.Environment)
	if err := domainCfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid domain configuration: %w", err)
	}
	return domainCfg, nil
}

// ProvideAWSConfig creates AWS configuration
func ProvideAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	return awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
	)
}

// ProvideDynamoDBClient creates a DynamoDB client
func ProvideDynamoDBClient(awsCfg aws.Config) *awsdynamodb.Client {
	return awsdynamodb.NewFromConfig(awsCfg)
}

// ProvideEventBridgeClient creates an EventBridge client
func ProvideEventBridgeClient(awsCfg aws.Config) *awseventbridge.Client {
	return awseventbridge.NewFromConfig(awsCfg)
}

// ProvideCloudWatchClient creates a CloudWatch client
func ProvideCloudWatchClient(awsCfg aws.Config) *awscloudwatch.Client {
	return awscloudwatch.NewFromConfig(awsCfg)
}

// ProvideMetrics creates the metrics sink
func ProvideMetrics(client *awscloudwatch.Client, cfg *config.Config) *observability.Metrics {
	if !cfg.EnableMetrics {
		return observability.NewNoopMetrics()
	}
	namespace := fmt.Sprintf("Ziwei/%s", cfg.Environment)
	return observability.NewMetrics(namespace, client)
}

// ProvideKnowledgeRegistry loads the knowledge base from the configured
// source. The registry is immutable after this point.
func ProvideKnowledgeRegistry(
	ctx context.Context,
	cfg *config.Config,
	client *awsdynamodb.Client,
	logger *zap.Logger,
) (*knowledge.Registry, error) {
	var store knowledge.KnowledgeStore
	switch cfg.KnowledgeSource {
	case "dynamodb":
		store = ddb.NewKnowledgeStore(client, cfg.KnowledgeTable, logger)
	default:
		store = seed.NewStore()
	}

	registry := knowledge.NewRegistry()
	if err := registry.Load(ctx, store); err != nil {
		return nil, fmt.Errorf("failed to load knowledge base: %w", err)
	}

	counts := registry.Counts()
	logger.Info("Knowledge base loaded",
		zap.String("source", cfg.KnowledgeSource),
		zap.Int("palaces", counts.Palaces),
		zap.Int("stars", counts.Stars),
		zap.Int("rules", counts.Rules))

	return registry, nil
}

// ProvideSessionStore selects the session store. A configured sessions table
// means DynamoDB; otherwise sessions live in process memory.
func ProvideSessionStore(
	client *awsdynamodb.Client,
	cfg *config.Config,
	domainCfg *domainconfig.DomainConfig,
	logger *zap.Logger,
) ports.SessionStore {
	if cfg.SessionsTable != "" {
		return ddb.NewSessionStore(client, cfg.SessionsTable, domainCfg.SessionTTL, logger)
	}
	return memory.NewSessionStore(domainCfg.SessionTTL, 10*time.Minute, logger)
}

// ProvideSessionLock selects the session lock to match the session store
func ProvideSessionLock(
	client *awsdynamodb.Client,
	cfg *config.Config,
	logger *zap.Logger,
) ports.SessionLock {
	if cfg.SessionsTable != "" {
		return ddb.NewSessionLock(client, cfg.SessionsTable, logger)
	}
	return memory.NewSessionLock()
}

// ProvideEventPublisher creates the event publisher. Without a configured
// bus name events are dropped locally.
func ProvideEventPublisher(
	client *awseventbridge.Client,
	cfg *config.Config,
	logger *zap.Logger,
) ports.EventPublisher {
	if cfg.EventBusName == "" {
		return messaging.NewNoopPublisher(logger)
	}
	return eventbridge.NewPublisher(client, cfg.EventBusName, logger)
}

// ProvideNarrativeGenerator creates the Gemini-backed generator
func ProvideNarrativeGenerator(ctx context.Context, cfg *config.Config, logger *zap.Logger) (ports.NarrativeGenerator, error) {
	return narrative.NewGeminiGenerator(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, logger)
}

// ProvideRuleMatcher creates the rule matcher
func ProvideRuleMatcher(registry *knowledge.Registry) *services.RuleMatcher {
	return services.NewRuleMatcher(registry)
}

// ProvidePatternIdentifier creates the pattern identifier
func ProvidePatternIdentifier() *services.PatternIdentifier {
	return services.NewPatternIdentifier()
}

// ProvideCompatibilityScorer creates the scorer
func ProvideCompatibilityScorer(domainCfg *domainconfig.DomainConfig) *services.CompatibilityScorer {
	return services.NewCompatibilityScorer(domainCfg)
}

// ProvideEnrichmentAggregator creates the enrichment aggregator
func ProvideEnrichmentAggregator(registry *knowledge.Registry) *services.EnrichmentAggregator {
	return services.NewEnrichmentAggregator(registry)
}

// ProvideContextBuilder creates the conversation context builder
func ProvideContextBuilder(domainCfg *domainconfig.DomainConfig) *services.ContextBuilder {
	return services.NewContextBuilder(domainCfg)
}

// ProvideConversationService creates the conversation workflow service
func ProvideConversationService(
	store ports.SessionStore,
	lock ports.SessionLock,
	builder *services.ContextBuilder,
	generator ports.NarrativeGenerator,
	publisher ports.EventPublisher,
	cfg *config.Config,
	domainCfg *domainconfig.DomainConfig,
	logger *zap.Logger,
) *appservices.ConversationService {
	return appservices.NewConversationService(
		store, lock, builder, generator, publisher, domainCfg, cfg.GeminiModel, logger)
}

// ProvideJWTValidator creates the token validator
func ProvideJWTValidator(cfg *config.Config, logger *zap.Logger) (*auth.JWTValidator, error) {
	secret := cfg.JWTSecret
	if secret == "" {
		logger.Warn("JWT_SECRET not set, using development secret")
		secret = developmentJWTSecret
	}
	return auth.NewJWTValidator(auth.JWTConfig{
		SecretKey: secret,
		Issuer:    cfg.JWTIssuer,
	})
}

// ProvideQueryBus creates a query bus with all query handlers registered
func ProvideQueryBus(
	matcher *services.RuleMatcher,
	identifier *services.PatternIdentifier,
	scorer *services.CompatibilityScorer,
	enricher *services.EnrichmentAggregator,
	generator ports.NarrativeGenerator,
	publisher ports.EventPublisher,
	domainCfg *domainconfig.DomainConfig,
	metrics *observability.Metrics,
	logger *zap.Logger,
) (*querybus.QueryBus, error) {
	qb := querybus.NewQueryBus()
	middlewares := []querybus.Middleware{
		querybus.LoggingMiddleware(logger),
		querybus.MetricsMiddleware(metrics),
	}

	interpretHandler := queryhandlers.NewInterpretChartHandler(matcher, publisher, logger)
	err := qb.Register(queries.InterpretChartQuery{}, querybus.Chain(
		querybus.QueryHandlerFunc(func(ctx context.Context, query querybus.Query) (interface{}, error) {
			q, ok := query.(queries.InterpretChartQuery)
			if !ok {
				return nil, fmt.Errorf("unexpected query type %T", query)
			}
			return interpretHandler.Handle(ctx, q)
		}), middlewares...))
	if err != nil {
		return nil, err
	}

	compareHandler := queryhandlers.NewCompareChartsHandler(
		identifier, scorer, generator, publisher, domainCfg, logger)
	err = qb.Register(queries.CompareChartsQuery{}, querybus.Chain(
		querybus.QueryHandlerFunc(func(ctx context.Context, query querybus.Query) (interface{}, error) {
			q, ok := query.(queries.CompareChartsQuery)
			if !ok {
				return nil, fmt.Errorf("unexpected query type %T", query)
			}
			return compareHandler.Handle(ctx, q)
		}), middlewares...))
	if err != nil {
		return nil, err
	}

	enrichHandler := queryhandlers.NewEnrichChartHandler(
		enricher, matcher, generator, publisher, domainCfg, logger)
	err = qb.Register(queries.EnrichChartQuery{}, querybus.Chain(
		querybus.QueryHandlerFunc(func(ctx context.Context, query querybus.Query) (interface{}, error) {
			q, ok := query.(queries.EnrichChartQuery)
			if !ok {
				return nil, fmt.Errorf("unexpected query type %T", query)
			}
			return enrichHandler.Handle(ctx, q)
		}), middlewares...))
	if err != nil {
		return nil, err
	}

	return qb, nil
}

// ProvideCommandBus creates a command bus with all command handlers registered
func ProvideCommandBus(
	conversations *appservices.ConversationService,
	metrics *observability.Metrics,
	logger *zap.Logger,
) (*commandbus.CommandBus, error) {
	cb := commandbus.NewCommandBus()
	middlewares := []commandbus.Middleware{
		commandbus.LoggingMiddleware(logger),
		commandbus.MetricsMiddleware(metrics),
	}

	startHandler := commandhandlers.NewStartConversationHandler(conversations)
	err := cb.Register(commands.StartConversationCommand{}, commandbus.Chain(
		commandbus.CommandHandlerFunc(func(ctx context.Context, cmd commandbus.Command) error {
			c, ok := cmd.(commands.StartConversationCommand)
			if !ok {
				return fmt.Errorf("unexpected command type %T", cmd)
			}
			return startHandler.Handle(ctx, c)
		}), middlewares...))
	if err != nil {
		return nil, err
	}

	summarizeHandler := commandhandlers.NewSummarizeConversationHandler(conversations)
	err = cb.Register(commands.SummarizeConversationCommand{}, commandbus.Chain(
		commandbus.CommandHandlerFunc(func(ctx context.Context, cmd commandbus.Command) error {
			c, ok := cmd.(commands.SummarizeConversationCommand)
			if !ok {
				return fmt.Errorf("unexpected command type %T", cmd)
			}
			return summarizeHandler.Handle(ctx, c)
		}), middlewares...))
	if err != nil {
		return nil, err
	}

	endHandler := commandhandlers.NewEndConversationHandler(conversations)
	err = cb.Register(commands.EndConversationCommand{}, commandbus.Chain(
		commandbus.CommandHandlerFunc(func(ctx context.Context, cmd commandbus.Command) error {
			c, ok := cmd.(commands.EndConversationCommand)
			if !ok {
				return fmt.Errorf("unexpected command type %T", cmd)
			}
			return endHandler.Handle(ctx, c)
		}), middlewares...))
	if err != nil {
		return nil, err
	}

	return cb, nil
}
