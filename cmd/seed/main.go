// Command seed loads the embedded knowledge corpus into the DynamoDB
// knowledge table so deployments can serve from it instead of the binary.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"go.uber.org/zap"

	"ziwei-backend/infrastructure/config"
	"ziwei-backend/infrastructure/persistence/dynamodb"
	"ziwei-backend/infrastructure/persistence/seed"
)

func main() {
	var (
		table   = flag.String("table", "", "knowledge table name (defaults to KNOWLEDGE_TABLE)")
		region  = flag.String("region", "", "AWS region (defaults to AWS_REGION)")
		timeout = flag.Duration("timeout", 2*time.Minute, "overall seeding timeout")
	)
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *table == "" {
		*table = cfg.KnowledgeTable
	}
	if *region == "" {
		*region = cfg.AWSRegion
	}
	if *table == "" {
		log.Fatal("No knowledge table configured; set -table or KNOWLEDGE_TABLE")
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(*region))
	if err != nil {
		logger.Fatal("Failed to load AWS configuration", zap.Error(err))
	}

	client := awsdynamodb.NewFromConfig(awsCfg)
	seeder := dynamodb.NewSeeder(client, *table, logger)

	if err := seeder.Seed(ctx, seed.NewStore()); err != nil {
		logger.Fatal("Seeding failed", zap.Error(err))
	}

	logger.Info("Knowledge table seeded", zap.String("table", *table))
}
