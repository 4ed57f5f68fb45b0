package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaultsToInMemorySessions(t *testing.T) {
	t.Setenv("SESSIONS_TABLE", "")
	t.Setenv("ENVIRONMENT", "development")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	// An empty table selects the in-process session store, so a keyless
	// local run never touches DynamoDB.
	assert.Empty(t, cfg.SessionsTable)
}

func TestLoadConfigHonorsSessionsTable(t *testing.T) {
	t.Setenv("SESSIONS_TABLE", "my-sessions")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "my-sessions", cfg.SessionsTable)
}

func TestProductionRequiresSessionsTable(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("SESSIONS_TABLE", "")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SESSIONS_TABLE")
}

func TestLoadConfigDerivesLambdaFlag(t *testing.T) {
	t.Setenv("AWS_LAMBDA_FUNCTION_NAME", "ziwei-api")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.True(t, cfg.IsLambda)
}

func TestLoadConfigRejectsUnknownKnowledgeSource(t *testing.T) {
	t.Setenv("KNOWLEDGE_SOURCE", "filesystem")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "KNOWLEDGE_SOURCE")
}
