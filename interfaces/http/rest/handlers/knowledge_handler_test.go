package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ziwei-backend/domain/knowledge"
	"ziwei-backend/infrastructure/persistence/seed"
)

func loadedRegistry(t *testing.T) *knowledge.Registry {
	t.Helper()
	registry := knowledge.NewRegistry()
	require.NoError(t, registry.Load(context.Background(), seed.NewStore()))
	return registry
}

func knowledgeRouter(registry *knowledge.Registry) *chi.Mux {
	h := NewKnowledgeHandler(registry)
	r := chi.NewRouter()
	r.Get("/knowledge/rules", h.ListRules)
	r.Get("/knowledge/palaces/{key}", h.GetPalace)
	r.Get("/knowledge/counts", h.GetCounts)
	return r
}

type rulesEnvelope struct {
	Success bool `json:"success"`
	Data    struct {
		Rules []knowledge.Rule `json:"rules"`
	} `json:"data"`
}

func TestListRulesScopeFilter(t *testing.T) {
	registry := loadedRegistry(t)
	router := knowledgeRouter(registry)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/knowledge/rules?scope=palace", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var envelope rulesEnvelope
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))
	require.NotEmpty(t, envelope.Data.Rules)
	for _, rule := range envelope.Data.Rules {
		assert.Equal(t, knowledge.ScopePalace, rule.Scope)
	}
}

func TestListRulesFilterLeavesRegistryIntact(t *testing.T) {
	registry := loadedRegistry(t)
	router := knowledgeRouter(registry)

	before := make([]string, 0)
	for _, rule := range registry.Rules() {
		before = append(before, rule.ID)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/knowledge/rules?scope=palace", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	after := registry.Rules()
	require.Len(t, after, len(before))
	for i, rule := range after {
		assert.Equal(t, before[i], rule.ID)
	}
}

func TestListRulesUnknownScope(t *testing.T) {
	router := knowledgeRouter(loadedRegistry(t))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/knowledge/rules?scope=planet", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetPalaceByKey(t *testing.T) {
	router := knowledgeRouter(loadedRegistry(t))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/knowledge/palaces/命宮", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/knowledge/palaces/nonexistent", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
