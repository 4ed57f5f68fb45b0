package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"ziwei-backend/domain/knowledge"
	"ziwei-backend/pkg/common"
)

// KnowledgeHandler exposes read-only access to the loaded knowledge base
type KnowledgeHandler struct {
	registry *knowledge.Registry
}

// NewKnowledgeHandler creates a knowledge handler
func NewKnowledgeHandler(registry *knowledge.Registry) *KnowledgeHandler {
	return &KnowledgeHandler{registry: registry}
}

// ListPalaces handles GET /api/v1/knowledge/palaces
func (h *KnowledgeHandler) ListPalaces(w http.ResponseWriter, r *http.Request) {
	common.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"palaces": h.registry.Palaces(),
	})
}

// GetPalace handles GET /api/v1/knowledge/palaces/{key}
func (h *KnowledgeHandler) GetPalace(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	palace, ok := h.registry.LookupPalace(key)
	if !ok {
		common.RespondError(w, http.StatusNotFound,
			common.StandardErrorCodes.NotFound, "palace not found")
		return
	}
	common.RespondJSON(w, http.StatusOK, palace)
}

// ListStars handles GET /api/v1/knowledge/stars
func (h *KnowledgeHandler) ListStars(w http.ResponseWriter, r *http.Request) {
	common.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"stars": h.registry.Stars(),
	})
}

// GetStar handles GET /api/v1/knowledge/stars/{key}
func (h *KnowledgeHandler) GetStar(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	star, ok := h.registry.LookupStar(key)
	if !ok {
		common.RespondError(w, http.StatusNotFound,
			common.StandardErrorCodes.NotFound, "star not found")
		return
	}
	common.RespondJSON(w, http.StatusOK, star)
}

// ListTransformations handles GET /api/v1/knowledge/transformations
func (h *KnowledgeHandler) ListTransformations(w http.ResponseWriter, r *http.Request) {
	common.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"transformations": h.registry.Transformations(),
	})
}

// ListRules handles GET /api/v1/knowledge/rules with an optional scope filter
func (h *KnowledgeHandler) ListRules(w http.ResponseWriter, r *http.Request) {
	rules := h.registry.Rules()

	if scope := r.URL.Query().Get("scope"); scope != "" {
		if !knowledge.RuleScope(scope).IsValid() {
			common.RespondError(w, http.StatusBadRequest,
				common.StandardErrorCodes.ValidationError, "unknown rule scope")
			return
		}
		filtered := make([]knowledge.Rule, 0, len(rules))
		for _, rule := range rules {
			if rule.Scope == knowledge.RuleScope(scope) {
				filtered = append(filtered, rule)
			}
		}
		rules = filtered
	}

	common.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"rules": rules,
	})
}

// GetCounts handles GET /api/v1/knowledge/counts
func (h *KnowledgeHandler) GetCounts(w http.ResponseWriter, r *http.Request) {
	common.RespondJSON(w, http.StatusOK, h.registry.Counts())
}
