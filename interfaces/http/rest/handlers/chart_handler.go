package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"ziwei-backend/application/queries"
	querybus "ziwei-backend/application/queries/bus"
	"ziwei-backend/domain/core/entities"
	"ziwei-backend/pkg/common"
	"ziwei-backend/pkg/utils"
)

// ChartHandler serves chart interpretation, enrichment, and compatibility
type ChartHandler struct {
	queryBus *querybus.QueryBus
	logger   *zap.Logger
}

// NewChartHandler creates a chart handler
func NewChartHandler(queryBus *querybus.QueryBus, logger *zap.Logger) *ChartHandler {
	return &ChartHandler{
		queryBus: queryBus,
		logger:   logger,
	}
}

// InterpretChartRequest is the interpretation request body
type InterpretChartRequest struct {
	Chart            *entities.Chart `json:"chart" validate:"required"`
	MinConsensus     string          `json:"minConsensus,omitempty" validate:"omitempty,oneof=consensus disputed experimental"`
	RankByConfidence bool            `json:"rankByConfidence,omitempty"`
}

// InterpretChart handles POST /api/v1/interpretations
func (h *ChartHandler) InterpretChart(w http.ResponseWriter, r *http.Request) {
	var req InterpretChartRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		respondBadRequest(w, err)
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		respondBadRequest(w, err)
		return
	}

	result, err := h.queryBus.Ask(r.Context(), queries.InterpretChartQuery{
		Chart:            req.Chart,
		MinConsensus:     req.MinConsensus,
		RankByConfidence: req.RankByConfidence,
	})
	if err != nil {
		h.logger.Warn("Interpretation failed", zap.Error(err))
		respondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}

// EnrichChartRequest is the enrichment request body
type EnrichChartRequest struct {
	Chart           *entities.Chart `json:"chart" validate:"required"`
	IncludeGuidance bool            `json:"includeGuidance,omitempty"`
}

// EnrichChart handles POST /api/v1/interpretations/enrich
func (h *ChartHandler) EnrichChart(w http.ResponseWriter, r *http.Request) {
	var req EnrichChartRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		respondBadRequest(w, err)
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		respondBadRequest(w, err)
		return
	}

	result, err := h.queryBus.Ask(r.Context(), queries.EnrichChartQuery{
		Chart:           req.Chart,
		IncludeGuidance: req.IncludeGuidance,
	})
	if err != nil {
		h.logger.Warn("Enrichment failed", zap.Error(err))
		respondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}

// CompareChartsRequest is the compatibility request body
type CompareChartsRequest struct {
	Chart1           *entities.Chart `json:"chart1" validate:"required"`
	Chart2           *entities.Chart `json:"chart2" validate:"required"`
	RelationshipType string          `json:"relationshipType,omitempty" validate:"omitempty,oneof=romantic business family friendship"`
	IncludeReport    bool            `json:"includeReport,omitempty"`
}

// CompareCharts handles POST /api/v1/compatibility
func (h *ChartHandler) CompareCharts(w http.ResponseWriter, r *http.Request) {
	var req CompareChartsRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		respondBadRequest(w, err)
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		respondBadRequest(w, err)
		return
	}

	result, err := h.queryBus.Ask(r.Context(), queries.CompareChartsQuery{
		Chart1:           req.Chart1,
		Chart2:           req.Chart2,
		RelationshipType: req.RelationshipType,
		IncludeReport:    req.IncludeReport,
	})
	if err != nil {
		h.logger.Warn("Compatibility analysis failed", zap.Error(err))
		respondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}
