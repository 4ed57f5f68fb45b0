package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"ziwei-backend/application/commands"
	commandbus "ziwei-backend/application/commands/bus"
	appservices "ziwei-backend/application/services"
	"ziwei-backend/domain/core/entities"
	"ziwei-backend/domain/core/valueobjects"
	"ziwei-backend/pkg/common"
	"ziwei-backend/pkg/utils"
)

// ConversationHandler serves the conversation session lifecycle
type ConversationHandler struct {
	commandBus    *commandbus.CommandBus
	conversations *appservices.ConversationService
	logger        *zap.Logger
}

// NewConversationHandler creates a conversation handler
func NewConversationHandler(
	commandBus *commandbus.CommandBus,
	conversations *appservices.ConversationService,
	logger *zap.Logger,
) *ConversationHandler {
	return &ConversationHandler{
		commandBus:    commandBus,
		conversations: conversations,
		logger:        logger,
	}
}

// StartConversationRequest is the session creation body
type StartConversationRequest struct {
	Chart *entities.Chart `json:"chart" validate:"required"`
}

// StartConversation handles POST /api/v1/conversations
func (h *ConversationHandler) StartConversation(w http.ResponseWriter, r *http.Request) {
	var req StartConversationRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		respondBadRequest(w, err)
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		respondBadRequest(w, err)
		return
	}

	sessionID := valueobjects.NewSessionID()
	err := h.commandBus.Send(r.Context(), commands.StartConversationCommand{
		SessionID: sessionID,
		Chart:     req.Chart,
	})
	if err != nil {
		h.logger.Warn("Failed to start conversation", zap.Error(err))
		respondAppError(w, err)
		return
	}

	conv, err := h.conversations.Get(r.Context(), sessionID)
	if err != nil {
		respondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusCreated, map[string]interface{}{
		"conversation":       conv,
		"suggestedQuestions": h.conversations.SuggestedOpeners(),
	})
}

// GetConversation handles GET /api/v1/conversations/{sessionId}
func (h *ConversationHandler) GetConversation(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	conv, err := h.conversations.Get(r.Context(), sessionID)
	if err != nil {
		respondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, conv)
}

// SendMessageRequest is the conversation turn body
type SendMessageRequest struct {
	Message string `json:"message" validate:"required,min=1,max=4000"`
}

// SendMessage handles POST /api/v1/conversations/{sessionId}/messages
func (h *ConversationHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	var req SendMessageRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		respondBadRequest(w, err)
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		respondBadRequest(w, err)
		return
	}

	result, err := h.conversations.Turn(r.Context(), sessionID, req.Message)
	if err != nil {
		h.logger.Warn("Conversation turn failed",
			zap.String("sessionID", sessionID.String()),
			zap.Error(err))
		respondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}

// SummarizeConversation handles POST /api/v1/conversations/{sessionId}/summary
func (h *ConversationHandler) SummarizeConversation(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	err := h.commandBus.Send(r.Context(), commands.SummarizeConversationCommand{
		SessionID: sessionID,
	})
	if err != nil {
		h.logger.Warn("Summarization failed",
			zap.String("sessionID", sessionID.String()),
			zap.Error(err))
		respondAppError(w, err)
		return
	}

	conv, err := h.conversations.Get(r.Context(), sessionID)
	if err != nil {
		respondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"sessionId":    conv.ID,
		"summary":      conv.Summary,
		"messageCount": conv.MessageCount(),
	})
}

// GetQuality handles GET /api/v1/conversations/{sessionId}/quality
func (h *ConversationHandler) GetQuality(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	report, err := h.conversations.Quality(r.Context(), sessionID)
	if err != nil {
		respondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, report)
}

// EndConversation handles DELETE /api/v1/conversations/{sessionId}. The final
// quality report is returned so the caller keeps it after the session is gone.
func (h *ConversationHandler) EndConversation(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	report, err := h.conversations.End(r.Context(), sessionID)
	if err != nil {
		h.logger.Warn("Failed to end conversation",
			zap.String("sessionID", sessionID.String()),
			zap.Error(err))
		respondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, report)
}

func (h *ConversationHandler) sessionID(w http.ResponseWriter, r *http.Request) (valueobjects.SessionID, bool) {
	raw := chi.URLParam(r, "sessionId")
	sessionID, err := valueobjects.ParseSessionID(raw)
	if err != nil {
		respondBadRequest(w, err)
		return "", false
	}
	return sessionID, true
}
