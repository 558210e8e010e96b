package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	app_errors "prism-ai/backend/internal/errors"
	"prism-ai/backend/internal/interfaces"
	"prism-ai/backend/internal/service"
)

// userIDHeader carries the caller identity. Authentication itself is an
// external collaborator; the API trusts whatever the auth proxy injects.
const userIDHeader = "X-User-ID"

const defaultUserID = "default-user"

func requestUserID(r *http.Request) string {
	if id := r.Header.Get(userIDHeader); id != "" {
		return id
	}
	return defaultUserID
}

// ChatHandler handles HTTP requests for contexts and message dispatch.
type ChatHandler struct {
	service interfaces.ChatService
}

func NewChatHandler(svc interfaces.ChatService) *ChatHandler {
	return &ChatHandler{service: svc}
}

// HandleSendMessage godoc
// @Summary      Send a message
// @Description  Persists the user turn, routes the conversation to an AI provider (with aggregator fallback) and returns the assistant reply.
// @Tags         Chat
// @Accept       json
// @Produce      json
// @Param        message  body      service.SendMessageRequest  true  "Message payload; omit context_id to start a new conversation"
// @Success      200      {object}  service.SendMessageResult
// @Failure      400      {object}  ErrorResponse
// @Failure      422      {object}  ErrorResponse
// @Failure      502      {object}  ErrorResponse
// @Router       /v1/contexts/messages [post]
func (h *ChatHandler) HandleSendMessage(w http.ResponseWriter, r *http.Request) {
	var req service.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, fmt.Errorf("%w: invalid request body", app_errors.ErrValidation))
		return
	}
	if err := validateRequest(&req); err != nil {
		respondWithError(w, err)
		return
	}

	result, err := h.service.SendMessage(r.Context(), requestUserID(r), &req)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, result)
}

// HandleListContexts godoc
// @Summary      List conversations
// @Tags         Contexts
// @Produce      json
// @Success      200  {array}   model.Context
// @Failure      500  {object}  ErrorResponse
// @Router       /v1/contexts [get]
func (h *ChatHandler) HandleListContexts(w http.ResponseWriter, r *http.Request) {
	contexts, err := h.service.ListContexts(r.Context(), requestUserID(r))
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, contexts)
}

// HandleGetContext godoc
// @Summary      Get one conversation with its messages
// @Tags         Contexts
// @Produce      json
// @Param        contextID  path      string  true  "Context ID"
// @Success      200        {object}  model.FullContext
// @Failure      404        {object}  ErrorResponse
// @Router       /v1/contexts/{contextID} [get]
func (h *ChatHandler) HandleGetContext(w http.ResponseWriter, r *http.Request) {
	contextID := chi.URLParam(r, "contextID")
	fullContext, err := h.service.GetFullContext(r.Context(), requestUserID(r), contextID)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, fullContext)
}

// HandleUpdateContextTitle godoc
// @Summary      Rename a conversation
// @Tags         Contexts
// @Accept       json
// @Produce      json
// @Param        contextID  path      string              true  "Context ID"
// @Param        title      body      UpdateTitleRequest  true  "New title"
// @Success      200        {object}  StatusResponse
// @Failure      400        {object}  ErrorResponse
// @Failure      404        {object}  ErrorResponse
// @Router       /v1/contexts/{contextID}/title [put]
func (h *ChatHandler) HandleUpdateContextTitle(w http.ResponseWriter, r *http.Request) {
	contextID := chi.URLParam(r, "contextID")

	var req UpdateTitleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, fmt.Errorf("%w: invalid request body", app_errors.ErrValidation))
		return
	}
	if err := validateRequest(&req); err != nil {
		respondWithError(w, err)
		return
	}

	if err := h.service.UpdateContextTitle(r.Context(), requestUserID(r), contextID, req.Title); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

// HandleDeleteContext godoc
// @Summary      Delete a conversation and its messages
// @Tags         Contexts
// @Produce      json
// @Param        contextID  path      string  true  "Context ID"
// @Success      200        {object}  StatusResponse
// @Failure      404        {object}  ErrorResponse
// @Router       /v1/contexts/{contextID} [delete]
func (h *ChatHandler) HandleDeleteContext(w http.ResponseWriter, r *http.Request) {
	contextID := chi.URLParam(r, "contextID")
	if err := h.service.DeleteContext(r.Context(), requestUserID(r), contextID); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}
