package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	app_errors "prism-ai/backend/internal/errors"
	"prism-ai/backend/internal/interfaces"
	"prism-ai/backend/internal/model"
)

// ProfileHandler handles HTTP requests for the user profile and the
// aggregator credential.
type ProfileHandler struct {
	service interfaces.ProfileService
}

func NewProfileHandler(svc interfaces.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: svc}
}

// HandleGetProfile godoc
// @Summary      Get the user profile
// @Tags         Profile
// @Produce      json
// @Success      200  {object}  model.Profile
// @Failure      500  {object}  ErrorResponse
// @Router       /v1/profile [get]
func (h *ProfileHandler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.service.Get(r.Context(), requestUserID(r))
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, profile)
}

// HandleSaveProfile godoc
// @Summary      Save the user profile
// @Description  Upserts personalization fields and the direct provider API keys.
// @Tags         Profile
// @Accept       json
// @Produce      json
// @Param        profile  body      model.Profile  true  "Profile"
// @Success      200      {object}  StatusResponse
// @Failure      400      {object}  ErrorResponse
// @Router       /v1/profile [put]
func (h *ProfileHandler) HandleSaveProfile(w http.ResponseWriter, r *http.Request) {
	var profile model.Profile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		respondWithError(w, fmt.Errorf("%w: invalid request body", app_errors.ErrValidation))
		return
	}
	profile.UserID = requestUserID(r)

	if err := h.service.Save(r.Context(), &profile); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

// HandleSetAggregatorKey godoc
// @Summary      Store the OpenRouter fallback key
// @Tags         Profile
// @Accept       json
// @Produce      json
// @Param        key  body      SetAggregatorKeyRequest  true  "OpenRouter API key"
// @Success      200  {object}  StatusResponse
// @Failure      400  {object}  ErrorResponse
// @Router       /v1/keys/openrouter [put]
func (h *ProfileHandler) HandleSetAggregatorKey(w http.ResponseWriter, r *http.Request) {
	var req SetAggregatorKeyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, fmt.Errorf("%w: invalid request body", app_errors.ErrValidation))
		return
	}
	if err := validateRequest(&req); err != nil {
		respondWithError(w, err)
		return
	}

	if err := h.service.SetAggregatorKey(r.Context(), requestUserID(r), req.Key); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

// HandleDeleteAggregatorKey godoc
// @Summary      Remove the OpenRouter fallback key
// @Tags         Profile
// @Produce      json
// @Success      200  {object}  StatusResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /v1/keys/openrouter [delete]
func (h *ProfileHandler) HandleDeleteAggregatorKey(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteAggregatorKey(r.Context(), requestUserID(r)); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}
