package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	app_errors "prism-ai/backend/internal/errors"
	"prism-ai/backend/internal/interfaces"
)

// ModelHandler handles HTTP requests for the model catalog and visibility
// preferences.
type ModelHandler struct {
	service interfaces.ModelService
}

func NewModelHandler(svc interfaces.ModelService) *ModelHandler {
	return &ModelHandler{service: svc}
}

// HandleListModels godoc
// @Summary      List selectable models
// @Description  Returns the fixed model catalog merged with the user's visibility preferences.
// @Tags         Models
// @Produce      json
// @Success      200  {array}   service.ModelListing
// @Failure      500  {object}  ErrorResponse
// @Router       /v1/models [get]
func (h *ModelHandler) HandleListModels(w http.ResponseWriter, r *http.Request) {
	models, err := h.service.List(r.Context(), requestUserID(r))
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, models)
}

// HandleSetModelPreference godoc
// @Summary      Toggle model visibility
// @Tags         Models
// @Accept       json
// @Produce      json
// @Param        preference  body      SetModelPreferenceRequest  true  "Preference"
// @Success      200         {object}  StatusResponse
// @Failure      400         {object}  ErrorResponse
// @Router       /v1/models/preferences [put]
func (h *ModelHandler) HandleSetModelPreference(w http.ResponseWriter, r *http.Request) {
	var req SetModelPreferenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, fmt.Errorf("%w: invalid request body", app_errors.ErrValidation))
		return
	}
	if err := validateRequest(&req); err != nil {
		respondWithError(w, err)
		return
	}

	if err := h.service.SetPreference(r.Context(), requestUserID(r), req.ModelID, *req.Enabled); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}
