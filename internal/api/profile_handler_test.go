package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"prism-ai/backend/internal/api"
	app_errors "prism-ai/backend/internal/errors"
	"prism-ai/backend/internal/interfaces/mocks"
	"prism-ai/backend/internal/model"
)

func TestProfileHandler(t *testing.T) {
	t.Run("GetProfile", func(t *testing.T) {
		mockSvc := mocks.NewMockProfileService(t)
		handler := api.NewProfileHandler(mockSvc)

		mockSvc.On("Get", mock.Anything, "alice").Return(&model.Profile{
			UserID:        "alice",
			PreferredName: "Ada",
			ChatTraits:    []string{"concise"},
		}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/v1/profile", nil)
		req.Header.Set("X-User-ID", "alice")
		rr := httptest.NewRecorder()

		handler.HandleGetProfile(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var profile model.Profile
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &profile))
		assert.Equal(t, "Ada", profile.PreferredName)
	})

	t.Run("SaveProfileForcesHeaderIdentity", func(t *testing.T) {
		mockSvc := mocks.NewMockProfileService(t)
		handler := api.NewProfileHandler(mockSvc)

		// The body claims to be "mallory"; the header identity must win.
		mockSvc.On("Save", mock.Anything, mock.MatchedBy(func(p *model.Profile) bool {
			return p.UserID == "alice" && p.PreferredName == "Ada"
		})).Return(nil).Once()

		body := `{"user_id":"mallory","preferred_name":"Ada"}`
		req := httptest.NewRequest(http.MethodPut, "/v1/profile", strings.NewReader(body))
		req.Header.Set("X-User-ID", "alice")
		rr := httptest.NewRecorder()

		handler.HandleSaveProfile(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("SetAggregatorKey", func(t *testing.T) {
		mockSvc := mocks.NewMockProfileService(t)
		handler := api.NewProfileHandler(mockSvc)

		mockSvc.On("SetAggregatorKey", mock.Anything, "default-user", "sk-or-v1").Return(nil).Once()

		req := httptest.NewRequest(http.MethodPut, "/v1/keys/openrouter",
			strings.NewReader(`{"key":"sk-or-v1"}`))
		rr := httptest.NewRecorder()

		handler.HandleSetAggregatorKey(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("SetAggregatorKeyEmptyIsBadRequest", func(t *testing.T) {
		handler := api.NewProfileHandler(mocks.NewMockProfileService(t))

		req := httptest.NewRequest(http.MethodPut, "/v1/keys/openrouter",
			strings.NewReader(`{"key":""}`))
		rr := httptest.NewRecorder()

		handler.HandleSetAggregatorKey(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("DeleteAggregatorKeyNotFound", func(t *testing.T) {
		mockSvc := mocks.NewMockProfileService(t)
		handler := api.NewProfileHandler(mockSvc)

		mockSvc.On("DeleteAggregatorKey", mock.Anything, "default-user").
			Return(app_errors.ErrNotFound).Once()

		req := httptest.NewRequest(http.MethodDelete, "/v1/keys/openrouter", nil)
		rr := httptest.NewRecorder()

		handler.HandleDeleteAggregatorKey(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
