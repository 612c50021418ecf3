package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itemkeeper/itemkeeper/internal/store"
	"github.com/itemkeeper/itemkeeper/internal/utils"
	"github.com/itemkeeper/itemkeeper/models"
)

func TestListUsersHandler_Success(t *testing.T) {
	users := &mockUserService{
		getAllFn: func(_ context.Context) ([]models.UserSummary, error) {
			return []models.UserSummary{
				{UserID: 1, Username: "alice"},
				{UserID: 2, Username: "bob"},
			}, nil
		},
	}
	h := newTestHandler(nil, nil, users)

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	rec := httptest.NewRecorder()

	h.listUsers(rec, injectNopLogger(req))

	require.Equal(t, http.StatusOK, rec.Code)

	var got []models.UserSummary
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	require.Len(t, got, 2)
	assert.Equal(t, "alice", got[0].Username)

	// password hashes must never appear in the payload
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestListUsersHandler_EmptyIsJSONArray(t *testing.T) {
	h := newTestHandler(nil, nil, &mockUserService{})

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	rec := httptest.NewRecorder()

	h.listUsers(rec, injectNopLogger(req))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestProfileHandler_Success(t *testing.T) {
	users := &mockUserService{
		profileFn: func(_ context.Context, userID int64) (models.UserSummary, error) {
			return models.UserSummary{UserID: userID, Username: "alice"}, nil
		},
	}
	h := newTestHandler(nil, nil, users)

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	req = injectNopLogger(req)
	req = req.WithContext(context.WithValue(req.Context(), utils.UserIDCtxKey, int64(1)))
	rec := httptest.NewRecorder()

	h.profile(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.ProfileResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "alice", resp.Username)
}

func TestProfileHandler_MissingIdentity(t *testing.T) {
	h := newTestHandler(nil, nil, &mockUserService{})

	// no user id in context: the auth middleware never ran
	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	rec := httptest.NewRecorder()

	h.profile(rec, injectNopLogger(req))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestProfileHandler_VanishedAccount(t *testing.T) {
	users := &mockUserService{
		profileFn: func(_ context.Context, _ int64) (models.UserSummary, error) {
			return models.UserSummary{}, store.ErrNoUserWasFound
		},
	}
	h := newTestHandler(nil, nil, users)

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	req = injectNopLogger(req)
	req = req.WithContext(context.WithValue(req.Context(), utils.UserIDCtxKey, int64(404)))
	rec := httptest.NewRecorder()

	h.profile(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
