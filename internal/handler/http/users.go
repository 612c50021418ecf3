package http

import (
	"errors"
	"net/http"

	"github.com/itemkeeper/itemkeeper/internal/logger"
	"github.com/itemkeeper/itemkeeper/internal/store"
	"github.com/itemkeeper/itemkeeper/internal/utils"
	"github.com/itemkeeper/itemkeeper/models"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	users, err := h.services.UserService.GetAllUsers(ctx)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during user listing")
		utils.WriteJSON(w, models.MessageResponse{Message: http.StatusText(http.StatusInternalServerError)}, http.StatusInternalServerError)
		return
	}

	if users == nil {
		users = []models.UserSummary{}
	}

	utils.WriteJSON(w, users, http.StatusOK)
}

// profile reports the account of the caller identified by the verified token.
func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in authenticated request context")
		utils.WriteJSON(w, models.MessageResponse{Message: http.StatusText(http.StatusInternalServerError)}, http.StatusInternalServerError)
		return
	}

	summary, err := h.services.UserService.Profile(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			// the account vanished after the token was issued
			utils.WriteJSON(w, models.MessageResponse{Message: "user not found"}, http.StatusNotFound)
			return
		}

		log.Err(err).Int64("id", userID).Msg("unexpected error occurred during profile lookup")
		utils.WriteJSON(w, models.MessageResponse{Message: http.StatusText(http.StatusInternalServerError)}, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.ProfileResponse{Username: summary.Username}, http.StatusOK)
}
