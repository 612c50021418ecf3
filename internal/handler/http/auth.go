package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/itemkeeper/itemkeeper/internal/logger"
	"github.com/itemkeeper/itemkeeper/internal/service"
	"github.com/itemkeeper/itemkeeper/internal/store"
	"github.com/itemkeeper/itemkeeper/internal/utils"
	"github.com/itemkeeper/itemkeeper/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorsResponse{Errors: []string{"invalid JSON body"}}, http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.Register(ctx, creds)
	if err != nil {
		var vErr *service.ValidationError
		switch {
		case errors.As(err, &vErr):
			log.Debug().Strs("errors", vErr.Messages).Msg("invalid registration data provided")
			utils.WriteJSON(w, models.ErrorsResponse{Errors: vErr.Messages}, http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrUsernameAlreadyExists):
			log.Debug().Str("username", creds.Username).Msg("username already exists")
			utils.WriteJSON(w, models.ErrorsResponse{Errors: []string{"username already exists"}}, http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			utils.WriteJSON(w, models.MessageResponse{Message: http.StatusText(http.StatusInternalServerError)}, http.StatusInternalServerError)
			return
		}
	}

	log.Info().Int64("id", registeredUser.UserID).Str("username", registeredUser.Username).Msg("user registered")

	utils.WriteJSON(w, models.MessageResponse{Message: "user registered"}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorsResponse{Errors: []string{"invalid JSON body"}}, http.StatusBadRequest)
		return
	}

	token, err := h.services.AuthService.Login(ctx, creds)
	if err != nil {
		var vErr *service.ValidationError
		switch {
		case errors.As(err, &vErr):
			log.Debug().Strs("errors", vErr.Messages).Msg("invalid login data provided")
			utils.WriteJSON(w, models.ErrorsResponse{Errors: vErr.Messages}, http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrInvalidCredentials):
			log.Debug().Str("username", creds.Username).Msg("login rejected")
			utils.WriteJSON(w, models.ErrorsResponse{Errors: []string{"invalid username or password"}}, http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			utils.WriteJSON(w, models.MessageResponse{Message: http.StatusText(http.StatusInternalServerError)}, http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("id", token.UserID).Msg("user successfully logged in")

	utils.WriteJSON(w, models.TokenResponse{Token: token.SignedString}, http.StatusOK)
}
