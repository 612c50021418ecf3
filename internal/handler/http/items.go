package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/itemkeeper/itemkeeper/internal/logger"
	"github.com/itemkeeper/itemkeeper/internal/service"
	"github.com/itemkeeper/itemkeeper/internal/store"
	"github.com/itemkeeper/itemkeeper/internal/utils"
	"github.com/itemkeeper/itemkeeper/models"
)

const itemNotFoundMessage = "item not found"

func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.ItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorsResponse{Errors: []string{"invalid JSON body"}}, http.StatusBadRequest)
		return
	}

	item, err := h.services.ItemService.CreateItem(ctx, req)
	if err != nil {
		var vErr *service.ValidationError
		if errors.As(err, &vErr) {
			log.Debug().Strs("errors", vErr.Messages).Msg("invalid item data provided")
			utils.WriteJSON(w, models.ErrorsResponse{Errors: vErr.Messages}, http.StatusBadRequest)
			return
		}

		log.Err(err).Msg("unexpected error occurred during item creation")
		utils.WriteJSON(w, models.MessageResponse{Message: http.StatusText(http.StatusInternalServerError)}, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, item, http.StatusCreated)
}

func (h *Handler) getItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := itemIDFromURL(r)
	if err != nil {
		log.Debug().Str("id", chi.URLParam(r, "id")).Msg("non-numeric item id in path")
		utils.WriteJSON(w, models.MessageResponse{Message: itemNotFoundMessage}, http.StatusNotFound)
		return
	}

	item, err := h.services.ItemService.GetItem(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrItemNotFound) {
			utils.WriteJSON(w, models.MessageResponse{Message: itemNotFoundMessage}, http.StatusNotFound)
			return
		}

		log.Err(err).Int64("id", id).Msg("unexpected error occurred during item lookup")
		utils.WriteJSON(w, models.MessageResponse{Message: http.StatusText(http.StatusInternalServerError)}, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, item, http.StatusOK)
}

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	items, err := h.services.ItemService.GetAllItems(ctx)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during item listing")
		utils.WriteJSON(w, models.MessageResponse{Message: http.StatusText(http.StatusInternalServerError)}, http.StatusInternalServerError)
		return
	}

	if items == nil {
		items = []models.Item{}
	}

	utils.WriteJSON(w, items, http.StatusOK)
}

func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := itemIDFromURL(r)
	if err != nil {
		log.Debug().Str("id", chi.URLParam(r, "id")).Msg("non-numeric item id in path")
		utils.WriteJSON(w, models.MessageResponse{Message: itemNotFoundMessage}, http.StatusNotFound)
		return
	}

	var req models.ItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorsResponse{Errors: []string{"invalid JSON body"}}, http.StatusBadRequest)
		return
	}

	item, err := h.services.ItemService.UpdateItem(ctx, id, req)
	if err != nil {
		var vErr *service.ValidationError
		switch {
		case errors.As(err, &vErr):
			log.Debug().Strs("errors", vErr.Messages).Msg("invalid item data provided")
			utils.WriteJSON(w, models.ErrorsResponse{Errors: vErr.Messages}, http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrItemNotFound):
			utils.WriteJSON(w, models.MessageResponse{Message: itemNotFoundMessage}, http.StatusNotFound)
			return
		default:
			log.Err(err).Int64("id", id).Msg("unexpected error occurred during item update")
			utils.WriteJSON(w, models.MessageResponse{Message: http.StatusText(http.StatusInternalServerError)}, http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, item, http.StatusOK)
}

func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := itemIDFromURL(r)
	if err != nil {
		log.Debug().Str("id", chi.URLParam(r, "id")).Msg("non-numeric item id in path")
		utils.WriteJSON(w, models.MessageResponse{Message: itemNotFoundMessage}, http.StatusNotFound)
		return
	}

	if err := h.services.ItemService.DeleteItem(ctx, id); err != nil {
		if errors.Is(err, store.ErrItemNotFound) {
			utils.WriteJSON(w, models.MessageResponse{Message: itemNotFoundMessage}, http.StatusNotFound)
			return
		}

		log.Err(err).Int64("id", id).Msg("unexpected error occurred during item deletion")
		utils.WriteJSON(w, models.MessageResponse{Message: http.StatusText(http.StatusInternalServerError)}, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "item deleted"}, http.StatusOK)
}

// itemIDFromURL resolves the {id} path parameter to an int64.
func itemIDFromURL(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
