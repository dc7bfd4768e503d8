package http

import (
	"errors"
	"net/http"

	"github.com/velikanov/codeshelf/internal/logger"
	"github.com/velikanov/codeshelf/internal/store"
	"github.com/velikanov/codeshelf/internal/utils"
)

func (h *Handler) userStats(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, err := pathID(r, "userID")
	if err != nil {
		log.Err(err).Send()
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	stats, err := h.services.ProfileService.Stats(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUserNotFound):
			log.Debug().Int64("user_id", userID).Msg("user not found")
			http.Error(w, "user not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("error getting user stats")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, stats, http.StatusOK)
}

func (h *Handler) userPrograms(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, err := pathID(r, "userID")
	if err != nil {
		log.Err(err).Send()
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	listing, err := h.services.ProfileService.Programs(r.Context(), userID, pageParam(r))
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUserNotFound):
			log.Debug().Int64("user_id", userID).Msg("user not found")
			http.Error(w, "user not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("error getting user programs")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, listing, http.StatusOK)
}
