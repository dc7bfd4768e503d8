package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/velikanov/codeshelf/internal/logger"
	"github.com/velikanov/codeshelf/internal/store"
	"github.com/velikanov/codeshelf/internal/utils"
	"github.com/velikanov/codeshelf/models"
)

// reviewRequest is the body of a review submission.
type reviewRequest struct {
	Grade   int    `json:"grade"`
	Comment string `json:"comment"`
}

func (h *Handler) createReview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	programID, err := pathID(r, "programID")
	if err != nil {
		log.Err(err).Send()
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req reviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	review := models.Review{
		AuthorID:  userID,
		ProgramID: programID,
		Grade:     req.Grade,
		Comment:   req.Comment,
	}

	created, err := h.services.ReviewService.ReviewProgram(ctx, review)
	if err != nil {
		log.Err(err).Msg("error creating review")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) getReviews(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	programID, err := pathID(r, "programID")
	if err != nil {
		log.Err(err).Send()
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	reviews, err := h.services.ReviewService.GetReviews(r.Context(), programID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrProgramNotFound):
			log.Debug().Int64("program_id", programID).Msg("program not found")
			http.Error(w, "program not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("error getting reviews")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, reviews, http.StatusOK)
}
