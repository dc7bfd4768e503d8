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

// programRequest is the body of program creation and update calls. Classes
// maps class id to the chosen class-value id and is required only on
// creation; updates never touch the tags.
type programRequest struct {
	Name         string          `json:"name"`
	SourceLink   string          `json:"source_link"`
	DownloadLink string          `json:"download_link"`
	Description  string          `json:"description"`
	Classes      map[int64]int64 `json:"classes,omitempty"`
}

func (h *Handler) listPrograms(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	listing, err := h.services.CatalogService.ListPrograms(r.Context(), pageParam(r))
	if err != nil {
		log.Err(err).Msg("error listing programs")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, listing, http.StatusOK)
}

func (h *Handler) searchPrograms(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	searchText := r.URL.Query().Get("text")

	listing, err := h.services.CatalogService.SearchPrograms(r.Context(), searchText, pageParam(r))
	if err != nil {
		log.Err(err).Msg("error searching programs")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, listing, http.StatusOK)
}

func (h *Handler) getProgram(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	programID, err := pathID(r, "programID")
	if err != nil {
		log.Err(err).Send()
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	program, err := h.services.CatalogService.GetProgram(r.Context(), programID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrProgramNotFound):
			log.Debug().Int64("program_id", programID).Msg("program not found")
			http.Error(w, "program not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("error getting program")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, program, http.StatusOK)
}

func (h *Handler) createProgram(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req programRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	program := models.Program{
		AuthorID:     userID,
		Name:         req.Name,
		SourceLink:   req.SourceLink,
		DownloadLink: req.DownloadLink,
		Description:  req.Description,
	}

	programID, err := h.services.CatalogService.CreateProgram(ctx, program, req.Classes)
	if err != nil {
		log.Err(err).Msg("error creating program")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, map[string]int64{"id": programID}, http.StatusCreated)
}

func (h *Handler) updateProgram(w http.ResponseWriter, r *http.Request) {
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

	var req programRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	program := models.Program{
		ProgramID:    programID,
		AuthorID:     userID,
		Name:         req.Name,
		SourceLink:   req.SourceLink,
		DownloadLink: req.DownloadLink,
		Description:  req.Description,
	}

	if err := h.services.CatalogService.UpdateProgram(ctx, program); err != nil {
		log.Err(err).Msg("error updating program")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) deleteProgram(w http.ResponseWriter, r *http.Request) {
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

	if err := h.services.CatalogService.DeleteProgram(ctx, programID, userID); err != nil {
		log.Err(err).Msg("error deleting program")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
