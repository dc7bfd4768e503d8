package http

import (
	"net/http"

	"github.com/velikanov/codeshelf/internal/logger"
	"github.com/velikanov/codeshelf/internal/utils"
)

func (h *Handler) listClasses(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	classes, err := h.services.CatalogService.ListClasses(r.Context())
	if err != nil {
		log.Err(err).Msg("error listing classes")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, classes, http.StatusOK)
}
