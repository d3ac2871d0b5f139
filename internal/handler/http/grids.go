package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-restviews/internal/logger"
	"github.com/MKhiriev/go-restviews/internal/utils"
	"github.com/MKhiriev/go-restviews/models"
)

type indexData struct {
	Grids []models.GridSummary
}

func (h *Handler) listGrids(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	grids, err := h.services.GridService.ListGrids(r.Context())
	if err != nil {
		log.Err(err).Msg("error listing grids")
		h.writeError(w, err)
		return
	}

	page, err := h.pages.Render(indexPage, indexData{Grids: grids})
	if err != nil {
		log.Err(err).Msg("error rendering grid index")
		h.writeError(w, err)
		return
	}

	if _, err := utils.WriteHTML(w, page, http.StatusOK); err != nil {
		log.Err(err).Send()
	}
}

func (h *Handler) showGrid(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	name := chi.URLParam(r, "grid")

	grid, err := h.services.GridService.RenderGrid(r.Context(), name)
	if err != nil {
		log.Err(err).Str("grid", name).Msg("error rendering grid")
		h.writeError(w, err)
		return
	}

	page, err := h.pages.Render(gridPage, grid)
	if err != nil {
		log.Err(err).Str("grid", name).Msg("error rendering grid page")
		h.writeError(w, err)
		return
	}

	if _, err := utils.WriteHTML(w, page, http.StatusOK); err != nil {
		log.Err(err).Send()
	}
}
