package http

import (
	"net/http"

	"github.com/MKhiriev/go-restviews/internal/logger"
	"github.com/MKhiriev/go-restviews/internal/utils"
)

// getSettings dumps the live settings and the defaults registry. It only
// exists while the site runs with DEBUG on.
func (h *Handler) getSettings(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if !h.services.SettingsService.Debug(r.Context()) {
		h.writeError(w, ErrDebugDisabled)
		return
	}

	dump, err := h.services.SettingsService.Dump(r.Context(), true)
	if err != nil {
		log.Err(err).Msg("error dumping settings")
		h.writeError(w, err)
		return
	}

	if _, err := utils.WriteJSON(w, dump, http.StatusOK); err != nil {
		log.Err(err).Send()
	}
}
