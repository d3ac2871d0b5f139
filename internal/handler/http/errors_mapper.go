package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-restviews/internal/app"
	"github.com/MKhiriev/go-restviews/internal/service"
)

var errorStatusMap = map[error]int{
	ErrDebugDisabled:        http.StatusNotFound,
	service.ErrGridNotFound: http.StatusNotFound,
}

var statusMessages = map[int]string{
	http.StatusNotFound:            app.MsgNotFound,
	http.StatusInternalServerError: app.MsgInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError answers with the status mapped from err and a fixed message;
// err itself is never shown to the client.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)

	msg, ok := statusMessages[status]
	if !ok {
		msg = http.StatusText(status)
	}

	http.Error(w, msg, status)
}
