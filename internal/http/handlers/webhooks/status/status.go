package status

import (
	"encoding/json"
	"net/http"
	e "waterreminder/internal/core/domain/errors"
	"waterreminder/internal/core/domain/logging"
	"waterreminder/internal/http/handlers/response"
)

// Handler accepts delivery-status callbacks. They are informational only:
// the event is logged and acknowledged, no state changes.
type Handler struct {
	log logging.Logger
}

func New(log logging.Logger) *Handler {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	return &Handler{log: log}
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	defer response.RenderAck(rw)

	event := map[string]interface{}{}
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		h.log.Error(r.Context(), "Could not decode status event.", logging.Entry("err", err))
		return
	}
	h.log.Info(r.Context(), "Got status event.", logging.Entry("event", event))
}
