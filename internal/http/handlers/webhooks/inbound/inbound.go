package inbound

import (
	"encoding/json"
	"io"
	"net/http"
	e "waterreminder/internal/core/domain/errors"
	"waterreminder/internal/core/domain/logging"
	"waterreminder/internal/core/domain/reminder"
	"waterreminder/internal/core/services"
	service "waterreminder/internal/core/services/confirm_reminder"
	"waterreminder/internal/http/handlers/response"
)

type Handler struct {
	log     logging.Logger
	confirm services.Service[service.Input, service.Result]
}

func New(
	log logging.Logger,
	confirm services.Service[service.Input, service.Result],
) *Handler {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if confirm == nil {
		panic(e.NewNilArgumentError("confirm"))
	}
	return &Handler{log: log, confirm: confirm}
}

type reply struct {
	ID string `json:"id"`
}

type event struct {
	Channel     string `json:"channel"`
	MessageType string `json:"message_type"`
	Reply       *reply `json:"reply"`
	From        string `json:"from"`
}

func (e *event) FromJSON(r io.Reader) error {
	d := json.NewDecoder(r)
	return d.Decode(e)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	defer response.RenderAck(rw)

	event := event{}
	if err := event.FromJSON(r.Body); err != nil {
		h.log.Error(r.Context(), "Could not decode inbound event.", logging.Entry("err", err))
		return
	}
	h.log.Info(
		r.Context(),
		"Got inbound event.",
		logging.Entry("channel", event.Channel),
		logging.Entry("messageType", event.MessageType),
		logging.Entry("from", event.From),
	)

	input := service.Input{
		Channel:     event.Channel,
		MessageType: event.MessageType,
		From:        reminder.Number(event.From),
	}
	if event.Reply != nil {
		input.ReplyID = event.Reply.ID
	}
	if _, err := h.confirm.Run(r.Context(), input); err != nil {
		logging.Error(r.Context(), h.log, err, logging.Entry("from", event.From))
	}
}
