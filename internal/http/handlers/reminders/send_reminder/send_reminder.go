package sendreminder

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"
	c "waterreminder/internal/core/domain/common"
	e "waterreminder/internal/core/domain/errors"
	"waterreminder/internal/core/domain/reminder"
	"waterreminder/internal/core/services"
	service "waterreminder/internal/core/services/send_reminder"
	"waterreminder/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
)

type Handler struct {
	service services.Service[service.Input, service.Result]
}

func New(
	service services.Service[service.Input, service.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Input struct {
	Number    string `json:"number"`
	ExpiresAt *int64 `json:"expires_at"`
}

type Result struct {
	Reminder reminderResult `json:"reminder"`
}

type reminderResult struct {
	Number string `json:"number"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Number, validation.Required, validation.Length(1, 64)),
		validation.Field(&i.ExpiresAt, validation.Min(int64(0))),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderError(rw, "invalid request data", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}

	var expiresAt c.Optional[time.Time]
	if input.ExpiresAt != nil {
		expiresAt = c.NewOptional(time.Unix(*input.ExpiresAt, 0).UTC(), true)
	}

	result, err := h.service.Run(
		r.Context(),
		service.Input{
			Number:    reminder.Number(input.Number),
			ExpiresAt: expiresAt,
		},
	)
	if err != nil {
		if errors.Is(err, reminder.ErrNumberNotSet) {
			response.RenderError(rw, err.Error(), http.StatusBadRequest)
			return
		}
		response.RenderError(rw, "could not send reminder message", http.StatusBadGateway)
		return
	}

	response.Render(rw, Result{Reminder: reminderResult{Number: string(result.Reminder.Number)}}, http.StatusOK)
}
