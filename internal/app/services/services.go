package services

import (
	"waterreminder/internal/app/deps"
	"waterreminder/internal/core/services"
	checkreminder "waterreminder/internal/core/services/check_reminder"
	confirmreminder "waterreminder/internal/core/services/confirm_reminder"
	sendreminder "waterreminder/internal/core/services/send_reminder"
)

type Services struct {
	SendReminder    services.Service[sendreminder.Input, sendreminder.Result]
	ConfirmReminder services.Service[confirmreminder.Input, confirmreminder.Result]
	CheckReminder   services.Service[checkreminder.Input, checkreminder.Result]
}

func InitServices(deps *deps.Deps) *Services {
	s := &Services{}

	s.SendReminder = sendreminder.New(
		deps.Logger,
		deps.IdentityGenerator,
		deps.TokenCodec,
		deps.MessageSender,
		deps.ReminderStore,
		deps.Config.SenderNumber,
	)
	s.ConfirmReminder = confirmreminder.New(
		deps.Logger,
		deps.TokenCodec,
		deps.ReminderStore,
	)
	s.CheckReminder = checkreminder.New(
		deps.Logger,
		deps.TokenCodec,
		deps.ReminderStore,
	)

	return s
}
