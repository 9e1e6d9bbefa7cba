package sendreminder

import (
	"context"
	"time"
	c "waterreminder/internal/core/domain/common"
	e "waterreminder/internal/core/domain/errors"
	"waterreminder/internal/core/domain/logging"
	"waterreminder/internal/core/domain/messaging"
	"waterreminder/internal/core/domain/reminder"
	"waterreminder/internal/core/services"
)

const (
	CARD_TITLE       = "Drink Water Reminder"
	CARD_DESCRIPTION = "Did you drink water today?"
	CARD_MEDIA_URL   = "https://as1.ftcdn.net/jpg/02/22/48/50/220_F_222485075_uAeqmITGagEGdy9D4nWVou0a6dj6EuUz.jpg"
	CARD_REPLY_TEXT  = "Yes"
)

type Input struct {
	Number    reminder.Number
	ExpiresAt c.Optional[time.Time]
}

func (i Input) Validate() error {
	if i.Number == "" {
		return reminder.ErrNumberNotSet
	}
	return nil
}

type Result struct {
	Reminder reminder.Reminder
}

type service struct {
	log      logging.Logger
	identity reminder.IdentityGenerator
	codec    reminder.TokenCodec
	sender   messaging.Sender
	store    reminder.Repository
	from     string
}

func New(
	log logging.Logger,
	identity reminder.IdentityGenerator,
	codec reminder.TokenCodec,
	sender messaging.Sender,
	store reminder.Repository,
	from string,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if identity == nil {
		panic(e.NewNilArgumentError("identity"))
	}
	if codec == nil {
		panic(e.NewNilArgumentError("codec"))
	}
	if sender == nil {
		panic(e.NewNilArgumentError("sender"))
	}
	if store == nil {
		panic(e.NewNilArgumentError("store"))
	}
	return &service{
		log:      log,
		identity: identity,
		codec:    codec,
		sender:   sender,
		store:    store,
		from:     from,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	err = input.Validate()
	if err != nil {
		return result, err
	}

	reminderID := s.identity.GenerateReminderID()
	token, err := s.codec.IssueToken(reminder.TokenPayload{
		ReminderID: reminderID,
		ExpiresAt:  input.ExpiresAt,
	})
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	message := messaging.RichCardMessage{
		To:   input.Number,
		From: s.from,
		Card: messaging.RichCard{
			Title:       CARD_TITLE,
			Description: CARD_DESCRIPTION,
			MediaURL:    CARD_MEDIA_URL,
			Suggestions: []messaging.Suggestion{
				{Reply: messaging.Reply{Text: CARD_REPLY_TEXT, PostbackData: string(token)}},
			},
		},
	}
	if err = s.sender.SendRichCard(ctx, message); err != nil {
		// A failed dispatch must not leave a phantom pending reminder.
		s.log.Error(
			ctx,
			"Could not send reminder message.",
			logging.Entry("number", input.Number),
			logging.Entry("err", err),
		)
		return result, err
	}

	result.Reminder = reminder.Reminder{Number: input.Number, Token: token}
	if err = s.store.Add(ctx, result.Reminder); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	s.log.Info(
		ctx,
		"Reminder message sent.",
		logging.Entry("number", input.Number),
		logging.Entry("reminderID", reminderID),
	)
	return result, nil
}
