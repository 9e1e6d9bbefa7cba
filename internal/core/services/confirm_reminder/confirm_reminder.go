package confirmreminder

import (
	"context"
	e "waterreminder/internal/core/domain/errors"
	"waterreminder/internal/core/domain/logging"
	"waterreminder/internal/core/domain/messaging"
	"waterreminder/internal/core/domain/reminder"
	"waterreminder/internal/core/services"
)

// Input carries the fields of an inbound reply event. ReplyID is the
// postback data of the suggestion the recipient tapped, i.e. the token
// issued when the reminder was sent.
type Input struct {
	Channel     string
	MessageType string
	ReplyID     string
	From        reminder.Number
}

type Result struct {
	Confirmed bool
}

type service struct {
	log   logging.Logger
	codec reminder.TokenCodec
	store reminder.Repository
}

func New(
	log logging.Logger,
	codec reminder.TokenCodec,
	store reminder.Repository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if codec == nil {
		panic(e.NewNilArgumentError("codec"))
	}
	if store == nil {
		panic(e.NewNilArgumentError("store"))
	}
	return &service{log: log, codec: codec, store: store}
}

// Run short-circuits at the first failing check. A rejected reply is not
// an error: the caller still acknowledges the webhook.
func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if input.Channel != messaging.ChannelRCS {
		s.log.Info(ctx, "Skip inbound message, channel is not RCS.", logging.Entry("channel", input.Channel))
		return result, nil
	}
	if input.MessageType != messaging.MessageTypeReply {
		s.log.Info(ctx, "Skip inbound message, not a reply.", logging.Entry("messageType", input.MessageType))
		return result, nil
	}
	if input.ReplyID == "" {
		s.log.Info(ctx, "Skip inbound reply, no reply ID.")
		return result, nil
	}
	if !s.codec.ValidateToken(reminder.Token(input.ReplyID)) {
		s.log.Info(ctx, "Skip inbound reply, token is not valid.", logging.Entry("from", input.From))
		return result, nil
	}

	if err = s.store.RemoveByNumber(ctx, input.From); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	s.log.Info(ctx, "Reminder confirmed and removed.", logging.Entry("number", input.From))
	result.Confirmed = true
	return result, nil
}
