package checkreminder

import (
	"context"
	"errors"
	e "waterreminder/internal/core/domain/errors"
	"waterreminder/internal/core/domain/logging"
	"waterreminder/internal/core/domain/reminder"
	"waterreminder/internal/core/services"
)

type Input struct {
	Number reminder.Number
}

type Result struct {
	Active bool
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

// Run reports whether the number has a live pending reminder. A reminder
// whose token no longer verifies is evicted on the way out; expired
// entries are never swept proactively.
func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	found, err := s.store.GetByNumber(ctx, input.Number)
	if errors.Is(err, reminder.ErrReminderDoesNotExist) {
		return Result{Active: false}, nil
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	if !s.codec.ValidateToken(found.Token) {
		s.log.Info(
			ctx,
			"Removing reminder, token is no longer valid.",
			logging.Entry("number", input.Number),
		)
		if err = s.store.RemoveByNumber(ctx, input.Number); err != nil {
			logging.Error(ctx, s.log, err, logging.Entry("input", input))
			return result, err
		}
		return Result{Active: false}, nil
	}

	return Result{Active: true}, nil
}
