package scheduler

import (
	"context"
	"time"
	c "waterreminder/internal/core/domain/common"
	e "waterreminder/internal/core/domain/errors"
	"waterreminder/internal/core/domain/logging"
	"waterreminder/internal/core/domain/reminder"
	"waterreminder/internal/core/services"
	checkreminder "waterreminder/internal/core/services/check_reminder"
	sendreminder "waterreminder/internal/core/services/send_reminder"

	"github.com/robfig/cron/v3"
)

// expiryGrace is added to the next scheduled run when deriving a token
// expiry, so a reminder stays confirmable slightly past the next tick.
const expiryGrace = 10000 * time.Second

// Scheduler periodically re-sends the reminder to the configured number.
// A new message goes out only when no live reminder is pending for the
// number. Disabled entirely when no cron spec is configured.
type Scheduler struct {
	log     logging.Logger
	cron    *cron.Cron
	check   services.Service[checkreminder.Input, checkreminder.Result]
	send    services.Service[sendreminder.Input, sendreminder.Result]
	number  reminder.Number
	spec    string
	entryID cron.EntryID
}

func New(
	log logging.Logger,
	check services.Service[checkreminder.Input, checkreminder.Result],
	send services.Service[sendreminder.Input, sendreminder.Result],
	number reminder.Number,
	spec string,
	location *time.Location,
) *Scheduler {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if check == nil {
		panic(e.NewNilArgumentError("check"))
	}
	if send == nil {
		panic(e.NewNilArgumentError("send"))
	}
	return &Scheduler{
		log:    log,
		cron:   cron.New(cron.WithLocation(location)),
		check:  check,
		send:   send,
		number: number,
		spec:   spec,
	}
}

func (s *Scheduler) Start() error {
	if s.spec == "" {
		s.log.Info(context.Background(), "Repeat-reminder scheduler is disabled.")
		return nil
	}
	entryID, err := s.cron.AddFunc(s.spec, s.tick)
	if err != nil {
		return err
	}
	s.entryID = entryID
	s.cron.Start()
	s.log.Info(
		context.Background(),
		"Repeat-reminder scheduler has started.",
		logging.Entry("spec", s.spec),
		logging.Entry("number", s.number),
	)
	return nil
}

func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

func (s *Scheduler) tick() {
	s.runOnce(context.Background(), s.cron.Entry(s.entryID).Next)
}

func (s *Scheduler) runOnce(ctx context.Context, nextRun time.Time) {
	checked, err := s.check.Run(ctx, checkreminder.Input{Number: s.number})
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("number", s.number))
		return
	}
	if checked.Active {
		s.log.Info(ctx, "Reminder already pending, skip sending.", logging.Entry("number", s.number))
		return
	}

	input := sendreminder.Input{Number: s.number}
	if !nextRun.IsZero() {
		input.ExpiresAt = c.NewOptional(nextRun.Add(expiryGrace), true)
	}
	if _, err := s.send.Run(ctx, input); err != nil {
		// Already logged by the send service; nothing to retry here.
		return
	}
}
