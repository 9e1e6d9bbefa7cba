package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"
	c "waterreminder/internal/core/domain/common"
	"waterreminder/internal/core/domain/logging"
	"waterreminder/internal/core/domain/reminder"
	checkreminder "waterreminder/internal/core/services/check_reminder"
	sendreminder "waterreminder/internal/core/services/send_reminder"

	"github.com/stretchr/testify/require"
)

const NUMBER = reminder.Number("15551234567")

var NextRun = time.Date(2023, 6, 15, 12, 0, 0, 0, time.UTC)

type stubCheckService struct {
	active bool
	err    error
}

func (s *stubCheckService) Run(ctx context.Context, input checkreminder.Input) (checkreminder.Result, error) {
	return checkreminder.Result{Active: s.active}, s.err
}

type stubSendService struct {
	err    error
	inputs []sendreminder.Input
}

func (s *stubSendService) Run(ctx context.Context, input sendreminder.Input) (result sendreminder.Result, err error) {
	if s.err != nil {
		return result, s.err
	}
	s.inputs = append(s.inputs, input)
	return result, nil
}

func newScheduler(check *stubCheckService, send *stubSendService, spec string) *Scheduler {
	return New(logging.NewFakeLogger(), check, send, NUMBER, spec, time.UTC)
}

func TestSendsWhenNoReminderPending(t *testing.T) {
	// Setup ---
	check := &stubCheckService{active: false}
	send := &stubSendService{}
	s := newScheduler(check, send, "* * * * *")

	// Exercise ---
	s.runOnce(context.Background(), NextRun)

	// Verify ---
	assert := require.New(t)
	assert.Len(send.inputs, 1)
	assert.Equal(NUMBER, send.inputs[0].Number)
	assert.Equal(c.NewOptional(NextRun.Add(expiryGrace), true), send.inputs[0].ExpiresAt)
}

func TestSkipsWhenReminderPending(t *testing.T) {
	// Setup ---
	check := &stubCheckService{active: true}
	send := &stubSendService{}
	s := newScheduler(check, send, "* * * * *")

	// Exercise ---
	s.runOnce(context.Background(), NextRun)

	// Verify ---
	require.Len(t, send.inputs, 0)
}

func TestSkipsOnCheckError(t *testing.T) {
	// Setup ---
	check := &stubCheckService{err: errors.New("test error")}
	send := &stubSendService{}
	s := newScheduler(check, send, "* * * * *")

	// Exercise ---
	s.runOnce(context.Background(), NextRun)

	// Verify ---
	require.Len(t, send.inputs, 0)
}

func TestNoExpiryWithoutNextRun(t *testing.T) {
	// Setup ---
	check := &stubCheckService{active: false}
	send := &stubSendService{}
	s := newScheduler(check, send, "* * * * *")

	// Exercise ---
	s.runOnce(context.Background(), time.Time{})

	// Verify ---
	assert := require.New(t)
	assert.Len(send.inputs, 1)
	assert.False(send.inputs[0].ExpiresAt.IsPresent)
}

func TestStartWithoutSpecIsDisabled(t *testing.T) {
	// Setup ---
	check := &stubCheckService{}
	send := &stubSendService{}
	s := newScheduler(check, send, "")

	// Exercise ---
	err := s.Start()

	// Verify ---
	require.Nil(t, err)
}

func TestStartRejectsInvalidSpec(t *testing.T) {
	// Setup ---
	check := &stubCheckService{}
	send := &stubSendService{}
	s := newScheduler(check, send, "not a cron spec")

	// Exercise ---
	err := s.Start()

	// Verify ---
	require.NotNil(t, err)
}
