package checkreminder

import (
	"context"
	"testing"
	"waterreminder/internal/core/domain/logging"
	"waterreminder/internal/core/domain/reminder"
	reminderstore "waterreminder/internal/implementations/reminder_store"

	"github.com/stretchr/testify/require"
)

const NUMBER = reminder.Number("15551234567")

func TestActiveReminder(t *testing.T) {
	// Setup ---
	log := logging.NewFakeLogger()
	codec := reminder.NewTestTokenCodec()
	store := reminderstore.NewInMemory()
	store.Add(context.Background(), reminder.Reminder{Number: NUMBER, Token: "token-1"})
	service := New(log, codec, store)

	// Exercise ---
	result, err := service.Run(context.Background(), Input{Number: NUMBER})

	// Verify ---
	assert := require.New(t)
	assert.Nil(err)
	assert.True(result.Active)
	assert.Equal(1, store.Len())
}

func TestNoReminderForNumber(t *testing.T) {
	// Setup ---
	log := logging.NewFakeLogger()
	codec := reminder.NewTestTokenCodec()
	store := reminderstore.NewInMemory()
	service := New(log, codec, store)

	// Exercise ---
	result, err := service.Run(context.Background(), Input{Number: NUMBER})

	// Verify ---
	assert := require.New(t)
	assert.Nil(err)
	assert.False(result.Active)
}

func TestStaleReminderEvicted(t *testing.T) {
	// Setup ---
	log := logging.NewFakeLogger()
	codec := reminder.NewTestTokenCodec()
	codec.ValidResult = false
	store := reminderstore.NewInMemory()
	store.Add(context.Background(), reminder.Reminder{Number: NUMBER, Token: "token-1"})
	service := New(log, codec, store)

	// Exercise ---
	result, err := service.Run(context.Background(), Input{Number: NUMBER})

	// Verify ---
	assert := require.New(t)
	assert.Nil(err)
	assert.False(result.Active)
	assert.Equal(0, store.Len())

	// A second check finds no entry at all.
	result, err = service.Run(context.Background(), Input{Number: NUMBER})
	assert.Nil(err)
	assert.False(result.Active)
}
