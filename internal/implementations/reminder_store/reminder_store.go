package reminderstore

import (
	"context"
	"sync"
	"waterreminder/internal/core/domain/reminder"
)

// InMemory keeps pending reminders in process memory. Entries are lost on
// restart. The store allows duplicate entries per number; GetByNumber and
// RemoveByNumber act on the first match only.
type InMemory struct {
	reminders []reminder.Reminder
	lock      sync.Mutex
}

func NewInMemory() *InMemory {
	return &InMemory{}
}

func (s *InMemory) Add(ctx context.Context, r reminder.Reminder) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.reminders = append(s.reminders, r)
	return nil
}

func (s *InMemory) GetByNumber(ctx context.Context, number reminder.Number) (reminder.Reminder, error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	for _, r := range s.reminders {
		if r.Number == number {
			return r, nil
		}
	}
	return reminder.Reminder{}, reminder.ErrReminderDoesNotExist
}

func (s *InMemory) RemoveByNumber(ctx context.Context, number reminder.Number) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	for ix, r := range s.reminders {
		if r.Number == number {
			s.reminders = append(s.reminders[:ix], s.reminders[ix+1:]...)
			return nil
		}
	}
	return nil
}

func (s *InMemory) Len() int {
	s.lock.Lock()
	defer s.lock.Unlock()
	return len(s.reminders)
}
