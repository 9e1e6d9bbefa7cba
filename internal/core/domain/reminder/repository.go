package reminder

import "context"

// Repository holds pending reminders. Entries for the same number may
// accumulate; lookups and removals act on the first match only.
type Repository interface {
	Add(ctx context.Context, r Reminder) error
	// GetByNumber returns the first reminder for the number or
	// ErrReminderDoesNotExist.
	GetByNumber(ctx context.Context, number Number) (Reminder, error)
	// RemoveByNumber removes the first reminder for the number. Removing
	// an absent number is a no-op.
	RemoveByNumber(ctx context.Context, number Number) error
}
