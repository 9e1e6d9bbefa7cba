package reminder

import "errors"

var (
	ErrReminderDoesNotExist = errors.New("reminder does not exist")
	ErrNumberNotSet         = errors.New("reminder number is not set")
)
