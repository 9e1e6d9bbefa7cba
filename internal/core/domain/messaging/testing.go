package messaging

import (
	"context"
	"sync"
)

type TestRichCardSender struct {
	SendError error
	Sent      []RichCardMessage
	lock      sync.Mutex
}

func NewTestRichCardSender() *TestRichCardSender {
	return &TestRichCardSender{}
}

func (s *TestRichCardSender) SendRichCard(ctx context.Context, msg RichCardMessage) error {
	if s.SendError != nil {
		return s.SendError
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.Sent = append(s.Sent, msg)
	return nil
}
