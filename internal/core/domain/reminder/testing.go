package reminder

import (
	"fmt"
	"sync"
)

type TestTokenCodec struct {
	IssueError   error
	ValidateWith []Token
	ValidResult  bool
	Issued       []TokenPayload
	lock         sync.Mutex
}

func NewTestTokenCodec() *TestTokenCodec {
	return &TestTokenCodec{ValidResult: true}
}

func (c *TestTokenCodec) IssueToken(payload TokenPayload) (Token, error) {
	if c.IssueError != nil {
		return "", c.IssueError
	}
	c.lock.Lock()
	defer c.lock.Unlock()
	c.Issued = append(c.Issued, payload)
	return Token(fmt.Sprintf("token-%s", payload.ReminderID)), nil
}

func (c *TestTokenCodec) ValidateToken(token Token) bool {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.ValidateWith = append(c.ValidateWith, token)
	return c.ValidResult
}

type TestIdentityGenerator struct {
	counter int
	lock    sync.Mutex
}

func NewTestIdentityGenerator() *TestIdentityGenerator {
	return &TestIdentityGenerator{}
}

func (g *TestIdentityGenerator) GenerateReminderID() ID {
	g.lock.Lock()
	defer g.lock.Unlock()
	g.counter++
	return ID(fmt.Sprintf("reminder-%d", g.counter))
}
