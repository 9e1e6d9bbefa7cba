package reminder

// Number identifies a reminder recipient. It is treated as an opaque
// phone number identifier and never parsed.
type Number string

// ID is the unique identifier generated for every issued reminder token.
type ID string

// Token is a signed, self-contained assertion that a reminder was issued
// by this application. It is opaque everywhere except the TokenCodec.
type Token string

// Reminder is one outstanding prompt awaiting a confirming reply.
type Reminder struct {
	Number Number
	Token  Token
}

func (r Reminder) IsZero() bool {
	return r.Number == "" && r.Token == ""
}
