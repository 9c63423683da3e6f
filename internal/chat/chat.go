// Package chat is the ShubhGPT widget backend: a Gemini-backed assistant
// answering questions about the portfolio owner. Failures never surface as
// errors, only as conversational reply strings.
package chat

import (
	"context"
	"sync"
	"time"
)

// Message senders.
const (
	SenderUser = "user"
	SenderBot  = "bot"
)

// Message is one transcript entry.
type Message struct {
	Text      string    `json:"text"`
	Sender    string    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
}

// TurnState tracks one conversation turn.
type TurnState string

const (
	// TurnAwaiting means the reply is in flight.
	TurnAwaiting TurnState = "awaiting"
	// TurnResolved means the reply arrived.
	TurnResolved TurnState = "resolved"
	// TurnFailed means the reply is a fallback error string.
	TurnFailed TurnState = "failed"
)

// Turn is one user message and its eventual reply.
type Turn struct {
	UserText    string
	ReplyText   string
	State       TurnState
	StartedAt   time.Time
	CompletedAt time.Time
}

// Conversation is an append-only transcript. Turns are never removed or
// reordered; an in-flight turn is marked awaiting rather than represented
// by a placeholder message. A new message does not cancel a prior
// in-flight turn; both complete independently.
type Conversation struct {
	mu    sync.Mutex
	turns []Turn
}

// NewConversation returns an empty conversation.
func NewConversation() *Conversation { return &Conversation{} }

// begin appends an awaiting turn and returns its index.
func (c *Conversation) begin(userText string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.turns = append(c.turns, Turn{
		UserText:  userText,
		State:     TurnAwaiting,
		StartedAt: time.Now(),
	})
	return len(c.turns) - 1
}

// complete resolves the turn at idx with the given reply.
func (c *Conversation) complete(idx int, reply string, failed bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	state := TurnResolved
	if failed {
		state = TurnFailed
	}
	c.turns[idx].ReplyText = reply
	c.turns[idx].State = state
	c.turns[idx].CompletedAt = time.Now()
}

// History flattens the transcript into role-tagged messages. User messages
// of awaiting turns are included; their pending replies are not.
func (c *Conversation) History() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	var msgs []Message
	for _, t := range c.turns {
		msgs = append(msgs, Message{Text: t.UserText, Sender: SenderUser, Timestamp: t.StartedAt})
		if t.State != TurnAwaiting {
			msgs = append(msgs, Message{Text: t.ReplyText, Sender: SenderBot, Timestamp: t.CompletedAt})
		}
	}
	return msgs
}

// Turns returns a snapshot of all turns.
func (c *Conversation) Turns() []Turn {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Turn, len(c.turns))
	copy(out, c.turns)
	return out
}

// Send runs one full turn: record the user message, call the client with
// the history as of that moment, record the reply. Always returns a reply
// string, never an error.
func (c *Conversation) Send(ctx context.Context, client *Client, userText string) string {
	history := c.History()
	idx := c.begin(userText)
	reply, ok := client.reply(ctx, userText, history)
	c.complete(idx, reply, !ok)
	return reply
}
