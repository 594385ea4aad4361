package chat

// Transcript is an append-only conversation value. Append returns a new
// transcript and never touches the receiver's backing array, so a
// transcript can be handed between calls without aliasing.
type Transcript struct {
	messages []Message
}

func NewTranscript(msgs ...Message) Transcript {
	return Transcript{messages: append([]Message(nil), msgs...)}
}

func (t Transcript) Append(msgs ...Message) Transcript {
	out := make([]Message, 0, len(t.messages)+len(msgs))
	out = append(out, t.messages...)
	out = append(out, msgs...)
	return Transcript{messages: out}
}

func (t Transcript) Messages() []Message {
	return append([]Message(nil), t.messages...)
}

func (t Transcript) Len() int { return len(t.messages) }

func (t Transcript) Last() (Message, bool) {
	if len(t.messages) == 0 {
		return Message{}, false
	}
	return t.messages[len(t.messages)-1], true
}

// Context maps the transcript to role-tagged entries in chronological order.
// Local fallback messages are not part of the model's memory.
func (t Transcript) Context() []ContextEntry {
	out := make([]ContextEntry, 0, len(t.messages))
	for _, m := range t.messages {
		if m.Type == MessageTypeError {
			continue
		}
		role := RoleUser
		if m.IsBot {
			role = RoleAssistant
		}
		out = append(out, ContextEntry{Role: role, Content: m.Content})
	}
	return out
}
