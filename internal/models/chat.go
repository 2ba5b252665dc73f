package models

// ChatRequest is the body of POST /chat. NewMessage is a pointer so that a
// missing or null field fails binding while an empty string is still accepted
// and forwarded upstream as-is.
type ChatRequest struct {
	NewMessage *string `json:"newMessage" binding:"required"`
}

// StreamEvent is one record of the relay's event sequence. Exactly one field
// is set: Text for a generated fragment, Done for clean completion, Error for
// an upstream failure. Done and Error are terminal; a stream carries exactly
// one terminal event unless the caller disconnects first.
type StreamEvent struct {
	Text  string `json:"text,omitempty"`
	Done  bool   `json:"done,omitempty"`
	Error string `json:"error,omitempty"`
}

// IsTerminal reports whether the event ends the stream.
func (e StreamEvent) IsTerminal() bool { return e.Done || e.Error != "" }
