package llm

import "context"

const defaultModel = "gemini-2.5-flash"

// Provider streams model output for a single prompt. Implementations close
// both channels when the stream ends and send at most one error.
type Provider interface {
	// StreamAnswer returns a stream of text chunks (incremental).
	StreamAnswer(ctx context.Context, prompt string) (chunks <-chan string, errs <-chan error)
	Close() error
}
