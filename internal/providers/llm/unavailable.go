package llm

import "context"

// Unavailable stands in when no real provider could be configured. The server
// still starts and serves health checks; every stream request reports Err.
type Unavailable struct {
	Err error
}

func (u Unavailable) StreamAnswer(_ context.Context, _ string) (<-chan string, <-chan error) {
	out := make(chan string)
	errs := make(chan error, 1)
	errs <- u.Err
	close(out)
	close(errs)
	return out, errs
}

func (u Unavailable) Close() error { return nil }
