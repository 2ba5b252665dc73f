package services

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/tshrrx/chatty-bot/internal/metrics"
	"github.com/tshrrx/chatty-bot/internal/models"
	"github.com/tshrrx/chatty-bot/internal/providers/llm"
)

type ChatService interface {
	Stream(ctx context.Context, message string) <-chan models.StreamEvent
}

type chatService struct {
	llm llm.Provider
	log *logrus.Logger
}

func NewChatService(provider llm.Provider, log *logrus.Logger) ChatService {
	return &chatService{llm: provider, log: log}
}

// Stream relays provider output for one message. The returned channel carries
// zero or more text events followed by exactly one terminal event (done or
// error), then closes. When ctx is canceled the channel closes without a
// terminal event and the provider read is abandoned.
func (s *chatService) Stream(ctx context.Context, message string) <-chan models.StreamEvent {
	out := make(chan models.StreamEvent, 16)

	go func() {
		defer close(out)

		start := time.Now()
		chunks, errs := s.llm.StreamAnswer(ctx, message)

		fragments := 0
		for chunk := range chunks {
			if chunk == "" {
				continue
			}
			select {
			case out <- models.StreamEvent{Text: chunk}:
				fragments++
			case <-ctx.Done():
				s.finish(metrics.OutcomeCanceled, fragments, start, nil)
				return
			}
		}

		streamErr := <-errs
		if ctx.Err() != nil {
			s.finish(metrics.OutcomeCanceled, fragments, start, nil)
			return
		}

		if streamErr != nil {
			select {
			case out <- models.StreamEvent{Error: "Backend streaming error: " + streamErr.Error()}:
			case <-ctx.Done():
			}
			s.finish(metrics.OutcomeError, fragments, start, streamErr)
			return
		}

		select {
		case out <- models.StreamEvent{Done: true}:
		case <-ctx.Done():
			s.finish(metrics.OutcomeCanceled, fragments, start, nil)
			return
		}
		s.finish(metrics.OutcomeDone, fragments, start, nil)
	}()

	return out
}

func (s *chatService) finish(outcome string, fragments int, start time.Time, err error) {
	elapsed := time.Since(start)

	metrics.RecordRequest(outcome)
	metrics.RecordFragments(fragments)
	metrics.ObserveRequestDuration(outcome, elapsed)

	entry := s.log.WithFields(logrus.Fields{
		"outcome":   outcome,
		"fragments": fragments,
		"elapsed":   elapsed.Round(time.Millisecond).String(),
	})
	if err != nil {
		entry.WithError(err).Error("chat stream failed")
		return
	}
	entry.Info("chat stream finished")
}
