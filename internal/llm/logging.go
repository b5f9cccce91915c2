package llm

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/ngxhuy/viva/internal/store"
)

// LoggingProvider is a decorator that logs every model request and
// records it as an event when an event repo is configured.
type LoggingProvider struct {
	inner  Provider
	name   string
	events store.LLMEventRepo
	log    zerolog.Logger
}

// WithLogging wraps a Provider with request logging. name is the backend
// name ("gemini", "openai", ...); events may be nil.
func WithLogging(p Provider, name string, events store.LLMEventRepo, log zerolog.Logger) Provider {
	return &LoggingProvider{inner: p, name: name, events: events, log: log}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	resp, err := l.inner.Generate(ctx, req)

	latency := time.Since(start)

	ev := store.LLMEvent{
		Provider:  l.name,
		Model:     l.inner.ModelID(),
		Purpose:   purpose,
		LatencyMs: latency.Milliseconds(),
		Success:   err == nil,
	}
	if resp != nil {
		ev.Model = resp.Model
		ev.InputTokens = resp.Usage.InputTokens
		ev.OutputTokens = resp.Usage.OutputTokens
	}
	if err != nil {
		ev.ErrorMessage = err.Error()
		l.log.Warn().Str("purpose", purpose).Dur("latency", latency).Err(err).
			Msg("model request failed")
	} else {
		l.log.Debug().Str("purpose", purpose).Dur("latency", latency).
			Int("input_tokens", ev.InputTokens).Int("output_tokens", ev.OutputTokens).
			Msg("model request")
	}

	// Record the event but don't fail the request if recording fails.
	if l.events != nil {
		if recErr := l.events.RecordLLMEvent(ctx, ev); recErr != nil {
			l.log.Warn().Err(recErr).Msg("failed to record model request event")
		}
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
