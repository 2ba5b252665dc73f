package llm

import (
	"context"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// Gemini talks to the Gemini API directly with an API key.
type Gemini struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewGemini(ctx context.Context, apiKey, modelName string) (*Gemini, error) {
	c, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	if modelName == "" {
		modelName = defaultModel
	}

	m := c.GenerativeModel(modelName)
	return &Gemini{client: c, model: m}, nil
}

func (g *Gemini) Close() error { return g.client.Close() }

func (g *Gemini) StreamAnswer(ctx context.Context, prompt string) (<-chan string, <-chan error) {
	out := make(chan string, 32)
	errs := make(chan error, 1)

	go func() {
		defer close(out)
		defer close(errs)

		it := g.model.GenerateContentStream(ctx, genai.Text(prompt))
		for {
			resp, err := it.Next()
			if err == iterator.Done {
				return
			}
			if err != nil {
				errs <- err
				return
			}

			for _, chunk := range geminiText(resp) {
				select {
				case out <- chunk:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, errs
}

func geminiText(resp *genai.GenerateContentResponse) []string {
	var chunks []string
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if t, ok := part.(genai.Text); ok && string(t) != "" {
				chunks = append(chunks, string(t))
			}
		}
	}
	return chunks
}
