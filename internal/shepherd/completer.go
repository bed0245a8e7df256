package shepherd

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

// ErrNoCredential is returned by the completer used when no API key is
// configured.
var ErrNoCredential = errors.New("shepherd: no API key configured")

// Request is one completion call.
type Request struct {
	System string
	Prompt string
	// Schema constrains the reply to JSON of this shape when set.
	Schema *genai.Schema
}

// Completer sends a prompt to a text generation service and returns the
// reply text.
type Completer interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// Gemini completes prompts through the Gemini API.
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini creates a Gemini completer for model.
func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("genai client: %w", err)
	}
	return &Gemini{client: client, model: model}, nil
}

func (g *Gemini) Complete(ctx context.Context, req Request) (string, error) {
	cfg := &genai.GenerateContentConfig{}
	if req.System != "" {
		cfg.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}
	if req.Schema != nil {
		cfg.ResponseMIMEType = "application/json"
		cfg.ResponseSchema = req.Schema
	}
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(req.Prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	return resp.Text(), nil
}

type unavailable struct{}

func (unavailable) Complete(context.Context, Request) (string, error) {
	return "", ErrNoCredential
}

// Unavailable returns a completer that always fails with ErrNoCredential.
func Unavailable() Completer {
	return unavailable{}
}

// NewCompleter returns a Gemini completer, or Unavailable when apiKey is
// empty.
func NewCompleter(ctx context.Context, apiKey, model string) (Completer, error) {
	if apiKey == "" {
		return Unavailable(), nil
	}
	return NewGemini(ctx, apiKey, model)
}
