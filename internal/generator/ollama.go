package generator

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/ollama/ollama/api"
)

// OllamaModel generates text with a locally served Ollama model.
type OllamaModel struct {
	client *api.Client
	model  string
}

// NewOllamaModel returns a Model talking to the Ollama server at host
// (e.g. http://localhost:11434). httpClient may be nil.
func NewOllamaModel(host, model string, httpClient *http.Client) (*OllamaModel, error) {
	if !strings.Contains(host, "://") {
		host = "http://" + host
	}
	base, err := url.Parse(host)
	if err != nil {
		return nil, fmt.Errorf("ollama host %q: %w", host, err)
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &OllamaModel{client: api.NewClient(base, httpClient), model: model}, nil
}

// Name returns the model identifier requests are sent with.
func (m *OllamaModel) Name() string { return m.model }

func (m *OllamaModel) Generate(ctx context.Context, prompt string) (string, error) {
	stream := false
	req := &api.GenerateRequest{
		Model:  m.model,
		Prompt: prompt,
		Stream: &stream,
	}
	var sb strings.Builder
	err := m.client.Generate(ctx, req, func(resp api.GenerateResponse) error {
		sb.WriteString(resp.Response)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("ollama generate (%s): %w", m.model, err)
	}
	return sb.String(), nil
}
