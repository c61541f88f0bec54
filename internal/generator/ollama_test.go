package generator

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOllamaModel_Generate(t *testing.T) {
	var got struct {
		Model  string `json:"model"`
		Prompt string `json:"prompt"`
		Stream *bool  `json:"stream"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/generate", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"model":    "llama3.2",
			"response": `{"title":"T","sections":[],"conclusion":"C"}`,
			"done":     true,
		})
	}))
	defer srv.Close()

	m, err := NewOllamaModel(srv.URL, "llama3.2", srv.Client())
	require.NoError(t, err)
	require.Equal(t, "llama3.2", m.Name())

	out, err := m.Generate(context.Background(), "write about go")
	require.NoError(t, err)
	require.Equal(t, `{"title":"T","sections":[],"conclusion":"C"}`, out)
	require.Equal(t, "llama3.2", got.Model)
	require.Equal(t, "write about go", got.Prompt)
	require.NotNil(t, got.Stream)
	require.False(t, *got.Stream)
}

func TestOllamaModel_GenerateError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"model \"llama3.2\" not found, try pulling it first"}`))
	}))
	defer srv.Close()

	m, err := NewOllamaModel(srv.URL, "llama3.2", srv.Client())
	require.NoError(t, err)

	_, err = m.Generate(context.Background(), "x")
	require.Error(t, err)
	require.Contains(t, err.Error(), "not found")
}

func TestNewOllamaModel_AddsScheme(t *testing.T) {
	m, err := NewOllamaModel("localhost:11434", "llama3.2", nil)
	require.NoError(t, err)
	require.NotNil(t, m)
}
