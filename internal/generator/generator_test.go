package generator

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew_RequiresModel(t *testing.T) {
	_, err := New(nil)
	require.ErrorIs(t, err, ErrNoModel)
}

func TestPrompt_ContainsTopicAndFieldNames(t *testing.T) {
	g, err := New(ModelFunc(func(context.Context, string) (string, error) { return "", nil }))
	require.NoError(t, err)

	p, err := g.Prompt("Rust vs Go")
	require.NoError(t, err)
	require.Contains(t, p, "Topic: Rust vs Go")
	for _, field := range []string{`"title"`, `"sections"`, `"heading"`, `"content"`, `"subheadings"`, `"subheading"`, `"conclusion"`} {
		require.Contains(t, p, field)
	}
	require.Contains(t, p, "Do not append or prepend any text")
}

func TestGenerateBlog_ReturnsRawModelOutput(t *testing.T) {
	var gotPrompt string
	calls := 0
	g, err := New(ModelFunc(func(_ context.Context, prompt string) (string, error) {
		calls++
		gotPrompt = prompt
		return "Sure! here is your blog", nil
	}))
	require.NoError(t, err)

	out, err := g.GenerateBlog(context.Background(), "coffee")
	require.NoError(t, err)
	require.Equal(t, "Sure! here is your blog", out)
	require.Equal(t, 1, calls)
	require.Contains(t, gotPrompt, "Topic: coffee")

	// the same generator serves later requests without re-binding
	_, err = g.GenerateBlog(context.Background(), "tea")
	require.NoError(t, err)
	require.Equal(t, 2, calls)
	require.Contains(t, gotPrompt, "Topic: tea")
}

func TestGenerateBlog_PropagatesModelError(t *testing.T) {
	backendErr := errors.New("connection refused")
	g, err := New(ModelFunc(func(context.Context, string) (string, error) { return "", backendErr }))
	require.NoError(t, err)

	_, err = g.GenerateBlog(context.Background(), "coffee")
	require.ErrorIs(t, err, backendErr)
}
