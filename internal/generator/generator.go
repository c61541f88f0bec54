package generator

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"text/template"
)

// Model is a text completion backend.
type Model interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ModelFunc adapts a function to Model.
type ModelFunc func(ctx context.Context, prompt string) (string, error)

func (f ModelFunc) Generate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

var ErrNoModel = errors.New("generator: model is nil")

// Generator binds the blog prompt to a model. It is built once at startup,
// never mutated afterwards, and shared by all requests.
type Generator struct {
	prompt *template.Template
	model  Model
}

// New parses the blog prompt and binds it to model.
func New(model Model) (*Generator, error) {
	if model == nil {
		return nil, ErrNoModel
	}
	tmpl, err := template.New("blog").Parse(blogPrompt)
	if err != nil {
		return nil, fmt.Errorf("parse blog prompt: %w", err)
	}
	return &Generator{prompt: tmpl, model: model}, nil
}

// Prompt renders the prompt for topic.
func (g *Generator) Prompt(topic string) (string, error) {
	var buf bytes.Buffer
	if err := g.prompt.Execute(&buf, struct{ Topic string }{Topic: topic}); err != nil {
		return "", fmt.Errorf("render blog prompt: %w", err)
	}
	return buf.String(), nil
}

// GenerateBlog asks the model for a blog about topic and returns its raw
// reply. The reply is expected, but not guaranteed, to be JSON.
func (g *Generator) GenerateBlog(ctx context.Context, topic string) (string, error) {
	prompt, err := g.Prompt(topic)
	if err != nil {
		return "", err
	}
	out, err := g.model.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("generate blog: %w", err)
	}
	return out, nil
}

const blogPrompt = `
Topic: {{.Topic}}

Blog:
Let's write a detailed and engaging blog step by step. Here's the structure:

1. **Title**: Start with an engaging title for the blog.
2. **Introduction**: Provide a brief introduction to the topic to hook the reader.
3. **Main Content**:
   - Break the topic into sections with **headings**.
   - Add detailed explanations under each heading.
   - Include **subheadings** where necessary to organize the content further.
4. **Engagement Elements**:
   - Add **emojis** to make the content engaging.
   - Include **fun facts** to grab attention and make it enjoyable.
5. **Conclusion**: Summarize the blog with key takeaways or a call to action.


Important Point:
* Make sure the blog is informative, engaging, and well-structured.
* Don't forget to proofread and edit the blog for clarity and coherence.
* Do not append or prepend any text to the final output except for the JSON format.


Output Format: The blog must be in **JSON format** as shown below nothing else should be appended or prepended to the output.:
  {
    "title": "<title>",
    "sections": [
      {
        "heading": "<heading>",
        "content": "<content>",
        "subheadings": [
          {
            "subheading": "<subheading>",
            "content": "<content>"
          }
        ]
      }
    ],
    "conclusion": "<summary or call to action>"
  }
`
