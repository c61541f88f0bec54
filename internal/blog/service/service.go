package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/blogai/blogai/backend/go-services/internal/blog"
	"github.com/blogai/blogai/backend/go-services/internal/blog/repository"
	"github.com/blogai/blogai/backend/go-services/pkg/logger"
	"github.com/blogai/blogai/backend/go-services/pkg/metrics"
)

var (
	ErrTopicRequired = errors.New("topic is required")
)

// BlogGenerator produces raw model output for a topic.
type BlogGenerator interface {
	GenerateBlog(ctx context.Context, topic string) (string, error)
}

// GenerateResult describes what happened to one generated blog. Only
// OutcomeValid results were persisted.
type GenerateResult struct {
	Outcome blog.Outcome
	ID      string
	Title   string
	Reason  error
}

// Service defines the blog operations used by the handler layer.
type Service interface {
	// Generate asks the model for a blog about topic, validates it and stores
	// it when valid. Invalid model output is reported in the result; the
	// returned error is reserved for model and database failures.
	Generate(ctx context.Context, topic string) (*GenerateResult, error)
	List(ctx context.Context) ([]map[string]any, error)
}

// New returns a Service wired to the given generator, validator and repository.
func New(gen BlogGenerator, validator *blog.Validator, repo repository.Repository) Service {
	return &blogService{gen: gen, validator: validator, repo: repo}
}

type blogService struct {
	gen       BlogGenerator
	validator *blog.Validator
	repo      repository.Repository
}

func (s *blogService) Generate(ctx context.Context, topic string) (*GenerateResult, error) {
	if topic == "" {
		return nil, ErrTopicRequired
	}

	start := time.Now()
	raw, err := s.gen.GenerateBlog(ctx, topic)
	metrics.ModelCallDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.BlogGenerations.WithLabelValues(metrics.ResultError).Inc()
		return nil, err
	}
	logger.Debugf("model returned %d bytes for topic %q", len(raw), topic)

	res := s.validator.Parse(raw)
	switch res.Outcome {
	case blog.OutcomeInvalidJSON:
		logger.Warnf("model output for topic %q is not JSON: %v", topic, res.Err)
		metrics.BlogGenerations.WithLabelValues(metrics.ResultInvalidJSON).Inc()
		return &GenerateResult{Outcome: res.Outcome, Reason: res.Err}, nil
	case blog.OutcomeInvalidSchema:
		metrics.BlogGenerations.WithLabelValues(metrics.ResultInvalidSchema).Inc()
		return &GenerateResult{Outcome: res.Outcome, Reason: res.Err}, nil
	}

	id, err := s.repo.Insert(ctx, res.Candidate)
	if err != nil {
		metrics.BlogGenerations.WithLabelValues(metrics.ResultError).Inc()
		return nil, fmt.Errorf("store blog: %w", err)
	}
	metrics.BlogGenerations.WithLabelValues(metrics.ResultSaved).Inc()
	logger.Infof("saved blog %s %q (topic %q)", id, res.Document.Title, topic)
	return &GenerateResult{Outcome: blog.OutcomeValid, ID: id, Title: res.Document.Title}, nil
}

func (s *blogService) List(ctx context.Context) ([]map[string]any, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list blogs: %w", err)
	}
	return list, nil
}
