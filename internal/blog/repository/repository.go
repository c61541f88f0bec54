package repository

import (
	"context"

	"github.com/blogai/blogai/backend/go-services/internal/blog"
)

// Repository persists validated blogs. Stored documents are never updated or
// deleted by this service.
type Repository interface {
	// Insert stores doc as a new document and returns the store-assigned id.
	Insert(ctx context.Context, doc blog.Candidate) (string, error)
	// List returns every stored document, unfiltered and unpaginated.
	List(ctx context.Context) ([]map[string]any, error)
}
