package blog

import (
	"context"
	"errors"

	"github.com/shubhgupta/shubh-dev/internal/logger"
)

// ErrNotFound is returned when no post has the requested slug.
var ErrNotFound = errors.New("post not found")

// Service is the content service contract. The mock and remote
// implementations are interchangeable; callers stay agnostic.
type Service interface {
	GetPosts(ctx context.Context, filters *Filters) (*PaginatedPreviews, error)
	GetPostBySlug(ctx context.Context, slug string) (*Post, error)
	GetTags(ctx context.Context) ([]string, error)
	SearchPosts(ctx context.Context, query string) ([]Preview, error)
}

// Config selects the backing strategy for NewService.
type Config struct {
	// BaseURL of the remote content service. Empty selects the in-memory
	// mock service.
	BaseURL string
}

// NewService picks a backend once, at construction. The choice is fixed
// for the process lifetime.
func NewService(cfg Config, log logger.Logger) Service {
	if cfg.BaseURL == "" {
		log.Info("content service: using in-memory mock")
		return NewMockService()
	}
	log.Info("content service: using remote API", logger.String("base_url", cfg.BaseURL))
	return NewRemoteService(cfg.BaseURL)
}
