package contact

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/shubhgupta/shubh-dev/internal/httpx"
)

// Service is the contact submission contract shared by the mock and
// remote implementations.
type Service interface {
	Submit(ctx context.Context, form *FormData) (*Submission, error)
}

// NewService picks a backend at construction: a remote contact API when
// baseURL is set, the in-memory mock otherwise.
func NewService(baseURL string) Service {
	if baseURL == "" {
		return NewMockService()
	}
	return &RemoteService{client: httpx.New(baseURL)}
}

// MockService accepts every valid submission without persisting it.
type MockService struct {
	latency time.Duration
}

// NewMockService creates a mock contact service with simulated latency.
func NewMockService() *MockService {
	return &MockService{latency: 500 * time.Millisecond}
}

func (m *MockService) Submit(ctx context.Context, form *FormData) (*Submission, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}
	if m.latency > 0 {
		timer := time.NewTimer(m.latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	now := time.Now().UTC()
	return &Submission{
		ID:        "mock-" + uuid.NewString(),
		Name:      form.Name,
		Email:     form.Email,
		Subject:   form.Subject,
		Message:   form.Message,
		Status:    StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// RemoteService submits through the contact API.
type RemoteService struct {
	client *httpx.Client
}

// NewRemoteServiceWithClient is used by tests to point at a stub server.
func NewRemoteServiceWithClient(client *httpx.Client) *RemoteService {
	return &RemoteService{client: client}
}

// submitResponse is the API envelope around a stored submission.
type submitResponse struct {
	Success bool        `json:"success"`
	Data    *Submission `json:"data"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func (r *RemoteService) Submit(ctx context.Context, form *FormData) (*Submission, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}
	var out submitResponse
	if err := r.client.Post(ctx, "/contact/submit", form, &out); err != nil {
		return nil, err
	}
	if !out.Success || out.Data == nil {
		return nil, fmt.Errorf("submission failed: %s", out.Error)
	}
	return out.Data, nil
}
