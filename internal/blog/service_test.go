package blog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shubhgupta/shubh-dev/internal/logger"
)

func TestNewServiceSelectsStrategy(t *testing.T) {
	log := logger.NewNop()

	svc := NewService(Config{}, log)
	assert.IsType(t, &MockService{}, svc)

	svc = NewService(Config{BaseURL: "http://content.internal/api"}, log)
	assert.IsType(t, &RemoteService{}, svc)
}
