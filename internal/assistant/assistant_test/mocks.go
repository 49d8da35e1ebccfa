package assistant_test

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/nyayai/LegalAPI/internal/assistant"
	"github.com/nyayai/LegalAPI/internal/llm"
)

// MockProvider implements llm.Provider
type MockProvider struct {
	Calls      int32
	OnGenerate func(ctx context.Context, prompt string, params llm.GenerationParams) (string, error)
}

func (m *MockProvider) Generate(ctx context.Context, prompt string, params llm.GenerationParams) (string, error) {
	atomic.AddInt32(&m.Calls, 1)
	if m.OnGenerate != nil {
		return m.OnGenerate(ctx, prompt, params)
	}
	return "LEGAL", nil
}

func (m *MockProvider) CallCount() int {
	return int(atomic.LoadInt32(&m.Calls))
}

// newTestService wires the mock through a real caller with no retry delay so
// the retry path stays in play without slowing the tests down.
func newTestService(provider *MockProvider) assistant.Service {
	caller := llm.NewCaller(provider, llm.CallerConfig{
		MaxAttempts: 3,
		BaseDelay:   time.Millisecond,
		CallTimeout: time.Second,
	})
	return assistant.NewService(caller)
}
