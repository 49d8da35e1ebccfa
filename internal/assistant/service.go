package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/nyayai/LegalAPI/internal/config"
	"github.com/nyayai/LegalAPI/internal/llm"
	"github.com/nyayai/LegalAPI/internal/metrics"
	"github.com/nyayai/LegalAPI/pkg/logger_i"
)

type Label string

const (
	LabelLegal    Label = "LEGAL"
	LabelNotLegal Label = "NOT_LEGAL"
)

var ErrNoUserMessage = errors.New("no user message found")

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Service is the public contract; handlers never see the llm plumbing.
type Service interface {
	Chat(ctx context.Context, messages []Message, language string) (string, error)
	ClassifyLegal(ctx context.Context, text string) (Label, error)
	Summarize(ctx context.Context, text string, language string) (string, error)
	Draft(ctx context.Context, text string, language string) (string, error)
	Healthy(ctx context.Context) bool
}

type service struct {
	caller *llm.Caller
	logger *logger_i.Logger
}

// NewService constructor
func NewService(caller *llm.Caller) Service {
	return &service{
		caller: caller,
		logger: logger_i.NewLogger("Assistant Service"),
	}
}

func (s *service) Chat(ctx context.Context, messages []Message, language string) (string, error) {
	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("llm_chat", time.Since(start)) }()

	var lastUser string
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == "user" {
			lastUser = messages[i].Content
			break
		}
	}
	if strings.TrimSpace(lastUser) == "" {
		return "", ErrNoUserMessage
	}

	label, err := s.ClassifyLegal(ctx, lastUser)
	if err != nil {
		return "", err
	}
	if label != LabelLegal {
		// canned redirect, no model call
		return redirectReply, nil
	}

	return s.caller.Call(ctx, buildChatPrompt(messages, language), llm.GenerationParams{
		Temperature:       config.ChatTemperature,
		MaxOutputTokens:   config.ModelMaxOutputTokens,
		SystemInstruction: systemPreamble,
	})
}

func (s *service) ClassifyLegal(ctx context.Context, text string) (Label, error) {
	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("llm_classify", time.Since(start)) }()

	if isGreeting(text) {
		return LabelLegal, nil
	}

	return llm.Invoke(ctx, s.caller,
		func() (string, llm.GenerationParams) {
			return buildClassifyPrompt(text), llm.GenerationParams{
				Temperature:     config.ClassifyTemperature,
				MaxOutputTokens: 16,
			}
		},
		parseLabel,
	)
}

func (s *service) Summarize(ctx context.Context, text string, language string) (string, error) {
	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("llm_summarize", time.Since(start)) }()

	return llm.Invoke(ctx, s.caller,
		func() (string, llm.GenerationParams) {
			return buildSummarizePrompt(text, language), llm.GenerationParams{
				Temperature:     config.SummarizeTemperature,
				MaxOutputTokens: config.ModelMaxOutputTokens,
			}
		},
		parseTextBlock,
	)
}

func (s *service) Draft(ctx context.Context, text string, language string) (string, error) {
	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("llm_draft", time.Since(start)) }()

	return llm.Invoke(ctx, s.caller,
		func() (string, llm.GenerationParams) {
			return buildDraftPrompt(text, language), llm.GenerationParams{
				Temperature:     config.DraftTemperature,
				MaxOutputTokens: config.ModelMaxOutputTokens,
			}
		},
		parseTextBlock,
	)
}

func (s *service) Healthy(ctx context.Context) bool {
	_, err := s.caller.Call(ctx, "Respond with just the word 'OK' if you can read this.", llm.GenerationParams{
		Temperature:     config.ClassifyTemperature,
		MaxOutputTokens: 8,
	})
	if err != nil {
		s.logger.Error("Health probe failed", "error", err)
		return false
	}
	return true
}

func parseLabel(reply string) (Label, error) {
	up := strings.ToUpper(strings.TrimSpace(reply))
	up = strings.Trim(up, ".\"' ")
	switch {
	case strings.Contains(up, string(LabelNotLegal)):
		return LabelNotLegal, nil
	case strings.Contains(up, string(LabelLegal)):
		return LabelLegal, nil
	default:
		return "", fmt.Errorf("expected LEGAL or NOT_LEGAL, got %q", reply)
	}
}

func parseTextBlock(reply string) (string, error) {
	reply = strings.TrimSpace(reply)
	if reply == "" {
		return "", errors.New("empty text block")
	}
	return reply, nil
}
