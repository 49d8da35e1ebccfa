package assistant_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/nyayai/LegalAPI/internal/assistant"
	"github.com/nyayai/LegalAPI/internal/llm"
)

func TestClassifyLegal_Scenarios(t *testing.T) {
	tests := []struct {
		name          string
		text          string
		modelReply    string
		expectedLabel assistant.Label
		expectedCalls int
		expectedErr   error
	}{
		{
			name:          "Legal_Question",
			text:          "My landlord refuses to return the security deposit",
			modelReply:    "LEGAL",
			expectedLabel: assistant.LabelLegal,
			expectedCalls: 1,
		},
		{
			name:          "Cooking_Question",
			text:          "Best recipe for butter chicken",
			modelReply:    "NOT_LEGAL",
			expectedLabel: assistant.LabelNotLegal,
			expectedCalls: 1,
		},
		{
			name:          "Label_With_Punctuation",
			text:          "Can I appeal a consumer court order",
			modelReply:    `"LEGAL".`,
			expectedLabel: assistant.LabelLegal,
			expectedCalls: 1,
		},
		{
			name:          "Greeting_Skips_The_Model",
			text:          "Namaste",
			expectedLabel: assistant.LabelLegal,
			expectedCalls: 0,
		},
		{
			name:          "Gibberish_Reply",
			text:          "Is a verbal agreement binding",
			modelReply:    "maybe, it depends",
			expectedCalls: 1,
			expectedErr:   llm.ErrMalformedReply,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			provider := &MockProvider{
				OnGenerate: func(ctx context.Context, prompt string, params llm.GenerationParams) (string, error) {
					return tc.modelReply, nil
				},
			}
			service := newTestService(provider)

			label, err := service.ClassifyLegal(context.Background(), tc.text)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("Got error %v, want %v", err, tc.expectedErr)
				}
			} else {
				if err != nil {
					t.Fatalf("ClassifyLegal failed: %v", err)
				}
				if label != tc.expectedLabel {
					t.Errorf("Got label %q, want %q", label, tc.expectedLabel)
				}
			}
			if provider.CallCount() != tc.expectedCalls {
				t.Errorf("Got %d model calls, want %d", provider.CallCount(), tc.expectedCalls)
			}
		})
	}
}

func TestChat_OffTopicGetsRedirectWithoutGenerating(t *testing.T) {
	provider := &MockProvider{
		OnGenerate: func(ctx context.Context, prompt string, params llm.GenerationParams) (string, error) {
			return "NOT_LEGAL", nil
		},
	}
	service := newTestService(provider)

	reply, err := service.Chat(context.Background(), []assistant.Message{
		{Role: "user", Content: "Review my resume please"},
	}, "")
	if err != nil {
		t.Fatalf("Chat failed: %v", err)
	}
	if !strings.Contains(reply, "legal matters related to Indian law") {
		t.Errorf("Expected the canned redirect, got %q", reply)
	}
	// one classify call, no chat generation
	if provider.CallCount() != 1 {
		t.Errorf("Got %d model calls, want 1", provider.CallCount())
	}
}

func TestChat_LegalQuestionGoesToTheModel(t *testing.T) {
	provider := &MockProvider{
		OnGenerate: func(ctx context.Context, prompt string, params llm.GenerationParams) (string, error) {
			// the classifier prompt asks for a single word, everything else is the chat
			if strings.Contains(prompt, "Reply with exactly one word") {
				return "LEGAL", nil
			}
			return "You can file a complaint with the rent authority.", nil
		},
	}
	service := newTestService(provider)

	reply, err := service.Chat(context.Background(), []assistant.Message{
		{Role: "user", Content: "My landlord is harassing me, what can I do?"},
	}, "")
	if err != nil {
		t.Fatalf("Chat failed: %v", err)
	}
	if reply != "You can file a complaint with the rent authority." {
		t.Errorf("Got unexpected reply %q", reply)
	}
	if provider.CallCount() != 2 {
		t.Errorf("Got %d model calls, want 2 (classify + chat)", provider.CallCount())
	}
}

func TestChat_UsesLastUserMessage(t *testing.T) {
	var chatPrompt string
	provider := &MockProvider{
		OnGenerate: func(ctx context.Context, prompt string, params llm.GenerationParams) (string, error) {
			if strings.Contains(prompt, "Reply with exactly one word") {
				if !strings.Contains(prompt, "follow-up question") {
					t.Errorf("Classifier should see the last user message, prompt was %q", prompt)
				}
				return "LEGAL", nil
			}
			chatPrompt = prompt
			return "answer", nil
		},
	}
	service := newTestService(provider)

	_, err := service.Chat(context.Background(), []assistant.Message{
		{Role: "user", Content: "What is an FIR?"},
		{Role: "assistant", Content: "An FIR is a First Information Report."},
		{Role: "user", Content: "A follow-up question about the FIR process"},
	}, "")
	if err != nil {
		t.Fatalf("Chat failed: %v", err)
	}
	if !strings.Contains(chatPrompt, "An FIR is a First Information Report.") {
		t.Errorf("The chat prompt should carry the whole transcript")
	}
}

func TestChat_NoUserMessage(t *testing.T) {
	service := newTestService(&MockProvider{})

	_, err := service.Chat(context.Background(), []assistant.Message{
		{Role: "assistant", Content: "Hello, how can I help?"},
	}, "")
	if !errors.Is(err, assistant.ErrNoUserMessage) {
		t.Fatalf("Expected ErrNoUserMessage, got %v", err)
	}
}

func TestSummarize_PropagatesModelErrors(t *testing.T) {
	provider := &MockProvider{
		OnGenerate: func(ctx context.Context, prompt string, params llm.GenerationParams) (string, error) {
			return "", llm.FromStatus(429, errors.New("quota exceeded"))
		},
	}
	service := newTestService(provider)

	_, err := service.Summarize(context.Background(), "some long rental agreement text", "")
	if !errors.Is(err, llm.ErrRateLimited) {
		t.Fatalf("Expected ErrRateLimited, got %v", err)
	}
}

func TestDraft_ReturnsModelText(t *testing.T) {
	provider := &MockProvider{
		OnGenerate: func(ctx context.Context, prompt string, params llm.GenerationParams) (string, error) {
			if !strings.Contains(prompt, "noise complaint against a neighbour") {
				t.Errorf("Draft prompt should contain the user's issue")
			}
			return "  To: The Public Information Officer...  ", nil
		},
	}
	service := newTestService(provider)

	draft, err := service.Draft(context.Background(), "RTI about a noise complaint against a neighbour", "")
	if err != nil {
		t.Fatalf("Draft failed: %v", err)
	}
	if draft != "To: The Public Information Officer..." {
		t.Errorf("Expected the trimmed model text, got %q", draft)
	}
}

func TestSummarize_LanguageInstructionInPrompt(t *testing.T) {
	provider := &MockProvider{
		OnGenerate: func(ctx context.Context, prompt string, params llm.GenerationParams) (string, error) {
			if !strings.Contains(prompt, "ENTIRELY in Hindi") {
				t.Errorf("Expected a Hindi language instruction in the prompt")
			}
			return "summary text", nil
		},
	}
	service := newTestService(provider)

	if _, err := service.Summarize(context.Background(), "court order text", "Hindi"); err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}
}
