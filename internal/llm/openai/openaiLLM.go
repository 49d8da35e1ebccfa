package openai

import (
	"context"
	"errors"
	"sync"

	openaisdk "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/nyayai/LegalAPI/internal/customHttpClient"
	"github.com/nyayai/LegalAPI/internal/llm"
	"github.com/nyayai/LegalAPI/pkg/logger_i"
)

// Alternative Provider for deployments without a Google API key. Same retry
// and parsing path as the Gemini client; only the transport differs.
type llmClient struct {
	client    openaisdk.Client
	modelName string
}

var logger *logger_i.Logger
var openaiClient *llmClient
var once sync.Once

func GetOpenAIClient(modelName string, apikey string) llm.Provider {
	once.Do(func() {
		logger = logger_i.NewLogger("llm_openai")
		if apikey == "" {
			logger.Error("OpenAI API key is empty")
			return
		}
		openaiClient = &llmClient{
			client: openaisdk.NewClient(
				option.WithAPIKey(apikey),
				option.WithHTTPClient(customHttpClient.PooledClient()),
			),
			modelName: modelName,
		}
		logger.Info("OpenAI client created")
	})

	if openaiClient == nil {
		return nil
	}
	return &llmClient{client: openaiClient.client, modelName: openaiClient.modelName}
}

func (c *llmClient) Generate(ctx context.Context, prompt string, params llm.GenerationParams) (string, error) {
	messages := []openaisdk.ChatCompletionMessageParamUnion{}
	if params.SystemInstruction != "" {
		messages = append(messages, openaisdk.SystemMessage(params.SystemInstruction))
	}
	messages = append(messages, openaisdk.UserMessage(prompt))

	completion, err := c.client.Chat.Completions.New(ctx, openaisdk.ChatCompletionNewParams{
		Model:               openaisdk.ChatModel(c.modelName),
		Messages:            messages,
		Temperature:         openaisdk.Float(float64(params.Temperature)),
		MaxCompletionTokens: openaisdk.Int(int64(params.MaxOutputTokens)),
	})
	if err != nil {
		var apiErr *openaisdk.Error
		if errors.As(err, &apiErr) {
			return "", llm.FromStatus(apiErr.StatusCode, err)
		}
		return "", err
	}
	if len(completion.Choices) == 0 {
		return "", nil
	}
	return completion.Choices[0].Message.Content, nil
}
