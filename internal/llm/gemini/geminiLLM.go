package gemini

import (
	"context"
	"errors"
	"sync"

	"google.golang.org/genai"

	"github.com/nyayai/LegalAPI/internal/llm"
	"github.com/nyayai/LegalAPI/pkg/logger_i"
)

type llmClient struct {
	client    *genai.Client
	modelName string
}

var logger *logger_i.Logger
var geminiClient *llmClient
var once sync.Once

var (
	topK float32 = 40
	topP float32 = 0.95
)

func GetGeminiClient(ctx context.Context, modelName string, apikey string) llm.Provider {
	once.Do(func() {
		logger = logger_i.NewLogger("llm_gemini")
		newGeminiClient(ctx, modelName, apikey)
	})

	if geminiClient == nil {
		return nil
	}
	return &llmClient{client: geminiClient.client, modelName: geminiClient.modelName}
}

func newGeminiClient(ctx context.Context, modelName string, apikey string) {
	c, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apikey})
	if err != nil {
		logger.Error("Error creating Gemini client:", "error", err)
	}
	if c != nil {
		geminiClient = &llmClient{client: c, modelName: modelName}
		logger.Debug("Gemini ", "model", modelName)
		logger.Info("Gemini client created")
		go closeClient(ctx, geminiClient)
	}
}

func (c *llmClient) Generate(ctx context.Context, prompt string, params llm.GenerationParams) (string, error) {
	contentConfig := &genai.GenerateContentConfig{
		MaxOutputTokens: params.MaxOutputTokens,
		TopK:            &topK,
		TopP:            &topP,
	}
	if params.Temperature > 0 {
		contentConfig.Temperature = genai.Ptr(params.Temperature)
	}
	if params.SystemInstruction != "" {
		contentConfig.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{
				{Text: params.SystemInstruction},
			},
		}
	}

	result, err := c.client.Models.GenerateContent(
		ctx,
		c.modelName,
		genai.Text(prompt),
		contentConfig,
	)
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			return "", llm.FromStatus(apiErr.Code, err)
		}
		return "", err
	}
	return result.Text(), nil
}

func closeClient(ctx context.Context, client *llmClient) {
	<-ctx.Done()
	logger.Info("Closing Gemini client")
	client.client = nil
	client.modelName = ""
}
