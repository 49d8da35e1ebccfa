package llm

import "context"

type GenerationParams struct {
	Temperature       float32
	MaxOutputTokens   int32
	SystemInstruction string
}

type Provider interface {
	Generate(ctx context.Context, prompt string, params GenerationParams) (string, error)
}
