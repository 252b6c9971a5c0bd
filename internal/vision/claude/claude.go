// Package claude extracts delivery-note payloads through the Anthropic
// Messages API.
package claude

import (
	"context"
	"fmt"

	anthropic "github.com/liushuangls/go-anthropic/v2"

	"github.com/crabe/delivnote/internal/vision"
)

// maxTokens leaves headroom for long notes: a dense delivery note runs to
// ~60 lines at roughly 40 tokens of JSON per item.
const maxTokens = 4096

type Extractor struct {
	client *anthropic.Client
	model  string
}

func NewExtractor(apiKey, model string) *Extractor {
	return &Extractor{
		client: anthropic.NewClient(apiKey),
		model:  model,
	}
}

func (e *Extractor) Extract(ctx context.Context, images []vision.Image) (string, error) {
	content := make([]anthropic.MessageContent, 0, len(images)+1)
	for _, img := range images {
		content = append(content, anthropic.NewImageMessageContent(
			anthropic.NewMessageContentSource(
				anthropic.MessagesContentSourceTypeBase64,
				normaliseMIME(img.MIMEType),
				img.Data,
			),
		))
	}
	content = append(content, anthropic.NewTextMessageContent(vision.ExtractionPrompt))

	resp, err := e.client.CreateMessages(ctx, anthropic.MessagesRequest{
		Model:     anthropic.Model(e.model),
		MaxTokens: maxTokens,
		Messages: []anthropic.Message{
			{Role: anthropic.RoleUser, Content: content},
		},
	})
	if err != nil {
		return "", fmt.Errorf("claude extraction failed: %w", err)
	}

	text := resp.GetFirstContentText()
	if text == "" {
		return "", fmt.Errorf("claude returned an empty response")
	}
	return text, nil
}

// normaliseMIME maps arbitrary MIME types onto the set the Anthropic API
// accepts, falling back to jpeg for anything unknown.
func normaliseMIME(mimeType string) string {
	switch mimeType {
	case "image/png", "image/gif", "image/webp":
		return mimeType
	default:
		return "image/jpeg"
	}
}
