package openaiclient

import (
	"context"
	"net/http"
	"time"

	"github.com/pkg/errors"
	goopenai "github.com/sashabaranov/go-openai"
	"github.com/vfg2006/ads-optimizer-api/internal/config"
	"github.com/vfg2006/ads-optimizer-api/pkg/metrics"
)

const defaultModel = "gpt-4o-mini"

type Client interface {
	// CompleteJSON envia o prompt exigindo um objeto JSON como resposta
	CompleteJSON(ctx context.Context, system, user string) (string, error)
}

type OpenAIClient struct {
	cfg    config.OpenAI
	client *goopenai.Client
}

func NewClient(cfg config.OpenAI, httpClient *http.Client) Client {
	clientCfg := goopenai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	if httpClient == nil {
		timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
		if timeout <= 0 {
			timeout = 60 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	clientCfg.HTTPClient = httpClient

	if cfg.Model == "" {
		cfg.Model = defaultModel
	}

	return &OpenAIClient{
		cfg:    cfg,
		client: goopenai.NewClientWithConfig(clientCfg),
	}
}

func (c *OpenAIClient) CompleteJSON(ctx context.Context, system, user string) (string, error) {
	req := goopenai.ChatCompletionRequest{
		Model:       c.cfg.Model,
		Temperature: c.cfg.Temperature,
		MaxTokens:   c.cfg.MaxTokens,
		ResponseFormat: &goopenai.ChatCompletionResponseFormat{
			Type: goopenai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []goopenai.ChatCompletionMessage{
			{Role: goopenai.ChatMessageRoleSystem, Content: system},
			{Role: goopenai.ChatMessageRoleUser, Content: user},
		},
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	metrics.RecordExternalCall("openai", err)
	if err != nil {
		return "", errors.Wrap(err, "erro ao chamar a OpenAI")
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", errors.New("resposta da OpenAI sem conteúdo")
	}

	return resp.Choices[0].Message.Content, nil
}
