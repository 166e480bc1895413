package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"

	"github.com/picobox/mysh-llm/internal/prompt"
)

// restClient is the generic carrier: it posts the same chat-completion body
// through resty and pulls the suggestion out of the raw response with gjson,
// so it keeps working against providers whose responses carry extra fields
// the typed client would choke on.
type restClient struct {
	model  string
	client *resty.Client
}

func newRESTClient(cfg Config) *restClient {
	client := resty.New()
	client.SetBaseURL(strings.TrimRight(cfg.BaseURL, "/"))
	client.SetTimeout(requestTimeout)
	client.SetAuthToken(cfg.APIKey)
	client.SetHeader("Content-Type", "application/json")
	return &restClient{model: cfg.Model, client: client}
}

func (c *restClient) Name() string { return "rest" }

func (c *restClient) Suggest(ctx context.Context, userPrompt string) (string, error) {
	body := map[string]any{
		"model": c.model,
		"messages": []map[string]string{
			{"role": "system", "content": prompt.SystemInstruction},
			{"role": "user", "content": userPrompt},
		},
		"temperature": temperature,
		"max_tokens":  maxTokens,
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(body).
		Post("/chat/completions")
	if err != nil {
		return "", err
	}

	raw := resp.Body()
	if apiErr := gjson.GetBytes(raw, "error.message"); apiErr.Exists() {
		return "", fmt.Errorf("provider error: %s", apiErr.String())
	}
	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return "", fmt.Errorf("chat request failed: HTTP %d", resp.StatusCode())
	}

	content := gjson.GetBytes(raw, "choices.0.message.content")
	if !content.Exists() {
		return "", fmt.Errorf("chat response missing choices")
	}

	suggestion := prompt.CleanResponse(content.String())
	if suggestion == "" {
		return "", fmt.Errorf("chat response is empty after cleanup")
	}
	return suggestion, nil
}
