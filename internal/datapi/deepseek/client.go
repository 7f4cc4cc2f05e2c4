package deepseek

import (
	"context"
	"errors"
	"net/http"

	"github.com/fachebot/evm-swap-bot/internal/config"

	"github.com/carlmjohnson/requests"
)

const baseUrl = "https://api.deepseek.com"

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
	Stream   bool      `json:"stream"`
}

type chatResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
}

type Client struct {
	apikey         string
	model          string
	transportProxy *http.Transport
}

func NewClient(c config.DeepSeek, transportProxy *http.Transport) *Client {
	return &Client{
		apikey:         c.Apikey,
		model:          c.Model,
		transportProxy: transportProxy,
	}
}

// Chat 非流式对话, 返回首个回复内容
func (client *Client) Chat(ctx context.Context, system, user string) (string, error) {
	if client.apikey == "" {
		return "", errors.New("apikey not configured")
	}

	httpClient := new(http.Client)
	if client.transportProxy != nil {
		httpClient.Transport = client.transportProxy
	}

	payload := chatRequest{
		Model: client.model,
		Messages: []Message{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
	}

	var res chatResponse
	err := requests.URL(baseUrl + "/chat/completions").
		Client(httpClient).
		Bearer(client.apikey).
		BodyJSON(&payload).
		ToJSON(&res).
		Fetch(ctx)
	if err != nil {
		return "", err
	}

	if len(res.Choices) == 0 {
		return "", errors.New("empty completion response")
	}
	return res.Choices[0].Message.Content, nil
}
