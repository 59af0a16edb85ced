package icebreaker

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Client generates opener lines for fresh matches from the two users'
// favorite games.
type Client struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewClient(apiKey string) (*Client, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	model := client.GenerativeModel("gemini-1.5-flash")
	model.SetTemperature(0.8)

	return &Client{
		client: client,
		model:  model,
	}, nil
}

func (c *Client) Close() {
	c.client.Close()
}

func (c *Client) Icebreakers(ctx context.Context, myGames, theirGames []string) ([]string, error) {
	prompt := fmt.Sprintf(`
		Two players just matched on a squad-finding app.
		Player 1 favorite games: %s
		Player 2 favorite games: %s

		Task: Write 3 short, casual opener messages Player 1 could send,
		referencing shared games when there are any.
		Output: a JSON array of 3 strings, nothing else.
	`, strings.Join(myGames, ", "), strings.Join(theirGames, ", "))

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("generate icebreakers: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("generate icebreakers: empty response")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}

	raw := strings.TrimSpace(sb.String())
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")

	var lines []string
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &lines); err != nil {
		return nil, fmt.Errorf("parse icebreakers: %w", err)
	}
	return lines, nil
}
