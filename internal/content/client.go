package content

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"toyrumble/internal/config"
	"toyrumble/internal/util"
)

// Client asks a Gemini-style generateContent endpoint for names and commentary.
// Loadouts always come from Local; only the words are remote.
type Client struct {
	Endpoint string
	Model    string
	APIKey   string
	Timeout  time.Duration
	HTTP     *http.Client
	Local    *Local
}

// NewClient reads the API key from the environment variable named in cfg. An
// empty key is allowed; every call then fails with ErrUnconfigured.
func NewClient(cfg config.ContentConfig, local *Local) *Client {
	return &Client{
		Endpoint: strings.TrimRight(cfg.Endpoint, "/"),
		Model:    cfg.Model,
		APIKey:   os.Getenv(cfg.APIKeyEnv),
		Timeout:  cfg.Timeout,
		HTTP:     &http.Client{},
		Local:    local,
	}
}

type part struct {
	Text string `json:"text"`
}

type message struct {
	Parts []part `json:"parts"`
}

type generateRequest struct {
	Contents []message `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content message `json:"content"`
	} `json:"candidates"`
}

func (c *Client) GenerateOpponent(ctx context.Context, round, wins int) (Opponent, error) {
	prompt := fmt.Sprintf(`Invent a rival for a toy battle game. They are at level %d and the player has won %d battles so far. `+
		`Reply with JSON only: {"name": "<two or three words>", "description": "<one short sentence>"}`, round, wins)
	text, err := c.generate(ctx, prompt)
	if err != nil {
		return Opponent{}, err
	}

	var persona struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := json.Unmarshal([]byte(stripFence(text)), &persona); err != nil {
		return Opponent{}, fmt.Errorf("%w: opponent json: %v", ErrBadResponse, err)
	}
	if persona.Name == "" {
		return Opponent{}, fmt.Errorf("%w: opponent without a name", ErrBadResponse)
	}
	if persona.Description == "" {
		persona.Description = levelDescription(round)
	}
	return Opponent{
		Name:        persona.Name,
		Description: persona.Description,
		Avatar:      util.Pick(c.Local.Rng, opponentAvatars),
		Items:       c.Local.Items(round),
	}, nil
}

func (c *Client) GenerateCommentary(ctx context.Context, winner string, seconds float64) (string, error) {
	prompt := fmt.Sprintf("Write a very short, funny, 1-sentence commentary about a toy battle victory by %s in %.1f seconds.",
		winner, seconds)
	return c.generate(ctx, prompt)
}

func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	if c.APIKey == "" {
		return "", ErrUnconfigured
	}
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	raw, err := json.Marshal(generateRequest{Contents: []message{{Parts: []part{{Text: prompt}}}}})
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.Endpoint, c.Model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(raw))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.APIKey)

	hc := c.HTTP
	if hc == nil {
		hc = http.DefaultClient
	}
	resp, err := hc.Do(req)
	if err != nil {
		return "", fmt.Errorf("content: request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("%w: status %d: %s", ErrBadResponse, resp.StatusCode, bytes.TrimSpace(snippet))
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("%w: %v", ErrBadResponse, err)
	}
	var sb strings.Builder
	if len(out.Candidates) > 0 {
		for _, p := range out.Candidates[0].Content.Parts {
			sb.WriteString(p.Text)
		}
	}
	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", fmt.Errorf("%w: empty text", ErrBadResponse)
	}
	return text, nil
}

// stripFence drops a ```json ... ``` wrapper some models add around JSON replies.
func stripFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimPrefix(s, "json")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
