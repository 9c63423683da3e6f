package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	defaultModel    = "gemini-2.0-flash"
	geminiEndpoint  = "https://generativelanguage.googleapis.com/v1beta"
	maxHistoryTurns = 10
)

// Canned replies for failure modes. The widget shows these instead of a
// crash; the caller never sees an error.
const (
	replyMissingKey = "Sorry, the Gemini API key is not configured. Please set GEMINI_API_KEY in your environment variables."
	replyKeyIssue   = "Sorry, there's an issue with the API configuration. Please check your Gemini API key."
	replyOffline    = "Sorry, I'm having trouble connecting. Please try again later!"
)

var errNoResponse = errors.New("no response from Gemini API")

// errTransport marks failures where no server was reached.
type errTransport struct{ err error }

func (e *errTransport) Error() string { return e.err.Error() }
func (e *errTransport) Unwrap() error { return e.err }

// Client calls the Gemini generateContent endpoint.
type Client struct {
	apiKey  string
	model   string
	base    string
	http    *http.Client
	limiter *rate.Limiter
}

// NewClient creates a chat client. An empty apiKey disables upstream
// calls; every reply becomes an instructional string.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey: apiKey,
		model:  defaultModel,
		base:   geminiEndpoint,
		http:   &http.Client{Timeout: 30 * time.Second},
		// Gemini free tier allows 15 requests per minute.
		limiter: rate.NewLimiter(rate.Limit(0.25), 2),
	}
}

// NewClientWithBase points the client at a stub server in tests, with no
// rate limiting.
func NewClientWithBase(apiKey, base string) *Client {
	c := NewClient(apiKey)
	c.base = base
	c.limiter = nil
	return c
}

// Gemini request/response shapes.

type geminiContent struct {
	Role  string       `json:"role"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

type geminiErrorBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Reply answers userText given a transcript. It always returns a usable
// reply string; every failure is converted to a conversational message.
func (c *Client) Reply(ctx context.Context, userText string, history []Message) string {
	reply, _ := c.reply(ctx, userText, history)
	return reply
}

// reply additionally reports whether the reply came from the model.
func (c *Client) reply(ctx context.Context, userText string, history []Message) (string, bool) {
	if c.apiKey == "" {
		return replyMissingKey, false
	}

	text, err := c.generate(ctx, userText, history)
	if err == nil {
		return text, true
	}

	var transport *errTransport
	switch {
	case errors.As(err, &transport):
		return replyOffline, false
	case strings.Contains(err.Error(), "API key"):
		return replyKeyIssue, false
	default:
		return fmt.Sprintf("Sorry, I encountered an error: %s. Please try again!", err), false
	}
}

// generate performs the upstream call.
func (c *Client) generate(ctx context.Context, userText string, history []Message) (string, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return "", &errTransport{err}
		}
	}

	body, err := json.Marshal(geminiRequest{Contents: c.buildContents(userText, history)})
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.base, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-goog-api-key", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", &errTransport{err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Tolerate an unparseable error body by substituting an empty one.
		var errBody geminiErrorBody
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
		_ = json.Unmarshal(raw, &errBody)
		if errBody.Error.Message != "" {
			return "", errors.New(errBody.Error.Message)
		}
		return "", fmt.Errorf("API error: %d", resp.StatusCode)
	}

	var out geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", errNoResponse
	}
	return out.Candidates[0].Content.Parts[0].Text, nil
}

// buildContents assembles the turn list: the persona context, then up to
// the last 10 history messages, then the new user turn.
func (c *Client) buildContents(userText string, history []Message) []geminiContent {
	contents := []geminiContent{{
		Role:  "user",
		Parts: []geminiPart{{Text: personaContext + personaInstruction}},
	}}

	if len(history) > maxHistoryTurns {
		history = history[len(history)-maxHistoryTurns:]
	}
	for _, msg := range history {
		role := "model"
		if msg.Sender == SenderUser {
			role = "user"
		}
		contents = append(contents, geminiContent{
			Role:  role,
			Parts: []geminiPart{{Text: msg.Text}},
		})
	}

	return append(contents, geminiContent{
		Role:  "user",
		Parts: []geminiPart{{Text: userText}},
	})
}
