package gemini

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/sameersinha-collab/echoproj/internal/httpc"
)

// classifyTimeout keeps the secondary vote short-lived; a slow classifier
// answer must never hold up the relay.
const classifyTimeout = 5 * time.Second

const farewellPrompt = `You are a conversation analyst. Answer with exactly one word, YES or NO.
Does the following utterance conclude the conversation - a farewell, goodbye, wrap-up, or handing back control?

Utterance: %q`

// Classifier asks a lightweight model whether a turn reads as a farewell.
// It is the secondary closing signal next to the lexical phrase test.
type Classifier struct {
	client *genai.Client
	model  string
}

// NewClassifier creates a farewell classifier using the given model.
func NewClassifier(ctx context.Context, apiKey, model string) (*Classifier, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: httpc.Client,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: classifier client: %w", err)
	}
	if model == "" {
		model = "gemini-2.0-flash"
	}
	return &Classifier{client: client, model: model}, nil
}

// IsFarewell reports whether the turn text reads as a conversation ending.
func (c *Classifier) IsFarewell(ctx context.Context, turnText string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, classifyTimeout)
	defer cancel()

	contents := []*genai.Content{
		genai.NewContentFromText(fmt.Sprintf(farewellPrompt, turnText), genai.RoleUser),
	}
	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, nil)
	if err != nil {
		return false, fmt.Errorf("gemini: classify farewell: %w", err)
	}
	answer := strings.ToUpper(strings.TrimSpace(resp.Text()))
	return strings.HasPrefix(answer, "YES"), nil
}
