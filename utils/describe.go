package utils

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GenerateProductDescription asks Gemini for a short storefront description
// of a product. Used by the admin "Add Product" helper.
func GenerateProductDescription(ctx context.Context, name, category, keywords string) (string, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return "", errors.New("GEMINI_API_KEY is not set")
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return "", err
	}
	defer client.Close()

	prompt := fmt.Sprintf(
		"Write a product description for an online clothing store, 2-3 sentences, no headings. Product: %s.",
		name,
	)
	if category != "" {
		prompt += fmt.Sprintf(" Category: %s.", category)
	}
	if keywords != "" {
		prompt += fmt.Sprintf(" Mention: %s.", keywords)
	}

	model := client.GenerativeModel("gemini-1.5-flash")
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.New("model returned no candidates")
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}

	description := strings.TrimSpace(b.String())
	if description == "" {
		return "", errors.New("model returned empty description")
	}
	return description, nil
}
