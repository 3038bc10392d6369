package utils

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"google.golang.org/genai"

	"mailspark/apperrors"
)

// DefaultGenerationModel is used when no model is configured.
const DefaultGenerationModel = "gemini-2.0-flash"

// ContentGenerator wraps the text provider for campaign copy. One request,
// one response: no retries, no streaming, no session.
type ContentGenerator struct {
	client        *genai.Client
	model         string
	subjectMarker string
}

// NewContentGenerator builds a generator against the Gemini API. The subject
// marker is whatever literal the consuming UI parses the subject line out
// with; it is threaded into the prompt so provider output and parser agree.
func NewContentGenerator(ctx context.Context, apiKey, model, subjectMarker string) (*ContentGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("generation API key is required")
	}
	if model == "" {
		model = DefaultGenerationModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create generation client: %w", err)
	}

	return &ContentGenerator{
		client:        client,
		model:         model,
		subjectMarker: subjectMarker,
	}, nil
}

// Generate builds one prompt from the three inputs and returns the provider's
// text, cleaned of stray markup. Empty inputs fail locally before any call is
// made.
func (g *ContentGenerator) Generate(ctx context.Context, productDetails, customerSegmentLabel, campaignGoal string) (string, error) {
	if err := ValidateGenerationInput(productDetails, customerSegmentLabel, campaignGoal); err != nil {
		return "", err
	}

	prompt := g.buildPrompt(productDetails, customerSegmentLabel, campaignGoal)

	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", classifyProviderError(err)
	}

	text := result.Text()
	if text == "" {
		return "", &apperrors.ProviderError{Message: "provider returned no text"}
	}
	return cleanGeneratedText(text), nil
}

// ValidateGenerationInput enforces the non-empty preconditions of a
// generation request without touching the network.
func ValidateGenerationInput(productDetails, customerSegmentLabel, campaignGoal string) error {
	if strings.TrimSpace(productDetails) == "" {
		return apperrors.NewValidation("product_details", "is required")
	}
	if strings.TrimSpace(customerSegmentLabel) == "" {
		return apperrors.NewValidation("customer_segment", "is required")
	}
	if strings.TrimSpace(campaignGoal) == "" {
		return apperrors.NewValidation("campaign_goal", "is required")
	}
	return nil
}

func (g *ContentGenerator) buildPrompt(productDetails, customerSegmentLabel, campaignGoal string) string {
	marker := g.subjectMarker
	if marker == "" {
		marker = "Subject:"
	}
	return fmt.Sprintf(`Generate a marketing email for the following:

Product Details: %s
Customer Segment: %s
Campaign Goal: %s

The email should include:
- An attention-grabbing subject line (prefixed with %q on its own line)
- Professional greeting
- Engaging introduction
- Key product benefits
- Clear call to action
- Professional sign-off

DO NOT include any HTML tags or markdown formatting in your response.
Format the response as plain text that can be directly placed in an email.
Start with %q followed by the subject line on the first line.`,
		productDetails, customerSegmentLabel, campaignGoal, marker, marker)
}

// classifyProviderError maps a failed call into the error taxonomy:
// unauthorized responses, other provider responses, and transport failures.
func classifyProviderError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Code == 401 || apiErr.Code == 403 ||
			apiErr.Status == "UNAUTHENTICATED" || apiErr.Status == "PERMISSION_DENIED":
			return &apperrors.AuthenticationError{
				Message: "provider rejected the API key: " + apiErr.Message,
			}
		default:
			return &apperrors.ProviderError{
				StatusCode: apiErr.Code,
				Message:    apiErr.Message,
			}
		}
	}
	return &apperrors.NetworkError{Err: err}
}

var (
	htmlTagRe    = regexp.MustCompile(`<[^>]*>`)
	whitespaceRe = regexp.MustCompile(`[ \t]+`)
)

// cleanGeneratedText strips markup the provider was told not to emit but
// sometimes does anyway.
func cleanGeneratedText(text string) string {
	cleaned := htmlTagRe.ReplaceAllString(text, "")
	cleaned = strings.ReplaceAll(cleaned, "&nbsp;", " ")
	cleaned = whitespaceRe.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned)
}
