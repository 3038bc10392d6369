package utils

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/genai"

	"mailspark/apperrors"
)

func TestValidateGenerationInput(t *testing.T) {
	assert.NoError(t, ValidateGenerationInput("Running shoes", "All Customers", "Drive sales"))

	cases := []struct {
		name    string
		product string
		segment string
		goal    string
	}{
		{"empty product", "", "All Customers", "Drive sales"},
		{"empty segment", "Running shoes", "", "Drive sales"},
		{"empty goal", "Running shoes", "All Customers", ""},
		{"whitespace only", "   ", "All Customers", "Drive sales"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateGenerationInput(tc.product, tc.segment, tc.goal)
			var validationErr *apperrors.ValidationError
			assert.ErrorAs(t, err, &validationErr)
		})
	}
}

// An invalid request must fail locally: a generator with no client would
// panic if Generate ever got past validation.
func TestGenerateEmptyInputMakesNoProviderCall(t *testing.T) {
	g := &ContentGenerator{}

	_, err := g.Generate(context.Background(), "", "segment", "goal")

	var validationErr *apperrors.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestBuildPromptCarriesInputsAndMarker(t *testing.T) {
	g := &ContentGenerator{subjectMarker: "Subject Line:**"}

	prompt := g.buildPrompt("Running shoes", "New Customers", "Drive repeat sales")

	assert.Contains(t, prompt, "Product Details: Running shoes")
	assert.Contains(t, prompt, "Customer Segment: New Customers")
	assert.Contains(t, prompt, "Campaign Goal: Drive repeat sales")
	assert.Contains(t, prompt, "Subject Line:**")
}

func TestBuildPromptDefaultMarker(t *testing.T) {
	g := &ContentGenerator{}

	prompt := g.buildPrompt("a", "b", "c")

	assert.Contains(t, prompt, `"Subject:"`)
}

func TestClassifyProviderError(t *testing.T) {
	var authErr *apperrors.AuthenticationError
	var providerErr *apperrors.ProviderError
	var networkErr *apperrors.NetworkError

	err := classifyProviderError(genai.APIError{Code: 401, Message: "bad key"})
	assert.True(t, errors.As(err, &authErr))

	err = classifyProviderError(genai.APIError{Code: 403, Status: "PERMISSION_DENIED"})
	assert.True(t, errors.As(err, &authErr))

	err = classifyProviderError(genai.APIError{Code: 429, Message: "quota exhausted"})
	assert.True(t, errors.As(err, &providerErr))
	assert.Equal(t, 429, providerErr.StatusCode)
	assert.Contains(t, providerErr.Error(), "quota exhausted")

	err = classifyProviderError(fmt.Errorf("dial tcp: connection refused"))
	assert.True(t, errors.As(err, &networkErr))
}

func TestCleanGeneratedText(t *testing.T) {
	raw := "<p>Subject: Big News</p>\nHello&nbsp;there,   welcome!"

	cleaned := cleanGeneratedText(raw)

	assert.NotContains(t, cleaned, "<")
	assert.NotContains(t, cleaned, "&nbsp;")
	assert.False(t, strings.Contains(cleaned, "  "), "whitespace should be collapsed: %q", cleaned)
	assert.True(t, strings.HasPrefix(cleaned, "Subject: Big News"))
}
