package controller_test

import (
	"io"
	"log"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	controller "mailspark/controllers"
	"mailspark/utils"
)

// Input validation must reject the request before the generator is ever
// consulted; the zero-value generator here has no client and would panic on
// any provider call.
func TestGenerateRejectsEmptyInputsWithoutProviderCall(t *testing.T) {
	app := fiber.New()
	gc := controller.NewGenerateController(&utils.ContentGenerator{}, log.New(io.Discard, "", 0))
	app.Post("/generate", gc.GenerateContent)

	cases := []fiber.Map{
		{"customer_segment": "All Customers", "campaign_goal": "Drive sales"},
		{"product_details": "Running shoes", "campaign_goal": "Drive sales"},
		{"product_details": "Running shoes", "customer_segment": "All Customers"},
		{},
	}
	for _, body := range cases {
		resp, err := app.Test(jsonRequest(http.MethodPost, "/generate", body))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	}
}
