package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"mailspark/apperrors"
	"mailspark/config"
	"mailspark/utils"
)

type GenerateController struct {
	Generator *utils.ContentGenerator
	Logger    *log.Logger
}

func NewGenerateController(generator *utils.ContentGenerator, logger *log.Logger) *GenerateController {
	return &GenerateController{
		Generator: generator,
		Logger:    logger,
	}
}

type GenerateRequest struct {
	ProductDetails  string `json:"product_details" validate:"required"`
	CustomerSegment string `json:"customer_segment" validate:"required"`
	CampaignGoal    string `json:"campaign_goal" validate:"required"`
}

// GenerateContent runs one text-generation request and returns the raw
// generated text. Extracting a subject line out of it is the frontend's job;
// the marker it should look for is echoed alongside.
func (gc *GenerateController) GenerateContent(c *fiber.Ctx) error {
	var input GenerateRequest
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := utils.ValidateStruct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	text, err := gc.Generator.Generate(c.Context(), input.ProductDetails, input.CustomerSegment, input.CampaignGoal)
	if err != nil {
		gc.Logger.Printf("Content generation failed: %v", err)
		return gc.generationErrorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"content":        text,
		"subject_marker": config.AppConfig.SubjectMarker,
	})
}

func (gc *GenerateController) generationErrorResponse(c *fiber.Ctx, err error) error {
	var validationErr *apperrors.ValidationError
	var authErr *apperrors.AuthenticationError
	var providerErr *apperrors.ProviderError
	var networkErr *apperrors.NetworkError

	switch {
	case errors.As(err, &validationErr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": validationErr.Error(),
		})
	case errors.As(err, &authErr):
		return utils.ErrorResponse(c, fiber.StatusBadGateway,
			"Content provider rejected our credentials", err)
	case errors.As(err, &providerErr):
		return utils.ErrorResponse(c, fiber.StatusBadGateway,
			"Content provider failed: "+providerErr.Message, err)
	case errors.As(err, &networkErr):
		return utils.ErrorResponse(c, fiber.StatusServiceUnavailable,
			"Could not reach the content provider", err)
	}
	return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Unexpected error", err)
}
