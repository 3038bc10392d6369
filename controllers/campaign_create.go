package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"mailspark/models"
	"mailspark/repository"
	"mailspark/utils"
)

type CreateCampaignRequest struct {
	Name            string     `json:"name" validate:"required"`
	Subject         string     `json:"subject" validate:"required"`
	Content         string     `json:"content" validate:"required"`
	CustomerSegment string     `json:"customer_segment" validate:"omitempty,oneof=all_customers new_customers returning_customers inactive_customers high_value_customers"`
	ScheduledDate   *time.Time `json:"scheduled_date"`
}

// CreateCampaign persists a new draft campaign for the authenticated user.
func (cc *CampaignController) CreateCampaign(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	var input CreateCampaignRequest
	if err := c.BodyParser(&input); err != nil {
		cc.Logger.Printf("Error parsing request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := utils.ValidateStruct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	campaign, err := cc.Repo.Create(user.ID, repository.CampaignDraft{
		Name:            input.Name,
		Subject:         input.Subject,
		Content:         input.Content,
		CustomerSegment: input.CustomerSegment,
		ScheduledDate:   input.ScheduledDate,
	})
	if err != nil {
		cc.Logger.Printf("Failed to create campaign: %v", err)
		status, message := statusFromError(err)
		return utils.ErrorResponse(c, status, message, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Campaign created successfully",
		"campaign": campaign,
	})
}
