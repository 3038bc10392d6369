package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"mailspark/models"
	"mailspark/utils"
)

// UpdateCampaignStats merges a subset of counters over the stored stats.
// This is the only path that touches stats; the general update endpoint
// cannot reach them. Used by the delivery collaborator and demo tooling.
func (cc *CampaignController) UpdateCampaignStats(c *fiber.Ctx) error {
	campaignID := c.Params("id")
	if _, err := uuid.Parse(campaignID); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid campaign ID",
		})
	}

	var patch models.StatsPatch
	if err := c.BodyParser(&patch); err != nil {
		cc.Logger.Printf("Error parsing request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := utils.ValidateStruct(patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if patch.IsEmpty() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No stats fields provided",
		})
	}

	campaign, err := cc.Repo.UpdateStats(campaignID, patch)
	if err != nil {
		cc.Logger.Printf("Failed to update stats for campaign %s: %v", campaignID, err)
		status, message := statusFromError(err)
		return utils.ErrorResponse(c, status, message, err)
	}

	return c.JSON(fiber.Map{
		"message": "Campaign stats updated successfully",
		"stats":   campaign.Stats,
	})
}
