package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"mailspark/models"
	"mailspark/utils"
)

// UpdateCampaign applies a partial update. Only the fields present in the
// body are touched; updated_at refreshes either way. Stats have their own
// endpoint and are not accepted here.
func (cc *CampaignController) UpdateCampaign(c *fiber.Ctx) error {
	campaignID := c.Params("id")
	if _, err := uuid.Parse(campaignID); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid campaign ID",
		})
	}

	var patch models.CampaignPatch
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

	campaign, err := cc.Repo.Update(campaignID, patch)
	if err != nil {
		cc.Logger.Printf("Failed to update campaign %s: %v", campaignID, err)
		status, message := statusFromError(err)
		return utils.ErrorResponse(c, status, message, err)
	}

	return c.JSON(fiber.Map{
		"message":  "Campaign updated successfully",
		"campaign": campaign,
	})
}
