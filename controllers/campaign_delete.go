package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"mailspark/utils"
)

// DeleteCampaign hard-deletes a campaign. There is no tombstone and no
// cascade; a second delete of the same id reports not-found.
func (cc *CampaignController) DeleteCampaign(c *fiber.Ctx) error {
	campaignID := c.Params("id")
	if _, err := uuid.Parse(campaignID); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid campaign ID",
		})
	}

	if err := cc.Repo.Delete(campaignID); err != nil {
		cc.Logger.Printf("Failed to delete campaign %s: %v", campaignID, err)
		status, message := statusFromError(err)
		return utils.ErrorResponse(c, status, message, err)
	}

	return c.JSON(fiber.Map{
		"message": "Campaign deleted successfully",
	})
}
