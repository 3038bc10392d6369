package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"mailspark/models"
	"mailspark/services"
	"mailspark/utils"
)

// GetCampaigns lists the user's campaigns. Optional `search` and `status`
// query params are applied in memory after the owner-scoped fetch, so the
// store only ever sees the equality query on user_id.
func (cc *CampaignController) GetCampaigns(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	campaigns, err := cc.Repo.ListByOwner(user.ID)
	if err != nil {
		cc.Logger.Printf("Failed to fetch campaigns: %v", err)
		status, message := statusFromError(err)
		return utils.ErrorResponse(c, status, message, err)
	}

	search := c.Query("search")
	statusFilter := c.Query("status", services.StatusFilterAll)
	if statusFilter != services.StatusFilterAll && !models.IsValidStatus(statusFilter) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unknown status filter",
		})
	}

	return c.JSON(services.Filter(campaigns, search, statusFilter))
}

// GetCampaign returns a single campaign by id. Whether the lookup is
// restricted to the owner is the repository's policy decision.
func (cc *CampaignController) GetCampaign(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	campaignID := c.Params("id")

	if _, err := uuid.Parse(campaignID); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid campaign ID",
		})
	}

	campaign, err := cc.Repo.GetByID(campaignID, user.ID)
	if err != nil {
		status, message := statusFromError(err)
		return utils.ErrorResponse(c, status, message, err)
	}

	return c.JSON(campaign)
}

// GetSegmentOptions returns the segment vocabulary for campaign forms.
func (cc *CampaignController) GetSegmentOptions(c *fiber.Ctx) error {
	return c.JSON(models.SegmentOptions)
}
