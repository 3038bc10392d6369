package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"mailspark/models"
	"mailspark/repository"
	"mailspark/services"
	"mailspark/utils"
)

type DashboardController struct {
	Repo   repository.CampaignRepositoryInterface
	Logger *log.Logger
}

func NewDashboardController(repo repository.CampaignRepositoryInterface, logger *log.Logger) *DashboardController {
	return &DashboardController{
		Repo:   repo,
		Logger: logger,
	}
}

type TimeSeriesData struct {
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

type Dataset struct {
	Label           string    `json:"label"`
	Data            []float64 `json:"data"`
	BorderColor     string    `json:"borderColor"`
	BackgroundColor string    `json:"backgroundColor"`
}

// GetDashboardStats returns the per-status campaign counts for the
// dashboard cards.
func (dc *DashboardController) GetDashboardStats(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	campaigns, err := dc.Repo.ListByOwner(user.ID)
	if err != nil {
		dc.Logger.Printf("Failed to fetch campaigns: %v", err)
		status, message := statusFromError(err)
		return utils.ErrorResponse(c, status, message, err)
	}

	return c.JSON(utils.SuccessResponse(services.Summarize(campaigns)))
}

// GetRecentCampaigns returns the user's newest campaigns, default five.
func (dc *DashboardController) GetRecentCampaigns(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	limit := c.QueryInt("limit", 5)

	campaigns, err := dc.Repo.ListByOwner(user.ID)
	if err != nil {
		dc.Logger.Printf("Failed to fetch campaigns: %v", err)
		status, message := statusFromError(err)
		return utils.ErrorResponse(c, status, message, err)
	}

	return c.JSON(services.MostRecent(campaigns, limit))
}

// GetEmailMetricsOverTime returns the analytics line chart data. The numbers
// are static demo data: no delivery pipeline feeds real events yet, and the
// chart shape matches what the frontend renders.
func (dc *DashboardController) GetEmailMetricsOverTime(c *fiber.Ctx) error {
	timeRange := c.Query("range", "year") // month, year

	var labels []string
	if timeRange == "month" {
		labels = []string{"Week 1", "Week 2", "Week 3", "Week 4"}
	} else {
		labels = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
	}

	data := TimeSeriesData{
		Labels: labels,
		Datasets: []Dataset{
			{
				Label:           "Emails Sent",
				Data:            mockSeries(labels, 1200, 150),
				BorderColor:     "#10B981",
				BackgroundColor: "rgba(16, 185, 129, 0.1)",
			},
			{
				Label:           "Open Rate",
				Data:            mockSeries(labels, 42, 4),
				BorderColor:     "#3B82F6",
				BackgroundColor: "rgba(59, 130, 246, 0.1)",
			},
			{
				Label:           "Click Rate",
				Data:            mockSeries(labels, 12, 2),
				BorderColor:     "#EF4444",
				BackgroundColor: "rgba(239, 68, 68, 0.1)",
			},
			{
				Label:           "Bounce Rate",
				Data:            mockSeries(labels, 3, 1),
				BorderColor:     "#8B5CF6",
				BackgroundColor: "rgba(139, 92, 246, 0.1)",
			},
		},
	}

	return c.JSON(utils.SuccessResponse(data))
}

// mockSeries produces a deterministic sawtooth around base so charts render
// something plausible without pretending to be measurements.
func mockSeries(labels []string, base, amplitude float64) []float64 {
	series := make([]float64, len(labels))
	for i := range labels {
		offset := float64(i%3) - 1
		series[i] = base + offset*amplitude
	}
	return series
}
