package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"mailspark/apperrors"
	"mailspark/repository"
)

type CampaignController struct {
	Repo   repository.CampaignRepositoryInterface
	Logger *log.Logger
}

func NewCampaignController(repo repository.CampaignRepositoryInterface, logger *log.Logger) *CampaignController {
	return &CampaignController{
		Repo:   repo,
		Logger: logger,
	}
}

// statusFromError maps the repository error taxonomy onto HTTP statuses.
// Persistence details never reach the client.
func statusFromError(err error) (int, string) {
	var validationErr *apperrors.ValidationError
	var notFoundErr *apperrors.NotFoundError
	var persistenceErr *apperrors.PersistenceError

	switch {
	case errors.As(err, &validationErr):
		return fiber.StatusBadRequest, validationErr.Error()
	case errors.As(err, &notFoundErr):
		return fiber.StatusNotFound, notFoundErr.Error()
	case errors.As(err, &persistenceErr):
		return fiber.StatusInternalServerError, "Storage operation failed"
	}
	return fiber.StatusInternalServerError, "Unexpected error"
}
