package repository

import (
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"mailspark/apperrors"
	"mailspark/models"
)

// CampaignRepositoryInterface is the lifecycle contract the controllers
// program against.
type CampaignRepositoryInterface interface {
	Create(ownerID string, draft CampaignDraft) (*models.Campaign, error)
	ListByOwner(ownerID string) ([]models.Campaign, error)
	GetByID(id, actorID string) (*models.Campaign, error)
	Update(id string, patch models.CampaignPatch) (*models.Campaign, error)
	Delete(id string) error
	UpdateStats(id string, patch models.StatsPatch) (*models.Campaign, error)
}

// CampaignDraft is the caller-supplied portion of a new campaign.
type CampaignDraft struct {
	Name            string
	Subject         string
	Content         string
	CustomerSegment string
	ScheduledDate   *time.Time
}

// CampaignRepository mediates all campaign reads and writes against the
// store. Timestamps are assigned by the database: creation relies on the
// column defaults coming back through RETURNING, updates set updated_at with
// a SQL now() expression.
type CampaignRepository struct {
	DB     *gorm.DB
	Logger *logrus.Logger

	// OwnerScopedReads makes GetByID enforce ownership like ListByOwner
	// does. Off by default: a point lookup is shareable by id, which
	// integrators may or may not want.
	OwnerScopedReads bool
}

func NewCampaignRepository(db *gorm.DB, logger *logrus.Logger, ownerScopedReads bool) *CampaignRepository {
	return &CampaignRepository{DB: db, Logger: logger, OwnerScopedReads: ownerScopedReads}
}

var _ CampaignRepositoryInterface = (*CampaignRepository)(nil)

// Create inserts a new draft campaign with zeroed stats and returns the
// stored record, id and timestamps included.
func (r *CampaignRepository) Create(ownerID string, draft CampaignDraft) (*models.Campaign, error) {
	if ownerID == "" {
		return nil, apperrors.NewValidation("owner", "is required")
	}
	if draft.Name == "" {
		return nil, apperrors.NewValidation("name", "is required")
	}
	if draft.Subject == "" {
		return nil, apperrors.NewValidation("subject", "is required")
	}
	if draft.Content == "" {
		return nil, apperrors.NewValidation("content", "is required")
	}
	segment := draft.CustomerSegment
	if segment == "" {
		segment = models.SegmentAllCustomers
	}
	if !models.IsValidSegment(segment) {
		return nil, apperrors.NewValidation("customer_segment", "unknown segment")
	}

	campaign := models.Campaign{
		UserID:          ownerID,
		Name:            draft.Name,
		Subject:         draft.Subject,
		Content:         draft.Content,
		Status:          models.StatusDraft,
		CustomerSegment: segment,
		ScheduledDate:   draft.ScheduledDate,
		Stats:           models.CampaignStats{},
	}

	if err := r.DB.Create(&campaign).Error; err != nil {
		return nil, apperrors.NewPersistence("insert", err)
	}
	return &campaign, nil
}

// ListByOwner returns every campaign owned by ownerID, in no particular
// order; display ordering is the caller's concern. Rows that fail the shape
// check are dropped with a warning rather than failing the whole listing.
func (r *CampaignRepository) ListByOwner(ownerID string) ([]models.Campaign, error) {
	var rows []models.Campaign
	if err := r.DB.Where("user_id = ?", ownerID).Find(&rows).Error; err != nil {
		return nil, apperrors.NewPersistence("query", err)
	}

	campaigns := make([]models.Campaign, 0, len(rows))
	for _, c := range rows {
		if err := c.CheckStored(); err != nil {
			r.Logger.WithFields(logrus.Fields{
				"campaign_id": c.ID,
				"user_id":     ownerID,
			}).WithError(err).Warn("dropping malformed campaign row")
			continue
		}
		campaigns = append(campaigns, c)
	}
	return campaigns, nil
}

// GetByID returns a single campaign. Ownership is only enforced when
// OwnerScopedReads is on; a scoped miss reports not-found rather than
// leaking that the id exists.
func (r *CampaignRepository) GetByID(id, actorID string) (*models.Campaign, error) {
	var campaign models.Campaign
	if err := r.DB.Where("id = ?", id).First(&campaign).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewCampaignNotFound(id)
		}
		return nil, apperrors.NewPersistence("get", err)
	}
	if r.OwnerScopedReads && campaign.UserID != actorID {
		return nil, apperrors.NewCampaignNotFound(id)
	}
	if err := campaign.CheckStored(); err != nil {
		return nil, apperrors.NewPersistence("get", err)
	}
	return &campaign, nil
}

// Update applies only the fields the patch names and unconditionally
// refreshes updated_at server-side. Stats are not reachable through this
// path.
func (r *CampaignRepository) Update(id string, patch models.CampaignPatch) (*models.Campaign, error) {
	if patch.Status != nil && !models.IsValidStatus(*patch.Status) {
		return nil, apperrors.NewValidation("status", "unknown status")
	}
	if patch.CustomerSegment != nil && !models.IsValidSegment(*patch.CustomerSegment) {
		return nil, apperrors.NewValidation("customer_segment", "unknown segment")
	}

	changes := patch.Changes()
	changes["updated_at"] = gorm.Expr("now()")

	result := r.DB.Model(&models.Campaign{}).Where("id = ?", id).Updates(changes)
	if result.Error != nil {
		return nil, apperrors.NewPersistence("update", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, apperrors.NewCampaignNotFound(id)
	}
	return r.reload(id)
}

// Delete permanently removes the record; there is no tombstone. Deleting an
// id that does not exist fails with not-found, consistently.
func (r *CampaignRepository) Delete(id string) error {
	result := r.DB.Where("id = ?", id).Delete(&models.Campaign{})
	if result.Error != nil {
		return apperrors.NewPersistence("delete", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewCampaignNotFound(id)
	}
	return nil
}

// UpdateStats merges the patch over the stored counters; counters the patch
// does not name keep their value. updated_at is refreshed like any other
// mutation.
func (r *CampaignRepository) UpdateStats(id string, patch models.StatsPatch) (*models.Campaign, error) {
	var campaign models.Campaign
	if err := r.DB.Where("id = ?", id).First(&campaign).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewCampaignNotFound(id)
		}
		return nil, apperrors.NewPersistence("get", err)
	}

	merged := campaign.Stats.Merge(patch)
	result := r.DB.Model(&models.Campaign{}).Where("id = ?", id).Updates(map[string]interface{}{
		"stats":      merged,
		"updated_at": gorm.Expr("now()"),
	})
	if result.Error != nil {
		return nil, apperrors.NewPersistence("update", result.Error)
	}
	return r.reload(id)
}

func (r *CampaignRepository) reload(id string) (*models.Campaign, error) {
	var campaign models.Campaign
	if err := r.DB.Where("id = ?", id).First(&campaign).Error; err != nil {
		return nil, apperrors.NewPersistence("get", err)
	}
	return &campaign, nil
}
