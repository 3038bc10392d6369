package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mailspark/apperrors"
	"mailspark/models"
)

// Validation failures must surface before the store is touched: the
// repository under test has no DB handle, so any store access would panic.

func TestCreateRejectsMissingRequiredFields(t *testing.T) {
	r := &CampaignRepository{}

	valid := CampaignDraft{
		Name:    "Spring Sale",
		Subject: "20% off",
		Content: "Hello!",
	}

	cases := []struct {
		name    string
		ownerID string
		mutate  func(d *CampaignDraft)
	}{
		{"empty owner", "", func(d *CampaignDraft) {}},
		{"empty name", "owner-1", func(d *CampaignDraft) { d.Name = "" }},
		{"empty subject", "owner-1", func(d *CampaignDraft) { d.Subject = "" }},
		{"empty content", "owner-1", func(d *CampaignDraft) { d.Content = "" }},
		{"unknown segment", "owner-1", func(d *CampaignDraft) { d.CustomerSegment = "vip" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			draft := valid
			tc.mutate(&draft)

			_, err := r.Create(tc.ownerID, draft)

			var validationErr *apperrors.ValidationError
			assert.ErrorAs(t, err, &validationErr)
		})
	}
}

func TestUpdateRejectsUnknownEnumValues(t *testing.T) {
	r := &CampaignRepository{}

	badStatus := "archived"
	_, err := r.Update("some-id", models.CampaignPatch{Status: &badStatus})
	var validationErr *apperrors.ValidationError
	assert.ErrorAs(t, err, &validationErr)

	badSegment := "everyone"
	_, err = r.Update("some-id", models.CampaignPatch{CustomerSegment: &badSegment})
	assert.ErrorAs(t, err, &validationErr)
}
