package models

import (
	"fmt"
	"time"
)

// Campaign statuses. Scheduled/sent/failed are part of the vocabulary but no
// transition in this service ever sets them; a future delivery collaborator
// owns those.
const (
	StatusDraft     = "draft"
	StatusScheduled = "scheduled"
	StatusSent      = "sent"
	StatusFailed    = "failed"
)

// Customer segments. Membership is resolved by the targeting collaborator,
// not computed here.
const (
	SegmentAllCustomers       = "all_customers"
	SegmentNewCustomers       = "new_customers"
	SegmentReturningCustomers = "returning_customers"
	SegmentInactiveCustomers  = "inactive_customers"
	SegmentHighValueCustomers = "high_value_customers"
)

// Campaign represents one email marketing send unit owned by a single user.
// CreatedAt and UpdatedAt are assigned by the database, never by this
// process; the column defaults plus RETURNING keep them server-side.
type Campaign struct {
	ID     string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID string `gorm:"type:uuid;not null;index" json:"user_id"`

	Name            string `gorm:"not null" json:"name"`
	Subject         string `gorm:"not null" json:"subject"`
	Content         string `gorm:"type:text;not null" json:"content"`
	Status          string `gorm:"not null;default:'draft'" json:"status"`
	CustomerSegment string `gorm:"not null;default:'all_customers'" json:"customer_segment"`

	// Absent means "keep as draft / unscheduled"; never coerced to a default
	// date.
	ScheduledDate *time.Time `json:"scheduled_date,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime:false;not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime:false;not null;default:now()" json:"updated_at"`

	Stats CampaignStats `gorm:"type:jsonb;serializer:json;not null" json:"stats"`
}

// CampaignStats holds the denormalized delivery counters, zeroed at creation
// and only ever touched through the stats merge path.
type CampaignStats struct {
	Sent         int `json:"sent"`
	Opened       int `json:"opened"`
	Clicked      int `json:"clicked"`
	Bounced      int `json:"bounced"`
	Unsubscribed int `json:"unsubscribed"`
}

// StatsPatch carries a subset of counters; nil fields keep their stored
// value.
type StatsPatch struct {
	Sent         *int `json:"sent" validate:"omitempty,gte=0"`
	Opened       *int `json:"opened" validate:"omitempty,gte=0"`
	Clicked      *int `json:"clicked" validate:"omitempty,gte=0"`
	Bounced      *int `json:"bounced" validate:"omitempty,gte=0"`
	Unsubscribed *int `json:"unsubscribed" validate:"omitempty,gte=0"`
}

// IsEmpty reports whether the patch names no counter at all.
func (p StatsPatch) IsEmpty() bool {
	return p.Sent == nil && p.Opened == nil && p.Clicked == nil &&
		p.Bounced == nil && p.Unsubscribed == nil
}

// Merge lays the patch over the current counters. Fields the patch does not
// name keep their stored value, never reset to zero.
func (s CampaignStats) Merge(p StatsPatch) CampaignStats {
	merged := s
	if p.Sent != nil {
		merged.Sent = *p.Sent
	}
	if p.Opened != nil {
		merged.Opened = *p.Opened
	}
	if p.Clicked != nil {
		merged.Clicked = *p.Clicked
	}
	if p.Bounced != nil {
		merged.Bounced = *p.Bounced
	}
	if p.Unsubscribed != nil {
		merged.Unsubscribed = *p.Unsubscribed
	}
	return merged
}

// CampaignPatch carries the mutable fields of a partial update; nil fields
// are left untouched.
type CampaignPatch struct {
	Name            *string    `json:"name" validate:"omitempty,min=1"`
	Subject         *string    `json:"subject" validate:"omitempty,min=1"`
	Content         *string    `json:"content"`
	Status          *string    `json:"status" validate:"omitempty,oneof=draft scheduled sent failed"`
	CustomerSegment *string    `json:"customer_segment" validate:"omitempty,oneof=all_customers new_customers returning_customers inactive_customers high_value_customers"`
	ScheduledDate   *time.Time `json:"scheduled_date"`
}

// IsEmpty reports whether the patch names no field at all.
func (p CampaignPatch) IsEmpty() bool {
	return p.Name == nil && p.Subject == nil && p.Content == nil &&
		p.Status == nil && p.CustomerSegment == nil && p.ScheduledDate == nil
}

// Changes builds the column assignments for the fields the patch names.
func (p CampaignPatch) Changes() map[string]interface{} {
	changes := map[string]interface{}{}
	if p.Name != nil {
		changes["name"] = *p.Name
	}
	if p.Subject != nil {
		changes["subject"] = *p.Subject
	}
	if p.Content != nil {
		changes["content"] = *p.Content
	}
	if p.Status != nil {
		changes["status"] = *p.Status
	}
	if p.CustomerSegment != nil {
		changes["customer_segment"] = *p.CustomerSegment
	}
	if p.ScheduledDate != nil {
		changes["scheduled_date"] = *p.ScheduledDate
	}
	return changes
}

// IsValidStatus reports whether s is part of the status vocabulary.
func IsValidStatus(s string) bool {
	switch s {
	case StatusDraft, StatusScheduled, StatusSent, StatusFailed:
		return true
	}
	return false
}

// IsValidSegment reports whether s is a known customer segment.
func IsValidSegment(s string) bool {
	switch s {
	case SegmentAllCustomers, SegmentNewCustomers, SegmentReturningCustomers,
		SegmentInactiveCustomers, SegmentHighValueCustomers:
		return true
	}
	return false
}

// CheckStored validates a row read back from the store. The collection is
// schemaless from the store's point of view, so the shape in this package is
// enforced at the read boundary rather than trusted.
func (c *Campaign) CheckStored() error {
	if c.Name == "" {
		return fmt.Errorf("campaign %s: stored record has empty name", c.ID)
	}
	if c.Subject == "" {
		return fmt.Errorf("campaign %s: stored record has empty subject", c.ID)
	}
	if !IsValidStatus(c.Status) {
		return fmt.Errorf("campaign %s: unknown status %q", c.ID, c.Status)
	}
	if !IsValidSegment(c.CustomerSegment) {
		return fmt.Errorf("campaign %s: unknown segment %q", c.ID, c.CustomerSegment)
	}
	return nil
}

// SegmentOption describes a targetable audience slice for the UI.
type SegmentOption struct {
	Value       string `json:"value"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// SegmentOptions is the segment vocabulary surfaced to campaign forms.
var SegmentOptions = []SegmentOption{
	{
		Value:       SegmentAllCustomers,
		Label:       "All Customers",
		Description: "Send to all customers in your database",
	},
	{
		Value:       SegmentNewCustomers,
		Label:       "New Customers",
		Description: "Customers who made their first purchase in the last 30 days",
	},
	{
		Value:       SegmentReturningCustomers,
		Label:       "Returning Customers",
		Description: "Customers who have made more than one purchase",
	},
	{
		Value:       SegmentInactiveCustomers,
		Label:       "Inactive Customers",
		Description: "Customers who haven't made a purchase in the last 90 days",
	},
	{
		Value:       SegmentHighValueCustomers,
		Label:       "High Value Customers",
		Description: "Top 20% of customers by total purchase value",
	},
}

// SegmentLabel returns the display label for a segment value, falling back
// to the raw value for unknown segments.
func SegmentLabel(value string) string {
	for _, opt := range SegmentOptions {
		if opt.Value == value {
			return opt.Label
		}
	}
	return value
}
