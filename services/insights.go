// Package services holds the pure, in-memory derivation logic the dashboard
// and list views run over an owner's already-fetched campaigns. Nothing here
// touches the store.
package services

import (
	"sort"
	"strings"

	"mailspark/models"
)

// StatusFilterAll is the sentinel that disables status filtering.
const StatusFilterAll = "all"

// Summary aggregates an owner's campaigns for the dashboard cards.
type Summary struct {
	Total     int `json:"total"`
	Sent      int `json:"sent"`
	Draft     int `json:"draft"`
	Scheduled int `json:"scheduled"`
}

// Filter retains campaigns whose name or subject contains searchTerm
// (case-insensitive; empty term matches all) AND whose status equals
// statusFilter unless it is the "all" sentinel. The relative order of the
// input is preserved.
func Filter(campaigns []models.Campaign, searchTerm, statusFilter string) []models.Campaign {
	term := strings.ToLower(strings.TrimSpace(searchTerm))

	filtered := make([]models.Campaign, 0, len(campaigns))
	for _, c := range campaigns {
		if term != "" &&
			!strings.Contains(strings.ToLower(c.Name), term) &&
			!strings.Contains(strings.ToLower(c.Subject), term) {
			continue
		}
		if statusFilter != "" && statusFilter != StatusFilterAll && c.Status != statusFilter {
			continue
		}
		filtered = append(filtered, c)
	}
	return filtered
}

// Summarize counts campaigns by the statuses the dashboard cards show.
func Summarize(campaigns []models.Campaign) Summary {
	s := Summary{Total: len(campaigns)}
	for _, c := range campaigns {
		switch c.Status {
		case models.StatusSent:
			s.Sent++
		case models.StatusDraft:
			s.Draft++
		case models.StatusScheduled:
			s.Scheduled++
		}
	}
	return s
}

// MostRecent returns up to n campaigns ordered by creation time, newest
// first. Records with a zero creation time sort last; ties keep their input
// order. The input slice is not mutated.
func MostRecent(campaigns []models.Campaign, n int) []models.Campaign {
	if n <= 0 {
		return []models.Campaign{}
	}

	sorted := make([]models.Campaign, len(campaigns))
	copy(sorted, campaigns)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].CreatedAt, sorted[j].CreatedAt
		if a.IsZero() {
			return false
		}
		if b.IsZero() {
			return true
		}
		return a.After(b)
	})

	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}
