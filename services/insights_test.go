package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"mailspark/models"
)

func campaign(name, subject, status string, createdAt time.Time) models.Campaign {
	return models.Campaign{
		Name:      name,
		Subject:   subject,
		Status:    status,
		CreatedAt: createdAt,
	}
}

func TestFilterBySearchTerm(t *testing.T) {
	campaigns := []models.Campaign{
		campaign("Spring Sale", "Save big", models.StatusDraft, time.Time{}),
		campaign("Winter Blast", "Cold deals", models.StatusSent, time.Time{}),
	}

	got := Filter(campaigns, "sale", StatusFilterAll)

	assert.Len(t, got, 1)
	assert.Equal(t, "Spring Sale", got[0].Name)
}

func TestFilterByStatus(t *testing.T) {
	campaigns := []models.Campaign{
		campaign("Spring Sale", "Save big", models.StatusDraft, time.Time{}),
		campaign("Winter Blast", "Cold deals", models.StatusSent, time.Time{}),
	}

	got := Filter(campaigns, "", models.StatusSent)

	assert.Len(t, got, 1)
	assert.Equal(t, "Winter Blast", got[0].Name)
}

func TestFilterNoMatch(t *testing.T) {
	campaigns := []models.Campaign{
		campaign("Spring Sale", "Save big", models.StatusDraft, time.Time{}),
		campaign("Winter Blast", "Cold deals", models.StatusSent, time.Time{}),
	}

	assert.Empty(t, Filter(campaigns, "zzz", StatusFilterAll))
}

func TestFilterMatchesSubjectToo(t *testing.T) {
	campaigns := []models.Campaign{
		campaign("Q3 Newsletter", "Summer SALE inside", models.StatusDraft, time.Time{}),
	}

	got := Filter(campaigns, "sale", StatusFilterAll)

	assert.Len(t, got, 1)
}

func TestFilterPredicatesCompose(t *testing.T) {
	campaigns := []models.Campaign{
		campaign("Spring Sale", "Save big", models.StatusDraft, time.Time{}),
		campaign("Sale Encore", "More savings", models.StatusSent, time.Time{}),
	}

	got := Filter(campaigns, "sale", models.StatusSent)

	assert.Len(t, got, 1)
	assert.Equal(t, "Sale Encore", got[0].Name)
}

func TestFilterPreservesInputOrder(t *testing.T) {
	campaigns := []models.Campaign{
		campaign("Sale A", "x", models.StatusDraft, time.Time{}),
		campaign("Other", "x", models.StatusDraft, time.Time{}),
		campaign("Sale B", "x", models.StatusDraft, time.Time{}),
	}

	got := Filter(campaigns, "sale", StatusFilterAll)

	assert.Equal(t, []string{"Sale A", "Sale B"}, []string{got[0].Name, got[1].Name})
}

func TestFilterEmptyInput(t *testing.T) {
	assert.Empty(t, Filter(nil, "anything", StatusFilterAll))
}

func TestSummarize(t *testing.T) {
	campaigns := []models.Campaign{
		campaign("a", "s", models.StatusDraft, time.Time{}),
		campaign("b", "s", models.StatusDraft, time.Time{}),
		campaign("c", "s", models.StatusSent, time.Time{}),
		campaign("d", "s", models.StatusScheduled, time.Time{}),
		campaign("e", "s", models.StatusFailed, time.Time{}),
	}

	got := Summarize(campaigns)

	assert.Equal(t, Summary{Total: 5, Sent: 1, Draft: 2, Scheduled: 1}, got)
}

func TestSummarizeEmpty(t *testing.T) {
	assert.Equal(t, Summary{}, Summarize(nil))
}

func TestMostRecentOrdersByCreatedAtDescending(t *testing.T) {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	campaigns := []models.Campaign{
		campaign("t1", "s", models.StatusDraft, base.Add(1*time.Hour)),
		campaign("t2", "s", models.StatusDraft, base.Add(2*time.Hour)),
		campaign("t3", "s", models.StatusDraft, base.Add(3*time.Hour)),
	}

	got := MostRecent(campaigns, 2)

	assert.Len(t, got, 2)
	assert.Equal(t, "t3", got[0].Name)
	assert.Equal(t, "t2", got[1].Name)
}

func TestMostRecentZeroTimestampsSortLast(t *testing.T) {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	campaigns := []models.Campaign{
		campaign("unknown", "s", models.StatusDraft, time.Time{}),
		campaign("newest", "s", models.StatusDraft, base),
	}

	got := MostRecent(campaigns, 2)

	assert.Equal(t, "newest", got[0].Name)
	assert.Equal(t, "unknown", got[1].Name)
}

func TestMostRecentDoesNotMutateInput(t *testing.T) {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	campaigns := []models.Campaign{
		campaign("old", "s", models.StatusDraft, base),
		campaign("new", "s", models.StatusDraft, base.Add(time.Hour)),
	}

	MostRecent(campaigns, 2)

	assert.Equal(t, "old", campaigns[0].Name)
	assert.Equal(t, "new", campaigns[1].Name)
}

func TestMostRecentBounds(t *testing.T) {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	campaigns := []models.Campaign{
		campaign("only", "s", models.StatusDraft, base),
	}

	assert.Len(t, MostRecent(campaigns, 5), 1)
	assert.Empty(t, MostRecent(campaigns, 0))
	assert.Empty(t, MostRecent(campaigns, -1))
}
