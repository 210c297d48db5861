package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var now = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

func TestCandidateDefaults(t *testing.T) {
	c := Candidate{Name: "Ama", CompletenessScore: 140}
	c.ApplyDefaults(now)

	assert.Equal(t, CandidateAvailable, c.Status)
	assert.NotNil(t, c.Skills)
	assert.Equal(t, 100, c.CompletenessScore)
	assert.Equal(t, now, c.CreatedAt)
	assert.Equal(t, now, c.ConsentDate)
	assert.Equal(t, now, c.LastActive)
}

func TestCandidateDefaults_KeepsExplicitValues(t *testing.T) {
	created := now.Add(-48 * time.Hour)
	c := Candidate{Status: CandidateHired, CreatedAt: created, Skills: []string{"welding"}}
	c.ApplyDefaults(now)

	assert.Equal(t, CandidateHired, c.Status)
	assert.Equal(t, created, c.CreatedAt)
	assert.Equal(t, []string{"welding"}, c.Skills)
}

func TestCandidateSourcedBy(t *testing.T) {
	_, ok := Candidate{}.SourcedBy()
	assert.False(t, ok)

	empty := ""
	_, ok = Candidate{AgentID: &empty}.SourcedBy()
	assert.False(t, ok)

	agent := "ag-1"
	id, ok := Candidate{AgentID: &agent}.SourcedBy()
	assert.True(t, ok)
	assert.Equal(t, "ag-1", id)
}

func TestInvoiceDefaults_DueDateFollowsIssueDate(t *testing.T) {
	issued := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	inv := Invoice{IssueDate: issued}
	inv.ApplyDefaults(now)

	assert.Equal(t, InvoiceDraft, inv.Status)
	assert.Equal(t, DefaultCurrency, inv.Currency)
	assert.Equal(t, issued.AddDate(0, 0, DefaultPaymentTermDays), inv.DueDate)
}

func TestInvoiceStatusOutstanding(t *testing.T) {
	tests := map[InvoiceStatus]bool{
		InvoiceDraft:     false,
		InvoiceSent:      true,
		InvoiceOverdue:   true,
		InvoicePaid:      false,
		InvoiceCancelled: false,
	}
	for status, want := range tests {
		assert.Equal(t, want, status.Outstanding(), string(status))
	}
}

func TestTestimonialRatingDefaults(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, 5},
		{3, 3},
		{9, 5},
		{-2, 1},
	}
	for _, tt := range tests {
		tm := Testimonial{Rating: tt.in}
		tm.ApplyDefaults(now)
		assert.Equal(t, tt.want, tm.Rating, "rating %d", tt.in)
		assert.Equal(t, PublishPending, tm.Status)
	}
}

func TestBudgetRemaining(t *testing.T) {
	assert.Equal(t, 250.0, Budget{Allocated: 1000, Spent: 750}.Remaining())
	assert.Equal(t, -50.0, Budget{Allocated: 100, Spent: 150}.Remaining())
}

func TestClone_SharesNothing(t *testing.T) {
	agent := "agent-001"
	c := Candidate{ID: "c1", Skills: []string{"welding"}, AgentID: &agent}
	cp := c.Clone()
	cp.Skills[0] = "plumbing"
	*cp.AgentID = "agent-002"
	assert.Equal(t, "welding", c.Skills[0])
	assert.Equal(t, "agent-001", *c.AgentID)

	sent := now
	b := BlogPost{ID: "b1", Tags: []string{"hiring"}, PublishedAt: &sent}
	bp := b.Clone()
	bp.Tags[0] = "news"
	*bp.PublishedAt = now.Add(time.Hour)
	assert.Equal(t, "hiring", b.Tags[0])
	assert.Equal(t, now, *b.PublishedAt)

	var empty Invoice
	assert.Nil(t, empty.Clone().Items)
	assert.Nil(t, empty.Clone().ClientID)
}
