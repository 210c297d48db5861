package agency

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/recruitdb/internal/kv"
	"github.com/roach88/recruitdb/internal/model"
)

func TestSoftReferences_Resolve(t *testing.T) {
	d := openData(t, kv.NewMemory())

	pay, _ := d.Payments.Get("pay-001")
	inv, ok := d.InvoiceForPayment(pay)
	require.True(t, ok)
	assert.Equal(t, "inv-001", inv.ID)
	assert.Len(t, d.PaymentsForInvoice("inv-001"), 1)

	app, _ := d.Applications.Get("app-002")
	vac, ok := d.VacancyForApplication(app)
	require.True(t, ok)
	assert.Equal(t, "vac-002", vac.ID)
	assert.Len(t, d.ApplicationsForVacancy("vac-002"), 2)

	client, ok := d.ClientForVacancy(vac)
	require.True(t, ok)
	assert.Equal(t, "client-002", client.ID)

	client, ok = d.ClientForInvoice(inv)
	require.True(t, ok)
	assert.Equal(t, "client-001", client.ID)

	cand, _ := d.Candidates.Get("cand-002")
	agent, ok := d.AgentForCandidate(cand)
	require.True(t, ok)
	assert.Equal(t, "agent-001", agent.ID)
	assert.Len(t, d.CandidatesByAgent("agent-001"), 1)
}

func TestSoftReferences_AbsenceIsNotAnError(t *testing.T) {
	ctx := context.Background()
	d := openData(t, kv.NewMemory())

	// Self-registered candidate.
	cand, _ := d.Candidates.Get("cand-001")
	_, ok := d.AgentForCandidate(cand)
	assert.False(t, ok)

	// Vacancy with no client.
	vac, _ := d.Vacancies.Get("vac-003")
	_, ok = d.ClientForVacancy(vac)
	assert.False(t, ok)

	// Deleted referent.
	require.NoError(t, d.Agents.Delete(ctx, "agent-001"))
	cand, _ = d.Candidates.Get("cand-002")
	_, ok = d.AgentForCandidate(cand)
	assert.False(t, ok)
	assert.Len(t, d.CandidatesByAgent("agent-001"), 1, "the referencing row is kept")

	_, ok = d.InvoiceForPayment(model.Payment{ID: "p", InvoiceID: ""})
	assert.False(t, ok)
	assert.Empty(t, d.PaymentsForInvoice("inv-404"))
}

func TestInquiriesFrom_MatchesNormalizedEmail(t *testing.T) {
	ctx := context.Background()
	d := openData(t, kv.NewMemory())

	got := d.InquiriesFrom("  RECRUIT@GulfBuild.example.com ")
	require.Len(t, got, 1)
	assert.Equal(t, "inq-002", got[0].ID)

	// Decomposed and precomposed forms of the same address match.
	_, err := d.Inquiries.Add(ctx, model.Inquiry{Name: "José", Email: "jose\u0301@example.com", Message: "Hola"})
	require.NoError(t, err)
	assert.Len(t, d.InquiriesFrom("jos\u00e9@example.com"), 1)

	assert.NotNil(t, d.InquiriesFrom(""))
	assert.Empty(t, d.InquiriesFrom(""))
	assert.Empty(t, d.InquiriesFrom("nobody@example.com"))
}
