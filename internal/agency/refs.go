package agency

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/roach88/recruitdb/internal/model"
)

// Cross-table references are soft: nothing stops the referenced row from
// being deleted. Every resolver reports absence with ok == false.

// InvoiceForPayment resolves a payment's invoice.
func (d *Data) InvoiceForPayment(p model.Payment) (model.Invoice, bool) {
	if p.InvoiceID == "" {
		return model.Invoice{}, false
	}
	return d.Invoices.Get(p.InvoiceID)
}

// PaymentsForInvoice lists the payments referencing an invoice.
func (d *Data) PaymentsForInvoice(invoiceID string) []model.Payment {
	return filter(d.Payments.List(), func(p model.Payment) bool { return p.InvoiceID == invoiceID })
}

// VacancyForApplication resolves the vacancy an application targets.
func (d *Data) VacancyForApplication(a model.JobApplication) (model.JobVacancy, bool) {
	if a.VacancyID == "" {
		return model.JobVacancy{}, false
	}
	return d.Vacancies.Get(a.VacancyID)
}

// ApplicationsForVacancy lists the applications to a vacancy.
func (d *Data) ApplicationsForVacancy(vacancyID string) []model.JobApplication {
	return filter(d.Applications.List(), func(a model.JobApplication) bool { return a.VacancyID == vacancyID })
}

// AgentForCandidate resolves the agent that sourced a candidate. A
// self-registered candidate has none.
func (d *Data) AgentForCandidate(c model.Candidate) (model.Agent, bool) {
	id, ok := c.SourcedBy()
	if !ok {
		return model.Agent{}, false
	}
	return d.Agents.Get(id)
}

// CandidatesByAgent lists the candidates an agent sourced.
func (d *Data) CandidatesByAgent(agentID string) []model.Candidate {
	return filter(d.Candidates.List(), func(c model.Candidate) bool {
		id, ok := c.SourcedBy()
		return ok && id == agentID
	})
}

// ClientForVacancy resolves the client that posted a vacancy.
func (d *Data) ClientForVacancy(v model.JobVacancy) (model.Client, bool) {
	if v.ClientID == nil || *v.ClientID == "" {
		return model.Client{}, false
	}
	return d.Clients.Get(*v.ClientID)
}

// ClientForInvoice resolves the client an invoice was issued to.
func (d *Data) ClientForInvoice(i model.Invoice) (model.Client, bool) {
	if i.ClientID == nil || *i.ClientID == "" {
		return model.Client{}, false
	}
	return d.Clients.Get(*i.ClientID)
}

// InquiriesFrom lists the inquiries submitted from an email address.
// Addresses match case-insensitively after NFC normalization.
func (d *Data) InquiriesFrom(email string) []model.Inquiry {
	want := normalizeEmail(email)
	if want == "" {
		return []model.Inquiry{}
	}
	return filter(d.Inquiries.List(), func(i model.Inquiry) bool {
		return strings.EqualFold(normalizeEmail(i.Email), want)
	})
}

func normalizeEmail(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

func filter[T any](in []T, keep func(T) bool) []T {
	out := []T{}
	for _, v := range in {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}
