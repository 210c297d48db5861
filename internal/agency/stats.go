package agency

import "github.com/roach88/recruitdb/internal/model"

// Stats are the dashboard aggregates. They are computed from one snapshot
// on every call and never cached.
type Stats struct {
	Version uint64 `json:"version"`

	Candidates             int `json:"candidates"`
	AvailableCandidates    int `json:"availableCandidates"`
	VerifiedCandidates     int `json:"verifiedCandidates"`
	AgentSourcedCandidates int `json:"agentSourcedCandidates"`

	Clients         int `json:"clients"`
	ActiveClients   int `json:"activeClients"`
	PendingClients  int `json:"pendingClients"`
	VerifiedClients int `json:"verifiedClients"`

	Agents        int `json:"agents"`
	ActiveAgents  int `json:"activeAgents"`
	PendingAgents int `json:"pendingAgents"`

	NewInquiries        int `json:"newInquiries"`
	OpenVacancies       int `json:"openVacancies"`
	PendingApplications int `json:"pendingApplications"`
	Placements          int `json:"placements"`

	OutstandingInvoices int     `json:"outstandingInvoices"`
	OutstandingAmount   float64 `json:"outstandingAmount"`
	PaidInvoiceAmount   float64 `json:"paidInvoiceAmount"`
	CollectedPayments   float64 `json:"collectedPayments"`
	ApprovedExpenses    float64 `json:"approvedExpenses"`
	BudgetAllocated     float64 `json:"budgetAllocated"`
	BudgetRemaining     float64 `json:"budgetRemaining"`

	PublishedPosts       int `json:"publishedPosts"`
	PendingTestimonials  int `json:"pendingTestimonials"`
	NewslettersSent      int `json:"newslettersSent"`
	FailedCommunications int `json:"failedCommunications"`
}

// Stats computes the aggregates over the current snapshot.
func (d *Data) Stats() Stats {
	return ComputeStats(d.projector.Current())
}

// ComputeStats derives the aggregates from s.
func ComputeStats(s *Snapshot) Stats {
	st := Stats{
		Version:    s.Version,
		Candidates: len(s.Candidates),
		Clients:    len(s.Clients),
		Agents:     len(s.Agents),
		Placements: len(s.Recruited),
	}

	for _, c := range s.Candidates {
		if c.Status == model.CandidateAvailable {
			st.AvailableCandidates++
		}
		if c.IsVerified {
			st.VerifiedCandidates++
		}
		if _, ok := c.SourcedBy(); ok {
			st.AgentSourcedCandidates++
		}
	}
	for _, c := range s.Clients {
		switch c.Status {
		case model.ClientActive:
			st.ActiveClients++
		case model.ClientPending:
			st.PendingClients++
		}
		if c.IsVerified {
			st.VerifiedClients++
		}
	}
	for _, a := range s.Agents {
		switch a.Status {
		case model.AgentActive:
			st.ActiveAgents++
		case model.AgentPending:
			st.PendingAgents++
		}
	}
	for _, i := range s.Inquiries {
		if i.Status == model.InquiryNew {
			st.NewInquiries++
		}
	}
	for _, v := range s.Vacancies {
		if v.Status == model.VacancyOpen {
			st.OpenVacancies++
		}
	}
	for _, a := range s.Applications {
		if a.Status == model.ApplicationPending {
			st.PendingApplications++
		}
	}
	for _, i := range s.Invoices {
		switch {
		case i.Status.Outstanding():
			st.OutstandingInvoices++
			st.OutstandingAmount += i.Amount
		case i.Status == model.InvoicePaid:
			st.PaidInvoiceAmount += i.Amount
		}
	}
	for _, p := range s.Payments {
		if p.Status == model.PaymentCompleted {
			st.CollectedPayments += p.Amount
		}
	}
	for _, e := range s.Expenses {
		if e.Status == model.ExpenseApproved {
			st.ApprovedExpenses += e.Amount
		}
	}
	for _, b := range s.Budgets {
		st.BudgetAllocated += b.Allocated
		st.BudgetRemaining += b.Remaining()
	}
	for _, b := range s.BlogPosts {
		if b.Status == model.PublishPublished {
			st.PublishedPosts++
		}
	}
	for _, t := range s.Testimonials {
		if t.Status == model.PublishPending {
			st.PendingTestimonials++
		}
	}
	for _, n := range s.Newsletters {
		if n.Status == model.NewsletterSent {
			st.NewslettersSent++
		}
	}
	for _, c := range s.CommunicationLogs {
		if c.Status == model.DeliveryFailed {
			st.FailedCommunications++
		}
	}
	return st
}
