package agency

import (
	"context"

	"github.com/roach88/recruitdb/internal/model"
	"github.com/roach88/recruitdb/internal/store"
)

// Named transitions. None of them validate the target status: a transition
// the business would consider nonsensical is still applied. Each returns
// ErrNotFound when the row does not exist.

// UpdateCandidateStatus sets a candidate's status and marks them active now.
func (d *Data) UpdateCandidateStatus(ctx context.Context, id string, status model.CandidateStatus) error {
	return d.Candidates.modify(ctx, "update candidate status", id, func(c *model.Candidate) {
		c.Status = status
		c.LastActive = d.clock.Now()
	})
}

// VerifyCandidate marks a candidate's documents as verified.
func (d *Data) VerifyCandidate(ctx context.Context, id string) error {
	return d.Candidates.modify(ctx, "verify candidate", id, func(c *model.Candidate) {
		c.IsVerified = true
	})
}

// UpdateClientStatus sets a client's status.
func (d *Data) UpdateClientStatus(ctx context.Context, id string, status model.ClientStatus) error {
	return d.Clients.modify(ctx, "update client status", id, func(c *model.Client) {
		c.Status = status
	})
}

// VerifyClient activates a client and marks it verified.
func (d *Data) VerifyClient(ctx context.Context, id string) error {
	return d.Clients.modify(ctx, "verify client", id, func(c *model.Client) {
		c.Status = model.ClientActive
		c.IsVerified = true
	})
}

// UpdateAgentStatus sets an agent's status.
func (d *Data) UpdateAgentStatus(ctx context.Context, id string, status model.AgentStatus) error {
	return d.Agents.modify(ctx, "update agent status", id, func(a *model.Agent) {
		a.Status = status
	})
}

// UpdateInquiryStatus sets an inquiry's status.
func (d *Data) UpdateInquiryStatus(ctx context.Context, id string, status model.InquiryStatus) error {
	return d.Inquiries.modify(ctx, "update inquiry status", id, func(i *model.Inquiry) {
		i.Status = status
	})
}

// ReplyInquiry records a response and marks the inquiry replied.
func (d *Data) ReplyInquiry(ctx context.Context, id, response string) error {
	return d.Inquiries.modify(ctx, "reply inquiry", id, func(i *model.Inquiry) {
		now := d.clock.Now()
		i.Status = model.InquiryReplied
		i.Response = response
		i.RespondedAt = &now
	})
}

// UpdateVacancyStatus sets a vacancy's status.
func (d *Data) UpdateVacancyStatus(ctx context.Context, id string, status model.VacancyStatus) error {
	return d.Vacancies.modify(ctx, "update vacancy status", id, func(v *model.JobVacancy) {
		v.Status = status
	})
}

// UpdateApplicationStatus sets an application's status.
func (d *Data) UpdateApplicationStatus(ctx context.Context, id string, status model.ApplicationStatus) error {
	return d.Applications.modify(ctx, "update application status", id, func(a *model.JobApplication) {
		a.Status = status
	})
}

// UpdateRecruitedStatus sets a placement's status.
func (d *Data) UpdateRecruitedStatus(ctx context.Context, id string, status model.PlacementStatus) error {
	return d.Recruited.modify(ctx, "update recruited status", id, func(r *model.RecruitedCandidate) {
		r.Status = status
	})
}

// UpdateInvoiceStatus sets an invoice's status.
func (d *Data) UpdateInvoiceStatus(ctx context.Context, id string, status model.InvoiceStatus) error {
	return d.Invoices.modify(ctx, "update invoice status", id, func(i *model.Invoice) {
		i.Status = status
	})
}

// SettlePayment completes a payment and flips the invoice it references to
// Paid, in one mutation. A payment whose invoice no longer exists is still
// settled.
func (d *Data) SettlePayment(ctx context.Context, id string) error {
	return d.gateway.Mutate(ctx, "settle payment", func(ctx context.Context, q store.Querier) error {
		now := d.clock.Now()
		p, err := d.Payments.modifyIn(ctx, q, id, func(p *model.Payment) {
			p.Status = model.PaymentCompleted
			p.PaidAt = &now
		})
		if err != nil {
			return err
		}
		if p.InvoiceID == "" {
			return nil
		}

		_, found, err := store.SelectByID(ctx, q, store.TableInvoices, p.InvoiceID)
		if err != nil {
			return err
		}
		if !found {
			d.logger.Debug("settled payment references a missing invoice", "payment", id, "invoice", p.InvoiceID)
			return nil
		}
		_, err = d.Invoices.modifyIn(ctx, q, p.InvoiceID, func(i *model.Invoice) {
			i.Status = model.InvoicePaid
		})
		return err
	})
}

// UpdateExpenseStatus sets an expense's status.
func (d *Data) UpdateExpenseStatus(ctx context.Context, id string, status model.ExpenseStatus) error {
	return d.Expenses.modify(ctx, "update expense status", id, func(e *model.Expense) {
		e.Status = status
	})
}

// MarkNewsletterSent records a send to recipients subscribers.
func (d *Data) MarkNewsletterSent(ctx context.Context, id string, recipients int) error {
	return d.Newsletters.modify(ctx, "mark newsletter sent", id, func(n *model.Newsletter) {
		now := d.clock.Now()
		n.Status = model.NewsletterSent
		n.RecipientCount = recipients
		n.SentAt = &now
	})
}

// UpdateCommunicationStatus sets the delivery status of a logged message.
func (d *Data) UpdateCommunicationStatus(ctx context.Context, id string, status model.DeliveryStatus) error {
	return d.CommunicationLogs.modify(ctx, "update communication status", id, func(c *model.CommunicationLog) {
		c.Status = status
	})
}

// UpdateWebPageStatus sets a page's status and stamps UpdatedAt.
func (d *Data) UpdateWebPageStatus(ctx context.Context, id string, status model.PublishStatus) error {
	return d.WebPages.modify(ctx, "update web page status", id, func(w *model.WebPage) {
		w.Status = status
		w.UpdatedAt = d.clock.Now()
	})
}

// PublishWebPage is UpdateWebPageStatus to Published.
func (d *Data) PublishWebPage(ctx context.Context, id string) error {
	return d.UpdateWebPageStatus(ctx, id, model.PublishPublished)
}

// UpdateBlogPostStatus sets a post's status. The first transition to
// Published stamps PublishedAt.
func (d *Data) UpdateBlogPostStatus(ctx context.Context, id string, status model.PublishStatus) error {
	return d.BlogPosts.modify(ctx, "update blog post status", id, func(b *model.BlogPost) {
		b.Status = status
		if status == model.PublishPublished && b.PublishedAt == nil {
			now := d.clock.Now()
			b.PublishedAt = &now
		}
	})
}

// UpdateTestimonialStatus sets a testimonial's status.
func (d *Data) UpdateTestimonialStatus(ctx context.Context, id string, status model.PublishStatus) error {
	return d.Testimonials.modify(ctx, "update testimonial status", id, func(t *model.Testimonial) {
		t.Status = status
	})
}

// UpdateTeamMemberStatus sets a team member's status.
func (d *Data) UpdateTeamMemberStatus(ctx context.Context, id string, status model.PublishStatus) error {
	return d.TeamMembers.modify(ctx, "update team member status", id, func(t *model.TeamMember) {
		t.Status = status
	})
}
