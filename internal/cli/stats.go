package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/recruitdb/internal/agency"
)

// NewStatsCommand creates the stats command.
func NewStatsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show dashboard aggregates",
		Long: `Show the dashboard aggregates computed from the current contents of
every table.

Example:
  recruitdb stats
  recruitdb stats --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(rootOpts, cmd)
		},
	}
}

func runStats(opts *RootOptions, cmd *cobra.Command) error {
	ws, err := openWorkspace(opts, cmd)
	if err != nil {
		return err
	}
	defer ws.Close()

	st := ws.data.Stats()
	out := formatter(opts, cmd)
	if opts.Format == "json" {
		return out.Success(st)
	}
	return out.Success(statsReport(st))
}

// statsReport renders Stats as aligned text.
type statsReport agency.Stats

func (r statsReport) String() string {
	var b strings.Builder
	line := func(label string, v any) {
		fmt.Fprintf(&b, "%-24s %v\n", label, v)
	}
	money := func(v float64) string { return fmt.Sprintf("%.2f", v) }

	line("Candidates", r.Candidates)
	line("  available", r.AvailableCandidates)
	line("  verified", r.VerifiedCandidates)
	line("  agent sourced", r.AgentSourcedCandidates)
	line("Clients", r.Clients)
	line("  active", r.ActiveClients)
	line("  pending", r.PendingClients)
	line("  verified", r.VerifiedClients)
	line("Agents", r.Agents)
	line("  active", r.ActiveAgents)
	line("  pending", r.PendingAgents)
	line("New inquiries", r.NewInquiries)
	line("Open vacancies", r.OpenVacancies)
	line("Pending applications", r.PendingApplications)
	line("Placements", r.Placements)
	line("Outstanding invoices", r.OutstandingInvoices)
	line("Outstanding amount", money(r.OutstandingAmount))
	line("Paid invoices", money(r.PaidInvoiceAmount))
	line("Collected payments", money(r.CollectedPayments))
	line("Approved expenses", money(r.ApprovedExpenses))
	line("Budget allocated", money(r.BudgetAllocated))
	line("Budget remaining", money(r.BudgetRemaining))
	line("Published posts", r.PublishedPosts)
	line("Pending testimonials", r.PendingTestimonials)
	line("Newsletters sent", r.NewslettersSent)
	line("Failed communications", r.FailedCommunications)
	return strings.TrimSuffix(b.String(), "\n")
}
