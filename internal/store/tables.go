package store

// Table names.
const (
	TableCandidates         = "candidates"
	TableClients            = "clients"
	TableAgents             = "agents"
	TableInquiries          = "inquiries"
	TableJobVacancies       = "job_vacancies"
	TableJobApplications    = "job_applications"
	TableRecruitedCandidate = "recruited_candidates"
	TableInvoices           = "invoices"
	TablePayments           = "payments"
	TableExpenses           = "expenses"
	TableBudgets            = "budgets"
	TableNewsletters        = "newsletters"
	TableCommunicationLogs  = "communication_logs"
	TableWebPages           = "web_pages"
	TableBlogPosts          = "blog_posts"
	TableTestimonials       = "testimonials"
	TableTeamMembers        = "team_members"
)

func textCol(name string) Column { return Column{Name: name, Kind: KindText} }
func intCol(name string) Column  { return Column{Name: name, Kind: KindInteger} }
func realCol(name string) Column { return Column{Name: name, Kind: KindReal} }
func boolCol(name string) Column { return Column{Name: name, Kind: KindBool} }
func jsonCol(name string) Column { return Column{Name: name, Kind: KindJSON} }

// registry is the closed set of tables. Column names match the JSON field
// names in internal/model.
var registry = []TableDef{
	{
		Name: TableCandidates,
		Core: true,
		Columns: []Column{
			textCol("name"), textCol("email"), textCol("phone"), textCol("nationality"), textCol("profession"),
			textCol("status"), jsonCol("skills"), intCol("experienceYears"), boolCol("isVerified"),
			intCol("completenessScore"), jsonCol("preferences"), textCol("agentId"),
			textCol("consentDate"), textCol("lastActive"), textCol("createdAt"),
		},
	},
	{
		Name: TableClients,
		Core: true,
		Columns: []Column{
			textCol("companyName"), textCol("contactPerson"), textCol("email"), textCol("phone"), textCol("country"),
			textCol("industry"), boolCol("isVerified"), textCol("status"), textCol("licenseNumber"),
			textCol("verificationNotes"), textCol("createdAt"),
		},
	},
	{
		Name: TableAgents,
		Core: true,
		Columns: []Column{
			textCol("agencyName"), textCol("contactPerson"), textCol("email"), textCol("phone"), textCol("country"),
			textCol("status"), realCol("commissionRate"), textCol("createdAt"),
		},
	},
	{
		Name: TableInquiries,
		Core: true,
		Columns: []Column{
			textCol("name"), textCol("email"), textCol("subject"), textCol("message"), textCol("status"),
			textCol("response"), textCol("createdAt"), textCol("respondedAt"),
		},
	},
	{
		Name: TableJobVacancies,
		Core: true,
		Columns: []Column{
			textCol("title"), textCol("clientId"), textCol("companyName"), textCol("location"), textCol("country"),
			textCol("salary"), textCol("description"), jsonCol("requirements"), textCol("status"), textCol("postedAt"),
		},
	},
	{
		Name: TableJobApplications,
		Core: true,
		Columns: []Column{
			textCol("vacancyId"), textCol("vacancyTitle"), textCol("candidateId"), textCol("applicantName"),
			textCol("email"), textCol("phone"), textCol("coverLetter"), textCol("status"), textCol("appliedAt"),
		},
	},
	{
		Name: TableRecruitedCandidate,
		Core: true,
		Columns: []Column{
			textCol("fullName"), textCol("passportNumber"), textCol("nationality"), textCol("employer"),
			textCol("position"), textCol("country"), textCol("deploymentDate"), textCol("status"),
		},
	},
	{
		Name: TableInvoices,
		Core: true,
		Columns: []Column{
			textCol("invoiceNumber"), textCol("clientId"), textCol("clientName"), jsonCol("items"),
			realCol("amount"), textCol("currency"), textCol("status"), textCol("issueDate"), textCol("dueDate"),
		},
	},
	{
		Name: TablePayments,
		Core: true,
		Columns: []Column{
			textCol("invoiceId"), realCol("amount"), textCol("method"), textCol("reference"), textCol("status"), textCol("paidAt"),
		},
	},
	{
		Name: TableExpenses,
		Core: true,
		Columns: []Column{
			textCol("category"), textCol("description"), realCol("amount"), textCol("currency"), textCol("date"), textCol("status"),
		},
	},
	{
		Name: TableBudgets,
		Core: true,
		Columns: []Column{
			textCol("category"), textCol("period"), realCol("allocated"), realCol("spent"),
		},
	},
	{
		Name: TableNewsletters,
		Core: true,
		Columns: []Column{
			textCol("subject"), textCol("content"), textCol("audience"), textCol("status"),
			intCol("recipientCount"), textCol("sentAt"),
		},
	},
	{
		Name: TableCommunicationLogs,
		Core: true,
		Columns: []Column{
			textCol("channel"), textCol("recipient"), textCol("subject"), textCol("message"), textCol("status"), textCol("sentAt"),
		},
	},
	{
		Name: TableWebPages,
		Columns: []Column{
			textCol("title"), textCol("slug"), textCol("content"), textCol("status"), textCol("updatedAt"),
		},
	},
	{
		Name: TableBlogPosts,
		Columns: []Column{
			textCol("title"), textCol("slug"), textCol("excerpt"), textCol("content"), textCol("author"),
			jsonCol("tags"), textCol("status"), textCol("publishedAt"),
		},
	},
	{
		Name: TableTestimonials,
		Columns: []Column{
			textCol("name"), textCol("role"), textCol("company"), textCol("content"), intCol("rating"), textCol("status"),
		},
	},
	{
		Name: TableTeamMembers,
		Columns: []Column{
			textCol("name"), textCol("role"), textCol("bio"), textCol("email"), textCol("photoUrl"),
			intCol("displayOrder"), textCol("status"),
		},
	},
}
