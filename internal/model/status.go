package model

// CandidateStatus is the employability state of a candidate.
type CandidateStatus string

const (
	CandidateAvailable    CandidateStatus = "Available"
	CandidateProcessing   CandidateStatus = "Processing"
	CandidateInterviewing CandidateStatus = "Interviewing"
	CandidateHired        CandidateStatus = "Hired"
	CandidateDeployed     CandidateStatus = "Deployed"
	CandidateUnavailable  CandidateStatus = "Unavailable"
)

// ClientStatus is the lifecycle state of a client company.
type ClientStatus string

const (
	ClientActive    ClientStatus = "Active"
	ClientPending   ClientStatus = "Pending"
	ClientSuspended ClientStatus = "Suspended"
)

// AgentStatus is the lifecycle state of a sourcing partner.
type AgentStatus string

const (
	AgentPending   AgentStatus = "Pending"
	AgentActive    AgentStatus = "Active"
	AgentSuspended AgentStatus = "Suspended"
	AgentRejected  AgentStatus = "Rejected"
)

type InquiryStatus string

const (
	InquiryNew      InquiryStatus = "New"
	InquiryReplied  InquiryStatus = "Replied"
	InquiryArchived InquiryStatus = "Archived"
)

type VacancyStatus string

const (
	VacancyDraft  VacancyStatus = "Draft"
	VacancyOpen   VacancyStatus = "Open"
	VacancyClosed VacancyStatus = "Closed"
	VacancyFilled VacancyStatus = "Filled"
)

type ApplicationStatus string

const (
	ApplicationPending     ApplicationStatus = "Pending"
	ApplicationShortlisted ApplicationStatus = "Shortlisted"
	ApplicationRejected    ApplicationStatus = "Rejected"
	ApplicationHired       ApplicationStatus = "Hired"
)

// PlacementStatus tracks a deployed worker after placement.
type PlacementStatus string

const (
	PlacementDeployed    PlacementStatus = "Deployed"
	PlacementOnContract  PlacementStatus = "OnContract"
	PlacementCompleted   PlacementStatus = "Completed"
	PlacementRepatriated PlacementStatus = "Repatriated"
)

type InvoiceStatus string

const (
	InvoiceDraft     InvoiceStatus = "Draft"
	InvoiceSent      InvoiceStatus = "Sent"
	InvoicePaid      InvoiceStatus = "Paid"
	InvoiceOverdue   InvoiceStatus = "Overdue"
	InvoiceCancelled InvoiceStatus = "Cancelled"
)

// Outstanding reports whether the invoice still expects money.
func (s InvoiceStatus) Outstanding() bool {
	return s == InvoiceSent || s == InvoiceOverdue
}

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "Pending"
	PaymentCompleted PaymentStatus = "Completed"
	PaymentFailed    PaymentStatus = "Failed"
)

type ExpenseStatus string

const (
	ExpensePending  ExpenseStatus = "Pending"
	ExpenseApproved ExpenseStatus = "Approved"
	ExpenseRejected ExpenseStatus = "Rejected"
)

type NewsletterStatus string

const (
	NewsletterDraft     NewsletterStatus = "Draft"
	NewsletterScheduled NewsletterStatus = "Scheduled"
	NewsletterSent      NewsletterStatus = "Sent"
)

type Channel string

const (
	ChannelEmail    Channel = "Email"
	ChannelSMS      Channel = "SMS"
	ChannelWhatsApp Channel = "WhatsApp"
	ChannelCall     Channel = "Call"
)

type DeliveryStatus string

const (
	DeliverySent      DeliveryStatus = "Sent"
	DeliveryDelivered DeliveryStatus = "Delivered"
	DeliveryFailed    DeliveryStatus = "Failed"
)

// PublishStatus is shared by the CMS entities.
type PublishStatus string

const (
	PublishDraft     PublishStatus = "Draft"
	PublishPending   PublishStatus = "Pending"
	PublishPublished PublishStatus = "Published"
	PublishArchived  PublishStatus = "Archived"
	PublishHidden    PublishStatus = "Hidden"
)
