package model

import "time"

// InvoiceItem is one billed line.
type InvoiceItem struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
}

type Invoice struct {
	ID            string        `json:"id"`
	InvoiceNumber string        `json:"invoiceNumber"`
	ClientID      *string       `json:"clientId,omitempty"`
	ClientName    string        `json:"clientName"`
	Items         []InvoiceItem `json:"items"`
	Amount        float64       `json:"amount"`
	Currency      string        `json:"currency"`
	Status        InvoiceStatus `json:"status"`
	IssueDate     time.Time     `json:"issueDate"`
	DueDate       time.Time     `json:"dueDate"`
}

// ApplyDefaults fills the zero fields of a new Invoice.
func (i *Invoice) ApplyDefaults(now time.Time) {
	if i.Status == "" {
		i.Status = InvoiceDraft
	}
	if i.Currency == "" {
		i.Currency = DefaultCurrency
	}
	if i.Items == nil {
		i.Items = []InvoiceItem{}
	}
	if i.IssueDate.IsZero() {
		i.IssueDate = now
	}
	if i.DueDate.IsZero() {
		i.DueDate = i.IssueDate.AddDate(0, 0, DefaultPaymentTermDays)
	}
}

// DefaultCurrency applies to money records created without one.
const DefaultCurrency = "USD"

// DefaultPaymentTermDays is the gap between issue and due date when the due
// date is omitted.
const DefaultPaymentTermDays = 30

// Payment settles an invoice. InvoiceID is a soft reference.
type Payment struct {
	ID        string        `json:"id"`
	InvoiceID string        `json:"invoiceId"`
	Amount    float64       `json:"amount"`
	Method    string        `json:"method,omitempty"`
	Reference string        `json:"reference,omitempty"`
	Status    PaymentStatus `json:"status"`
	PaidAt    *time.Time    `json:"paidAt,omitempty"`
}

// ApplyDefaults fills the zero fields of a new Payment.
func (p *Payment) ApplyDefaults(time.Time) {
	if p.Status == "" {
		p.Status = PaymentPending
	}
}

type Expense struct {
	ID          string        `json:"id"`
	Category    string        `json:"category"`
	Description string        `json:"description,omitempty"`
	Amount      float64       `json:"amount"`
	Currency    string        `json:"currency"`
	Date        time.Time     `json:"date"`
	Status      ExpenseStatus `json:"status"`
}

// ApplyDefaults fills the zero fields of a new Expense.
func (e *Expense) ApplyDefaults(now time.Time) {
	if e.Status == "" {
		e.Status = ExpensePending
	}
	if e.Currency == "" {
		e.Currency = DefaultCurrency
	}
	if e.Date.IsZero() {
		e.Date = now
	}
}

// Budget is an allocation for one expense category over a period such as
// "2024-Q1".
type Budget struct {
	ID        string  `json:"id"`
	Category  string  `json:"category"`
	Period    string  `json:"period"`
	Allocated float64 `json:"allocated"`
	Spent     float64 `json:"spent"`
}

// Remaining is the unspent part of the allocation. It goes negative on
// overspend.
func (b Budget) Remaining() float64 {
	return b.Allocated - b.Spent
}
