package model

// Record is implemented by every stored entity.
type Record interface {
	RecordID() string
}

// RecordID implements Record for every table type.
func (c Candidate) RecordID() string          { return c.ID }
func (c Client) RecordID() string             { return c.ID }
func (a Agent) RecordID() string              { return a.ID }
func (i Inquiry) RecordID() string            { return i.ID }
func (v JobVacancy) RecordID() string         { return v.ID }
func (a JobApplication) RecordID() string     { return a.ID }
func (r RecruitedCandidate) RecordID() string { return r.ID }
func (i Invoice) RecordID() string            { return i.ID }
func (p Payment) RecordID() string            { return p.ID }
func (e Expense) RecordID() string            { return e.ID }
func (b Budget) RecordID() string             { return b.ID }
func (n Newsletter) RecordID() string         { return n.ID }
func (c CommunicationLog) RecordID() string   { return c.ID }
func (w WebPage) RecordID() string            { return w.ID }
func (b BlogPost) RecordID() string           { return b.ID }
func (t Testimonial) RecordID() string        { return t.ID }
func (t TeamMember) RecordID() string         { return t.ID }
