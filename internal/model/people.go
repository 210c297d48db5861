package model

import "time"

// Defaulter is implemented by records that fill optional fields when they
// are created. now is the creation instant.
type Defaulter interface {
	ApplyDefaults(now time.Time)
}

// CommunicationPreferences holds the opt-in flags for outbound contact.
type CommunicationPreferences struct {
	Email    bool `json:"email"`
	SMS      bool `json:"sms"`
	WhatsApp bool `json:"whatsapp"`
}

// Candidate is a job seeker, either self-registered or sourced by an agent.
type Candidate struct {
	ID                string                   `json:"id"`
	Name              string                   `json:"name"`
	Email             string                   `json:"email"`
	Phone             string                   `json:"phone,omitempty"`
	Nationality       string                   `json:"nationality"`
	Profession        string                   `json:"profession"`
	Status            CandidateStatus          `json:"status"`
	Skills            []string                 `json:"skills"`
	ExperienceYears   int                      `json:"experienceYears"`
	IsVerified        bool                     `json:"isVerified"`
	CompletenessScore int                      `json:"completenessScore"`
	Preferences       CommunicationPreferences `json:"preferences"`
	// AgentID is set when an agent created the candidate.
	AgentID     *string   `json:"agentId,omitempty"`
	ConsentDate time.Time `json:"consentDate"`
	LastActive  time.Time `json:"lastActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ApplyDefaults fills the zero fields of a new Candidate.
func (c *Candidate) ApplyDefaults(now time.Time) {
	if c.Status == "" {
		c.Status = CandidateAvailable
	}
	if c.Skills == nil {
		c.Skills = []string{}
	}
	c.CompletenessScore = clampScore(c.CompletenessScore)
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	if c.ConsentDate.IsZero() {
		c.ConsentDate = now
	}
	if c.LastActive.IsZero() {
		c.LastActive = now
	}
}

// SourcedBy reports the agent that created the candidate, if any.
func (c Candidate) SourcedBy() (string, bool) {
	if c.AgentID == nil || *c.AgentID == "" {
		return "", false
	}
	return *c.AgentID, true
}

func clampScore(v int) int {
	switch {
	case v < 0:
		return 0
	case v > 100:
		return 100
	}
	return v
}

// Client is an employer company that places vacancies with the agency.
type Client struct {
	ID                string       `json:"id"`
	CompanyName       string       `json:"companyName"`
	ContactPerson     string       `json:"contactPerson,omitempty"`
	Email             string       `json:"email"`
	Phone             string       `json:"phone,omitempty"`
	Country           string       `json:"country,omitempty"`
	Industry          string       `json:"industry,omitempty"`
	IsVerified        bool         `json:"isVerified"`
	Status            ClientStatus `json:"status"`
	LicenseNumber     string       `json:"licenseNumber,omitempty"`
	VerificationNotes string       `json:"verificationNotes,omitempty"`
	CreatedAt         time.Time    `json:"createdAt"`
}

// ApplyDefaults fills the zero fields of a new Client.
func (c *Client) ApplyDefaults(now time.Time) {
	if c.Status == "" {
		c.Status = ClientPending
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
}

// Agent is a third-party sourcing partner.
type Agent struct {
	ID             string      `json:"id"`
	AgencyName     string      `json:"agencyName"`
	ContactPerson  string      `json:"contactPerson,omitempty"`
	Email          string      `json:"email"`
	Phone          string      `json:"phone,omitempty"`
	Country        string      `json:"country,omitempty"`
	Status         AgentStatus `json:"status"`
	CommissionRate float64     `json:"commissionRate"`
	CreatedAt      time.Time   `json:"createdAt"`
}

// ApplyDefaults fills the zero fields of a new Agent.
func (a *Agent) ApplyDefaults(now time.Time) {
	if a.Status == "" {
		a.Status = AgentPending
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
}

// Inquiry is a contact-form submission. Email is a soft owner link.
type Inquiry struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Email       string        `json:"email"`
	Subject     string        `json:"subject,omitempty"`
	Message     string        `json:"message"`
	Status      InquiryStatus `json:"status"`
	Response    string        `json:"response,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
	RespondedAt *time.Time    `json:"respondedAt,omitempty"`
}

// ApplyDefaults fills the zero fields of a new Inquiry.
func (i *Inquiry) ApplyDefaults(now time.Time) {
	if i.Status == "" {
		i.Status = InquiryNew
	}
	if i.CreatedAt.IsZero() {
		i.CreatedAt = now
	}
}

// RecruitedCandidate is a placement record. It is tracked by passport and
// employer and is not necessarily linked to a Candidate row.
type RecruitedCandidate struct {
	ID             string          `json:"id"`
	FullName       string          `json:"fullName"`
	PassportNumber string          `json:"passportNumber"`
	Nationality    string          `json:"nationality,omitempty"`
	Employer       string          `json:"employer"`
	Position       string          `json:"position,omitempty"`
	Country        string          `json:"country,omitempty"`
	DeploymentDate time.Time       `json:"deploymentDate"`
	Status         PlacementStatus `json:"status"`
}

// ApplyDefaults fills the zero fields of a new RecruitedCandidate.
func (r *RecruitedCandidate) ApplyDefaults(now time.Time) {
	if r.Status == "" {
		r.Status = PlacementDeployed
	}
	if r.DeploymentDate.IsZero() {
		r.DeploymentDate = now
	}
}
