package model

import "time"

// JobVacancy is an open position, optionally owned by a client.
type JobVacancy struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	ClientID     *string       `json:"clientId,omitempty"`
	CompanyName  string        `json:"companyName,omitempty"`
	Location     string        `json:"location,omitempty"`
	Country      string        `json:"country,omitempty"`
	Salary       string        `json:"salary,omitempty"`
	Description  string        `json:"description,omitempty"`
	Requirements []string      `json:"requirements"`
	Status       VacancyStatus `json:"status"`
	PostedAt     time.Time     `json:"postedAt"`
}

// ApplyDefaults fills the zero fields of a new JobVacancy.
func (v *JobVacancy) ApplyDefaults(now time.Time) {
	if v.Status == "" {
		v.Status = VacancyOpen
	}
	if v.Requirements == nil {
		v.Requirements = []string{}
	}
	if v.PostedAt.IsZero() {
		v.PostedAt = now
	}
}

// JobApplication is an inbound application for a vacancy. VacancyTitle is
// copied at submission time and is kept even if the vacancy is deleted.
type JobApplication struct {
	ID            string            `json:"id"`
	VacancyID     string            `json:"vacancyId"`
	VacancyTitle  string            `json:"vacancyTitle"`
	CandidateID   *string           `json:"candidateId,omitempty"`
	ApplicantName string            `json:"applicantName"`
	Email         string            `json:"email"`
	Phone         string            `json:"phone,omitempty"`
	CoverLetter   string            `json:"coverLetter,omitempty"`
	Status        ApplicationStatus `json:"status"`
	AppliedAt     time.Time         `json:"appliedAt"`
}

// ApplyDefaults fills the zero fields of a new JobApplication.
func (a *JobApplication) ApplyDefaults(now time.Time) {
	if a.Status == "" {
		a.Status = ApplicationPending
	}
	if a.AppliedAt.IsZero() {
		a.AppliedAt = now
	}
}
