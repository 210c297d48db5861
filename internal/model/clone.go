package model

import "slices"

// Clone returns a copy that shares no slices or pointers with c.
func (c Candidate) Clone() Candidate {
	c.Skills = slices.Clone(c.Skills)
	c.AgentID = clonePtr(c.AgentID)
	return c
}

// Clone returns a copy that shares no pointers with i.
func (i Inquiry) Clone() Inquiry {
	i.RespondedAt = clonePtr(i.RespondedAt)
	return i
}

// Clone returns a copy that shares no slices or pointers with v.
func (v JobVacancy) Clone() JobVacancy {
	v.ClientID = clonePtr(v.ClientID)
	v.Requirements = slices.Clone(v.Requirements)
	return v
}

// Clone returns a copy that shares no pointers with a.
func (a JobApplication) Clone() JobApplication {
	a.CandidateID = clonePtr(a.CandidateID)
	return a
}

// Clone returns a copy that shares no slices or pointers with i.
func (i Invoice) Clone() Invoice {
	i.ClientID = clonePtr(i.ClientID)
	i.Items = slices.Clone(i.Items)
	return i
}

// Clone returns a copy that shares no pointers with p.
func (p Payment) Clone() Payment {
	p.PaidAt = clonePtr(p.PaidAt)
	return p
}

// Clone returns a copy that shares no pointers with n.
func (n Newsletter) Clone() Newsletter {
	n.SentAt = clonePtr(n.SentAt)
	return n
}

// Clone returns a copy that shares no slices or pointers with b.
func (b BlogPost) Clone() BlogPost {
	b.Tags = slices.Clone(b.Tags)
	b.PublishedAt = clonePtr(b.PublishedAt)
	return b
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
