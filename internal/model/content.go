package model

import "time"

type Newsletter struct {
	ID             string           `json:"id"`
	Subject        string           `json:"subject"`
	Content        string           `json:"content"`
	Audience       string           `json:"audience,omitempty"`
	Status         NewsletterStatus `json:"status"`
	RecipientCount int              `json:"recipientCount"`
	SentAt         *time.Time       `json:"sentAt,omitempty"`
}

// ApplyDefaults fills the zero fields of a new Newsletter.
func (n *Newsletter) ApplyDefaults(time.Time) {
	if n.Status == "" {
		n.Status = NewsletterDraft
	}
}

// CommunicationLog records one outbound message.
type CommunicationLog struct {
	ID        string         `json:"id"`
	Channel   Channel        `json:"channel"`
	Recipient string         `json:"recipient"`
	Subject   string         `json:"subject,omitempty"`
	Message   string         `json:"message"`
	Status    DeliveryStatus `json:"status"`
	SentAt    time.Time      `json:"sentAt"`
}

// ApplyDefaults fills the zero fields of a new CommunicationLog.
func (c *CommunicationLog) ApplyDefaults(now time.Time) {
	if c.Channel == "" {
		c.Channel = ChannelEmail
	}
	if c.Status == "" {
		c.Status = DeliverySent
	}
	if c.SentAt.IsZero() {
		c.SentAt = now
	}
}

type WebPage struct {
	ID        string        `json:"id"`
	Title     string        `json:"title"`
	Slug      string        `json:"slug"`
	Content   string        `json:"content"`
	Status    PublishStatus `json:"status"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// ApplyDefaults fills the zero fields of a new WebPage.
func (w *WebPage) ApplyDefaults(now time.Time) {
	if w.Status == "" {
		w.Status = PublishDraft
	}
	if w.UpdatedAt.IsZero() {
		w.UpdatedAt = now
	}
}

type BlogPost struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Slug        string        `json:"slug"`
	Excerpt     string        `json:"excerpt,omitempty"`
	Content     string        `json:"content"`
	Author      string        `json:"author,omitempty"`
	Tags        []string      `json:"tags"`
	Status      PublishStatus `json:"status"`
	PublishedAt *time.Time    `json:"publishedAt,omitempty"`
}

// ApplyDefaults fills the zero fields of a new BlogPost.
func (b *BlogPost) ApplyDefaults(time.Time) {
	if b.Status == "" {
		b.Status = PublishDraft
	}
	if b.Tags == nil {
		b.Tags = []string{}
	}
}

type Testimonial struct {
	ID      string        `json:"id"`
	Name    string        `json:"name"`
	Role    string        `json:"role,omitempty"`
	Company string        `json:"company,omitempty"`
	Content string        `json:"content"`
	Rating  int           `json:"rating"`
	Status  PublishStatus `json:"status"`
}

// ApplyDefaults fills the zero fields of a new Testimonial.
func (t *Testimonial) ApplyDefaults(time.Time) {
	if t.Status == "" {
		t.Status = PublishPending
	}
	switch {
	case t.Rating == 0, t.Rating > 5:
		t.Rating = 5
	case t.Rating < 0:
		t.Rating = 1
	}
}

type TeamMember struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Role         string        `json:"role"`
	Bio          string        `json:"bio,omitempty"`
	Email        string        `json:"email,omitempty"`
	PhotoURL     string        `json:"photoUrl,omitempty"`
	DisplayOrder int           `json:"displayOrder"`
	Status       PublishStatus `json:"status"`
}

// ApplyDefaults fills the zero fields of a new TeamMember.
func (m *TeamMember) ApplyDefaults(time.Time) {
	if m.Status == "" {
		m.Status = PublishPublished
	}
}
