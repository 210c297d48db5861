package agency

import (
	"context"
	"fmt"

	"github.com/roach88/recruitdb/internal/model"
	"github.com/roach88/recruitdb/internal/session"
)

// A logged-in record is the copy taken at login. It does not follow later
// edits to its row; log in again to pick them up.

// IsAdmin reports whether the administrator is logged in.
func (d *Data) IsAdmin() bool { return d.sessions.IsAdmin() }

// LoginAdmin sets the administrator flag.
func (d *Data) LoginAdmin(ctx context.Context) error { return d.sessions.LoginAdmin(ctx) }

// LogoutAdmin clears the administrator flag.
func (d *Data) LogoutAdmin(ctx context.Context) error { return d.sessions.LogoutAdmin(ctx) }

// LoginClient stores c as the logged-in client.
func (d *Data) LoginClient(ctx context.Context, c model.Client) error {
	if c.ID == "" {
		return fmt.Errorf("login client: %w", errNoIdentity)
	}
	return d.sessions.Client.Set(ctx, c)
}

// LogoutClient clears the client slot.
func (d *Data) LogoutClient(ctx context.Context) error { return d.sessions.Client.Clear(ctx) }

// CurrentClient returns the logged-in client.
func (d *Data) CurrentClient() (model.Client, bool) { return d.sessions.Client.Get() }

// LoginCandidate stores c as the logged-in candidate.
func (d *Data) LoginCandidate(ctx context.Context, c model.Candidate) error {
	if c.ID == "" {
		return fmt.Errorf("login candidate: %w", errNoIdentity)
	}
	return d.sessions.Candidate.Set(ctx, c)
}

// LogoutCandidate clears the candidate slot.
func (d *Data) LogoutCandidate(ctx context.Context) error { return d.sessions.Candidate.Clear(ctx) }

// CurrentCandidate returns the logged-in candidate.
func (d *Data) CurrentCandidate() (model.Candidate, bool) { return d.sessions.Candidate.Get() }

// LoginAgent stores a as the logged-in agent.
func (d *Data) LoginAgent(ctx context.Context, a model.Agent) error {
	if a.ID == "" {
		return fmt.Errorf("login agent: %w", errNoIdentity)
	}
	return d.sessions.Agent.Set(ctx, a)
}

// LogoutAgent clears the agent slot.
func (d *Data) LogoutAgent(ctx context.Context) error { return d.sessions.Agent.Clear(ctx) }

// CurrentAgent returns the logged-in agent.
func (d *Data) CurrentAgent() (model.Agent, bool) { return d.sessions.Agent.Get() }

// Logout clears the slot for role.
func (d *Data) Logout(ctx context.Context, role session.Role) error {
	return d.sessions.Logout(ctx, role)
}

// Sessions returns a copy of all four slots.
func (d *Data) Sessions() session.State {
	return d.sessions.State()
}
