package agency

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/roach88/recruitdb/internal/model"
	"github.com/roach88/recruitdb/internal/store"
)

// Snapshot is one immutable projection of every table. Treat it as read
// only; Data.Snapshot hands out a copy.
type Snapshot struct {
	// Version increases by one on every refresh.
	Version uint64

	Candidates        []model.Candidate
	Clients           []model.Client
	Agents            []model.Agent
	Inquiries         []model.Inquiry
	Vacancies         []model.JobVacancy
	Applications      []model.JobApplication
	Recruited         []model.RecruitedCandidate
	Invoices          []model.Invoice
	Payments          []model.Payment
	Expenses          []model.Expense
	Budgets           []model.Budget
	Newsletters       []model.Newsletter
	CommunicationLogs []model.CommunicationLog
	WebPages          []model.WebPage
	BlogPosts         []model.BlogPost
	Testimonials      []model.Testimonial
	TeamMembers       []model.TeamMember
}

// Clone deep-copies every collection, including slices and pointers nested
// inside records.
func (s *Snapshot) Clone() *Snapshot {
	return &Snapshot{
		Version:           s.Version,
		Candidates:        cloneSlice(s.Candidates),
		Clients:           cloneSlice(s.Clients),
		Agents:            cloneSlice(s.Agents),
		Inquiries:         cloneSlice(s.Inquiries),
		Vacancies:         cloneSlice(s.Vacancies),
		Applications:      cloneSlice(s.Applications),
		Recruited:         cloneSlice(s.Recruited),
		Invoices:          cloneSlice(s.Invoices),
		Payments:          cloneSlice(s.Payments),
		Expenses:          cloneSlice(s.Expenses),
		Budgets:           cloneSlice(s.Budgets),
		Newsletters:       cloneSlice(s.Newsletters),
		CommunicationLogs: cloneSlice(s.CommunicationLogs),
		WebPages:          cloneSlice(s.WebPages),
		BlogPosts:         cloneSlice(s.BlogPosts),
		Testimonials:      cloneSlice(s.Testimonials),
		TeamMembers:       cloneSlice(s.TeamMembers),
	}
}

// cloneSlice copies s and never returns nil. Records with a Clone method
// are deep-copied.
func cloneSlice[T any](s []T) []T {
	out := make([]T, len(s))
	for i, rec := range s {
		out[i] = cloneRecord(rec)
	}
	return out
}

func cloneRecord[T any](rec T) T {
	if c, ok := any(rec).(interface{ Clone() T }); ok {
		return c.Clone()
	}
	return rec
}

// projection fills one collection of a snapshot from the engine.
type projection interface {
	tableName() string
	project(ctx context.Context, q store.Querier, into *Snapshot) error
}

// Projector pulls every table from the engine into typed snapshots.
type Projector struct {
	engine *store.Store
	logger *slog.Logger

	mu      sync.Mutex // serializes Refresh
	tables  []projection
	version uint64
	current atomic.Pointer[Snapshot]

	subsMu  sync.Mutex
	subs    map[int]func(*Snapshot)
	nextSub int
}

// NewProjector creates a projector with an empty initial snapshot.
func NewProjector(engine *store.Store, logger *slog.Logger) *Projector {
	if logger == nil {
		logger = slog.Default()
	}
	p := &Projector{
		engine: engine,
		logger: logger,
		subs:   make(map[int]func(*Snapshot)),
	}
	p.current.Store(&Snapshot{})
	return p
}

func (p *Projector) register(t projection) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.tables = append(p.tables, t)
}

// Current returns the latest published snapshot.
func (p *Projector) Current() *Snapshot {
	return p.current.Load()
}

// Refresh re-selects every table, publishes the new snapshot and then
// notifies subscribers once.
//
// A table whose select or decode fails is logged and projected as empty;
// the other tables are unaffected.
func (p *Projector) Refresh(ctx context.Context) *Snapshot {
	p.mu.Lock()
	p.version++
	next := &Snapshot{Version: p.version}
	for _, t := range p.tables {
		if err := t.project(ctx, p.engine.DB(), next); err != nil {
			p.logger.Error("table projection failed, exposing it empty",
				"table", t.tableName(), "error", err)
		}
	}
	p.current.Store(next)
	p.mu.Unlock()

	p.logger.Debug("snapshot refreshed", "version", next.Version)
	p.notify(next)
	return next
}

// Subscribe registers fn to be called after every refresh with its own copy
// of the new snapshot. The returned function unregisters it.
func (p *Projector) Subscribe(fn func(*Snapshot)) (cancel func()) {
	p.subsMu.Lock()
	defer p.subsMu.Unlock()
	id := p.nextSub
	p.nextSub++
	p.subs[id] = fn
	return func() {
		p.subsMu.Lock()
		defer p.subsMu.Unlock()
		delete(p.subs, id)
	}
}

func (p *Projector) notify(snap *Snapshot) {
	p.subsMu.Lock()
	ids := make([]int, 0, len(p.subs))
	for id := range p.subs {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	fns := make([]func(*Snapshot), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, p.subs[id])
	}
	p.subsMu.Unlock()

	for _, fn := range fns {
		fn(snap.Clone())
	}
}
