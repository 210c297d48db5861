package agency

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	sq "github.com/Masterminds/squirrel"

	"github.com/roach88/recruitdb/internal/kv"
	"github.com/roach88/recruitdb/internal/model"
	"github.com/roach88/recruitdb/internal/seed"
	"github.com/roach88/recruitdb/internal/session"
	"github.com/roach88/recruitdb/internal/store"
)

// Options configures Open.
type Options struct {
	// KV is the durable store for the snapshot and the session slots.
	// Required. Data does not close it.
	KV kv.Store

	// Engine is the relational engine. Nil opens a private in-memory one
	// that Close releases.
	Engine *store.Store

	// Baseline is the dataset used for seeding and Reset. Nil uses the
	// embedded baseline.
	Baseline *seed.Dataset

	// SnapshotKey overrides DefaultSnapshotKey.
	SnapshotKey string

	IDs    IDGenerator
	Clock  Clock
	Logger *slog.Logger
}

// Collection is the untyped view of a Table.
type Collection interface {
	Name() string
	Len() int
	Records() []any
}

// binding is implemented by every Table.
type binding interface {
	projection
	Collection
	normalizeRow(store.Row) (store.Row, error)
}

// Data is the facade over the agency tables, the session slots and the
// named operations.
type Data struct {
	engine     *store.Store
	ownsEngine bool
	persister  *Persister
	gateway    *Gateway
	projector  *Projector
	sessions   *session.Store
	baseline   *seed.Dataset
	ids        IDGenerator
	clock      Clock
	logger     *slog.Logger
	bindings   []binding

	Candidates        *Table[model.Candidate]
	Clients           *Table[model.Client]
	Agents            *Table[model.Agent]
	Inquiries         *Table[model.Inquiry]
	Vacancies         *Table[model.JobVacancy]
	Applications      *Table[model.JobApplication]
	Recruited         *Table[model.RecruitedCandidate]
	Invoices          *Table[model.Invoice]
	Payments          *Table[model.Payment]
	Expenses          *Table[model.Expense]
	Budgets           *Table[model.Budget]
	Newsletters       *Table[model.Newsletter]
	CommunicationLogs *Table[model.CommunicationLog]
	WebPages          *Table[model.WebPage]
	BlogPosts         *Table[model.BlogPost]
	Testimonials      *Table[model.Testimonial]
	TeamMembers       *Table[model.TeamMember]
}

// Open boots the data layer: declare the schema, restore the durable
// snapshot or seed the baseline, publish the first snapshot and rehydrate
// the session slots.
//
// A schema failure or a failure to persist the seed is fatal. An unusable
// durable snapshot is not: it triggers seeding.
func Open(ctx context.Context, opts Options) (*Data, error) {
	if opts.KV == nil {
		return nil, errors.New("agency: durable store is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	d := &Data{
		engine:   opts.Engine,
		baseline: opts.Baseline,
		ids:      opts.IDs,
		clock:    opts.Clock,
		logger:   logger,
	}
	if d.ids == nil {
		d.ids = UUIDv7Generator{}
	}
	if d.clock == nil {
		d.clock = SystemClock{}
	}
	if d.baseline == nil {
		ds, err := seed.Baseline()
		if err != nil {
			return nil, fmt.Errorf("agency: %w", err)
		}
		d.baseline = ds
	}

	if d.engine == nil {
		engine, err := store.Open(store.MemoryDSN)
		if err != nil {
			return nil, fmt.Errorf("agency: %w", err)
		}
		d.engine = engine
		d.ownsEngine = true
	} else if err := d.engine.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("agency: schema: %w", err)
	}

	d.projector = NewProjector(d.engine, logger)
	d.persister = NewPersister(opts.KV, opts.SnapshotKey, logger)
	d.gateway = NewGateway(d.engine, d.persister, d.projector, logger)
	d.bindTables()

	if d.persister.Load(ctx, d.engine) {
		logger.Info("restored durable snapshot", "key", d.persister.Key())
		d.projector.Refresh(ctx)
	} else {
		logger.Info("seeding baseline dataset")
		if err := d.gateway.Mutate(ctx, "seed", d.loadBaseline); err != nil {
			d.Close()
			return nil, fmt.Errorf("agency: seed: %w", err)
		}
	}

	d.sessions = session.Open(ctx, opts.KV, logger)
	return d, nil
}

func (d *Data) bindTables() {
	d.Candidates = bindTable(d, store.TableCandidates, func(s *Snapshot) *[]model.Candidate { return &s.Candidates })
	d.Clients = bindTable(d, store.TableClients, func(s *Snapshot) *[]model.Client { return &s.Clients })
	d.Agents = bindTable(d, store.TableAgents, func(s *Snapshot) *[]model.Agent { return &s.Agents })
	d.Inquiries = bindTable(d, store.TableInquiries, func(s *Snapshot) *[]model.Inquiry { return &s.Inquiries })
	d.Vacancies = bindTable(d, store.TableJobVacancies, func(s *Snapshot) *[]model.JobVacancy { return &s.Vacancies })
	d.Applications = bindTable(d, store.TableJobApplications, func(s *Snapshot) *[]model.JobApplication { return &s.Applications })
	d.Recruited = bindTable(d, store.TableRecruitedCandidate, func(s *Snapshot) *[]model.RecruitedCandidate { return &s.Recruited })
	d.Invoices = bindTable(d, store.TableInvoices, func(s *Snapshot) *[]model.Invoice { return &s.Invoices })
	d.Payments = bindTable(d, store.TablePayments, func(s *Snapshot) *[]model.Payment { return &s.Payments })
	d.Expenses = bindTable(d, store.TableExpenses, func(s *Snapshot) *[]model.Expense { return &s.Expenses })
	d.Budgets = bindTable(d, store.TableBudgets, func(s *Snapshot) *[]model.Budget { return &s.Budgets })
	d.Newsletters = bindTable(d, store.TableNewsletters, func(s *Snapshot) *[]model.Newsletter { return &s.Newsletters })
	d.CommunicationLogs = bindTable(d, store.TableCommunicationLogs, func(s *Snapshot) *[]model.CommunicationLog { return &s.CommunicationLogs })
	d.WebPages = bindTable(d, store.TableWebPages, func(s *Snapshot) *[]model.WebPage { return &s.WebPages })
	d.BlogPosts = bindTable(d, store.TableBlogPosts, func(s *Snapshot) *[]model.BlogPost { return &s.BlogPosts })
	d.Testimonials = bindTable(d, store.TableTestimonials, func(s *Snapshot) *[]model.Testimonial { return &s.Testimonials })
	d.TeamMembers = bindTable(d, store.TableTeamMembers, func(s *Snapshot) *[]model.TeamMember { return &s.TeamMembers })
}

// loadBaseline clears every table and inserts the baseline with defaults
// applied.
func (d *Data) loadBaseline(ctx context.Context, q store.Querier) error {
	if err := store.Clear(ctx, q, store.TableNames()...); err != nil {
		return err
	}
	for _, b := range d.bindings {
		for i, row := range d.baseline.Tables[b.tableName()] {
			norm, err := b.normalizeRow(row)
			if err != nil {
				return fmt.Errorf("baseline %s[%d]: %w", b.tableName(), i, err)
			}
			stmt, err := store.Insert(b.tableName(), norm)
			if err != nil {
				return fmt.Errorf("baseline %s[%d]: %w", b.tableName(), i, err)
			}
			if _, err := store.Exec(ctx, q, stmt); err != nil {
				return fmt.Errorf("baseline %s[%d]: %w", b.tableName(), i, err)
			}
		}
	}
	return nil
}

// Collection looks up a table by name.
func (d *Data) Collection(name string) (Collection, error) {
	for _, b := range d.bindings {
		if b.Name() == name {
			return b, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", store.ErrUnknownTable, name)
}

// Close releases the engine if Open created it. The durable store is left
// open.
func (d *Data) Close() error {
	if d.ownsEngine {
		return d.engine.Close()
	}
	return nil
}

// Refresh re-projects every table and notifies subscribers.
func (d *Data) Refresh(ctx context.Context) *Snapshot {
	return d.projector.Refresh(ctx)
}

// Snapshot returns a copy of the current projection.
func (d *Data) Snapshot() *Snapshot {
	return d.projector.Current().Clone()
}

// Subscribe calls fn after every refresh with a private copy of the new
// snapshot.
func (d *Data) Subscribe(fn func(*Snapshot)) (cancel func()) {
	return d.projector.Subscribe(fn)
}

// Reset clears every table and reseeds the baseline.
func (d *Data) Reset(ctx context.Context) error {
	return d.gateway.Mutate(ctx, "reset", d.loadBaseline)
}

// ClearAll empties the core operational tables without reseeding. Website
// content tables are kept.
func (d *Data) ClearAll(ctx context.Context) error {
	return d.gateway.Mutate(ctx, "clear all", func(ctx context.Context, q store.Querier) error {
		return store.Clear(ctx, q, store.CoreTables()...)
	})
}

// Apply runs raw statements as one mutation.
func (d *Data) Apply(ctx context.Context, op string, stmts ...sq.Sqlizer) error {
	return d.gateway.Exec(ctx, op, stmts...)
}

// Export returns the durable snapshot exactly as stored.
func (d *Data) Export(ctx context.Context) (string, bool, error) {
	return d.persister.Raw(ctx)
}
