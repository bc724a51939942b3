package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"ideaindex/internal/domain"
	"ideaindex/internal/ports"
)

// DefaultIndexDelay is how long a new idea stays out of the index
const DefaultIndexDelay = time.Second

// ErrCanceled is reported by a PendingUpdate stopped before it ran
var ErrCanceled = errors.New("index update canceled")

// Options configures a Catalog
type Options struct {
	// IndexDelay is the lag between Add and the index extension
	IndexDelay time.Duration

	// CancelPendingOnRebuild stops scheduled extensions when Rebuild runs.
	// Off by default: a pending extension lands on top of the rebuilt table.
	CancelPendingOnRebuild bool

	Logger *slog.Logger
}

// NewIdea is the user input for Add
type NewIdea struct {
	Title  string
	Tags   string // comma-separated
	Author string
}

// Stats summarizes the working set
type Stats struct {
	Ideas   int
	Tags    int
	Entries int
	Pending int
}

// Catalog owns the idea set and its tag index, and persists both to a
// KVStore under ports.KeyIdeas and ports.KeyIndex.
//
// All state transitions run under one mutex, including the deferred index
// extensions fired by the scheduler. The ideas slice and the index table are
// replaced wholesale on every change, so snapshots handed to searches are
// never mutated.
type Catalog struct {
	store ports.KVStore
	sched ports.Scheduler
	opts  Options
	log   *slog.Logger

	mu      sync.Mutex
	ideas   []domain.Idea
	index   domain.IndexTable
	pending map[*PendingUpdate]struct{}
}

// NewCatalog creates a catalog. Call Init before use.
func NewCatalog(store ports.KVStore, sched ports.Scheduler, opts Options) *Catalog {
	if opts.IndexDelay < 0 {
		opts.IndexDelay = 0
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Catalog{
		store:   store,
		sched:   sched,
		opts:    opts,
		log:     logger,
		index:   domain.IndexTable{},
		pending: make(map[*PendingUpdate]struct{}),
	}
}

// Init seeds the store with the demo dataset and an empty index if no idea
// set has ever been written, then loads both entries. Existing entries are
// never reseeded.
func (c *Catalog) Init(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, found, err := c.store.Get(ctx, ports.KeyIdeas)
	if err != nil {
		return &StorageError{Op: "get", Key: ports.KeyIdeas, Err: err}
	}

	if !found {
		seed := domain.SeedIdeas()
		if err := c.putJSON(ctx, ports.KeyIdeas, seed); err != nil {
			return err
		}
		if err := c.putJSON(ctx, ports.KeyIndex, domain.IndexTable{}); err != nil {
			return err
		}
		c.log.Info("seeded idea store", "ideas", len(seed))
	}

	return c.loadLocked(ctx)
}

// Reload re-reads both entries from the store, replacing in-memory state.
// Pending extensions are kept and apply on top of the reloaded index.
func (c *Catalog) Reload(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loadLocked(ctx)
}

func (c *Catalog) loadLocked(ctx context.Context) error {
	var ideas []domain.Idea
	if _, err := c.getJSON(ctx, ports.KeyIdeas, &ideas); err != nil {
		return err
	}

	index := domain.IndexTable{}
	if _, err := c.getJSON(ctx, ports.KeyIndex, &index); err != nil {
		return err
	}
	if index == nil {
		index = domain.IndexTable{}
	}

	c.ideas = ideas
	c.index = index
	c.log.Debug("loaded idea store", "ideas", len(ideas), "tags", len(index))
	return nil
}

// Ideas returns the working set in record order
func (c *Catalog) Ideas() []domain.Idea {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.ideas)
}

// Index returns a copy of the current index table
func (c *Catalog) Index() domain.IndexTable {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.index.Clone()
}

// Get returns the first idea with the given ID
func (c *Catalog) Get(id string) (domain.Idea, error) {
	idea, ok := domain.FindIdea(c.snapshotIdeas(), id)
	if !ok {
		return domain.Idea{}, fmt.Errorf("idea %s: %w", id, ErrNotFound)
	}
	return idea, nil
}

// SearchSlow scans every idea for a tag containing query
func (c *Catalog) SearchSlow(query string) []domain.Idea {
	return domain.LinearScan(c.snapshotIdeas(), query)
}

// SearchFast resolves query as a single tag key in the index
func (c *Catalog) SearchFast(query string) []domain.IndexEntry {
	return c.snapshotIndex().Lookup(query)
}

func (c *Catalog) snapshotIdeas() []domain.Idea {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ideas
}

func (c *Catalog) snapshotIndex() domain.IndexTable {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.index
}

// Rebuild replaces the index with one built from the full idea set and
// persists it. On a storage failure the previous index stays in effect.
func (c *Catalog) Rebuild(ctx context.Context) (domain.IndexTable, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	start := time.Now()
	table := domain.BuildIndex(c.ideas)
	if err := c.putJSON(ctx, ports.KeyIndex, table); err != nil {
		return nil, err
	}
	c.index = table

	canceled := 0
	if c.opts.CancelPendingOnRebuild {
		for p := range c.pending {
			if c.cancelLocked(p) {
				canceled++
			}
		}
	}

	c.log.Info("rebuilt index",
		"ideas", len(c.ideas),
		"tags", len(table),
		"canceled", canceled,
		"duration", time.Since(start))
	return table.Clone(), nil
}

// Add validates input, appends a new idea to the persisted set and schedules
// the index extension after the configured delay. Until the returned
// PendingUpdate is done, index lookups do not see the new idea.
func (c *Catalog) Add(ctx context.Context, in NewIdea) (*domain.Idea, *PendingUpdate, error) {
	if err := ValidateRequired("title", in.Title); err != nil {
		return nil, nil, err
	}
	if err := ValidateRequired("tags", in.Tags); err != nil {
		return nil, nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	idea := domain.Idea{
		ID:     domain.NextIdeaID(len(c.ideas)),
		Title:  in.Title,
		Tags:   domain.ParseTags(in.Tags),
		Author: in.Author,
	}

	next := append(slices.Clip(c.ideas), idea)
	if err := c.putJSON(ctx, ports.KeyIdeas, next); err != nil {
		return nil, nil, err
	}
	c.ideas = next

	p := &PendingUpdate{
		Idea:    idea,
		catalog: c,
		done:    make(chan struct{}),
	}
	c.pending[p] = struct{}{}
	p.timer = c.sched.AfterFunc(c.opts.IndexDelay, func() { c.applyPending(p) })

	c.log.Info("added idea", "id", idea.ID, "tags", idea.Tags, "index_delay", c.opts.IndexDelay)
	return &idea, p, nil
}

func (c *Catalog) applyPending(p *PendingUpdate) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.pending[p]; !ok {
		return
	}
	delete(c.pending, p)

	next := c.index.Extend(p.Idea)
	if err := c.putJSON(context.Background(), ports.KeyIndex, next); err != nil {
		c.log.Error("index extension failed", "id", p.Idea.ID, "error", err)
		p.finish(err)
		return
	}
	c.index = next

	c.log.Debug("extended index", "id", p.Idea.ID, "tags", p.Idea.Tags)
	p.finish(nil)
}

func (c *Catalog) cancelLocked(p *PendingUpdate) bool {
	if _, ok := c.pending[p]; !ok {
		return false
	}
	delete(c.pending, p)
	if p.timer != nil {
		p.timer.Stop()
	}
	p.finish(ErrCanceled)
	return true
}

// Stats returns counts over the current state
func (c *Catalog) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Stats{
		Ideas:   len(c.ideas),
		Tags:    len(c.index),
		Entries: c.index.EntryCount(),
		Pending: len(c.pending),
	}
}

func (c *Catalog) getJSON(ctx context.Context, key string, v any) (bool, error) {
	data, found, err := c.store.Get(ctx, key)
	if err != nil {
		return false, &StorageError{Op: "get", Key: key, Err: err}
	}
	if !found {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return true, &StorageError{Op: "decode", Key: key, Err: fmt.Errorf("%w: %v", ErrCorrupt, err)}
	}
	return true, nil
}

func (c *Catalog) putJSON(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return &StorageError{Op: "encode", Key: key, Err: err}
	}
	if err := c.store.Put(ctx, key, data); err != nil {
		return &StorageError{Op: "put", Key: key, Err: err}
	}
	return nil
}

// PendingUpdate is the handle to a scheduled index extension
type PendingUpdate struct {
	Idea domain.Idea

	catalog *Catalog
	timer   ports.Timer
	done    chan struct{}
	once    sync.Once
	err     error
}

// Done is closed once the extension ran, failed or was canceled
func (p *PendingUpdate) Done() <-chan struct{} {
	return p.done
}

// Err returns the outcome after Done is closed: nil when the index was
// extended, ErrCanceled, or a storage error
func (p *PendingUpdate) Err() error {
	select {
	case <-p.done:
		return p.err
	default:
		return nil
	}
}

// Wait blocks until the extension finishes or ctx ends
func (p *PendingUpdate) Wait(ctx context.Context) error {
	select {
	case <-p.done:
		return p.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Cancel stops the extension if it has not run yet
func (p *PendingUpdate) Cancel() bool {
	p.catalog.mu.Lock()
	defer p.catalog.mu.Unlock()
	return p.catalog.cancelLocked(p)
}

func (p *PendingUpdate) finish(err error) {
	p.once.Do(func() {
		p.err = err
		close(p.done)
	})
}
