package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"VisitorIntake/metrics"
	"VisitorIntake/models"
	"VisitorIntake/repositories"
	"VisitorIntake/utils/redislog"
)

// DefaultWriteTimeout bounds one insert when no timeout is configured.
const DefaultWriteTimeout = 5 * time.Second

// GatewayOptions tunes how writes are issued.
type GatewayOptions struct {
	WriteTimeout time.Duration // per-insert budget, detached from the request
	Async        bool          // return before the insert finishes
}

// PersistenceGateway writes accepted visitors on a best-effort basis.
// Write never returns an error: a missing store, a failed insert and a panic
// inside the driver all end as a warning plus a metric.
type PersistenceGateway struct {
	store   *repositories.StoreHandle
	log     *redislog.Logger
	metrics *metrics.Metrics
	opts    GatewayOptions
	now     func() time.Time
	wg      sync.WaitGroup // in-flight async writes
}

// NewPersistenceGateway wires the gateway to the shared store handle.
func NewPersistenceGateway(store *repositories.StoreHandle, rlog *redislog.Logger, m *metrics.Metrics, opts GatewayOptions) *PersistenceGateway {
	if opts.WriteTimeout <= 0 {
		opts.WriteTimeout = DefaultWriteTimeout
	}
	return &PersistenceGateway{store: store, log: rlog, metrics: m, opts: opts, now: time.Now}
}

// Write records one accepted name. The timestamp is taken now, even when the
// insert itself runs later on a background goroutine.
func (g *PersistenceGateway) Write(ctx context.Context, name, userAgent string) {
	v := &models.Visitor{Name: name, VisitedAt: g.now().UTC(), UserAgent: userAgent}
	ctx = context.WithoutCancel(ctx) // a closed client connection must not abort the insert

	if !g.opts.Async {
		g.write(ctx, v)
		return
	}
	g.wg.Add(1)
	go func() {
		defer g.wg.Done()
		g.write(ctx, v)
	}()
}

// Wait blocks until queued async writes are done (used on shutdown).
func (g *PersistenceGateway) Wait() { g.wg.Wait() }

func (g *PersistenceGateway) write(ctx context.Context, v *models.Visitor) {
	repo, ok := g.store.Repository()
	if !ok {
		g.log.Warn("store not connected, visitor not persisted", map[string]string{"name": v.Name})
		g.metrics.ObservePersist(metrics.PersistSkipped)
		return
	}

	if err := g.insert(ctx, repo, v); err != nil {
		g.log.Error("visitor write failed", map[string]string{"name": v.Name, "err": err.Error()})
		g.metrics.ObservePersist(metrics.PersistFailed)
		return
	}
	g.metrics.ObservePersist(metrics.PersistStored)
}

// insert runs the repository call under the write timeout and turns a panic
// into an error so the caller's flow is never interrupted.
func (g *PersistenceGateway) insert(ctx context.Context, repo repositories.VisitorRepository, v *models.Visitor) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic during insert: %v", r)
		}
	}()
	ctx, cancel := context.WithTimeout(ctx, g.opts.WriteTimeout)
	defer cancel()
	return repo.Create(ctx, v)
}
