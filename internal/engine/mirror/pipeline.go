// Package mirror keeps the snapshot cache in step with the source document: it
// reloads on change, applies connection mutations, and follows file watchers.
package mirror

import (
	"context"
	"fmt"
	"sync"

	"go.trai.ch/roam/internal/core/domain"
	"go.trai.ch/roam/internal/core/ports"
	"go.trai.ch/roam/internal/engine/snapshot"
)

// Pipeline runs load → canonicalize → fingerprint → replace. Every reload and
// every read-modify-write mutation holds the same lock, so two parsers never
// race on the document.
type Pipeline struct {
	mu         sync.Mutex
	store      ports.SourceStore
	cache      *snapshot.Cache
	logger     ports.Logger
	metrics    ports.Metrics
	tracer     ports.Tracer
	lastDigest string
}

// NewPipeline creates a pipeline feeding cache from store.
func NewPipeline(
	store ports.SourceStore,
	cache *snapshot.Cache,
	logger ports.Logger,
	metrics ports.Metrics,
	tracer ports.Tracer,
) *Pipeline {
	return &Pipeline{
		store:   store,
		cache:   cache,
		logger:  logger,
		metrics: metrics,
		tracer:  tracer,
	}
}

// Cache returns the cache the pipeline writes to.
func (p *Pipeline) Cache() *snapshot.Cache {
	return p.cache
}

// Reload reads the document and replaces the snapshot if its edge set changed.
// A failed read or parse is logged and leaves the snapshot untouched.
func (p *Pipeline) Reload(ctx context.Context) (ports.ReloadResult, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	// A callback firing during shutdown is not a failed reload.
	if err := ctx.Err(); err != nil {
		return ports.ReloadSkipped, err
	}

	ctx, span := p.tracer.Start(ctx, "mirror.reload", ports.WithAttribute("source", p.store.Path()))
	defer span.End()

	src, err := p.store.Load(ctx)
	if err != nil {
		span.RecordError(err)
		p.logger.Error(err)
		p.metrics.ObserveReload(ports.ReloadFailed)
		return ports.ReloadFailed, err
	}
	span.SetAttribute("digest", src.Digest)

	if p.lastDigest != "" && src.Digest == p.lastDigest {
		p.metrics.ObserveReload(ports.ReloadSkipped)
		span.SetAttribute("result", string(ports.ReloadSkipped))
		return ports.ReloadSkipped, nil
	}

	result, err := p.applyLocked(src)
	if err != nil {
		span.RecordError(err)
		p.logger.Error(err)
		p.metrics.ObserveReload(ports.ReloadFailed)
		return ports.ReloadFailed, err
	}

	p.metrics.ObserveReload(result)
	span.SetAttribute("result", string(result))
	span.SetAttribute("fingerprint", p.cache.Read().Fingerprint())
	return result, nil
}

// ReloadFunc returns a callback running Reload for callers that only need its side
// effect, such as a debouncer.
func (p *Pipeline) ReloadFunc(ctx context.Context) func() {
	return func() {
		_, _ = p.Reload(ctx)
	}
}

// applyLocked installs the edge set of src. p.mu must be held.
func (p *Pipeline) applyLocked(src *domain.Source) (ports.ReloadResult, error) {
	edges, stats := src.Edges()
	if skipped := stats.Malformed + stats.SelfLoops; skipped > 0 {
		p.logger.Warn(fmt.Sprintf("%s: skipped %d unusable connection records", p.store.Path(), skipped))
	}

	changed, err := p.cache.Replace(edges, src.LocationsCopy())
	if err != nil {
		return ports.ReloadFailed, err
	}
	p.lastDigest = src.Digest

	if changed {
		return ports.ReloadUpdated, nil
	}
	return ports.ReloadUnchanged, nil
}

// mutate applies fn to a fresh read of the document, persists it when fn reports
// a change, and then reloads the cache from the result. A persist failure leaves
// the cache untouched.
func (p *Pipeline) mutate(
	ctx context.Context,
	op domain.MutationOp,
	fn func(src *domain.Source) (domain.MutationOutcome, error),
) (domain.MutationResult, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	ctx, span := p.tracer.Start(ctx, "mirror.mutate", ports.WithAttribute("op", string(op)))
	defer span.End()

	result, err := p.mutateLocked(ctx, op, fn)
	if err != nil {
		span.RecordError(err)
		p.metrics.ObserveMutation(string(op), "error")
		return domain.MutationResult{Op: op}, err
	}

	span.SetAttribute("outcome", string(result.Outcome))
	span.SetAttribute("fingerprint", result.Fingerprint)
	p.metrics.ObserveMutation(string(op), string(result.Outcome))
	return result, nil
}

func (p *Pipeline) mutateLocked(
	ctx context.Context,
	op domain.MutationOp,
	fn func(src *domain.Source) (domain.MutationOutcome, error),
) (domain.MutationResult, error) {
	src, err := p.store.Load(ctx)
	if err != nil {
		return domain.MutationResult{}, err
	}

	outcome, err := fn(src)
	if err != nil {
		return domain.MutationResult{}, err
	}

	if outcome.Changed() {
		if err := p.store.Save(ctx, src); err != nil {
			return domain.MutationResult{}, err
		}
	}

	if _, err := p.applyLocked(src); err != nil {
		return domain.MutationResult{}, err
	}

	return domain.MutationResult{
		Op:          op,
		Outcome:     outcome,
		Fingerprint: p.cache.Read().Fingerprint(),
	}, nil
}
