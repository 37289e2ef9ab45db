package mirror

import (
	"context"
	"time"

	"go.trai.ch/roam/internal/core/domain"
)

// Gateway applies idempotent add and remove operations to the source document.
type Gateway struct {
	pipeline *Pipeline
	now      func() time.Time
}

// NewGateway creates a gateway writing through pipeline.
func NewGateway(pipeline *Pipeline) *Gateway {
	return &Gateway{pipeline: pipeline, now: time.Now}
}

// AddEdge adds a walk connection between from and to. An existing connection in
// either direction is reported as OutcomeAlreadyExists.
func (g *Gateway) AddEdge(ctx context.Context, from, to string) (domain.MutationResult, error) {
	if err := domain.ValidateEndpoints(from, to); err != nil {
		g.pipeline.metrics.ObserveMutation(string(domain.OpAdd), "invalid")
		return domain.MutationResult{Op: domain.OpAdd}, err
	}

	return g.pipeline.mutate(ctx, domain.OpAdd, func(src *domain.Source) (domain.MutationOutcome, error) {
		if src.HasWalk(from, to) {
			return domain.OutcomeAlreadyExists, nil
		}
		if err := src.AppendWalk(from, to, g.now()); err != nil {
			return "", err
		}
		return domain.OutcomeAdded, nil
	})
}

// RemoveEdge removes every walk connection between from and to in either
// direction. Nothing to remove is reported as OutcomeNotFound.
func (g *Gateway) RemoveEdge(ctx context.Context, from, to string) (domain.MutationResult, error) {
	if err := domain.ValidateEndpoints(from, to); err != nil {
		g.pipeline.metrics.ObserveMutation(string(domain.OpRemove), "invalid")
		return domain.MutationResult{Op: domain.OpRemove}, err
	}

	return g.pipeline.mutate(ctx, domain.OpRemove, func(src *domain.Source) (domain.MutationOutcome, error) {
		if src.RemoveWalk(from, to) == 0 {
			return domain.OutcomeNotFound, nil
		}
		return domain.OutcomeRemoved, nil
	})
}
