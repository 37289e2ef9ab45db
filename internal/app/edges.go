package app

import (
	"context"

	"go.trai.ch/roam/internal/core/domain"
	"go.trai.ch/roam/internal/core/ports"
	"go.trai.ch/roam/internal/engine/mirror"
	"go.trai.ch/roam/internal/engine/snapshot"
)

// FingerprintReport summarizes the canonical edge set of a source document.
type FingerprintReport struct {
	Fingerprint string
	Connections int
	Locations   int
	Skipped     int
}

// AddEdge adds a walk connection to the document at source without a running server.
func (a *App) AddEdge(ctx context.Context, source, from, to string) (domain.MutationResult, error) {
	return a.gateway(source).AddEdge(ctx, from, to)
}

// RemoveEdge removes the walk connection between from and to in the document at source.
func (a *App) RemoveEdge(ctx context.Context, source, from, to string) (domain.MutationResult, error) {
	return a.gateway(source).RemoveEdge(ctx, from, to)
}

// Fingerprint reads the document at source and reports its canonical edge set.
func (a *App) Fingerprint(ctx context.Context, source string) (FingerprintReport, error) {
	src, err := a.openSource(source).Load(ctx)
	if err != nil {
		return FingerprintReport{}, err
	}

	edges, stats := src.Edges()
	return FingerprintReport{
		Fingerprint: edges.Fingerprint(),
		Connections: edges.Len(),
		Locations:   len(src.Locations),
		Skipped:     stats.Malformed + stats.SelfLoops,
	}, nil
}

func (a *App) gateway(source string) *mirror.Gateway {
	log := quietLogger{a.logger}
	cache := snapshot.NewCache(log, a.metrics)
	return mirror.NewGateway(mirror.NewPipeline(a.openSource(source), cache, log, a.metrics, a.tracer))
}

// quietLogger drops informational messages for one-shot commands.
type quietLogger struct {
	ports.Logger
}

func (quietLogger) Info(string) {}
