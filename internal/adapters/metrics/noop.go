package metrics

import "go.trai.ch/roam/internal/core/ports"

// Discard is a ports.Metrics that records nothing. One-shot CLI commands use it.
type Discard struct{}

// ObserveReload does nothing.
func (Discard) ObserveReload(ports.ReloadResult) {}

// ObserveMutation does nothing.
func (Discard) ObserveMutation(string, string) {}

// SetSnapshotSize does nothing.
func (Discard) SetSnapshotSize(int, int) {}

// ObserveMapRequest does nothing.
func (Discard) ObserveMapRequest(int) {}
