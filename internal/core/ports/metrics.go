package ports

// ReloadResult classifies a reload attempt.
type ReloadResult string

const (
	// ReloadUpdated means the snapshot was replaced.
	ReloadUpdated ReloadResult = "updated"
	// ReloadUnchanged means the fingerprint matched and the snapshot was kept.
	ReloadUnchanged ReloadResult = "unchanged"
	// ReloadSkipped means the raw document was byte-identical to the last applied one.
	ReloadSkipped ReloadResult = "skipped"
	// ReloadFailed means the document could not be read or parsed.
	ReloadFailed ReloadResult = "failed"
)

// Metrics records service counters and gauges.
//
//go:generate mockgen -source=metrics.go -destination=mocks/mock_metrics.go -package=mocks
type Metrics interface {
	// ObserveReload counts a reload attempt.
	ObserveReload(result ReloadResult)
	// ObserveMutation counts a gateway operation; outcome is a mutation outcome or "error".
	ObserveMutation(op, outcome string)
	// SetSnapshotSize records the size of the current snapshot.
	SetSnapshotSize(connections, locations int)
	// ObserveMapRequest counts a snapshot fetch by status code.
	ObserveMapRequest(status int)
}
