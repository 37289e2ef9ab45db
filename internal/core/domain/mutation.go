package domain

// MutationOp names a gateway operation.
type MutationOp string

const (
	// OpAdd adds a walk connection.
	OpAdd MutationOp = "add"
	// OpRemove removes a walk connection.
	OpRemove MutationOp = "remove"
)

// MutationOutcome is the successful result of a gateway operation.
type MutationOutcome string

const (
	// OutcomeAdded means a new connection was persisted.
	OutcomeAdded MutationOutcome = "added"
	// OutcomeAlreadyExists means the connection was present in either direction; nothing changed.
	OutcomeAlreadyExists MutationOutcome = "already_exists"
	// OutcomeRemoved means at least one matching connection was removed and persisted.
	OutcomeRemoved MutationOutcome = "removed"
	// OutcomeNotFound means no matching connection existed; nothing changed.
	OutcomeNotFound MutationOutcome = "not_found"
)

// Changed reports whether the outcome modified the source document.
func (o MutationOutcome) Changed() bool {
	return o == OutcomeAdded || o == OutcomeRemoved
}

// Message is a human readable description of the outcome.
func (o MutationOutcome) Message() string {
	switch o {
	case OutcomeAdded:
		return "connection added"
	case OutcomeAlreadyExists:
		return "connection already exists"
	case OutcomeRemoved:
		return "connection removed"
	case OutcomeNotFound:
		return "connection not found"
	default:
		return string(o)
	}
}

// MutationResult describes a completed gateway operation.
type MutationResult struct {
	Op      MutationOp
	Outcome MutationOutcome
	// Fingerprint is the snapshot fingerprint after the operation.
	Fingerprint string
}
