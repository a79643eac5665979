package domain

type InconsistencyKind string

const (
	InconsistencyMissingInEvent InconsistencyKind = "missing_in_event"
	InconsistencyMissingInStore InconsistencyKind = "missing_in_store"
	InconsistencyFieldMismatch  InconsistencyKind = "field_mismatch"
	InconsistencyDanglingEvent  InconsistencyKind = "dangling_event"
	InconsistencyDuplicateEntry InconsistencyKind = "duplicate_entry"
)

// Inconsistency describes one place where the ticket store and an event's
// embedded ticket list disagree.
type Inconsistency struct {
	Kind     InconsistencyKind `json:"kind"`
	EventID  string            `json:"event_id"`
	TicketID string            `json:"ticket_id"`
}
