package room

import "time"

// Log action tags.
const (
	ActionJoin  = "join"
	ActionLeave = "leave"
	ActionReset = "reset"
)

// Leave reasons recorded on ActionLeave entries.
const (
	LeaveReasonVoluntary = "voluntary"
	LeaveReasonResign    = "resign"
	LeaveReasonKick      = "kick"
)

// LogEntry is one best-effort audit record. The log is diagnostic: entries
// may be duplicated or lost and room state is never reconstructed from it.
type LogEntry struct {
	Timestamp time.Time         `json:"timestamp"`
	ActorID   string            `json:"actorId,omitempty"`
	Action    string            `json:"action"`
	Detail    map[string]string `json:"detail,omitempty"`
}
