// Package audit records best-effort lifecycle events for rooms. The log is
// an at-least-once diagnostic side channel: appends may be duplicated or
// lost, and failures never affect the operation that triggered them.
package audit

import (
	"context"
	"time"

	"go.uber.org/zap"

	"hexroom/internal/room"
)

// LogAppender appends audit entries for a room.
type LogAppender interface {
	AppendLog(ctx context.Context, roomID string, entry room.LogEntry) error
}

// Emitter records lifecycle audit events.
type Emitter struct {
	store  LogAppender
	logger *zap.Logger
	clock  func() time.Time
}

// NewEmitter creates a new audit event emitter.
func NewEmitter(store LogAppender, logger *zap.Logger) *Emitter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Emitter{store: store, logger: logger, clock: time.Now}
}

// Emit records an audit entry. It is a no-op when the store is nil and
// swallows append failures after logging them.
func (e *Emitter) Emit(ctx context.Context, roomID string, entry room.LogEntry) {
	if e == nil || e.store == nil {
		return
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = e.clock().UTC()
	}
	if err := e.store.AppendLog(ctx, roomID, entry); err != nil {
		e.logger.Warn("audit append failed",
			zap.String("room_id", roomID),
			zap.String("action", entry.Action),
			zap.Error(err),
		)
	}
}

// Join records a seat being taken.
func (e *Emitter) Join(ctx context.Context, roomID, actorID string) {
	e.Emit(ctx, roomID, room.LogEntry{
		ActorID: actorID,
		Action:  room.ActionJoin,
	})
}

// Leave records a seat being vacated, tagged with how it happened. For
// kicks, targetID identifies the removed player.
func (e *Emitter) Leave(ctx context.Context, roomID, actorID, reason, targetID string) {
	detail := map[string]string{"reason": reason}
	if targetID != "" && targetID != actorID {
		detail["target"] = targetID
	}
	e.Emit(ctx, roomID, room.LogEntry{
		ActorID: actorID,
		Action:  room.ActionLeave,
		Detail:  detail,
	})
}

// Reset records a room being reset by its host.
func (e *Emitter) Reset(ctx context.Context, roomID, actorID string) {
	e.Emit(ctx, roomID, room.LogEntry{
		ActorID: actorID,
		Action:  room.ActionReset,
	})
}
