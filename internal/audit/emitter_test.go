package audit

import (
	"context"
	"errors"
	"testing"
	"time"

	"hexroom/internal/room"
)

type fakeAppender struct {
	entries []room.LogEntry
	roomIDs []string
	err     error
}

func (f *fakeAppender) AppendLog(ctx context.Context, roomID string, entry room.LogEntry) error {
	if f.err != nil {
		return f.err
	}
	f.roomIDs = append(f.roomIDs, roomID)
	f.entries = append(f.entries, entry)
	return nil
}

func TestEmitStampsClock(t *testing.T) {
	fixedTime := time.Date(2026, 2, 7, 10, 0, 0, 0, time.UTC)
	store := &fakeAppender{}
	emitter := NewEmitter(store, nil)
	emitter.clock = func() time.Time { return fixedTime }

	emitter.Emit(context.Background(), "room-1", room.LogEntry{ActorID: "a", Action: room.ActionJoin})

	if len(store.entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(store.entries))
	}
	if !store.entries[0].Timestamp.Equal(fixedTime) {
		t.Fatalf("expected clock timestamp, got %v", store.entries[0].Timestamp)
	}
	if store.roomIDs[0] != "room-1" {
		t.Fatalf("expected room-1, got %q", store.roomIDs[0])
	}
}

func TestEmitNoopWithoutStore(t *testing.T) {
	emitter := NewEmitter(nil, nil)
	// Must not panic.
	emitter.Emit(context.Background(), "room-1", room.LogEntry{Action: room.ActionJoin})
}

func TestEmitSwallowsAppendFailure(t *testing.T) {
	store := &fakeAppender{err: errors.New("disk full")}
	emitter := NewEmitter(store, nil)
	// Must not panic or surface the error.
	emitter.Emit(context.Background(), "room-1", room.LogEntry{Action: room.ActionJoin})
}

func TestLeaveTagsKickTarget(t *testing.T) {
	store := &fakeAppender{}
	emitter := NewEmitter(store, nil)

	emitter.Leave(context.Background(), "room-1", "host", room.LeaveReasonKick, "victim")

	if len(store.entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(store.entries))
	}
	entry := store.entries[0]
	if entry.Action != room.ActionLeave {
		t.Fatalf("expected leave action, got %q", entry.Action)
	}
	if entry.Detail["reason"] != room.LeaveReasonKick {
		t.Fatalf("expected kick reason, got %v", entry.Detail)
	}
	if entry.Detail["target"] != "victim" {
		t.Fatalf("expected kick target, got %v", entry.Detail)
	}
}

func TestLeaveOmitsSelfTarget(t *testing.T) {
	store := &fakeAppender{}
	emitter := NewEmitter(store, nil)

	emitter.Leave(context.Background(), "room-1", "a", room.LeaveReasonVoluntary, "a")

	if _, ok := store.entries[0].Detail["target"]; ok {
		t.Fatal("expected no target for self-removal")
	}
}
