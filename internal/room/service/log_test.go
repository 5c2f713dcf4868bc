package service

import (
	"testing"

	"hexroom/internal/room"
)

func TestRoomLogRecordsLifecycle(t *testing.T) {
	store := newMemStore(t)
	c := newTestCoordinator(t, store)
	roomID, _ := fillRoom(t, c, "bob")

	if err := c.LeaveRoom(asCaller("bob"), LeaveRoomRequest{RoomID: roomID}); err != nil {
		t.Fatalf("leave: %v", err)
	}

	entries, err := c.RoomLog(asCaller("alice"), RoomLogRequest{RoomID: roomID})
	if err != nil {
		t.Fatalf("room log: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	wantActions := []string{room.ActionJoin, room.ActionJoin, room.ActionLeave}
	for i, want := range wantActions {
		if entries[i].Action != want {
			t.Fatalf("entry %d: expected %q, got %q", i, want, entries[i].Action)
		}
	}
	for _, entry := range entries {
		if entry.Timestamp.IsZero() {
			t.Fatal("expected stamped entries")
		}
	}
}

func TestRoomLogHonorsLimit(t *testing.T) {
	store := newMemStore(t)
	c := newTestCoordinator(t, store)
	roomID, _ := fillRoom(t, c, "bob", "carol")

	entries, err := c.RoomLog(asCaller("alice"), RoomLogRequest{RoomID: roomID, Limit: 1})
	if err != nil {
		t.Fatalf("room log: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
}
