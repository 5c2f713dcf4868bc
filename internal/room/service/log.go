package service

import (
	"context"
	"fmt"

	"hexroom/internal/room"
)

// defaultLogLimit bounds log reads that do not specify a limit.
const defaultLogLimit = 100

// RoomLogRequest carries the parameters for reading a room's event log.
type RoomLogRequest struct {
	RoomID string
	Limit  int
}

// RoomLog returns the room's lifecycle event log in append order. The log is
// best-effort diagnostics, not a source of truth.
func (c *Coordinator) RoomLog(ctx context.Context, req RoomLogRequest) ([]room.LogEntry, error) {
	ctx, span := c.tracer.Start(ctx, "RoomLog")
	defer span.End()

	if _, err := callerID(ctx); err != nil {
		return nil, err
	}
	if req.RoomID == "" {
		return nil, ErrRoomIDEmpty
	}
	limit := req.Limit
	if limit <= 0 || limit > defaultLogLimit {
		limit = defaultLogLimit
	}
	entries, err := c.store.Log(ctx, req.RoomID, limit)
	if err != nil {
		return nil, fmt.Errorf("read room log: %w", err)
	}
	return entries, nil
}
