package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	apperrors "hexroom/internal/platform/errors"
	"hexroom/internal/room"
	"hexroom/internal/storage"
)

// LeaveRoomRequest carries the parameters for voluntarily vacating a seat.
type LeaveRoomRequest struct {
	RoomID string
}

// KickPlayerRequest carries the parameters for a host removing a player.
type KickPlayerRequest struct {
	RoomID   string
	PlayerID string
}

// LeaveRoom vacates the caller's seat. Leaving is only possible while the
// room is still in the lobby; once the game starts, resigning is the only
// exit.
func (c *Coordinator) LeaveRoom(ctx context.Context, req LeaveRoomRequest) error {
	ctx, span := c.tracer.Start(ctx, "LeaveRoom")
	defer span.End()

	caller, err := callerID(ctx)
	if err != nil {
		return err
	}
	if req.RoomID == "" {
		return ErrRoomIDEmpty
	}
	return c.removeSeat(ctx, req.RoomID, caller, caller, room.LeaveReasonVoluntary)
}

// KickPlayer removes another player from a lobby. Only the host may kick,
// and never themselves.
func (c *Coordinator) KickPlayer(ctx context.Context, req KickPlayerRequest) error {
	ctx, span := c.tracer.Start(ctx, "KickPlayer")
	defer span.End()

	caller, err := callerID(ctx)
	if err != nil {
		return err
	}
	if req.RoomID == "" {
		return ErrRoomIDEmpty
	}
	if req.PlayerID == "" {
		return apperrors.New(apperrors.CodePlayerIDEmpty, "player id is required")
	}
	if req.PlayerID == caller {
		return apperrors.New(apperrors.CodeSelfKick, "host cannot kick themselves")
	}
	return c.removeSeat(ctx, req.RoomID, caller, req.PlayerID, room.LeaveReasonKick)
}

// removeSeat is the single removal routine behind leave, kick, and resign.
// All three converge here so the seat, turn order, host, and award
// bookkeeping stay consistent no matter how a player departs.
func (c *Coordinator) removeSeat(ctx context.Context, roomID, caller, target, reason string) error {
	err := c.store.Update(ctx, roomID, func(tx storage.Tx) error {
		r, err := tx.Room()
		if errors.Is(err, storage.ErrNotFound) {
			return apperrors.New(apperrors.CodeRoomNotFound, "room not found")
		}
		if err != nil {
			return fmt.Errorf("read room: %w", err)
		}

		players, err := tx.Players()
		if err != nil {
			return fmt.Errorf("read players: %w", err)
		}

		seated := false
		for _, p := range players {
			if p.ID == target {
				seated = true
				break
			}
		}
		if !seated {
			return apperrors.New(apperrors.CodeSeatNotHeld, "player does not hold a seat")
		}

		switch reason {
		case room.LeaveReasonKick:
			if r.HostID != caller {
				return apperrors.New(apperrors.CodeNotHost, "only the host may kick")
			}
			if r.Status != room.StatusLobby {
				return apperrors.New(apperrors.CodeGameInProgress, "players can only be kicked from the lobby")
			}
		case room.LeaveReasonVoluntary:
			if r.Status != room.StatusLobby {
				return apperrors.New(apperrors.CodeGameInProgress, "leaving is only possible in the lobby; resign instead")
			}
		}

		if r.Started() || r.Status == room.StatusEnded {
			return c.removeAfterStart(tx, r, players, target)
		}
		return c.removeFromLobby(tx, r, players, target)
	})
	if err != nil {
		return err
	}

	c.audit.Leave(ctx, roomID, caller, reason, target)
	c.logger.Info("seat vacated",
		zap.String("room_id", roomID),
		zap.String("player_id", target),
		zap.String("reason", reason),
	)
	return nil
}

// removeFromLobby vacates a seat before the game starts. Remaining seats are
// compacted and the turn order, host, and current-player references are
// repaired.
func (c *Coordinator) removeFromLobby(tx storage.Tx, r room.Room, players []room.Player, target string) error {
	remaining := make([]room.Player, 0, len(players))
	for _, p := range players {
		if p.ID != target {
			remaining = append(remaining, p)
		}
	}
	remaining = room.ReindexSeats(remaining)

	if err := tx.DeletePlayer(target); err != nil {
		return fmt.Errorf("delete player: %w", err)
	}
	if err := tx.DeleteHand(target); err != nil {
		return fmt.Errorf("delete hand: %w", err)
	}
	for _, p := range remaining {
		if err := tx.PutPlayer(p); err != nil {
			return fmt.Errorf("write player: %w", err)
		}
	}

	r.TurnOrder = room.RecomputeTurnOrder(r.TurnOrder, remaining)
	repairRoomRefs(&r, target)

	if r.Status == room.StatusPlacing && len(remaining) < room.MaxSeats {
		r.Status = room.StatusLobby
		r.Round = 0
	}
	if len(remaining) == 0 {
		r.Status = room.StatusLobby
		r.TurnOrder = []string{}
		r.HostID = ""
		r.CurrentPlayerID = ""
	}

	board, err := tx.Board()
	if err != nil {
		return fmt.Errorf("read board: %w", err)
	}
	if err := tx.PutBoard(board.ZeroLongestRoad(room.PlayerIDs(remaining))); err != nil {
		return fmt.Errorf("write board: %w", err)
	}

	cfg, err := tx.Config()
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	cfg.PlacementOrder = nil
	if err := tx.PutConfig(cfg); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	r.UpdatedAt = c.clock().UTC()
	return tx.PutRoom(r)
}

// removeAfterStart handles a resignation once the game is underway: the
// player's pieces leave the board, any open trade is cancelled, and the game
// ends when one or zero players remain.
func (c *Coordinator) removeAfterStart(tx storage.Tx, r room.Room, players []room.Player, target string) error {
	remaining := make([]room.Player, 0, len(players))
	for _, p := range players {
		if p.ID != target {
			remaining = append(remaining, p)
		}
	}
	remaining = room.ReindexSeats(remaining)

	if err := tx.DeletePlayer(target); err != nil {
		return fmt.Errorf("delete player: %w", err)
	}
	if err := tx.DeleteHand(target); err != nil {
		return fmt.Errorf("delete hand: %w", err)
	}
	for _, p := range remaining {
		if err := tx.PutPlayer(p); err != nil {
			return fmt.Errorf("write player: %w", err)
		}
	}

	board, err := tx.Board()
	if err != nil {
		return fmt.Errorf("read board: %w", err)
	}
	board = board.StripPieces(target).ZeroLongestRoad(room.PlayerIDs(remaining))
	if err := tx.PutBoard(board); err != nil {
		return fmt.Errorf("write board: %w", err)
	}
	if err := tx.PutTrade(room.NewTrade()); err != nil {
		return fmt.Errorf("write trade: %w", err)
	}

	r.TurnOrder = room.RecomputeTurnOrder(r.TurnOrder, remaining)
	repairRoomRefs(&r, target)

	switch len(remaining) {
	case 0:
		r.Status = room.StatusEnded
		r.Winner = nil
		r.TurnOrder = []string{}
		r.HostID = ""
		r.CurrentPlayerID = ""
	case 1:
		r.Status = room.StatusEnded
		r.Winner = &room.Winner{
			PlayerID: remaining[0].ID,
			Score:    remaining[0].PublicScore,
		}
	}

	r.UpdatedAt = c.clock().UTC()
	return tx.PutRoom(r)
}

// repairRoomRefs clears or reassigns room-level references to a removed
// player. The turn order must already be recomputed.
func repairRoomRefs(r *room.Room, removed string) {
	if r.HostID == removed {
		r.HostID = ""
		if len(r.TurnOrder) > 0 {
			r.HostID = r.TurnOrder[0]
		}
	}
	if r.CurrentPlayerID == removed {
		r.CurrentPlayerID = ""
		if len(r.TurnOrder) > 0 {
			r.CurrentPlayerID = r.TurnOrder[0]
		}
		r.TurnPhase = room.TurnPhaseAction
	}
	if r.LargestArmyOwner == removed {
		r.LargestArmyOwner = ""
	}
	if r.LongestRoadOwner == removed {
		r.LongestRoadOwner = ""
	}
}
