package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	apperrors "hexroom/internal/platform/errors"
	"hexroom/internal/room"
	"hexroom/internal/room/roomcode"
	"hexroom/internal/storage"
)

// JoinRoomRequest carries the parameters for claiming a seat by code.
type JoinRoomRequest struct {
	Code string
	Name string
}

// JoinRoomResponse identifies the joined room.
type JoinRoomResponse struct {
	RoomID string
}

// JoinRoom seats the caller in the room identified by code. Filling the
// fourth seat starts initial placement.
func (c *Coordinator) JoinRoom(ctx context.Context, req JoinRoomRequest) (JoinRoomResponse, error) {
	ctx, span := c.tracer.Start(ctx, "JoinRoom")
	defer span.End()

	caller, err := callerID(ctx)
	if err != nil {
		return JoinRoomResponse{}, err
	}

	code, ok := roomcode.Normalize(req.Code)
	if !ok {
		return JoinRoomResponse{}, apperrors.New(apperrors.CodeRoomCodeInvalid, "room code is malformed")
	}
	name, err := room.NormalizeName(req.Name)
	if err != nil {
		return JoinRoomResponse{}, err
	}

	roomID, err := c.store.RoomIDByCode(ctx, code)
	if errors.Is(err, storage.ErrNotFound) {
		return JoinRoomResponse{}, apperrors.New(apperrors.CodeRoomNotFound, "room not found")
	}
	if err != nil {
		return JoinRoomResponse{}, fmt.Errorf("resolve room code: %w", err)
	}

	err = c.store.Update(ctx, roomID, func(tx storage.Tx) error {
		r, err := tx.Room()
		if errors.Is(err, storage.ErrNotFound) {
			// The code index hit was stale; the room is gone.
			return apperrors.New(apperrors.CodeRoomNotFound, "room not found")
		}
		if err != nil {
			return fmt.Errorf("read room: %w", err)
		}
		if r.Status == room.StatusEnded {
			return apperrors.New(apperrors.CodeRoomEnded, "room has ended")
		}

		players, err := tx.Players()
		if err != nil {
			return fmt.Errorf("read players: %w", err)
		}
		for _, p := range players {
			if p.ID == caller {
				return apperrors.New(apperrors.CodeSeatAlreadyTaken, "caller already holds a seat")
			}
		}
		if len(players) >= room.MaxSeats {
			return apperrors.New(apperrors.CodeRoomFull, "room is full")
		}

		color, err := room.FirstFreeColor(room.UsedColors(players))
		if err != nil {
			return err
		}
		joined := room.Player{
			ID:        caller,
			Name:      name,
			Color:     color,
			Order:     len(players),
			Connected: true,
			JoinedAt:  c.clock().UTC(),
		}
		if err := tx.PutPlayer(joined); err != nil {
			return fmt.Errorf("write player: %w", err)
		}
		if err := tx.PutHand(caller, room.NewHand()); err != nil {
			return fmt.Errorf("write hand: %w", err)
		}

		board, err := tx.Board()
		if err != nil {
			return fmt.Errorf("read board: %w", err)
		}
		if board.LongestRoad == nil {
			board.LongestRoad = map[string]int{}
		}
		board.LongestRoad[caller] = 0
		if err := tx.PutBoard(board); err != nil {
			return fmt.Errorf("write board: %w", err)
		}

		seated := append(players, joined)
		r.TurnOrder = room.RecomputeTurnOrder(r.TurnOrder, seated)
		// Only a lobby fills into placement. Refilling a seat vacated
		// mid-game must not move the status backwards or rewrite the
		// placement order.
		if len(seated) == room.MaxSeats && room.IsStatusAdvanceAllowed(r.Status, room.StatusPlacing) {
			r.Status = room.StatusPlacing
			r.CurrentPlayerID = r.TurnOrder[0]
			r.Round = 0

			cfg, err := tx.Config()
			if err != nil {
				return fmt.Errorf("read config: %w", err)
			}
			cfg.PlacementOrder = room.SnakeOrder(r.TurnOrder)
			if err := tx.PutConfig(cfg); err != nil {
				return fmt.Errorf("write config: %w", err)
			}
		}
		r.UpdatedAt = c.clock().UTC()
		return tx.PutRoom(r)
	})
	if err != nil {
		return JoinRoomResponse{}, err
	}

	c.audit.Join(ctx, roomID, caller)
	c.logger.Info("seat taken",
		zap.String("room_id", roomID),
		zap.String("player_id", caller),
	)
	return JoinRoomResponse{RoomID: roomID}, nil
}
