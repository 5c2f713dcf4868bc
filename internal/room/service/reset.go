package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	apperrors "hexroom/internal/platform/errors"
	"hexroom/internal/room"
	"hexroom/internal/room/boardgen"
	"hexroom/internal/storage"
)

// ResetRoomRequest carries the parameters for restarting a room.
type ResetRoomRequest struct {
	RoomID string
}

// ResetRoom restarts a room with fresh seeds. Seated players keep their
// seats, names, and colors; everything else (board, bank, hands, trades,
// scores, awards) returns to its initial state. Only the host may reset.
func (c *Coordinator) ResetRoom(ctx context.Context, req ResetRoomRequest) error {
	ctx, span := c.tracer.Start(ctx, "ResetRoom")
	defer span.End()

	caller, err := callerID(ctx)
	if err != nil {
		return err
	}
	if req.RoomID == "" {
		return ErrRoomIDEmpty
	}

	mapSeed, err := c.idGenerator()
	if err != nil {
		return fmt.Errorf("generate map seed: %w", err)
	}
	deckSeed, err := c.idGenerator()
	if err != nil {
		return fmt.Errorf("generate deck seed: %w", err)
	}
	layout := boardgen.GenerateMap(mapSeed)
	deck := boardgen.GenerateDeck(deckSeed)

	err = c.store.Update(ctx, req.RoomID, func(tx storage.Tx) error {
		r, err := tx.Room()
		if errors.Is(err, storage.ErrNotFound) {
			return apperrors.New(apperrors.CodeRoomNotFound, "room not found")
		}
		if err != nil {
			return fmt.Errorf("read room: %w", err)
		}
		if r.HostID != caller {
			return apperrors.New(apperrors.CodeNotHost, "only the host may reset")
		}

		players, err := tx.Players()
		if err != nil {
			return fmt.Errorf("read players: %w", err)
		}
		players = room.ReindexSeats(players)
		for i := range players {
			players[i].PublicScore = 0
			players[i].HasLargestArmy = false
			players[i].HasLongestRoad = false
			if err := tx.PutPlayer(players[i]); err != nil {
				return fmt.Errorf("write player: %w", err)
			}
			if err := tx.PutHand(players[i].ID, room.NewHand()); err != nil {
				return fmt.Errorf("write hand: %w", err)
			}
		}

		if err := tx.PutBoard(room.NewBoard(room.PlayerIDs(players))); err != nil {
			return fmt.Errorf("write board: %w", err)
		}
		if err := tx.PutBank(room.NewBank()); err != nil {
			return fmt.Errorf("write bank: %w", err)
		}
		if err := tx.PutTrade(room.NewTrade()); err != nil {
			return fmt.Errorf("write trade: %w", err)
		}

		r.TurnOrder = room.RecomputeTurnOrder(r.TurnOrder, players)
		if len(players) == room.MaxSeats {
			r.Status = room.StatusPlacing
		} else {
			r.Status = room.StatusLobby
		}
		r.CurrentPlayerID = ""
		if len(r.TurnOrder) > 0 {
			r.CurrentPlayerID = r.TurnOrder[0]
		}
		r.Round = 0
		r.TurnPhase = room.TurnPhaseAction
		r.RobberHex = layout.RobberHex
		r.LargestArmyOwner = ""
		r.LongestRoadOwner = ""
		r.Winner = nil
		r.UpdatedAt = c.clock().UTC()

		cfg := room.Config{
			Tiles:    layout.Tiles,
			Ports:    layout.Ports,
			MapSeed:  mapSeed,
			DeckSeed: deckSeed,
			DevDeck:  deck,
		}
		if r.Status == room.StatusPlacing {
			cfg.PlacementOrder = room.SnakeOrder(r.TurnOrder)
		}
		if err := tx.PutConfig(cfg); err != nil {
			return fmt.Errorf("write config: %w", err)
		}
		return tx.PutRoom(r)
	})
	if err != nil {
		return err
	}

	c.audit.Reset(ctx, req.RoomID, caller)
	c.logger.Info("room reset",
		zap.String("room_id", req.RoomID),
		zap.String("host_id", caller),
	)
	return nil
}
