package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"hexroom/internal/room"
	"hexroom/internal/room/boardgen"
	"hexroom/internal/room/roomcode"
	"hexroom/internal/storage"
)

// createAttempts bounds re-allocation when the non-transactional code probe
// loses a race with a concurrent creation.
const createAttempts = 3

// CreateRoomRequest carries the parameters for creating a room.
type CreateRoomRequest struct {
	// Name is the host's display name.
	Name string
}

// CreateRoomResponse identifies the created room.
type CreateRoomResponse struct {
	RoomID string
	Code   string
}

// CreateRoom creates a room with the caller seated as host, a generated
// board layout and development deck, and a freshly allocated join code.
func (c *Coordinator) CreateRoom(ctx context.Context, req CreateRoomRequest) (CreateRoomResponse, error) {
	ctx, span := c.tracer.Start(ctx, "CreateRoom")
	defer span.End()

	caller, err := callerID(ctx)
	if err != nil {
		return CreateRoomResponse{}, err
	}

	name, err := room.NormalizeName(req.Name)
	if err != nil {
		return CreateRoomResponse{}, err
	}

	roomID, err := c.idGenerator()
	if err != nil {
		return CreateRoomResponse{}, fmt.Errorf("generate room id: %w", err)
	}
	mapSeed, err := c.idGenerator()
	if err != nil {
		return CreateRoomResponse{}, fmt.Errorf("generate map seed: %w", err)
	}
	deckSeed, err := c.idGenerator()
	if err != nil {
		return CreateRoomResponse{}, fmt.Errorf("generate deck seed: %w", err)
	}

	layout := boardgen.GenerateMap(mapSeed)
	deck := boardgen.GenerateDeck(deckSeed)
	now := c.clock().UTC()

	bundle := storage.RoomBundle{
		Room: room.Room{
			ID:            roomID,
			Status:        room.StatusLobby,
			HostID:        caller,
			TurnOrder:     []string{caller},
			TurnPhase:     room.TurnPhaseAction,
			RobberHex:     layout.RobberHex,
			SchemaVersion: room.SchemaVersion,
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		Player: room.Player{
			ID:        caller,
			Name:      name,
			Color:     room.ColorRed,
			Connected: true,
			JoinedAt:  now,
		},
		Hand:  room.NewHand(),
		Board: room.NewBoard([]string{caller}),
		Config: room.Config{
			Tiles:    layout.Tiles,
			Ports:    layout.Ports,
			MapSeed:  mapSeed,
			DeckSeed: deckSeed,
			DevDeck:  deck,
		},
		Bank:  room.NewBank(),
		Trade: room.NewTrade(),
	}

	var code string
	for attempt := 0; attempt < createAttempts; attempt++ {
		code, err = roomcode.Allocate(ctx, c.store)
		if err != nil {
			return CreateRoomResponse{}, err
		}
		bundle.Room.Code = code
		err = c.store.CreateRoom(ctx, bundle)
		if err == nil {
			break
		}
		if !errors.Is(err, storage.ErrCodeTaken) {
			return CreateRoomResponse{}, fmt.Errorf("create room: %w", err)
		}
	}
	if err != nil {
		return CreateRoomResponse{}, roomcode.ErrExhausted
	}

	c.audit.Join(ctx, roomID, caller)
	c.logger.Info("room created",
		zap.String("room_id", roomID),
		zap.String("code", code),
		zap.String("host_id", caller),
	)
	return CreateRoomResponse{RoomID: roomID, Code: code}, nil
}
