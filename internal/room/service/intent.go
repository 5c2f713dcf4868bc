package service

import (
	"context"

	apperrors "hexroom/internal/platform/errors"
	"hexroom/internal/room"
)

// IntentType names a game action a seated player may submit.
type IntentType string

const (
	IntentRollDice        IntentType = "rollDice"
	IntentBuildRoad       IntentType = "buildRoad"
	IntentBuildSettlement IntentType = "buildSettlement"
	IntentBuildCity       IntentType = "buildCity"
	IntentBuyDevCard      IntentType = "buyDevCard"
	IntentPlayDevCard     IntentType = "playDevCard"
	IntentMoveRobber      IntentType = "moveRobber"
	IntentBankTrade       IntentType = "bankTrade"
	IntentOfferTrade      IntentType = "offerTrade"
	IntentAcceptTrade     IntentType = "acceptTrade"
	IntentEndTurn         IntentType = "endTurn"
	IntentResign          IntentType = "resign"
)

// Intent is one submitted game action. Fields beyond Type are read only by
// the handlers that need them.
type Intent struct {
	Type IntentType

	// Location targets a hex, edge, or intersection for builds and robber
	// moves.
	Location string
	// Card selects the development card for playDevCard.
	Card room.CardKind
	// Give and Want describe a trade in resources offered and requested.
	Give map[room.Resource]int
	Want map[room.Resource]int
}

// SubmitIntentRequest carries one game action for a room.
type SubmitIntentRequest struct {
	RoomID string
	Intent Intent
	// IdempotencyKey lets callers retry safely. It is accepted and recorded
	// with the request but deduplication is left to the rule engine.
	IdempotencyKey string
}

// intentHandler executes one intent type. Handlers run their own room
// transaction and perform their own turn and phase validation.
type intentHandler func(c *Coordinator, ctx context.Context, roomID, caller string, in Intent) error

// intentHandlers routes intent types to their handlers. Rule-engine actions
// are registered as unimplemented placeholders until the engine lands;
// lifecycle actions are live.
var intentHandlers = map[IntentType]intentHandler{
	IntentRollDice:        unimplementedIntent(IntentRollDice),
	IntentBuildRoad:       unimplementedIntent(IntentBuildRoad),
	IntentBuildSettlement: unimplementedIntent(IntentBuildSettlement),
	IntentBuildCity:       unimplementedIntent(IntentBuildCity),
	IntentBuyDevCard:      unimplementedIntent(IntentBuyDevCard),
	IntentPlayDevCard:     unimplementedIntent(IntentPlayDevCard),
	IntentMoveRobber:      unimplementedIntent(IntentMoveRobber),
	IntentBankTrade:       unimplementedIntent(IntentBankTrade),
	IntentOfferTrade:      unimplementedIntent(IntentOfferTrade),
	IntentAcceptTrade:     unimplementedIntent(IntentAcceptTrade),
	IntentEndTurn:         unimplementedIntent(IntentEndTurn),
	IntentResign:          (*Coordinator).resign,
}

func unimplementedIntent(kind IntentType) intentHandler {
	return func(_ *Coordinator, _ context.Context, _, _ string, _ Intent) error {
		return apperrors.WithMetadata(
			apperrors.CodeIntentUnsupported,
			"intent is not implemented yet",
			map[string]string{"intent": string(kind)},
		)
	}
}

// SubmitIntent validates and dispatches one game action.
func (c *Coordinator) SubmitIntent(ctx context.Context, req SubmitIntentRequest) error {
	ctx, span := c.tracer.Start(ctx, "SubmitIntent")
	defer span.End()

	caller, err := callerID(ctx)
	if err != nil {
		return err
	}
	if req.RoomID == "" {
		return ErrRoomIDEmpty
	}

	handler, ok := intentHandlers[req.Intent.Type]
	if !ok {
		return apperrors.WithMetadata(
			apperrors.CodeIntentInvalid,
			"unrecognized intent",
			map[string]string{"intent": string(req.Intent.Type)},
		)
	}
	return handler(c, ctx, req.RoomID, caller, req.Intent)
}

// resign removes the caller's own seat regardless of game status.
func (c *Coordinator) resign(ctx context.Context, roomID, caller string, _ Intent) error {
	return c.removeSeat(ctx, roomID, caller, caller, room.LeaveReasonResign)
}
