package service

import (
	"context"
	"testing"

	apperrors "hexroom/internal/platform/errors"
)

func TestSubmitIntentUnimplementedKinds(t *testing.T) {
	store := newMemStore(t)
	c := newTestCoordinator(t, store)
	roomID, _ := fillRoom(t, c, "bob", "carol", "dave")

	kinds := []IntentType{
		IntentRollDice, IntentBuildRoad, IntentBuildSettlement, IntentBuildCity,
		IntentBuyDevCard, IntentPlayDevCard, IntentMoveRobber,
		IntentBankTrade, IntentOfferTrade, IntentAcceptTrade, IntentEndTurn,
	}
	for _, kind := range kinds {
		err := c.SubmitIntent(asCaller("alice"), SubmitIntentRequest{
			RoomID: roomID,
			Intent: Intent{Type: kind},
		})
		if apperrors.GetCode(err) != apperrors.CodeIntentUnsupported {
			t.Errorf("%s: expected INTENT_UNSUPPORTED, got %v", kind, err)
		}
	}
}

func TestSubmitIntentUnknownKind(t *testing.T) {
	store := newMemStore(t)
	c := newTestCoordinator(t, store)
	roomID, _ := fillRoom(t, c)

	err := c.SubmitIntent(asCaller("alice"), SubmitIntentRequest{
		RoomID: roomID,
		Intent: Intent{Type: "teleport"},
	})
	if apperrors.GetCode(err) != apperrors.CodeIntentInvalid {
		t.Fatalf("expected INTENT_INVALID, got %v", err)
	}
}

func TestSubmitIntentRequiresRoomID(t *testing.T) {
	c := newTestCoordinator(t, newMemStore(t))

	err := c.SubmitIntent(asCaller("alice"), SubmitIntentRequest{
		Intent: Intent{Type: IntentResign},
	})
	if apperrors.GetCode(err) != apperrors.CodeRoomIDEmpty {
		t.Fatalf("expected ROOM_ID_EMPTY, got %v", err)
	}
}

func TestSubmitIntentRequiresCaller(t *testing.T) {
	store := newMemStore(t)
	c := newTestCoordinator(t, store)
	roomID, _ := fillRoom(t, c)

	err := c.SubmitIntent(context.Background(), SubmitIntentRequest{
		RoomID: roomID,
		Intent: Intent{Type: IntentResign},
	})
	if apperrors.GetCode(err) != apperrors.CodeUnauthenticated {
		t.Fatalf("expected UNAUTHENTICATED, got %v", err)
	}
}
