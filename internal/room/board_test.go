package room

import "testing"

func TestNewBankFullStock(t *testing.T) {
	bank := NewBank()

	if len(bank.Resources) != len(Resources) {
		t.Fatalf("expected %d resource kinds, got %d", len(Resources), len(bank.Resources))
	}
	for _, r := range Resources {
		if bank.Resources[r] != 19 {
			t.Errorf("expected 19 %s, got %d", r, bank.Resources[r])
		}
	}
	if bank.DevCardsRemaining != DevDeckSize {
		t.Fatalf("expected %d dev cards, got %d", DevDeckSize, bank.DevCardsRemaining)
	}
}

func TestNewHandEmpty(t *testing.T) {
	hand := NewHand()

	for _, r := range Resources {
		if hand.Resources[r] != 0 {
			t.Errorf("expected 0 %s, got %d", r, hand.Resources[r])
		}
	}
	if len(hand.DevCards) != 0 || len(hand.NewDevCards) != 0 {
		t.Error("expected empty dev card counts")
	}
	if hand.ArmySize != 0 {
		t.Errorf("expected army size 0, got %d", hand.ArmySize)
	}
}

func TestNewBoardZeroCache(t *testing.T) {
	board := NewBoard([]string{"a", "b"})

	if len(board.Roads)+len(board.Settlements)+len(board.Cities) != 0 {
		t.Fatal("expected empty board")
	}
	if len(board.LongestRoad) != 2 {
		t.Fatalf("expected 2 cache entries, got %d", len(board.LongestRoad))
	}
	for id, length := range board.LongestRoad {
		if length != 0 {
			t.Errorf("expected zero cache for %s, got %d", id, length)
		}
	}
}

func TestStripPieces(t *testing.T) {
	board := Board{
		Roads:       []Piece{{Location: "e1", Owner: "a"}, {Location: "e2", Owner: "b"}},
		Settlements: []Piece{{Location: "v1", Owner: "a"}},
		Cities:      []Piece{{Location: "v2", Owner: "b"}},
	}

	stripped := board.StripPieces("a")

	if len(stripped.Roads) != 1 || stripped.Roads[0].Owner != "b" {
		t.Fatalf("expected only b's road, got %v", stripped.Roads)
	}
	if len(stripped.Settlements) != 0 {
		t.Fatalf("expected no settlements, got %v", stripped.Settlements)
	}
	if len(stripped.Cities) != 1 {
		t.Fatalf("expected b's city kept, got %v", stripped.Cities)
	}
}

func TestZeroLongestRoad(t *testing.T) {
	board := Board{LongestRoad: map[string]int{"a": 5, "b": 3, "c": 1}}

	zeroed := board.ZeroLongestRoad([]string{"a", "b"})

	if len(zeroed.LongestRoad) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(zeroed.LongestRoad))
	}
	if zeroed.LongestRoad["a"] != 0 || zeroed.LongestRoad["b"] != 0 {
		t.Fatalf("expected zeroed cache, got %v", zeroed.LongestRoad)
	}
	if _, ok := zeroed.LongestRoad["c"]; ok {
		t.Fatal("expected removed player dropped from cache")
	}
}
