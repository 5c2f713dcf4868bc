package room

import (
	"reflect"
	"testing"
)

func TestReindexSeatsDense(t *testing.T) {
	players := []Player{
		{ID: "c", Order: 3},
		{ID: "a", Order: 0},
		{ID: "b", Order: 2},
	}

	reindexed := ReindexSeats(players)

	if len(reindexed) != 3 {
		t.Fatalf("expected 3 players, got %d", len(reindexed))
	}
	wantIDs := []string{"a", "b", "c"}
	for i, p := range reindexed {
		if p.Order != i {
			t.Errorf("seat %d has order %d", i, p.Order)
		}
		if p.ID != wantIDs[i] {
			t.Errorf("seat %d is %q, want %q", i, p.ID, wantIDs[i])
		}
	}
	// Input untouched.
	if players[0].Order != 3 {
		t.Error("expected input slice to be unmodified")
	}
}

func TestRecomputeTurnOrderFiltersAndAppends(t *testing.T) {
	seated := []Player{
		{ID: "a", Order: 0},
		{ID: "c", Order: 1},
		{ID: "d", Order: 2},
	}
	got := RecomputeTurnOrder([]string{"a", "b", "c"}, seated)
	want := []string{"a", "c", "d"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("RecomputeTurnOrder = %v, want %v", got, want)
	}
}

func TestRecomputeTurnOrderDropsDuplicates(t *testing.T) {
	seated := []Player{{ID: "a", Order: 0}, {ID: "b", Order: 1}}
	got := RecomputeTurnOrder([]string{"a", "a", "b"}, seated)
	want := []string{"a", "b"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("RecomputeTurnOrder = %v, want %v", got, want)
	}
}

func TestRecomputeTurnOrderEmpty(t *testing.T) {
	got := RecomputeTurnOrder([]string{"a"}, nil)
	if len(got) != 0 {
		t.Fatalf("expected empty order, got %v", got)
	}
}

func TestSnakeOrder(t *testing.T) {
	got := SnakeOrder([]string{"a", "b", "c", "d"})
	want := []string{"a", "b", "c", "d", "d", "c", "b", "a"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("SnakeOrder = %v, want %v", got, want)
	}
}

func TestUsedColors(t *testing.T) {
	players := []Player{{ID: "a", Color: ColorRed}, {ID: "b", Color: ColorOrange}}
	got := UsedColors(players)
	want := []Color{ColorRed, ColorOrange}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("UsedColors = %v, want %v", got, want)
	}
}
