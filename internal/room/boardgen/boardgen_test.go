package boardgen

import (
	"reflect"
	"testing"

	"hexroom/internal/room"
)

func TestGenerateMapDeterministic(t *testing.T) {
	first := GenerateMap("seed-one")
	second := GenerateMap("seed-one")

	if !reflect.DeepEqual(first, second) {
		t.Fatal("expected identical maps for identical seed")
	}

	other := GenerateMap("seed-two")
	if reflect.DeepEqual(first, other) {
		t.Fatal("expected different maps for different seeds")
	}
}

func TestGenerateMapTerrainMultiset(t *testing.T) {
	generated := GenerateMap("multiset-seed")

	if len(generated.Tiles) != 19 {
		t.Fatalf("expected 19 tiles, got %d", len(generated.Tiles))
	}

	counts := map[room.Terrain]int{}
	for _, tile := range generated.Tiles {
		counts[tile.Terrain]++
	}
	want := map[room.Terrain]int{
		room.TerrainWood:   4,
		room.TerrainBrick:  3,
		room.TerrainSheep:  4,
		room.TerrainWheat:  4,
		room.TerrainOre:    3,
		room.TerrainDesert: 1,
	}
	if !reflect.DeepEqual(counts, want) {
		t.Fatalf("terrain counts = %v, want %v", counts, want)
	}
}

func TestGenerateMapRobberOnDesert(t *testing.T) {
	for _, seed := range []string{"a", "b", "c", "robber"} {
		generated := GenerateMap(seed)
		var desertHex string
		for _, tile := range generated.Tiles {
			if tile.Terrain == room.TerrainDesert {
				desertHex = tile.Hex
			}
		}
		if desertHex == "" {
			t.Fatalf("seed %q: no desert tile", seed)
		}
		if generated.RobberHex != desertHex {
			t.Fatalf("seed %q: robber on %s, desert on %s", seed, generated.RobberHex, desertHex)
		}
	}
}

func TestGenerateMapChits(t *testing.T) {
	generated := GenerateMap("chit-seed")

	chitCounts := map[int]int{}
	for _, tile := range generated.Tiles {
		if tile.Terrain == room.TerrainDesert {
			if tile.Chit != 0 {
				t.Fatalf("desert carries chit %d", tile.Chit)
			}
			continue
		}
		if tile.Chit < 2 || tile.Chit > 12 || tile.Chit == 7 {
			t.Fatalf("invalid chit %d on %s", tile.Chit, tile.Hex)
		}
		chitCounts[tile.Chit]++
	}

	want := map[int]int{2: 1, 3: 2, 4: 2, 5: 2, 6: 2, 8: 2, 9: 2, 10: 2, 11: 2, 12: 1}
	if !reflect.DeepEqual(chitCounts, want) {
		t.Fatalf("chit counts = %v, want %v", chitCounts, want)
	}
}

func TestGenerateMapPorts(t *testing.T) {
	generated := GenerateMap("port-seed")

	if len(generated.Ports) != 9 {
		t.Fatalf("expected 9 ports, got %d", len(generated.Ports))
	}
	counts := map[room.PortKind]int{}
	for _, port := range generated.Ports {
		counts[port.Kind]++
	}
	if counts[room.PortGeneric] != 4 {
		t.Fatalf("expected 4 generic ports, got %d", counts[room.PortGeneric])
	}
	for _, kind := range []room.PortKind{room.PortWood, room.PortBrick, room.PortSheep, room.PortWheat, room.PortOre} {
		if counts[kind] != 1 {
			t.Fatalf("expected 1 %s port, got %d", kind, counts[kind])
		}
	}
}

func TestGenerateDeckDeterministic(t *testing.T) {
	first := GenerateDeck("deck-seed")
	second := GenerateDeck("deck-seed")

	if !reflect.DeepEqual(first, second) {
		t.Fatal("expected identical decks for identical seed")
	}
}

func TestGenerateDeckComposition(t *testing.T) {
	deck := GenerateDeck("composition-seed")

	if len(deck) != room.DevDeckSize {
		t.Fatalf("expected %d cards, got %d", room.DevDeckSize, len(deck))
	}
	counts := map[room.CardKind]int{}
	for _, card := range deck {
		counts[card]++
	}
	want := map[room.CardKind]int{
		room.CardKnight:       14,
		room.CardRoadBuilding: 2,
		room.CardYearOfPlenty: 2,
		room.CardMonopoly:     2,
		room.CardVictoryPoint: 5,
	}
	if !reflect.DeepEqual(counts, want) {
		t.Fatalf("deck counts = %v, want %v", counts, want)
	}
}

func TestMapAndDeckSeedsIndependent(t *testing.T) {
	// The same seed string must drive map and deck through independent
	// streams, so changing one seed never perturbs the other artifact.
	mapBefore := GenerateMap("shared")
	_ = GenerateDeck("other")
	mapAfter := GenerateMap("shared")
	if !reflect.DeepEqual(mapBefore, mapAfter) {
		t.Fatal("deck generation must not disturb map generation")
	}
}
