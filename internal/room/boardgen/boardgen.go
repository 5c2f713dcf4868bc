// Package boardgen produces deterministic board layouts and development
// decks from string seeds. Identical seeds yield identical output, and the
// seeds are persisted alongside the generated layout so any board can be
// audited or regenerated.
package boardgen

import (
	"hash/fnv"
	"math/rand"

	"hexroom/internal/room"
)

// hexIDs lists the 19 board hexes in canonical order.
var hexIDs = []string{
	"h01", "h02", "h03",
	"h04", "h05", "h06", "h07",
	"h08", "h09", "h10", "h11", "h12",
	"h13", "h14", "h15", "h16",
	"h17", "h18", "h19",
}

// portEdges lists the 9 harbor edges in canonical order.
var portEdges = []string{
	"e01", "e02", "e03", "e04", "e05", "e06", "e07", "e08", "e09",
}

// tileTerrains is the fixed 19-tile terrain multiset.
var tileTerrains = []room.Terrain{
	room.TerrainWood, room.TerrainWood, room.TerrainWood, room.TerrainWood,
	room.TerrainBrick, room.TerrainBrick, room.TerrainBrick,
	room.TerrainSheep, room.TerrainSheep, room.TerrainSheep, room.TerrainSheep,
	room.TerrainWheat, room.TerrainWheat, room.TerrainWheat, room.TerrainWheat,
	room.TerrainOre, room.TerrainOre, room.TerrainOre,
	room.TerrainDesert,
}

// numberChits is the fixed 18-value chit multiset for non-desert hexes.
var numberChits = []int{2, 3, 3, 4, 4, 5, 5, 6, 6, 8, 8, 9, 9, 10, 10, 11, 11, 12}

// portKinds is the fixed 9-port multiset.
var portKinds = []room.PortKind{
	room.PortGeneric, room.PortGeneric, room.PortGeneric, room.PortGeneric,
	room.PortWood, room.PortBrick, room.PortSheep, room.PortWheat, room.PortOre,
}

// deckComposition is the fixed 25-card development deck.
var deckComposition = []struct {
	kind  room.CardKind
	count int
}{
	{room.CardKnight, 14},
	{room.CardRoadBuilding, 2},
	{room.CardYearOfPlenty, 2},
	{room.CardMonopoly, 2},
	{room.CardVictoryPoint, 5},
}

// Map is a generated board layout.
type Map struct {
	Tiles     []room.Tile
	Ports     []room.Port
	RobberHex string
}

// hashSeed folds a seed string to a 32-bit value with FNV-1a.
func hashSeed(seed string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(seed))
	return h.Sum32()
}

// newStream returns a reproducible uniform [0,1) stream for a seed string.
func newStream(seed string) *rand.Rand {
	return rand.New(rand.NewSource(int64(hashSeed(seed))))
}

// shuffle performs an in-place Fisher-Yates shuffle, drawing each swap index
// from the seeded stream.
func shuffle[T any](items []T, stream *rand.Rand) {
	for i := len(items) - 1; i > 0; i-- {
		j := int(stream.Float64() * float64(i+1))
		items[i], items[j] = items[j], items[i]
	}
}

// GenerateMap builds the tile, chit, and port assignment for a seed.
func GenerateMap(seed string) Map {
	stream := newStream(seed)

	terrains := make([]room.Terrain, len(tileTerrains))
	copy(terrains, tileTerrains)
	shuffle(terrains, stream)

	chits := make([]int, len(numberChits))
	copy(chits, numberChits)
	shuffle(chits, stream)

	kinds := make([]room.PortKind, len(portKinds))
	copy(kinds, portKinds)
	shuffle(kinds, stream)

	tiles := make([]room.Tile, len(hexIDs))
	robberHex := hexIDs[0]
	chitIdx := 0
	for i, hex := range hexIDs {
		tile := room.Tile{Hex: hex, Terrain: terrains[i]}
		if terrains[i] == room.TerrainDesert {
			robberHex = hex
		} else {
			tile.Chit = chits[chitIdx]
			chitIdx++
		}
		tiles[i] = tile
	}

	ports := make([]room.Port, len(portEdges))
	for i, edge := range portEdges {
		ports[i] = room.Port{Edge: edge, Kind: kinds[i]}
	}

	return Map{Tiles: tiles, Ports: ports, RobberHex: robberHex}
}

// GenerateDeck shuffles the development deck for a seed. The seed must be
// independent of the map seed.
func GenerateDeck(seed string) []room.CardKind {
	deck := make([]room.CardKind, 0, room.DevDeckSize)
	for _, entry := range deckComposition {
		for i := 0; i < entry.count; i++ {
			deck = append(deck, entry.kind)
		}
	}
	shuffle(deck, newStream(seed))
	return deck
}
